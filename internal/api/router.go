package api

import (
	"database/sql"
	"net/http"

	"github.com/erazemk/trgovina/internal/model"
	"github.com/erazemk/trgovina/internal/registry"
)

// NewRouter creates the API router with all endpoints registered. The
// registry must resolve callers with auth.ContextResolver.
func NewRouter(db *sql.DB, reg *registry.Registry, jwtSecret string) http.Handler {
	mux := http.NewServeMux()

	authHandler := &AuthHandler{DB: db, JWTSecret: jwtSecret}
	usersHandler := &UsersHandler{DB: db}
	assetsHandler := &AssetsHandler{Registry: reg}

	authMW := AuthMiddleware(jwtSecret, db)
	optionalAuth := OptionalAuthMiddleware(jwtSecret, db)
	requireAdmin := RequireRole(model.RoleAdmin)

	// Public.
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)
	mux.HandleFunc("GET /api/greet", Greet)

	// Authenticated account routes.
	mux.Handle("POST /api/auth/logout", authMW(http.HandlerFunc(authHandler.Logout)))
	mux.Handle("PUT /api/auth/password", authMW(http.HandlerFunc(authHandler.ChangePassword)))

	// Users (admin only).
	mux.Handle("GET /api/users", authMW(requireAdmin(http.HandlerFunc(usersHandler.List))))
	mux.Handle("POST /api/users", authMW(requireAdmin(http.HandlerFunc(usersHandler.Create))))
	mux.Handle("GET /api/users/{id}", authMW(requireAdmin(http.HandlerFunc(usersHandler.Get))))
	mux.Handle("PUT /api/users/{id}", authMW(requireAdmin(http.HandlerFunc(usersHandler.Update))))
	mux.Handle("PUT /api/users/{id}/password", authMW(requireAdmin(http.HandlerFunc(usersHandler.ResetPassword))))
	mux.Handle("DELETE /api/users/{id}", authMW(requireAdmin(http.HandlerFunc(usersHandler.Delete))))

	// Assets: reads are public, mutations need a caller. Ownership and the
	// admin check for wiping are enforced by the registry.
	mux.Handle("GET /api/assets", optionalAuth(http.HandlerFunc(assetsHandler.List)))
	mux.Handle("POST /api/assets", authMW(http.HandlerFunc(assetsHandler.Create)))
	mux.Handle("DELETE /api/assets", authMW(http.HandlerFunc(assetsHandler.DeleteAll)))
	mux.HandleFunc("GET /api/assets/{id}", assetsHandler.Get)
	mux.HandleFunc("GET /api/assets/{id}/thumbnail", assetsHandler.Thumbnail)
	mux.Handle("POST /api/assets/{id}/buy", authMW(http.HandlerFunc(assetsHandler.Buy)))
	mux.Handle("PUT /api/assets/{id}/listing", authMW(http.HandlerFunc(assetsHandler.ListForSale)))
	mux.Handle("DELETE /api/assets/{id}", authMW(http.HandlerFunc(assetsHandler.Delete)))

	return mux
}
