package auth

import (
	"context"
	"errors"

	"github.com/erazemk/trgovina/internal/model"
)

// ErrUnauthenticated is returned when a call carries no verified caller.
var ErrUnauthenticated = errors.New("not authenticated")

type contextKey struct{}

// WithClaims returns a copy of ctx carrying verified token claims.
func WithClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, contextKey{}, claims)
}

// ClaimsFrom returns the claims stored by WithClaims, or nil.
func ClaimsFrom(ctx context.Context) *Claims {
	claims, _ := ctx.Value(contextKey{}).(*Claims)
	return claims
}

// ContextResolver resolves the caller from claims placed in the context by
// the authentication middleware.
type ContextResolver struct{}

// Resolve implements registry.IdentityResolver.
func (ContextResolver) Resolve(ctx context.Context) (model.Identity, error) {
	claims := ClaimsFrom(ctx)
	if claims == nil {
		return model.Identity{}, ErrUnauthenticated
	}
	return claims.Identity(), nil
}
