package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/erazemk/trgovina/internal/auth"
	"github.com/erazemk/trgovina/internal/imaging"
	"github.com/erazemk/trgovina/internal/model"
	"github.com/erazemk/trgovina/internal/registry"
)

// AssetsHandler exposes the asset registry.
type AssetsHandler struct {
	Registry *registry.Registry
}

type createAssetRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       uint64 `json:"price"`
	Image       string `json:"image"`
}

type listForSaleRequest struct {
	Price uint64 `json:"price"`
}

// registryError maps a registry failure to an HTTP error response.
func registryError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, registry.ErrNotFound):
		jsonError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, registry.ErrNotForSale), errors.Is(err, registry.ErrAlreadyOwner):
		jsonError(w, http.StatusConflict, err.Error())
	case errors.Is(err, registry.ErrNotOwner), errors.Is(err, registry.ErrNotAdmin):
		jsonError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, auth.ErrUnauthenticated):
		jsonError(w, http.StatusUnauthorized, "not authenticated")
	default:
		slog.Error("registry operation failed", "error", err)
		jsonError(w, http.StatusInternalServerError, "internal error")
	}
}

func assetID(r *http.Request) (uint64, error) {
	return strconv.ParseUint(r.PathValue("id"), 10, 64)
}

// List handles GET /api/assets. Optional filters: owner=me (requires a
// token) and for_sale=true|false.
func (h *AssetsHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var owner model.Principal
	if q.Get("owner") == "me" {
		claims := GetClaims(r.Context())
		if claims == nil {
			jsonError(w, http.StatusUnauthorized, "owner=me requires authentication")
			return
		}
		owner = claims.Identity().Principal
	}

	var forSale *bool
	if v := q.Get("for_sale"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			jsonError(w, http.StatusBadRequest, "invalid for_sale")
			return
		}
		forSale = &b
	}

	assets := h.Registry.ListAssets(r.Context())
	filtered := make([]model.Asset, 0, len(assets))
	for _, a := range assets {
		if owner != "" && a.Owner != owner {
			continue
		}
		if forSale != nil && a.ForSale != *forSale {
			continue
		}
		filtered = append(filtered, a)
	}
	jsonResponse(w, http.StatusOK, filtered)
}

// Create handles POST /api/assets.
func (h *AssetsHandler) Create(w http.ResponseWriter, r *http.Request) {
	// Images arrive inline as data URLs.
	r.Body = http.MaxBytesReader(w, r.Body, 8<<20)

	var req createAssetRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	asset, err := h.Registry.CreateAsset(r.Context(), req.Name, req.Description, req.Price, req.Image)
	if err != nil {
		registryError(w, err)
		return
	}
	jsonResponse(w, http.StatusCreated, asset)
}

// Get handles GET /api/assets/{id}.
func (h *AssetsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := assetID(r)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid asset id")
		return
	}

	asset, err := h.Registry.GetAsset(r.Context(), id)
	if err != nil {
		registryError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, asset)
}

// Thumbnail handles GET /api/assets/{id}/thumbnail.
func (h *AssetsHandler) Thumbnail(w http.ResponseWriter, r *http.Request) {
	id, err := assetID(r)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid asset id")
		return
	}

	asset, err := h.Registry.GetAsset(r.Context(), id)
	if err != nil {
		registryError(w, err)
		return
	}

	thumb, err := imaging.ThumbnailFromDataURL(asset.Image, imaging.ThumbnailDimension)
	if err != nil {
		jsonError(w, http.StatusNotFound, "no image")
		return
	}

	w.Header().Set("Content-Type", thumb.MIME)
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("Cache-Control", "no-cache")
	if _, err := w.Write(thumb.Data); err != nil {
		slog.Error("failed to write thumbnail response", "error", err)
	}
}

// Buy handles POST /api/assets/{id}/buy.
func (h *AssetsHandler) Buy(w http.ResponseWriter, r *http.Request) {
	id, err := assetID(r)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid asset id")
		return
	}

	asset, err := h.Registry.BuyAsset(r.Context(), id)
	if err != nil {
		registryError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, asset)
}

// ListForSale handles PUT /api/assets/{id}/listing.
func (h *AssetsHandler) ListForSale(w http.ResponseWriter, r *http.Request) {
	id, err := assetID(r)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid asset id")
		return
	}

	var req listForSaleRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	asset, err := h.Registry.ListForSale(r.Context(), id, req.Price)
	if err != nil {
		registryError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, asset)
}

// Delete handles DELETE /api/assets/{id}.
func (h *AssetsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := assetID(r)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid asset id")
		return
	}

	if err := h.Registry.DeleteAsset(r.Context(), id); err != nil {
		registryError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, map[string]string{"message": "asset deleted"})
}

// DeleteAll handles DELETE /api/assets.
func (h *AssetsHandler) DeleteAll(w http.ResponseWriter, r *http.Request) {
	if err := h.Registry.DeleteAllAssets(r.Context()); err != nil {
		registryError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, map[string]string{"message": "all assets deleted"})
}

// Greet handles GET /api/greet.
func Greet(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		name = "stranger"
	}
	jsonResponse(w, http.StatusOK, map[string]string{
		"message": "Hello, " + name + "! Welcome to the VR Marketplace!",
	})
}
