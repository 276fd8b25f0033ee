// Package registry keeps the authoritative record of who owns each asset and
// whether it can be bought.
package registry

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/erazemk/trgovina/internal/model"
)

// IdentityResolver supplies the authenticated caller of the current call.
// The registry trusts the result unconditionally.
type IdentityResolver interface {
	Resolve(ctx context.Context) (model.Identity, error)
}

// Registry holds the asset store and enforces owner-only mutation.
// All operations are safe for concurrent use; each one runs under a single
// lock so check-then-mutate sequences are atomic.
type Registry struct {
	resolver IdentityResolver

	mu    sync.RWMutex
	store *assetStore
}

// New creates an empty registry that identifies callers with resolver.
func New(resolver IdentityResolver) *Registry {
	return &Registry{
		resolver: resolver,
		store:    newAssetStore(),
	}
}

func (r *Registry) caller(ctx context.Context) (model.Identity, error) {
	id, err := r.resolver.Resolve(ctx)
	if err != nil {
		return model.Identity{}, fmt.Errorf("resolving caller: %w", err)
	}
	return id, nil
}

// CreateAsset registers a new asset owned by the caller and listed for sale.
func (r *Registry) CreateAsset(ctx context.Context, name, description string, price uint64, image string) (model.Asset, error) {
	caller, err := r.caller(ctx)
	if err != nil {
		return model.Asset{}, err
	}

	r.mu.Lock()
	asset := &model.Asset{
		ID:          r.store.allocateID(),
		Name:        name,
		Description: description,
		Image:       image,
		Creator:     caller.Principal,
		Owner:       caller.Principal,
		Price:       price,
		ForSale:     true,
	}
	r.store.insert(asset)
	created := *asset
	r.mu.Unlock()

	slog.Info("asset created", "asset", created.ID, "owner", created.Owner, "price", created.Price)
	return created, nil
}

// GetAsset returns a copy of a single asset.
func (r *Registry) GetAsset(_ context.Context, id uint64) (model.Asset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.store.get(id)
	if !ok {
		return model.Asset{}, ErrNotFound
	}
	return *a, nil
}

// ListAssets returns every live asset ordered by ascending id.
func (r *Registry) ListAssets(_ context.Context) []model.Asset {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.store.all()
}

// BuyAsset transfers an asset that is for sale to the caller and takes it
// off the market. No currency is moved.
func (r *Registry) BuyAsset(ctx context.Context, id uint64) (model.Asset, error) {
	buyer, err := r.caller(ctx)
	if err != nil {
		return model.Asset{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.store.get(id)
	if !ok {
		return model.Asset{}, ErrNotFound
	}
	if !a.ForSale {
		return model.Asset{}, ErrNotForSale
	}
	if a.Owner == buyer.Principal {
		return model.Asset{}, ErrAlreadyOwner
	}

	seller := a.Owner
	a.Owner = buyer.Principal
	a.ForSale = false

	slog.Info("asset sold", "asset", a.ID, "from", seller, "to", a.Owner, "price", a.Price)
	return *a, nil
}

// ListForSale puts an asset owned by the caller on the market at price.
func (r *Registry) ListForSale(ctx context.Context, id, price uint64) (model.Asset, error) {
	caller, err := r.caller(ctx)
	if err != nil {
		return model.Asset{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.store.get(id)
	if !ok {
		return model.Asset{}, ErrNotFound
	}
	if a.Owner != caller.Principal {
		return model.Asset{}, ErrNotOwner
	}

	a.ForSale = true
	a.Price = price

	slog.Info("asset listed", "asset", a.ID, "owner", a.Owner, "price", a.Price)
	return *a, nil
}

// DeleteAsset permanently removes an asset owned by the caller. Its id is
// not handed out again.
func (r *Registry) DeleteAsset(ctx context.Context, id uint64) error {
	caller, err := r.caller(ctx)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.store.get(id)
	if !ok {
		return ErrNotFound
	}
	if a.Owner != caller.Principal {
		return ErrNotOwner
	}
	r.store.remove(id)

	slog.Info("asset deleted", "asset", id, "owner", caller.Principal)
	return nil
}

// DeleteAllAssets wipes the registry and resets id allocation. Only admins
// may call it.
func (r *Registry) DeleteAllAssets(ctx context.Context) error {
	caller, err := r.caller(ctx)
	if err != nil {
		return err
	}
	if !caller.IsAdmin() {
		return ErrNotAdmin
	}

	r.mu.Lock()
	n := len(r.store.assets)
	r.store.removeAll()
	r.mu.Unlock()

	slog.Warn("all assets deleted", "by", caller.Principal, "count", n)
	return nil
}
