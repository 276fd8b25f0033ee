package registry

import (
	"fmt"

	"github.com/erazemk/trgovina/internal/model"
)

// Snapshot is a point-in-time copy of the registry state, used to carry
// assets across restarts.
type Snapshot struct {
	NextID uint64
	Assets []model.Asset
}

// Snapshot returns a consistent copy of the current state.
func (r *Registry) Snapshot() Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return Snapshot{
		NextID: r.store.nextID,
		Assets: r.store.all(),
	}
}

// Restore replaces the registry state with snap. It fails without changing
// anything if snap holds duplicate ids or ids the counter would hand out again.
func (r *Registry) Restore(snap Snapshot) error {
	next := snap.NextID
	if next < firstID {
		next = firstID
	}

	s := newAssetStore()
	s.nextID = next
	for i := range snap.Assets {
		a := snap.Assets[i]
		if _, dup := s.assets[a.ID]; dup {
			return fmt.Errorf("restoring snapshot: duplicate asset id %d", a.ID)
		}
		if a.ID < firstID || a.ID >= next {
			return fmt.Errorf("restoring snapshot: asset id %d outside allocated range [%d, %d)", a.ID, firstID, next)
		}
		s.insert(&a)
	}

	r.mu.Lock()
	r.store = s
	r.mu.Unlock()
	return nil
}
