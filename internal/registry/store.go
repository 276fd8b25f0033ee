package registry

import (
	"cmp"
	"slices"

	"github.com/erazemk/trgovina/internal/model"
)

// firstID is the id handed out by an empty store and after a full wipe.
const firstID uint64 = 1

// assetStore owns the id -> asset mapping and the id counter. It holds no
// locks and no authorization logic; Registry serializes all access.
type assetStore struct {
	assets map[uint64]*model.Asset
	nextID uint64
}

func newAssetStore() *assetStore {
	return &assetStore{
		assets: make(map[uint64]*model.Asset),
		nextID: firstID,
	}
}

func (s *assetStore) get(id uint64) (*model.Asset, bool) {
	a, ok := s.assets[id]
	return a, ok
}

func (s *assetStore) insert(a *model.Asset) {
	s.assets[a.ID] = a
}

func (s *assetStore) remove(id uint64) {
	delete(s.assets, id)
}

// removeAll drops every asset and resets the counter.
func (s *assetStore) removeAll() {
	clear(s.assets)
	s.nextID = firstID
}

// all returns copies of every asset, ascending by id.
func (s *assetStore) all() []model.Asset {
	out := make([]model.Asset, 0, len(s.assets))
	for _, a := range s.assets {
		out = append(out, *a)
	}
	slices.SortFunc(out, func(a, b model.Asset) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return out
}

// allocateID returns the current counter value and advances it.
func (s *assetStore) allocateID() uint64 {
	id := s.nextID
	s.nextID++
	return id
}
