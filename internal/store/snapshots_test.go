package store

import (
	"context"
	"math"
	"testing"

	"github.com/erazemk/trgovina/internal/db"
	"github.com/erazemk/trgovina/internal/model"
	"github.com/erazemk/trgovina/internal/registry"
)

func TestLoadSnapshotEmpty(t *testing.T) {
	database := db.NewTestDB(t)

	snap, err := LoadSnapshot(context.Background(), database)
	if err != nil {
		t.Fatalf("LoadSnapshot: %v", err)
	}
	if snap.NextID != 0 || len(snap.Assets) != 0 {
		t.Errorf("expected empty snapshot, got %+v", snap)
	}
}

func TestSaveAndLoadSnapshot(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	in := registry.Snapshot{
		NextID: 5,
		Assets: []model.Asset{
			{ID: 4, Name: "Helmet", Description: "VR", Image: "data:image/png;base64,AA==",
				Creator: "user:1", Owner: "user:2", Price: math.MaxUint64, ForSale: false},
			{ID: 1, Name: "Sword", Creator: "user:1", Owner: "user:1", Price: 100, ForSale: true},
		},
	}
	if err := SaveSnapshot(ctx, database, in); err != nil {
		t.Fatalf("SaveSnapshot: %v", err)
	}

	out, err := LoadSnapshot(ctx, database)
	if err != nil {
		t.Fatalf("LoadSnapshot: %v", err)
	}
	if out.NextID != 5 {
		t.Errorf("expected next id 5, got %d", out.NextID)
	}
	if len(out.Assets) != 2 {
		t.Fatalf("expected 2 assets, got %d", len(out.Assets))
	}
	if out.Assets[0] != in.Assets[1] {
		t.Errorf("asset 1 mismatch: %+v", out.Assets[0])
	}
	if out.Assets[1] != in.Assets[0] {
		t.Errorf("asset 4 mismatch: %+v", out.Assets[1])
	}
}

func TestSaveSnapshotReplacesPrevious(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	SaveSnapshot(ctx, database, registry.Snapshot{NextID: 3, Assets: []model.Asset{{ID: 1}, {ID: 2}}})
	SaveSnapshot(ctx, database, registry.Snapshot{NextID: 1})

	out, _ := LoadSnapshot(ctx, database)
	if out.NextID != 1 || len(out.Assets) != 0 {
		t.Errorf("expected wiped snapshot, got %+v", out)
	}
}

func TestSnapshotRestoresIntoRegistry(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	SaveSnapshot(ctx, database, registry.Snapshot{
		NextID: 3,
		Assets: []model.Asset{{ID: 2, Name: "kept", Creator: "user:1", Owner: "user:1", ForSale: true}},
	})

	snap, err := LoadSnapshot(ctx, database)
	if err != nil {
		t.Fatalf("LoadSnapshot: %v", err)
	}

	reg := registry.New(nil)
	if err := reg.Restore(snap); err != nil {
		t.Fatalf("Restore: %v", err)
	}
	got, err := reg.GetAsset(ctx, 2)
	if err != nil {
		t.Fatalf("GetAsset: %v", err)
	}
	if got.Name != "kept" {
		t.Errorf("expected 'kept', got %q", got.Name)
	}
}

func emptySnapshot() registry.Snapshot {
	return registry.Snapshot{NextID: 1}
}
