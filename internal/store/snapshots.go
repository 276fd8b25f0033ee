package store

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	"github.com/erazemk/trgovina/internal/model"
	"github.com/erazemk/trgovina/internal/registry"
)

const nextAssetIDKey = "asset_next_id"

// SaveSnapshot replaces the stored asset snapshot with snap in a single
// transaction.
func SaveSnapshot(ctx context.Context, db *sql.DB, snap registry.Snapshot) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM asset_snapshots`); err != nil {
		return fmt.Errorf("clearing asset snapshot: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO asset_snapshots (id, name, description, image, creator, owner, price, for_sale)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return fmt.Errorf("preparing asset insert: %w", err)
	}
	defer stmt.Close()

	for _, a := range snap.Assets {
		// SQLite integers are signed 64-bit; store the bit pattern.
		if _, err := stmt.ExecContext(ctx,
			int64(a.ID), a.Name, a.Description, a.Image,
			string(a.Creator), string(a.Owner), int64(a.Price), a.ForSale,
		); err != nil {
			return fmt.Errorf("saving asset %d: %w", a.ID, err)
		}
	}

	if err := setSetting(ctx, tx, nextAssetIDKey, strconv.FormatUint(snap.NextID, 10)); err != nil {
		return fmt.Errorf("saving next asset id: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing asset snapshot: %w", err)
	}
	return nil
}

// LoadSnapshot reads the stored asset snapshot. A database that never saved
// one yields an empty snapshot.
func LoadSnapshot(ctx context.Context, db *sql.DB) (registry.Snapshot, error) {
	var snap registry.Snapshot

	next, ok, err := GetSetting(ctx, db, nextAssetIDKey)
	if err != nil {
		return snap, fmt.Errorf("loading next asset id: %w", err)
	}
	if !ok {
		return snap, nil
	}
	snap.NextID, err = strconv.ParseUint(next, 10, 64)
	if err != nil {
		return snap, fmt.Errorf("parsing next asset id %q: %w", next, err)
	}

	rows, err := db.QueryContext(ctx,
		`SELECT id, name, description, image, creator, owner, price, for_sale
		 FROM asset_snapshots ORDER BY id`,
	)
	if err != nil {
		return snap, fmt.Errorf("loading asset snapshot: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var a model.Asset
		var id, price int64
		var creator, owner string
		if err := rows.Scan(&id, &a.Name, &a.Description, &a.Image, &creator, &owner, &price, &a.ForSale); err != nil {
			return snap, fmt.Errorf("scanning asset: %w", err)
		}
		a.ID = uint64(id)
		a.Price = uint64(price)
		a.Creator = model.Principal(creator)
		a.Owner = model.Principal(owner)
		snap.Assets = append(snap.Assets, a)
	}
	return snap, rows.Err()
}
