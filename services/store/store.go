// Package store holds the whole-document persistence backends. Every
// backend fetches and writes the full snapshot; there are no partial updates.
package store

import (
	"Gamehub/models"
	"Gamehub/utils"
	"context"
	"encoding/json"
	"fmt"
)

// DataKey names the stored document in key-value and row backends
const DataKey = "game-manager-data"

// Store is a whole-document get/put store.
//
// Load returns (nil, nil) when nothing has been stored yet. Save succeeds only
// when snap.Version matches the stored version (0 when empty) and bumps
// snap.Version on success; a mismatch fails with utils.ErrConflict.
type Store interface {
	Load(ctx context.Context) (*models.Snapshot, error)
	Save(ctx context.Context, snap *models.Snapshot) error
}

// Encode serializes a snapshot for storage
func Encode(snap *models.Snapshot) ([]byte, error) {
	snap.Normalize()
	data, err := json.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("error marshaling snapshot: %v", err)
	}
	return data, nil
}

// Decode parses a stored snapshot. Missing collections become empty ones.
func Decode(data []byte) (*models.Snapshot, error) {
	var snap models.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("%w: error unmarshaling snapshot: %v", utils.ErrStoreUnavailable, err)
	}
	snap.Normalize()
	return &snap, nil
}

func staleVersion(got, want int64) error {
	return fmt.Errorf("%w: snapshot version %d is stale, stored version is %d", utils.ErrConflict, got, want)
}
