package store

import (
	"Gamehub/models"
	"Gamehub/utils"
	"context"
	"fmt"
)

// NullStore stands in when no persistence is configured. Reads find
// nothing and every write fails, so callers can report "save failed"
// instead of silently losing data.
type NullStore struct{}

func (NullStore) Load(ctx context.Context) (*models.Snapshot, error) {
	return nil, nil
}

func (NullStore) Save(ctx context.Context, snap *models.Snapshot) error {
	return fmt.Errorf("%w: persistence is not configured", utils.ErrStoreUnavailable)
}
