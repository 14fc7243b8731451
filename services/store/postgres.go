package store

import (
	"Gamehub/models"
	pgmodels "Gamehub/models/postgres"
	"Gamehub/utils"
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PostgresStore keeps the document in a single row of the snapshots table
type PostgresStore struct {
	db  *gorm.DB
	key string
}

func NewPostgresStore(db *gorm.DB) *PostgresStore {
	return &PostgresStore{db: db, key: DataKey}
}

func (p *PostgresStore) Load(ctx context.Context) (*models.Snapshot, error) {
	var row pgmodels.Snapshot
	err := p.db.WithContext(ctx).Where("key = ?", p.key).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: error reading snapshot from PostgreSQL: %v", utils.ErrStoreUnavailable, err)
	}

	snap, err := Decode(row.Data)
	if err != nil {
		return nil, err
	}
	snap.Version = row.Version
	return snap, nil
}

func (p *PostgresStore) Save(ctx context.Context, snap *models.Snapshot) error {
	next := *snap
	next.Version = snap.Version + 1
	data, err := Encode(&next)
	if err != nil {
		return err
	}
	now := time.Now()
	db := p.db.WithContext(ctx)

	if snap.Version == 0 {
		row := pgmodels.Snapshot{Key: p.key, Data: datatypes.JSON(data), Version: next.Version, UpdatedAt: now}
		result := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&row)
		if result.Error != nil {
			return fmt.Errorf("%w: error inserting snapshot into PostgreSQL: %v", utils.ErrStoreUnavailable, result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("%w: a snapshot is already stored", utils.ErrConflict)
		}
		snap.Version = next.Version
		return nil
	}

	result := db.Model(&pgmodels.Snapshot{}).
		Where("key = ? AND version = ?", p.key, snap.Version).
		Updates(map[string]interface{}{
			"data":       datatypes.JSON(data),
			"version":    next.Version,
			"updated_at": now,
		})
	if result.Error != nil {
		return fmt.Errorf("%w: error updating snapshot in PostgreSQL: %v", utils.ErrStoreUnavailable, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: snapshot version %d is stale", utils.ErrConflict, snap.Version)
	}
	snap.Version = next.Version
	return nil
}
