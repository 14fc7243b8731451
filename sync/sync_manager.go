package sync

import (
	"Gamehub/models"
	"Gamehub/services/store"
	"context"
	"fmt"

	"go.uber.org/zap"
)

// SyncManager pairs a fast primary store (Redis) with a durable mirror
// (PostgreSQL). The primary is authoritative; the mirror gets a copy of every
// successful save and seeds the primary when it comes up empty.
type SyncManager struct {
	primary store.Store
	mirror  store.Store
	logger  *zap.Logger
}

// NewSyncManager creates a new instance of the synchronization manager
func NewSyncManager(primary, mirror store.Store, logger *zap.Logger) *SyncManager {
	return &SyncManager{
		primary: primary,
		mirror:  mirror,
		logger:  logger,
	}
}

// Load reads the primary. When the primary holds nothing the mirror's copy
// is written back to it; when the primary fails the mirror's copy is served
// read-only.
func (sm *SyncManager) Load(ctx context.Context) (*models.Snapshot, error) {
	snap, err := sm.primary.Load(ctx)
	if err == nil && snap != nil {
		return snap, nil
	}
	if err != nil {
		sm.logger.Warn("primary store unavailable, reading mirror", zap.Error(err))
	}

	mirrored, mirrorErr := sm.mirror.Load(ctx)
	if mirrorErr != nil {
		if err != nil {
			return nil, err
		}
		return nil, mirrorErr
	}
	if mirrored == nil || err != nil {
		return mirrored, nil
	}

	if err := sm.RestorePrimary(ctx, mirrored); err != nil {
		return nil, err
	}
	return mirrored, nil
}

// RestorePrimary writes a mirrored snapshot into the empty primary.
// On success snap carries the primary's version.
func (sm *SyncManager) RestorePrimary(ctx context.Context, snap *models.Snapshot) error {
	snap.Version = 0
	if err := sm.primary.Save(ctx, snap); err != nil {
		return fmt.Errorf("error restoring primary store from mirror: %w", err)
	}
	sm.logger.Info("primary store restored from mirror", zap.Int64("version", snap.Version))
	return nil
}

// Save writes the primary and then mirrors the result. A failed mirror write
// is logged; the save itself already succeeded.
func (sm *SyncManager) Save(ctx context.Context, snap *models.Snapshot) error {
	if err := sm.primary.Save(ctx, snap); err != nil {
		return err
	}
	if err := sm.SyncMirror(ctx, snap); err != nil {
		sm.logger.Error("error mirroring snapshot", zap.Error(err), zap.Int64("version", snap.Version))
	}
	return nil
}

// SyncMirror overwrites the mirror with snap regardless of the mirror's version
func (sm *SyncManager) SyncMirror(ctx context.Context, snap *models.Snapshot) error {
	current, err := sm.mirror.Load(ctx)
	if err != nil {
		return err
	}
	copied := *snap
	copied.Version = 0
	if current != nil {
		copied.Version = current.Version
	}
	return sm.mirror.Save(ctx, &copied)
}
