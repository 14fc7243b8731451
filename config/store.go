package config

import (
	"Gamehub/services/redis"
	"Gamehub/services/store"
	"Gamehub/sync"
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// OpenStore connects the backend chosen by STORE_BACKEND. The returned
// function releases its connections.
func OpenStore(ctx context.Context, cfg *Config, logger *zap.Logger) (store.Store, func(), error) {
	switch cfg.StoreBackend {
	case BackendMemory:
		logger.Warn("Using in-memory store, data is lost on restart")
		return store.NewMemoryStore(), func() {}, nil
	case BackendNone:
		logger.Warn("No store configured, every write will fail")
		return store.NullStore{}, func() {}, nil
	case BackendPostgres:
		db, closeDB, err := openPostgres(cfg, logger)
		if err != nil {
			return nil, nil, err
		}
		return store.NewPostgresStore(db), closeDB, nil
	case BackendSync:
		redisClient, err := ConnectRedis(ctx, cfg, logger)
		if err != nil {
			return nil, nil, err
		}
		db, closeDB, err := openPostgres(cfg, logger)
		if err != nil {
			redis.CloseRedis(redisClient)
			return nil, nil, err
		}
		closeAll := func() {
			redis.CloseRedis(redisClient)
			closeDB()
		}
		return sync.NewSyncManager(redisClient, store.NewPostgresStore(db), logger), closeAll, nil
	default:
		redisClient, err := ConnectRedis(ctx, cfg, logger)
		if err != nil {
			return nil, nil, err
		}
		return redisClient, func() { redis.CloseRedis(redisClient) }, nil
	}
}

func openPostgres(cfg *Config, logger *zap.Logger) (*gorm.DB, func(), error) {
	db, err := ConnectGORM(logger)
	if err != nil {
		return nil, nil, err
	}

	// Only migrate in development or during deployment
	if cfg.MigratePostgres {
		logger.Info("Migrating PostgreSQL database...")
		if err := MigrateDatabase(db); err != nil {
			logger.Warn("Database migration failed", zap.Error(err))
		} else {
			logger.Info("Database migrated successfully")
		}
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, err
	}
	return db, func() { sqlDB.Close() }, nil
}
