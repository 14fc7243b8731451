package redis

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// InitRedis connects to Redis and verifies the connection with a ping.
// Stored data is kept: the snapshot must survive restarts.
func InitRedis(ctx context.Context, addr string, db int, logger *zap.Logger) (*RedisClient, error) {
	rc, err := NewRedisClient(addr, db)
	if err != nil {
		return nil, err
	}

	if err := rc.client.Ping(ctx).Err(); err != nil {
		rc.client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %v", err)
	}

	logger.Info("Successfully connected to Redis", zap.String("addr", addr))
	return rc, nil
}

// CloseRedis gracefully closes the Redis connection
func CloseRedis(rc *RedisClient) error {
	if err := rc.client.Close(); err != nil {
		return fmt.Errorf("error closing Redis connection: %v", err)
	}
	return nil
}
