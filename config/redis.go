package config

import (
	"Gamehub/services/redis"
	"context"

	"go.uber.org/zap"
)

// ConnectRedis connects to the Redis instance at REDIS_URL
func ConnectRedis(ctx context.Context, cfg *Config, logger *zap.Logger) (*redis.RedisClient, error) {
	redisClient, err := redis.InitRedis(ctx, cfg.RedisURL, 0, logger)
	if err != nil {
		logger.Error("Error connecting to Redis", zap.Error(err))
		return nil, err
	}
	return redisClient, nil
}
