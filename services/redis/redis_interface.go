package redis

import (
	"Gamehub/models"
	redis_utils "Gamehub/services/redis/utils"
	"Gamehub/services/store"
	"Gamehub/utils"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
)

// RedisClient stores the application snapshot under a single key
type RedisClient struct {
	client *redis.Client
	key    string
}

// NewRedisClient creates a new Redis client instance. Addr is either a
// plain host:port or a redis:// URL.
func NewRedisClient(Addr string, DB int) (*RedisClient, error) {
	var client *redis.Client
	if strings.Contains(Addr, "://") {
		opt, err := redis.ParseURL(Addr)
		if err != nil {
			return nil, fmt.Errorf("error parsing Redis URL: %v", err)
		}
		client = redis.NewClient(opt)
	} else {
		client = redis.NewClient(&redis.Options{
			Addr: Addr,
			DB:   DB,
		})
	}
	return &RedisClient{
		client: client,
		key:    redis_utils.FormatSnapshotKey(store.DataKey),
	}, nil
}

// stored is the document in Redis: version travels inside the JSON
func (rc *RedisClient) stored(ctx context.Context, cmd redis.Cmdable) (*models.Snapshot, error) {
	data, err := cmd.Get(ctx, rc.key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: error getting snapshot from Redis: %v", utils.ErrStoreUnavailable, err)
	}
	return store.Decode(data)
}

// Load retrieves the snapshot. Key format: "gamehub:game-manager-data"
func (rc *RedisClient) Load(ctx context.Context) (*models.Snapshot, error) {
	return rc.stored(ctx, rc.client)
}

// Save writes the snapshot if nobody else wrote since it was loaded.
// The key is watched so a concurrent writer aborts the transaction.
func (rc *RedisClient) Save(ctx context.Context, snap *models.Snapshot) error {
	next := *snap
	next.Version = snap.Version + 1
	data, err := store.Encode(&next)
	if err != nil {
		return err
	}

	txf := func(tx *redis.Tx) error {
		current, err := rc.stored(ctx, tx)
		if err != nil {
			return err
		}
		var version int64
		if current != nil {
			version = current.Version
		}
		if version != snap.Version {
			return fmt.Errorf("%w: snapshot version %d is stale, stored version is %d", utils.ErrConflict, snap.Version, version)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, rc.key, data, 0)
			return nil
		})
		return err
	}

	err = rc.client.Watch(ctx, txf, rc.key)
	switch {
	case err == nil:
		snap.Version = next.Version
		return nil
	case errors.Is(err, redis.TxFailedErr):
		return fmt.Errorf("%w: snapshot changed while saving", utils.ErrConflict)
	case errors.Is(err, utils.ErrConflict), errors.Is(err, utils.ErrStoreUnavailable):
		return err
	default:
		return fmt.Errorf("%w: error saving snapshot to Redis: %v", utils.ErrStoreUnavailable, err)
	}
}
