package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"edumarket/backend/engine"
)

// RedisStore keeps KV entries in Redis under "kv:{user}:{key}". Entries
// have no TTL: progress and cart state outlive any session.
type RedisStore struct {
	Client *redis.Client
}

// NewRedisStore connects to the given Redis URL and verifies the
// connection before returning.
func NewRedisStore(ctx context.Context, url string) (*RedisStore, error) {
	if url == "" {
		return nil, fmt.Errorf("redis URL is empty")
	}
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}
	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("pinging redis: %w", err)
	}
	return &RedisStore{Client: client}, nil
}

func (r *RedisStore) Close() error {
	return r.Client.Close()
}

func redisKey(userID, key string) string {
	return "kv:" + userID + ":" + key
}

func (r *RedisStore) Get(ctx context.Context, userID, key string, dest any) error {
	raw, err := r.Client.Get(ctx, redisKey(userID, key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return fmt.Errorf("%w: key %q", engine.ErrNotFound, key)
		}
		return fmt.Errorf("%w: %v", engine.ErrRemote, err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("%w: key %q: %v", engine.ErrPersistenceCorrupt, key, err)
	}
	return nil
}

func (r *RedisStore) Set(ctx context.Context, userID, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: key %q: %v", engine.ErrValidation, key, err)
	}
	if err := r.Client.Set(ctx, redisKey(userID, key), raw, 0).Err(); err != nil {
		return fmt.Errorf("%w: %v", engine.ErrRemote, err)
	}
	return nil
}

func (r *RedisStore) Delete(ctx context.Context, userID, key string) error {
	if err := r.Client.Del(ctx, redisKey(userID, key)).Err(); err != nil {
		return fmt.Errorf("%w: %v", engine.ErrRemote, err)
	}
	return nil
}
