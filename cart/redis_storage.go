package cart

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStorage persists cart snapshots in Redis, one key per storefront
// session, expiring idle carts after TTL.
type RedisStorage struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStorage wraps a Redis client as cart storage.
func NewRedisStorage(client *redis.Client, ttl time.Duration) *RedisStorage {
	return &RedisStorage{client: client, ttl: ttl}
}

func (r *RedisStorage) cartKey(key string) string {
	return "cart:session:" + key
}

// Get returns the snapshot for key, or "" when none exists.
func (r *RedisStorage) Get(ctx context.Context, key string) (string, error) {
	data, err := r.client.Get(ctx, r.cartKey(key)).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return data, nil
}

// Set writes the snapshot and refreshes the idle TTL.
func (r *RedisStorage) Set(ctx context.Context, key string, value string) error {
	return r.client.Set(ctx, r.cartKey(key), value, r.ttl).Err()
}
