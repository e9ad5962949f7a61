package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// KV adapts a Redis client to the snapshot key-value port: one string key per
// collection, the value being the serialized full-collection snapshot.
// Snapshots never expire.
type KV struct {
	client *redis.Client
}

// NewKV wraps an already-connected Redis client.
func NewKV(client *redis.Client) *KV {
	return &KV{client: client}
}

// Get returns the snapshot stored under key, or (nil, nil) when the key has
// never been written.
func (k *KV) Get(ctx context.Context, key string) ([]byte, error) {
	raw, err := k.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}
	return raw, nil
}

// Set overwrites the snapshot stored under key.
func (k *KV) Set(ctx context.Context, key string, value []byte) error {
	if err := k.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}
