package storage

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// RedisBackend keeps entries as plain Redis strings without expiry.
type RedisBackend struct {
	rdb redis.Cmdable
}

func NewRedisBackend(rdb redis.Cmdable) *RedisBackend {
	return &RedisBackend{rdb: rdb}
}

func (b *RedisBackend) Get(ctx context.Context, key string) ([]byte, error) {
	v, err := b.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (b *RedisBackend) Set(ctx context.Context, key string, value []byte) error {
	return b.rdb.Set(ctx, key, value, 0).Err()
}

func (b *RedisBackend) Remove(ctx context.Context, key string) error {
	return b.rdb.Del(ctx, key).Err()
}
