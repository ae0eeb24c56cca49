package storage

import (
	"context"
	"errors"
)

var ErrKeyNotFound = errors.New("key not found")

// Backend stores raw bytes by key. Get on a missing key returns ErrKeyNotFound;
// Remove on a missing key succeeds.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
}
