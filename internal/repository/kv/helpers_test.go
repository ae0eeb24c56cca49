package kv

import (
	"fmt"
	"testing"
	"time"

	"github.com/bagdasarian/taskflow/internal/storage"
)

var baseTime = time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)

// fakeClock returns the same instant until advanced.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func sequentialIDs(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

func newTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store := storage.NewStore(storage.NewMemoryBackend())
	store.Initialize(t.Context())
	return store
}

func ptr[T any](v T) *T {
	return &v
}
