package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingBackend struct {
	getErr error
	setErr error
	rmErr  error
	sets   int
}

func (b *failingBackend) Get(context.Context, string) ([]byte, error) { return nil, b.getErr }
func (b *failingBackend) Set(context.Context, string, []byte) error {
	b.sets++
	return b.setErr
}
func (b *failingBackend) Remove(context.Context, string) error { return b.rmErr }

type countingRecorder struct {
	ops      map[string]int
	failures map[string]int
}

func newCountingRecorder() *countingRecorder {
	return &countingRecorder{ops: map[string]int{}, failures: map[string]int{}}
}

func (r *countingRecorder) RecordStoreOp(op string)      { r.ops[op]++ }
func (r *countingRecorder) RecordStoreFailure(op string) { r.failures[op]++ }

type record struct {
	ID   string   `json:"id"`
	Tags []string `json:"tags"`
}

func TestStore_GetSet(t *testing.T) {
	ctx := context.Background()

	t.Run("round trip through JSON", func(t *testing.T) {
		store := NewStore(NewMemoryBackend())
		in := []record{{ID: "a", Tags: []string{"x"}}, {ID: "b", Tags: []string{}}}

		store.Set(ctx, KeyTasks, in)

		var out []record
		require.True(t, store.Get(ctx, KeyTasks, &out))
		assert.Equal(t, in, out)
	})

	t.Run("missing key reports false", func(t *testing.T) {
		store := NewStore(NewMemoryBackend())

		var out []record
		assert.False(t, store.Get(ctx, KeyTasks, &out))
		assert.Nil(t, out)
	})

	t.Run("corrupt entry reports false and is counted", func(t *testing.T) {
		backend := NewMemoryBackend()
		rec := newCountingRecorder()
		store := NewStore(backend, WithRecorder(rec))
		require.NoError(t, backend.Set(ctx, "taskflow_tasks", []byte("{not json")))

		var out []record
		assert.False(t, store.Get(ctx, KeyTasks, &out))
		assert.Equal(t, 1, rec.failures["decode"])
	})

	t.Run("JSON null reads as missing", func(t *testing.T) {
		backend := NewMemoryBackend()
		store := NewStore(backend)
		require.NoError(t, backend.Set(ctx, "taskflow_current_user", []byte("null")))

		var out record
		assert.False(t, store.Get(ctx, KeyCurrentUser, &out))
	})

	t.Run("keys carry the prefix", func(t *testing.T) {
		backend := NewMemoryBackend()
		store := NewStore(backend, WithPrefix("demo_"))

		store.Set(ctx, KeyTeams, []record{})

		raw, err := backend.Get(ctx, "demo_teams")
		require.NoError(t, err)
		assert.Equal(t, "[]", string(raw))
		assert.Equal(t, "demo_teams", store.BackendKey(KeyTeams))
	})
}

func TestStore_SwallowsBackendFailures(t *testing.T) {
	ctx := context.Background()
	backend := &failingBackend{
		getErr: errors.New("connection reset"),
		setErr: errors.New("quota exceeded"),
		rmErr:  errors.New("read only"),
	}
	rec := newCountingRecorder()
	store := NewStore(backend, WithRecorder(rec))

	var out []record
	assert.False(t, store.Get(ctx, KeyUsers, &out))
	store.Set(ctx, KeyUsers, []record{{ID: "a"}})
	store.Remove(ctx, KeyUsers)

	assert.Equal(t, 1, backend.sets)
	assert.Equal(t, 1, rec.failures["get"])
	assert.Equal(t, 1, rec.failures["set"])
	assert.Equal(t, 1, rec.failures["remove"])
	assert.Equal(t, 1, rec.ops["set"])
}

func TestStore_EncodeFailureSkipsBackend(t *testing.T) {
	backend := &failingBackend{}
	rec := newCountingRecorder()
	store := NewStore(backend, WithRecorder(rec))

	store.Set(context.Background(), KeyUsers, map[string]any{"bad": make(chan int)})

	assert.Zero(t, backend.sets)
	assert.Equal(t, 1, rec.failures["encode"])
}

func TestStore_Initialize(t *testing.T) {
	ctx := context.Background()
	backend := NewMemoryBackend()
	store := NewStore(backend)
	store.Set(ctx, KeyTasks, []record{{ID: "kept"}})
	require.NoError(t, backend.Set(ctx, "taskflow_teams", []byte("garbage")))

	store.Initialize(ctx)

	for _, key := range []Key{KeyUsers, KeyProjects, KeyTeams, KeyActivities} {
		raw, err := backend.Get(ctx, store.BackendKey(key))
		require.NoError(t, err, key)
		assert.Equal(t, "[]", string(raw), key)
	}
	tasks := Collection[record](ctx, store, KeyTasks)
	assert.Equal(t, []record{{ID: "kept"}}, tasks)

	_, err := backend.Get(ctx, store.BackendKey(KeyCurrentUser))
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestStore_Clear(t *testing.T) {
	ctx := context.Background()
	backend := NewMemoryBackend()
	store := NewStore(backend)
	store.Initialize(ctx)
	store.Set(ctx, KeyCurrentUser, record{ID: "u1"})
	require.NoError(t, backend.Set(ctx, "unrelated", []byte("1")))

	store.Clear(ctx)

	assert.Equal(t, 1, backend.Len())
	_, err := backend.Get(ctx, "unrelated")
	assert.NoError(t, err)
}

func TestCollection(t *testing.T) {
	ctx := context.Background()
	store := NewStore(NewMemoryBackend())

	t.Run("missing yields empty non-nil slice", func(t *testing.T) {
		items := Collection[record](ctx, store, KeyProjects)
		assert.NotNil(t, items)
		assert.Empty(t, items)
	})

	t.Run("stored order is preserved", func(t *testing.T) {
		store.Set(ctx, KeyProjects, []record{{ID: "3"}, {ID: "1"}, {ID: "2"}})

		items := Collection[record](ctx, store, KeyProjects)

		require.Len(t, items, 3)
		assert.Equal(t, "3", items[0].ID)
		assert.Equal(t, "2", items[2].ID)
	})
}
