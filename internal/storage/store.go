// Package storage is the key-value store adapter under every repository.
//
// Each collection lives as one JSON array under its own key and every write
// replaces the whole array. Nothing coordinates separate processes sharing a
// backend: concurrent read-modify-write cycles resolve as last write wins.
//
// Persistence failures (decode errors, backend errors, quota) are logged and
// counted but never returned, so callers cannot tell a failed write from a
// successful one.
package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"

	"github.com/rs/zerolog"
)

// Recorder receives store operation counts. *metrics.Collector implements it.
type Recorder interface {
	RecordStoreOp(op string)
	RecordStoreFailure(op string)
}

type nopRecorder struct{}

func (nopRecorder) RecordStoreOp(string)      {}
func (nopRecorder) RecordStoreFailure(string) {}

type Store struct {
	backend  Backend
	prefix   string
	log      zerolog.Logger
	recorder Recorder
}

type Option func(*Store)

func WithPrefix(prefix string) Option {
	return func(s *Store) { s.prefix = prefix }
}

func WithLogger(log zerolog.Logger) Option {
	return func(s *Store) { s.log = log.With().Str("component", "store").Logger() }
}

func WithRecorder(r Recorder) Option {
	return func(s *Store) {
		if r != nil {
			s.recorder = r
		}
	}
}

func NewStore(backend Backend, opts ...Option) *Store {
	s := &Store{
		backend:  backend,
		prefix:   DefaultPrefix,
		log:      zerolog.Nop(),
		recorder: nopRecorder{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// BackendKey returns the key actually used in the backend.
func (s *Store) BackendKey(key Key) string {
	return s.prefix + string(key)
}

// Get decodes the value under key into dst. It reports false when the key is
// missing, holds JSON null, cannot be read or cannot be decoded.
func (s *Store) Get(ctx context.Context, key Key, dst any) bool {
	s.recorder.RecordStoreOp("get")

	raw, err := s.backend.Get(ctx, s.BackendKey(key))
	if err != nil {
		if !errors.Is(err, ErrKeyNotFound) {
			s.fail("get", key, err)
		}
		return false
	}
	if len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		s.fail("decode", key, err)
		return false
	}
	return true
}

// Set encodes value and writes it under key.
func (s *Store) Set(ctx context.Context, key Key, value any) {
	s.recorder.RecordStoreOp("set")

	raw, err := json.Marshal(value)
	if err != nil {
		s.fail("encode", key, err)
		return
	}
	if err := s.backend.Set(ctx, s.BackendKey(key), raw); err != nil {
		s.fail("set", key, err)
	}
}

func (s *Store) Remove(ctx context.Context, key Key) {
	s.recorder.RecordStoreOp("remove")

	if err := s.backend.Remove(ctx, s.BackendKey(key)); err != nil {
		s.fail("remove", key, err)
	}
}

// Clear removes every TaskFlow key, including the current session.
// Other entries in the backend are left alone.
func (s *Store) Clear(ctx context.Context) {
	for _, key := range AllKeys {
		s.Remove(ctx, key)
	}
}

// Initialize writes an empty array under every collection key that has no
// readable value. The current session is never touched.
func (s *Store) Initialize(ctx context.Context) {
	for _, key := range CollectionKeys {
		var raw json.RawMessage
		if !s.Get(ctx, key, &raw) {
			s.Set(ctx, key, []struct{}{})
		}
	}
}

func (s *Store) fail(op string, key Key, err error) {
	s.recorder.RecordStoreFailure(op)
	s.log.Error().Stack().Err(err).
		Str("op", op).
		Str("key", s.BackendKey(key)).
		Msg("store operation failed")
}

// Collection reads the array under key. Missing or unreadable data yields an
// empty, non-nil slice.
func Collection[T any](ctx context.Context, s *Store, key Key) []T {
	var items []T
	if !s.Get(ctx, key, &items) || items == nil {
		return []T{}
	}
	return items
}
