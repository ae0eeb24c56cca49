// Package kv implements the repositories over storage.Store. Every mutation
// reads the whole collection, changes it and writes the whole collection back.
package kv

import (
	"time"

	"github.com/google/uuid"
)

type options struct {
	clock func() time.Time
	newID func() string
}

type Option func(*options)

// WithClock replaces time.Now, for timestamps and overdue checks.
func WithClock(clock func() time.Time) Option {
	return func(o *options) { o.clock = clock }
}

// WithIDGenerator replaces the UUID generator.
func WithIDGenerator(newID func() string) Option {
	return func(o *options) { o.newID = newID }
}

func newOptions(opts []Option) options {
	o := options{clock: time.Now, newID: uuid.NewString}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// timestamp is the persisted form of now: UTC without a monotonic reading, so a
// value returned from Create compares equal to the one read back later.
func (o options) timestamp() time.Time {
	return o.clock().UTC().Round(0)
}

// persistedTime copies t into the same normalized form as timestamp.
func persistedTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := t.UTC().Round(0)
	return &v
}

// touch returns a modification time strictly after prev.
func (o options) touch(prev time.Time) time.Time {
	now := o.timestamp()
	if !now.After(prev) {
		return prev.Add(time.Nanosecond)
	}
	return now
}

func compact[T any](items []*T) []*T {
	out := items[:0]
	for _, item := range items {
		if item != nil {
			out = append(out, item)
		}
	}
	return out
}

// projectFilter reports whether projectID passes the optional filter.
func projectFilter(projectIDs []string) func(string) bool {
	if projectIDs == nil {
		return func(string) bool { return true }
	}
	set := make(map[string]struct{}, len(projectIDs))
	for _, id := range projectIDs {
		set[id] = struct{}{}
	}
	return func(projectID string) bool {
		_, ok := set[projectID]
		return ok
	}
}
