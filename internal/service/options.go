package service

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type options struct {
	clock  func() time.Time
	newID  func() string
	logger zerolog.Logger
}

type Option func(*options)

func WithClock(clock func() time.Time) Option {
	return func(o *options) { o.clock = clock }
}

func WithIDGenerator(newID func() string) Option {
	return func(o *options) { o.newID = newID }
}

func WithLogger(log zerolog.Logger) Option {
	return func(o *options) { o.logger = log }
}

func newOptions(opts []Option) options {
	o := options{clock: time.Now, newID: uuid.NewString, logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
