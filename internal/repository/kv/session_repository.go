package kv

import (
	"context"

	"github.com/bagdasarian/taskflow/internal/domain"
	"github.com/bagdasarian/taskflow/internal/storage"
)

type sessionRepository struct {
	store *storage.Store
}

func NewSessionRepository(store *storage.Store) *sessionRepository {
	return &sessionRepository{store: store}
}

// Get returns the persisted session user, or nil when nobody is signed in.
func (r *sessionRepository) Get(ctx context.Context) *domain.User {
	var user domain.User
	if !r.store.Get(ctx, storage.KeyCurrentUser, &user) || user.ID == "" {
		return nil
	}
	return &user
}

func (r *sessionRepository) Set(ctx context.Context, user *domain.User) {
	r.store.Set(ctx, storage.KeyCurrentUser, user)
}

func (r *sessionRepository) Clear(ctx context.Context) {
	r.store.Remove(ctx, storage.KeyCurrentUser)
}
