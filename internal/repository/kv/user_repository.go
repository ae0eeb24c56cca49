package kv

import (
	"context"
	"strings"

	"github.com/bagdasarian/taskflow/internal/domain"
	"github.com/bagdasarian/taskflow/internal/storage"
)

type userRepository struct {
	store *storage.Store
}

func NewUserRepository(store *storage.Store) *userRepository {
	return &userRepository{store: store}
}

func (r *userRepository) load(ctx context.Context) []*domain.UserRecord {
	return compact(storage.Collection[*domain.UserRecord](ctx, r.store, storage.KeyUsers))
}

// Create appends the record as given. Uniqueness checks belong to the caller.
func (r *userRepository) Create(ctx context.Context, record *domain.UserRecord) {
	users := r.load(ctx)
	r.store.Set(ctx, storage.KeyUsers, append(users, record))
}

func (r *userRepository) GetByID(ctx context.Context, id string) *domain.UserRecord {
	for _, u := range r.load(ctx) {
		if u.ID == id {
			return u
		}
	}
	return nil
}

// FindByEmail compares emails case-insensitively.
func (r *userRepository) FindByEmail(ctx context.Context, email string) *domain.UserRecord {
	for _, u := range r.load(ctx) {
		if strings.EqualFold(u.Email, email) {
			return u
		}
	}
	return nil
}

// Update replaces the stored record with the same ID.
func (r *userRepository) Update(ctx context.Context, record *domain.UserRecord) error {
	users := r.load(ctx)

	for i, u := range users {
		if u.ID == record.ID {
			users[i] = record
			r.store.Set(ctx, storage.KeyUsers, users)
			return nil
		}
	}

	return domain.NewNotFoundError("user with id " + record.ID)
}

func (r *userRepository) List(ctx context.Context) []*domain.UserRecord {
	return r.load(ctx)
}
