package kv

import (
	"context"

	"github.com/bagdasarian/taskflow/internal/domain"
	"github.com/bagdasarian/taskflow/internal/storage"
)

type activityRepository struct {
	store *storage.Store
}

func NewActivityRepository(store *storage.Store) *activityRepository {
	return &activityRepository{store: store}
}

func (r *activityRepository) List(ctx context.Context) []*domain.Activity {
	return compact(storage.Collection[*domain.Activity](ctx, r.store, storage.KeyActivities))
}
