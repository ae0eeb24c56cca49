package repository

import (
	"context"

	"github.com/bagdasarian/taskflow/internal/domain"
)

type ActivityRepository interface {
	List(ctx context.Context) []*domain.Activity
}
