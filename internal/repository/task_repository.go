package repository

import (
	"context"

	"github.com/bagdasarian/taskflow/internal/domain"
)

// TaskRepository filters accept a projectIDs set: nil means every project,
// an empty non-nil slice matches nothing.
type TaskRepository interface {
	GetAll(ctx context.Context) []*domain.Task
	GetByID(ctx context.Context, id string) *domain.Task
	GetByProject(ctx context.Context, projectID string) []*domain.Task
	GetByAssignee(ctx context.Context, assigneeID string) []*domain.Task
	GetByStatus(ctx context.Context, projectID string, status domain.TaskStatus) []*domain.Task
	GetOverdueTasks(ctx context.Context, projectIDs []string) []*domain.Task
	GetStats(ctx context.Context, projectIDs []string) domain.TaskStats
	GetGroupedByStatus(ctx context.Context, projectID string) map[domain.TaskStatus][]*domain.Task
	Search(ctx context.Context, query string, projectIDs []string) []*domain.Task
	Create(ctx context.Context, input domain.TaskInput) *domain.Task
	Update(ctx context.Context, id string, patch domain.TaskPatch) (*domain.Task, error)
	UpdateStatus(ctx context.Context, id string, status domain.TaskStatus) (*domain.Task, error)
	UpdatePriority(ctx context.Context, id string, priority domain.TaskPriority) (*domain.Task, error)
	AssignTask(ctx context.Context, id string, assigneeID string) (*domain.Task, error)
	Delete(ctx context.Context, id string)
	DeleteByProject(ctx context.Context, projectID string)
}
