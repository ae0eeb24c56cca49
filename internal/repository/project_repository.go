package repository

import (
	"context"

	"github.com/bagdasarian/taskflow/internal/domain"
)

type ProjectRepository interface {
	GetAll(ctx context.Context) []*domain.Project
	GetByID(ctx context.Context, id string) *domain.Project
	GetByOwner(ctx context.Context, ownerID string) []*domain.Project
	GetByTeam(ctx context.Context, teamID string) []*domain.Project
	GetAccessibleProjects(ctx context.Context, userID string, teamIDs []string) []*domain.Project
	GetCountByStatus(ctx context.Context, ownerID string) domain.ProjectStatusCount
	Create(ctx context.Context, ownerID string, input domain.ProjectInput) *domain.Project
	Update(ctx context.Context, id string, patch domain.ProjectPatch) (*domain.Project, error)
	UpdateStatus(ctx context.Context, id string, status domain.ProjectStatus) (*domain.Project, error)
	Delete(ctx context.Context, id string)
}
