package repository

import (
	"context"

	"github.com/bagdasarian/taskflow/internal/domain"
)

type TeamRepository interface {
	GetAll(ctx context.Context) []*domain.Team
	GetByID(ctx context.Context, id string) *domain.Team
	GetByOwner(ctx context.Context, ownerID string) []*domain.Team
	GetByMember(ctx context.Context, userID string) []*domain.Team
	Create(ctx context.Context, ownerID string, input domain.TeamInput) *domain.Team
	Update(ctx context.Context, id string, patch domain.TeamPatch) (*domain.Team, error)
	Delete(ctx context.Context, id string)
	AddMember(ctx context.Context, teamID string, userID string) (*domain.Team, error)
	RemoveMember(ctx context.Context, teamID string, userID string) (*domain.Team, error)
	GetMemberCount(ctx context.Context, teamID string) int
	IsMember(ctx context.Context, teamID string, userID string) bool
	GetAllMemberIDs(ctx context.Context, teamID string) []string
}
