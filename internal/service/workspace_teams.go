package service

import (
	"context"
	"slices"
	"strings"

	"github.com/bagdasarian/taskflow/internal/domain"
)

func teamIDOf(t *domain.Team) string { return t.ID }

func (w *workspace) Teams() []*domain.Team {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return slices.Clone(w.teams)
}

func (w *workspace) Team(id string) *domain.Team {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return findByID(w.teams, id, teamIDOf)
}

func (w *workspace) CreateTeam(ctx context.Context, input domain.TeamInput) (*domain.Team, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.user == nil {
		return nil, domain.ErrUnauthenticated
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, domain.NewValidationError("name", "is required")
	}

	team := w.repos.Teams.Create(ctx, w.user.ID, input)
	w.teams = append(slices.Clone(w.teams), team)

	w.opts.logger.Debug().Str("team_id", team.ID).Msg("team created")
	return team, nil
}

func (w *workspace) UpdateTeam(ctx context.Context, id string, patch domain.TeamPatch) (*domain.Team, error) {
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return nil, domain.NewValidationError("name", "is required")
	}
	return w.patchTeam(func() (*domain.Team, error) {
		return w.repos.Teams.Update(ctx, id, patch)
	})
}

// AddTeamMember is a no-op for users who already belong to the team.
func (w *workspace) AddTeamMember(ctx context.Context, teamID, userID string) (*domain.Team, error) {
	if userID == "" {
		return nil, domain.NewValidationError("userId", "is required")
	}
	return w.patchTeam(func() (*domain.Team, error) {
		return w.repos.Teams.AddMember(ctx, teamID, userID)
	})
}

func (w *workspace) RemoveTeamMember(ctx context.Context, teamID, userID string) (*domain.Team, error) {
	return w.patchTeam(func() (*domain.Team, error) {
		return w.repos.Teams.RemoveMember(ctx, teamID, userID)
	})
}

func (w *workspace) patchTeam(write func() (*domain.Team, error)) (*domain.Team, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.user == nil {
		return nil, domain.ErrUnauthenticated
	}

	team, err := write()
	if err != nil {
		return nil, err
	}
	w.teams = replaceByID(w.teams, team, teamIDOf)
	return team, nil
}

// DeleteTeam leaves projects that reference the team untouched.
func (w *workspace) DeleteTeam(ctx context.Context, id string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.user == nil {
		return domain.ErrUnauthenticated
	}

	w.repos.Teams.Delete(ctx, id)
	w.teams = removeWhere(w.teams, func(t *domain.Team) bool { return t.ID == id })
	return nil
}

// TeamMembers skips member IDs that match no known user.
func (w *workspace) TeamMembers(ctx context.Context, teamID string) ([]*domain.User, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if w.user == nil {
		return nil, domain.ErrUnauthenticated
	}

	ids := w.repos.Teams.GetAllMemberIDs(ctx, teamID)
	if len(ids) == 0 {
		return nil, domain.NewNotFoundError("team with id " + teamID)
	}

	members := make([]*domain.User, 0, len(ids))
	for _, id := range ids {
		if u := findByID(w.users, id, func(u *domain.User) string { return u.ID }); u != nil {
			members = append(members, u)
		}
	}
	return members, nil
}
