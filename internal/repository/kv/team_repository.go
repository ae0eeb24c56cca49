package kv

import (
	"context"

	"github.com/bagdasarian/taskflow/internal/domain"
	"github.com/bagdasarian/taskflow/internal/storage"
)

type teamRepository struct {
	store *storage.Store
	opts  options
}

func NewTeamRepository(store *storage.Store, opts ...Option) *teamRepository {
	return &teamRepository{store: store, opts: newOptions(opts)}
}

func (r *teamRepository) load(ctx context.Context) []*domain.Team {
	return compact(storage.Collection[*domain.Team](ctx, r.store, storage.KeyTeams))
}

func (r *teamRepository) save(ctx context.Context, teams []*domain.Team) {
	r.store.Set(ctx, storage.KeyTeams, teams)
}

func (r *teamRepository) filter(ctx context.Context, keep func(*domain.Team) bool) []*domain.Team {
	out := make([]*domain.Team, 0)
	for _, t := range r.load(ctx) {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}

// normalizeMembers drops blanks, duplicates and the owner, keeping first-seen order.
func normalizeMembers(ownerID string, memberIDs []string) []string {
	seen := make(map[string]struct{}, len(memberIDs))
	out := make([]string, 0, len(memberIDs))
	for _, id := range memberIDs {
		if id == "" || id == ownerID {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func (r *teamRepository) GetAll(ctx context.Context) []*domain.Team {
	return r.load(ctx)
}

func (r *teamRepository) GetByID(ctx context.Context, id string) *domain.Team {
	for _, t := range r.load(ctx) {
		if t.ID == id {
			return t
		}
	}
	return nil
}

func (r *teamRepository) GetByOwner(ctx context.Context, ownerID string) []*domain.Team {
	return r.filter(ctx, func(t *domain.Team) bool { return t.OwnerID == ownerID })
}

// GetByMember returns teams where userID is the owner or a listed member.
func (r *teamRepository) GetByMember(ctx context.Context, userID string) []*domain.Team {
	return r.filter(ctx, func(t *domain.Team) bool { return t.HasMember(userID) })
}

func (r *teamRepository) Create(ctx context.Context, ownerID string, input domain.TeamInput) *domain.Team {
	teams := r.load(ctx)

	team := &domain.Team{
		ID:          r.opts.newID(),
		Name:        input.Name,
		Description: input.Description,
		OwnerID:     ownerID,
		MemberIDs:   normalizeMembers(ownerID, input.MemberIDs),
		Color:       input.Color,
		CreatedAt:   r.opts.timestamp(),
	}

	r.save(ctx, append(teams, team))
	return team
}

func (r *teamRepository) Update(ctx context.Context, id string, patch domain.TeamPatch) (*domain.Team, error) {
	return r.modify(ctx, id, func(t *domain.Team) {
		if patch.Name != nil {
			t.Name = *patch.Name
		}
		if patch.Description != nil {
			t.Description = *patch.Description
		}
		if patch.Color != nil {
			t.Color = *patch.Color
		}
		if patch.MemberIDs != nil {
			t.MemberIDs = normalizeMembers(t.OwnerID, *patch.MemberIDs)
		}
	})
}

// Delete is idempotent. Projects referencing the team keep their TeamID.
func (r *teamRepository) Delete(ctx context.Context, id string) {
	teams := r.load(ctx)

	kept := teams[:0]
	for _, t := range teams {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	r.save(ctx, kept)
}

// AddMember is a no-op for the owner and for existing members.
func (r *teamRepository) AddMember(ctx context.Context, teamID string, userID string) (*domain.Team, error) {
	return r.modify(ctx, teamID, func(t *domain.Team) {
		if t.HasMember(userID) {
			return
		}
		t.MemberIDs = append(append([]string{}, t.MemberIDs...), userID)
	})
}

// RemoveMember cannot remove the owner, who is never in MemberIDs.
func (r *teamRepository) RemoveMember(ctx context.Context, teamID string, userID string) (*domain.Team, error) {
	return r.modify(ctx, teamID, func(t *domain.Team) {
		members := make([]string, 0, len(t.MemberIDs))
		for _, id := range t.MemberIDs {
			if id != userID {
				members = append(members, id)
			}
		}
		t.MemberIDs = members
	})
}

// GetMemberCount includes the owner; a missing team counts 0.
func (r *teamRepository) GetMemberCount(ctx context.Context, teamID string) int {
	t := r.GetByID(ctx, teamID)
	if t == nil {
		return 0
	}
	return t.MemberCount()
}

func (r *teamRepository) IsMember(ctx context.Context, teamID string, userID string) bool {
	t := r.GetByID(ctx, teamID)
	return t != nil && t.HasMember(userID)
}

func (r *teamRepository) GetAllMemberIDs(ctx context.Context, teamID string) []string {
	t := r.GetByID(ctx, teamID)
	if t == nil {
		return []string{}
	}
	return t.AllMemberIDs()
}

func (r *teamRepository) modify(ctx context.Context, id string, apply func(*domain.Team)) (*domain.Team, error) {
	teams := r.load(ctx)

	for i, t := range teams {
		if t.ID != id {
			continue
		}
		updated := *t
		if updated.MemberIDs == nil {
			updated.MemberIDs = []string{}
		}
		apply(&updated)

		teams[i] = &updated
		r.save(ctx, teams)
		return &updated, nil
	}

	return nil, domain.NewNotFoundError("team with id " + id)
}
