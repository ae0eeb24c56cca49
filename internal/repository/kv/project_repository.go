package kv

import (
	"context"

	"github.com/bagdasarian/taskflow/internal/domain"
	"github.com/bagdasarian/taskflow/internal/storage"
)

type projectRepository struct {
	store *storage.Store
	opts  options
}

func NewProjectRepository(store *storage.Store, opts ...Option) *projectRepository {
	return &projectRepository{store: store, opts: newOptions(opts)}
}

func (r *projectRepository) load(ctx context.Context) []*domain.Project {
	return compact(storage.Collection[*domain.Project](ctx, r.store, storage.KeyProjects))
}

func (r *projectRepository) save(ctx context.Context, projects []*domain.Project) {
	r.store.Set(ctx, storage.KeyProjects, projects)
}

func (r *projectRepository) filter(ctx context.Context, keep func(*domain.Project) bool) []*domain.Project {
	out := make([]*domain.Project, 0)
	for _, p := range r.load(ctx) {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

func (r *projectRepository) GetAll(ctx context.Context) []*domain.Project {
	return r.load(ctx)
}

func (r *projectRepository) GetByID(ctx context.Context, id string) *domain.Project {
	for _, p := range r.load(ctx) {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func (r *projectRepository) GetByOwner(ctx context.Context, ownerID string) []*domain.Project {
	return r.filter(ctx, func(p *domain.Project) bool { return p.OwnerID == ownerID })
}

func (r *projectRepository) GetByTeam(ctx context.Context, teamID string) []*domain.Project {
	return r.filter(ctx, func(p *domain.Project) bool { return p.TeamID != "" && p.TeamID == teamID })
}

// GetAccessibleProjects returns projects owned by userID or attached to one of teamIDs.
func (r *projectRepository) GetAccessibleProjects(ctx context.Context, userID string, teamIDs []string) []*domain.Project {
	teams := make(map[string]struct{}, len(teamIDs))
	for _, id := range teamIDs {
		teams[id] = struct{}{}
	}
	return r.filter(ctx, func(p *domain.Project) bool {
		if p.OwnerID == userID {
			return true
		}
		if p.TeamID == "" {
			return false
		}
		_, ok := teams[p.TeamID]
		return ok
	})
}

// GetCountByStatus counts only projects owned by ownerID, not team projects.
func (r *projectRepository) GetCountByStatus(ctx context.Context, ownerID string) domain.ProjectStatusCount {
	var count domain.ProjectStatusCount
	for _, p := range r.GetByOwner(ctx, ownerID) {
		switch p.Status {
		case domain.ProjectActive:
			count.Active++
		case domain.ProjectCompleted:
			count.Completed++
		case domain.ProjectArchived:
			count.Archived++
		}
	}
	return count
}

func (r *projectRepository) Create(ctx context.Context, ownerID string, input domain.ProjectInput) *domain.Project {
	projects := r.load(ctx)

	now := r.opts.timestamp()
	project := &domain.Project{
		ID:          r.opts.newID(),
		Name:        input.Name,
		Description: input.Description,
		OwnerID:     ownerID,
		TeamID:      input.TeamID,
		Status:      input.Status,
		Color:       input.Color,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	r.save(ctx, append(projects, project))
	return project
}

func (r *projectRepository) Update(ctx context.Context, id string, patch domain.ProjectPatch) (*domain.Project, error) {
	projects := r.load(ctx)

	for i, p := range projects {
		if p.ID != id {
			continue
		}
		updated := *p
		if patch.Name != nil {
			updated.Name = *patch.Name
		}
		if patch.Description != nil {
			updated.Description = *patch.Description
		}
		if patch.TeamID != nil {
			updated.TeamID = *patch.TeamID
		}
		if patch.Status != nil {
			updated.Status = *patch.Status
		}
		if patch.Color != nil {
			updated.Color = *patch.Color
		}
		updated.UpdatedAt = r.opts.touch(p.UpdatedAt)

		projects[i] = &updated
		r.save(ctx, projects)
		return &updated, nil
	}

	return nil, domain.NewNotFoundError("project with id " + id)
}

func (r *projectRepository) UpdateStatus(ctx context.Context, id string, status domain.ProjectStatus) (*domain.Project, error) {
	return r.Update(ctx, id, domain.ProjectPatch{Status: &status})
}

// Delete is idempotent. Tasks of the project are removed by the caller.
func (r *projectRepository) Delete(ctx context.Context, id string) {
	projects := r.load(ctx)

	kept := projects[:0]
	for _, p := range projects {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	r.save(ctx, kept)
}
