package service

import (
	"context"
	"slices"
	"strings"

	"github.com/bagdasarian/taskflow/internal/domain"
)

func projectID(p *domain.Project) string { return p.ID }

func validateProjectInput(input *domain.ProjectInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return domain.NewValidationError("name", "is required")
	}
	if input.Status == "" {
		input.Status = domain.ProjectActive
	}
	if !input.Status.Valid() {
		return domain.NewValidationError("status", "unknown project status "+string(input.Status))
	}
	return nil
}

func validateProjectPatch(patch domain.ProjectPatch) error {
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return domain.NewValidationError("name", "is required")
	}
	if patch.Status != nil && !patch.Status.Valid() {
		return domain.NewValidationError("status", "unknown project status "+string(*patch.Status))
	}
	return nil
}

func (w *workspace) Projects() []*domain.Project {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return slices.Clone(w.projects)
}

func (w *workspace) Project(id string) *domain.Project {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return findByID(w.projects, id, projectID)
}

func (w *workspace) CreateProject(ctx context.Context, input domain.ProjectInput) (*domain.Project, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.user == nil {
		return nil, domain.ErrUnauthenticated
	}
	if err := validateProjectInput(&input); err != nil {
		return nil, err
	}

	project := w.repos.Projects.Create(ctx, w.user.ID, input)
	w.projects = append(slices.Clone(w.projects), project)

	w.opts.logger.Debug().Str("project_id", project.ID).Msg("project created")
	return project, nil
}

func (w *workspace) UpdateProject(ctx context.Context, id string, patch domain.ProjectPatch) (*domain.Project, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.user == nil {
		return nil, domain.ErrUnauthenticated
	}
	if err := validateProjectPatch(patch); err != nil {
		return nil, err
	}

	project, err := w.repos.Projects.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	w.projects = replaceByID(w.projects, project, projectID)
	return project, nil
}

func (w *workspace) UpdateProjectStatus(ctx context.Context, id string, status domain.ProjectStatus) (*domain.Project, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.user == nil {
		return nil, domain.ErrUnauthenticated
	}
	if !status.Valid() {
		return nil, domain.NewValidationError("status", "unknown project status "+string(status))
	}

	project, err := w.repos.Projects.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	w.projects = replaceByID(w.projects, project, projectID)
	return project, nil
}

func (w *workspace) DeleteProject(ctx context.Context, id string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.user == nil {
		return domain.ErrUnauthenticated
	}

	w.repos.Projects.Delete(ctx, id)
	w.repos.Tasks.DeleteByProject(ctx, id)

	w.projects = removeWhere(w.projects, func(p *domain.Project) bool { return p.ID == id })
	w.tasks = removeWhere(w.tasks, func(t *domain.Task) bool { return t.ProjectID == id })

	w.opts.logger.Debug().Str("project_id", id).Msg("project deleted")
	return nil
}

// TeamProjects lists every stored project attached to a team the user belongs to.
func (w *workspace) TeamProjects(ctx context.Context, teamID string) ([]*domain.Project, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if w.user == nil {
		return nil, domain.ErrUnauthenticated
	}
	if findByID(w.teams, teamID, teamIDOf) == nil {
		return nil, domain.NewNotFoundError("team with id " + teamID)
	}
	return w.repos.Projects.GetByTeam(ctx, teamID), nil
}

// ProjectCounts counts the user's own projects by status.
func (w *workspace) ProjectCounts(ctx context.Context) (domain.ProjectStatusCount, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if w.user == nil {
		return domain.ProjectStatusCount{}, domain.ErrUnauthenticated
	}
	return w.repos.Projects.GetCountByStatus(ctx, w.user.ID), nil
}
