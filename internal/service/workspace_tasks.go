package service

import (
	"context"
	"slices"
	"strings"

	"github.com/bagdasarian/taskflow/internal/domain"
)

func taskID(t *domain.Task) string { return t.ID }

func validateTaskInput(input *domain.TaskInput) error {
	if strings.TrimSpace(input.Title) == "" {
		return domain.NewValidationError("title", "is required")
	}
	if input.ProjectID == "" {
		return domain.NewValidationError("projectId", "is required")
	}
	if input.Status == "" {
		input.Status = domain.TaskTodo
	}
	if !input.Status.Valid() {
		return domain.NewValidationError("status", "unknown task status "+string(input.Status))
	}
	if input.Priority == "" {
		input.Priority = domain.PriorityMedium
	}
	if !input.Priority.Valid() {
		return domain.NewValidationError("priority", "unknown task priority "+string(input.Priority))
	}
	return nil
}

func validateTaskPatch(patch domain.TaskPatch) error {
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return domain.NewValidationError("title", "is required")
	}
	if patch.ProjectID != nil && *patch.ProjectID == "" {
		return domain.NewValidationError("projectId", "is required")
	}
	if patch.Status != nil && !patch.Status.Valid() {
		return domain.NewValidationError("status", "unknown task status "+string(*patch.Status))
	}
	if patch.Priority != nil && !patch.Priority.Valid() {
		return domain.NewValidationError("priority", "unknown task priority "+string(*patch.Priority))
	}
	return nil
}

func (w *workspace) Tasks() []*domain.Task {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return slices.Clone(w.tasks)
}

func (w *workspace) Task(id string) *domain.Task {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return findByID(w.tasks, id, taskID)
}

func (w *workspace) TasksByProject(projectID string) []*domain.Task {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return removeWhere(w.tasks, func(t *domain.Task) bool { return t.ProjectID != projectID })
}

func (w *workspace) CreateTask(ctx context.Context, input domain.TaskInput) (*domain.Task, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.user == nil {
		return nil, domain.ErrUnauthenticated
	}
	if err := validateTaskInput(&input); err != nil {
		return nil, err
	}

	task := w.repos.Tasks.Create(ctx, input)
	w.tasks = append(slices.Clone(w.tasks), task)
	return task, nil
}

func (w *workspace) UpdateTask(ctx context.Context, id string, patch domain.TaskPatch) (*domain.Task, error) {
	if err := validateTaskPatch(patch); err != nil {
		return nil, err
	}
	return w.patchTask(func() (*domain.Task, error) {
		return w.repos.Tasks.Update(ctx, id, patch)
	})
}

func (w *workspace) UpdateTaskStatus(ctx context.Context, id string, status domain.TaskStatus) (*domain.Task, error) {
	if !status.Valid() {
		return nil, domain.NewValidationError("status", "unknown task status "+string(status))
	}
	return w.patchTask(func() (*domain.Task, error) {
		return w.repos.Tasks.UpdateStatus(ctx, id, status)
	})
}

func (w *workspace) UpdateTaskPriority(ctx context.Context, id string, priority domain.TaskPriority) (*domain.Task, error) {
	if !priority.Valid() {
		return nil, domain.NewValidationError("priority", "unknown task priority "+string(priority))
	}
	return w.patchTask(func() (*domain.Task, error) {
		return w.repos.Tasks.UpdatePriority(ctx, id, priority)
	})
}

// AssignTask sets the assignee; an empty assigneeID unassigns.
func (w *workspace) AssignTask(ctx context.Context, id string, assigneeID string) (*domain.Task, error) {
	return w.patchTask(func() (*domain.Task, error) {
		return w.repos.Tasks.AssignTask(ctx, id, assigneeID)
	})
}

func (w *workspace) patchTask(write func() (*domain.Task, error)) (*domain.Task, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.user == nil {
		return nil, domain.ErrUnauthenticated
	}

	task, err := write()
	if err != nil {
		return nil, err
	}
	w.tasks = replaceByID(w.tasks, task, taskID)
	return task, nil
}

func (w *workspace) DeleteTask(ctx context.Context, id string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.user == nil {
		return domain.ErrUnauthenticated
	}

	w.repos.Tasks.Delete(ctx, id)
	w.tasks = removeWhere(w.tasks, func(t *domain.Task) bool { return t.ID == id })
	return nil
}

func (w *workspace) SearchTasks(ctx context.Context, query string) ([]*domain.Task, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if w.user == nil {
		return nil, domain.ErrUnauthenticated
	}
	return w.repos.Tasks.Search(ctx, query, w.accessibleProjectIDs()), nil
}

// MyTasks matches Query against title and description only, not tags.
func (w *workspace) MyTasks(filter TaskFilter) []*domain.Task {
	w.mu.RLock()
	defer w.mu.RUnlock()

	out := make([]*domain.Task, 0)
	if w.user == nil {
		return out
	}

	q := strings.ToLower(filter.Query)
	for _, t := range w.tasks {
		if t.AssigneeID != w.user.ID {
			continue
		}
		if !strings.Contains(strings.ToLower(t.Title), q) &&
			!strings.Contains(strings.ToLower(t.Description), q) {
			continue
		}
		if filter.Status != "" && t.Status != filter.Status {
			continue
		}
		if filter.Priority != "" && t.Priority != filter.Priority {
			continue
		}
		out = append(out, t)
	}
	return out
}

func (w *workspace) GroupedTasks(ctx context.Context, projectID string) (map[domain.TaskStatus][]*domain.Task, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if w.user == nil {
		return nil, domain.ErrUnauthenticated
	}
	return w.repos.Tasks.GetGroupedByStatus(ctx, projectID), nil
}

// TaskStats covers the tasks of accessible projects only.
func (w *workspace) TaskStats(ctx context.Context) (domain.TaskStats, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if w.user == nil {
		return domain.TaskStats{}, domain.ErrUnauthenticated
	}
	return w.repos.Tasks.GetStats(ctx, w.accessibleProjectIDs()), nil
}

func (w *workspace) OverdueTasks(ctx context.Context) ([]*domain.Task, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if w.user == nil {
		return nil, domain.ErrUnauthenticated
	}
	return w.repos.Tasks.GetOverdueTasks(ctx, w.accessibleProjectIDs()), nil
}
