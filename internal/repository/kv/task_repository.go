package kv

import (
	"context"
	"strings"

	"github.com/bagdasarian/taskflow/internal/domain"
	"github.com/bagdasarian/taskflow/internal/storage"
)

type taskRepository struct {
	store *storage.Store
	opts  options
}

func NewTaskRepository(store *storage.Store, opts ...Option) *taskRepository {
	return &taskRepository{store: store, opts: newOptions(opts)}
}

func (r *taskRepository) load(ctx context.Context) []*domain.Task {
	return compact(storage.Collection[*domain.Task](ctx, r.store, storage.KeyTasks))
}

func (r *taskRepository) save(ctx context.Context, tasks []*domain.Task) {
	r.store.Set(ctx, storage.KeyTasks, tasks)
}

func (r *taskRepository) filter(ctx context.Context, keep func(*domain.Task) bool) []*domain.Task {
	out := make([]*domain.Task, 0)
	for _, t := range r.load(ctx) {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}

func (r *taskRepository) GetAll(ctx context.Context) []*domain.Task {
	return r.load(ctx)
}

func (r *taskRepository) GetByID(ctx context.Context, id string) *domain.Task {
	for _, t := range r.load(ctx) {
		if t.ID == id {
			return t
		}
	}
	return nil
}

func (r *taskRepository) GetByProject(ctx context.Context, projectID string) []*domain.Task {
	return r.filter(ctx, func(t *domain.Task) bool { return t.ProjectID == projectID })
}

func (r *taskRepository) GetByAssignee(ctx context.Context, assigneeID string) []*domain.Task {
	return r.filter(ctx, func(t *domain.Task) bool { return t.AssigneeID != "" && t.AssigneeID == assigneeID })
}

func (r *taskRepository) GetByStatus(ctx context.Context, projectID string, status domain.TaskStatus) []*domain.Task {
	return r.filter(ctx, func(t *domain.Task) bool { return t.ProjectID == projectID && t.Status == status })
}

func (r *taskRepository) GetOverdueTasks(ctx context.Context, projectIDs []string) []*domain.Task {
	inProjects := projectFilter(projectIDs)
	now := r.opts.clock()
	return r.filter(ctx, func(t *domain.Task) bool {
		return inProjects(t.ProjectID) && t.IsOverdue(now)
	})
}

func (r *taskRepository) GetStats(ctx context.Context, projectIDs []string) domain.TaskStats {
	inProjects := projectFilter(projectIDs)
	now := r.opts.clock()

	var stats domain.TaskStats
	for _, t := range r.load(ctx) {
		if !inProjects(t.ProjectID) {
			continue
		}
		stats.Total++
		switch t.Status {
		case domain.TaskTodo:
			stats.Todo++
		case domain.TaskInProgress:
			stats.InProgress++
		case domain.TaskReview:
			stats.Review++
		case domain.TaskDone:
			stats.Done++
		}
		if t.IsOverdue(now) {
			stats.Overdue++
		}
	}
	return stats
}

// GetGroupedByStatus always returns all four status keys.
func (r *taskRepository) GetGroupedByStatus(ctx context.Context, projectID string) map[domain.TaskStatus][]*domain.Task {
	return groupByStatus(r.GetByProject(ctx, projectID))
}

func groupByStatus(tasks []*domain.Task) map[domain.TaskStatus][]*domain.Task {
	groups := make(map[domain.TaskStatus][]*domain.Task, len(domain.TaskStatuses))
	for _, status := range domain.TaskStatuses {
		groups[status] = make([]*domain.Task, 0)
	}
	for _, t := range tasks {
		if _, ok := groups[t.Status]; ok {
			groups[t.Status] = append(groups[t.Status], t)
		}
	}
	return groups
}

// Search matches query case-insensitively against title, description and tags.
// Results keep stored order.
func (r *taskRepository) Search(ctx context.Context, query string, projectIDs []string) []*domain.Task {
	inProjects := projectFilter(projectIDs)
	return r.filter(ctx, func(t *domain.Task) bool {
		return inProjects(t.ProjectID) && MatchesQuery(t, query)
	})
}

// MatchesQuery reports a case-insensitive substring match on title, description or any tag.
func MatchesQuery(t *domain.Task, query string) bool {
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(t.Title), q) ||
		strings.Contains(strings.ToLower(t.Description), q) {
		return true
	}
	for _, tag := range t.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

func (r *taskRepository) Create(ctx context.Context, input domain.TaskInput) *domain.Task {
	tasks := r.load(ctx)

	tags := input.Tags
	if tags == nil {
		tags = []string{}
	}

	now := r.opts.timestamp()
	task := &domain.Task{
		ID:          r.opts.newID(),
		Title:       input.Title,
		Description: input.Description,
		ProjectID:   input.ProjectID,
		AssigneeID:  input.AssigneeID,
		Status:      input.Status,
		Priority:    input.Priority,
		DueDate:     persistedTime(input.DueDate),
		Tags:        tags,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	r.save(ctx, append(tasks, task))
	return task
}

func (r *taskRepository) Update(ctx context.Context, id string, patch domain.TaskPatch) (*domain.Task, error) {
	tasks := r.load(ctx)

	for i, t := range tasks {
		if t.ID != id {
			continue
		}
		updated := *t
		if patch.Title != nil {
			updated.Title = *patch.Title
		}
		if patch.Description != nil {
			updated.Description = *patch.Description
		}
		if patch.ProjectID != nil {
			updated.ProjectID = *patch.ProjectID
		}
		if patch.AssigneeID != nil {
			updated.AssigneeID = *patch.AssigneeID
		}
		if patch.Status != nil {
			updated.Status = *patch.Status
		}
		if patch.Priority != nil {
			updated.Priority = *patch.Priority
		}
		if patch.ClearDueDate {
			updated.DueDate = nil
		} else if patch.DueDate != nil {
			updated.DueDate = persistedTime(patch.DueDate)
		}
		if patch.Tags != nil {
			updated.Tags = append([]string{}, (*patch.Tags)...)
		}
		updated.UpdatedAt = r.opts.touch(t.UpdatedAt)

		tasks[i] = &updated
		r.save(ctx, tasks)
		return &updated, nil
	}

	return nil, domain.NewNotFoundError("task with id " + id)
}

func (r *taskRepository) UpdateStatus(ctx context.Context, id string, status domain.TaskStatus) (*domain.Task, error) {
	return r.Update(ctx, id, domain.TaskPatch{Status: &status})
}

func (r *taskRepository) UpdatePriority(ctx context.Context, id string, priority domain.TaskPriority) (*domain.Task, error) {
	return r.Update(ctx, id, domain.TaskPatch{Priority: &priority})
}

// AssignTask sets the assignee; an empty assigneeID unassigns.
func (r *taskRepository) AssignTask(ctx context.Context, id string, assigneeID string) (*domain.Task, error) {
	return r.Update(ctx, id, domain.TaskPatch{AssigneeID: &assigneeID})
}

func (r *taskRepository) Delete(ctx context.Context, id string) {
	r.removeWhere(ctx, func(t *domain.Task) bool { return t.ID == id })
}

func (r *taskRepository) DeleteByProject(ctx context.Context, projectID string) {
	r.removeWhere(ctx, func(t *domain.Task) bool { return t.ProjectID == projectID })
}

func (r *taskRepository) removeWhere(ctx context.Context, drop func(*domain.Task) bool) {
	tasks := r.load(ctx)

	kept := tasks[:0]
	for _, t := range tasks {
		if !drop(t) {
			kept = append(kept, t)
		}
	}
	r.save(ctx, kept)
}
