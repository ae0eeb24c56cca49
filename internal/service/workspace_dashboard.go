package service

import (
	"math"
	"slices"
	"strings"

	"github.com/bagdasarian/taskflow/internal/domain"
)

func (w *workspace) DashboardStats() domain.DashboardStats {
	w.mu.RLock()
	defer w.mu.RUnlock()

	now := w.opts.clock()
	stats := domain.DashboardStats{
		TotalTasks:    len(w.tasks),
		TotalProjects: len(w.projects),
		TotalTeams:    len(w.teams),
	}
	for _, t := range w.tasks {
		switch t.Status {
		case domain.TaskDone:
			stats.CompletedTasks++
		case domain.TaskInProgress:
			stats.InProgressTasks++
		}
		if t.IsOverdue(now) {
			stats.OverdueTasks++
		}
	}
	for _, p := range w.projects {
		if p.Status == domain.ProjectActive {
			stats.ActiveProjects++
		}
	}
	return stats
}

// RecentActivity returns the most recently updated tasks, newest first.
func (w *workspace) RecentActivity(limit int) []*domain.Task {
	w.mu.RLock()
	defer w.mu.RUnlock()

	tasks := slices.Clone(w.tasks)
	slices.SortStableFunc(tasks, func(a, b *domain.Task) int {
		return b.UpdatedAt.Compare(a.UpdatedAt)
	})
	return head(tasks, limit)
}

func (w *workspace) RecentProjects(limit int) []*domain.Project {
	w.mu.RLock()
	defer w.mu.RUnlock()

	projects := slices.Clone(w.projects)
	slices.SortStableFunc(projects, func(a, b *domain.Project) int {
		return b.UpdatedAt.Compare(a.UpdatedAt)
	})
	return head(projects, limit)
}

func (w *workspace) ProjectProgress(projectID string) int {
	w.mu.RLock()
	defer w.mu.RUnlock()

	var total, done int
	for _, t := range w.tasks {
		if t.ProjectID != projectID {
			continue
		}
		total++
		if t.Status == domain.TaskDone {
			done++
		}
	}
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(done) * 100 / float64(total)))
}

// FilterProjects matches query against name and description; an empty status
// matches every status.
func (w *workspace) FilterProjects(query string, status domain.ProjectStatus) []*domain.Project {
	w.mu.RLock()
	defer w.mu.RUnlock()

	q := strings.ToLower(query)
	return removeWhere(w.projects, func(p *domain.Project) bool {
		if status != "" && p.Status != status {
			return true
		}
		return !strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Description), q)
	})
}

func (w *workspace) FilterTeams(query string) []*domain.Team {
	w.mu.RLock()
	defer w.mu.RUnlock()

	q := strings.ToLower(query)
	return removeWhere(w.teams, func(t *domain.Team) bool {
		return !strings.Contains(strings.ToLower(t.Name), q) &&
			!strings.Contains(strings.ToLower(t.Description), q)
	})
}

// head returns at most limit items; a non-positive limit returns all of them.
func head[T any](items []T, limit int) []T {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}
