package handler

import (
	"net/http"
	"strconv"
)

const (
	defaultRecentLimit  = 5
	recentProjectsLimit = 3
)

func limitParam(r *http.Request, fallback int) int {
	if n, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && n > 0 {
		return n
	}
	return fallback
}

// GetDashboard returns headline counts plus recently updated tasks and projects.
func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	if !h.requireUser(w) {
		return
	}

	limit := limitParam(r, defaultRecentLimit)
	writeJSON(w, http.StatusOK, DashboardResponse{
		Stats:          h.workspace.DashboardStats(),
		RecentTasks:    h.workspace.RecentActivity(limit),
		RecentProjects: h.workspace.RecentProjects(recentProjectsLimit),
	})
}

func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.workspace.TaskStats(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}

	projects, err := h.workspace.ProjectCounts(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, StatsResponse{Tasks: tasks, Projects: projects})
}

func (h *Handler) ListActivities(w http.ResponseWriter, r *http.Request) {
	activities, err := h.workspace.Activities(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ActivitiesResponse{Activities: activities})
}
