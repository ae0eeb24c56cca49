package handler

import (
	"net/http"

	"github.com/bagdasarian/taskflow/internal/domain"
)

// ListProjects supports ?q= and ?status= filters.
func (h *Handler) ListProjects(w http.ResponseWriter, r *http.Request) {
	if !h.requireUser(w) {
		return
	}

	query := r.URL.Query()
	status := domain.ProjectStatus(query.Get("status"))
	if status != "" && !status.Valid() {
		h.handleError(w, domain.NewValidationError("status", "unknown project status "+string(status)))
		return
	}

	writeJSON(w, http.StatusOK, ProjectsResponse{
		Projects: h.workspace.FilterProjects(query.Get("q"), status),
	})
}

func (h *Handler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req domain.ProjectInput
	if !h.decode(w, r, &req) {
		return
	}

	project, err := h.workspace.CreateProject(r.Context(), req)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, ProjectResponse{Project: project})
}

func (h *Handler) GetProject(w http.ResponseWriter, r *http.Request) {
	if !h.requireUser(w) {
		return
	}

	id := r.PathValue("id")
	project := h.workspace.Project(id)
	if project == nil {
		h.handleError(w, domain.NewNotFoundError("project with id "+id))
		return
	}

	writeJSON(w, http.StatusOK, ProjectResponse{
		Project:  project,
		Progress: h.workspace.ProjectProgress(id),
	})
}

func (h *Handler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	var req ProjectPatchRequest
	if !h.decode(w, r, &req) {
		return
	}

	id := r.PathValue("id")
	project, err := h.workspace.UpdateProject(r.Context(), id, projectPatchToDomain(req))
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ProjectResponse{
		Project:  project,
		Progress: h.workspace.ProjectProgress(id),
	})
}

func (h *Handler) UpdateProjectStatus(w http.ResponseWriter, r *http.Request) {
	var req ProjectStatusRequest
	if !h.decode(w, r, &req) {
		return
	}

	id := r.PathValue("id")
	project, err := h.workspace.UpdateProjectStatus(r.Context(), id, req.Status)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ProjectResponse{
		Project:  project,
		Progress: h.workspace.ProjectProgress(id),
	})
}

func (h *Handler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	if err := h.workspace.DeleteProject(r.Context(), r.PathValue("id")); err != nil {
		h.handleError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetProjectTasks returns the project's tasks, or its board columns with ?grouped=true.
func (h *Handler) GetProjectTasks(w http.ResponseWriter, r *http.Request) {
	if !h.requireUser(w) {
		return
	}

	id := r.PathValue("id")
	if r.URL.Query().Get("grouped") == "true" {
		columns, err := h.workspace.GroupedTasks(r.Context(), id)
		if err != nil {
			h.handleError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, GroupedTasksResponse{ProjectID: id, Columns: columns})
		return
	}

	writeJSON(w, http.StatusOK, TasksResponse{Tasks: h.workspace.TasksByProject(id)})
}
