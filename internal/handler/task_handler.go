package handler

import (
	"net/http"

	"github.com/bagdasarian/taskflow/internal/domain"
	"github.com/bagdasarian/taskflow/internal/service"
)

func (h *Handler) ListTasks(w http.ResponseWriter, r *http.Request) {
	if !h.requireUser(w) {
		return
	}
	writeJSON(w, http.StatusOK, TasksResponse{Tasks: h.workspace.Tasks()})
}

// ListMyTasks returns tasks assigned to the current user, filtered by ?q=,
// ?status= and ?priority=.
func (h *Handler) ListMyTasks(w http.ResponseWriter, r *http.Request) {
	if !h.requireUser(w) {
		return
	}

	query := r.URL.Query()
	filter := service.TaskFilter{
		Query:    query.Get("q"),
		Status:   domain.TaskStatus(query.Get("status")),
		Priority: domain.TaskPriority(query.Get("priority")),
	}
	if filter.Status != "" && !filter.Status.Valid() {
		h.handleError(w, domain.NewValidationError("status", "unknown task status "+string(filter.Status)))
		return
	}
	if filter.Priority != "" && !filter.Priority.Valid() {
		h.handleError(w, domain.NewValidationError("priority", "unknown task priority "+string(filter.Priority)))
		return
	}

	writeJSON(w, http.StatusOK, TasksResponse{Tasks: h.workspace.MyTasks(filter)})
}

func (h *Handler) SearchTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.workspace.SearchTasks(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		h.handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, TasksResponse{Tasks: tasks})
}

func (h *Handler) ListOverdueTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.workspace.OverdueTasks(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, TasksResponse{Tasks: tasks})
}

func (h *Handler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req domain.TaskInput
	if !h.decode(w, r, &req) {
		return
	}

	task, err := h.workspace.CreateTask(r.Context(), req)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, TaskResponse{Task: task})
}

func (h *Handler) GetTask(w http.ResponseWriter, r *http.Request) {
	if !h.requireUser(w) {
		return
	}

	id := r.PathValue("id")
	task := h.workspace.Task(id)
	if task == nil {
		h.handleError(w, domain.NewNotFoundError("task with id "+id))
		return
	}

	writeJSON(w, http.StatusOK, TaskResponse{Task: task})
}

func (h *Handler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	var req TaskPatchRequest
	if !h.decode(w, r, &req) {
		return
	}

	task, err := h.workspace.UpdateTask(r.Context(), r.PathValue("id"), taskPatchToDomain(req))
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, TaskResponse{Task: task})
}

func (h *Handler) UpdateTaskStatus(w http.ResponseWriter, r *http.Request) {
	var req TaskStatusRequest
	if !h.decode(w, r, &req) {
		return
	}

	task, err := h.workspace.UpdateTaskStatus(r.Context(), r.PathValue("id"), req.Status)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, TaskResponse{Task: task})
}

func (h *Handler) UpdateTaskPriority(w http.ResponseWriter, r *http.Request) {
	var req TaskPriorityRequest
	if !h.decode(w, r, &req) {
		return
	}

	task, err := h.workspace.UpdateTaskPriority(r.Context(), r.PathValue("id"), req.Priority)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, TaskResponse{Task: task})
}

func (h *Handler) AssignTask(w http.ResponseWriter, r *http.Request) {
	var req AssignTaskRequest
	if !h.decode(w, r, &req) {
		return
	}

	task, err := h.workspace.AssignTask(r.Context(), r.PathValue("id"), req.AssigneeID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, TaskResponse{Task: task})
}

func (h *Handler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	if err := h.workspace.DeleteTask(r.Context(), r.PathValue("id")); err != nil {
		h.handleError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
