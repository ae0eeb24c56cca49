package handler

import (
	"net/http"

	"github.com/bagdasarian/taskflow/internal/domain"
)

func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	if !h.requireUser(w) {
		return
	}
	writeJSON(w, http.StatusOK, UsersResponse{Users: h.workspace.Users()})
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	if !h.requireUser(w) {
		return
	}

	id := r.PathValue("id")
	user := h.workspace.User(id)
	if user == nil {
		h.handleError(w, domain.NewNotFoundError("user with id "+id))
		return
	}

	writeJSON(w, http.StatusOK, UserResponse{User: user})
}
