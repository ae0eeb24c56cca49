package handler

import (
	"net/http"

	"github.com/bagdasarian/taskflow/internal/domain"
)

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req domain.RegisterData
	if !h.decode(w, r, &req) {
		return
	}

	user, err := h.workspace.Register(r.Context(), req)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, UserResponse{User: user})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req domain.LoginCredentials
	if !h.decode(w, r, &req) {
		return
	}

	user, err := h.workspace.Login(r.Context(), req)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, UserResponse{User: user})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.workspace.Logout(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	if !h.requireUser(w) {
		return
	}
	writeJSON(w, http.StatusOK, UserResponse{User: h.workspace.CurrentUser()})
}

func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req UpdateProfileRequest
	if !h.decode(w, r, &req) {
		return
	}

	user, err := h.workspace.UpdateProfile(r.Context(), profilePatchToDomain(req))
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, UserResponse{User: user})
}

func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	if err := h.workspace.Refresh(r.Context()); err != nil {
		h.handleError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
