package handler

import (
	"encoding/json"
	"net/http"

	"github.com/bagdasarian/taskflow/internal/domain"
	"github.com/bagdasarian/taskflow/internal/service"
	"github.com/rs/zerolog"
)

type Handler struct {
	workspace service.Workspace
	log       zerolog.Logger
}

func NewHandler(workspace service.Workspace, log zerolog.Logger) *Handler {
	return &Handler{
		workspace: workspace,
		log:       log.With().Str("component", "http").Logger(),
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.handleError(w, &domain.DomainError{
			Code:    CodeBadRequest,
			Message: "invalid request body: " + err.Error(),
		})
		return false
	}
	return true
}

// requireUser writes UNAUTHENTICATED and reports false when nobody is signed in.
func (h *Handler) requireUser(w http.ResponseWriter) bool {
	if h.workspace.CurrentUser() == nil {
		h.handleError(w, domain.ErrUnauthenticated)
		return false
	}
	return true
}
