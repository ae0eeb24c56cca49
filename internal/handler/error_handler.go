package handler

import (
	"errors"
	"net/http"

	"github.com/bagdasarian/taskflow/internal/domain"
)

const (
	CodeBadRequest    = "BAD_REQUEST"
	CodeInternalError = "INTERNAL_ERROR"
)

func (h *Handler) handleError(w http.ResponseWriter, err error) {
	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		writeJSON(w, getStatusCode(domainErr.Code), ErrorResponse{
			Error: ErrorDetail{
				Code:    domainErr.Code,
				Message: domainErr.Message,
			},
		})
		return
	}

	h.log.Error().Stack().Err(err).Msg("request failed")
	writeJSON(w, http.StatusInternalServerError, ErrorResponse{
		Error: ErrorDetail{
			Code:    CodeInternalError,
			Message: "internal server error",
		},
	})
}

func getStatusCode(errorCode string) int {
	switch errorCode {
	case CodeBadRequest, domain.CodeValidation:
		return http.StatusBadRequest
	case domain.CodeInvalidCredentials, domain.CodeUnauthenticated:
		return http.StatusUnauthorized
	case domain.CodeDuplicateEmail:
		return http.StatusConflict
	case domain.CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
