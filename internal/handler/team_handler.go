package handler

import (
	"net/http"

	"github.com/bagdasarian/taskflow/internal/domain"
)

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	if !h.requireUser(w) {
		return
	}
	writeJSON(w, http.StatusOK, TeamsResponse{Teams: h.workspace.FilterTeams(r.URL.Query().Get("q"))})
}

func (h *Handler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	var req domain.TeamInput
	if !h.decode(w, r, &req) {
		return
	}

	team, err := h.workspace.CreateTeam(r.Context(), req)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, teamResponse(team))
}

func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	if !h.requireUser(w) {
		return
	}

	id := r.PathValue("id")
	team := h.workspace.Team(id)
	if team == nil {
		h.handleError(w, domain.NewNotFoundError("team with id "+id))
		return
	}

	writeJSON(w, http.StatusOK, teamResponse(team))
}

func (h *Handler) UpdateTeam(w http.ResponseWriter, r *http.Request) {
	var req TeamPatchRequest
	if !h.decode(w, r, &req) {
		return
	}

	team, err := h.workspace.UpdateTeam(r.Context(), r.PathValue("id"), teamPatchToDomain(req))
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, teamResponse(team))
}

func (h *Handler) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	if err := h.workspace.DeleteTeam(r.Context(), r.PathValue("id")); err != nil {
		h.handleError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) AddTeamMember(w http.ResponseWriter, r *http.Request) {
	var req AddMemberRequest
	if !h.decode(w, r, &req) {
		return
	}

	team, err := h.workspace.AddTeamMember(r.Context(), r.PathValue("id"), req.UserID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, teamResponse(team))
}

func (h *Handler) RemoveTeamMember(w http.ResponseWriter, r *http.Request) {
	team, err := h.workspace.RemoveTeamMember(r.Context(), r.PathValue("id"), r.PathValue("userId"))
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, teamResponse(team))
}

func (h *Handler) ListTeamMembers(w http.ResponseWriter, r *http.Request) {
	members, err := h.workspace.TeamMembers(r.Context(), r.PathValue("id"))
	if err != nil {
		h.handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, UsersResponse{Users: members})
}

func (h *Handler) ListTeamProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.workspace.TeamProjects(r.Context(), r.PathValue("id"))
	if err != nil {
		h.handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ProjectsResponse{Projects: projects})
}
