package handler

import "github.com/bagdasarian/taskflow/internal/domain"

func profilePatchToDomain(req UpdateProfileRequest) domain.UserPatch {
	return domain.UserPatch{
		Name:   req.Name,
		Email:  req.Email,
		Avatar: req.Avatar,
	}
}

func projectPatchToDomain(req ProjectPatchRequest) domain.ProjectPatch {
	return domain.ProjectPatch{
		Name:        req.Name,
		Description: req.Description,
		TeamID:      req.TeamID,
		Status:      req.Status,
		Color:       req.Color,
	}
}

func taskPatchToDomain(req TaskPatchRequest) domain.TaskPatch {
	return domain.TaskPatch{
		Title:        req.Title,
		Description:  req.Description,
		ProjectID:    req.ProjectID,
		AssigneeID:   req.AssigneeID,
		Status:       req.Status,
		Priority:     req.Priority,
		DueDate:      req.DueDate,
		ClearDueDate: req.ClearDueDate,
		Tags:         req.Tags,
	}
}

func teamPatchToDomain(req TeamPatchRequest) domain.TeamPatch {
	return domain.TeamPatch{
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
		MemberIDs:   req.MemberIDs,
	}
}

func teamResponse(team *domain.Team) TeamResponse {
	return TeamResponse{
		Team:        team,
		MemberCount: team.MemberCount(),
	}
}
