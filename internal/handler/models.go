package handler

import (
	"encoding/json"
	"time"

	"github.com/bagdasarian/taskflow/internal/domain"
)

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type UserResponse struct {
	User *domain.User `json:"user"`
}

type UsersResponse struct {
	Users []*domain.User `json:"users"`
}

type UpdateProfileRequest struct {
	Name   *string `json:"name"`
	Email  *string `json:"email"`
	Avatar *string `json:"avatar"`
}

type ProjectPatchRequest struct {
	Name        *string               `json:"name"`
	Description *string               `json:"description"`
	TeamID      *string               `json:"teamId"`
	Status      *domain.ProjectStatus `json:"status"`
	Color       *string               `json:"color"`
}

type ProjectResponse struct {
	Project  *domain.Project `json:"project"`
	Progress int             `json:"progress"`
}

type ProjectsResponse struct {
	Projects []*domain.Project `json:"projects"`
}

type ProjectStatusRequest struct {
	Status domain.ProjectStatus `json:"status"`
}

// TaskPatchRequest sends null or omits a field to leave it unchanged;
// clearDueDate or an empty dueDate string removes the due date.
type TaskPatchRequest struct {
	Title        *string              `json:"title"`
	Description  *string              `json:"description"`
	ProjectID    *string              `json:"projectId"`
	AssigneeID   *string              `json:"assigneeId"`
	Status       *domain.TaskStatus   `json:"status"`
	Priority     *domain.TaskPriority `json:"priority"`
	DueDate      *time.Time           `json:"dueDate"`
	ClearDueDate bool                 `json:"clearDueDate"`
	Tags         *[]string            `json:"tags"`
}

func (r *TaskPatchRequest) UnmarshalJSON(data []byte) error {
	type plain TaskPatchRequest
	aux := struct {
		*plain
		DueDate json.RawMessage `json:"dueDate"`
	}{plain: (*plain)(r)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	due, err := domain.ParseDueDate(aux.DueDate)
	if err != nil {
		return err
	}
	r.DueDate = due
	if string(aux.DueDate) == `""` {
		r.ClearDueDate = true
	}
	return nil
}

type TaskResponse struct {
	Task *domain.Task `json:"task"`
}

type TasksResponse struct {
	Tasks []*domain.Task `json:"tasks"`
}

type GroupedTasksResponse struct {
	ProjectID string                               `json:"projectId"`
	Columns   map[domain.TaskStatus][]*domain.Task `json:"columns"`
}

type TaskStatusRequest struct {
	Status domain.TaskStatus `json:"status"`
}

type TaskPriorityRequest struct {
	Priority domain.TaskPriority `json:"priority"`
}

type AssignTaskRequest struct {
	AssigneeID string `json:"assigneeId"`
}

type TeamPatchRequest struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	Color       *string   `json:"color"`
	MemberIDs   *[]string `json:"memberIds"`
}

type TeamResponse struct {
	Team        *domain.Team `json:"team"`
	MemberCount int          `json:"memberCount"`
}

type TeamsResponse struct {
	Teams []*domain.Team `json:"teams"`
}

type AddMemberRequest struct {
	UserID string `json:"userId"`
}

type DashboardResponse struct {
	Stats          domain.DashboardStats `json:"stats"`
	RecentTasks    []*domain.Task        `json:"recentTasks"`
	RecentProjects []*domain.Project     `json:"recentProjects"`
}

type StatsResponse struct {
	Tasks    domain.TaskStats          `json:"tasks"`
	Projects domain.ProjectStatusCount `json:"projects"`
}

type ActivitiesResponse struct {
	Activities []*domain.Activity `json:"activities"`
}
