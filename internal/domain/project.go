package domain

import "time"

type Project struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	OwnerID     string        `json:"ownerId"`
	TeamID      string        `json:"teamId,omitempty"`
	Status      ProjectStatus `json:"status"`
	Color       string        `json:"color"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

type ProjectStatus string

const (
	ProjectActive    ProjectStatus = "active"
	ProjectCompleted ProjectStatus = "completed"
	ProjectArchived  ProjectStatus = "archived"
)

func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectActive, ProjectCompleted, ProjectArchived:
		return true
	}
	return false
}

type ProjectInput struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	TeamID      string        `json:"teamId,omitempty"`
	Status      ProjectStatus `json:"status"`
	Color       string        `json:"color"`
}

// ProjectPatch overwrites only the non-nil fields. TeamID pointing at ""
// detaches the project from its team.
type ProjectPatch struct {
	Name        *string
	Description *string
	TeamID      *string
	Status      *ProjectStatus
	Color       *string
}

// ProjectStatusCount holds per-status project counts.
type ProjectStatusCount struct {
	Active    int `json:"active"`
	Completed int `json:"completed"`
	Archived  int `json:"archived"`
}
