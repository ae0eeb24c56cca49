package service

import (
	"context"

	"github.com/bagdasarian/taskflow/internal/domain"
)

// TaskFilter narrows MyTasks. Zero fields match everything.
type TaskFilter struct {
	Query    string
	Status   domain.TaskStatus
	Priority domain.TaskPriority
}

// Workspace is the signed-in session: it owns the current user and a read
// cache of everything that user sees, patched after every write.
type Workspace interface {
	// Restore resumes the persisted session, if any, and loads the caches
	Restore(ctx context.Context) *domain.User
	Register(ctx context.Context, data domain.RegisterData) (*domain.User, error)
	Login(ctx context.Context, creds domain.LoginCredentials) (*domain.User, error)
	// Logout clears the session and every cache
	Logout(ctx context.Context)
	CurrentUser() *domain.User
	UpdateProfile(ctx context.Context, patch domain.UserPatch) (*domain.User, error)
	// Refresh reloads every cache from the repositories
	Refresh(ctx context.Context) error

	Projects() []*domain.Project
	Project(id string) *domain.Project
	CreateProject(ctx context.Context, input domain.ProjectInput) (*domain.Project, error)
	UpdateProject(ctx context.Context, id string, patch domain.ProjectPatch) (*domain.Project, error)
	UpdateProjectStatus(ctx context.Context, id string, status domain.ProjectStatus) (*domain.Project, error)
	// DeleteProject removes the project and all of its tasks
	DeleteProject(ctx context.Context, id string) error
	TeamProjects(ctx context.Context, teamID string) ([]*domain.Project, error)
	ProjectCounts(ctx context.Context) (domain.ProjectStatusCount, error)

	Tasks() []*domain.Task
	Task(id string) *domain.Task
	TasksByProject(projectID string) []*domain.Task
	CreateTask(ctx context.Context, input domain.TaskInput) (*domain.Task, error)
	UpdateTask(ctx context.Context, id string, patch domain.TaskPatch) (*domain.Task, error)
	UpdateTaskStatus(ctx context.Context, id string, status domain.TaskStatus) (*domain.Task, error)
	UpdateTaskPriority(ctx context.Context, id string, priority domain.TaskPriority) (*domain.Task, error)
	AssignTask(ctx context.Context, id string, assigneeID string) (*domain.Task, error)
	DeleteTask(ctx context.Context, id string) error
	// SearchTasks searches tasks of the accessible projects
	SearchTasks(ctx context.Context, query string) ([]*domain.Task, error)
	// MyTasks returns cached tasks assigned to the current user
	MyTasks(filter TaskFilter) []*domain.Task
	GroupedTasks(ctx context.Context, projectID string) (map[domain.TaskStatus][]*domain.Task, error)
	TaskStats(ctx context.Context) (domain.TaskStats, error)
	OverdueTasks(ctx context.Context) ([]*domain.Task, error)

	Teams() []*domain.Team
	Team(id string) *domain.Team
	CreateTeam(ctx context.Context, input domain.TeamInput) (*domain.Team, error)
	UpdateTeam(ctx context.Context, id string, patch domain.TeamPatch) (*domain.Team, error)
	DeleteTeam(ctx context.Context, id string) error
	AddTeamMember(ctx context.Context, teamID, userID string) (*domain.Team, error)
	RemoveTeamMember(ctx context.Context, teamID, userID string) (*domain.Team, error)
	// TeamMembers resolves owner and members of a team to known users
	TeamMembers(ctx context.Context, teamID string) ([]*domain.User, error)

	Users() []*domain.User
	User(id string) *domain.User

	DashboardStats() domain.DashboardStats
	RecentActivity(limit int) []*domain.Task
	RecentProjects(limit int) []*domain.Project
	// ProjectProgress is the rounded share of done tasks, 0 for an empty project
	ProjectProgress(projectID string) int
	FilterProjects(query string, status domain.ProjectStatus) []*domain.Project
	FilterTeams(query string) []*domain.Team
	Activities(ctx context.Context) ([]*domain.Activity, error)
}
