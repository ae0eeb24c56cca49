package mocks

import (
	"context"

	"github.com/bagdasarian/taskflow/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, record *domain.UserRecord) {
	m.Called(ctx, record)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) *domain.UserRecord {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*domain.UserRecord)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) *domain.UserRecord {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*domain.UserRecord)
}

func (m *MockUserRepository) Update(ctx context.Context, record *domain.UserRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockUserRepository) List(ctx context.Context) []*domain.UserRecord {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]*domain.UserRecord)
}

type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Get(ctx context.Context) *domain.User {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*domain.User)
}

func (m *MockSessionRepository) Set(ctx context.Context, user *domain.User) {
	m.Called(ctx, user)
}

func (m *MockSessionRepository) Clear(ctx context.Context) {
	m.Called(ctx)
}

type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) GetAll(ctx context.Context) []*domain.Project {
	return projects(m.Called(ctx), 0)
}

func (m *MockProjectRepository) GetByID(ctx context.Context, id string) *domain.Project {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*domain.Project)
}

func (m *MockProjectRepository) GetByOwner(ctx context.Context, ownerID string) []*domain.Project {
	return projects(m.Called(ctx, ownerID), 0)
}

func (m *MockProjectRepository) GetByTeam(ctx context.Context, teamID string) []*domain.Project {
	return projects(m.Called(ctx, teamID), 0)
}

func (m *MockProjectRepository) GetAccessibleProjects(ctx context.Context, userID string, teamIDs []string) []*domain.Project {
	return projects(m.Called(ctx, userID, teamIDs), 0)
}

func (m *MockProjectRepository) GetCountByStatus(ctx context.Context, ownerID string) domain.ProjectStatusCount {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(domain.ProjectStatusCount)
}

func (m *MockProjectRepository) Create(ctx context.Context, ownerID string, input domain.ProjectInput) *domain.Project {
	args := m.Called(ctx, ownerID, input)
	return args.Get(0).(*domain.Project)
}

func (m *MockProjectRepository) Update(ctx context.Context, id string, patch domain.ProjectPatch) (*domain.Project, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *MockProjectRepository) UpdateStatus(ctx context.Context, id string, status domain.ProjectStatus) (*domain.Project, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *MockProjectRepository) Delete(ctx context.Context, id string) {
	m.Called(ctx, id)
}

func projects(args mock.Arguments, i int) []*domain.Project {
	if args.Get(i) == nil {
		return nil
	}
	return args.Get(i).([]*domain.Project)
}

type MockTaskRepository struct {
	mock.Mock
}

func (m *MockTaskRepository) GetAll(ctx context.Context) []*domain.Task {
	return tasks(m.Called(ctx), 0)
}

func (m *MockTaskRepository) GetByID(ctx context.Context, id string) *domain.Task {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*domain.Task)
}

func (m *MockTaskRepository) GetByProject(ctx context.Context, projectID string) []*domain.Task {
	return tasks(m.Called(ctx, projectID), 0)
}

func (m *MockTaskRepository) GetByAssignee(ctx context.Context, assigneeID string) []*domain.Task {
	return tasks(m.Called(ctx, assigneeID), 0)
}

func (m *MockTaskRepository) GetByStatus(ctx context.Context, projectID string, status domain.TaskStatus) []*domain.Task {
	return tasks(m.Called(ctx, projectID, status), 0)
}

func (m *MockTaskRepository) GetOverdueTasks(ctx context.Context, projectIDs []string) []*domain.Task {
	return tasks(m.Called(ctx, projectIDs), 0)
}

func (m *MockTaskRepository) GetStats(ctx context.Context, projectIDs []string) domain.TaskStats {
	args := m.Called(ctx, projectIDs)
	return args.Get(0).(domain.TaskStats)
}

func (m *MockTaskRepository) GetGroupedByStatus(ctx context.Context, projectID string) map[domain.TaskStatus][]*domain.Task {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(map[domain.TaskStatus][]*domain.Task)
}

func (m *MockTaskRepository) Search(ctx context.Context, query string, projectIDs []string) []*domain.Task {
	return tasks(m.Called(ctx, query, projectIDs), 0)
}

func (m *MockTaskRepository) Create(ctx context.Context, input domain.TaskInput) *domain.Task {
	args := m.Called(ctx, input)
	return args.Get(0).(*domain.Task)
}

func (m *MockTaskRepository) Update(ctx context.Context, id string, patch domain.TaskPatch) (*domain.Task, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Task), args.Error(1)
}

func (m *MockTaskRepository) UpdateStatus(ctx context.Context, id string, status domain.TaskStatus) (*domain.Task, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Task), args.Error(1)
}

func (m *MockTaskRepository) UpdatePriority(ctx context.Context, id string, priority domain.TaskPriority) (*domain.Task, error) {
	args := m.Called(ctx, id, priority)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Task), args.Error(1)
}

func (m *MockTaskRepository) AssignTask(ctx context.Context, id string, assigneeID string) (*domain.Task, error) {
	args := m.Called(ctx, id, assigneeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Task), args.Error(1)
}

func (m *MockTaskRepository) Delete(ctx context.Context, id string) {
	m.Called(ctx, id)
}

func (m *MockTaskRepository) DeleteByProject(ctx context.Context, projectID string) {
	m.Called(ctx, projectID)
}

func tasks(args mock.Arguments, i int) []*domain.Task {
	if args.Get(i) == nil {
		return nil
	}
	return args.Get(i).([]*domain.Task)
}

type MockTeamRepository struct {
	mock.Mock
}

func (m *MockTeamRepository) GetAll(ctx context.Context) []*domain.Team {
	return teams(m.Called(ctx), 0)
}

func (m *MockTeamRepository) GetByID(ctx context.Context, id string) *domain.Team {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*domain.Team)
}

func (m *MockTeamRepository) GetByOwner(ctx context.Context, ownerID string) []*domain.Team {
	return teams(m.Called(ctx, ownerID), 0)
}

func (m *MockTeamRepository) GetByMember(ctx context.Context, userID string) []*domain.Team {
	return teams(m.Called(ctx, userID), 0)
}

func (m *MockTeamRepository) Create(ctx context.Context, ownerID string, input domain.TeamInput) *domain.Team {
	args := m.Called(ctx, ownerID, input)
	return args.Get(0).(*domain.Team)
}

func (m *MockTeamRepository) Update(ctx context.Context, id string, patch domain.TeamPatch) (*domain.Team, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Team), args.Error(1)
}

func (m *MockTeamRepository) Delete(ctx context.Context, id string) {
	m.Called(ctx, id)
}

func (m *MockTeamRepository) AddMember(ctx context.Context, teamID string, userID string) (*domain.Team, error) {
	args := m.Called(ctx, teamID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Team), args.Error(1)
}

func (m *MockTeamRepository) RemoveMember(ctx context.Context, teamID string, userID string) (*domain.Team, error) {
	args := m.Called(ctx, teamID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Team), args.Error(1)
}

func (m *MockTeamRepository) GetMemberCount(ctx context.Context, teamID string) int {
	args := m.Called(ctx, teamID)
	return args.Int(0)
}

func (m *MockTeamRepository) IsMember(ctx context.Context, teamID string, userID string) bool {
	args := m.Called(ctx, teamID, userID)
	return args.Bool(0)
}

func (m *MockTeamRepository) GetAllMemberIDs(ctx context.Context, teamID string) []string {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]string)
}

func teams(args mock.Arguments, i int) []*domain.Team {
	if args.Get(i) == nil {
		return nil
	}
	return args.Get(i).([]*domain.Team)
}
