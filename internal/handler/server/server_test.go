package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bagdasarian/taskflow/internal/domain"
	"github.com/bagdasarian/taskflow/internal/handler"
	"github.com/bagdasarian/taskflow/internal/metrics"
	"github.com/bagdasarian/taskflow/internal/repository/kv"
	"github.com/bagdasarian/taskflow/internal/service"
	"github.com/bagdasarian/taskflow/internal/storage"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testAPI struct {
	t       *testing.T
	handler http.Handler
}

func setupAPI(t *testing.T) *testAPI {
	t.Helper()

	reg := prometheus.NewRegistry()
	collector := metrics.NewCollector(reg)
	store := storage.NewStore(storage.NewMemoryBackend(), storage.WithRecorder(collector))
	store.Initialize(context.Background())

	auth := service.NewAuthService(kv.NewUserRepository(store), kv.NewSessionRepository(store), service.LegacyChecksum{})
	ws := service.NewWorkspace(auth, service.Repositories{
		Projects:   kv.NewProjectRepository(store),
		Tasks:      kv.NewTaskRepository(store),
		Teams:      kv.NewTeamRepository(store),
		Activities: kv.NewActivityRepository(store),
	})

	srv := NewServer(handler.NewHandler(ws, zerolog.Nop()), metrics.Handler(reg), "127.0.0.1:0", zerolog.Nop())
	return &testAPI{t: t, handler: srv.Handler()}
}

func (a *testAPI) do(method, path string, body any, out any) int {
	a.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(a.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)

	if out != nil && rec.Body.Len() > 0 {
		require.NoError(a.t, json.NewDecoder(rec.Body).Decode(out))
	}
	return rec.Code
}

func TestServer_AuthFlow(t *testing.T) {
	api := setupAPI(t)

	var errResp handler.ErrorResponse
	assert.Equal(t, http.StatusUnauthorized, api.do(http.MethodGet, "/projects", nil, &errResp))
	assert.Equal(t, domain.CodeUnauthenticated, errResp.Error.Code)

	var userResp handler.UserResponse
	status := api.do(http.MethodPost, "/auth/register", domain.RegisterData{Name: "Ann", Email: "Ann@Example.com", Password: "secret"}, &userResp)
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "ann@example.com", userResp.User.Email)

	status = api.do(http.MethodPost, "/auth/register", domain.RegisterData{Name: "Ann", Email: "ann@example.com", Password: "secret"}, &errResp)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, domain.CodeDuplicateEmail, errResp.Error.Code)

	status = api.do(http.MethodPost, "/auth/login", domain.LoginCredentials{Email: "ann@example.com", Password: "wrong!"}, &errResp)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, domain.CodeInvalidCredentials, errResp.Error.Code)

	var me handler.UserResponse
	require.Equal(t, http.StatusOK, api.do(http.MethodGet, "/auth/me", nil, &me))
	assert.Equal(t, userResp.User.ID, me.User.ID)

	var updated handler.UserResponse
	require.Equal(t, http.StatusOK, api.do(http.MethodPatch, "/auth/me", map[string]string{"name": "Annie"}, &updated))
	assert.Equal(t, "Annie", updated.User.Name)

	var users handler.UsersResponse
	require.Equal(t, http.StatusOK, api.do(http.MethodGet, "/users", nil, &users))
	assert.Len(t, users.Users, 1)
	assert.Equal(t, http.StatusNotFound, api.do(http.MethodGet, "/users/ghost", nil, nil))

	assert.Equal(t, http.StatusNoContent, api.do(http.MethodPost, "/auth/logout", nil, nil))
	assert.Equal(t, http.StatusUnauthorized, api.do(http.MethodGet, "/auth/me", nil, nil))

	status = api.do(http.MethodPost, "/auth/register", domain.RegisterData{Name: "", Email: "x@y.z", Password: "secret"}, &errResp)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, domain.CodeValidation, errResp.Error.Code)
}

func TestServer_ProjectsAndTasks(t *testing.T) {
	api := setupAPI(t)
	require.Equal(t, http.StatusCreated, api.do(http.MethodPost, "/auth/register",
		domain.RegisterData{Name: "Ann", Email: "ann@example.com", Password: "secret"}, nil))

	var created handler.ProjectResponse
	require.Equal(t, http.StatusCreated, api.do(http.MethodPost, "/projects",
		domain.ProjectInput{Name: "Website", Color: "#123456"}, &created))
	projectID := created.Project.ID
	assert.Equal(t, domain.ProjectActive, created.Project.Status)

	var task handler.TaskResponse
	require.Equal(t, http.StatusCreated, api.do(http.MethodPost, "/tasks",
		domain.TaskInput{Title: "API", ProjectID: projectID, Tags: []string{"urgent", "backend"}}, &task))

	var found handler.TasksResponse
	require.Equal(t, http.StatusOK, api.do(http.MethodGet, "/tasks/search?q=back", nil, &found))
	require.Len(t, found.Tasks, 1)
	assert.Equal(t, task.Task.ID, found.Tasks[0].ID)
	require.Equal(t, http.StatusOK, api.do(http.MethodGet, "/tasks/search?q=frontend", nil, &found))
	assert.Empty(t, found.Tasks)

	var moved handler.TaskResponse
	require.Equal(t, http.StatusOK, api.do(http.MethodPut, "/tasks/"+task.Task.ID+"/status",
		handler.TaskStatusRequest{Status: domain.TaskDone}, &moved))
	assert.Equal(t, domain.TaskDone, moved.Task.Status)
	assert.True(t, moved.Task.UpdatedAt.After(task.Task.UpdatedAt))

	var grouped handler.GroupedTasksResponse
	require.Equal(t, http.StatusOK, api.do(http.MethodGet, "/projects/"+projectID+"/tasks?grouped=true", nil, &grouped))
	assert.Len(t, grouped.Columns, 4)
	assert.Len(t, grouped.Columns[domain.TaskDone], 1)

	var project handler.ProjectResponse
	require.Equal(t, http.StatusOK, api.do(http.MethodGet, "/projects/"+projectID, nil, &project))
	assert.Equal(t, 100, project.Progress)

	var dashboard handler.DashboardResponse
	require.Equal(t, http.StatusOK, api.do(http.MethodGet, "/dashboard", nil, &dashboard))
	assert.Equal(t, 1, dashboard.Stats.CompletedTasks)
	assert.Len(t, dashboard.RecentTasks, 1)

	var stats handler.StatsResponse
	require.Equal(t, http.StatusOK, api.do(http.MethodGet, "/stats", nil, &stats))
	assert.Equal(t, 1, stats.Tasks.Done)
	assert.Equal(t, 1, stats.Projects.Active)

	var errResp handler.ErrorResponse
	assert.Equal(t, http.StatusBadRequest, api.do(http.MethodPut, "/tasks/"+task.Task.ID+"/status",
		handler.TaskStatusRequest{Status: "blocked"}, &errResp))
	assert.Equal(t, http.StatusNotFound, api.do(http.MethodPatch, "/projects/missing",
		map[string]string{"name": "x"}, &errResp))

	assert.Equal(t, http.StatusNoContent, api.do(http.MethodDelete, "/projects/"+projectID, nil, nil))
	var remaining handler.TasksResponse
	require.Equal(t, http.StatusOK, api.do(http.MethodGet, "/tasks", nil, &remaining))
	assert.Empty(t, remaining.Tasks)
}

func TestServer_TaskDueDates(t *testing.T) {
	api := setupAPI(t)
	require.Equal(t, http.StatusCreated, api.do(http.MethodPost, "/auth/register",
		domain.RegisterData{Name: "Ann", Email: "ann@example.com", Password: "secret"}, nil))

	var created handler.ProjectResponse
	require.Equal(t, http.StatusCreated, api.do(http.MethodPost, "/projects", domain.ProjectInput{Name: "Website"}, &created))

	var task handler.TaskResponse
	require.Equal(t, http.StatusCreated, api.do(http.MethodPost, "/tasks", map[string]any{
		"title": "Launch", "projectId": created.Project.ID, "dueDate": "2024-05-20",
	}, &task))
	require.NotNil(t, task.Task.DueDate)
	assert.True(t, task.Task.DueDate.Equal(time.Date(2024, time.May, 20, 0, 0, 0, 0, time.UTC)))

	path := "/tasks/" + task.Task.ID
	require.Equal(t, http.StatusOK, api.do(http.MethodPatch, path, map[string]any{"dueDate": "2024-06-01"}, &task))
	require.NotNil(t, task.Task.DueDate)
	assert.Equal(t, time.June, task.Task.DueDate.Month())

	require.Equal(t, http.StatusOK, api.do(http.MethodPatch, path, map[string]any{"dueDate": ""}, &task))
	assert.Nil(t, task.Task.DueDate)

	var errResp handler.ErrorResponse
	assert.Equal(t, http.StatusBadRequest, api.do(http.MethodPost, "/tasks", map[string]any{
		"title": "Bad", "projectId": created.Project.ID, "dueDate": "next week",
	}, &errResp))
	assert.Equal(t, handler.CodeBadRequest, errResp.Error.Code)
}

func TestServer_Teams(t *testing.T) {
	api := setupAPI(t)

	var bob handler.UserResponse
	require.Equal(t, http.StatusCreated, api.do(http.MethodPost, "/auth/register",
		domain.RegisterData{Name: "Bob", Email: "bob@example.com", Password: "secret"}, &bob))
	require.Equal(t, http.StatusNoContent, api.do(http.MethodPost, "/auth/logout", nil, nil))
	require.Equal(t, http.StatusCreated, api.do(http.MethodPost, "/auth/register",
		domain.RegisterData{Name: "Ann", Email: "ann@example.com", Password: "secret"}, nil))

	var team handler.TeamResponse
	require.Equal(t, http.StatusCreated, api.do(http.MethodPost, "/teams", domain.TeamInput{Name: "Core"}, &team))
	assert.Equal(t, 1, team.MemberCount)

	path := "/teams/" + team.Team.ID + "/members"
	require.Equal(t, http.StatusOK, api.do(http.MethodPost, path, handler.AddMemberRequest{UserID: bob.User.ID}, &team))
	require.Equal(t, http.StatusOK, api.do(http.MethodPost, path, handler.AddMemberRequest{UserID: bob.User.ID}, &team))
	assert.Equal(t, []string{bob.User.ID}, team.Team.MemberIDs)

	var members handler.UsersResponse
	require.Equal(t, http.StatusOK, api.do(http.MethodGet, path, nil, &members))
	assert.Len(t, members.Users, 2)

	require.Equal(t, http.StatusOK, api.do(http.MethodDelete, path+"/"+bob.User.ID, nil, &team))
	assert.Empty(t, team.Team.MemberIDs)

	var teams handler.TeamsResponse
	require.Equal(t, http.StatusOK, api.do(http.MethodGet, "/teams?q=core", nil, &teams))
	assert.Len(t, teams.Teams, 1)

	assert.Equal(t, http.StatusNotFound, api.do(http.MethodPost, "/teams/missing/members",
		handler.AddMemberRequest{UserID: bob.User.ID}, nil))
	assert.Equal(t, http.StatusNoContent, api.do(http.MethodDelete, "/teams/"+team.Team.ID, nil, nil))
	assert.Equal(t, http.StatusNotFound, api.do(http.MethodGet, "/teams/"+team.Team.ID, nil, nil))
}

func TestServer_Metrics(t *testing.T) {
	api := setupAPI(t)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	api.handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "taskflow_store_operations_total")
}
