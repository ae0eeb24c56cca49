package server

import (
	"net/http"

	"github.com/bagdasarian/taskflow/internal/handler"
)

func SetupRoutes(mux *http.ServeMux, h *handler.Handler, metrics http.Handler) {
	mux.HandleFunc("POST /auth/register", h.Register)
	mux.HandleFunc("POST /auth/login", h.Login)
	mux.HandleFunc("POST /auth/logout", h.Logout)
	mux.HandleFunc("GET /auth/me", h.GetCurrentUser)
	mux.HandleFunc("PATCH /auth/me", h.UpdateProfile)
	mux.HandleFunc("POST /auth/refresh", h.Refresh)

	mux.HandleFunc("GET /projects", h.ListProjects)
	mux.HandleFunc("POST /projects", h.CreateProject)
	mux.HandleFunc("GET /projects/{id}", h.GetProject)
	mux.HandleFunc("PATCH /projects/{id}", h.UpdateProject)
	mux.HandleFunc("PUT /projects/{id}/status", h.UpdateProjectStatus)
	mux.HandleFunc("DELETE /projects/{id}", h.DeleteProject)
	mux.HandleFunc("GET /projects/{id}/tasks", h.GetProjectTasks)

	mux.HandleFunc("GET /tasks", h.ListTasks)
	mux.HandleFunc("POST /tasks", h.CreateTask)
	mux.HandleFunc("GET /tasks/mine", h.ListMyTasks)
	mux.HandleFunc("GET /tasks/search", h.SearchTasks)
	mux.HandleFunc("GET /tasks/overdue", h.ListOverdueTasks)
	mux.HandleFunc("GET /tasks/{id}", h.GetTask)
	mux.HandleFunc("PATCH /tasks/{id}", h.UpdateTask)
	mux.HandleFunc("PUT /tasks/{id}/status", h.UpdateTaskStatus)
	mux.HandleFunc("PUT /tasks/{id}/priority", h.UpdateTaskPriority)
	mux.HandleFunc("PUT /tasks/{id}/assignee", h.AssignTask)
	mux.HandleFunc("DELETE /tasks/{id}", h.DeleteTask)

	mux.HandleFunc("GET /teams", h.ListTeams)
	mux.HandleFunc("POST /teams", h.CreateTeam)
	mux.HandleFunc("GET /teams/{id}", h.GetTeam)
	mux.HandleFunc("PATCH /teams/{id}", h.UpdateTeam)
	mux.HandleFunc("DELETE /teams/{id}", h.DeleteTeam)
	mux.HandleFunc("GET /teams/{id}/members", h.ListTeamMembers)
	mux.HandleFunc("POST /teams/{id}/members", h.AddTeamMember)
	mux.HandleFunc("DELETE /teams/{id}/members/{userId}", h.RemoveTeamMember)
	mux.HandleFunc("GET /teams/{id}/projects", h.ListTeamProjects)

	mux.HandleFunc("GET /users", h.ListUsers)
	mux.HandleFunc("GET /users/{id}", h.GetUser)

	mux.HandleFunc("GET /dashboard", h.GetDashboard)
	mux.HandleFunc("GET /stats", h.GetStats)
	mux.HandleFunc("GET /activities", h.ListActivities)

	if metrics != nil {
		mux.Handle("GET /metrics", metrics)
	}
}
