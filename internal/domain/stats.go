package domain

// DashboardStats summarizes the signed-in user's workspace.
type DashboardStats struct {
	TotalTasks      int `json:"totalTasks"`
	CompletedTasks  int `json:"completedTasks"`
	InProgressTasks int `json:"inProgressTasks"`
	OverdueTasks    int `json:"overdueTasks"`
	TotalProjects   int `json:"totalProjects"`
	ActiveProjects  int `json:"activeProjects"`
	TotalTeams      int `json:"totalTeams"`
}
