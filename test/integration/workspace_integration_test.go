//go:build integration
// +build integration

package integration

import (
	"context"
	"testing"
	"time"

	"github.com/bagdasarian/taskflow/internal/domain"
	"github.com/bagdasarian/taskflow/internal/repository/kv"
	"github.com/bagdasarian/taskflow/internal/service"
	"github.com/bagdasarian/taskflow/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newWorkspace(store *storage.Store) service.Workspace {
	auth := service.NewAuthService(kv.NewUserRepository(store), kv.NewSessionRepository(store),
		service.BcryptHasher{Cost: bcrypt.MinCost})
	return service.NewWorkspace(auth, service.Repositories{
		Projects:   kv.NewProjectRepository(store),
		Tasks:      kv.NewTaskRepository(store),
		Teams:      kv.NewTeamRepository(store),
		Activities: kv.NewActivityRepository(store),
	})
}

func TestWorkspaceIntegration(t *testing.T) {
	for name, open := range backends() {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			store := storage.NewStore(open(t))
			store.Initialize(ctx)
			ws := newWorkspace(store)

			// Ann creates a team project, Bob joins the team and sees it
			ann, err := ws.Register(ctx, domain.RegisterData{Name: "Ann", Email: "ann@example.com", Password: "secret"})
			require.NoError(t, err)
			team, err := ws.CreateTeam(ctx, domain.TeamInput{Name: "Core", MemberIDs: []string{}})
			require.NoError(t, err)
			project, err := ws.CreateProject(ctx, domain.ProjectInput{Name: "P1", TeamID: team.ID})
			require.NoError(t, err)

			yesterday := time.Now().AddDate(0, 0, -1)
			task, err := ws.CreateTask(ctx, domain.TaskInput{
				Title: "Migrate", ProjectID: project.ID, AssigneeID: ann.ID,
				DueDate: &yesterday, Tags: []string{"urgent", "backend"},
			})
			require.NoError(t, err)

			ws.Logout(ctx)
			bob, err := ws.Register(ctx, domain.RegisterData{Name: "Bob", Email: "bob@example.com", Password: "secret"})
			require.NoError(t, err)
			assert.Empty(t, ws.Projects())

			ws.Logout(ctx)
			_, err = ws.Login(ctx, domain.LoginCredentials{Email: "ANN@example.com", Password: "secret"})
			require.NoError(t, err)
			_, err = ws.AddTeamMember(ctx, team.ID, bob.ID)
			require.NoError(t, err)

			// a second process sharing the backend sees the persisted session
			other := newWorkspace(store)
			require.Equal(t, ann.ID, other.Restore(ctx).ID)

			ws.Logout(ctx)
			_, err = ws.Login(ctx, domain.LoginCredentials{Email: "bob@example.com", Password: "secret"})
			require.NoError(t, err)
			require.Len(t, ws.Projects(), 1)
			assert.Equal(t, project.ID, ws.Projects()[0].ID)

			found, err := ws.SearchTasks(ctx, "back")
			require.NoError(t, err)
			require.Len(t, found, 1)
			assert.Equal(t, task.ID, found[0].ID)

			overdue, err := ws.OverdueTasks(ctx)
			require.NoError(t, err)
			assert.Len(t, overdue, 1)

			require.NoError(t, ws.DeleteProject(ctx, project.ID))
			assert.Empty(t, ws.Tasks())
			assert.Empty(t, storage.Collection[*domain.Task](ctx, store, storage.KeyTasks))

			store.Clear(ctx)
			assert.Nil(t, newWorkspace(store).Restore(ctx))
		})
	}
}
