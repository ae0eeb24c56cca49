package service

import (
	"context"
	"slices"
	"sync"

	"github.com/bagdasarian/taskflow/internal/domain"
	"github.com/bagdasarian/taskflow/internal/repository"
)

type Repositories struct {
	Projects   repository.ProjectRepository
	Tasks      repository.TaskRepository
	Teams      repository.TeamRepository
	Activities repository.ActivityRepository
}

type workspace struct {
	auth  AuthService
	repos Repositories
	opts  options

	// mu serializes writes so a read-modify-write cycle and the cache patch
	// that follows it are never interleaved within this process.
	mu       sync.RWMutex
	user     *domain.User
	projects []*domain.Project
	tasks    []*domain.Task
	teams    []*domain.Team
	users    []*domain.User
}

func NewWorkspace(auth AuthService, repos Repositories, opts ...Option) Workspace {
	return &workspace{
		auth:     auth,
		repos:    repos,
		opts:     newOptions(opts),
		projects: []*domain.Project{},
		tasks:    []*domain.Task{},
		teams:    []*domain.Team{},
		users:    []*domain.User{},
	}
}

func (w *workspace) Restore(ctx context.Context) *domain.User {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.signIn(ctx, w.auth.CurrentUser(ctx))
	return w.user
}

func (w *workspace) Register(ctx context.Context, data domain.RegisterData) (*domain.User, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	user, err := w.auth.Register(ctx, data)
	if err != nil {
		return nil, err
	}
	w.signIn(ctx, user)
	return user, nil
}

func (w *workspace) Login(ctx context.Context, creds domain.LoginCredentials) (*domain.User, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	user, err := w.auth.Login(ctx, creds)
	if err != nil {
		return nil, err
	}
	w.signIn(ctx, user)
	return user, nil
}

func (w *workspace) Logout(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.auth.Logout(ctx)
	w.signIn(ctx, nil)
}

func (w *workspace) CurrentUser() *domain.User {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.user
}

func (w *workspace) UpdateProfile(ctx context.Context, patch domain.UserPatch) (*domain.User, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.user == nil {
		return nil, domain.ErrUnauthenticated
	}

	user, err := w.auth.UpdateProfile(ctx, w.user.ID, patch)
	if err != nil {
		return nil, err
	}
	w.user = user
	w.users = replaceByID(w.users, user, func(u *domain.User) string { return u.ID })
	return user, nil
}

func (w *workspace) Refresh(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.user == nil {
		return domain.ErrUnauthenticated
	}
	w.load(ctx)
	return nil
}

// signIn switches the session to user and reloads the caches. A nil user
// empties them.
func (w *workspace) signIn(ctx context.Context, user *domain.User) {
	w.user = user
	if user == nil {
		w.projects = []*domain.Project{}
		w.tasks = []*domain.Task{}
		w.teams = []*domain.Team{}
		w.users = []*domain.User{}
		return
	}
	w.load(ctx)
}

// load fills the caches: projects reachable through the user's teams, every
// task regardless of project, the user's teams and all users.
func (w *workspace) load(ctx context.Context) {
	teams := w.repos.Teams.GetByMember(ctx, w.user.ID)

	teamIDs := make([]string, 0, len(teams))
	for _, t := range teams {
		teamIDs = append(teamIDs, t.ID)
	}

	w.teams = teams
	w.projects = w.repos.Projects.GetAccessibleProjects(ctx, w.user.ID, teamIDs)
	w.tasks = w.repos.Tasks.GetAll(ctx)
	w.users = w.auth.AllUsers(ctx)

	w.opts.logger.Debug().
		Str("user_id", w.user.ID).
		Int("projects", len(w.projects)).
		Int("tasks", len(w.tasks)).
		Int("teams", len(w.teams)).
		Msg("workspace loaded")
}

// accessibleProjectIDs returns a non-nil set, so an empty workspace matches nothing.
func (w *workspace) accessibleProjectIDs() []string {
	ids := make([]string, 0, len(w.projects))
	for _, p := range w.projects {
		ids = append(ids, p.ID)
	}
	return ids
}

func (w *workspace) Users() []*domain.User {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return slices.Clone(w.users)
}

func (w *workspace) User(id string) *domain.User {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return findByID(w.users, id, func(u *domain.User) string { return u.ID })
}

func (w *workspace) Activities(ctx context.Context) ([]*domain.Activity, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if w.user == nil {
		return nil, domain.ErrUnauthenticated
	}
	return w.repos.Activities.List(ctx), nil
}

func findByID[T any](items []*T, id string, key func(*T) string) *T {
	for _, item := range items {
		if key(item) == id {
			return item
		}
	}
	return nil
}

// replaceByID swaps in updated where the IDs match; absent items are not added.
func replaceByID[T any](items []*T, updated *T, key func(*T) string) []*T {
	id := key(updated)
	out := make([]*T, len(items))
	for i, item := range items {
		if key(item) == id {
			out[i] = updated
		} else {
			out[i] = item
		}
	}
	return out
}

func removeWhere[T any](items []*T, drop func(*T) bool) []*T {
	out := make([]*T, 0, len(items))
	for _, item := range items {
		if !drop(item) {
			out = append(out, item)
		}
	}
	return out
}
