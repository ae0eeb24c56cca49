package service

import (
	"context"

	"github.com/bagdasarian/taskflow/internal/domain"
)

type AuthService interface {
	// Register validates data, creates the account and signs it in
	Register(ctx context.Context, data domain.RegisterData) (*domain.User, error)

	// Login signs in the account matching the credentials
	Login(ctx context.Context, creds domain.LoginCredentials) (*domain.User, error)

	// Logout clears the current session
	Logout(ctx context.Context)

	// CurrentUser returns the signed-in user or nil
	CurrentUser(ctx context.Context) *domain.User

	// UpdateProfile merges the patch into the stored account
	UpdateProfile(ctx context.Context, userID string, patch domain.UserPatch) (*domain.User, error)

	GetUserByID(ctx context.Context, id string) *domain.User
	AllUsers(ctx context.Context) []*domain.User
}
