package repository

import (
	"context"

	"github.com/bagdasarian/taskflow/internal/domain"
)

// UserRepository stores full records including the password digest. Only the
// auth service sees records; everything else gets domain.User.
type UserRepository interface {
	Create(ctx context.Context, record *domain.UserRecord)
	GetByID(ctx context.Context, id string) *domain.UserRecord
	FindByEmail(ctx context.Context, email string) *domain.UserRecord
	Update(ctx context.Context, record *domain.UserRecord) error
	List(ctx context.Context) []*domain.UserRecord
}

// SessionRepository holds the single current-session pointer.
type SessionRepository interface {
	Get(ctx context.Context) *domain.User
	Set(ctx context.Context, user *domain.User)
	Clear(ctx context.Context)
}
