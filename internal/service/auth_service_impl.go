package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/bagdasarian/taskflow/internal/domain"
	"github.com/bagdasarian/taskflow/internal/repository"
)

const (
	minPasswordLength = 6
	// bcrypt rejects longer input.
	maxPasswordBytes = 72
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type authService struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	hasher      PasswordHasher
	opts        options
}

func NewAuthService(userRepo repository.UserRepository, sessionRepo repository.SessionRepository, hasher PasswordHasher, opts ...Option) AuthService {
	return &authService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		hasher:      hasher,
		opts:        newOptions(opts),
	}
}

func validateRegistration(data domain.RegisterData) error {
	if strings.TrimSpace(data.Name) == "" {
		return domain.NewValidationError("name", "is required")
	}
	if err := validateEmail(data.Email); err != nil {
		return err
	}
	if utf8.RuneCountInString(data.Password) < minPasswordLength {
		return domain.NewValidationError("password", fmt.Sprintf("must be at least %d characters", minPasswordLength))
	}
	if len(data.Password) > maxPasswordBytes {
		return domain.NewValidationError("password", fmt.Sprintf("must be at most %d bytes", maxPasswordBytes))
	}
	return nil
}

func validateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return domain.NewValidationError("email", "is required")
	}
	if !emailPattern.MatchString(email) {
		return domain.NewValidationError("email", "is invalid")
	}
	return nil
}

func (s *authService) Register(ctx context.Context, data domain.RegisterData) (*domain.User, error) {
	if err := validateRegistration(data); err != nil {
		return nil, err
	}

	if s.userRepo.FindByEmail(ctx, data.Email) != nil {
		return nil, domain.ErrDuplicateEmail
	}

	digest, err := s.hasher.Hash(data.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	record := &domain.UserRecord{
		User: domain.User{
			ID:        s.opts.newID(),
			Email:     strings.ToLower(data.Email),
			Name:      data.Name,
			CreatedAt: s.opts.clock().UTC().Round(0),
		},
		PasswordHash: digest,
	}
	s.userRepo.Create(ctx, record)

	user := record.Public()
	s.sessionRepo.Set(ctx, user)

	s.opts.logger.Info().Str("user_id", user.ID).Msg("user registered")
	return user, nil
}

func (s *authService) Login(ctx context.Context, creds domain.LoginCredentials) (*domain.User, error) {
	record := s.userRepo.FindByEmail(ctx, creds.Email)
	if record == nil || !s.hasher.Verify(record.PasswordHash, creds.Password) {
		s.opts.logger.Debug().Msg("login rejected")
		return nil, domain.ErrInvalidCredentials
	}

	user := record.Public()
	s.sessionRepo.Set(ctx, user)

	s.opts.logger.Info().Str("user_id", user.ID).Msg("user logged in")
	return user, nil
}

func (s *authService) Logout(ctx context.Context) {
	s.sessionRepo.Clear(ctx)
	s.opts.logger.Debug().Msg("session cleared")
}

func (s *authService) CurrentUser(ctx context.Context) *domain.User {
	return s.sessionRepo.Get(ctx)
}

// UpdateProfile refreshes the persisted session only when it belongs to userID.
func (s *authService) UpdateProfile(ctx context.Context, userID string, patch domain.UserPatch) (*domain.User, error) {
	record := s.userRepo.GetByID(ctx, userID)
	if record == nil {
		return nil, domain.NewNotFoundError("user with id " + userID)
	}

	updated := *record
	if patch.Name != nil {
		if strings.TrimSpace(*patch.Name) == "" {
			return nil, domain.NewValidationError("name", "is required")
		}
		updated.Name = *patch.Name
	}
	if patch.Email != nil {
		if err := validateEmail(*patch.Email); err != nil {
			return nil, err
		}
		if other := s.userRepo.FindByEmail(ctx, *patch.Email); other != nil && other.ID != userID {
			return nil, domain.ErrDuplicateEmail
		}
		updated.Email = strings.ToLower(*patch.Email)
	}
	if patch.Avatar != nil {
		updated.Avatar = *patch.Avatar
	}

	if err := s.userRepo.Update(ctx, &updated); err != nil {
		return nil, err
	}

	user := updated.Public()
	if current := s.sessionRepo.Get(ctx); current != nil && current.ID == userID {
		s.sessionRepo.Set(ctx, user)
	}
	return user, nil
}

func (s *authService) GetUserByID(ctx context.Context, id string) *domain.User {
	record := s.userRepo.GetByID(ctx, id)
	if record == nil {
		return nil
	}
	return record.Public()
}

func (s *authService) AllUsers(ctx context.Context) []*domain.User {
	records := s.userRepo.List(ctx)
	users := make([]*domain.User, 0, len(records))
	for _, r := range records {
		users = append(users, r.Public())
	}
	return users
}
