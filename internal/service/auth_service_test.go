package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/bagdasarian/taskflow/internal/domain"
	"github.com/bagdasarian/taskflow/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var fixedNow = time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)

func newTestAuthService(userRepo *mocks.MockUserRepository, sessionRepo *mocks.MockSessionRepository) AuthService {
	return NewAuthService(userRepo, sessionRepo, LegacyChecksum{},
		WithClock(func() time.Time { return fixedNow }),
		WithIDGenerator(func() string { return "u-new" }),
	)
}

func storedUser(id, email, password string) *domain.UserRecord {
	digest, _ := LegacyChecksum{}.Hash(password)
	return &domain.UserRecord{
		User:         domain.User{ID: id, Email: email, Name: "Ann", CreatedAt: fixedNow},
		PasswordHash: digest,
	}
}

func TestAuthService_Register(t *testing.T) {
	t.Run("creates account and session", func(t *testing.T) {
		mockUserRepo := new(mocks.MockUserRepository)
		mockSessionRepo := new(mocks.MockSessionRepository)
		service := newTestAuthService(mockUserRepo, mockSessionRepo)

		ctx := context.Background()
		mockUserRepo.On("FindByEmail", mock.Anything, "Ann@Example.com").Return(nil).Once()
		mockUserRepo.On("Create", mock.Anything, mock.MatchedBy(func(r *domain.UserRecord) bool {
			return r.ID == "u-new" && r.Email == "ann@example.com" && r.PasswordHash == "hashed_3604b150"
		})).Once()
		mockSessionRepo.On("Set", mock.Anything, &domain.User{
			ID: "u-new", Email: "ann@example.com", Name: "Ann", CreatedAt: fixedNow,
		}).Once()

		user, err := service.Register(ctx, domain.RegisterData{Name: "Ann", Email: "Ann@Example.com", Password: "secret"})

		require.NoError(t, err)
		assert.Equal(t, "u-new", user.ID)
		assert.Equal(t, "ann@example.com", user.Email)
		mockUserRepo.AssertExpectations(t)
		mockSessionRepo.AssertExpectations(t)
	})

	t.Run("longest password hashes with bcrypt", func(t *testing.T) {
		mockUserRepo := new(mocks.MockUserRepository)
		mockSessionRepo := new(mocks.MockSessionRepository)
		service := NewAuthService(mockUserRepo, mockSessionRepo, BcryptHasher{Cost: bcrypt.MinCost},
			WithClock(func() time.Time { return fixedNow }),
			WithIDGenerator(func() string { return "u-new" }),
		)
		password := strings.Repeat("p", 72)

		mockUserRepo.On("FindByEmail", mock.Anything, "ann@example.com").Return(nil).Once()
		mockUserRepo.On("Create", mock.Anything, mock.MatchedBy(func(r *domain.UserRecord) bool {
			return bcrypt.CompareHashAndPassword([]byte(r.PasswordHash), []byte(password)) == nil
		})).Once()
		mockSessionRepo.On("Set", mock.Anything, mock.Anything).Once()

		_, err := service.Register(context.Background(), domain.RegisterData{Name: "Ann", Email: "ann@example.com", Password: password})

		require.NoError(t, err)
		mockUserRepo.AssertExpectations(t)
		mockSessionRepo.AssertExpectations(t)
	})

	t.Run("email already registered", func(t *testing.T) {
		mockUserRepo := new(mocks.MockUserRepository)
		mockSessionRepo := new(mocks.MockSessionRepository)
		service := newTestAuthService(mockUserRepo, mockSessionRepo)

		mockUserRepo.On("FindByEmail", mock.Anything, "ANN@example.com").
			Return(storedUser("u1", "ann@example.com", "secret")).Once()

		user, err := service.Register(context.Background(), domain.RegisterData{Name: "Ann", Email: "ANN@example.com", Password: "secret"})

		assert.Nil(t, user)
		assert.True(t, errors.Is(err, domain.ErrDuplicateEmail))
		mockUserRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		mockSessionRepo.AssertNotCalled(t, "Set", mock.Anything, mock.Anything)
	})

	t.Run("validation", func(t *testing.T) {
		tests := []struct {
			name string
			data domain.RegisterData
		}{
			{name: "blank name", data: domain.RegisterData{Name: "  ", Email: "a@b.co", Password: "secret"}},
			{name: "bad email", data: domain.RegisterData{Name: "Ann", Email: "ann@example", Password: "secret"}},
			{name: "short password", data: domain.RegisterData{Name: "Ann", Email: "a@b.co", Password: "12345"}},
			{name: "password over 72 bytes", data: domain.RegisterData{Name: "Ann", Email: "a@b.co", Password: strings.Repeat("a", 80)}},
			{name: "multibyte password over 72 bytes", data: domain.RegisterData{Name: "Ann", Email: "a@b.co", Password: strings.Repeat("é", 40)}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				mockUserRepo := new(mocks.MockUserRepository)
				service := newTestAuthService(mockUserRepo, new(mocks.MockSessionRepository))

				_, err := service.Register(context.Background(), tt.data)

				assert.True(t, errors.Is(err, domain.ErrValidation))
				mockUserRepo.AssertExpectations(t)
			})
		}
	})
}

func TestAuthService_Login(t *testing.T) {
	t.Run("matching credentials", func(t *testing.T) {
		mockUserRepo := new(mocks.MockUserRepository)
		mockSessionRepo := new(mocks.MockSessionRepository)
		service := newTestAuthService(mockUserRepo, mockSessionRepo)

		record := storedUser("u1", "ann@example.com", "secret")
		mockUserRepo.On("FindByEmail", mock.Anything, "ann@example.com").Return(record).Once()
		mockSessionRepo.On("Set", mock.Anything, record.Public()).Once()

		user, err := service.Login(context.Background(), domain.LoginCredentials{Email: "ann@example.com", Password: "secret"})

		require.NoError(t, err)
		assert.Equal(t, record.Public(), user)
		mockSessionRepo.AssertExpectations(t)
	})

	t.Run("wrong password leaves session alone", func(t *testing.T) {
		mockUserRepo := new(mocks.MockUserRepository)
		mockSessionRepo := new(mocks.MockSessionRepository)
		service := newTestAuthService(mockUserRepo, mockSessionRepo)

		mockUserRepo.On("FindByEmail", mock.Anything, "ann@example.com").
			Return(storedUser("u1", "ann@example.com", "secret")).Once()

		user, err := service.Login(context.Background(), domain.LoginCredentials{Email: "ann@example.com", Password: "wrong!"})

		assert.Nil(t, user)
		assert.True(t, errors.Is(err, domain.ErrInvalidCredentials))
		mockSessionRepo.AssertNotCalled(t, "Set", mock.Anything, mock.Anything)
	})

	t.Run("unknown email", func(t *testing.T) {
		mockUserRepo := new(mocks.MockUserRepository)
		service := newTestAuthService(mockUserRepo, new(mocks.MockSessionRepository))

		mockUserRepo.On("FindByEmail", mock.Anything, "bob@example.com").Return(nil).Once()

		_, err := service.Login(context.Background(), domain.LoginCredentials{Email: "bob@example.com", Password: "secret"})

		assert.True(t, errors.Is(err, domain.ErrInvalidCredentials))
	})
}

func TestAuthService_UpdateProfile(t *testing.T) {
	t.Run("refreshes own session", func(t *testing.T) {
		mockUserRepo := new(mocks.MockUserRepository)
		mockSessionRepo := new(mocks.MockSessionRepository)
		service := newTestAuthService(mockUserRepo, mockSessionRepo)

		record := storedUser("u1", "ann@example.com", "secret")
		mockUserRepo.On("GetByID", mock.Anything, "u1").Return(record).Once()
		mockUserRepo.On("Update", mock.Anything, mock.MatchedBy(func(r *domain.UserRecord) bool {
			return r.Name == "Annie" && r.Email == "ann@example.com" && r.PasswordHash == record.PasswordHash
		})).Return(nil).Once()
		mockSessionRepo.On("Get", mock.Anything).Return(record.Public()).Once()
		mockSessionRepo.On("Set", mock.Anything, mock.MatchedBy(func(u *domain.User) bool { return u.Name == "Annie" })).Once()

		name := "Annie"
		user, err := service.UpdateProfile(context.Background(), "u1", domain.UserPatch{Name: &name})

		require.NoError(t, err)
		assert.Equal(t, "Annie", user.Name)
		mockUserRepo.AssertExpectations(t)
		mockSessionRepo.AssertExpectations(t)
	})

	t.Run("other user's session untouched", func(t *testing.T) {
		mockUserRepo := new(mocks.MockUserRepository)
		mockSessionRepo := new(mocks.MockSessionRepository)
		service := newTestAuthService(mockUserRepo, mockSessionRepo)

		mockUserRepo.On("GetByID", mock.Anything, "u1").Return(storedUser("u1", "ann@example.com", "secret")).Once()
		mockUserRepo.On("Update", mock.Anything, mock.Anything).Return(nil).Once()
		mockSessionRepo.On("Get", mock.Anything).Return(&domain.User{ID: "u2"}).Once()

		avatar := "https://example.com/a.png"
		_, err := service.UpdateProfile(context.Background(), "u1", domain.UserPatch{Avatar: &avatar})

		require.NoError(t, err)
		mockSessionRepo.AssertNotCalled(t, "Set", mock.Anything, mock.Anything)
	})

	t.Run("email taken by someone else", func(t *testing.T) {
		mockUserRepo := new(mocks.MockUserRepository)
		service := newTestAuthService(mockUserRepo, new(mocks.MockSessionRepository))

		mockUserRepo.On("GetByID", mock.Anything, "u1").Return(storedUser("u1", "ann@example.com", "secret")).Once()
		mockUserRepo.On("FindByEmail", mock.Anything, "bob@example.com").Return(storedUser("u2", "bob@example.com", "secret")).Once()

		email := "bob@example.com"
		_, err := service.UpdateProfile(context.Background(), "u1", domain.UserPatch{Email: &email})

		assert.True(t, errors.Is(err, domain.ErrDuplicateEmail))
		mockUserRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("user not found", func(t *testing.T) {
		mockUserRepo := new(mocks.MockUserRepository)
		service := newTestAuthService(mockUserRepo, new(mocks.MockSessionRepository))

		mockUserRepo.On("GetByID", mock.Anything, "u999").Return(nil).Once()

		_, err := service.UpdateProfile(context.Background(), "u999", domain.UserPatch{})

		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})
}

func TestAuthService_Users(t *testing.T) {
	mockUserRepo := new(mocks.MockUserRepository)
	mockSessionRepo := new(mocks.MockSessionRepository)
	service := newTestAuthService(mockUserRepo, mockSessionRepo)

	records := []*domain.UserRecord{
		storedUser("u1", "ann@example.com", "secret"),
		storedUser("u2", "bob@example.com", "hunter2"),
	}
	mockUserRepo.On("List", mock.Anything).Return(records).Once()
	mockUserRepo.On("GetByID", mock.Anything, "u2").Return(records[1]).Once()
	mockUserRepo.On("GetByID", mock.Anything, "u3").Return(nil).Once()
	mockSessionRepo.On("Get", mock.Anything).Return(nil).Once()
	mockSessionRepo.On("Clear", mock.Anything).Once()

	ctx := context.Background()
	users := service.AllUsers(ctx)
	require.Len(t, users, 2)
	assert.Equal(t, records[0].Public(), users[0])

	assert.Equal(t, "bob@example.com", service.GetUserByID(ctx, "u2").Email)
	assert.Nil(t, service.GetUserByID(ctx, "u3"))
	assert.Nil(t, service.CurrentUser(ctx))

	service.Logout(ctx)
	mockUserRepo.AssertExpectations(t)
	mockSessionRepo.AssertExpectations(t)
}
