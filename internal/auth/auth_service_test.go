package auth_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/ali44ashhad/contractor/internal/auth"
	autherrors "github.com/ali44ashhad/contractor/internal/auth/errors"
	"github.com/ali44ashhad/contractor/internal/domain"
	"github.com/ali44ashhad/contractor/internal/user"
)

type fakeAuthRepository struct {
	getByEmailFn func(ctx context.Context, email string) (*user.User, error)
	getByIDFn    func(ctx context.Context, id uuid.UUID) (*user.User, error)
}

func (f *fakeAuthRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if f.getByEmailFn != nil {
		return f.getByEmailFn(ctx, email)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAuthRepository) GetByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func hashedPassword(t *testing.T, plain string) string {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hashed)
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	t.Setenv("JWT_SECRET", "test-secret")

	activeUser := func(t *testing.T) *user.User {
		return &user.User{
			ID:       uuid.New(),
			Name:     "Site Admin",
			Email:    "admin@example.com",
			Password: hashedPassword(t, "rahasia-123"),
			Role:     domain.RoleAdmin,
			IsActive: true,
		}
	}

	t.Run("success", func(t *testing.T) {
		u := activeUser(t)
		repo := &fakeAuthRepository{
			getByEmailFn: func(ctx context.Context, email string) (*user.User, error) {
				assert.Equal(t, "admin@example.com", email)
				return u, nil
			},
		}
		svc := auth.NewService(repo)

		access, refresh, resp, err := svc.Login(ctx, "admin@example.com", "rahasia-123")

		assert.NoError(t, err)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, refresh)
		assert.Equal(t, u.ID.String(), resp.ID)
		assert.Equal(t, domain.RoleAdmin, resp.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		u := activeUser(t)
		repo := &fakeAuthRepository{
			getByEmailFn: func(ctx context.Context, email string) (*user.User, error) {
				return u, nil
			},
		}
		svc := auth.NewService(repo)

		_, _, _, err := svc.Login(ctx, "admin@example.com", "salah")
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		svc := auth.NewService(&fakeAuthRepository{})

		_, _, _, err := svc.Login(ctx, "ghost@example.com", "whatever")
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("inactive user rejected", func(t *testing.T) {
		u := activeUser(t)
		u.IsActive = false
		repo := &fakeAuthRepository{
			getByEmailFn: func(ctx context.Context, email string) (*user.User, error) {
				return u, nil
			},
		}
		svc := auth.NewService(repo)

		_, _, _, err := svc.Login(ctx, "admin@example.com", "rahasia-123")
		assert.ErrorIs(t, err, autherrors.ErrUserInactive)
	})
}

func TestAuthService_RefreshToken(t *testing.T) {
	ctx := context.Background()
	t.Setenv("JWT_SECRET", "test-secret")

	u := &user.User{
		ID:       uuid.New(),
		Name:     "Kontraktor",
		Email:    "kontraktor@example.com",
		Password: hashedPassword(t, "rahasia-123"),
		Role:     domain.RoleContractor,
		IsActive: true,
	}

	repo := &fakeAuthRepository{
		getByEmailFn: func(ctx context.Context, email string) (*user.User, error) {
			return u, nil
		},
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*user.User, error) {
			assert.Equal(t, u.ID, id)
			return u, nil
		},
	}
	svc := auth.NewService(repo)

	t.Run("refresh with valid token", func(t *testing.T) {
		_, refresh, _, err := svc.Login(ctx, u.Email, "rahasia-123")
		assert.NoError(t, err)

		newAccess, newRefresh, resp, err := svc.RefreshToken(ctx, refresh)

		assert.NoError(t, err)
		assert.NotEmpty(t, newAccess)
		assert.NotEmpty(t, newRefresh)
		assert.Equal(t, u.ID.String(), resp.ID)
	})

	t.Run("garbage token rejected", func(t *testing.T) {
		_, _, _, err := svc.RefreshToken(ctx, "not-a-jwt")
		assert.ErrorIs(t, err, autherrors.ErrInvalidRefreshToken)
	})

	t.Run("deactivated between refreshes", func(t *testing.T) {
		_, refresh, _, err := svc.Login(ctx, u.Email, "rahasia-123")
		assert.NoError(t, err)

		u.IsActive = false
		defer func() { u.IsActive = true }()

		_, _, _, err = svc.RefreshToken(ctx, refresh)
		assert.ErrorIs(t, err, autherrors.ErrUserInactive)
	})
}

func TestAuthService_GetMe(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid id", func(t *testing.T) {
		svc := auth.NewService(&fakeAuthRepository{})

		_, err := svc.GetMe(ctx, "abc")
		assert.ErrorIs(t, err, autherrors.ErrInvalidUserID)
	})

	t.Run("not found", func(t *testing.T) {
		svc := auth.NewService(&fakeAuthRepository{})

		_, err := svc.GetMe(ctx, uuid.New().String())
		assert.ErrorIs(t, err, autherrors.ErrUserNotFound)
	})
}
