package user

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/ali44ashhad/contractor/internal/domain"
	"github.com/ali44ashhad/contractor/internal/shared/apperror"
	usererrors "github.com/ali44ashhad/contractor/internal/user/errors"
)

//go:generate mockgen -source=user_service.go -destination=mock/user_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateUserRequest) (UserResponse, error)
	GetAll(ctx context.Context) ([]UserResponse, error)
	GetByID(ctx context.Context, id string) (UserResponse, error)
	Update(ctx context.Context, id string, req UpdateUserRequest) (UserResponse, error)
	Deactivate(ctx context.Context, id string) (UserResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("user.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateUserRequest) (UserResponse, error) {
	if !domain.IsValidRole(req.Role) {
		return UserResponse{}, usererrors.ErrInvalidRole
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return UserResponse{}, err
	}

	u := &User{
		ID:       uuid.New(),
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashed),
		Role:     req.Role,
		IsActive: true,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		if apperror.IsUniqueViolation(err, "uq_users_email") {
			return UserResponse{}, usererrors.ErrEmailAlreadyUsed
		}
		s.logger.Error("create user persist failed", zap.Error(err))
		return UserResponse{}, err
	}

	s.logger.Info("user created",
		zap.String("user_id", u.ID.String()),
		zap.String("role", u.Role),
	)

	return mapToResponse(*u), nil
}

func (s *service) GetAll(ctx context.Context) ([]UserResponse, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]UserResponse, len(users))
	for i, u := range users {
		resp[i] = mapToResponse(u)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (UserResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return UserResponse{}, usererrors.ErrInvalidUserID
	}
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return UserResponse{}, usererrors.ErrUserNotFound
		}
		return UserResponse{}, err
	}
	return mapToResponse(*u), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateUserRequest) (UserResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return UserResponse{}, usererrors.ErrInvalidUserID
	}

	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return UserResponse{}, usererrors.ErrUserNotFound
		}
		return UserResponse{}, err
	}

	u.Name = req.Name
	u.Role = req.Role
	if req.IsActive != nil {
		u.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, u); err != nil {
		s.logger.Error("update user persist failed", zap.String("user_id", id), zap.Error(err))
		return UserResponse{}, err
	}

	return mapToResponse(*u), nil
}

func (s *service) Deactivate(ctx context.Context, id string) (UserResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return UserResponse{}, usererrors.ErrInvalidUserID
	}

	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return UserResponse{}, usererrors.ErrUserNotFound
		}
		return UserResponse{}, err
	}

	u.IsActive = false
	if err := s.repo.Update(ctx, u); err != nil {
		return UserResponse{}, err
	}

	s.logger.Info("user deactivated", zap.String("user_id", id))
	return mapToResponse(*u), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return usererrors.ErrInvalidUserID
	}
	return s.repo.Delete(ctx, id)
}

func mapToResponse(u User) UserResponse {
	return UserResponse{
		ID:        u.ID.String(),
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt.UTC().Format(time.RFC3339),
	}
}
