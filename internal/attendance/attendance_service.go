package attendance

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ali44ashhad/contractor/internal/access"
	"github.com/ali44ashhad/contractor/internal/domain"
	"github.com/ali44ashhad/contractor/internal/shared/apperror"
)

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context, role, actorID string) ([]AttendanceResponse, error)
	GetForUser(ctx context.Context, role, actorID, userID string) ([]AttendanceResponse, error)
	GetByKey(ctx context.Context, role, actorID, userID, projectID string, date time.Time) (AttendanceResponse, error)
}

type service struct {
	repo   Repository
	access access.Service
}

func NewService(repo Repository, accessService access.Service) Service {
	return &service{repo: repo, access: accessService}
}

func (s *service) GetAll(ctx context.Context, role, actorID string) ([]AttendanceResponse, error) {
	filter, err := s.access.ProjectFilter(ctx, role, actorID)
	if err != nil {
		return nil, err
	}

	// Member biasa hanya melihat attendance miliknya sendiri
	if role == domain.RoleMember {
		rows, err := s.repo.FindAllByUser(ctx, filter, actorID)
		if err != nil {
			return nil, err
		}
		return mapToListResponse(rows), nil
	}

	rows, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(rows), nil
}

func (s *service) GetForUser(ctx context.Context, role, actorID, userID string) ([]AttendanceResponse, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, apperror.New(apperror.CodeInvalidInput, "invalid user id", http.StatusBadRequest)
	}

	if role == domain.RoleMember && userID != actorID {
		return nil, apperror.ErrNotFound
	}

	filter, err := s.access.ProjectFilter(ctx, role, actorID)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.FindAllByUser(ctx, filter, userID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(rows), nil
}

func (s *service) GetByKey(ctx context.Context, role, actorID, userID, projectID string, date time.Time) (AttendanceResponse, error) {
	filter, err := s.access.ProjectFilter(ctx, role, actorID)
	if err != nil {
		return AttendanceResponse{}, err
	}
	if !filter.Allows(projectID) {
		return AttendanceResponse{}, apperror.ErrNotFound
	}

	a, err := s.repo.FindByKey(ctx, userID, projectID, DayKey(date))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AttendanceResponse{}, apperror.ErrNotFound
		}
		return AttendanceResponse{}, err
	}
	return mapToResponse(*a), nil
}

func mapToResponse(a Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:             a.ID.String(),
		UserID:         a.UserID.String(),
		ProjectID:      a.ProjectID.String(),
		AttendanceDate: a.AttendanceDate.Format("2006-01-02"),
		IsPresent:      a.IsPresent,
	}
	if a.MorningUpdateID != nil {
		v := a.MorningUpdateID.String()
		resp.MorningUpdateID = &v
	}
	if a.EveningUpdateID != nil {
		v := a.EveningUpdateID.String()
		resp.EveningUpdateID = &v
	}
	return resp
}

func mapToListResponse(rows []Attendance) []AttendanceResponse {
	resp := make([]AttendanceResponse, len(rows))
	for i, a := range rows {
		resp[i] = mapToResponse(a)
	}
	return resp
}
