package project

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ali44ashhad/contractor/internal/access"
	"github.com/ali44ashhad/contractor/internal/domain"
	projecterrors "github.com/ali44ashhad/contractor/internal/project/errors"
	"github.com/ali44ashhad/contractor/internal/user"
)

//go:generate mockgen -source=project_service.go -destination=mock/project_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, adminID string, req CreateProjectRequest) (ProjectResponse, error)
	GetAll(ctx context.Context, role, actorID string) ([]ProjectResponse, error)
	GetByID(ctx context.Context, role, actorID, id string) (ProjectResponse, error)
	Update(ctx context.Context, id string, req UpdateProjectRequest) (ProjectResponse, error)
	AssignContractor(ctx context.Context, id, contractorID string) (ProjectResponse, error)
	ChangeStatus(ctx context.Context, id, status string) (ProjectResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo     Repository
	userRepo user.Repository
	access   access.Service
	logger   *zap.Logger
}

func NewService(repo Repository, userRepo user.Repository, accessService access.Service, logger ...*zap.Logger) Service {
	l := zap.L().Named("project.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("project.service")
	}
	return &service{repo: repo, userRepo: userRepo, access: accessService, logger: l}
}

func (s *service) Create(ctx context.Context, adminID string, req CreateProjectRequest) (ProjectResponse, error) {
	adminUUID, err := uuid.Parse(adminID)
	if err != nil {
		return ProjectResponse{}, projecterrors.ErrInvalidAdminID
	}

	startDate, endDate, err := parseDateRange(req.StartDate, req.EndDate)
	if err != nil {
		return ProjectResponse{}, err
	}
	if req.Budget < 0 {
		return ProjectResponse{}, projecterrors.ErrNegativeBudget
	}

	p := &Project{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		AdminID:     adminUUID,
		Status:      StatusPlanning,
		StartDate:   startDate,
		EndDate:     endDate,
		Budget:      req.Budget,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		s.logger.Error("create project persist failed", zap.Error(err))
		return ProjectResponse{}, err
	}

	s.logger.Info("project created",
		zap.String("project_id", p.ID.String()),
		zap.String("admin_id", adminID),
	)

	return mapToResponse(*p), nil
}

func (s *service) GetAll(ctx context.Context, role, actorID string) ([]ProjectResponse, error) {
	filter, err := s.access.ProjectFilter(ctx, role, actorID)
	if err != nil {
		return nil, err
	}

	projects, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	resp := make([]ProjectResponse, len(projects))
	for i, p := range projects {
		resp[i] = mapToResponse(p)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, role, actorID, id string) (ProjectResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return ProjectResponse{}, projecterrors.ErrInvalidProjectID
	}

	filter, err := s.access.ProjectFilter(ctx, role, actorID)
	if err != nil {
		return ProjectResponse{}, err
	}

	p, err := s.repo.FindByID(ctx, filter, id)
	if err != nil {
		// Di luar scope dan benar-benar tidak ada terlihat sama dari sisi caller
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ProjectResponse{}, projecterrors.ErrProjectNotFound
		}
		return ProjectResponse{}, err
	}
	return mapToResponse(*p), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateProjectRequest) (ProjectResponse, error) {
	p, err := s.findUnrestricted(ctx, id)
	if err != nil {
		return ProjectResponse{}, err
	}

	startDate, endDate, err := parseDateRange(req.StartDate, req.EndDate)
	if err != nil {
		return ProjectResponse{}, err
	}
	if req.Budget < 0 {
		return ProjectResponse{}, projecterrors.ErrNegativeBudget
	}

	p.Name = req.Name
	p.Description = req.Description
	p.StartDate = startDate
	p.EndDate = endDate
	p.Budget = req.Budget

	if err := s.repo.Update(ctx, p); err != nil {
		s.logger.Error("update project persist failed", zap.String("project_id", id), zap.Error(err))
		return ProjectResponse{}, err
	}
	return mapToResponse(*p), nil
}

func (s *service) AssignContractor(ctx context.Context, id, contractorID string) (ProjectResponse, error) {
	contractorUUID, err := uuid.Parse(contractorID)
	if err != nil {
		return ProjectResponse{}, projecterrors.ErrNotAContractor
	}

	p, err := s.findUnrestricted(ctx, id)
	if err != nil {
		return ProjectResponse{}, err
	}

	isContractor, err := s.userRepo.HasRole(ctx, contractorID, domain.RoleContractor)
	if err != nil {
		return ProjectResponse{}, err
	}
	if !isContractor {
		return ProjectResponse{}, projecterrors.ErrNotAContractor
	}

	// Contractor hanya memegang satu project aktif pada satu waktu
	if p.ContractorID == nil || p.ContractorID.String() != contractorID {
		busy, err := s.repo.ContractorHasActiveProject(ctx, contractorID)
		if err != nil {
			return ProjectResponse{}, err
		}
		if busy {
			return ProjectResponse{}, projecterrors.ErrContractorBusy
		}
	}

	p.ContractorID = &contractorUUID
	if err := s.repo.Update(ctx, p); err != nil {
		s.logger.Error("assign contractor persist failed",
			zap.String("project_id", id),
			zap.String("contractor_id", contractorID),
			zap.Error(err),
		)
		return ProjectResponse{}, err
	}

	s.logger.Info("contractor assigned",
		zap.String("project_id", id),
		zap.String("contractor_id", contractorID),
	)
	return mapToResponse(*p), nil
}

func (s *service) ChangeStatus(ctx context.Context, id, status string) (ProjectResponse, error) {
	if !IsValidStatus(status) {
		return ProjectResponse{}, projecterrors.ErrInvalidStatusTransition
	}

	p, err := s.findUnrestricted(ctx, id)
	if err != nil {
		return ProjectResponse{}, err
	}

	// Mutasi status langsung ditolak selama masih ada request pending
	pending, err := s.repo.CountPendingRequests(ctx, id)
	if err != nil {
		return ProjectResponse{}, err
	}
	if pending > 0 {
		s.logger.Warn("status change blocked by pending requests",
			zap.String("project_id", id),
			zap.Int64("pending", pending),
		)
		return ProjectResponse{}, projecterrors.ErrPendingRequestsExist
	}

	if !IsAllowedStatusTransition(p.Status, status) {
		return ProjectResponse{}, projecterrors.ErrInvalidStatusTransition
	}

	p.Status = status
	if err := s.repo.Update(ctx, p); err != nil {
		s.logger.Error("change status persist failed", zap.String("project_id", id), zap.Error(err))
		return ProjectResponse{}, err
	}

	s.logger.Info("project status changed",
		zap.String("project_id", id),
		zap.String("status", status),
	)
	return mapToResponse(*p), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return projecterrors.ErrInvalidProjectID
	}
	return s.repo.Delete(ctx, id)
}

func (s *service) findUnrestricted(ctx context.Context, id string) (*Project, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, projecterrors.ErrInvalidProjectID
	}
	p, err := s.repo.FindByID(ctx, access.Filter{Unrestricted: true}, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, projecterrors.ErrProjectNotFound
		}
		return nil, err
	}
	return p, nil
}

func parseDateRange(start, end string) (time.Time, time.Time, error) {
	startDate, err := time.Parse("2006-01-02", start)
	if err != nil {
		return time.Time{}, time.Time{}, projecterrors.ErrInvalidDateFormat
	}
	endDate, err := time.Parse("2006-01-02", end)
	if err != nil {
		return time.Time{}, time.Time{}, projecterrors.ErrInvalidDateFormat
	}
	if startDate.After(endDate) {
		return time.Time{}, time.Time{}, projecterrors.ErrInvalidDateRange
	}
	return startDate, endDate, nil
}

func mapToResponse(p Project) ProjectResponse {
	resp := ProjectResponse{
		ID:          p.ID.String(),
		Name:        p.Name,
		Description: p.Description,
		AdminID:     p.AdminID.String(),
		Status:      p.Status,
		StartDate:   p.StartDate.Format("2006-01-02"),
		EndDate:     p.EndDate.Format("2006-01-02"),
		Budget:      p.Budget,
	}
	if p.ContractorID != nil {
		v := p.ContractorID.String()
		resp.ContractorID = &v
	}
	return resp
}
