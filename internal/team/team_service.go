package team

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ali44ashhad/contractor/internal/access"
	"github.com/ali44ashhad/contractor/internal/domain"
	"github.com/ali44ashhad/contractor/internal/project"
	"github.com/ali44ashhad/contractor/internal/shared/apperror"
	teamerrors "github.com/ali44ashhad/contractor/internal/team/errors"
	"github.com/ali44ashhad/contractor/internal/user"
)

//go:generate mockgen -source=team_service.go -destination=mock/team_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, role, actorID string, req CreateTeamRequest) (TeamResponse, error)
	GetByID(ctx context.Context, id string) (TeamResponse, error)
	GetAllByProject(ctx context.Context, projectID string) ([]TeamResponse, error)
	AddMember(ctx context.Context, role, actorID, teamID string, req AddMemberRequest) (TeamResponse, error)
	RemoveMember(ctx context.Context, role, actorID, teamID, userID string) error
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo        Repository
	projectRepo project.Repository
	userRepo    user.Repository
	logger      *zap.Logger
}

func NewService(repo Repository, projectRepo project.Repository, userRepo user.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("team.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("team.service")
	}
	return &service{repo: repo, projectRepo: projectRepo, userRepo: userRepo, logger: l}
}

func (s *service) Create(ctx context.Context, role, actorID string, req CreateTeamRequest) (TeamResponse, error) {
	p, err := s.projectRepo.FindByID(ctx, access.Filter{Unrestricted: true}, req.ProjectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TeamResponse{}, teamerrors.ErrProjectNotFound
		}
		return TeamResponse{}, err
	}

	if p.ContractorID == nil {
		return TeamResponse{}, teamerrors.ErrNotProjectContractor
	}
	// Admin boleh membuat team atas nama contractor, contractor hanya di projectnya
	if role == domain.RoleContractor && p.ContractorID.String() != actorID {
		return TeamResponse{}, teamerrors.ErrNotProjectContractor
	}

	t := &Team{
		ID:           uuid.New(),
		ProjectID:    p.ID,
		ContractorID: *p.ContractorID,
		Name:         req.Name,
	}

	if err := s.repo.Create(ctx, t); err != nil {
		s.logger.Error("create team persist failed", zap.Error(err))
		return TeamResponse{}, err
	}

	s.logger.Info("team created",
		zap.String("team_id", t.ID.String()),
		zap.String("project_id", req.ProjectID),
	)
	return s.buildResponse(ctx, t)
}

func (s *service) GetByID(ctx context.Context, id string) (TeamResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return TeamResponse{}, teamerrors.ErrInvalidTeamID
	}

	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TeamResponse{}, teamerrors.ErrTeamNotFound
		}
		return TeamResponse{}, err
	}
	return s.buildResponse(ctx, t)
}

func (s *service) GetAllByProject(ctx context.Context, projectID string) ([]TeamResponse, error) {
	teams, err := s.repo.FindAllByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	resp := make([]TeamResponse, 0, len(teams))
	for i := range teams {
		tr, err := s.buildResponse(ctx, &teams[i])
		if err != nil {
			return nil, err
		}
		resp = append(resp, tr)
	}
	return resp, nil
}

func (s *service) AddMember(ctx context.Context, role, actorID, teamID string, req AddMemberRequest) (TeamResponse, error) {
	t, err := s.findManaged(ctx, role, actorID, teamID)
	if err != nil {
		return TeamResponse{}, err
	}

	u, err := s.userRepo.FindByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TeamResponse{}, teamerrors.ErrMemberNotFound
		}
		return TeamResponse{}, err
	}
	if u.Role != domain.RoleMember && u.Role != domain.RoleContractor {
		return TeamResponse{}, teamerrors.ErrMemberRoleNotAllowed
	}

	m := &TeamMember{
		ID:     uuid.New(),
		TeamID: t.ID,
		UserID: u.ID,
	}
	if err := s.repo.AddMember(ctx, m); err != nil {
		if apperror.IsUniqueViolation(err, "uq_team_members_team_user") {
			return TeamResponse{}, teamerrors.ErrDuplicateMember
		}
		s.logger.Error("add team member persist failed",
			zap.String("team_id", teamID),
			zap.String("user_id", req.UserID),
			zap.Error(err),
		)
		return TeamResponse{}, err
	}

	s.logger.Info("team member added",
		zap.String("team_id", teamID),
		zap.String("user_id", req.UserID),
	)

	// Re-read agar Members segar
	return s.GetByID(ctx, teamID)
}

func (s *service) RemoveMember(ctx context.Context, role, actorID, teamID, userID string) error {
	if _, err := s.findManaged(ctx, role, actorID, teamID); err != nil {
		return err
	}

	affected, err := s.repo.RemoveMember(ctx, teamID, userID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return teamerrors.ErrMemberNotFound
	}

	s.logger.Info("team member removed",
		zap.String("team_id", teamID),
		zap.String("user_id", userID),
	)
	return nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return teamerrors.ErrInvalidTeamID
	}
	return s.repo.Delete(ctx, id)
}

func (s *service) findManaged(ctx context.Context, role, actorID, teamID string) (*Team, error) {
	if _, err := uuid.Parse(teamID); err != nil {
		return nil, teamerrors.ErrInvalidTeamID
	}

	t, err := s.repo.FindByID(ctx, teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, teamerrors.ErrTeamNotFound
		}
		return nil, err
	}

	if role == domain.RoleContractor && t.ContractorID.String() != actorID {
		return nil, teamerrors.ErrNotProjectContractor
	}
	return t, nil
}

func (s *service) buildResponse(ctx context.Context, t *Team) (TeamResponse, error) {
	resp := TeamResponse{
		ID:           t.ID.String(),
		ProjectID:    t.ProjectID.String(),
		ContractorID: t.ContractorID.String(),
		Name:         t.Name,
		Members:      make([]TeamMemberResponse, 0, len(t.Members)),
	}

	// Read-side composition: batch fetch user refs lalu rakit, tanpa populate dinamis
	ids := make([]string, 0, len(t.Members))
	for _, m := range t.Members {
		ids = append(ids, m.UserID.String())
	}
	users, err := s.userRepo.FindByIDs(ctx, ids)
	if err != nil {
		return TeamResponse{}, err
	}
	nameByID := make(map[string]user.User, len(users))
	for _, u := range users {
		nameByID[u.ID.String()] = u
	}

	for _, m := range t.Members {
		mr := TeamMemberResponse{UserID: m.UserID.String()}
		if u, ok := nameByID[mr.UserID]; ok {
			mr.Name = u.Name
			mr.Role = u.Role
		}
		resp.Members = append(resp.Members, mr)
	}
	return resp, nil
}
