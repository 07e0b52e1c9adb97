package report

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"

	"github.com/ali44ashhad/contractor/internal/access"
	"github.com/ali44ashhad/contractor/internal/attendance"
	"github.com/ali44ashhad/contractor/internal/project"
	projecterrors "github.com/ali44ashhad/contractor/internal/project/errors"
	reporterrors "github.com/ali44ashhad/contractor/internal/report/errors"
	"github.com/ali44ashhad/contractor/internal/update"
	"github.com/ali44ashhad/contractor/internal/user"
)

const reportCacheTTL = 5 * time.Minute

func ProjectReportCacheKey(projectID string, from, to time.Time) string {
	return fmt.Sprintf("reports:project:%s:%s:%s",
		projectID, from.Format("2006-01-02"), to.Format("2006-01-02"))
}

//go:generate mockgen -source=report_service.go -destination=mock/report_service_mock.go -package=mock
type Service interface {
	GetProjectReport(ctx context.Context, role, actorID, projectID, startDate, endDate string) (ProjectReportResponse, error)
}

type service struct {
	repo        Repository
	projectRepo project.Repository
	updateRepo  update.Repository
	userRepo    user.Repository
	access      access.Service
	rdb         *redis.Client
	sf          *singleflight.Group
	logger      *zap.Logger
}

func NewService(
	repo Repository,
	projectRepo project.Repository,
	updateRepo update.Repository,
	userRepo user.Repository,
	accessService access.Service,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("report.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.service")
	}
	return &service{
		repo:        repo,
		projectRepo: projectRepo,
		updateRepo:  updateRepo,
		userRepo:    userRepo,
		access:      accessService,
		rdb:         rdb,
		sf:          &singleflight.Group{},
		logger:      l,
	}
}

func (s *service) GetProjectReport(ctx context.Context, role, actorID, projectID, startDate, endDate string) (ProjectReportResponse, error) {
	if _, err := uuid.Parse(projectID); err != nil {
		return ProjectReportResponse{}, projecterrors.ErrInvalidProjectID
	}

	from, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return ProjectReportResponse{}, reporterrors.ErrInvalidDateFormat
	}
	to, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return ProjectReportResponse{}, reporterrors.ErrInvalidDateFormat
	}
	from, to = attendance.DayKey(from), attendance.DayKey(to)
	if from.After(to) {
		return ProjectReportResponse{}, reporterrors.ErrInvalidDateRange
	}

	// Visibility dicek per caller sebelum menyentuh cache bersama
	filter, err := s.access.ProjectFilter(ctx, role, actorID)
	if err != nil {
		return ProjectReportResponse{}, err
	}

	p, err := s.projectRepo.FindByID(ctx, filter, projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ProjectReportResponse{}, projecterrors.ErrProjectNotFound
		}
		return ProjectReportResponse{}, err
	}

	if from.Before(attendance.DayKey(p.StartDate)) || to.After(attendance.DayKey(p.EndDate)) {
		return ProjectReportResponse{}, reporterrors.ErrRangeOutsideProject
	}

	cacheKey := ProjectReportCacheKey(projectID, from, to)
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp ProjectReportResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	// Singleflight meredam stampede saat dashboard dibuka bersamaan
	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		resp, err := s.build(ctx, p, from, to)
		if err != nil {
			return nil, err
		}

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, cacheKey, jsonData, reportCacheTTL)
			}
		}
		return resp, nil
	})
	if err != nil {
		return ProjectReportResponse{}, err
	}

	return v.(ProjectReportResponse), nil
}

// build mengumpulkan anggota grid: team member, contractor project, dan
// semua yang pernah posting update untuk project ini, kapan pun. Rentang
// hanya memfilter baris update yang mengisi slot.
func (s *service) build(ctx context.Context, p *project.Project, from, to time.Time) (ProjectReportResponse, error) {
	projectID := p.ID.String()

	teamIDs, err := s.repo.TeamMemberIDs(ctx, projectID)
	if err != nil {
		return ProjectReportResponse{}, err
	}
	posterIDs, err := s.repo.DistinctPosterIDs(ctx, projectID)
	if err != nil {
		return ProjectReportResponse{}, err
	}

	seen := make(map[string]bool)
	var memberIDs []string
	appendID := func(id string) {
		if id != "" && !seen[id] {
			seen[id] = true
			memberIDs = append(memberIDs, id)
		}
	}
	for _, id := range teamIDs {
		appendID(id)
	}
	if p.ContractorID != nil {
		appendID(p.ContractorID.String())
	}
	for _, id := range posterIDs {
		appendID(id)
	}

	members, err := s.userRepo.FindByIDs(ctx, memberIDs)
	if err != nil {
		return ProjectReportResponse{}, err
	}

	updates, err := s.updateRepo.FindByProjectAndRange(ctx, projectID, from, to)
	if err != nil {
		return ProjectReportResponse{}, err
	}

	memberRows, days := buildGrid(members, updates, from, to)

	s.logger.Debug("project report built",
		zap.String("project_id", projectID),
		zap.Int("members", len(memberRows)),
		zap.Int("days", len(days)),
		zap.Int("updates", len(updates)),
	)

	return ProjectReportResponse{
		ProjectID:   projectID,
		ProjectName: p.Name,
		StartDate:   from.Format("2006-01-02"),
		EndDate:     to.Format("2006-01-02"),
		Members:     memberRows,
		Days:        days,
	}, nil
}
