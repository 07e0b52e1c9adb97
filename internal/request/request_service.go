package request

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ali44ashhad/contractor/internal/access"
	"github.com/ali44ashhad/contractor/internal/events"
	kafkaoutbox "github.com/ali44ashhad/contractor/internal/messaging/kafka"
	"github.com/ali44ashhad/contractor/internal/project"
	projecterrors "github.com/ali44ashhad/contractor/internal/project/errors"
	requesterrors "github.com/ali44ashhad/contractor/internal/request/errors"
	"github.com/ali44ashhad/contractor/internal/shared/apperror"
	"github.com/ali44ashhad/contractor/internal/shared/contextutil"
)

//go:generate mockgen -source=request_service.go -destination=mock/request_service_mock.go -package=mock
type Service interface {
	CreateCompletion(ctx context.Context, actorID string, req CreateCompletionRequest) (RequestResponse, error)
	CreateExtension(ctx context.Context, actorID string, req CreateExtensionRequest) (RequestResponse, error)
	Approve(ctx context.Context, reviewerID, id string, req ApproveRequest) (RequestResponse, error)
	Reject(ctx context.Context, reviewerID, id string, req RejectRequest) (RequestResponse, error)
	Cancel(ctx context.Context, actorID, id string) error
	GetAll(ctx context.Context, role, actorID, projectID string) ([]RequestResponse, error)
	GetByID(ctx context.Context, role, actorID, id string) (RequestResponse, error)
}

type service struct {
	db          *sql.DB
	repo        Repository
	projectRepo project.Repository
	outboxRepo  kafkaoutbox.OutboxRepository
	access      access.Service
	logger      *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	projectRepo project.Repository,
	outboxRepo kafkaoutbox.OutboxRepository,
	accessService access.Service,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("request.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("request.service")
	}
	return &service{
		db:          db,
		repo:        repo,
		projectRepo: projectRepo,
		outboxRepo:  outboxRepo,
		access:      accessService,
		logger:      l,
	}
}

func (s *service) CreateCompletion(ctx context.Context, actorID string, req CreateCompletionRequest) (RequestResponse, error) {
	p, err := s.guardCreate(ctx, actorID, req.ProjectID)
	if err != nil {
		return RequestResponse{}, err
	}

	row := &ProjectRequest{
		ID:          uuid.New(),
		ProjectID:   p.ID,
		RequestedBy: uuid.MustParse(actorID),
		RequestType: TypeCompletion,
		Status:      StatusPending,
	}
	return s.persistCreate(ctx, row)
}

func (s *service) CreateExtension(ctx context.Context, actorID string, req CreateExtensionRequest) (RequestResponse, error) {
	p, err := s.guardCreate(ctx, actorID, req.ProjectID)
	if err != nil {
		return RequestResponse{}, err
	}

	requestedEnd, err := time.Parse("2006-01-02", req.RequestedEndDate)
	if err != nil {
		return RequestResponse{}, requesterrors.ErrInvalidDateFormat
	}
	if !requestedEnd.After(p.EndDate) {
		return RequestResponse{}, requesterrors.ErrInvalidExtensionDate
	}

	row := &ProjectRequest{
		ID:               uuid.New(),
		ProjectID:        p.ID,
		RequestedBy:      uuid.MustParse(actorID),
		RequestType:      TypeExtension,
		Status:           StatusPending,
		RequestedEndDate: &requestedEnd,
	}
	return s.persistCreate(ctx, row)
}

// guardCreate memastikan actor adalah contractor project itu dan project
// masih berjalan. Duplikasi pending ditangkap partial unique index, bukan
// pre-check, supaya balapan dua request serentak tetap menghasilkan tepat
// satu yang sukses.
func (s *service) guardCreate(ctx context.Context, actorID, projectID string) (*project.Project, error) {
	if _, err := uuid.Parse(actorID); err != nil {
		return nil, requesterrors.ErrNotProjectContractor
	}

	p, err := s.projectRepo.FindByID(ctx, access.Filter{Unrestricted: true}, projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, projecterrors.ErrProjectNotFound
		}
		return nil, err
	}

	if p.ContractorID == nil || p.ContractorID.String() != actorID {
		return nil, requesterrors.ErrNotProjectContractor
	}
	if p.Status != project.StatusInProgress {
		return nil, requesterrors.ErrProjectNotInProgress
	}
	return p, nil
}

func (s *service) persistCreate(ctx context.Context, row *ProjectRequest) (RequestResponse, error) {
	if err := s.repo.Create(ctx, row); err != nil {
		if apperror.IsUniqueViolation(err, "uq_project_requests_pending") {
			return RequestResponse{}, requesterrors.ErrPendingRequestExists
		}
		return RequestResponse{}, err
	}

	s.logger.Info("project request created",
		zap.String("request_id", row.ID.String()),
		zap.String("project_id", row.ProjectID.String()),
		zap.String("request_type", row.RequestType),
	)
	return mapToResponse(*row), nil
}

// Approve memutus request dan memutasi project dalam satu transaksi.
func (s *service) Approve(ctx context.Context, reviewerID, id string, req ApproveRequest) (RequestResponse, error) {
	row, p, err := s.loadPending(ctx, id)
	if err != nil {
		return RequestResponse{}, err
	}

	reviewerUUID, err := uuid.Parse(reviewerID)
	if err != nil {
		return RequestResponse{}, requesterrors.ErrInvalidRequestID
	}

	var approvedEnd *time.Time
	if row.RequestType == TypeExtension {
		chosen := row.RequestedEndDate
		if req.ApprovedEndDate != "" {
			parsed, err := time.Parse("2006-01-02", req.ApprovedEndDate)
			if err != nil {
				return RequestResponse{}, requesterrors.ErrInvalidDateFormat
			}
			chosen = &parsed
		}
		// Tanggal pengganti tetap harus melewati end date project saat ini
		if chosen == nil || !chosen.After(p.EndDate) {
			return RequestResponse{}, requesterrors.ErrInvalidExtensionDate
		}
		approvedEnd = chosen
	}

	now := time.Now().UTC()
	row.Status = StatusApproved
	row.ApprovedEndDate = approvedEnd
	row.ReviewedBy = &reviewerUUID
	row.ReviewedAt = &now
	row.ReviewNotes = ""

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return RequestResponse{}, err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Resolve(ctx, row); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return RequestResponse{}, requesterrors.ErrAlreadyResolved
		}
		return RequestResponse{}, err
	}

	qProject := s.projectRepo.WithTx(tx)
	switch row.RequestType {
	case TypeCompletion:
		if err := qProject.SetStatus(ctx, p.ID.String(), project.StatusCompleted); err != nil {
			return RequestResponse{}, err
		}
	case TypeExtension:
		if err := qProject.SetEndDate(ctx, p.ID.String(), *approvedEnd); err != nil {
			return RequestResponse{}, err
		}
	}

	if err := s.writeResolvedEvent(ctx, tx, row, reviewerID, now); err != nil {
		return RequestResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return RequestResponse{}, err
	}

	s.logger.Info("request approved",
		zap.String("request_id", id),
		zap.String("project_id", p.ID.String()),
		zap.String("request_type", row.RequestType),
		zap.String("reviewed_by", reviewerID),
	)
	return mapToResponse(*row), nil
}

// Reject menolak request. Penolakan completion mengembalikan project ke
// IN_PROGRESS hanya kalau statusnya sempat bergeser.
func (s *service) Reject(ctx context.Context, reviewerID, id string, req RejectRequest) (RequestResponse, error) {
	row, p, err := s.loadPending(ctx, id)
	if err != nil {
		return RequestResponse{}, err
	}

	reviewerUUID, err := uuid.Parse(reviewerID)
	if err != nil {
		return RequestResponse{}, requesterrors.ErrInvalidRequestID
	}

	now := time.Now().UTC()
	row.Status = StatusRejected
	row.ReviewedBy = &reviewerUUID
	row.ReviewedAt = &now
	row.ReviewNotes = req.Notes

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return RequestResponse{}, err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Resolve(ctx, row); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return RequestResponse{}, requesterrors.ErrAlreadyResolved
		}
		return RequestResponse{}, err
	}

	if row.RequestType == TypeCompletion && p.Status != project.StatusInProgress {
		if err := s.projectRepo.WithTx(tx).SetStatus(ctx, p.ID.String(), project.StatusInProgress); err != nil {
			return RequestResponse{}, err
		}
	}

	if err := s.writeResolvedEvent(ctx, tx, row, reviewerID, now); err != nil {
		return RequestResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return RequestResponse{}, err
	}

	s.logger.Info("request rejected",
		zap.String("request_id", id),
		zap.String("project_id", p.ID.String()),
		zap.String("request_type", row.RequestType),
		zap.String("reviewed_by", reviewerID),
	)
	return mapToResponse(*row), nil
}

func (s *service) Cancel(ctx context.Context, actorID, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return requesterrors.ErrInvalidRequestID
	}

	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return requesterrors.ErrRequestNotFound
		}
		return err
	}

	if row.RequestedBy.String() != actorID {
		return requesterrors.ErrNotRequester
	}
	if row.Status != StatusPending {
		return requesterrors.ErrAlreadyResolved
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("request cancelled",
		zap.String("request_id", id),
		zap.String("requested_by", actorID),
	)
	return nil
}

func (s *service) GetAll(ctx context.Context, role, actorID, projectID string) ([]RequestResponse, error) {
	filter, err := s.access.ProjectFilter(ctx, role, actorID)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.FindAll(ctx, filter, projectID)
	if err != nil {
		return nil, err
	}

	resp := make([]RequestResponse, len(rows))
	for i, r := range rows {
		resp[i] = mapToResponse(r)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, role, actorID, id string) (RequestResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return RequestResponse{}, requesterrors.ErrInvalidRequestID
	}

	filter, err := s.access.ProjectFilter(ctx, role, actorID)
	if err != nil {
		return RequestResponse{}, err
	}

	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return RequestResponse{}, requesterrors.ErrRequestNotFound
		}
		return RequestResponse{}, err
	}

	// Di luar scope diperlakukan sama dengan tidak ada
	if !filter.Allows(row.ProjectID.String()) {
		return RequestResponse{}, requesterrors.ErrRequestNotFound
	}
	return mapToResponse(*row), nil
}

func (s *service) loadPending(ctx context.Context, id string) (*ProjectRequest, *project.Project, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, nil, requesterrors.ErrInvalidRequestID
	}

	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, requesterrors.ErrRequestNotFound
		}
		return nil, nil, err
	}
	if row.Status != StatusPending {
		return nil, nil, requesterrors.ErrAlreadyResolved
	}

	p, err := s.projectRepo.FindByID(ctx, access.Filter{Unrestricted: true}, row.ProjectID.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, projecterrors.ErrProjectNotFound
		}
		return nil, nil, err
	}
	return row, p, nil
}

func (s *service) writeResolvedEvent(ctx context.Context, tx *sql.Tx, row *ProjectRequest, reviewerID string, occurredAt time.Time) error {
	payload, err := json.Marshal(events.RequestResolvedEvent{
		EventType:   "request.resolved",
		RequestID:   row.ID.String(),
		ProjectID:   row.ProjectID.String(),
		RequestType: row.RequestType,
		Status:      row.Status,
		ReviewedBy:  reviewerID,
		OccurredAt:  occurredAt,
	})
	if err != nil {
		return err
	}

	return s.outboxRepo.WithTx(tx).Create(ctx, kafkaoutbox.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "project_request",
		AggregateID:   row.ID.String(),
		EventType:     "request.resolved",
		Topic:         events.RequestResolvedTopic,
		Payload:       payload,
		Status:        kafkaoutbox.OutboxStatusPending,
	})
}
