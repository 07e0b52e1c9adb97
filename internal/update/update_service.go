package update

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
	"github.com/ali44ashhad/contractor/internal/attendance"
	"github.com/ali44ashhad/contractor/internal/document"
	"github.com/ali44ashhad/contractor/internal/events"
	kafkaoutbox "github.com/ali44ashhad/contractor/internal/messaging/kafka"
	"github.com/ali44ashhad/contractor/internal/project"
	projecterrors "github.com/ali44ashhad/contractor/internal/project/errors"
	"github.com/ali44ashhad/contractor/internal/shared/apperror"
	"github.com/ali44ashhad/contractor/internal/shared/contextutil"
	"github.com/ali44ashhad/contractor/internal/team"
	updateerrors "github.com/ali44ashhad/contractor/internal/update/errors"
)

//go:generate mockgen -source=update_service.go -destination=mock/update_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, actorID string, req CreateUpdateRequest) (UpdateResponse, error)
	GetAll(ctx context.Context, role, actorID string, list ListFilter) ([]UpdateResponse, error)
	GetByID(ctx context.Context, role, actorID, id string) (UpdateResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db             *sql.DB
	repo           Repository
	projectRepo    project.Repository
	teamRepo       team.Repository
	attendanceRepo attendance.Repository
	outboxRepo     kafkaoutbox.OutboxRepository
	access         access.Service
	storage        document.Storage
	logger         *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	projectRepo project.Repository,
	teamRepo team.Repository,
	attendanceRepo attendance.Repository,
	outboxRepo kafkaoutbox.OutboxRepository,
	accessService access.Service,
	storage document.Storage,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("update.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("update.service")
	}
	return &service{
		db:             db,
		repo:           repo,
		projectRepo:    projectRepo,
		teamRepo:       teamRepo,
		attendanceRepo: attendanceRepo,
		outboxRepo:     outboxRepo,
		access:         accessService,
		storage:        storage,
		logger:         l,
	}
}

// Create menulis update harian, derivasi attendance, dan event outbox dalam
// satu transaksi. Kalau salah satunya gagal semuanya batal.
func (s *service) Create(ctx context.Context, actorID string, req CreateUpdateRequest) (UpdateResponse, error) {
	if req.UpdateType != TypeMorning && req.UpdateType != TypeEvening {
		return UpdateResponse{}, updateerrors.ErrInvalidUpdateType
	}
	if len(req.Documents) == 0 {
		return UpdateResponse{}, updateerrors.ErrDocumentRequired
	}

	parsed, err := time.Parse("2006-01-02", req.UpdateDate)
	if err != nil {
		return UpdateResponse{}, updateerrors.ErrInvalidUpdateDate
	}
	day := attendance.DayKey(parsed)

	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return UpdateResponse{}, updateerrors.ErrUpdateNotFound
	}

	p, err := s.projectRepo.FindByID(ctx, access.Filter{Unrestricted: true}, req.ProjectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return UpdateResponse{}, projecterrors.ErrProjectNotFound
		}
		return UpdateResponse{}, err
	}
	if p.Status != project.StatusInProgress {
		return UpdateResponse{}, updateerrors.ErrProjectNotInProgress
	}
	if p.ContractorID == nil {
		return UpdateResponse{}, updateerrors.ErrNotProjectMember
	}

	// Poster harus contractor project itu atau anggota salah satu team-nya
	if p.ContractorID.String() != actorID {
		member, err := s.teamRepo.IsProjectMember(ctx, req.ProjectID, actorID)
		if err != nil {
			return UpdateResponse{}, err
		}
		if !member {
			return UpdateResponse{}, updateerrors.ErrNotProjectMember
		}
	}

	row := &Update{
		ID:           uuid.New(),
		ProjectID:    p.ID,
		ContractorID: *p.ContractorID,
		PostedBy:     actorUUID,
		UpdateType:   req.UpdateType,
		UpdateDate:   day,
		PostedAt:     time.Now().UTC(),
		StatusText:   req.StatusText,
	}
	for i, d := range req.Documents {
		docID, err := uuid.Parse(d.ID)
		if err != nil {
			return UpdateResponse{}, apperror.InvalidField("documents")
		}
		row.Documents = append(row.Documents, UpdateDocument{
			ID:          docID,
			UpdateID:    row.ID,
			Position:    i,
			FileName:    d.FileName,
			ContentType: d.ContentType,
			SizeBytes:   d.SizeBytes,
			StoragePath: d.StoragePath,
			URL:         d.URL,
		})
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return UpdateResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.Create(ctx, row); err != nil {
		if apperror.IsUniqueViolation(err, "uq_updates_daily") {
			return UpdateResponse{}, updateerrors.ErrDuplicateDailyUpdate
		}
		return UpdateResponse{}, err
	}

	if err := s.attendanceRepo.WithTx(tx).UpsertFromUpdate(ctx, attendance.UpsertParams{
		UserID:     actorID,
		ProjectID:  req.ProjectID,
		Date:       day,
		UpdateID:   row.ID.String(),
		UpdateType: req.UpdateType,
	}); err != nil {
		return UpdateResponse{}, err
	}

	payload, err := json.Marshal(events.UpdateCreatedEvent{
		EventType:  "update.created",
		UpdateID:   row.ID.String(),
		ProjectID:  req.ProjectID,
		PostedBy:   actorID,
		UpdateType: req.UpdateType,
		UpdateDate: day.Format("2006-01-02"),
		OccurredAt: row.PostedAt,
	})
	if err != nil {
		return UpdateResponse{}, err
	}

	if err := s.outboxRepo.WithTx(tx).Create(ctx, kafkaoutbox.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "update",
		AggregateID:   row.ID.String(),
		EventType:     "update.created",
		Topic:         events.UpdateCreatedTopic,
		Payload:       payload,
		Status:        kafkaoutbox.OutboxStatusPending,
	}); err != nil {
		return UpdateResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return UpdateResponse{}, err
	}

	s.logger.Info("update posted",
		zap.String("update_id", row.ID.String()),
		zap.String("project_id", req.ProjectID),
		zap.String("posted_by", actorID),
		zap.String("update_type", req.UpdateType),
		zap.String("update_date", day.Format("2006-01-02")),
	)

	return mapToResponse(*row), nil
}

func (s *service) GetAll(ctx context.Context, role, actorID string, list ListFilter) ([]UpdateResponse, error) {
	filter, err := s.access.ProjectFilter(ctx, role, actorID)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.FindAll(ctx, filter, list)
	if err != nil {
		return nil, err
	}

	resp := make([]UpdateResponse, len(rows))
	for i, u := range rows {
		resp[i] = mapToResponse(u)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, role, actorID, id string) (UpdateResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return UpdateResponse{}, updateerrors.ErrInvalidUpdateID
	}

	filter, err := s.access.ProjectFilter(ctx, role, actorID)
	if err != nil {
		return UpdateResponse{}, err
	}

	u, err := s.repo.FindByID(ctx, filter, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return UpdateResponse{}, updateerrors.ErrUpdateNotFound
		}
		return UpdateResponse{}, err
	}
	return mapToResponse(*u), nil
}

// Delete menghapus update dan melepas referensinya dari attendance dalam satu
// transaksi, jadi is_present ikut dihitung ulang.
func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return updateerrors.ErrInvalidUpdateID
	}

	row, err := s.repo.FindByID(ctx, access.Filter{Unrestricted: true}, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return updateerrors.ErrUpdateNotFound
		}
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := s.attendanceRepo.WithTx(tx).ClearUpdateRef(ctx, id); err != nil {
		return err
	}
	if err := s.repo.WithTx(tx).Delete(ctx, id); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	// Byte attachment dibuang best-effort setelah commit; descriptor di DB
	// sudah hilang, file yatim tinggal urusan housekeeping.
	if s.storage != nil {
		for _, d := range row.Documents {
			if err := s.storage.Delete(d.StoragePath); err != nil {
				s.logger.Warn("delete attachment failed",
					zap.String("update_id", id),
					zap.String("path", d.StoragePath),
					zap.Error(err),
				)
			}
		}
	}

	s.logger.Info("update deleted", zap.String("update_id", id))
	return nil
}
