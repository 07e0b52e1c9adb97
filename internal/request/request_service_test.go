package request_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/ali44ashhad/contractor/internal/access"
	kafkaoutbox "github.com/ali44ashhad/contractor/internal/messaging/kafka"
	"github.com/ali44ashhad/contractor/internal/project"
	"github.com/ali44ashhad/contractor/internal/request"
	requesterrors "github.com/ali44ashhad/contractor/internal/request/errors"
)

type fakeRequestRepository struct {
	createFn   func(ctx context.Context, r *request.ProjectRequest) error
	findAllFn  func(ctx context.Context, filter access.Filter, projectID string) ([]request.ProjectRequest, error)
	findByIDFn func(ctx context.Context, id string) (*request.ProjectRequest, error)
	resolveFn  func(ctx context.Context, r *request.ProjectRequest) error
	deleteFn   func(ctx context.Context, id string) error
}

func (f *fakeRequestRepository) WithTx(tx *sql.Tx) request.Repository { return f }

func (f *fakeRequestRepository) Create(ctx context.Context, r *request.ProjectRequest) error {
	if f.createFn != nil {
		return f.createFn(ctx, r)
	}
	return nil
}

func (f *fakeRequestRepository) FindAll(ctx context.Context, filter access.Filter, projectID string) ([]request.ProjectRequest, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx, filter, projectID)
	}
	return nil, nil
}

func (f *fakeRequestRepository) FindByID(ctx context.Context, id string) (*request.ProjectRequest, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRequestRepository) Resolve(ctx context.Context, r *request.ProjectRequest) error {
	if f.resolveFn != nil {
		return f.resolveFn(ctx, r)
	}
	return nil
}

func (f *fakeRequestRepository) Delete(ctx context.Context, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

type fakeProjectRepository struct {
	findByIDFn   func(ctx context.Context, filter access.Filter, id string) (*project.Project, error)
	setStatusFn  func(ctx context.Context, id, status string) error
	setEndDateFn func(ctx context.Context, id string, endDate time.Time) error
}

func (f *fakeProjectRepository) WithTx(tx *sql.Tx) project.Repository          { return f }
func (f *fakeProjectRepository) Create(ctx context.Context, p *project.Project) error { return nil }
func (f *fakeProjectRepository) FindAll(ctx context.Context, filter access.Filter) ([]project.Project, error) {
	return nil, nil
}
func (f *fakeProjectRepository) FindByID(ctx context.Context, filter access.Filter, id string) (*project.Project, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, filter, id)
	}
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeProjectRepository) Update(ctx context.Context, p *project.Project) error { return nil }
func (f *fakeProjectRepository) Delete(ctx context.Context, id string) error          { return nil }
func (f *fakeProjectRepository) SetStatus(ctx context.Context, id, status string) error {
	if f.setStatusFn != nil {
		return f.setStatusFn(ctx, id, status)
	}
	return nil
}
func (f *fakeProjectRepository) SetEndDate(ctx context.Context, id string, endDate time.Time) error {
	if f.setEndDateFn != nil {
		return f.setEndDateFn(ctx, id, endDate)
	}
	return nil
}
func (f *fakeProjectRepository) CountPendingRequests(ctx context.Context, projectID string) (int64, error) {
	return 0, nil
}
func (f *fakeProjectRepository) ContractorHasActiveProject(ctx context.Context, contractorID string) (bool, error) {
	return false, nil
}

type fakeOutboxRepository struct {
	createFn func(ctx context.Context, event kafkaoutbox.OutboxEvent) error
}

func (f *fakeOutboxRepository) WithTx(tx *sql.Tx) kafkaoutbox.OutboxRepository { return f }
func (f *fakeOutboxRepository) Create(ctx context.Context, event kafkaoutbox.OutboxEvent) error {
	if f.createFn != nil {
		return f.createFn(ctx, event)
	}
	return nil
}
func (f *fakeOutboxRepository) ListPending(ctx context.Context, limit int) ([]kafkaoutbox.OutboxEvent, error) {
	return nil, nil
}
func (f *fakeOutboxRepository) MarkSent(ctx context.Context, id string) error { return nil }
func (f *fakeOutboxRepository) MarkFailed(ctx context.Context, id string, reason string) error {
	return nil
}

type fakeAccessService struct {
	filter access.Filter
}

func (f *fakeAccessService) ProjectFilter(ctx context.Context, role, userID string) (access.Filter, error) {
	return f.filter, nil
}

type requestServiceDeps struct {
	db          *sql.DB
	sqlMock     sqlmock.Sqlmock
	service     request.Service
	repo        *fakeRequestRepository
	projectRepo *fakeProjectRepository
	outboxRepo  *fakeOutboxRepository
	access      *fakeAccessService
}

func setupRequestServiceTest(t *testing.T) *requestServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	repo := &fakeRequestRepository{}
	projectRepo := &fakeProjectRepository{}
	outboxRepo := &fakeOutboxRepository{}
	accessSvc := &fakeAccessService{}
	svc := request.NewService(db, repo, projectRepo, outboxRepo, accessSvc)

	return &requestServiceDeps{
		db:          db,
		sqlMock:     sqlMock,
		service:     svc,
		repo:        repo,
		projectRepo: projectRepo,
		outboxRepo:  outboxRepo,
		access:      accessSvc,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func TestRequestService_Create(t *testing.T) {
	ctx := context.Background()
	projectID := uuid.New()
	contractorID := uuid.New()

	inProgressProject := func() *project.Project {
		return &project.Project{
			ID:           projectID,
			Status:       project.StatusInProgress,
			ContractorID: &contractorID,
			EndDate:      time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC),
		}
	}

	t.Run("completion request", func(t *testing.T) {
		deps := setupRequestServiceTest(t)
		defer deps.db.Close()

		deps.projectRepo.findByIDFn = func(ctx context.Context, filter access.Filter, id string) (*project.Project, error) {
			return inProgressProject(), nil
		}
		deps.repo.createFn = func(ctx context.Context, r *request.ProjectRequest) error {
			assert.Equal(t, request.TypeCompletion, r.RequestType)
			assert.Equal(t, request.StatusPending, r.Status)
			assert.Equal(t, contractorID, r.RequestedBy)
			return nil
		}

		resp, err := deps.service.CreateCompletion(ctx, contractorID.String(), request.CreateCompletionRequest{
			ProjectID: projectID.String(),
		})
		assert.NoError(t, err)
		assert.Equal(t, request.StatusPending, resp.Status)
	})

	t.Run("extension must move the end date forward", func(t *testing.T) {
		deps := setupRequestServiceTest(t)
		defer deps.db.Close()

		deps.projectRepo.findByIDFn = func(ctx context.Context, filter access.Filter, id string) (*project.Project, error) {
			return inProgressProject(), nil
		}

		_, err := deps.service.CreateExtension(ctx, contractorID.String(), request.CreateExtensionRequest{
			ProjectID:        projectID.String(),
			RequestedEndDate: "2026-09-30",
		})
		assert.ErrorIs(t, err, requesterrors.ErrInvalidExtensionDate)
	})

	t.Run("only the assigned contractor may file", func(t *testing.T) {
		deps := setupRequestServiceTest(t)
		defer deps.db.Close()

		deps.projectRepo.findByIDFn = func(ctx context.Context, filter access.Filter, id string) (*project.Project, error) {
			return inProgressProject(), nil
		}

		_, err := deps.service.CreateCompletion(ctx, uuid.New().String(), request.CreateCompletionRequest{
			ProjectID: projectID.String(),
		})
		assert.ErrorIs(t, err, requesterrors.ErrNotProjectContractor)
	})

	t.Run("project must be in progress", func(t *testing.T) {
		deps := setupRequestServiceTest(t)
		defer deps.db.Close()

		deps.projectRepo.findByIDFn = func(ctx context.Context, filter access.Filter, id string) (*project.Project, error) {
			p := inProgressProject()
			p.Status = project.StatusOnHold
			return p, nil
		}

		_, err := deps.service.CreateCompletion(ctx, contractorID.String(), request.CreateCompletionRequest{
			ProjectID: projectID.String(),
		})
		assert.ErrorIs(t, err, requesterrors.ErrProjectNotInProgress)
	})

	t.Run("second pending request of the same type conflicts", func(t *testing.T) {
		deps := setupRequestServiceTest(t)
		defer deps.db.Close()

		deps.projectRepo.findByIDFn = func(ctx context.Context, filter access.Filter, id string) (*project.Project, error) {
			return inProgressProject(), nil
		}
		deps.repo.createFn = func(ctx context.Context, r *request.ProjectRequest) error {
			return errors.New(`ERROR: duplicate key value violates unique constraint "uq_project_requests_pending" (SQLSTATE 23505)`)
		}

		_, err := deps.service.CreateCompletion(ctx, contractorID.String(), request.CreateCompletionRequest{
			ProjectID: projectID.String(),
		})
		assert.ErrorIs(t, err, requesterrors.ErrPendingRequestExists)
	})
}

func TestRequestService_Approve(t *testing.T) {
	ctx := context.Background()
	projectID := uuid.New()
	contractorID := uuid.New()
	reviewerID := uuid.New()
	requestID := uuid.New()

	inProgressProject := func() *project.Project {
		return &project.Project{
			ID:           projectID,
			Status:       project.StatusInProgress,
			ContractorID: &contractorID,
			EndDate:      time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC),
		}
	}

	pendingCompletion := func() *request.ProjectRequest {
		return &request.ProjectRequest{
			ID:          requestID,
			ProjectID:   projectID,
			RequestedBy: contractorID,
			RequestType: request.TypeCompletion,
			Status:      request.StatusPending,
		}
	}

	pendingExtension := func(requested time.Time) *request.ProjectRequest {
		return &request.ProjectRequest{
			ID:               requestID,
			ProjectID:        projectID,
			RequestedBy:      contractorID,
			RequestType:      request.TypeExtension,
			Status:           request.StatusPending,
			RequestedEndDate: &requested,
		}
	}

	t.Run("approving completion finishes the project", func(t *testing.T) {
		deps := setupRequestServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*request.ProjectRequest, error) {
			return pendingCompletion(), nil
		}
		deps.projectRepo.findByIDFn = func(ctx context.Context, filter access.Filter, id string) (*project.Project, error) {
			return inProgressProject(), nil
		}
		var statusSet string
		deps.projectRepo.setStatusFn = func(ctx context.Context, id, status string) error {
			assert.Equal(t, projectID.String(), id)
			statusSet = status
			return nil
		}
		var queued *kafkaoutbox.OutboxEvent
		deps.outboxRepo.createFn = func(ctx context.Context, event kafkaoutbox.OutboxEvent) error {
			queued = &event
			return nil
		}

		resp, err := deps.service.Approve(ctx, reviewerID.String(), requestID.String(), request.ApproveRequest{})

		assert.NoError(t, err)
		assert.Equal(t, request.StatusApproved, resp.Status)
		assert.Equal(t, project.StatusCompleted, statusSet)
		assert.NotNil(t, queued)
		assert.Equal(t, "request.resolved", queued.EventType)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("approving extension moves the end date", func(t *testing.T) {
		deps := setupRequestServiceTest(t)
		defer deps.db.Close()

		requested := time.Date(2026, 11, 15, 0, 0, 0, 0, time.UTC)
		expectTx(t, deps.sqlMock, true)
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*request.ProjectRequest, error) {
			return pendingExtension(requested), nil
		}
		deps.projectRepo.findByIDFn = func(ctx context.Context, filter access.Filter, id string) (*project.Project, error) {
			return inProgressProject(), nil
		}
		var endSet time.Time
		deps.projectRepo.setEndDateFn = func(ctx context.Context, id string, endDate time.Time) error {
			endSet = endDate
			return nil
		}

		resp, err := deps.service.Approve(ctx, reviewerID.String(), requestID.String(), request.ApproveRequest{})

		assert.NoError(t, err)
		assert.True(t, requested.Equal(endSet))
		assert.NotNil(t, resp.ApprovedEndDate)
		assert.Equal(t, "2026-11-15", *resp.ApprovedEndDate)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("reviewer override replaces the requested date", func(t *testing.T) {
		deps := setupRequestServiceTest(t)
		defer deps.db.Close()

		requested := time.Date(2026, 11, 15, 0, 0, 0, 0, time.UTC)
		expectTx(t, deps.sqlMock, true)
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*request.ProjectRequest, error) {
			return pendingExtension(requested), nil
		}
		deps.projectRepo.findByIDFn = func(ctx context.Context, filter access.Filter, id string) (*project.Project, error) {
			return inProgressProject(), nil
		}
		var endSet time.Time
		deps.projectRepo.setEndDateFn = func(ctx context.Context, id string, endDate time.Time) error {
			endSet = endDate
			return nil
		}

		_, err := deps.service.Approve(ctx, reviewerID.String(), requestID.String(), request.ApproveRequest{
			ApprovedEndDate: "2026-10-20",
		})

		assert.NoError(t, err)
		assert.Equal(t, "2026-10-20", endSet.Format("2006-01-02"))
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("override before current end date rejected", func(t *testing.T) {
		deps := setupRequestServiceTest(t)
		defer deps.db.Close()

		requested := time.Date(2026, 11, 15, 0, 0, 0, 0, time.UTC)
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*request.ProjectRequest, error) {
			return pendingExtension(requested), nil
		}
		deps.projectRepo.findByIDFn = func(ctx context.Context, filter access.Filter, id string) (*project.Project, error) {
			return inProgressProject(), nil
		}

		_, err := deps.service.Approve(ctx, reviewerID.String(), requestID.String(), request.ApproveRequest{
			ApprovedEndDate: "2026-08-01",
		})
		assert.ErrorIs(t, err, requesterrors.ErrInvalidExtensionDate)
	})

	t.Run("losing a resolve race reads as already resolved", func(t *testing.T) {
		deps := setupRequestServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*request.ProjectRequest, error) {
			return pendingCompletion(), nil
		}
		deps.projectRepo.findByIDFn = func(ctx context.Context, filter access.Filter, id string) (*project.Project, error) {
			return inProgressProject(), nil
		}
		deps.repo.resolveFn = func(ctx context.Context, r *request.ProjectRequest) error {
			return gorm.ErrRecordNotFound
		}

		_, err := deps.service.Approve(ctx, reviewerID.String(), requestID.String(), request.ApproveRequest{})
		assert.ErrorIs(t, err, requesterrors.ErrAlreadyResolved)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("resolved request cannot be approved again", func(t *testing.T) {
		deps := setupRequestServiceTest(t)
		defer deps.db.Close()

		deps.repo.findByIDFn = func(ctx context.Context, id string) (*request.ProjectRequest, error) {
			r := pendingCompletion()
			r.Status = request.StatusApproved
			return r, nil
		}

		_, err := deps.service.Approve(ctx, reviewerID.String(), requestID.String(), request.ApproveRequest{})
		assert.ErrorIs(t, err, requesterrors.ErrAlreadyResolved)
	})
}

func TestRequestService_Reject(t *testing.T) {
	ctx := context.Background()
	projectID := uuid.New()
	contractorID := uuid.New()
	reviewerID := uuid.New()
	requestID := uuid.New()

	pendingCompletion := func() *request.ProjectRequest {
		return &request.ProjectRequest{
			ID:          requestID,
			ProjectID:   projectID,
			RequestedBy: contractorID,
			RequestType: request.TypeCompletion,
			Status:      request.StatusPending,
		}
	}

	t.Run("rejection leaves an in-progress project alone", func(t *testing.T) {
		deps := setupRequestServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*request.ProjectRequest, error) {
			return pendingCompletion(), nil
		}
		deps.projectRepo.findByIDFn = func(ctx context.Context, filter access.Filter, id string) (*project.Project, error) {
			return &project.Project{ID: projectID, Status: project.StatusInProgress, ContractorID: &contractorID}, nil
		}
		deps.projectRepo.setStatusFn = func(ctx context.Context, id, status string) error {
			t.Fatal("status restore should not run when the project never moved")
			return nil
		}

		resp, err := deps.service.Reject(ctx, reviewerID.String(), requestID.String(), request.RejectRequest{
			Notes: "Pekerjaan finishing belum selesai",
		})

		assert.NoError(t, err)
		assert.Equal(t, request.StatusRejected, resp.Status)
		assert.Equal(t, "Pekerjaan finishing belum selesai", resp.ReviewNotes)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("rejection restores a drifted project to in progress", func(t *testing.T) {
		deps := setupRequestServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*request.ProjectRequest, error) {
			return pendingCompletion(), nil
		}
		deps.projectRepo.findByIDFn = func(ctx context.Context, filter access.Filter, id string) (*project.Project, error) {
			return &project.Project{ID: projectID, Status: project.StatusCompleted, ContractorID: &contractorID}, nil
		}
		var restored string
		deps.projectRepo.setStatusFn = func(ctx context.Context, id, status string) error {
			restored = status
			return nil
		}

		_, err := deps.service.Reject(ctx, reviewerID.String(), requestID.String(), request.RejectRequest{})

		assert.NoError(t, err)
		assert.Equal(t, project.StatusInProgress, restored)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestRequestService_Cancel(t *testing.T) {
	ctx := context.Background()
	contractorID := uuid.New()
	requestID := uuid.New()

	pending := func() *request.ProjectRequest {
		return &request.ProjectRequest{
			ID:          requestID,
			ProjectID:   uuid.New(),
			RequestedBy: contractorID,
			RequestType: request.TypeExtension,
			Status:      request.StatusPending,
		}
	}

	t.Run("requester withdraws a pending request", func(t *testing.T) {
		deps := setupRequestServiceTest(t)
		defer deps.db.Close()

		deps.repo.findByIDFn = func(ctx context.Context, id string) (*request.ProjectRequest, error) {
			return pending(), nil
		}
		var deleted bool
		deps.repo.deleteFn = func(ctx context.Context, id string) error {
			assert.Equal(t, requestID.String(), id)
			deleted = true
			return nil
		}

		err := deps.service.Cancel(ctx, contractorID.String(), requestID.String())
		assert.NoError(t, err)
		assert.True(t, deleted)
	})

	t.Run("only the requester may cancel", func(t *testing.T) {
		deps := setupRequestServiceTest(t)
		defer deps.db.Close()

		deps.repo.findByIDFn = func(ctx context.Context, id string) (*request.ProjectRequest, error) {
			return pending(), nil
		}

		err := deps.service.Cancel(ctx, uuid.New().String(), requestID.String())
		assert.ErrorIs(t, err, requesterrors.ErrNotRequester)
	})

	t.Run("resolved request cannot be withdrawn", func(t *testing.T) {
		deps := setupRequestServiceTest(t)
		defer deps.db.Close()

		deps.repo.findByIDFn = func(ctx context.Context, id string) (*request.ProjectRequest, error) {
			r := pending()
			r.Status = request.StatusRejected
			return r, nil
		}

		err := deps.service.Cancel(ctx, contractorID.String(), requestID.String())
		assert.ErrorIs(t, err, requesterrors.ErrAlreadyResolved)
	})
}

func TestRequestService_GetByID(t *testing.T) {
	ctx := context.Background()
	projectID := uuid.New()
	requestID := uuid.New()

	t.Run("out of scope reads as not found", func(t *testing.T) {
		deps := setupRequestServiceTest(t)
		defer deps.db.Close()

		deps.access.filter = access.Filter{ProjectIDs: []string{uuid.New().String()}}
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*request.ProjectRequest, error) {
			return &request.ProjectRequest{ID: requestID, ProjectID: projectID, Status: request.StatusPending}, nil
		}

		_, err := deps.service.GetByID(ctx, "MEMBER", uuid.New().String(), requestID.String())
		assert.ErrorIs(t, err, requesterrors.ErrRequestNotFound)
	})
}

// Walks a project from IN_PROGRESS through a completion request to
// COMPLETED and verifies the closed project accepts no further requests.
func TestRequestService_CompletionWorkflow(t *testing.T) {
	ctx := context.Background()
	projectID := uuid.New()
	contractorID := uuid.New()
	reviewerID := uuid.New()

	deps := setupRequestServiceTest(t)
	defer deps.db.Close()

	projectStatus := project.StatusInProgress
	var stored *request.ProjectRequest

	deps.projectRepo.findByIDFn = func(ctx context.Context, filter access.Filter, id string) (*project.Project, error) {
		return &project.Project{
			ID:           projectID,
			Status:       projectStatus,
			ContractorID: &contractorID,
			EndDate:      time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC),
		}, nil
	}
	deps.projectRepo.setStatusFn = func(ctx context.Context, id, status string) error {
		projectStatus = status
		return nil
	}
	deps.repo.createFn = func(ctx context.Context, r *request.ProjectRequest) error {
		stored = r
		return nil
	}
	deps.repo.findByIDFn = func(ctx context.Context, id string) (*request.ProjectRequest, error) {
		if stored == nil || stored.ID.String() != id {
			return nil, gorm.ErrRecordNotFound
		}
		row := *stored
		return &row, nil
	}
	deps.repo.resolveFn = func(ctx context.Context, r *request.ProjectRequest) error {
		if stored == nil || stored.Status != request.StatusPending {
			return gorm.ErrRecordNotFound
		}
		stored = r
		return nil
	}

	created, err := deps.service.CreateCompletion(ctx, contractorID.String(), request.CreateCompletionRequest{
		ProjectID: projectID.String(),
	})
	assert.NoError(t, err)
	assert.Equal(t, request.StatusPending, created.Status)

	expectTx(t, deps.sqlMock, true)
	approved, err := deps.service.Approve(ctx, reviewerID.String(), created.ID, request.ApproveRequest{})
	assert.NoError(t, err)
	assert.Equal(t, request.StatusApproved, approved.Status)
	assert.Equal(t, project.StatusCompleted, projectStatus)

	// The project is closed now, so a fresh completion request bounces.
	_, err = deps.service.CreateCompletion(ctx, contractorID.String(), request.CreateCompletionRequest{
		ProjectID: projectID.String(),
	})
	assert.ErrorIs(t, err, requesterrors.ErrProjectNotInProgress)

	// And the approved request cannot be resolved twice.
	_, err = deps.service.Reject(ctx, reviewerID.String(), created.ID, request.RejectRequest{})
	assert.ErrorIs(t, err, requesterrors.ErrAlreadyResolved)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}
