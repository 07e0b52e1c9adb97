package request

import (
	"context"
	"database/sql"

	"gorm.io/gorm"

	"github.com/ali44ashhad/contractor/internal/access"
)

//go:generate mockgen -source=request_repo.go -destination=mock/request_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, r *ProjectRequest) error
	FindAll(ctx context.Context, filter access.Filter, projectID string) ([]ProjectRequest, error)
	FindByID(ctx context.Context, id string) (*ProjectRequest, error)
	Resolve(ctx context.Context, r *ProjectRequest) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) Create(ctx context.Context, req *ProjectRequest) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *repository) FindAll(ctx context.Context, filter access.Filter, projectID string) ([]ProjectRequest, error) {
	db := r.db.WithContext(ctx).Scopes(access.Scope(filter, "project_id"))
	if projectID != "" {
		db = db.Where("project_id = ?", projectID)
	}

	var rows []ProjectRequest
	err := db.Order("created_at DESC").Find(&rows).Error
	return rows, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*ProjectRequest, error) {
	var req ProjectRequest
	err := r.db.WithContext(ctx).First(&req, "id = ?", id).Error
	return &req, err
}

// Resolve menulis keputusan lewat execer supaya satu transaksi dengan mutasi
// project dan event outbox. Guard status = PENDING menjaga transisi terminal
// walau ada dua reviewer balapan.
func (r *repository) Resolve(ctx context.Context, req *ProjectRequest) error {
	query := `
		UPDATE project_requests
		SET status = $2,
			approved_end_date = $3,
			reviewed_by = $4,
			reviewed_at = $5,
			review_notes = $6,
			updated_at = now()
		WHERE id = $1 AND status = 'PENDING'
	`

	var approvedEndDate any
	if req.ApprovedEndDate != nil {
		approvedEndDate = req.ApprovedEndDate.Format("2006-01-02")
	}

	res, err := r.execer().ExecContext(ctx, query,
		req.ID, req.Status, approvedEndDate, req.ReviewedBy, req.ReviewedAt, req.ReviewNotes,
	)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	_, err := r.execer().ExecContext(ctx, `DELETE FROM project_requests WHERE id = $1`, id)
	return err
}

func (r *repository) execer() interface {
	ExecContext(context.Context, string, ...any) (sql.Result, error)
} {
	if r.tx != nil {
		return r.tx
	}
	sqlDB, err := r.db.DB()
	if err != nil {
		return failingExecer{err: err}
	}
	return sqlDB
}

type failingExecer struct{ err error }

func (f failingExecer) ExecContext(context.Context, string, ...any) (sql.Result, error) {
	return nil, f.err
}
