package update

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"

	"github.com/ali44ashhad/contractor/internal/access"
)

// ListFilter mempersempit listing update selain scope visibility.
type ListFilter struct {
	ProjectID  string
	UpdateType string
	Date       *time.Time
}

//go:generate mockgen -source=update_repo.go -destination=mock/update_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, u *Update) error
	FindAll(ctx context.Context, filter access.Filter, list ListFilter) ([]Update, error)
	FindByID(ctx context.Context, filter access.Filter, id string) (*Update, error)
	FindByProjectAndRange(ctx context.Context, projectID string, from, to time.Time) ([]Update, error)
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

// Create menulis update beserta barisan dokumennya lewat execer supaya ikut
// transaksi yang sama dengan derivasi attendance dan outbox.
func (r *repository) Create(ctx context.Context, u *Update) error {
	exec := r.execer()

	updateQuery := `
		INSERT INTO updates (
			id, project_id, contractor_id, posted_by, update_type, update_date,
			posted_at, status_text, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now(), now())
	`
	if _, err := exec.ExecContext(ctx, updateQuery,
		u.ID, u.ProjectID, u.ContractorID, u.PostedBy,
		u.UpdateType, u.UpdateDate.Format("2006-01-02"), u.PostedAt, u.StatusText,
	); err != nil {
		return err
	}

	docQuery := `
		INSERT INTO update_documents (
			id, update_id, position, file_name, content_type, size_bytes,
			storage_path, url, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now())
	`
	for _, d := range u.Documents {
		if _, err := exec.ExecContext(ctx, docQuery,
			d.ID, u.ID, d.Position, d.FileName, d.ContentType,
			d.SizeBytes, d.StoragePath, d.URL,
		); err != nil {
			return err
		}
	}
	return nil
}

func (r *repository) FindAll(ctx context.Context, filter access.Filter, list ListFilter) ([]Update, error) {
	db := r.db.WithContext(ctx).
		Scopes(access.Scope(filter, "project_id")).
		Preload("Documents")

	if list.ProjectID != "" {
		db = db.Where("project_id = ?", list.ProjectID)
	}
	if list.UpdateType != "" {
		db = db.Where("update_type = ?", list.UpdateType)
	}
	if list.Date != nil {
		db = db.Where("update_date = ?", list.Date.Format("2006-01-02"))
	}

	var rows []Update
	err := db.Order("update_date DESC, posted_at DESC").Find(&rows).Error
	return rows, err
}

func (r *repository) FindByID(ctx context.Context, filter access.Filter, id string) (*Update, error) {
	var u Update
	err := r.db.WithContext(ctx).
		Scopes(access.Scope(filter, "project_id")).
		Preload("Documents").
		First(&u, "id = ?", id).Error
	return &u, err
}

func (r *repository) FindByProjectAndRange(ctx context.Context, projectID string, from, to time.Time) ([]Update, error) {
	var rows []Update
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Where("update_date >= ? AND update_date <= ?", from.Format("2006-01-02"), to.Format("2006-01-02")).
		Order("update_date ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) Delete(ctx context.Context, id string) error {
	exec := r.execer()
	if _, err := exec.ExecContext(ctx, `DELETE FROM update_documents WHERE update_id = $1`, id); err != nil {
		return err
	}
	_, err := exec.ExecContext(ctx, `DELETE FROM updates WHERE id = $1`, id)
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
