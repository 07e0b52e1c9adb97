package project

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"

	"github.com/ali44ashhad/contractor/internal/access"
)

//go:generate mockgen -source=project_repo.go -destination=mock/project_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, p *Project) error
	FindAll(ctx context.Context, filter access.Filter) ([]Project, error)
	FindByID(ctx context.Context, filter access.Filter, id string) (*Project, error)
	Update(ctx context.Context, p *Project) error
	Delete(ctx context.Context, id string) error
	SetStatus(ctx context.Context, id, status string) error
	SetEndDate(ctx context.Context, id string, endDate time.Time) error
	CountPendingRequests(ctx context.Context, projectID string) (int64, error)
	ContractorHasActiveProject(ctx context.Context, contractorID string) (bool, error)
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

func (r *repository) Create(ctx context.Context, p *Project) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) FindAll(ctx context.Context, filter access.Filter) ([]Project, error) {
	var projects []Project
	err := r.db.WithContext(ctx).
		Scopes(access.Scope(filter, "id")).
		Order("created_at DESC").
		Find(&projects).Error
	return projects, err
}

func (r *repository) FindByID(ctx context.Context, filter access.Filter, id string) (*Project, error) {
	var p Project
	err := r.db.WithContext(ctx).
		Scopes(access.Scope(filter, "id")).
		First(&p, "id = ?", id).Error
	return &p, err
}

func (r *repository) Update(ctx context.Context, p *Project) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Project{}, "id = ?", id).Error
}

// SetStatus dan SetEndDate lewat execer supaya bisa ikut transaksi resolve
// request ("write both or neither").
func (r *repository) SetStatus(ctx context.Context, id, status string) error {
	query := `UPDATE projects SET status = $2, updated_at = now() WHERE id = $1`
	_, err := r.execer().ExecContext(ctx, query, id, status)
	return err
}

func (r *repository) SetEndDate(ctx context.Context, id string, endDate time.Time) error {
	query := `UPDATE projects SET end_date = $2, updated_at = now() WHERE id = $1`
	_, err := r.execer().ExecContext(ctx, query, id, endDate.Format("2006-01-02"))
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

func (r *repository) CountPendingRequests(ctx context.Context, projectID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("project_requests").
		Where("project_id = ?", projectID).
		Where("status = ?", "PENDING").
		Count(&count).Error
	return count, err
}

func (r *repository) ContractorHasActiveProject(ctx context.Context, contractorID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Project{}).
		Where("contractor_id = ?", contractorID).
		Where("status NOT IN ?", []string{StatusCompleted, StatusCancelled}).
		Count(&count).Error
	return count > 0, err
}
