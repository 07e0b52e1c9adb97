package attendance

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"

	"github.com/ali44ashhad/contractor/internal/access"
)

// UpsertParams adalah satu aplikasi update (pagi/sore) ke record attendance hariannya.
type UpsertParams struct {
	UserID     string
	ProjectID  string
	Date       time.Time // sudah dinormalkan ke DayKey
	UpdateID   string
	UpdateType string // MORNING / EVENING
}

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	UpsertFromUpdate(ctx context.Context, p UpsertParams) error
	ClearUpdateRef(ctx context.Context, updateID string) error
	FindAll(ctx context.Context, filter access.Filter) ([]Attendance, error)
	FindAllByUser(ctx context.Context, filter access.Filter, userID string) ([]Attendance, error)
	FindByKey(ctx context.Context, userID, projectID string, date time.Time) (*Attendance, error)
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

// UpsertFromUpdate menulis setengah hari via atomic upsert.
// COALESCE menjamin setengah yang sudah terisi tidak pernah ditimpa, jadi
// memproses ulang update yang sama idempoten. is_present dihitung ulang
// dari kedua kolom pada statement yang sama.
func (r *repository) UpsertFromUpdate(ctx context.Context, p UpsertParams) error {
	var morning, evening any
	if p.UpdateType == "MORNING" {
		morning = p.UpdateID
	} else {
		evening = p.UpdateID
	}

	query := `
		INSERT INTO attendances (
			id, user_id, project_id, attendance_date,
			morning_update_id, evening_update_id, is_present, created_at, updated_at
		)
		VALUES (
			gen_random_uuid(), $1, $2, $3,
			$4, $5, ($4 IS NOT NULL AND $5 IS NOT NULL), now(), now()
		)
		ON CONFLICT (user_id, project_id, attendance_date) DO UPDATE
		SET morning_update_id = COALESCE(attendances.morning_update_id, EXCLUDED.morning_update_id),
			evening_update_id = COALESCE(attendances.evening_update_id, EXCLUDED.evening_update_id),
			is_present = (
				COALESCE(attendances.morning_update_id, EXCLUDED.morning_update_id) IS NOT NULL
				AND COALESCE(attendances.evening_update_id, EXCLUDED.evening_update_id) IS NOT NULL
			),
			updated_at = now()
	`

	_, err := r.execer().ExecContext(ctx, query,
		p.UserID, p.ProjectID, p.Date.Format("2006-01-02"), morning, evening,
	)
	return err
}

// ClearUpdateRef melepas referensi update yang dihapus dan menghitung ulang is_present.
func (r *repository) ClearUpdateRef(ctx context.Context, updateID string) error {
	query := `
		UPDATE attendances
		SET morning_update_id = CASE WHEN morning_update_id = $1 THEN NULL ELSE morning_update_id END,
			evening_update_id = CASE WHEN evening_update_id = $1 THEN NULL ELSE evening_update_id END,
			is_present = (
				(CASE WHEN morning_update_id = $1 THEN NULL ELSE morning_update_id END) IS NOT NULL
				AND (CASE WHEN evening_update_id = $1 THEN NULL ELSE evening_update_id END) IS NOT NULL
			),
			updated_at = now()
		WHERE morning_update_id = $1 OR evening_update_id = $1
	`

	_, err := r.execer().ExecContext(ctx, query, updateID)
	return err
}

func (r *repository) FindAll(ctx context.Context, filter access.Filter) ([]Attendance, error) {
	var rows []Attendance
	err := r.db.WithContext(ctx).
		Scopes(access.Scope(filter, "project_id")).
		Order("attendance_date DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindAllByUser(ctx context.Context, filter access.Filter, userID string) ([]Attendance, error) {
	var rows []Attendance
	err := r.db.WithContext(ctx).
		Scopes(access.Scope(filter, "project_id")).
		Where("user_id = ?", userID).
		Order("attendance_date DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindByKey(ctx context.Context, userID, projectID string, date time.Time) (*Attendance, error) {
	var a Attendance
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("project_id = ?", projectID).
		Where("attendance_date = ?", date.Format("2006-01-02")).
		First(&a).Error
	return &a, err
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
