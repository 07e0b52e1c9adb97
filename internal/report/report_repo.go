package report

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=report_repo.go -destination=mock/report_repo_mock.go -package=mock
type Repository interface {
	TeamMemberIDs(ctx context.Context, projectID string) ([]string, error)
	DistinctPosterIDs(ctx context.Context, projectID string) ([]string, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) TeamMemberIDs(ctx context.Context, projectID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Table("team_members").
		Joins("JOIN teams ON teams.id = team_members.team_id").
		Where("teams.project_id = ?", projectID).
		Where("teams.deleted_at IS NULL").
		Distinct("team_members.user_id::text").
		Pluck("team_members.user_id::text", &ids).Error
	return ids, err
}

// DistinctPosterIDs tidak dibatasi rentang: siapa pun yang pernah posting
// update untuk project ini masuk daftar anggota grid.
func (r *repository) DistinctPosterIDs(ctx context.Context, projectID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Table("updates").
		Where("project_id = ?", projectID).
		Distinct("posted_by::text").
		Pluck("posted_by::text", &ids).Error
	return ids, err
}
