package access

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=access_repo.go -destination=mock/access_repo_mock.go -package=mock
type Repository interface {
	ContractorProjectIDs(ctx context.Context, userID string) ([]string, error)
	MemberProjectIDs(ctx context.Context, userID string) ([]string, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ContractorProjectIDs(ctx context.Context, userID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Table("projects").
		Where("contractor_id = ?", userID).
		Where("deleted_at IS NULL").
		Pluck("id::text", &ids).Error
	return ids, err
}

func (r *repository) MemberProjectIDs(ctx context.Context, userID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Table("teams").
		Joins("JOIN team_members ON team_members.team_id = teams.id").
		Where("team_members.user_id = ?", userID).
		Where("teams.deleted_at IS NULL").
		Distinct().
		Pluck("teams.project_id::text", &ids).Error
	return ids, err
}
