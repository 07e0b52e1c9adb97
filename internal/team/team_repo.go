package team

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=team_repo.go -destination=mock/team_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, t *Team) error
	FindByID(ctx context.Context, id string) (*Team, error)
	FindAllByProject(ctx context.Context, projectID string) ([]Team, error)
	Delete(ctx context.Context, id string) error
	AddMember(ctx context.Context, m *TeamMember) error
	RemoveMember(ctx context.Context, teamID, userID string) (int64, error)
	IsProjectMember(ctx context.Context, projectID, userID string) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, t *Team) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Team, error) {
	var t Team
	err := r.db.WithContext(ctx).
		Preload("Members").
		First(&t, "id = ?", id).Error
	return &t, err
}

func (r *repository) FindAllByProject(ctx context.Context, projectID string) ([]Team, error) {
	var teams []Team
	err := r.db.WithContext(ctx).
		Preload("Members").
		Where("project_id = ?", projectID).
		Order("created_at ASC").
		Find(&teams).Error
	return teams, err
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Team{}, "id = ?", id).Error
}

func (r *repository) AddMember(ctx context.Context, m *TeamMember) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *repository) RemoveMember(ctx context.Context, teamID, userID string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("team_id = ?", teamID).
		Where("user_id = ?", userID).
		Delete(&TeamMember{})
	return res.RowsAffected, res.Error
}

func (r *repository) IsProjectMember(ctx context.Context, projectID, userID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("team_members").
		Joins("JOIN teams ON teams.id = team_members.team_id").
		Where("teams.project_id = ?", projectID).
		Where("teams.deleted_at IS NULL").
		Where("team_members.user_id = ?", userID).
		Count(&count).Error
	return count > 0, err
}
