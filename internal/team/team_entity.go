package team

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Team struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	ProjectID    uuid.UUID `gorm:"column:project_id;type:uuid;not null;index"`
	ContractorID uuid.UUID `gorm:"column:contractor_id;type:uuid;not null;index"`
	Name         string    `gorm:"column:name;type:varchar(255);not null"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index"`

	Members []TeamMember `gorm:"foreignKey:TeamID;references:ID"`
}

func (Team) TableName() string {
	return "teams"
}

// TeamMember adalah relasi membership first-class, bukan embedded document.
// Unique index menjamin satu user tidak dobel dalam satu team.
type TeamMember struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	TeamID    uuid.UUID `gorm:"column:team_id;type:uuid;not null;uniqueIndex:uq_team_members_team_user"`
	UserID    uuid.UUID `gorm:"column:user_id;type:uuid;not null;uniqueIndex:uq_team_members_team_user"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (TeamMember) TableName() string {
	return "team_members"
}
