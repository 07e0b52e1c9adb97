package project

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Project struct {
	ID           uuid.UUID  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Name         string     `gorm:"column:name;type:varchar(255);not null"`
	Description  string     `gorm:"column:description;type:text"`
	AdminID      uuid.UUID  `gorm:"column:admin_id;type:uuid;not null;index"`
	ContractorID *uuid.UUID `gorm:"column:contractor_id;type:uuid;index"`
	Status       string     `gorm:"column:status;type:varchar(20);not null;default:PLANNING;index"`
	StartDate    time.Time  `gorm:"column:start_date;type:date;not null"`
	EndDate      time.Time  `gorm:"column:end_date;type:date;not null"`
	Budget       float64    `gorm:"column:budget;type:numeric(14,2);not null;default:0"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (Project) TableName() string {
	return "projects"
}
