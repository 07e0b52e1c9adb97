package attendance

import (
	"time"

	"github.com/google/uuid"
)

type Attendance struct {
	ID              uuid.UUID  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID          uuid.UUID  `gorm:"column:user_id;type:uuid;not null;uniqueIndex:uq_attendances_user_project_date"`
	ProjectID       uuid.UUID  `gorm:"column:project_id;type:uuid;not null;uniqueIndex:uq_attendances_user_project_date"`
	AttendanceDate  time.Time  `gorm:"column:attendance_date;type:date;not null;uniqueIndex:uq_attendances_user_project_date"`
	MorningUpdateID *uuid.UUID `gorm:"column:morning_update_id;type:uuid"`
	EveningUpdateID *uuid.UUID `gorm:"column:evening_update_id;type:uuid"`
	IsPresent       bool       `gorm:"column:is_present;not null;default:false"`
	CreatedAt       time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

func (Attendance) TableName() string {
	return "attendances"
}
