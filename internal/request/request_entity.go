package request

import (
	"time"

	"github.com/google/uuid"
)

const (
	TypeCompletion = "COMPLETION"
	TypeExtension  = "EXTENSION"
)

const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
)

// ProjectRequest adalah permintaan contractor yang diputus admin tepat satu kali.
// Partial unique index menjamin maksimal satu PENDING per (project, type).
type ProjectRequest struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	ProjectID   uuid.UUID `gorm:"column:project_id;type:uuid;not null;uniqueIndex:uq_project_requests_pending,where:status = 'PENDING'"`
	RequestedBy uuid.UUID `gorm:"column:requested_by;type:uuid;not null;index"`
	RequestType string    `gorm:"column:request_type;type:varchar(20);not null;uniqueIndex:uq_project_requests_pending,where:status = 'PENDING'"`
	Status      string    `gorm:"column:status;type:varchar(20);not null;default:'PENDING'"`

	RequestedEndDate *time.Time `gorm:"column:requested_end_date;type:date"`
	ApprovedEndDate  *time.Time `gorm:"column:approved_end_date;type:date"`

	ReviewedBy  *uuid.UUID `gorm:"column:reviewed_by;type:uuid"`
	ReviewedAt  *time.Time `gorm:"column:reviewed_at;type:timestamptz"`
	ReviewNotes string     `gorm:"column:review_notes;type:text"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (ProjectRequest) TableName() string {
	return "project_requests"
}

func IsValidType(t string) bool {
	return t == TypeCompletion || t == TypeExtension
}
