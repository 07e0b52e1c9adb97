package update

import (
	"time"

	"github.com/google/uuid"
)

const (
	TypeMorning = "MORNING"
	TypeEvening = "EVENING"
)

type Update struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	ProjectID    uuid.UUID `gorm:"column:project_id;type:uuid;not null;uniqueIndex:uq_updates_daily"`
	ContractorID uuid.UUID `gorm:"column:contractor_id;type:uuid;not null;index"`
	PostedBy     uuid.UUID `gorm:"column:posted_by;type:uuid;not null;uniqueIndex:uq_updates_daily"`
	UpdateType   string    `gorm:"column:update_type;type:varchar(10);not null;uniqueIndex:uq_updates_daily"`
	UpdateDate   time.Time `gorm:"column:update_date;type:date;not null;uniqueIndex:uq_updates_daily"`
	PostedAt     time.Time `gorm:"column:posted_at;type:timestamptz;not null"`
	StatusText   string    `gorm:"column:status_text;type:text"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`

	Documents []UpdateDocument `gorm:"foreignKey:UpdateID;references:ID"`
}

func (Update) TableName() string {
	return "updates"
}

// UpdateDocument menyimpan descriptor attachment, byte-nya hidup di storage collaborator.
type UpdateDocument struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	UpdateID    uuid.UUID `gorm:"column:update_id;type:uuid;not null;index"`
	Position    int       `gorm:"column:position;not null"`
	FileName    string    `gorm:"column:file_name;type:varchar(255);not null"`
	ContentType string    `gorm:"column:content_type;type:varchar(100)"`
	SizeBytes   int64     `gorm:"column:size_bytes;not null"`
	StoragePath string    `gorm:"column:storage_path;type:text;not null"`
	URL         string    `gorm:"column:url;type:text;not null"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (UpdateDocument) TableName() string {
	return "update_documents"
}
