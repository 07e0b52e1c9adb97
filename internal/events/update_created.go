package events

import "time"

const UpdateCreatedTopic = "contractor.update.created.v1"

type UpdateCreatedEvent struct {
	EventType  string    `json:"event_type"`
	UpdateID   string    `json:"update_id"`
	ProjectID  string    `json:"project_id"`
	PostedBy   string    `json:"posted_by"`
	UpdateType string    `json:"update_type"`
	UpdateDate string    `json:"update_date"`
	OccurredAt time.Time `json:"occurred_at"`
}
