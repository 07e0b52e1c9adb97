package events

import "time"

const RequestResolvedTopic = "contractor.project.request.resolved.v1"

type RequestResolvedEvent struct {
	EventType   string    `json:"event_type"`
	RequestID   string    `json:"request_id"`
	ProjectID   string    `json:"project_id"`
	RequestType string    `json:"request_type"`
	Status      string    `json:"status"`
	ReviewedBy  string    `json:"reviewed_by"`
	OccurredAt  time.Time `json:"occurred_at"`
}
