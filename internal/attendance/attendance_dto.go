package attendance

type AttendanceResponse struct {
	ID              string  `json:"id"`
	UserID          string  `json:"user_id"`
	ProjectID       string  `json:"project_id"`
	AttendanceDate  string  `json:"attendance_date"`
	MorningUpdateID *string `json:"morning_update_id,omitempty"`
	EveningUpdateID *string `json:"evening_update_id,omitempty"`
	IsPresent       bool    `json:"is_present"`
}
