package report

// ReportMember adalah satu baris identitas anggota pada grid.
type ReportMember struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
}

// ReportEntry adalah slot satu anggota pada satu hari. Slot null berarti
// tidak ada update setengah hari itu.
type ReportEntry struct {
	UserID          string  `json:"user_id"`
	MorningUpdateID *string `json:"morning_update_id"`
	EveningUpdateID *string `json:"evening_update_id"`
	IsPresent       bool    `json:"is_present"`
}

type ReportDay struct {
	Date    string        `json:"date"`
	Entries []ReportEntry `json:"entries"`
}

type ProjectReportResponse struct {
	ProjectID   string         `json:"project_id"`
	ProjectName string         `json:"project_name"`
	StartDate   string         `json:"start_date"`
	EndDate     string         `json:"end_date"`
	Members     []ReportMember `json:"members"`
	Days        []ReportDay    `json:"days"`
}
