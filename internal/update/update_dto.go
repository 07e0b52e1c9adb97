package update

// DocumentInput adalah descriptor hasil POST /documents yang dilampirkan ke update.
type DocumentInput struct {
	ID          string `json:"id" binding:"required,uuid"`
	FileName    string `json:"file_name" binding:"required"`
	ContentType string `json:"content_type"`
	SizeBytes   int64  `json:"size_bytes" binding:"required,gt=0"`
	StoragePath string `json:"storage_path" binding:"required"`
	URL         string `json:"url" binding:"required"`
}

type CreateUpdateRequest struct {
	ProjectID  string          `json:"project_id" binding:"required,uuid"`
	UpdateType string          `json:"update_type" binding:"required"`
	UpdateDate string          `json:"update_date" binding:"required"`
	StatusText string          `json:"status_text"`
	Documents  []DocumentInput `json:"documents" binding:"required,min=1,dive"`
}

type DocumentResponse struct {
	ID          string `json:"id"`
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
	SizeBytes   int64  `json:"size_bytes"`
	URL         string `json:"url"`
}

type UpdateResponse struct {
	ID           string             `json:"id"`
	ProjectID    string             `json:"project_id"`
	ContractorID string             `json:"contractor_id"`
	PostedBy     string             `json:"posted_by"`
	UpdateType   string             `json:"update_type"`
	UpdateDate   string             `json:"update_date"`
	PostedAt     string             `json:"posted_at"`
	StatusText   string             `json:"status_text,omitempty"`
	Documents    []DocumentResponse `json:"documents"`
}

func mapToResponse(u Update) UpdateResponse {
	docs := make([]DocumentResponse, len(u.Documents))
	for i, d := range u.Documents {
		docs[i] = DocumentResponse{
			ID:          d.ID.String(),
			FileName:    d.FileName,
			ContentType: d.ContentType,
			SizeBytes:   d.SizeBytes,
			URL:         d.URL,
		}
	}
	return UpdateResponse{
		ID:           u.ID.String(),
		ProjectID:    u.ProjectID.String(),
		ContractorID: u.ContractorID.String(),
		PostedBy:     u.PostedBy.String(),
		UpdateType:   u.UpdateType,
		UpdateDate:   u.UpdateDate.Format("2006-01-02"),
		PostedAt:     u.PostedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
		StatusText:   u.StatusText,
		Documents:    docs,
	}
}
