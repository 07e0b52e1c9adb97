package request

type CreateCompletionRequest struct {
	ProjectID string `json:"project_id" binding:"required,uuid"`
}

type CreateExtensionRequest struct {
	ProjectID        string `json:"project_id" binding:"required,uuid"`
	RequestedEndDate string `json:"requested_end_date" binding:"required"`
}

type ApproveRequest struct {
	ApprovedEndDate string `json:"approved_end_date"`
}

type RejectRequest struct {
	Notes string `json:"notes"`
}

type RequestResponse struct {
	ID               string  `json:"id"`
	ProjectID        string  `json:"project_id"`
	RequestedBy      string  `json:"requested_by"`
	RequestType      string  `json:"request_type"`
	Status           string  `json:"status"`
	RequestedEndDate *string `json:"requested_end_date,omitempty"`
	ApprovedEndDate  *string `json:"approved_end_date,omitempty"`
	ReviewedBy       *string `json:"reviewed_by,omitempty"`
	ReviewedAt       *string `json:"reviewed_at,omitempty"`
	ReviewNotes      string  `json:"review_notes,omitempty"`
	CreatedAt        string  `json:"created_at"`
}

func mapToResponse(r ProjectRequest) RequestResponse {
	resp := RequestResponse{
		ID:          r.ID.String(),
		ProjectID:   r.ProjectID.String(),
		RequestedBy: r.RequestedBy.String(),
		RequestType: r.RequestType,
		Status:      r.Status,
		ReviewNotes: r.ReviewNotes,
		CreatedAt:   r.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
	if r.RequestedEndDate != nil {
		v := r.RequestedEndDate.Format("2006-01-02")
		resp.RequestedEndDate = &v
	}
	if r.ApprovedEndDate != nil {
		v := r.ApprovedEndDate.Format("2006-01-02")
		resp.ApprovedEndDate = &v
	}
	if r.ReviewedBy != nil {
		v := r.ReviewedBy.String()
		resp.ReviewedBy = &v
	}
	if r.ReviewedAt != nil {
		v := r.ReviewedAt.UTC().Format("2006-01-02T15:04:05Z07:00")
		resp.ReviewedAt = &v
	}
	return resp
}
