package team

type CreateTeamRequest struct {
	ProjectID string `json:"project_id" binding:"required,uuid"`
	Name      string `json:"name" binding:"required"`
}

type AddMemberRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
}

type TeamMemberResponse struct {
	UserID string `json:"user_id"`
	Name   string `json:"name,omitempty"`
	Role   string `json:"role,omitempty"`
}

type TeamResponse struct {
	ID           string               `json:"id"`
	ProjectID    string               `json:"project_id"`
	ContractorID string               `json:"contractor_id"`
	Name         string               `json:"name"`
	Members      []TeamMemberResponse `json:"members"`
}
