package project

type CreateProjectRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	StartDate   string  `json:"start_date" binding:"required"`
	EndDate     string  `json:"end_date" binding:"required"`
	Budget      float64 `json:"budget" binding:"gte=0"`
}

type UpdateProjectRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	StartDate   string  `json:"start_date" binding:"required"`
	EndDate     string  `json:"end_date" binding:"required"`
	Budget      float64 `json:"budget" binding:"gte=0"`
}

type AssignContractorRequest struct {
	ContractorID string `json:"contractor_id" binding:"required,uuid"`
}

type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=PLANNING IN_PROGRESS ON_HOLD COMPLETED CANCELLED"`
}

type ProjectResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	AdminID      string  `json:"admin_id"`
	ContractorID *string `json:"contractor_id,omitempty"`
	Status       string  `json:"status"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	Budget       float64 `json:"budget"`
}
