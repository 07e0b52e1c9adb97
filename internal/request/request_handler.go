package request

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ali44ashhad/contractor/internal/shared/apperror"
	"github.com/ali44ashhad/contractor/internal/shared/response"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) CreateCompletion(c *gin.Context) {
	actorID := c.GetString("user_id_validated")

	var req CreateCompletionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, mapped.Status, "VALIDATION_ERROR", mapped.Message, nil)
		return
	}

	resp, err := h.service.CreateCompletion(c.Request.Context(), actorID, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) CreateExtension(c *gin.Context) {
	actorID := c.GetString("user_id_validated")

	var req CreateExtensionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, mapped.Status, "VALIDATION_ERROR", mapped.Message, nil)
		return
	}

	resp, err := h.service.CreateExtension(c.Request.Context(), actorID, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) Approve(c *gin.Context) {
	reviewerID := c.GetString("user_id_validated")

	var req ApproveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, mapped.Status, "VALIDATION_ERROR", mapped.Message, nil)
		return
	}

	resp, err := h.service.Approve(c.Request.Context(), reviewerID, c.Param("id"), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Reject(c *gin.Context) {
	reviewerID := c.GetString("user_id_validated")

	var req RejectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, mapped.Status, "VALIDATION_ERROR", mapped.Message, nil)
		return
	}

	resp, err := h.service.Reject(c.Request.Context(), reviewerID, c.Param("id"), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Cancel(c *gin.Context) {
	actorID := c.GetString("user_id_validated")

	if err := h.service.Cancel(c.Request.Context(), actorID, c.Param("id")); err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"cancelled": true}, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	actorID := c.GetString("user_id_validated")
	role := c.GetString("role")

	resp, err := h.service.GetAll(c.Request.Context(), role, actorID, c.Query("project_id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetByID(c *gin.Context) {
	actorID := c.GetString("user_id_validated")
	role := c.GetString("role")

	resp, err := h.service.GetByID(c.Request.Context(), role, actorID, c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
