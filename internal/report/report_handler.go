package report

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

func (h *Handler) GetProjectReport(c *gin.Context) {
	actorID := c.GetString("user_id_validated")
	role := c.GetString("role")

	resp, err := h.service.GetProjectReport(
		c.Request.Context(),
		role,
		actorID,
		c.Param("id"),
		c.Query("start_date"),
		c.Query("end_date"),
	)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
