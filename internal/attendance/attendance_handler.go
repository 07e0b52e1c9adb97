package attendance

import (
	"net/http"
	"strconv"
	"time"

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

func (h *Handler) GetAll(c *gin.Context) {
	actorID := c.GetString("user_id_validated")
	role := c.GetString("role")

	var (
		resp []AttendanceResponse
		err  error
	)
	if userID := c.Query("user_id"); userID != "" {
		resp, err = h.service.GetForUser(c.Request.Context(), role, actorID, userID)
	} else {
		resp, err = h.service.GetAll(c.Request.Context(), role, actorID)
	}
	if err != nil {
		writeServiceError(c, err)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	if pageSize < 1 {
		pageSize = 10
	}

	total := int64(len(resp))
	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(resp) {
		start = len(resp)
	}
	if end > len(resp) {
		end = len(resp)
	}

	meta := response.NewPaginationMeta(total, page, pageSize)
	response.Success(c, http.StatusOK, resp[start:end], &meta)
}

func (h *Handler) GetByKey(c *gin.Context) {
	actorID := c.GetString("user_id_validated")
	role := c.GetString("role")

	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid date, expected YYYY-MM-DD", nil)
		return
	}

	resp, err := h.service.GetByKey(
		c.Request.Context(),
		role,
		actorID,
		c.Query("user_id"),
		c.Query("project_id"),
		date,
	)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
