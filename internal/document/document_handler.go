package document

import (
	"io"
	"net/http"
	"strings"

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

func (h *Handler) Upload(c *gin.Context) {
	uploadedBy := c.GetString("user_id_validated")
	if uploadedBy == "" {
		uploadedBy = c.GetString("user_id")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "file is required", err.Error())
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "cannot read uploaded file", err.Error())
		return
	}
	defer file.Close()

	desc, err := h.service.Upload(
		c.Request.Context(),
		uploadedBy,
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		fileHeader.Size,
		file,
	)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	response.Success(c, http.StatusCreated, desc, nil)
}

func (h *Handler) Download(c *gin.Context) {
	path := strings.TrimPrefix(c.Param("path"), "/")

	rc, err := h.service.Download(c.Request.Context(), path)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}
	defer rc.Close()

	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, rc)
}
