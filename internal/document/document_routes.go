package document

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/ali44ashhad/contractor/internal/middleware"
	"github.com/ali44ashhad/contractor/internal/rbac"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service) {
	documents := r.Group("/documents")
	documents.Use(middleware.AuthMiddleware(), middleware.ExtractUserID())
	{
		// Upload dibatasi per user, bukan per IP, karena satu site sering
		// berbagi satu koneksi
		documents.POST("",
			middleware.RBACAuthorize(rbacService, "document", "create"),
			middleware.RateLimitByUser(rate.Limit(2), 10),
			h.Upload,
		)
		documents.GET("/files/*path",
			middleware.RBACAuthorize(rbacService, "document", "read"),
			h.Download,
		)
	}
}
