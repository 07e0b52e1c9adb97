package attendance

import (
	"github.com/gin-gonic/gin"

	"github.com/ali44ashhad/contractor/internal/middleware"
	"github.com/ali44ashhad/contractor/internal/rbac"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service) {
	attendances := r.Group("/attendance")
	attendances.Use(middleware.AuthMiddleware(), middleware.ExtractUserID())
	{
		attendances.GET("", middleware.RBACAuthorize(rbacService, "attendance", "read"), h.GetAll)
		attendances.GET("/day", middleware.RBACAuthorize(rbacService, "attendance", "read"), h.GetByKey)
	}
}
