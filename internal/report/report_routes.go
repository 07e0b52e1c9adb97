package report

import (
	"github.com/gin-gonic/gin"

	"github.com/ali44ashhad/contractor/internal/domain"
	"github.com/ali44ashhad/contractor/internal/middleware"
	"github.com/ali44ashhad/contractor/internal/rbac"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service) {
	reports := r.Group("/reports")
	reports.Use(
		middleware.AuthMiddleware(),
		middleware.ExtractUserID(),
		middleware.RoleMiddleware(domain.RoleAdmin, domain.RoleAccounts, domain.RoleDeveloper),
	)
	{
		reports.GET("/project/:id", middleware.RBACAuthorize(rbacService, "report", "read"), h.GetProjectReport)
	}
}
