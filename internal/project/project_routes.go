package project

import (
	"github.com/gin-gonic/gin"

	"github.com/ali44ashhad/contractor/internal/middleware"
	"github.com/ali44ashhad/contractor/internal/rbac"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service) {
	projects := r.Group("/projects")
	projects.Use(middleware.AuthMiddleware(), middleware.ExtractUserID())
	{
		projects.POST("", middleware.RBACAuthorize(rbacService, "project", "create"), h.Create)
		projects.GET("", middleware.RBACAuthorize(rbacService, "project", "read"), h.GetAll)
		projects.GET("/:id", middleware.RBACAuthorize(rbacService, "project", "read"), h.GetByID)
		projects.PUT("/:id", middleware.RBACAuthorize(rbacService, "project", "update"), h.Update)
		projects.POST("/:id/assign", middleware.RBACAuthorize(rbacService, "project", "assign"), h.AssignContractor)
		projects.PATCH("/:id/status", middleware.RBACAuthorize(rbacService, "project", "update"), h.ChangeStatus)
		projects.DELETE("/:id", middleware.RBACAuthorize(rbacService, "project", "delete"), h.Delete)
	}
}
