package team

import (
	"github.com/gin-gonic/gin"

	"github.com/ali44ashhad/contractor/internal/middleware"
	"github.com/ali44ashhad/contractor/internal/rbac"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service) {
	teams := r.Group("/teams")
	teams.Use(middleware.AuthMiddleware(), middleware.ExtractUserID())
	{
		teams.POST("", middleware.RBACAuthorize(rbacService, "team", "create"), h.Create)
		teams.GET("", middleware.RBACAuthorize(rbacService, "team", "read"), h.GetAllByProject)
		teams.GET("/:id", middleware.RBACAuthorize(rbacService, "team", "read"), h.GetByID)
		teams.POST("/:id/members", middleware.RBACAuthorize(rbacService, "team", "update"), h.AddMember)
		teams.DELETE("/:id/members/:userId", middleware.RBACAuthorize(rbacService, "team", "update"), h.RemoveMember)
		teams.DELETE("/:id", middleware.RBACAuthorize(rbacService, "team", "delete"), h.Delete)
	}
}
