package user

import (
	"github.com/gin-gonic/gin"

	"github.com/ali44ashhad/contractor/internal/middleware"
	"github.com/ali44ashhad/contractor/internal/rbac"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service) {
	users := r.Group("/users")
	users.Use(middleware.AuthMiddleware(), middleware.ExtractUserID())
	{
		users.POST("", middleware.RBACAuthorize(rbacService, "user", "create"), h.Create)
		users.GET("", middleware.RBACAuthorize(rbacService, "user", "read"), h.GetAll)
		users.GET("/:id", middleware.RBACAuthorize(rbacService, "user", "read"), h.GetByID)
		users.PUT("/:id", middleware.RBACAuthorize(rbacService, "user", "update"), h.Update)
		users.PATCH("/:id/deactivate", middleware.RBACAuthorize(rbacService, "user", "update"), h.Deactivate)
		users.DELETE("/:id", middleware.RBACAuthorize(rbacService, "user", "delete"), h.Delete)
	}
}
