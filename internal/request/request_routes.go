package request

import (
	"github.com/gin-gonic/gin"

	"github.com/ali44ashhad/contractor/internal/middleware"
	"github.com/ali44ashhad/contractor/internal/rbac"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service) {
	requests := r.Group("/requests")
	requests.Use(middleware.AuthMiddleware(), middleware.ExtractUserID())
	{
		requests.POST("/completion", middleware.RBACAuthorize(rbacService, "request", "create"), h.CreateCompletion)
		requests.POST("/extension", middleware.RBACAuthorize(rbacService, "request", "create"), h.CreateExtension)
		requests.GET("", middleware.RBACAuthorize(rbacService, "request", "read"), h.GetAll)
		requests.GET("/:id", middleware.RBACAuthorize(rbacService, "request", "read"), h.GetByID)
		requests.PATCH("/:id/approve", middleware.RBACAuthorize(rbacService, "request", "review"), h.Approve)
		requests.PATCH("/:id/reject", middleware.RBACAuthorize(rbacService, "request", "review"), h.Reject)
		requests.DELETE("/:id", middleware.RBACAuthorize(rbacService, "request", "cancel"), h.Cancel)
	}
}
