package update

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/ali44ashhad/contractor/internal/middleware"
	"github.com/ali44ashhad/contractor/internal/rbac"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service, rdb *redis.Client) {
	updates := r.Group("/updates")
	updates.Use(middleware.AuthMiddleware(), middleware.ExtractUserID())
	{
		updates.POST("",
			middleware.RBACAuthorize(rbacService, "update", "create"),
			middleware.Idempotency(rdb),
			h.Create,
		)
		updates.GET("", middleware.RBACAuthorize(rbacService, "update", "read"), h.GetAll)
		updates.GET("/:id", middleware.RBACAuthorize(rbacService, "update", "read"), h.GetByID)
		updates.DELETE("/:id", middleware.RBACAuthorize(rbacService, "update", "delete"), h.Delete)
	}
}
