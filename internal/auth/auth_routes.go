package auth

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/ali44ashhad/contractor/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", middleware.RateLimitByIP(rate.Limit(1), 5), h.Login)
		authGroup.POST("/refresh", middleware.RateLimitByIP(rate.Limit(1), 5), h.Refresh)
		authGroup.POST("/logout", h.Logout)
		authGroup.GET("/me", middleware.AuthMiddleware(), middleware.ExtractUserID(), h.Me)
	}
}
