package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ali44ashhad/contractor/internal/shared/response"
)

func ExtractUserID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userID, exists := ctx.Get("user_id")
		if !exists {
			response.Error(ctx, http.StatusUnauthorized, "UNAUTHORIZED", "User is not authenticated", nil)
			ctx.Abort()
			return
		}

		userIDStr, ok := userID.(string)
		if !ok || userIDStr == "" {
			response.Error(ctx, http.StatusUnauthorized, "INVALID_USER_ID", "Invalid user_id format", nil)
			ctx.Abort()
			return
		}

		// Set ulang dengan tipe yang sudah pasti string
		ctx.Set("user_id_validated", userIDStr)
		ctx.Next()
	}
}
