package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/ali44ashhad/contractor/internal/shared/response"
)

// Idempotency caches the first successful response of a POST guarded by an
// Idempotency-Key header and replays it for duplicate submissions. A short
// lived lock rejects concurrent duplicates while the first one is in flight.
func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		idempKey := c.GetHeader("Idempotency-Key")
		userID := c.GetString("user_id_validated")

		if idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		cacheKey := fmt.Sprintf("idemp:%s:%s:%s", c.FullPath(), userID, idempKey)
		lockKey := cacheKey + ":lock"

		val, err := rdb.Get(c.Request.Context(), cacheKey).Result()
		if err == nil {
			// Replay memakai envelope yang sama dengan respons aslinya
			var cachedRes any
			json.Unmarshal([]byte(val), &cachedRes)
			c.AbortWithStatusJSON(http.StatusOK, response.ApiEnvelope{Ok: true, Data: cachedRes})
			return
		}

		// Lock expiry pendek agar lock hilang sendiri kalau server crash.
		isNew, _ := rdb.SetNX(c.Request.Context(), lockKey, "locked", 30*time.Second).Result()

		if !isNew {
			response.Error(c, http.StatusConflict, "PROCESSING", "your request is still being processed, please wait", nil)
			c.Abort()
			return
		}

		// Handler menghapus lock dan mengisi cache setelah selesai
		c.Set("idempotency_cache_key", cacheKey)
		c.Set("idempotency_lock_key", lockKey)

		c.Next()
	}
}
