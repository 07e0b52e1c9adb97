package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"github.com/ali44ashhad/contractor/internal/middleware"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *apiError       `json:"error"`
}

func idempotencyRouter(t *testing.T, rdb *redis.Client, handler gin.HandlerFunc) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.POST("/api/v1/updates", func(c *gin.Context) {
		c.Set("user_id_validated", "user-1")
	}, middleware.Idempotency(rdb), handler)
	return r
}

func TestIdempotency(t *testing.T) {
	t.Run("replay uses the standard envelope", func(t *testing.T) {
		rdb, redisMock := redismock.NewClientMock()

		cached, _ := json.Marshal(map[string]any{"id": "update-1"})
		redisMock.ExpectGet("idemp:/api/v1/updates:user-1:key-1").SetVal(string(cached))

		r := idempotencyRouter(t, rdb, func(c *gin.Context) {
			t.Fatal("handler must not run on a replayed submission")
		})

		req := httptest.NewRequest(http.MethodPost, "/api/v1/updates", nil)
		req.Header.Set("Idempotency-Key", "key-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var env apiEnvelope
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.True(t, env.Ok)
		assert.Nil(t, env.Error)

		var data map[string]any
		assert.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Equal(t, "update-1", data["id"])
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("concurrent duplicate gets an envelope error", func(t *testing.T) {
		rdb, redisMock := redismock.NewClientMock()

		cacheKey := "idemp:/api/v1/updates:user-1:key-1"
		redisMock.ExpectGet(cacheKey).RedisNil()
		redisMock.ExpectSetNX(cacheKey+":lock", "locked", 30*time.Second).SetVal(false)

		r := idempotencyRouter(t, rdb, func(c *gin.Context) {
			t.Fatal("handler must not run while the first submission holds the lock")
		})

		req := httptest.NewRequest(http.MethodPost, "/api/v1/updates", nil)
		req.Header.Set("Idempotency-Key", "key-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)

		var env apiEnvelope
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.False(t, env.Ok)
		assert.NotNil(t, env.Error)
		assert.Equal(t, "PROCESSING", env.Error.Code)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("missing key passes straight through", func(t *testing.T) {
		rdb, redisMock := redismock.NewClientMock()

		handlerRan := false
		r := idempotencyRouter(t, rdb, func(c *gin.Context) {
			handlerRan = true
			c.Status(http.StatusCreated)
		})

		req := httptest.NewRequest(http.MethodPost, "/api/v1/updates", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.True(t, handlerRan)
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})
}
