package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-personnel/internal/middleware"
	"go-personnel/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.ContextLogger(zap.NewNop()))
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, contextutil.GetRequestID(c.Request.Context()))
	})

	t.Run("propagates caller id", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(middleware.RequestIDHeader, "abc-123")

		r.ServeHTTP(w, req)

		assert.Equal(t, "abc-123", w.Body.String())
		assert.Equal(t, "abc-123", w.Header().Get(middleware.RequestIDHeader))
	})

	t.Run("generates one", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.NotEmpty(t, w.Body.String())
		assert.Equal(t, w.Body.String(), w.Header().Get(middleware.RequestIDHeader))
	})
}

func TestRateLimitByIP(t *testing.T) {
	r := gin.New()
	r.Use(middleware.RateLimitByIP(0.001, 1))
	r.POST("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	first := httptest.NewRecorder()
	r.ServeHTTP(first, httptest.NewRequest(http.MethodPost, "/", nil))
	second := httptest.NewRecorder()
	r.ServeHTTP(second, httptest.NewRequest(http.MethodPost, "/", nil))

	assert.Equal(t, http.StatusNoContent, first.Code)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}

func TestIdempotency(t *testing.T) {
	const key = "idemp:/personal:k-1"

	newRouter := func(rdbMock func() (redismock.ClientMock, gin.HandlerFunc), calls *int) (*gin.Engine, redismock.ClientMock) {
		mock, mw := rdbMock()
		r := gin.New()
		r.POST("/personal", mw, func(c *gin.Context) {
			*calls++
			c.JSON(http.StatusCreated, gin.H{"success": true, "data": gin.H{"id": 7}})
		})
		return r, mock
	}
	setup := func() (redismock.ClientMock, gin.HandlerFunc) {
		db, mock := redismock.NewClientMock()
		return mock, middleware.Idempotency(db)
	}
	post := func(r *gin.Engine) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/personal", nil)
		req.Header.Set(middleware.IdempotencyHeader, "k-1")
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("first request runs and is stored", func(t *testing.T) {
		calls := 0
		r, mock := newRouter(setup, &calls)
		stored := `{"status":201,"body":{"data":{"id":7},"success":true}}`

		mock.ExpectGet(key).RedisNil()
		mock.ExpectSetNX(key+":lock", "locked", 30*time.Second).SetVal(true)
		mock.ExpectSet(key, stored, 24*time.Hour).SetVal("OK")
		mock.ExpectDel(key + ":lock").SetVal(1)

		w := post(r)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, 1, calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("repeat is replayed without running the handler", func(t *testing.T) {
		calls := 0
		r, mock := newRouter(setup, &calls)
		mock.ExpectGet(key).SetVal(`{"status":201,"body":{"success":true,"data":{"id":7}}}`)

		w := post(r)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "true", w.Header().Get(middleware.IdempotencyReplayed))
		assert.JSONEq(t, `{"success":true,"data":{"id":7}}`, w.Body.String())
		assert.Equal(t, 0, calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("in-flight duplicate conflicts", func(t *testing.T) {
		calls := 0
		r, mock := newRouter(setup, &calls)
		mock.ExpectGet(key).RedisNil()
		mock.ExpectSetNX(key+":lock", "locked", 30*time.Second).SetVal(false)

		w := post(r)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, 0, calls)
	})

	t.Run("redis outage falls through", func(t *testing.T) {
		calls := 0
		r, mock := newRouter(setup, &calls)
		mock.ExpectGet(key).SetErr(errors.New("dial tcp: refused"))

		w := post(r)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, 1, calls)
	})
}
