package cache

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/VipulG-code/Mental-health-Analysis-of-Social-Media-Users/internal/monitoring"
)

func TestCacheGetSet(t *testing.T) {
	c := NewCache(1 * time.Minute)

	_, found := c.Get("missing")
	assert.False(t, found)

	c.Set("key", []byte("value"))
	data, found := c.Get("key")
	assert.True(t, found)
	assert.Equal(t, []byte("value"), data)
	assert.Equal(t, 1, c.Size())
}

func TestCacheExpiry(t *testing.T) {
	c := NewCache(10 * time.Millisecond)

	c.Set("key", []byte("value"))
	time.Sleep(30 * time.Millisecond)

	_, found := c.Get("key")
	assert.False(t, found)
}

func TestCacheDeleteAndClear(t *testing.T) {
	c := NewCache(1 * time.Minute)

	c.Set("a", []byte("1"))
	c.Set("b", []byte("2"))

	c.Delete("a")
	_, found := c.Get("a")
	assert.False(t, found)
	assert.Equal(t, 1, c.Size())

	c.Clear()
	assert.Equal(t, 0, c.Size())
}

func TestCacheStats(t *testing.T) {
	c := NewCache(1 * time.Minute)

	c.Set("a", []byte("1"))
	stats := c.Stats()

	assert.Equal(t, 1, stats["total_items"])
	assert.Equal(t, 1, stats["active_items"])
	assert.Equal(t, 60.0, stats["ttl_seconds"])
}

func TestMiddlewareCachesPrefixedReads(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c := NewCache(1 * time.Minute)
	metrics := monitoring.NewMetrics()

	var handlerCalls int64
	r := gin.New()
	r.Use(c.Middleware(metrics, "/users/"))
	r.GET("/users/:id/history", func(ctx *gin.Context) {
		atomic.AddInt64(&handlerCalls, 1)
		ctx.JSON(http.StatusOK, gin.H{"user_id": ctx.Param("id")})
	})
	r.GET("/health", func(ctx *gin.Context) {
		atomic.AddInt64(&handlerCalls, 1)
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	get := func(path string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		r.ServeHTTP(w, req)
		return w
	}

	// First read misses, second hits
	first := get("/users/abc/history")
	assert.Equal(t, http.StatusOK, first.Code)
	second := get("/users/abc/history")
	assert.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, first.Body.String(), second.Body.String())
	assert.Equal(t, int64(1), atomic.LoadInt64(&handlerCalls))

	// Different query string is a different key
	get("/users/abc/history?limit=5")
	assert.Equal(t, int64(2), atomic.LoadInt64(&handlerCalls))

	// Paths outside the prefix are never cached
	get("/health")
	get("/health")
	assert.Equal(t, int64(4), atomic.LoadInt64(&handlerCalls))

	stats := metrics.GetStats()
	assert.Equal(t, int64(1), stats["cache_hits"])
	assert.Equal(t, int64(2), stats["cache_misses"])
}

func TestMiddlewareInvalidatesOnClear(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c := NewCache(1 * time.Minute)

	var handlerCalls int64
	r := gin.New()
	r.Use(c.Middleware(monitoring.NewMetrics(), "/users/"))
	r.GET("/users/:id/trend", func(ctx *gin.Context) {
		atomic.AddInt64(&handlerCalls, 1)
		ctx.JSON(http.StatusOK, gin.H{"trend": "steady"})
	})

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/users/abc/trend", nil)
		r.ServeHTTP(w, req)
	}
	assert.Equal(t, int64(1), atomic.LoadInt64(&handlerCalls))

	c.Clear()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/users/abc/trend", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, int64(2), atomic.LoadInt64(&handlerCalls))
}
