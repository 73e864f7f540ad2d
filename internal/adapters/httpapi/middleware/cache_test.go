package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scribe/internal/ports/pagecache"
)

type memoryCache struct {
	mu      sync.Mutex
	entries map[string][]byte
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: map[string][]byte{}}
}

func (m *memoryCache) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	body, ok := m.entries[key]
	if !ok {
		return nil, pagecache.ErrMiss
	}
	return body, nil
}

func (m *memoryCache) Set(ctx context.Context, key string, body []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = body
	return nil
}

func (m *memoryCache) Invalidate(ctx context.Context, pattern string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = map[string][]byte{}
	return nil
}

func TestCachePage_ServesSecondRequestFromCache(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cache := newMemoryCache()

	hits := 0
	r := gin.New()
	r.GET("/", CachePage(cache, time.Minute), func(c *gin.Context) {
		hits++
		c.String(http.StatusOK, "rendered page")
	})

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "rendered page", w.Body.String())
	}

	assert.Equal(t, 1, hits)
}

func TestCachePage_KeyIncludesQueryString(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cache := newMemoryCache()

	r := gin.New()
	r.GET("/", CachePage(cache, time.Minute), func(c *gin.Context) {
		c.String(http.StatusOK, "page "+c.DefaultQuery("page", "1"))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, "page 1", w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/?page=2", nil))
	assert.Equal(t, "page 2", w.Body.String())
}

func TestCachePage_NilCachePassesThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)

	hits := 0
	r := gin.New()
	r.GET("/", CachePage(nil, time.Minute), func(c *gin.Context) {
		hits++
		c.String(http.StatusOK, "ok")
	})

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	}
	assert.Equal(t, 2, hits)
}

func TestCachePage_DoesNotCacheErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cache := newMemoryCache()

	r := gin.New()
	r.GET("/missing", CachePage(cache, time.Minute), func(c *gin.Context) {
		c.String(http.StatusNotFound, "nope")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, cache.entries)
}
