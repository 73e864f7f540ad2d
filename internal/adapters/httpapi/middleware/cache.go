package middleware

import (
	"bytes"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"scribe/internal/ports/pagecache"
)

// CachePage serves the rendered page body from the cache when present, and
// tees successful responses into it otherwise. A nil cache disables it.
func CachePage(cache pagecache.PageCache, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cache == nil || c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		key := "page:" + c.Request.URL.RequestURI()
		if body, err := cache.Get(c.Request.Context(), key); err == nil {
			c.Data(http.StatusOK, "text/html; charset=utf-8", body)
			c.Abort()
			return
		}

		w := &teeWriter{ResponseWriter: c.Writer}
		c.Writer = w
		c.Next()

		if w.Status() == http.StatusOK {
			_ = cache.Set(c.Request.Context(), key, w.buf.Bytes(), ttl)
		}
	}
}

type teeWriter struct {
	gin.ResponseWriter
	buf bytes.Buffer
}

func (w *teeWriter) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *teeWriter) WriteString(s string) (int, error) {
	w.buf.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}
