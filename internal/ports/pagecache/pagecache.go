package pagecache

import (
	"context"
	"errors"
	"time"
)

// ErrMiss is returned by Get when the key is absent or expired.
var ErrMiss = errors.New("page cache miss")

// PageCache stores rendered page bodies for a short time.
type PageCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, body []byte, ttl time.Duration) error
	// Invalidate drops every key matching the glob pattern.
	Invalidate(ctx context.Context, pattern string) error
}
