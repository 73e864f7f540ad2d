package redis

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"

	"scribe/internal/ports/pagecache"
)

// PageCacheRedis keeps rendered listing pages in Redis for a short TTL, the
// way the index page is cached.
type PageCacheRedis struct {
	Client *redis.Client
}

func NewPageCacheRedis(client *redis.Client) *PageCacheRedis {
	return &PageCacheRedis{Client: client}
}

func (r *PageCacheRedis) Get(ctx context.Context, key string) ([]byte, error) {
	body, err := r.Client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, pagecache.ErrMiss
		}
		return nil, err
	}
	return body, nil
}

func (r *PageCacheRedis) Set(ctx context.Context, key string, body []byte, ttl time.Duration) error {
	return r.Client.Set(ctx, key, body, ttl).Err()
}

func (r *PageCacheRedis) Invalidate(ctx context.Context, pattern string) error {
	keys, err := r.Client.Keys(ctx, pattern).Result()
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return r.Client.Del(ctx, keys...).Err()
}
