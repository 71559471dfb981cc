package storage

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// PageCache invalidates cached storefront views. The signal is
// fire-and-forget: failures are logged and a nil cache is a no-op, so the
// application (and tests) run fine without redis.
type PageCache struct {
	client *redis.Client
}

// NewPageCache returns nil when no redis address is configured.
func NewPageCache(addr string) *PageCache {
	if addr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("Warning: redis not reachable at %s, page cache disabled: %v", addr, err)
		return nil
	}

	return &PageCache{client: client}
}

// Invalidate drops the cached pages behind the given tags.
func (pc *PageCache) Invalidate(ctx context.Context, tags ...string) {
	if pc == nil || pc.client == nil || len(tags) == 0 {
		return
	}

	keys := make([]string, 0, len(tags))
	for _, tag := range tags {
		keys = append(keys, "page:"+tag)
	}

	if err := pc.client.Del(ctx, keys...).Err(); err != nil {
		log.Printf("Warning: failed to invalidate cache tags %v: %v", tags, err)
	}
}
