package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"parcelo/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	searchCachePrefix = "search:"
	searchCacheGenKey = "search:gen"
)

// SearchCache memoizes search results in Redis, keyed by the canonical
// query string under a generation counter. Invalidation bumps the counter
// so stale entries simply expire. Every cache failure degrades to a direct
// computation, never to an error.
type SearchCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewSearchCache(client *redis.Client, ttl time.Duration) *SearchCache {
	return &SearchCache{Client: client, TTL: ttl}
}

func (c *SearchCache) Get(ctx context.Context, canonicalQuery string) (*SearchResult, bool) {
	if c == nil || c.Client == nil {
		return nil, false
	}
	key, err := c.key(ctx, canonicalQuery)
	if err != nil {
		return nil, false
	}
	data, err := c.Client.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			utils.GetLogger().Warn("search cache read failed", zap.Error(err))
		}
		return nil, false
	}
	var result SearchResult
	if err := json.Unmarshal([]byte(data), &result); err != nil {
		return nil, false
	}
	return &result, true
}

func (c *SearchCache) Set(ctx context.Context, canonicalQuery string, result SearchResult) {
	if c == nil || c.Client == nil {
		return
	}
	key, err := c.key(ctx, canonicalQuery)
	if err != nil {
		return
	}
	data, err := json.Marshal(result)
	if err != nil {
		return
	}
	if err := c.Client.Set(ctx, key, data, c.TTL).Err(); err != nil {
		utils.GetLogger().Warn("search cache write failed", zap.Error(err))
	}
}

// Invalidate retires all cached searches. Called after a listing insert.
func (c *SearchCache) Invalidate(ctx context.Context) {
	if c == nil || c.Client == nil {
		return
	}
	if err := c.Client.Incr(ctx, searchCacheGenKey).Err(); err != nil {
		utils.GetLogger().Warn("search cache invalidation failed", zap.Error(err))
	}
}

func (c *SearchCache) key(ctx context.Context, canonicalQuery string) (string, error) {
	gen, err := c.Client.Get(ctx, searchCacheGenKey).Int64()
	if err != nil && err != redis.Nil {
		return "", err
	}
	return fmt.Sprintf("%s%d:%s", searchCachePrefix, gen, canonicalQuery), nil
}
