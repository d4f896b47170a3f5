package utils

import (
	"context"
	"log"
	"time"

	"parcelo/config"

	"github.com/go-redis/redis/v8"
)

var (
	// CacheClient is the generic cache client (search results).
	CacheClient *redis.Client
	// AuthCacheClient holds revoked-token entries.
	AuthCacheClient *redis.Client
	// DraftCacheClient holds submission wizard drafts.
	DraftCacheClient *redis.Client
)

func newRedisClient(db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       db,
	})
}

func mustPing(client *redis.Client, name string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (%s): %v", name, err)
	}
}

// InitCache initializes the generic Redis cache client.
func InitCache() {
	CacheClient = newRedisClient(config.AppConfig.RedisCacheDB)
	mustPing(CacheClient, "Cache")
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}

// InitAuthCache initializes the Redis client for token revocation entries.
func InitAuthCache() {
	AuthCacheClient = newRedisClient(config.AppConfig.RedisAuthDB)
	mustPing(AuthCacheClient, "Auth Cache")
}

// GetAuthCacheClient returns the Redis client for token revocation entries.
func GetAuthCacheClient() *redis.Client {
	if AuthCacheClient == nil {
		InitAuthCache()
	}
	return AuthCacheClient
}

// InitDraftCache initializes the Redis client for wizard drafts.
func InitDraftCache() {
	DraftCacheClient = newRedisClient(config.AppConfig.RedisDraftDB)
	mustPing(DraftCacheClient, "Draft Cache")
}

// GetDraftCacheClient returns the Redis client for wizard drafts.
func GetDraftCacheClient() *redis.Client {
	if DraftCacheClient == nil {
		InitDraftCache()
	}
	return DraftCacheClient
}
