package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"findhere/internal/domain/entity"
	"findhere/pkg/logger"
)

const catalogKey = "findhere:catalog:v1"

// RedisCatalogCache stores the composed catalog snapshot as a single JSON
// value. Any Redis failure is treated as a miss so browsing keeps working
// when the cache is down.
type RedisCatalogCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisCatalogCache(rdb *redis.Client, ttl time.Duration) *RedisCatalogCache {
	return &RedisCatalogCache{rdb: rdb, ttl: ttl}
}

func (c *RedisCatalogCache) Get(ctx context.Context) (*entity.Catalog, bool) {
	raw, err := c.rdb.Get(ctx, catalogKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.Warn("catalog cache read failed: %v", err)
		}
		return nil, false
	}

	var catalog entity.Catalog
	if err := json.Unmarshal(raw, &catalog); err != nil {
		logger.Warn("catalog cache entry is corrupt, ignoring: %v", err)
		return nil, false
	}
	return &catalog, true
}

func (c *RedisCatalogCache) Set(ctx context.Context, catalog *entity.Catalog) {
	raw, err := json.Marshal(catalog)
	if err != nil {
		logger.Warn("catalog cache encode failed: %v", err)
		return
	}
	if err := c.rdb.Set(ctx, catalogKey, raw, c.ttl).Err(); err != nil {
		logger.Warn("catalog cache write failed: %v", err)
	}
}

// Invalidate drops the snapshot after a listing or category write.
func (c *RedisCatalogCache) Invalidate(ctx context.Context) {
	if err := c.rdb.Del(ctx, catalogKey).Err(); err != nil {
		logger.Warn("catalog cache invalidate failed: %v", err)
	}
}

// NewRedisClient pings addr once so misconfiguration shows up at startup.
func NewRedisClient(ctx context.Context, addr, password string) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, err
	}
	return rdb, nil
}
