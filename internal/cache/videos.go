package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const videoKeyPrefix = "videos:list:"

// VideoCache is a read-through cache for catalog listings. It is best-effort:
// a Redis failure degrades to a database read, never to an API error. Booking
// data is deliberately not cached anywhere — busy intervals must come from
// the calendar on every check.
type VideoCache struct {
	rdb *redis.Client
	ttl time.Duration
	log *zap.Logger
}

// NewVideoCache returns nil when addr is empty; callers treat a nil cache as
// a miss.
func NewVideoCache(addr string, log *zap.Logger) *VideoCache {
	if addr == "" {
		return nil
	}

	return &VideoCache{
		rdb: redis.NewClient(&redis.Options{Addr: addr}),
		ttl: 5 * time.Minute,
		log: log,
	}
}

func (c *VideoCache) Get(ctx context.Context, key string, dest any) bool {
	if c == nil {
		return false
	}

	raw, err := c.rdb.Get(ctx, videoKeyPrefix+key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Debug("video cache read failed", zap.Error(err))
		}
		return false
	}

	return json.Unmarshal(raw, dest) == nil
}

func (c *VideoCache) Set(ctx context.Context, key string, value any) {
	if c == nil {
		return
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return
	}

	if err := c.rdb.Set(ctx, videoKeyPrefix+key, raw, c.ttl).Err(); err != nil {
		c.log.Debug("video cache write failed", zap.Error(err))
	}
}

// Invalidate drops every cached listing; called after catalog mutations.
func (c *VideoCache) Invalidate(ctx context.Context) {
	if c == nil {
		return
	}

	iter := c.rdb.Scan(ctx, 0, videoKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		c.rdb.Del(ctx, iter.Val())
	}
	if err := iter.Err(); err != nil {
		c.log.Debug("video cache invalidation failed", zap.Error(err))
	}
}
