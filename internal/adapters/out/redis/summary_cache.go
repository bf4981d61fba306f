// Package redis provides the read-side cache for order list projections.
// The cache is strictly a read-path optimization: a miss or a failing Redis
// never surfaces to callers, list queries just fall through to the database.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"marketplace/internal/core/application/usecases/queries"

	"github.com/go-redis/redis/v8"
)

// SummaryCache implements queries.SummaryCache over a Redis client.
type SummaryCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewSummaryCache creates a cache with the given entry lifetime. Entries are
// short-lived rather than invalidated on writes; a slightly stale list is
// acceptable, a stale mutation input is not, which is why only list queries
// read from here.
func NewSummaryCache(client *redis.Client, ttl time.Duration, logger *slog.Logger) *SummaryCache {
	return &SummaryCache{
		client: client,
		ttl:    ttl,
		logger: logger.With("component", "summary_cache"),
	}
}

// Get returns the cached summaries for a key, or a miss when the key is
// absent, unreadable, or Redis is unavailable.
func (c *SummaryCache) Get(ctx context.Context, key string) ([]queries.OrderSummary, bool) {
	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("cache read failed", "key", key, "error", err)
		}
		return nil, false
	}

	var summaries []queries.OrderSummary
	if err = json.Unmarshal(payload, &summaries); err != nil {
		c.logger.Warn("cache entry corrupt", "key", key, "error", err)
		return nil, false
	}
	return summaries, true
}

// Set stores the summaries under a key with the configured lifetime.
// Failures are logged and swallowed.
func (c *SummaryCache) Set(ctx context.Context, key string, summaries []queries.OrderSummary) {
	payload, err := json.Marshal(summaries)
	if err != nil {
		c.logger.Warn("cache entry not serializable", "key", key, "error", err)
		return
	}

	if err = c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		c.logger.Warn("cache write failed", "key", key, "error", err)
	}
}
