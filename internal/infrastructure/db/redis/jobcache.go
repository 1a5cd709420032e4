package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/freelancehub/marketplace-api/internal/api/metrics"
	"github.com/freelancehub/marketplace-api/internal/core/domain"
)

const (
	cacheTTL   = 30 * time.Second
	versionKey = "jobs:ver"
)

// JobCache caches job listings in Redis. Invalidation bumps a version
// counter folded into every key, so stale entries simply age out under the
// TTL instead of being scanned and deleted.
type JobCache struct {
	client *redis.Client
}

// NewJobCache creates a JobCache wrapping the given Redis client.
func NewJobCache(client *redis.Client) *JobCache {
	return &JobCache{client: client}
}

// Get returns the cached listing for key, reporting whether it was present.
func (c *JobCache) Get(ctx context.Context, key string) ([]domain.Job, bool, error) {
	full, err := c.versionedKey(ctx, key)
	if err != nil {
		return nil, false, err
	}

	raw, err := c.client.Get(ctx, full).Bytes()
	if errors.Is(err, redis.Nil) {
		metrics.JobCacheTotal.WithLabelValues("miss").Inc()
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache get: %w", err)
	}

	var jobs []domain.Job
	if err := json.Unmarshal(raw, &jobs); err != nil {
		return nil, false, fmt.Errorf("cache decode: %w", err)
	}

	metrics.JobCacheTotal.WithLabelValues("hit").Inc()
	return jobs, true, nil
}

// Set stores a listing under key with the cache TTL.
func (c *JobCache) Set(ctx context.Context, key string, jobs []domain.Job) error {
	full, err := c.versionedKey(ctx, key)
	if err != nil {
		return err
	}

	raw, err := json.Marshal(jobs)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	return c.client.Set(ctx, full, raw, cacheTTL).Err()
}

// Invalidate drops every cached listing by bumping the version counter.
func (c *JobCache) Invalidate(ctx context.Context) error {
	return c.client.Incr(ctx, versionKey).Err()
}

func (c *JobCache) versionedKey(ctx context.Context, key string) (string, error) {
	ver, err := c.client.Get(ctx, versionKey).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return "", fmt.Errorf("cache version: %w", err)
	}
	return fmt.Sprintf("jobs:v%d:%s", ver, key), nil
}
