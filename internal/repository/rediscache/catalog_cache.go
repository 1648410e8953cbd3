package rediscache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"mediaMatcher/business/recommend"
	"mediaMatcher/domain"
	"mediaMatcher/pkg/logger"

	"github.com/redis/go-redis/v9"
)

// CatalogCache is a read-through cache over a catalog repository. Cache
// failures are invisible to callers: a miss or a broken redis just falls
// through to the wrapped catalog.
type CatalogCache struct {
	inner  recommend.CatalogRepository
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func NewCatalogCache(inner recommend.CatalogRepository, client *redis.Client, prefix string, ttl time.Duration) *CatalogCache {
	return &CatalogCache{
		inner:  inner,
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

func (c *CatalogCache) Search(ctx context.Context, query string, limit int) ([]domain.Candidate, error) {
	key := fmt.Sprintf("catalog:%s:search:%d:%s", c.prefix, limit, query)

	if cached, ok := c.lookup(ctx, key); ok {
		return cached, nil
	}

	results, err := c.inner.Search(ctx, query, limit)
	if err != nil {
		return nil, err
	}

	c.store(ctx, key, results)
	return results, nil
}

func (c *CatalogCache) DiscoverByTags(ctx context.Context, tags []string, minVoteCount int) ([]domain.Candidate, error) {
	key := fmt.Sprintf("catalog:%s:discover:%d:%s", c.prefix, minVoteCount, strings.Join(tags, ","))

	if cached, ok := c.lookup(ctx, key); ok {
		return cached, nil
	}

	results, err := c.inner.DiscoverByTags(ctx, tags, minVoteCount)
	if err != nil {
		return nil, err
	}

	c.store(ctx, key, results)
	return results, nil
}

func (c *CatalogCache) lookup(ctx context.Context, key string) ([]domain.Candidate, bool) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			logger.Debug("catalog cache read failed", "key", key, "error", err)
		}
		return nil, false
	}

	var results []domain.Candidate
	if err := json.Unmarshal(raw, &results); err != nil {
		logger.Debug("catalog cache entry corrupt", "key", key, "error", err)
		return nil, false
	}

	return results, true
}

func (c *CatalogCache) store(ctx context.Context, key string, results []domain.Candidate) {
	raw, err := json.Marshal(results)
	if err != nil {
		return
	}

	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		logger.Debug("catalog cache write failed", "key", key, "error", err)
	}
}
