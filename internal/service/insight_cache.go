package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"talent-hub/internal/domain"
)

// InsightCache memoriza narrativas por hash de sus entradas. Los resultados de scoring
// son deterministas, asi que la misma entrada produce la misma narrativa valida.
type InsightCache interface {
	Get(ctx context.Context, key string) (domain.Insight, bool, error)
	Set(ctx context.Context, key string, insight domain.Insight, ttl time.Duration) error
}

type memoryInsightCache struct {
	mu    sync.Mutex
	now   func() time.Time
	items map[string]cachedInsight
}

type cachedInsight struct {
	insight domain.Insight
	expires time.Time
}

func NewMemoryInsightCache() InsightCache {
	return &memoryInsightCache{
		now:   time.Now,
		items: make(map[string]cachedInsight),
	}
}

func (c *memoryInsightCache) Get(_ context.Context, key string) (domain.Insight, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	item, ok := c.items[key]
	if !ok {
		return domain.Insight{}, false, nil
	}
	if c.now().After(item.expires) {
		delete(c.items, key)
		return domain.Insight{}, false, nil
	}
	return item.insight, true, nil
}

func (c *memoryInsightCache) Set(_ context.Context, key string, insight domain.Insight, ttl time.Duration) error {
	if strings.TrimSpace(key) == "" {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = cachedInsight{insight: insight, expires: c.now().Add(ttl)}
	return nil
}

// redisKV es el subconjunto de *redis.Client que usa la cache.
type redisKV interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

type redisInsightCache struct {
	client redisKV
	prefix string
}

func NewRedisInsightCache(client *redis.Client) InsightCache {
	if client == nil {
		return nil
	}
	return &redisInsightCache{client: client, prefix: "insight:cache:"}
}

func (c *redisInsightCache) Get(ctx context.Context, key string) (domain.Insight, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()

	raw, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Insight{}, false, nil
	}
	if err != nil {
		return domain.Insight{}, false, err
	}
	var insight domain.Insight
	if err := json.Unmarshal(raw, &insight); err != nil {
		return domain.Insight{}, false, err
	}
	return insight, true, nil
}

func (c *redisInsightCache) Set(ctx context.Context, key string, insight domain.Insight, ttl time.Duration) error {
	if strings.TrimSpace(key) == "" {
		return nil
	}
	payload, err := json.Marshal(insight)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()
	return c.client.Set(ctx, c.prefix+key, payload, ttl).Err()
}
