package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"talent-hub/internal/domain"
)

type fakeRedisKV struct {
	data   map[string]string
	getErr error
	ttl    time.Duration
}

func (f *fakeRedisKV) Get(ctx context.Context, key string) *redis.StringCmd {
	cmd := redis.NewStringCmd(ctx)
	if f.getErr != nil {
		cmd.SetErr(f.getErr)
		return cmd
	}
	v, ok := f.data[key]
	if !ok {
		cmd.SetErr(redis.Nil)
		return cmd
	}
	cmd.SetVal(v)
	return cmd
}

func (f *fakeRedisKV) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	cmd := redis.NewStatusCmd(ctx)
	switch v := value.(type) {
	case []byte:
		f.data[key] = string(v)
	case string:
		f.data[key] = v
	}
	f.ttl = expiration
	cmd.SetVal("OK")
	return cmd
}

func TestRedisInsightCacheRoundTrip(t *testing.T) {
	kv := &fakeRedisKV{data: map[string]string{}}
	c := &redisInsightCache{client: kv, prefix: "insight:cache:"}
	ctx := context.Background()

	if _, ok, err := c.Get(ctx, "k"); ok || err != nil {
		t.Fatalf("expected miss, got ok=%v err=%v", ok, err)
	}

	in := domain.Insight{Kind: "churn", Headline: "h", Summary: "s"}
	if err := c.Set(ctx, "k", in, time.Hour); err != nil {
		t.Fatalf("set: %v", err)
	}
	if kv.ttl != time.Hour {
		t.Fatalf("expected ttl to be forwarded")
	}
	var stored domain.Insight
	if err := json.Unmarshal([]byte(kv.data["insight:cache:k"]), &stored); err != nil || stored.Headline != "h" {
		t.Fatalf("unexpected stored payload: %q", kv.data["insight:cache:k"])
	}

	got, ok, err := c.Get(ctx, "k")
	if err != nil || !ok {
		t.Fatalf("expected hit, got ok=%v err=%v", ok, err)
	}
	if got.Summary != "s" {
		t.Fatalf("unexpected insight: %+v", got)
	}
}

func TestRedisInsightCacheError(t *testing.T) {
	c := &redisInsightCache{client: &fakeRedisKV{data: map[string]string{}, getErr: errors.New("down")}, prefix: "p:"}
	if _, _, err := c.Get(context.Background(), "k"); err == nil {
		t.Fatalf("expected redis error to surface")
	}
}

func TestMemoryInsightCacheExpiry(t *testing.T) {
	now := time.Date(2024, 10, 1, 9, 0, 0, 0, time.UTC)
	c := NewMemoryInsightCache().(*memoryInsightCache)
	c.now = func() time.Time { return now }
	ctx := context.Background()

	_ = c.Set(ctx, "k", domain.Insight{Headline: "x"}, time.Minute)
	if _, ok, _ := c.Get(ctx, "k"); !ok {
		t.Fatalf("expected hit before expiry")
	}
	now = now.Add(2 * time.Minute)
	if _, ok, _ := c.Get(ctx, "k"); ok {
		t.Fatalf("expected miss after expiry")
	}
}
