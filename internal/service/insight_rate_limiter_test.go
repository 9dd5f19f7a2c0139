package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

type mockRedisEvaler struct {
	lastScript string
	lastKeys   []string
	lastArgs   []interface{}
	result     int64
	err        error
}

func (m *mockRedisEvaler) Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd {
	m.lastScript = script
	m.lastKeys = keys
	m.lastArgs = args
	cmd := redis.NewCmd(ctx)
	if m.err != nil {
		cmd.SetErr(m.err)
		return cmd
	}
	cmd.SetVal(m.result)
	return cmd
}

func TestRedisInsightRateLimiterAllow(t *testing.T) {
	t.Run("nil receiver fail-open", func(t *testing.T) {
		var l *redisInsightRateLimiter
		if !l.Allow("MGR-1") {
			t.Fatalf("expected fail-open for nil limiter")
		}
	})

	t.Run("empty key rejected", func(t *testing.T) {
		l := &redisInsightRateLimiter{client: &mockRedisEvaler{result: 1}, window: time.Minute, max: 3, prefix: "insight:rl:"}
		if l.Allow("   ") {
			t.Fatalf("expected empty key to be rejected")
		}
	})

	t.Run("under limit allowed and key normalized", func(t *testing.T) {
		ev := &mockRedisEvaler{result: 2}
		l := &redisInsightRateLimiter{client: ev, window: 10 * time.Minute, max: 3, prefix: "insight:rl:"}
		if !l.Allow("  MGR-1 ") {
			t.Fatalf("expected allow under limit")
		}
		if len(ev.lastKeys) != 1 || ev.lastKeys[0] != "insight:rl:mgr-1" {
			t.Fatalf("unexpected key: %v", ev.lastKeys)
		}
		if len(ev.lastArgs) != 1 || ev.lastArgs[0] != 600 {
			t.Fatalf("expected window seconds 600, got %v", ev.lastArgs)
		}
		if ev.lastScript != redisInsightAllowScript {
			t.Fatalf("unexpected script")
		}
	})

	t.Run("over limit rejected", func(t *testing.T) {
		l := &redisInsightRateLimiter{client: &mockRedisEvaler{result: 4}, window: time.Minute, max: 3, prefix: "insight:rl:"}
		if l.Allow("MGR-1") {
			t.Fatalf("expected reject over limit")
		}
	})

	t.Run("redis error fails open", func(t *testing.T) {
		l := &redisInsightRateLimiter{client: &mockRedisEvaler{err: errors.New("boom")}, window: time.Minute, max: 3, prefix: "insight:rl:"}
		if !l.Allow("MGR-1") {
			t.Fatalf("expected fail-open on redis error")
		}
	})
}

func TestMemoryInsightRateLimiter(t *testing.T) {
	now := time.Date(2024, 10, 1, 9, 0, 0, 0, time.UTC)
	l := NewMemoryInsightRateLimiter(time.Minute, 2).(*memoryInsightRateLimiter)
	l.now = func() time.Time { return now }

	if !l.Allow("a") || !l.Allow("A") {
		t.Fatalf("first two calls must pass")
	}
	if l.Allow("a") {
		t.Fatalf("third call in window must be rejected")
	}
	if !l.Allow("b") {
		t.Fatalf("other keys are independent")
	}

	now = now.Add(time.Minute)
	if !l.Allow("a") {
		t.Fatalf("new window must reset the counter")
	}
}
