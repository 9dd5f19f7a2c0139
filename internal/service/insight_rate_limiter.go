package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// InsightRateLimiter limita las llamadas al LLM por clave (manager, candidato...).
type InsightRateLimiter interface {
	Allow(key string) bool
}

const redisInsightAllowScript = `
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("EXPIRE", KEYS[1], ARGV[1])
end
return current
`

type redisInsightRateLimiter struct {
	client redisEvaler
	window time.Duration
	max    int
	prefix string
}

type redisEvaler interface {
	Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd
}

func NewRedisInsightRateLimiter(client *redis.Client, window time.Duration, max int) InsightRateLimiter {
	if client == nil {
		return nil
	}
	if window <= 0 {
		window = time.Minute
	}
	if max <= 0 {
		max = 1
	}
	return &redisInsightRateLimiter{
		client: client,
		window: window,
		max:    max,
		prefix: "insight:rl:",
	}
}

// Allow falla abierto si redis no responde: la narrativa es opcional, el scoring no depende de ella.
func (l *redisInsightRateLimiter) Allow(key string) bool {
	if l == nil || l.client == nil {
		return true
	}
	normalizedKey := strings.ToLower(strings.TrimSpace(key))
	if normalizedKey == "" {
		return false
	}
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	redisKey := l.prefix + normalizedKey
	seconds := int(l.window.Seconds())
	if seconds <= 0 {
		seconds = 60
	}
	count, err := l.client.Eval(ctx, redisInsightAllowScript, []string{redisKey}, seconds).Int()
	if err != nil {
		return true
	}
	return count <= l.max
}

// memoryInsightRateLimiter es la version en proceso, con ventana fija por clave.
type memoryInsightRateLimiter struct {
	mu     sync.Mutex
	window time.Duration
	max    int
	now    func() time.Time
	counts map[string]windowCount
}

type windowCount struct {
	start time.Time
	n     int
}

func NewMemoryInsightRateLimiter(window time.Duration, max int) InsightRateLimiter {
	if window <= 0 {
		window = time.Minute
	}
	if max <= 0 {
		max = 1
	}
	return &memoryInsightRateLimiter{
		window: window,
		max:    max,
		now:    time.Now,
		counts: make(map[string]windowCount),
	}
}

func (l *memoryInsightRateLimiter) Allow(key string) bool {
	normalizedKey := strings.ToLower(strings.TrimSpace(key))
	if normalizedKey == "" {
		return false
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	wc := l.counts[normalizedKey]
	if wc.start.IsZero() || now.Sub(wc.start) >= l.window {
		wc = windowCount{start: now}
	}
	wc.n++
	l.counts[normalizedKey] = wc
	return wc.n <= l.max
}
