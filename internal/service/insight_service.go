package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"talent-hub/internal/domain"
	"talent-hub/internal/llm"
)

var (
	ErrUnknownInsightKind = errors.New("unknown insight kind")
	ErrInsightRateLimited = errors.New("insight rate limit exceeded")
)

// InsightService genera narrativas a partir de resultados de scoring ya calculados.
// Nunca recalcula ni modifica los scores que recibe.
type InsightService struct {
	llmClient llm.LLMClient
	cache     InsightCache
	limiter   InsightRateLimiter
	cacheTTL  time.Duration
	timeout   time.Duration
	logger    *zap.Logger
	now       func() time.Time
}

func NewInsightService(
	llmClient llm.LLMClient,
	cache InsightCache,
	limiter InsightRateLimiter,
	cacheTTL time.Duration,
	timeout time.Duration,
	logger *zap.Logger,
) *InsightService {
	if cache == nil {
		cache = NewMemoryInsightCache()
	}
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	if cacheTTL <= 0 {
		cacheTTL = time.Hour
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InsightService{
		llmClient: llmClient,
		cache:     cache,
		limiter:   limiter,
		cacheTTL:  cacheTTL,
		timeout:   timeout,
		logger:    logger,
		now:       time.Now,
	}
}

// Narrate pide al LLM una narrativa sobre facts. rateKey identifica a quien consume la cuota.
func (s *InsightService) Narrate(ctx context.Context, kind, rateKey string, facts any) (domain.Insight, error) {
	tmpl, ok := insightTemplates[kind]
	if !ok {
		return domain.Insight{}, fmt.Errorf("%w: %s", ErrUnknownInsightKind, kind)
	}

	payload, err := json.Marshal(facts)
	if err != nil {
		return domain.Insight{}, fmt.Errorf("marshal insight facts: %w", err)
	}
	key := insightCacheKey(kind, payload)

	if cached, hit, err := s.cache.Get(ctx, key); err != nil {
		s.logger.Warn("insight cache get failed", zap.String("kind", kind), zap.Error(err))
	} else if hit {
		cached.Cached = true
		return cached, nil
	}

	if s.limiter != nil && !s.limiter.Allow(rateKey) {
		return domain.Insight{}, ErrInsightRateLimited
	}

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	raw, err := s.llmClient.Generate(callCtx, fmt.Sprintf(tmpl, string(payload)))
	if err != nil {
		return domain.Insight{}, fmt.Errorf("generate %s narrative: %w", kind, err)
	}
	parsed, err := parseNarrative(raw)
	if err != nil {
		return domain.Insight{}, fmt.Errorf("parse %s narrative: %w", kind, err)
	}

	insight := domain.Insight{
		Kind:            kind,
		Headline:        parsed.Headline,
		Summary:         parsed.Summary,
		Recommendations: parsed.Recommendations,
		GeneratedAt:     s.now().UTC(),
	}
	if err := s.cache.Set(ctx, key, insight, s.cacheTTL); err != nil {
		s.logger.Warn("insight cache set failed", zap.String("kind", kind), zap.Error(err))
	}
	return insight, nil
}

// TryNarrate nunca falla: devuelve la narrativa o el texto del error para adjuntarlo a la respuesta.
func (s *InsightService) TryNarrate(ctx context.Context, kind, rateKey string, facts any) (*domain.Insight, string) {
	if s == nil || s.llmClient == nil {
		return nil, llm.ErrDisabled.Error()
	}
	insight, err := s.Narrate(ctx, kind, rateKey, facts)
	if err != nil {
		s.logger.Warn("narrative failed", zap.String("kind", kind), zap.Error(err))
		return nil, err.Error()
	}
	return &insight, ""
}

func insightCacheKey(kind string, payload []byte) string {
	sum := sha256.Sum256(append([]byte(kind+":"), payload...))
	return kind + ":" + hex.EncodeToString(sum[:])
}
