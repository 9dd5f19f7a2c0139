package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"talent-hub/internal/config"
	"talent-hub/internal/db"
	"talent-hub/internal/email"
	apihttp "talent-hub/internal/http"
	"talent-hub/internal/llm"
	"talent-hub/internal/repository"
	"talent-hub/internal/service"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const insightSystemPrompt = "You are a careful talent analytics advisor. You explain precomputed scores; you never compute or change them."

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	profile, err := config.LoadScoringProfile(cfg.ScoringProfilePath)
	if err != nil {
		logger.Fatal("scoring profile", zap.Error(err))
	}
	engine, err := service.NewScoringEngine(profile, cfg.FXFallbackUnknown, logger)
	if err != nil {
		logger.Fatal("scoring engine", zap.Error(err))
	}

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()

	ctxPing, cancelPing := context.WithTimeout(ctx, 5*time.Second)
	if err := db.Ping(ctxPing, pool); err != nil {
		logger.Warn("db ping failed", zap.Error(err))
	} else if err := db.EnsureSchema(ctxPing, pool); err != nil {
		logger.Fatal("db schema", zap.Error(err))
	}
	cancelPing()

	employeeRepo := repository.NewPgEmployeeRepository(pool)
	candidateRepo := repository.NewPgCandidateRepository(pool)
	roleRepo := repository.NewPgRoleRepository(pool)
	assessmentRepo := repository.NewPgAssessmentRepository(pool)
	performanceRepo := repository.NewPgPerformanceRepository(pool)
	collaborationRepo := repository.NewPgCollaborationRepository(pool)
	weightRepo := repository.NewPgWeightOverrideRepository(pool)

	var llmClient llm.LLMClient = llm.DisabledClient{}
	if cfg.LLMAPIKey != "" {
		llmClient = llm.NewHTTPClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel, insightSystemPrompt, logger)
	} else {
		logger.Warn("llm api key not configured, narratives disabled")
	}

	notifier := email.NewDisabledSender("email sender not configured")
	if cfg.SMTPHost != "" {
		sender, err := email.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom, cfg.SMTPFromName, cfg.SMTPUseTLS)
		if err != nil {
			logger.Warn("smtp sender init failed", zap.Error(err))
		} else {
			notifier = sender
		}
	}

	rateWindow := time.Duration(cfg.InsightRateWindowMin) * time.Minute
	var (
		insightCache   = service.NewMemoryInsightCache()
		insightLimiter = service.NewMemoryInsightRateLimiter(rateWindow, cfg.InsightRateLimit)
		redisClient    *redis.Client
	)
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxRedis, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxRedis).Err(); err != nil {
			logger.Warn("redis ping failed, using in-memory insight cache", zap.Error(err))
		} else {
			insightCache = service.NewRedisInsightCache(redisClient)
			insightLimiter = service.NewRedisInsightRateLimiter(redisClient, rateWindow, cfg.InsightRateLimit)
		}
		cancel()
	}

	insightSvc := service.NewInsightService(
		llmClient,
		insightCache,
		insightLimiter,
		time.Duration(cfg.InsightCacheTTLMinutes)*time.Minute,
		time.Duration(cfg.NarrativeTimeoutSeconds)*time.Second,
		logger,
	)
	recruitmentSvc := service.NewRecruitmentService(candidateRepo, roleRepo, assessmentRepo, employeeRepo, weightRepo, engine, insightSvc, logger)
	performanceSvc := service.NewPerformanceService(employeeRepo, assessmentRepo, performanceRepo, collaborationRepo, engine, insightSvc, notifier, cfg.BatchConcurrency, logger)
	analyticsSvc := service.NewAnalyticsService(weightRepo, roleRepo, assessmentRepo, engine, logger)

	router := apihttp.NewRouter(
		logger,
		apihttp.NewHealthHandler(logger, pool),
		apihttp.NewScoringHandler(logger, engine),
		apihttp.NewRecruitmentHandler(logger, recruitmentSvc),
		apihttp.NewPerformanceHandler(logger, performanceSvc),
		apihttp.NewAnalyticsHandler(logger, analyticsSvc),
	)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
