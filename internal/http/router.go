package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// NewRouter configura el router de Gin con middlewares y rutas.
func NewRouter(
	logger *zap.Logger,
	healthH *HealthHandler,
	scoringH *ScoringHandler,
	recruitmentH *RecruitmentHandler,
	performanceH *PerformanceHandler,
	analyticsH *AnalyticsHandler,
) *gin.Engine {
	r := gin.New()

	// Middlewares basicos: request id, logging, recovery y JSON content-type.
	r.Use(requestIDMiddleware(), zapLoggerMiddleware(logger), gin.Recovery(), jsonContentTypeMiddleware())

	r.GET("/healthz", healthH.Health)

	// Funciones puras del motor.
	scoringGroup := r.Group("/scoring")
	scoringGroup.POST("/convert", scoringH.Convert)
	scoringGroup.POST("/localize", scoringH.Localize)
	scoringGroup.GET("/locations", scoringH.Locations)
	scoringGroup.POST("/compare", scoringH.Compare)
	scoringGroup.POST("/aggregate", scoringH.Aggregate)
	scoringGroup.POST("/chemistry", scoringH.Chemistry)
	scoringGroup.POST("/flexibility", scoringH.Flexibility)
	scoringGroup.POST("/churn", scoringH.Churn)

	roles := r.Group("/roles/:id")
	roles.GET("/candidates", recruitmentH.ListCandidates)
	roles.GET("/similar-employees", recruitmentH.SimilarEmployees)
	roles.GET("/salary-band", recruitmentH.SalaryBand)
	roles.GET("/weight-overrides", analyticsH.ListOverrides)

	candidates := r.Group("/candidates/:id")
	candidates.GET("/profile-match", recruitmentH.ProfileMatch)
	candidates.POST("/composite", recruitmentH.CompositeScore)
	candidates.GET("/team", recruitmentH.TeamCollaboration)

	employees := r.Group("/employees/:id")
	employees.GET("/collaboration", performanceH.Collaboration)
	employees.GET("/churn", performanceH.ChurnRisk)
	employees.POST("/metrics", performanceH.RecordMetric)

	r.GET("/managers/:id/at-risk", performanceH.AtRiskTeam)
	r.POST("/managers/:id/at-risk/notify", performanceH.NotifyAtRisk)

	weights := r.Group("/weights")
	weights.GET("/defaults", analyticsH.ListDefaultWeights)
	weights.GET("/defaults/:roleType", analyticsH.DefaultWeights)
	weights.POST("/overrides", analyticsH.SaveOverride)

	r.POST("/assessments/:kind", analyticsH.RecordAssessment)

	return r
}

const requestIDHeader = "X-Request-ID"

// requestIDMiddleware propaga el X-Request-ID del cliente o genera uno nuevo.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDHeader, id)
		c.Writer.Header().Set(requestIDHeader, id)
		c.Next()
	}
}

// zapLoggerMiddleware crea un middleware simple de logging con zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
			zap.String("request_id", c.GetString(requestIDHeader)),
		)
	}
}

// jsonContentTypeMiddleware fuerza Content-Type: application/json en responses.
func jsonContentTypeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json")
		c.Next()
	}
}
