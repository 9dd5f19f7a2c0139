package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"talent-hub/internal/scoring"
	"talent-hub/internal/service"
)

// writeError traduce errores de servicio y de scoring a codigos HTTP.
func writeError(c *gin.Context, logger *zap.Logger, op string, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, scoring.ErrInvalidTraitRange),
		errors.Is(err, scoring.ErrMismatchedTraitVectors),
		errors.Is(err, scoring.ErrEmptyTraitVector),
		errors.Is(err, scoring.ErrUnknownCurrency),
		errors.Is(err, scoring.ErrUnknownLocation),
		errors.Is(err, scoring.ErrScoreOutOfRange):
		status = http.StatusBadRequest
	case errors.Is(err, scoring.ErrInsufficientData),
		errors.Is(err, service.ErrNoWeights):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, service.ErrNotifyFailed):
		status = http.StatusBadGateway
	case errors.Is(err, service.ErrInsightRateLimited):
		status = http.StatusTooManyRequests
	case errors.Is(err, context.DeadlineExceeded):
		status = http.StatusGatewayTimeout
	}

	if status == http.StatusInternalServerError {
		logger.Error(op+" failed", zap.Error(err))
		c.JSON(status, gin.H{"error": "internal error"})
		return
	}
	logger.Debug(op+" rejected", zap.Int("status", status), zap.Error(err))
	c.JSON(status, gin.H{"error": err.Error()})
}

func wantNarrative(c *gin.Context) bool {
	switch c.Query("narrative") {
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}
