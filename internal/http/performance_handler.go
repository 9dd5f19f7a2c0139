package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"talent-hub/internal/domain"
	"talent-hub/internal/service"
)

type PerformanceHandler struct {
	logger *zap.Logger
	svc    *service.PerformanceService
}

func NewPerformanceHandler(logger *zap.Logger, svc *service.PerformanceService) *PerformanceHandler {
	return &PerformanceHandler{logger: logger, svc: svc}
}

// Collaboration maneja GET /employees/:id/collaboration.
func (h *PerformanceHandler) Collaboration(c *gin.Context) {
	report, err := h.svc.EmployeeCollaboration(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.logger, "employee collaboration", err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// ChurnRisk maneja GET /employees/:id/churn?narrative=true.
func (h *PerformanceHandler) ChurnRisk(c *gin.Context) {
	report, err := h.svc.ChurnRisk(c.Request.Context(), c.Param("id"), wantNarrative(c))
	if err != nil {
		writeError(c, h.logger, "churn risk", err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// AtRiskTeam maneja GET /managers/:id/at-risk.
func (h *PerformanceHandler) AtRiskTeam(c *gin.Context) {
	report, err := h.svc.AtRiskTeam(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.logger, "at-risk team", err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// NotifyAtRisk maneja POST /managers/:id/at-risk/notify.
func (h *PerformanceHandler) NotifyAtRisk(c *gin.Context) {
	receipt, err := h.svc.NotifyAtRisk(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.logger, "notify at-risk", err)
		return
	}
	c.JSON(http.StatusOK, receipt)
}

// RecordMetric maneja POST /employees/:id/metrics.
func (h *PerformanceHandler) RecordMetric(c *gin.Context) {
	var metric domain.PerformanceMetric
	if err := c.ShouldBindJSON(&metric); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	metric.EmployeeID = c.Param("id")

	if err := h.svc.RecordMetric(c.Request.Context(), metric); err != nil {
		writeError(c, h.logger, "record metric", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"metric": metric})
}
