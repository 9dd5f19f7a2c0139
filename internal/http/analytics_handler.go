package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"talent-hub/internal/domain"
	"talent-hub/internal/scoring"
	"talent-hub/internal/service"
)

type AnalyticsHandler struct {
	logger *zap.Logger
	svc    *service.AnalyticsService
}

func NewAnalyticsHandler(logger *zap.Logger, svc *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{logger: logger, svc: svc}
}

// ListDefaultWeights maneja GET /weights/defaults.
func (h *AnalyticsHandler) ListDefaultWeights(c *gin.Context) {
	out := make(map[string]scoring.WeightSet)
	for _, role := range h.svc.RoleTypes() {
		w, err := h.svc.DefaultWeights(role)
		if err != nil {
			writeError(c, h.logger, "default weights", err)
			return
		}
		out[role] = w
	}
	c.JSON(http.StatusOK, gin.H{"role_types": h.svc.RoleTypes(), "weights": out})
}

// DefaultWeights maneja GET /weights/defaults/:roleType.
func (h *AnalyticsHandler) DefaultWeights(c *gin.Context) {
	w, err := h.svc.DefaultWeights(c.Param("roleType"))
	if err != nil {
		writeError(c, h.logger, "default weights", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"role_type": c.Param("roleType"), "weights": w})
}

// SaveOverride maneja POST /weights/overrides.
func (h *AnalyticsHandler) SaveOverride(c *gin.Context) {
	var o domain.WeightOverride
	if err := c.ShouldBindJSON(&o); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	saved, err := h.svc.SaveOverride(c.Request.Context(), o)
	if err != nil {
		writeError(c, h.logger, "save weight override", err)
		return
	}
	c.JSON(http.StatusCreated, saved)
}

// ListOverrides maneja GET /roles/:id/weight-overrides.
func (h *AnalyticsHandler) ListOverrides(c *gin.Context) {
	list, err := h.svc.ListOverrides(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.logger, "list weight overrides", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"overrides": list})
}

// RecordAssessment maneja POST /assessments/:kind (employee o candidate).
func (h *AnalyticsHandler) RecordAssessment(c *gin.Context) {
	var a domain.Assessment
	if err := c.ShouldBindJSON(&a); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if err := h.svc.RecordAssessment(c.Request.Context(), c.Param("kind"), a); err != nil {
		writeError(c, h.logger, "record assessment", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"subject_id": a.SubjectID})
}
