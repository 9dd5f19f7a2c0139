package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"talent-hub/internal/scoring"
	"talent-hub/internal/service"
)

// RecruitmentHandler agrupa los endpoints del pipeline de contratacion.
type RecruitmentHandler struct {
	logger *zap.Logger
	svc    *service.RecruitmentService
}

func NewRecruitmentHandler(logger *zap.Logger, svc *service.RecruitmentService) *RecruitmentHandler {
	return &RecruitmentHandler{logger: logger, svc: svc}
}

// ListCandidates maneja GET /roles/:id/candidates.
func (h *RecruitmentHandler) ListCandidates(c *gin.Context) {
	list, err := h.svc.ListCandidates(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.logger, "list candidates", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"candidates": list})
}

// ProfileMatch maneja GET /candidates/:id/profile-match?narrative=true.
func (h *RecruitmentHandler) ProfileMatch(c *gin.Context) {
	report, err := h.svc.ProfileMatch(c.Request.Context(), c.Param("id"), wantNarrative(c))
	if err != nil {
		writeError(c, h.logger, "profile match", err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// CompositeScore maneja POST /candidates/:id/composite. El body es opcional.
func (h *RecruitmentHandler) CompositeScore(c *gin.Context) {
	var req struct {
		Weights scoring.WeightSet `json:"weights"`
	}
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	report, err := h.svc.CompositeScore(c.Request.Context(), c.Param("id"), req.Weights)
	if err != nil {
		writeError(c, h.logger, "composite score", err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// TeamCollaboration maneja GET /candidates/:id/team.
func (h *RecruitmentHandler) TeamCollaboration(c *gin.Context) {
	report, err := h.svc.TeamCollaboration(c.Request.Context(), c.Param("id"), wantNarrative(c))
	if err != nil {
		writeError(c, h.logger, "team collaboration", err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// SimilarEmployees maneja GET /roles/:id/similar-employees.
func (h *RecruitmentHandler) SimilarEmployees(c *gin.Context) {
	report, err := h.svc.SimilarEmployees(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.logger, "similar employees", err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// SalaryBand maneja GET /roles/:id/salary-band.
func (h *RecruitmentHandler) SalaryBand(c *gin.Context) {
	report, err := h.svc.SalaryBand(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.logger, "salary band", err)
		return
	}
	c.JSON(http.StatusOK, report)
}
