package http

import (
	"net/http"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"talent-hub/internal/scoring"
	"talent-hub/internal/service"
)

var scalesByName = map[string]scoring.Scale{
	scoring.BehavioralScale.Name: scoring.BehavioralScale,
	scoring.LeadershipScale.Name: scoring.LeadershipScale,
	scoring.CognitiveScale.Name:  scoring.CognitiveScale,
}

// ScoringHandler expone las funciones puras del motor sin tocar la base de datos.
type ScoringHandler struct {
	logger *zap.Logger
	engine *service.ScoringEngine
}

func NewScoringHandler(logger *zap.Logger, engine *service.ScoringEngine) *ScoringHandler {
	return &ScoringHandler{logger: logger, engine: engine}
}

// Convert maneja POST /scoring/convert.
func (h *ScoringHandler) Convert(c *gin.Context) {
	var req struct {
		Amount *float64 `json:"amount" binding:"required"`
		From   string   `json:"from" binding:"required"`
		To     string   `json:"to" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	res, err := h.engine.Currency.ConvertMoney(scoring.MoneyAmount{Value: *req.Amount, Currency: req.From}, req.To)
	if err != nil {
		writeError(c, h.logger, "convert", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"result":  res,
		"display": h.engine.Currency.Format(scoring.MoneyAmount{Value: scoring.RoundDisplay(res.Value), Currency: res.Currency}),
	})
}

// Localize maneja POST /scoring/localize: importe en moneda base hacia una ubicacion.
func (h *ScoringHandler) Localize(c *gin.Context) {
	var req struct {
		Amount   *float64 `json:"amount" binding:"required"`
		Location string   `json:"location" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	res, err := h.engine.Currency.Localize(*req.Amount, req.Location)
	if err != nil {
		writeError(c, h.logger, "localize", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"result":  res,
		"display": h.engine.Currency.Format(scoring.MoneyAmount{Value: scoring.RoundDisplay(res.Value), Currency: res.Currency}),
	})
}

// Locations maneja GET /scoring/locations.
func (h *ScoringHandler) Locations(c *gin.Context) {
	locs := h.engine.Currency.Locations()
	sort.Slice(locs, func(i, j int) bool { return locs[i].Name < locs[j].Name })
	c.JSON(http.StatusOK, gin.H{"base": h.engine.Currency.Base(), "locations": locs})
}

// Compare maneja POST /scoring/compare.
func (h *ScoringHandler) Compare(c *gin.Context) {
	var req struct {
		Scale     string          `json:"scale" binding:"required"`
		A         []scoring.Trait `json:"a" binding:"required"`
		B         []scoring.Trait `json:"b" binding:"required"`
		NoiseBand *float64        `json:"noise_band"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	scale, ok := scalesByName[strings.ToLower(req.Scale)]
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown scale"})
		return
	}

	a, err := scoring.NewTraitVector(scale, req.A...)
	if err != nil {
		writeError(c, h.logger, "compare", err)
		return
	}
	b, err := scoring.NewTraitVector(scale, req.B...)
	if err != nil {
		writeError(c, h.logger, "compare", err)
		return
	}

	var res scoring.ComparisonResult
	if req.NoiseBand != nil {
		if *req.NoiseBand < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "noise_band must be >= 0"})
			return
		}
		res, err = h.engine.Comparator.CompareWithBand(a, b, *req.NoiseBand)
	} else {
		res, err = h.engine.Comparator.Compare(a, b)
	}
	if err != nil {
		writeError(c, h.logger, "compare", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": res})
}

// Aggregate maneja POST /scoring/aggregate.
func (h *ScoringHandler) Aggregate(c *gin.Context) {
	var req struct {
		Scores  map[string]float64 `json:"scores" binding:"required"`
		Weights scoring.WeightSet  `json:"weights" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	res, err := h.engine.Aggregator.Evaluate(req.Scores, req.Weights)
	if err != nil {
		writeError(c, h.logger, "aggregate", err)
		return
	}
	body := gin.H{"result": res}
	if w := res.Warning(); w != "" {
		body["warning"] = w
	}
	c.JSON(http.StatusOK, body)
}

// Chemistry maneja POST /scoring/chemistry.
func (h *ScoringHandler) Chemistry(c *gin.Context) {
	var req struct {
		A scoring.BehavioralProfile `json:"a"`
		B scoring.BehavioralProfile `json:"b"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	res, err := h.engine.Chemistry.Chemistry(req.A, req.B)
	if err != nil {
		writeError(c, h.logger, "chemistry", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": res})
}

// Flexibility maneja POST /scoring/flexibility.
func (h *ScoringHandler) Flexibility(c *gin.Context) {
	var req struct {
		Pairs []scoring.CollaborationPair `json:"pairs"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	res, err := h.engine.Chemistry.Flexibility(req.Pairs)
	if err != nil {
		writeError(c, h.logger, "flexibility", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": res})
}

// Churn maneja POST /scoring/churn.
func (h *ScoringHandler) Churn(c *gin.Context) {
	var req scoring.ChurnSignals
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": h.engine.Churn.Classify(req)})
}
