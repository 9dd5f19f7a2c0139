package service

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"talent-hub/internal/config"
	"talent-hub/internal/scoring"
)

// ScoringEngine reune los componentes de scoring construidos una sola vez al arrancar.
// Todos son inmutables y seguros para uso concurrente.
type ScoringEngine struct {
	Currency   *scoring.CurrencyNormalizer
	Comparator *scoring.Comparator
	Aggregator *scoring.Aggregator
	Chemistry  scoring.ChemistryModel
	Churn      scoring.ChurnClassifier

	roleWeights map[string]scoring.WeightSet
}

// NewScoringEngine construye el motor desde el perfil. Con fallbackUnknown las monedas
// desconocidas se resuelven a la tasa base y se registra un warning.
func NewScoringEngine(profile *config.ScoringProfile, fallbackUnknown bool, logger *zap.Logger) (*ScoringEngine, error) {
	if profile == nil {
		return nil, fmt.Errorf("scoring engine: nil profile")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	var opts []scoring.CurrencyOption
	if fallbackUnknown {
		opts = append(opts, scoring.WithUnknownFallback(func(code string) {
			logger.Warn("unknown currency resolved to base rate", zap.String("currency", code))
		}))
	}
	normalizer, err := scoring.NewCurrencyNormalizer(profile.Currency, opts...)
	if err != nil {
		return nil, fmt.Errorf("scoring engine: %w", err)
	}

	weights := make(map[string]scoring.WeightSet, len(profile.RoleWeights))
	for role, w := range profile.RoleWeights {
		weights[role] = w.Clone()
	}

	return &ScoringEngine{
		Currency:    normalizer,
		Comparator:  scoring.NewComparator(profile.NoiseBands),
		Aggregator:  scoring.NewAggregator(profile.WeightTolerance),
		Chemistry:   scoring.NewChemistryModel(),
		Churn:       scoring.NewChurnClassifier(),
		roleWeights: weights,
	}, nil
}

// DefaultWeights devuelve una copia de los pesos por defecto del tipo de rol.
func (e *ScoringEngine) DefaultWeights(roleType string) (scoring.WeightSet, bool) {
	w, ok := e.roleWeights[roleType]
	if !ok {
		return nil, false
	}
	return w.Clone(), true
}

func (e *ScoringEngine) RoleTypes() []string {
	out := make([]string, 0, len(e.roleWeights))
	for role := range e.roleWeights {
		out = append(out, role)
	}
	sort.Strings(out)
	return out
}
