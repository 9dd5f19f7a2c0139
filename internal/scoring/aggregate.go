package scoring

import (
	"fmt"
	"math"
	"sort"
)

const DefaultWeightTolerance = 0.01

// Contribution es el aporte de un componente al score final (ya en escala 0-100).
type Contribution struct {
	Name   string  `json:"name"`
	Score  float64 `json:"score"`
	Weight float64 `json:"weight"`
	Points float64 `json:"points"`
}

// AggregateResult acompana el score con datos de advertencia. Nada aqui bloquea el calculo.
type AggregateResult struct {
	Score             float64        `json:"score"`
	WeightSum         float64        `json:"weight_sum"`
	WeightsNormalized bool           `json:"weights_normalized"`
	MissingWeights    []string       `json:"missing_weights,omitempty"`
	Contributions     []Contribution `json:"contributions"`
}

// Warning devuelve el texto de aviso para pesos sin normalizar, o "" si no aplica.
func (r AggregateResult) Warning() string {
	if r.WeightsNormalized {
		return ""
	}
	return fmt.Sprintf("weights sum to %.2f, expected 1.00", r.WeightSum)
}

type Aggregator struct {
	tolerance float64
}

func NewAggregator(tolerance float64) *Aggregator {
	if tolerance <= 0 {
		tolerance = DefaultWeightTolerance
	}
	return &Aggregator{tolerance: tolerance}
}

// Aggregate = 100 * sum(scores[k] * weights[k]). Un peso ausente cuenta como 0.
func (a *Aggregator) Aggregate(scores map[string]float64, weights WeightSet) float64 {
	total := 0.0
	for _, k := range sortedKeys(scores) {
		total += 100 * scores[k] * weights[k]
	}
	return total
}

// Evaluate valida los sub-scores y calcula el score con su desglose.
func (a *Aggregator) Evaluate(scores map[string]float64, weights WeightSet) (AggregateResult, error) {
	keys := sortedKeys(scores)
	res := AggregateResult{Contributions: make([]Contribution, 0, len(keys))}

	for _, k := range keys {
		s := scores[k]
		if math.IsNaN(s) || s < 0 || s > 1 {
			return AggregateResult{}, fmt.Errorf("%w: %s=%v", ErrScoreOutOfRange, k, s)
		}
		w, ok := weights[k]
		if !ok {
			res.MissingWeights = append(res.MissingWeights, k)
		}
		pts := 100 * s * w
		res.Score += pts
		res.Contributions = append(res.Contributions, Contribution{Name: k, Score: s, Weight: w, Points: pts})
	}

	res.WeightSum = weights.Sum()
	res.WeightsNormalized = math.Abs(res.WeightSum-1) <= a.tolerance
	return res, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
