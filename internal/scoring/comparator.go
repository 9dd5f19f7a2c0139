package scoring

import (
	"fmt"
	"math"
)

const (
	StatusAbove   = "above"
	StatusBelow   = "below"
	StatusAligned = "aligned"
)

type TraitDelta struct {
	Trait  string  `json:"trait"`
	ValueA float64 `json:"value_a"`
	ValueB float64 `json:"value_b"`
	Delta  float64 `json:"delta"`
	Status string  `json:"status"`
}

// ComparisonResult es efimero: vive solo lo que dura la llamada que lo produjo.
type ComparisonResult struct {
	Scale     string       `json:"scale"`
	NoiseBand float64      `json:"noise_band"`
	Traits    []TraitDelta `json:"traits"`
	Score     float64      `json:"score"`
}

// Status devuelve el estado de un rasgo por nombre.
func (r ComparisonResult) Status(trait string) (string, bool) {
	for _, t := range r.Traits {
		if t.Trait == trait {
			return t.Status, true
		}
	}
	return "", false
}

// Comparator calcula brechas entre dos vectores que comparten nombres de rasgos.
type Comparator struct {
	bands map[string]float64
}

// NewComparator acepta bandas de ruido por nombre de escala; las ausentes usan la banda de la propia escala.
func NewComparator(bands map[string]float64) *Comparator {
	copied := make(map[string]float64, len(bands))
	for k, v := range bands {
		copied[k] = v
	}
	return &Comparator{bands: copied}
}

// NoiseBand resuelve la banda efectiva para una escala.
func (c *Comparator) NoiseBand(s Scale) float64 {
	if c != nil {
		if b, ok := c.bands[s.Name]; ok {
			return b
		}
	}
	return s.NoiseBand
}

func (c *Comparator) Compare(a, b TraitVector) (ComparisonResult, error) {
	return c.CompareWithBand(a, b, c.NoiseBand(a.Scale()))
}

// CompareWithBand compara a contra b: delta = a - b por rasgo, en el orden de a.
func (c *Comparator) CompareWithBand(a, b TraitVector, band float64) (ComparisonResult, error) {
	if a.Scale().Name != b.Scale().Name {
		return ComparisonResult{}, fmt.Errorf("%w: scale %q vs %q", ErrMismatchedTraitVectors, a.Scale().Name, b.Scale().Name)
	}
	if a.Len() == 0 || b.Len() == 0 {
		return ComparisonResult{}, ErrEmptyTraitVector
	}
	if a.Len() != b.Len() {
		return ComparisonResult{}, fmt.Errorf("%w: %d vs %d traits", ErrMismatchedTraitVectors, a.Len(), b.Len())
	}
	if band < 0 || math.IsNaN(band) {
		band = 0
	}

	deltas := make([]TraitDelta, 0, a.Len())
	sumAbs := 0.0
	for _, t := range a.traits {
		other, ok := b.Value(t.Name)
		if !ok {
			return ComparisonResult{}, fmt.Errorf("%w: trait %q missing", ErrMismatchedTraitVectors, t.Name)
		}
		delta := t.Value - other
		deltas = append(deltas, TraitDelta{
			Trait:  t.Name,
			ValueA: t.Value,
			ValueB: other,
			Delta:  delta,
			Status: classifyDelta(delta, band),
		})
		sumAbs += math.Abs(delta)
	}

	score := 100 - sumAbs/float64(len(deltas))
	return ComparisonResult{
		Scale:     a.Scale().Name,
		NoiseBand: band,
		Traits:    deltas,
		Score:     clamp(score, 0, 100),
	}, nil
}

func classifyDelta(delta, band float64) string {
	switch {
	case delta > band:
		return StatusAbove
	case delta < -band:
		return StatusBelow
	default:
		return StatusAligned
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
