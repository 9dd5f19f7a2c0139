package scoring

import (
	"fmt"
	"math"
)

// WeightSet mapea nombre de sub-score a peso. Pertenece al llamador, no a la entidad puntuada.
type WeightSet map[string]float64

func (w WeightSet) Sum() float64 {
	total := 0.0
	for _, k := range sortedKeys(w) {
		total += w[k]
	}
	return total
}

// Clone evita que el llamador mute un WeightSet compartido.
func (w WeightSet) Clone() WeightSet {
	out := make(WeightSet, len(w))
	for k, v := range w {
		out[k] = v
	}
	return out
}

// Merge devuelve una copia con los pesos de override aplicados encima.
func (w WeightSet) Merge(override WeightSet) WeightSet {
	out := w.Clone()
	for k, v := range override {
		out[k] = v
	}
	return out
}

const (
	SubjectCandidate = "candidate"
	SubjectEmployee  = "employee"
	SubjectPair      = "pair"
)

// ScoredEntity es inmutable: re-puntuar produce una entidad nueva.
type ScoredEntity struct {
	id        string
	kind      string
	traits    *TraitVector
	subScores map[string]float64
}

func NewScoredEntity(id, kind string, traits *TraitVector) ScoredEntity {
	var t *TraitVector
	if traits != nil {
		cp := *traits
		t = &cp
	}
	return ScoredEntity{id: id, kind: kind, traits: t, subScores: map[string]float64{}}
}

func (e ScoredEntity) ID() string   { return e.id }
func (e ScoredEntity) Kind() string { return e.kind }

// Traits devuelve el vector si existe. La ausencia se reporta, nunca se rellena con 50.
func (e ScoredEntity) Traits() (TraitVector, error) {
	if e.traits == nil {
		return TraitVector{}, fmt.Errorf("%w: %s %s has no trait vector", ErrInsufficientData, e.kind, e.id)
	}
	return *e.traits, nil
}

// WithSubScore devuelve una copia con el sub-score agregado; el receptor queda intacto.
func (e ScoredEntity) WithSubScore(name string, value float64) (ScoredEntity, error) {
	if math.IsNaN(value) || value < 0 || value > 1 {
		return ScoredEntity{}, fmt.Errorf("%w: %s=%v", ErrScoreOutOfRange, name, value)
	}
	next := ScoredEntity{id: e.id, kind: e.kind, traits: e.traits, subScores: make(map[string]float64, len(e.subScores)+1)}
	for k, v := range e.subScores {
		next.subScores[k] = v
	}
	next.subScores[name] = value
	return next, nil
}

func (e ScoredEntity) SubScore(name string) (float64, bool) {
	v, ok := e.subScores[name]
	return v, ok
}

// SubScores devuelve una copia del mapa.
func (e ScoredEntity) SubScores() map[string]float64 {
	out := make(map[string]float64, len(e.subScores))
	for k, v := range e.subScores {
		out[k] = v
	}
	return out
}
