// Package fixtures genera datos sinteticos deterministas para pruebas y para la CLI.
package fixtures

import (
	"fmt"
	"math/rand/v2"

	"talent-hub/internal/scoring"
)

// RandomSource es lo minimo que necesita el generador. Los tests inyectan secuencias fijas.
type RandomSource interface {
	IntN(n int) int
	Float64() float64
}

// NewSeededSource devuelve un PCG determinista para la semilla dada.
func NewSeededSource(seed uint64) RandomSource {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

type Generator struct {
	src RandomSource
}

func NewGenerator(src RandomSource) *Generator {
	return &Generator{src: src}
}

// between devuelve un entero uniforme en [lo, hi].
func (g *Generator) between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + g.src.IntN(hi-lo+1)
}

func (g *Generator) Behavioral() scoring.BehavioralProfile {
	return scoring.BehavioralProfile{
		Assertiveness:   g.between(10, 95),
		Sociability:     g.between(10, 95),
		Pace:            g.between(10, 95),
		RuleOrientation: g.between(10, 95),
	}
}

func (g *Generator) Leadership() scoring.LeadershipProfile {
	return scoring.LeadershipProfile{
		Conscientiousness:   g.between(30, 95),
		Adjustment:          g.between(30, 95),
		Curiosity:           g.between(30, 95),
		RiskApproach:        g.between(30, 95),
		AmbiguityAcceptance: g.between(30, 95),
		Competitiveness:     g.between(30, 95),
	}
}

// CognitiveScore cae en el rango habitual de GIA (70-130).
func (g *Generator) CognitiveScore() int {
	return g.between(70, 130)
}

// ChurnSignals deja velocity vacio en un 20% de los casos para ejercitar el dato ausente.
func (g *Generator) ChurnSignals() scoring.ChurnSignals {
	s := scoring.ChurnSignals{
		Morale:       float64(g.between(35, 95)),
		TenureMonths: g.between(1, 96),
		Sentiment:    float64(g.between(20, 95)) / 100,
	}
	if g.src.Float64() >= 0.2 {
		v := float64(g.between(8, 45))
		s.Velocity = &v
	}
	return s
}

func (g *Generator) RelationshipQuality() float64 {
	return float64(g.between(40, 95))
}

// Subject es un sujeto sintetico completo.
type Subject struct {
	ID         string
	Behavioral scoring.BehavioralProfile
	Leadership scoring.LeadershipProfile
	Cognitive  int
	Churn      scoring.ChurnSignals
}

// Subjects genera n sujetos con IDs "<prefix>001", "<prefix>002", ...
func (g *Generator) Subjects(prefix string, n int) []Subject {
	out := make([]Subject, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, Subject{
			ID:         fmt.Sprintf("%s%03d", prefix, i),
			Behavioral: g.Behavioral(),
			Leadership: g.Leadership(),
			Cognitive:  g.CognitiveScore(),
			Churn:      g.ChurnSignals(),
		})
	}
	return out
}
