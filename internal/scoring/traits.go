package scoring

import (
	"fmt"
	"math"
)

// Scale describe el rango declarado de un tipo de rasgo y su banda de ruido por defecto.
type Scale struct {
	Name      string  `json:"name"`
	Min       float64 `json:"min"`
	Max       float64 `json:"max"`
	NoiseBand float64 `json:"noise_band"`
}

// Escalas conocidas. La cognitiva (GIA) usa 0-200, por eso su banda es mas ancha.
var (
	BehavioralScale = Scale{Name: "behavioral", Min: 0, Max: 100, NoiseBand: 5}
	LeadershipScale = Scale{Name: "leadership", Min: 0, Max: 100, NoiseBand: 5}
	CognitiveScale  = Scale{Name: "cognitive", Min: 0, Max: 200, NoiseBand: 10}
)

// Contains indica si v cae dentro del rango de la escala.
func (s Scale) Contains(v float64) bool {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return false
	}
	return v >= s.Min && v <= s.Max
}

type Trait struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// TraitVector es un mapeo ordenado de rasgos con nombre. Inmutable una vez construido.
type TraitVector struct {
	scale  Scale
	traits []Trait
}

// NewTraitVector valida nombres y rangos. No recorta valores: un valor fuera de rango es un bug de datos aguas arriba.
func NewTraitVector(scale Scale, traits ...Trait) (TraitVector, error) {
	seen := make(map[string]struct{}, len(traits))
	out := make([]Trait, 0, len(traits))
	for _, t := range traits {
		if t.Name == "" {
			return TraitVector{}, fmt.Errorf("%w: empty trait name", ErrMismatchedTraitVectors)
		}
		if _, dup := seen[t.Name]; dup {
			return TraitVector{}, fmt.Errorf("%w: duplicate trait %q", ErrMismatchedTraitVectors, t.Name)
		}
		if !scale.Contains(t.Value) {
			return TraitVector{}, fmt.Errorf("%w: %s=%v not in [%v,%v]", ErrInvalidTraitRange, t.Name, t.Value, scale.Min, scale.Max)
		}
		seen[t.Name] = struct{}{}
		out = append(out, t)
	}
	return TraitVector{scale: scale, traits: out}, nil
}

func (v TraitVector) Scale() Scale { return v.scale }

func (v TraitVector) Len() int { return len(v.traits) }

// Traits devuelve una copia en el orden declarado.
func (v TraitVector) Traits() []Trait {
	out := make([]Trait, len(v.traits))
	copy(out, v.traits)
	return out
}

func (v TraitVector) Names() []string {
	names := make([]string, len(v.traits))
	for i, t := range v.traits {
		names[i] = t.Name
	}
	return names
}

func (v TraitVector) Value(name string) (float64, bool) {
	for _, t := range v.traits {
		if t.Name == name {
			return t.Value, true
		}
	}
	return 0, false
}

// Values devuelve los valores como float32, en orden, para indices vectoriales.
func (v TraitVector) Values() []float32 {
	out := make([]float32, len(v.traits))
	for i, t := range v.traits {
		out[i] = float32(t.Value)
	}
	return out
}

// Rescale mapea linealmente el vector a otra escala. Es la normalizacion explicita previa a comparar escalas distintas.
func (v TraitVector) Rescale(to Scale) (TraitVector, error) {
	span := v.scale.Max - v.scale.Min
	if span <= 0 {
		return TraitVector{}, fmt.Errorf("%w: degenerate scale %q", ErrInvalidTraitRange, v.scale.Name)
	}
	out := make([]Trait, len(v.traits))
	for i, t := range v.traits {
		frac := (t.Value - v.scale.Min) / span
		out[i] = Trait{Name: t.Name, Value: to.Min + frac*(to.Max-to.Min)}
	}
	return NewTraitVector(to, out...)
}

// BehavioralProfile es el perfil conductual de cuatro factores (estilo DISC/PPA), 0-100.
type BehavioralProfile struct {
	Assertiveness   int `json:"assertiveness"`    // Dominancia
	Sociability     int `json:"sociability"`      // Influencia
	Pace            int `json:"pace"`             // Estabilidad / ritmo
	RuleOrientation int `json:"rule_orientation"` // Cumplimiento
}

const (
	TraitAssertiveness   = "assertiveness"
	TraitSociability     = "sociability"
	TraitPace            = "pace"
	TraitRuleOrientation = "rule_orientation"
)

func (p BehavioralProfile) Validate() error {
	_, err := p.Vector()
	return err
}

func (p BehavioralProfile) Vector() (TraitVector, error) {
	return NewTraitVector(BehavioralScale,
		Trait{Name: TraitAssertiveness, Value: float64(p.Assertiveness)},
		Trait{Name: TraitSociability, Value: float64(p.Sociability)},
		Trait{Name: TraitPace, Value: float64(p.Pace)},
		Trait{Name: TraitRuleOrientation, Value: float64(p.RuleOrientation)},
	)
}

// Mean es el promedio simple de los cuatro factores.
func (p BehavioralProfile) Mean() float64 {
	return float64(p.Assertiveness+p.Sociability+p.Pace+p.RuleOrientation) / 4
}

// DominantTrait devuelve el factor mas alto; en empate gana el primero en orden declarado.
func (p BehavioralProfile) DominantTrait() string {
	best, name := p.Assertiveness, TraitAssertiveness
	if p.Sociability > best {
		best, name = p.Sociability, TraitSociability
	}
	if p.Pace > best {
		best, name = p.Pace, TraitPace
	}
	if p.RuleOrientation > best {
		name = TraitRuleOrientation
	}
	return name
}

// LeadershipProfile es el perfil de potencial de liderazgo de seis rasgos (estilo HPTI), 0-100.
type LeadershipProfile struct {
	Conscientiousness   int `json:"conscientiousness"`
	Adjustment          int `json:"adjustment"`
	Curiosity           int `json:"curiosity"`
	RiskApproach        int `json:"risk_approach"`
	AmbiguityAcceptance int `json:"ambiguity_acceptance"`
	Competitiveness     int `json:"competitiveness"`
}

func (p LeadershipProfile) Vector() (TraitVector, error) {
	return NewTraitVector(LeadershipScale,
		Trait{Name: "conscientiousness", Value: float64(p.Conscientiousness)},
		Trait{Name: "adjustment", Value: float64(p.Adjustment)},
		Trait{Name: "curiosity", Value: float64(p.Curiosity)},
		Trait{Name: "risk_approach", Value: float64(p.RiskApproach)},
		Trait{Name: "ambiguity_acceptance", Value: float64(p.AmbiguityAcceptance)},
		Trait{Name: "competitiveness", Value: float64(p.Competitiveness)},
	)
}

// CoreMean promedia conscientiousness, adjustment y curiosity, los tres indicadores usados en el score compuesto.
func (p LeadershipProfile) CoreMean() float64 {
	return float64(p.Conscientiousness+p.Adjustment+p.Curiosity) / 3
}
