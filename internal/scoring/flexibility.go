package scoring

import (
	"fmt"
	"math"
)

const (
	flexibilityBase     = 50.0
	flexibilityBonusCap = 40.0
)

const (
	RatingExceptional = "exceptional"
	RatingHigh        = "high"
	RatingAverage     = "average"
	RatingDeveloping  = "developing"
)

var ratingDescriptions = map[string]string{
	RatingExceptional: "Demonstrates remarkable ability to build productive relationships regardless of personality differences. A team unifier.",
	RatingHigh:        "Consistently adapts communication style to work effectively with diverse personalities.",
	RatingAverage:     "Generally works well with others but may struggle with significantly different personalities.",
	RatingDeveloping:  "May prefer working with similar personalities. Coaching on adaptive communication recommended.",
}

// CollaborationPair es la quimica predicha frente a la calidad de relacion observada con un colaborador.
type CollaborationPair struct {
	CollaboratorID string  `json:"collaborator_id,omitempty"`
	Chemistry      float64 `json:"chemistry"`
	Relationship   float64 `json:"relationship"`
}

type FlexibilityEvidence struct {
	CollaboratorID string  `json:"collaborator_id,omitempty"`
	Chemistry      float64 `json:"chemistry"`
	Relationship   float64 `json:"relationship"`
	Contribution   float64 `json:"contribution"`
	Note           string  `json:"note"`
}

type FlexibilityResult struct {
	Score       float64               `json:"score"`
	Bonus       float64               `json:"bonus"`
	Rating      string                `json:"rating"`
	Description string                `json:"description"`
	Evidence    []FlexibilityEvidence `json:"evidence"`
}

// Flexibility premia relaciones que superan la quimica "natural" predicha.
// Sin colaboradores no hay evidencia: se devuelve la base con rating "average".
// Quimica y relacion deben estar en 0-100; si no, ErrInvalidTraitRange.
func (ChemistryModel) Flexibility(pairs []CollaborationPair) (FlexibilityResult, error) {
	for i, p := range pairs {
		if !BehavioralScale.Contains(p.Chemistry) || !BehavioralScale.Contains(p.Relationship) {
			return FlexibilityResult{}, fmt.Errorf("%w: pair %d (%s) chemistry=%v relationship=%v not in [0,100]",
				ErrInvalidTraitRange, i, p.CollaboratorID, p.Chemistry, p.Relationship)
		}
	}
	if len(pairs) == 0 {
		return FlexibilityResult{
			Score:       flexibilityBase,
			Rating:      RatingAverage,
			Description: ratingDescriptions[RatingAverage],
			Evidence:    []FlexibilityEvidence{},
		}, nil
	}

	evidence := make([]FlexibilityEvidence, 0, len(pairs))
	bonus := 0.0

	for _, p := range pairs {
		gap := p.Relationship - p.Chemistry
		var contrib float64
		var note string
		switch {
		case p.Relationship >= 70 && p.Chemistry < 50:
			contrib = 2 * gap
			note = fmt.Sprintf("Maintains %.0f%% relationship quality despite %.0f%% natural chemistry", p.Relationship, p.Chemistry)
		case p.Relationship >= 60 && p.Chemistry < 60:
			contrib = gap
			note = "Good working relationship despite personality differences"
		default:
			continue
		}
		bonus += contrib
		evidence = append(evidence, FlexibilityEvidence{
			CollaboratorID: p.CollaboratorID,
			Chemistry:      p.Chemistry,
			Relationship:   p.Relationship,
			Contribution:   contrib,
			Note:           note,
		})
	}

	bonus = math.Min(bonus, flexibilityBonusCap)
	score := math.Min(flexibilityBase+bonus, 100)
	rating := flexibilityRating(score)
	return FlexibilityResult{
		Score:       score,
		Bonus:       bonus,
		Rating:      rating,
		Description: ratingDescriptions[rating],
		Evidence:    evidence,
	}, nil
}

func flexibilityRating(score float64) string {
	switch {
	case score >= 85:
		return RatingExceptional
	case score >= 70:
		return RatingHigh
	case score >= 55:
		return RatingAverage
	default:
		return RatingDeveloping
	}
}
