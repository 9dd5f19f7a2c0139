package scoring

import "fmt"

// RiskTier es el nivel cualitativo de riesgo de una pareja.
type RiskTier string

const (
	RiskLow    RiskTier = "low"
	RiskMedium RiskTier = "medium"
	RiskHigh   RiskTier = "high"
)

// Textos de guia. Se exponen tal cual al cliente; no cambiar sin revisar el dashboard.
const (
	GuidanceBothAssertive   = "High-D pairing benefits from pre-agreed decision domains. Schedule brief daily syncs to prevent parallel work."
	GuidanceBothDeferential = "Consider rotating facilitator roles in meetings. Both may defer; assign explicit ownership per project."
	GuidanceSociabilityGap  = "Align on communication preferences early: one may want bullet points, the other context. Use shared templates."
	GuidancePaceGap         = "Build in buffer time for the high-S partner when introducing changes. Frame urgency with rationale."
	GuidanceStrongFit       = "Natural working rhythm aligns well. Leverage this for high-stakes projects requiring close collaboration."
	GuidanceComplementary   = "Complementary profiles. Establish explicit feedback loops to catch misunderstandings early."
	GuidanceFacilitate      = "Assign a neutral facilitator for key discussions. Document agreements in writing."
)

// ChemistryBreakdown son los cuatro sub-componentes, todos 0-100.
type ChemistryBreakdown struct {
	SociabilityAlignment    int `json:"sociability_alignment"`
	AssertivenessComplement int `json:"assertiveness_complement"`
	PaceAlignment           int `json:"pace_alignment"`
	RuleOrientationBalance  int `json:"rule_orientation_balance"`
}

type ChemistryResult struct {
	Score     int                `json:"score"`
	Breakdown ChemistryBreakdown `json:"breakdown"`
	Risk      RiskTier           `json:"risk"`
	Guidance  string             `json:"guidance"`
	// Rule es la regla (1-7) que decidio el riesgo.
	Rule int `json:"rule"`
}

// ChemistryModel no guarda estado; el valor cero esta listo para usar.
type ChemistryModel struct{}

func NewChemistryModel() ChemistryModel { return ChemistryModel{} }

// Chemistry rechaza con ErrInvalidTraitRange cualquier rasgo fuera de 0-100; nunca recorta.
func (ChemistryModel) Chemistry(a, b BehavioralProfile) (ChemistryResult, error) {
	if err := a.Validate(); err != nil {
		return ChemistryResult{}, fmt.Errorf("first profile: %w", err)
	}
	if err := b.Validate(); err != nil {
		return ChemistryResult{}, fmt.Errorf("second profile: %w", err)
	}

	bd := ChemistryBreakdown{
		SociabilityAlignment:    100 - absInt(a.Sociability-b.Sociability),
		AssertivenessComplement: 50 + minInt(absInt(a.Assertiveness-b.Assertiveness), 50),
		PaceAlignment:           100 - absInt(a.Pace-b.Pace),
		RuleOrientationBalance:  100 - absInt(a.RuleOrientation-b.RuleOrientation),
	}

	// Pesos .30/.25/.25/.20 en enteros para truncar sin error de coma flotante.
	score := (30*bd.SociabilityAlignment +
		25*bd.AssertivenessComplement +
		25*bd.PaceAlignment +
		20*bd.RuleOrientationBalance) / 100

	risk, guidance, rule := classifyPair(a, b, score)
	return ChemistryResult{
		Score:     score,
		Breakdown: bd,
		Risk:      risk,
		Guidance:  guidance,
		Rule:      rule,
	}, nil
}

// classifyPair aplica las reglas en orden; la primera que coincide gana.
func classifyPair(a, b BehavioralProfile, score int) (RiskTier, string, int) {
	switch {
	case a.Assertiveness > 70 && b.Assertiveness > 70:
		return RiskMedium, GuidanceBothAssertive, 1
	case a.Assertiveness < 30 && b.Assertiveness < 30:
		return RiskMedium, GuidanceBothDeferential, 2
	case absInt(a.Sociability-b.Sociability) > 40:
		return RiskMedium, GuidanceSociabilityGap, 3
	case (a.Pace > 70 && b.Pace < 30) || (b.Pace > 70 && a.Pace < 30):
		return RiskMedium, GuidancePaceGap, 4
	case score >= 75:
		return RiskLow, GuidanceStrongFit, 5
	case score >= 55:
		return RiskLow, GuidanceComplementary, 6
	default:
		return RiskHigh, GuidanceFacilitate, 7
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
