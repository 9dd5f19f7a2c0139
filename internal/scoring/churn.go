package scoring

// ChurnTier es la clasificacion gruesa de riesgo de rotacion.
type ChurnTier string

const (
	ChurnLow    ChurnTier = "Low"
	ChurnMedium ChurnTier = "Medium"
	ChurnHigh   ChurnTier = "High"
)

// ChurnSignals son las senales de un trimestre. Velocity es opcional: nil significa sin dato.
type ChurnSignals struct {
	Morale       float64  `json:"morale"`
	TenureMonths int      `json:"tenure_months"`
	Velocity     *float64 `json:"velocity,omitempty"`
	Sentiment    float64  `json:"sentiment"`
}

type ChurnAssessment struct {
	Tier       ChurnTier `json:"tier"`
	Indicators int       `json:"indicators"`
	// Score = Indicators * 20, el "churn risk score" que muestra el dashboard.
	Score   int      `json:"score"`
	Factors []string `json:"factors"`
}

const (
	FactorLowMorale    = "low_morale"
	FactorShortTenure  = "short_tenure"
	FactorLowVelocity  = "low_velocity"
	FactorLowSentiment = "low_sentiment"
)

type ChurnClassifier struct{}

func NewChurnClassifier() ChurnClassifier { return ChurnClassifier{} }

// Classify es total: nunca falla, incluso sin velocity.
func (ChurnClassifier) Classify(s ChurnSignals) ChurnAssessment {
	indicators := 0
	factors := make([]string, 0, 4)

	if s.Morale < 60 {
		indicators += 2
		factors = append(factors, FactorLowMorale)
	}
	if s.TenureMonths < 12 {
		indicators++
		factors = append(factors, FactorShortTenure)
	}
	if s.Velocity != nil && *s.Velocity < 20 {
		indicators++
		factors = append(factors, FactorLowVelocity)
	}
	if s.Sentiment < 0.5 {
		indicators++
		factors = append(factors, FactorLowSentiment)
	}

	tier := ChurnLow
	switch {
	case indicators >= 3:
		tier = ChurnHigh
	case indicators >= 2:
		tier = ChurnMedium
	}

	return ChurnAssessment{
		Tier:       tier,
		Indicators: indicators,
		Score:      indicators * 20,
		Factors:    factors,
	}
}

// ClassifyTier es la forma corta que solo devuelve el nivel.
func (c ChurnClassifier) ClassifyTier(morale float64, tenureMonths int, velocity *float64, sentiment float64) ChurnTier {
	return c.Classify(ChurnSignals{Morale: morale, TenureMonths: tenureMonths, Velocity: velocity, Sentiment: sentiment}).Tier
}
