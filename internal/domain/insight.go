package domain

import "time"

// Insight es una narrativa generada por el LLM sobre resultados ya calculados.
type Insight struct {
	Kind            string    `json:"kind"`
	Headline        string    `json:"headline"`
	Summary         string    `json:"summary"`
	Recommendations []string  `json:"recommendations,omitempty"`
	GeneratedAt     time.Time `json:"generated_at"`
	Cached          bool      `json:"cached"`
}
