package config

import (
	_ "embed"
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"talent-hub/internal/scoring"
)

//go:embed scoring_profile.yaml
var defaultScoringProfile []byte

// ScoringProfile agrupa las constantes de diseño del motor de scoring.
type ScoringProfile struct {
	Currency        scoring.FXTable              `yaml:"currency"`
	NoiseBands      map[string]float64           `yaml:"noise_bands"`
	WeightTolerance float64                      `yaml:"weight_tolerance"`
	RoleWeights     map[string]scoring.WeightSet `yaml:"role_weights"`
}

// LoadScoringProfile parsea el perfil embebido y, si path no esta vacio, superpone el
// archivo indicado. Secciones ausentes en el archivo conservan el valor embebido.
func LoadScoringProfile(path string) (*ScoringProfile, error) {
	var profile ScoringProfile
	if err := yaml.Unmarshal(defaultScoringProfile, &profile); err != nil {
		return nil, fmt.Errorf("parsing embedded scoring profile: %w", err)
	}
	if strings.TrimSpace(path) == "" {
		return &profile, profile.validate()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scoring profile %q: %w", path, err)
	}
	var override ScoringProfile
	if err := yaml.Unmarshal(data, &override); err != nil {
		return nil, fmt.Errorf("parsing scoring profile %q: %w", path, err)
	}
	mergeProfile(&profile, &override)
	return &profile, profile.validate()
}

func mergeProfile(dst, src *ScoringProfile) {
	if src.Currency.Base != "" {
		dst.Currency = src.Currency
	}
	for k, v := range src.NoiseBands {
		dst.NoiseBands[k] = v
	}
	if src.WeightTolerance > 0 {
		dst.WeightTolerance = src.WeightTolerance
	}
	for role, w := range src.RoleWeights {
		dst.RoleWeights[role] = w
	}
}

func (p *ScoringProfile) validate() error {
	if len(p.Currency.Rates) == 0 {
		return errors.New("scoring profile: currency rates are empty")
	}
	for _, loc := range p.Currency.Locations {
		if loc.CostAdjustment < 0 || math.IsNaN(loc.CostAdjustment) || math.IsInf(loc.CostAdjustment, 0) {
			return fmt.Errorf("scoring profile: invalid cost adjustment %v for %s", loc.CostAdjustment, loc.Name)
		}
	}
	for name, band := range p.NoiseBands {
		if band < 0 {
			return fmt.Errorf("scoring profile: negative noise band for %s", name)
		}
	}
	return nil
}
