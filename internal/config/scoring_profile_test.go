package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadScoringProfileEmbedded(t *testing.T) {
	p, err := LoadScoringProfile("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if p.Currency.Base != "GBP" || p.Currency.Rates["SEK"] != 13.20 {
		t.Fatalf("unexpected currency table: %+v", p.Currency)
	}
	if len(p.Currency.Locations) != 11 {
		t.Fatalf("expected 11 locations, got %d", len(p.Currency.Locations))
	}
	if p.NoiseBands["cognitive"] != 10 || p.NoiseBands["behavioral"] != 5 {
		t.Fatalf("unexpected noise bands: %v", p.NoiseBands)
	}
	if w := p.RoleWeights["Software Engineer"]; w["coding"] != 0.35 {
		t.Fatalf("unexpected software engineer weights: %v", w)
	}
	if len(p.RoleWeights) != 5 {
		t.Fatalf("expected 5 role types, got %d", len(p.RoleWeights))
	}
}

func TestLoadScoringProfileOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profile.yaml")
	body := "noise_bands:\n  cognitive: 12\nrole_weights:\n  Designer: { ppa: 0.5, gia: 0.5 }\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	p, err := LoadScoringProfile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if p.NoiseBands["cognitive"] != 12 || p.NoiseBands["behavioral"] != 5 {
		t.Fatalf("override not merged: %v", p.NoiseBands)
	}
	if _, ok := p.RoleWeights["Designer"]; !ok {
		t.Fatalf("expected Designer weights")
	}
	if p.Currency.Base != "GBP" {
		t.Fatalf("embedded currency table lost")
	}
}

func TestLoadScoringProfileMissingFile(t *testing.T) {
	if _, err := LoadScoringProfile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestLoadScoringProfileRejectsInvalidValues(t *testing.T) {
	currency := func(adjustment string) string {
		return "currency:\n  base: GBP\n  rates: { GBP: 1.0 }\n  locations:\n" +
			"    - { name: Leeds, country: UK, currency: GBP, cost_adjustment: " + adjustment + " }\n"
	}
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{name: "negative cost adjustment", body: currency("-0.5"), wantErr: true},
		{name: "nan cost adjustment", body: currency(".nan"), wantErr: true},
		{name: "infinite cost adjustment", body: currency(".inf"), wantErr: true},
		{name: "negative noise band", body: "noise_bands:\n  behavioral: -1\n", wantErr: true},
		{name: "omitted cost adjustment", body: "currency:\n  base: GBP\n  rates: { GBP: 1.0 }\n  locations:\n    - { name: Leeds, country: UK, currency: GBP }\n"},
		{name: "positive cost adjustment", body: currency("1.05")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "profile.yaml")
			if err := os.WriteFile(path, []byte(tt.body), 0o600); err != nil {
				t.Fatalf("write: %v", err)
			}
			_, err := LoadScoringProfile(path)
			if tt.wantErr && err == nil {
				t.Fatalf("expected error")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
