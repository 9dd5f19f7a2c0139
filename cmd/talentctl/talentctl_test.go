package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"talent-hub/internal/scoring"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestConvertCmd(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		wantDisplay string
		wantErr     bool
	}{
		{name: "fx", args: []string{"convert", "--amount", "60000", "--from", "GBP", "--to", "usd"}, wantDisplay: "$76,000"},
		{name: "localize", args: []string{"convert", "--amount", "60000", "--location", "Stockholm"}, wantDisplay: "855,000 SEK"},
		{name: "unknown currency", args: []string{"convert", "--amount", "1", "--from", "XYZ", "--to", "GBP"}, wantErr: true},
		{name: "missing target", args: []string{"convert", "--amount", "1", "--from", "GBP"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCmd(t, tt.args...)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got output %s", out)
				}
				return
			}
			if err != nil {
				t.Fatalf("convert: %v", err)
			}
			var body struct {
				Display string `json:"display"`
			}
			if err := json.Unmarshal([]byte(out), &body); err != nil {
				t.Fatalf("decode %q: %v", out, err)
			}
			if body.Display != tt.wantDisplay {
				t.Fatalf("expected %q, got %q", tt.wantDisplay, body.Display)
			}
		})
	}
}

func TestConvertCmdWithFallback(t *testing.T) {
	if _, err := runCmd(t, "convert", "--fx-fallback", "--amount", "1", "--from", "XYZ", "--to", "GBP"); err != nil {
		t.Fatalf("fallback policy must resolve unknown codes: %v", err)
	}
}

func TestChemistryCmd(t *testing.T) {
	out, err := runCmd(t, "chemistry", "--a", "80,50,50,50", "--b", "75, 55, 50, 50")
	if err != nil {
		t.Fatalf("chemistry: %v", err)
	}
	var res scoring.ChemistryResult
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.Rule != 1 || res.Risk != scoring.RiskMedium {
		t.Fatalf("expected rule 1 medium, got %+v", res)
	}

	for _, bad := range []string{"1,2,3", "a,b,c,d", "101,50,50,50"} {
		if _, err := runCmd(t, "chemistry", "--a", bad, "--b", "50,50,50,50"); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestChurnCmdVelocityOptional(t *testing.T) {
	out, err := runCmd(t, "churn", "--morale", "50", "--tenure", "6", "--sentiment", "0.8")
	if err != nil {
		t.Fatalf("churn: %v", err)
	}
	var res scoring.ChurnAssessment
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.Tier != scoring.ChurnHigh || res.Indicators != 3 {
		t.Fatalf("expected High/3 without velocity, got %+v", res)
	}

	out, err = runCmd(t, "churn", "--morale", "50", "--tenure", "6", "--sentiment", "0.8", "--velocity", "10")
	if err != nil {
		t.Fatalf("churn: %v", err)
	}
	if !strings.Contains(out, scoring.FactorLowVelocity) {
		t.Fatalf("expected low_velocity factor, got %s", out)
	}
}

func TestFixturesCmdIsDeterministic(t *testing.T) {
	first, err := runCmd(t, "fixtures", "--seed", "7", "--count", "6", "--concurrency", "3")
	if err != nil {
		t.Fatalf("fixtures: %v", err)
	}
	second, err := runCmd(t, "fixtures", "--seed", "7", "--count", "6", "--concurrency", "1")
	if err != nil {
		t.Fatalf("fixtures: %v", err)
	}
	if first != second {
		t.Fatalf("same seed must produce identical output")
	}

	var body struct {
		Reference string `json:"reference"`
		Report    struct {
			Results  []json.RawMessage `json:"results"`
			Failures []json.RawMessage `json:"failures"`
		} `json:"report"`
	}
	if err := json.Unmarshal([]byte(first), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Reference != "E001" || len(body.Report.Results) != 6 || len(body.Report.Failures) != 0 {
		t.Fatalf("unexpected fixture report: ref=%s results=%d failures=%d", body.Reference, len(body.Report.Results), len(body.Report.Failures))
	}

	if _, err := runCmd(t, "fixtures", "--count", "1"); err == nil {
		t.Fatalf("expected error for count < 2")
	}
	if _, err := runCmd(t, "fixtures", "--role-type", "Astronaut"); err == nil {
		t.Fatalf("expected error for unknown role type")
	}
}
