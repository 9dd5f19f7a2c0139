package scoring

import (
	"errors"
	"testing"
)

func TestNewTraitVectorRejectsOutOfRange(t *testing.T) {
	if _, err := NewTraitVector(BehavioralScale, Trait{Name: "pace", Value: 101}); !errors.Is(err, ErrInvalidTraitRange) {
		t.Fatalf("expected ErrInvalidTraitRange, got %v", err)
	}
	if _, err := NewTraitVector(CognitiveScale, Trait{Name: "gia", Value: 150}); err != nil {
		t.Fatalf("150 is valid on the cognitive scale: %v", err)
	}
	if _, err := NewTraitVector(BehavioralScale, Trait{Name: "a", Value: 1}, Trait{Name: "a", Value: 2}); !errors.Is(err, ErrMismatchedTraitVectors) {
		t.Fatalf("expected duplicate rejection, got %v", err)
	}
}

func TestBehavioralProfileValidate(t *testing.T) {
	if err := (BehavioralProfile{Assertiveness: -1}).Validate(); !errors.Is(err, ErrInvalidTraitRange) {
		t.Fatalf("expected ErrInvalidTraitRange, got %v", err)
	}
	if err := (BehavioralProfile{Assertiveness: 100, Sociability: 0, Pace: 50, RuleOrientation: 50}).Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRescaleCognitiveToBehavioral(t *testing.T) {
	v, err := NewTraitVector(CognitiveScale, Trait{Name: "gia", Value: 100})
	if err != nil {
		t.Fatalf("vector: %v", err)
	}
	out, err := v.Rescale(BehavioralScale)
	if err != nil {
		t.Fatalf("rescale: %v", err)
	}
	got, _ := out.Value("gia")
	if got != 50 || out.Scale().Name != "behavioral" {
		t.Fatalf("expected 50 on behavioral scale, got %v on %s", got, out.Scale().Name)
	}
}

func TestDominantTrait(t *testing.T) {
	tests := []struct {
		p    BehavioralProfile
		want string
	}{
		{BehavioralProfile{Assertiveness: 80, Sociability: 20, Pace: 30, RuleOrientation: 40}, TraitAssertiveness},
		{BehavioralProfile{Assertiveness: 20, Sociability: 20, Pace: 90, RuleOrientation: 40}, TraitPace},
		{BehavioralProfile{Assertiveness: 60, Sociability: 60, Pace: 10, RuleOrientation: 10}, TraitAssertiveness},
		{BehavioralProfile{Assertiveness: 10, Sociability: 20, Pace: 30, RuleOrientation: 95}, TraitRuleOrientation},
	}
	for _, tt := range tests {
		if got := tt.p.DominantTrait(); got != tt.want {
			t.Fatalf("%+v: expected %s, got %s", tt.p, tt.want, got)
		}
	}
}
