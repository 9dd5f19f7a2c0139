package scoring

import (
	"errors"
	"testing"
)

func behavioral(t *testing.T, p BehavioralProfile) TraitVector {
	t.Helper()
	v, err := p.Vector()
	if err != nil {
		t.Fatalf("vector: %v", err)
	}
	return v
}

func TestCompareSelfIsFullyAligned(t *testing.T) {
	v := behavioral(t, BehavioralProfile{Assertiveness: 72, Sociability: 40, Pace: 55, RuleOrientation: 61})

	got, err := NewComparator(nil).Compare(v, v)
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	if got.Score != 100 {
		t.Fatalf("expected 100, got %v", got.Score)
	}
	for _, d := range got.Traits {
		if d.Delta != 0 || d.Status != StatusAligned {
			t.Fatalf("expected aligned zero delta, got %+v", d)
		}
	}
}

func TestCompareStatuses(t *testing.T) {
	a := behavioral(t, BehavioralProfile{Assertiveness: 60, Sociability: 40, Pace: 55, RuleOrientation: 50})
	b := behavioral(t, BehavioralProfile{Assertiveness: 50, Sociability: 50, Pace: 50, RuleOrientation: 50})

	got, err := NewComparator(nil).Compare(a, b)
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	want := map[string]string{
		TraitAssertiveness:   StatusAbove,
		TraitSociability:     StatusBelow,
		TraitPace:            StatusAligned,
		TraitRuleOrientation: StatusAligned,
	}
	for trait, status := range want {
		if s, _ := got.Status(trait); s != status {
			t.Fatalf("%s: expected %s, got %s", trait, status, s)
		}
	}
	// mean |delta| = (10+10+5+0)/4
	if got.Score != 93.75 {
		t.Fatalf("expected 93.75, got %v", got.Score)
	}
}

func TestCompareUsesScaleBand(t *testing.T) {
	a, err := NewTraitVector(CognitiveScale, Trait{Name: "gia", Value: 108})
	if err != nil {
		t.Fatalf("vector: %v", err)
	}
	b, err := NewTraitVector(CognitiveScale, Trait{Name: "gia", Value: 100})
	if err != nil {
		t.Fatalf("vector: %v", err)
	}

	got, err := NewComparator(nil).Compare(a, b)
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	if got.Traits[0].Status != StatusAligned || got.NoiseBand != 10 {
		t.Fatalf("expected aligned within cognitive band, got %+v", got)
	}

	got, err = NewComparator(map[string]float64{"cognitive": 5}).Compare(a, b)
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	if got.Traits[0].Status != StatusAbove {
		t.Fatalf("expected above with configured band, got %s", got.Traits[0].Status)
	}

	got, err = NewComparator(nil).CompareWithBand(a, b, 8)
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	if got.Traits[0].Status != StatusAligned {
		t.Fatalf("delta equal to band must be aligned, got %s", got.Traits[0].Status)
	}
}

func TestCompareScoreClampedAtZero(t *testing.T) {
	a, _ := NewTraitVector(CognitiveScale, Trait{Name: "gia", Value: 200})
	b, _ := NewTraitVector(CognitiveScale, Trait{Name: "gia", Value: 0})
	got, err := NewComparator(nil).Compare(a, b)
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	if got.Score != 0 {
		t.Fatalf("expected clamp to 0, got %v", got.Score)
	}
}

func TestCompareErrors(t *testing.T) {
	c := NewComparator(nil)
	beh := behavioral(t, BehavioralProfile{Assertiveness: 50, Sociability: 50, Pace: 50, RuleOrientation: 50})
	cog, _ := NewTraitVector(CognitiveScale, Trait{Name: "gia", Value: 100})
	empty, _ := NewTraitVector(BehavioralScale)
	x, _ := NewTraitVector(BehavioralScale, Trait{Name: "x", Value: 1})
	y, _ := NewTraitVector(BehavioralScale, Trait{Name: "y", Value: 1})

	if _, err := c.Compare(beh, cog); !errors.Is(err, ErrMismatchedTraitVectors) {
		t.Fatalf("expected scale mismatch, got %v", err)
	}
	if _, err := c.Compare(empty, empty); !errors.Is(err, ErrEmptyTraitVector) {
		t.Fatalf("expected empty vector error, got %v", err)
	}
	if _, err := c.Compare(x, y); !errors.Is(err, ErrMismatchedTraitVectors) {
		t.Fatalf("expected name mismatch, got %v", err)
	}
	if _, err := c.Compare(beh, x); !errors.Is(err, ErrMismatchedTraitVectors) {
		t.Fatalf("expected length mismatch, got %v", err)
	}
}
