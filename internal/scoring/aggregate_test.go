package scoring

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

func TestAggregateExample(t *testing.T) {
	a := NewAggregator(0)
	got := a.Aggregate(map[string]float64{"coding": 0.8, "ppa": 0.6}, WeightSet{"coding": 0.5, "ppa": 0.5})
	if got != 70.0 {
		t.Fatalf("expected 70.0, got %v", got)
	}
}

func TestAggregateIsLinearInEachScore(t *testing.T) {
	a := NewAggregator(0)
	weights := WeightSet{"coding": 0.35, "technical": 0.25, "ppa": 0.15, "gia": 0.15, "hpti": 0.10}
	scores := map[string]float64{"coding": 0.3, "technical": 0.7, "ppa": 0.6, "gia": 0.5, "hpti": 0.4}

	base := a.Aggregate(scores, weights)
	scores["coding"] = 0.6
	doubled := a.Aggregate(scores, weights)

	want := 100 * 0.35 * 0.3
	if math.Abs((doubled-base)-want) > 1e-9 {
		t.Fatalf("expected change %v, got %v", want, doubled-base)
	}
}

func TestEvaluateReportsAdvisories(t *testing.T) {
	a := NewAggregator(0)
	res, err := a.Evaluate(
		map[string]float64{"coding": 1, "gia": 0.5, "hpti": 0.5},
		WeightSet{"coding": 0.5, "gia": 0.2},
	)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if res.Score != 60 {
		t.Fatalf("expected 60, got %v", res.Score)
	}
	if !reflect.DeepEqual(res.MissingWeights, []string{"hpti"}) {
		t.Fatalf("expected hpti missing, got %v", res.MissingWeights)
	}
	if res.WeightsNormalized {
		t.Fatalf("0.7 weight sum must not be normalized")
	}
	if res.Warning() == "" {
		t.Fatalf("expected warning text")
	}
	if len(res.Contributions) != 3 || res.Contributions[0].Name != "coding" {
		t.Fatalf("expected contributions in key order, got %+v", res.Contributions)
	}
}

func TestEvaluateToleranceAndRange(t *testing.T) {
	a := NewAggregator(0)
	res, err := a.Evaluate(map[string]float64{"x": 0.5}, WeightSet{"x": 0.995})
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if !res.WeightsNormalized || res.Warning() != "" {
		t.Fatalf("0.995 is within tolerance")
	}

	if _, err := a.Evaluate(map[string]float64{"x": 1.2}, WeightSet{"x": 1}); !errors.Is(err, ErrScoreOutOfRange) {
		t.Fatalf("expected ErrScoreOutOfRange, got %v", err)
	}
	if _, err := a.Evaluate(map[string]float64{"x": math.NaN()}, WeightSet{"x": 1}); !errors.Is(err, ErrScoreOutOfRange) {
		t.Fatalf("expected ErrScoreOutOfRange for NaN, got %v", err)
	}
}

func TestWeightSetMergeDoesNotMutate(t *testing.T) {
	base := WeightSet{"coding": 0.35, "ppa": 0.15}
	merged := base.Merge(WeightSet{"ppa": 0.25})
	if base["ppa"] != 0.15 {
		t.Fatalf("base mutated")
	}
	if merged["ppa"] != 0.25 || merged["coding"] != 0.35 {
		t.Fatalf("unexpected merge: %v", merged)
	}
}
