package scoring

import (
	"context"
	"errors"
	"testing"
)

func TestRunBatchReportsFailuresAndContinues(t *testing.T) {
	items := []BatchItem[ChurnSignals]{
		{ID: "E1", Subject: ChurnSignals{Morale: 90, TenureMonths: 40, Sentiment: 0.9}},
		{ID: "E2", Subject: ChurnSignals{Morale: -1}},
		{ID: "E3", Subject: ChurnSignals{Morale: 40, TenureMonths: 3, Sentiment: 0.2}},
	}
	classifier := NewChurnClassifier()

	report, err := RunBatch(context.Background(), items, 2, func(_ context.Context, s ChurnSignals) (ChurnAssessment, error) {
		if s.Morale < 0 {
			return ChurnAssessment{}, ErrInsufficientData
		}
		return classifier.Classify(s), nil
	})
	if err != nil {
		t.Fatalf("run batch: %v", err)
	}
	if len(report.Results) != 2 || report.Results[0].ID != "E1" || report.Results[1].ID != "E3" {
		t.Fatalf("unexpected results: %+v", report.Results)
	}
	if report.Results[1].Result.Tier != ChurnHigh {
		t.Fatalf("expected E3 high, got %s", report.Results[1].Result.Tier)
	}
	if len(report.Failures) != 1 || report.Failures[0].ID != "E2" {
		t.Fatalf("expected E2 failure, got %+v", report.Failures)
	}
}

func TestRunBatchCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	items := []BatchItem[int]{{ID: "a", Subject: 1}}
	_, err := RunBatch(ctx, items, 1, func(context.Context, int) (int, error) { return 1, nil })
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
