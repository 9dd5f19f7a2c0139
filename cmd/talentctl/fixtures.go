package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"talent-hub/internal/fixtures"
	"talent-hub/internal/scoring"
	"talent-hub/internal/service"
)

// fixtureScore es el resultado de pasar un sujeto sintetico por todos los scorers.
type fixtureScore struct {
	Dominant    string                    `json:"dominant_trait"`
	Match       float64                   `json:"match_to_reference"`
	Chemistry   scoring.ChemistryResult   `json:"chemistry_with_reference"`
	Flexibility scoring.FlexibilityResult `json:"flexibility"`
	Churn       scoring.ChurnAssessment   `json:"churn"`
	Composite   scoring.AggregateResult   `json:"composite"`
}

type fixtureSubject struct {
	fixtures.Subject
	Relationship float64
}

func newFixturesCmd(root *rootOptions) *cobra.Command {
	var (
		seed        uint64
		count       int
		concurrency int
		roleType    string
	)
	cmd := &cobra.Command{
		Use:   "fixtures",
		Short: "Generate a seeded fixture batch and score every subject",
		Long:  "Generates --count synthetic employees from --seed and scores each one against the first (reference) subject. Same seed, same output.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if count < 2 {
				return fmt.Errorf("--count must be at least 2")
			}
			engine, err := root.engine()
			if err != nil {
				return err
			}
			weights, ok := engine.DefaultWeights(roleType)
			if !ok {
				return fmt.Errorf("unknown role type %q", roleType)
			}

			gen := fixtures.NewGenerator(fixtures.NewSeededSource(seed))
			subjects := gen.Subjects("E", count)
			items := make([]scoring.BatchItem[fixtureSubject], 0, len(subjects))
			for _, s := range subjects {
				items = append(items, scoring.BatchItem[fixtureSubject]{
					ID:      s.ID,
					Subject: fixtureSubject{Subject: s, Relationship: gen.RelationshipQuality()},
				})
			}
			reference := subjects[0]

			report, err := scoring.RunBatch(cmd.Context(), items, concurrency, func(_ context.Context, s fixtureSubject) (fixtureScore, error) {
				return scoreFixture(engine, reference, s, weights)
			})
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), map[string]any{
				"seed":      seed,
				"role_type": roleType,
				"reference": reference.ID,
				"report":    report,
			})
		},
	}
	cmd.Flags().Uint64Var(&seed, "seed", 42, "Random seed")
	cmd.Flags().IntVar(&count, "count", 10, "Number of subjects")
	cmd.Flags().IntVar(&concurrency, "concurrency", 4, "Concurrent scorers")
	cmd.Flags().StringVar(&roleType, "role-type", "Software Engineer", "Role type whose default weights drive the composite score")
	return cmd
}

func scoreFixture(engine *service.ScoringEngine, reference fixtures.Subject, s fixtureSubject, weights scoring.WeightSet) (fixtureScore, error) {
	a, err := s.Behavioral.Vector()
	if err != nil {
		return fixtureScore{}, err
	}
	b, err := reference.Behavioral.Vector()
	if err != nil {
		return fixtureScore{}, err
	}
	match, err := engine.Comparator.Compare(a, b)
	if err != nil {
		return fixtureScore{}, err
	}

	chem, err := engine.Chemistry.Chemistry(s.Behavioral, reference.Behavioral)
	if err != nil {
		return fixtureScore{}, err
	}
	flex, err := engine.Chemistry.Flexibility([]scoring.CollaborationPair{{
		CollaboratorID: reference.ID,
		Chemistry:      float64(chem.Score),
		Relationship:   s.Relationship,
	}})
	if err != nil {
		return fixtureScore{}, err
	}

	composite, err := engine.Aggregator.Evaluate(map[string]float64{
		service.SubScorePPA:  s.Behavioral.Mean() / 100,
		service.SubScoreGIA:  min(float64(s.Cognitive)/130, 1),
		service.SubScoreHPTI: s.Leadership.CoreMean() / 100,
	}, weights)
	if err != nil {
		return fixtureScore{}, err
	}

	return fixtureScore{
		Dominant:    s.Behavioral.DominantTrait(),
		Match:       match.Score,
		Chemistry:   chem,
		Flexibility: flex,
		Churn:       engine.Churn.Classify(s.Churn),
		Composite:   composite,
	}, nil
}
