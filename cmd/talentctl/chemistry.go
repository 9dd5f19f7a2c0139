package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"talent-hub/internal/scoring"
)

func newChemistryCmd(root *rootOptions) *cobra.Command {
	var a, b string
	cmd := &cobra.Command{
		Use:   "chemistry",
		Short: "Predict working chemistry between two behavioral profiles",
		Long:  "Profiles are given as assertiveness,sociability,pace,rule_orientation (0-100), e.g. --a 80,50,50,50.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			pa, err := parseBehavioral(a)
			if err != nil {
				return fmt.Errorf("--a: %w", err)
			}
			pb, err := parseBehavioral(b)
			if err != nil {
				return fmt.Errorf("--b: %w", err)
			}
			engine, err := root.engine()
			if err != nil {
				return err
			}
			res, err := engine.Chemistry.Chemistry(pa, pb)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), res)
		},
	}
	cmd.Flags().StringVar(&a, "a", "", "First profile (required)")
	cmd.Flags().StringVar(&b, "b", "", "Second profile (required)")
	for _, name := range []string{"a", "b"} {
		if err := cmd.MarkFlagRequired(name); err != nil {
			panic(fmt.Sprintf("failed to mark %s flag as required: %v", name, err))
		}
	}
	return cmd
}

func parseBehavioral(s string) (scoring.BehavioralProfile, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return scoring.BehavioralProfile{}, fmt.Errorf("expected 4 comma-separated values, got %d", len(parts))
	}
	vals := make([]int, 4)
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return scoring.BehavioralProfile{}, fmt.Errorf("value %q: %w", p, err)
		}
		vals[i] = v
	}
	profile := scoring.BehavioralProfile{Assertiveness: vals[0], Sociability: vals[1], Pace: vals[2], RuleOrientation: vals[3]}
	if err := profile.Validate(); err != nil {
		return scoring.BehavioralProfile{}, err
	}
	return profile, nil
}
