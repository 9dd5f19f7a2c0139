package main

import (
	"github.com/spf13/cobra"

	"talent-hub/internal/scoring"
)

func newChurnCmd(root *rootOptions) *cobra.Command {
	var (
		signals  scoring.ChurnSignals
		velocity float64
	)
	cmd := &cobra.Command{
		Use:   "churn",
		Short: "Classify churn risk from quarterly signals",
		Long:  "Velocity is optional: omit --velocity when the team does not track it.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("velocity") {
				signals.Velocity = &velocity
			}
			engine, err := root.engine()
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), engine.Churn.Classify(signals))
		},
	}
	cmd.Flags().Float64Var(&signals.Morale, "morale", 75, "Morale score 0-100")
	cmd.Flags().IntVar(&signals.TenureMonths, "tenure", 24, "Tenure in months")
	cmd.Flags().Float64Var(&velocity, "velocity", 0, "Sprint velocity (optional)")
	cmd.Flags().Float64Var(&signals.Sentiment, "sentiment", 0.7, "Sentiment 0-1")
	return cmd
}
