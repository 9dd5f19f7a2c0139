package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"talent-hub/internal/config"
	"talent-hub/internal/service"
)

type rootOptions struct {
	profilePath     string
	fallbackUnknown bool
	verbose         bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "talentctl",
		Short:         "Offline talent scoring tool",
		Long:          "talentctl runs the deterministic scoring engine locally: currency conversion, behavioral chemistry, churn classification and seeded fixture batches.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&opts.profilePath, "profile", os.Getenv("SCORING_PROFILE_PATH"), "Path to a scoring profile YAML overriding the embedded one")
	cmd.PersistentFlags().BoolVar(&opts.fallbackUnknown, "fx-fallback", false, "Resolve unknown currencies to the base rate instead of failing")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log to stderr")

	cmd.AddCommand(
		newConvertCmd(opts),
		newChemistryCmd(opts),
		newChurnCmd(opts),
		newFixturesCmd(opts),
	)
	return cmd
}

func (o *rootOptions) logger() *zap.Logger {
	if !o.verbose {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func (o *rootOptions) engine() (*service.ScoringEngine, error) {
	profile, err := config.LoadScoringProfile(o.profilePath)
	if err != nil {
		return nil, err
	}
	return service.NewScoringEngine(profile, o.fallbackUnknown, o.logger())
}

func writeJSON(w io.Writer, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}
