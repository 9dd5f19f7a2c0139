package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"talent-hub/internal/scoring"
)

func newConvertCmd(root *rootOptions) *cobra.Command {
	var (
		amount   float64
		from     string
		to       string
		location string
	)
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert an amount between currencies or localize a base salary",
		Long:  "Converts --amount from --from to --to using the fixed FX table. With --location the amount is treated as base currency and localized (FX plus cost-of-living adjustment).",
		RunE: func(cmd *cobra.Command, _ []string) error {
			engine, err := root.engine()
			if err != nil {
				return err
			}

			var res scoring.MoneyAmount
			if location != "" {
				res, err = engine.Currency.Localize(amount, location)
			} else {
				if from == "" || to == "" {
					return fmt.Errorf("--from and --to are required without --location")
				}
				res, err = engine.Currency.ConvertMoney(scoring.MoneyAmount{Value: amount, Currency: from}, to)
			}
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), map[string]any{
				"result":  res,
				"display": engine.Currency.Format(scoring.MoneyAmount{Value: scoring.RoundDisplay(res.Value), Currency: res.Currency}),
			})
		},
	}
	cmd.Flags().Float64Var(&amount, "amount", 0, "Amount to convert")
	cmd.Flags().StringVar(&from, "from", "", "Source currency code")
	cmd.Flags().StringVar(&to, "to", "", "Target currency code")
	cmd.Flags().StringVar(&location, "location", "", "Localize a base-currency amount to this location")
	if err := cmd.MarkFlagRequired("amount"); err != nil {
		panic(fmt.Sprintf("failed to mark amount flag as required: %v", err))
	}
	return cmd
}
