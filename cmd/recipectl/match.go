package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/recipelens/backend/internal/usecase"
)

var (
	matchNeeds string
	matchHave  string
)

// matchCmd scores two ingredient lists without calling any API
var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Score a recipe's ingredient list against yours, offline",
	Example: `  recipectl match --needs "chicken, onion, garlic, salt" --have "chicken, salt"
  recipectl match --needs "rice, water" --have "rice" --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		needs := usecase.SplitIngredients(matchNeeds)
		if len(needs) == 0 {
			return fmt.Errorf("--needs must list at least one ingredient")
		}
		have := usecase.SplitIngredients(matchHave)

		analysis := usecase.NewAnalyzer(nil).Analyze(cmd.Context(), needs, have, nil, 0)

		if jsonOutput {
			return printJSON(cmd.OutOrStdout(), analysis)
		}
		printAnalysis(cmd.OutOrStdout(), analysis, false)
		return nil
	},
}

func init() {
	matchCmd.Flags().StringVar(&matchNeeds, "needs", "", "Comma-separated recipe ingredients")
	matchCmd.Flags().StringVar(&matchHave, "have", "", "Comma-separated ingredients you have")
	rootCmd.AddCommand(matchCmd)
}
