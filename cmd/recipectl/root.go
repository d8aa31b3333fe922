package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/recipelens/backend/internal/domain"
	"github.com/recipelens/backend/internal/infrastructure/monitoring"
)

var (
	jsonOutput bool
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:           "recipectl",
	Short:         "recipectl scores recipes against the ingredients you have",
	Long:          "recipectl matches recipes from the Foodoscope recipe database against a pantry, explains the tradeoff and suggests substitutes for what is missing.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Print results as JSON")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log requests to stderr")
}

// newLogger returns a no-op logger unless --verbose is set
func newLogger(w io.Writer) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}
	return monitoring.NewLogger(monitoring.LogConfig{
		Level:       "debug",
		Format:      "console",
		Development: true,
		Output:      zapcore.AddSync(w),
	})
}

func printJSON(w io.Writer, v interface{}) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	fmt.Fprintln(w, string(b))
	return nil
}

func printAnalysis(w io.Writer, a *domain.Analysis, withSubstitutions bool) {
	fmt.Fprintf(w, "Match: %.2f%%\n", a.MatchPercent)
	fmt.Fprintf(w, "Confidence: %.2f%%\n", a.Confidence)
	fmt.Fprintf(w, "Tier: %s\n", a.Tier)
	fmt.Fprintf(w, "Matched: %s\n", joinOrNone(a.Matched))
	fmt.Fprintf(w, "Missing: %s\n", joinOrNone(a.Missing))
	if withSubstitutions {
		for _, sub := range a.Substitutions {
			if sub.Resolved() {
				fmt.Fprintf(w, "  %s -> %s (%s, %d%%)\n", sub.Original, sub.Substitute, sub.Role, sub.ConfidenceScore)
			} else {
				fmt.Fprintf(w, "  %s -> %s\n", sub.Original, sub.Substitute)
			}
		}
	}
	fmt.Fprintln(w, a.Explanation)
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	return strings.Join(items, ", ")
}
