package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/recipelens/backend/config"
	"github.com/recipelens/backend/internal/app"
	"github.com/recipelens/backend/internal/usecase"
)

var (
	analyzeRecipe string
	analyzeHave   string
	analyzeLimit  int
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Fetch a recipe by title and analyse it against your ingredients",
	Example: `  recipectl analyze --recipe "Chicken Curry" --have "chicken, onion, salt"
  recipectl analyze --recipe "Pad Thai" --have "rice noodles, egg" --limit 5 --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		service, err := newService(cmd, func(cfg *config.Config) {
			if analyzeLimit > 0 {
				cfg.Matching.AnalyzeSubstitutionLimit = analyzeLimit
			}
		})
		if err != nil {
			return err
		}

		result, err := service.AnalyzeRecipe(cmd.Context(), &usecase.AnalyzeRequest{
			RecipeName:  analyzeRecipe,
			Ingredients: usecase.SplitIngredients(analyzeHave),
		})
		if err != nil {
			return err
		}

		if jsonOutput {
			return printJSON(cmd.OutOrStdout(), result)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Recipe: %s (%s)\n", result.RecipeTitle, result.RecipeID)
		printAnalysis(cmd.OutOrStdout(), result.Analysis, true)
		return nil
	},
}

var (
	searchName  string
	searchCount int
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "List recipes whose title matches a name",
	RunE: func(cmd *cobra.Command, args []string) error {
		service, err := newService(cmd, nil)
		if err != nil {
			return err
		}

		results, err := service.SearchRecipes(cmd.Context(), &usecase.SearchRequest{
			RecipeName: searchName,
			NumRecipes: searchCount,
		})
		if err != nil {
			return err
		}

		if jsonOutput {
			return printJSON(cmd.OutOrStdout(), results)
		}
		for _, r := range results {
			fmt.Fprintf(cmd.OutOrStdout(), "%-40s %5.0f  %s  %s  %.0f kcal\n",
				r.Name, r.MatchScore, r.Cuisine, r.Time, r.Nutrition.Calories)
		}
		return nil
	},
}

// newService loads configuration, applies overrides and wires a recipe service
func newService(cmd *cobra.Command, override func(*config.Config)) (*usecase.RecipeService, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	if !cfg.RecipeDB.Configured() {
		return nil, fmt.Errorf("recipe database not configured (set RECIPELENS_RECIPEDB_API_KEY)")
	}
	if override != nil {
		override(cfg)
	}

	logger, err := newLogger(cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}
	return app.NewRecipeService(cfg, nil, logger), nil
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeRecipe, "recipe", "", "Recipe title to look up")
	analyzeCmd.Flags().StringVar(&analyzeHave, "have", "", "Comma-separated ingredients you have")
	analyzeCmd.Flags().IntVar(&analyzeLimit, "limit", 0, "Missing ingredients to find substitutes for")
	_ = analyzeCmd.MarkFlagRequired("recipe")
	rootCmd.AddCommand(analyzeCmd)

	searchCmd.Flags().StringVar(&searchName, "name", "", "Recipe title to search for")
	searchCmd.Flags().IntVarP(&searchCount, "count", "n", 5, "Number of recipes to list")
	_ = searchCmd.MarkFlagRequired("name")
	rootCmd.AddCommand(searchCmd)
}
