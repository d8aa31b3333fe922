package usecase

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/recipelens/backend/internal/domain"
)

// Presentation limits
const (
	maxProcessSteps = 8
	defaultServings = "4"
	processSep      = "||"
)

// defaultProcedure is used when a recipe has neither instructions nor processes
var defaultProcedure = []domain.ProcedureStep{
	{Title: "Prepare Ingredients", Instruction: "Gather and prepare all ingredients.", Tip: "Read the full recipe before starting."},
	{Title: "Cook", Instruction: "Follow the standard cooking method.", Tip: "Taste as you go."},
	{Title: "Serve", Instruction: "Plate and serve hot.", Tip: "Garnish for presentation."},
}

// difficultyFor derives a difficulty label from the total cooking time in minutes
func difficultyFor(totalTime string) string {
	minutes, err := strconv.Atoi(strings.TrimSpace(totalTime))
	if err != nil {
		return "Medium"
	}
	switch {
	case minutes <= 20:
		return "Easy"
	case minutes <= 45:
		return "Medium"
	default:
		return "Hard"
	}
}

// dietFor returns the diet tag of a recipe
func dietFor(recipe *domain.RecipeRecord) string {
	switch {
	case recipe.Vegan:
		return "Vegan"
	case recipe.LactoVegetarian:
		return "Vegetarian"
	default:
		return "Balanced"
	}
}

// overviewFor builds the display summary of a recipe
func overviewFor(recipe *domain.RecipeRecord) domain.RecipeOverview {
	region := recipe.SubRegion
	if region == "" {
		region = recipe.Region
	}
	if region == "" {
		region = "classic"
	}
	continent := recipe.Continent
	if continent == "" {
		continent = "the world"
	}

	cuisine := recipe.Region
	if cuisine == "" {
		cuisine = "International"
	}

	totalTime := recipe.TotalTime
	if totalTime == "" {
		totalTime = "?"
	}

	servings := recipe.Servings
	if servings == "" {
		servings = defaultServings
	}

	return domain.RecipeOverview{
		Name:        recipe.Title,
		Description: fmt.Sprintf("A %s recipe from %s.", region, continent),
		Time:        fmt.Sprintf("%s min", totalTime),
		Servings:    servings,
		Difficulty:  difficultyFor(recipe.TotalTime),
		Diet:        dietFor(recipe),
		Cuisine:     cuisine,
	}
}

// scaleNutrients scales a recipe's nutrients to a serving multiplier,
// rounding calories to whole numbers and macros to one decimal.
func scaleNutrients(n domain.Nutrients, multiplier float64) domain.Nutrients {
	if multiplier <= 0 {
		multiplier = 1
	}
	return domain.Nutrients{
		Calories:      math.Round(n.Calories * multiplier),
		Protein:       round1(n.Protein * multiplier),
		Carbohydrates: round1(n.Carbohydrates * multiplier),
		TotalFat:      round1(n.TotalFat * multiplier),
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// procedureFromInstructions turns provider instructions into numbered steps
func procedureFromInstructions(steps []string) []domain.ProcedureStep {
	procedure := make([]domain.ProcedureStep, 0, len(steps))
	for _, step := range steps {
		step = strings.TrimSpace(step)
		if step == "" {
			continue
		}
		procedure = append(procedure, domain.ProcedureStep{
			Title:       fmt.Sprintf("Step %d", len(procedure)+1),
			Instruction: step,
		})
	}
	return procedure
}

// procedureFromProcesses expands a "||"-separated process list ("boil||fry")
// into generic steps, keeping at most maxProcessSteps.
func procedureFromProcesses(processes string) []domain.ProcedureStep {
	if strings.TrimSpace(processes) == "" {
		return nil
	}

	parts := strings.Split(processes, processSep)
	if len(parts) > maxProcessSteps {
		parts = parts[:maxProcessSteps]
	}

	procedure := make([]domain.ProcedureStep, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		title := capitalize(part)
		procedure = append(procedure, domain.ProcedureStep{
			Title:       title,
			Instruction: fmt.Sprintf("%s the ingredients carefully.", title),
		})
	}
	return procedure
}

// capitalize upper-cases the first letter and lower-cases the rest
func capitalize(s string) string {
	if s == "" {
		return s
	}
	lower := strings.ToLower(s)
	r, size := utf8.DecodeRuneInString(lower)
	return string(unicode.ToUpper(r)) + lower[size:]
}
