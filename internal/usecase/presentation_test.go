package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/recipelens/backend/internal/domain"
)

func TestDifficultyFor(t *testing.T) {
	tests := []struct {
		totalTime string
		want      string
	}{
		{"10", "Easy"},
		{"20", "Easy"},
		{"21", "Medium"},
		{"45", "Medium"},
		{"46", "Hard"},
		{" 90 ", "Hard"},
		{"", "Medium"},
		{"about an hour", "Medium"},
	}

	for _, tt := range tests {
		t.Run(tt.totalTime, func(t *testing.T) {
			if got := difficultyFor(tt.totalTime); got != tt.want {
				t.Errorf("difficultyFor(%q) = %q, want %q", tt.totalTime, got, tt.want)
			}
		})
	}
}

func TestDietFor(t *testing.T) {
	assert.Equal(t, "Vegan", dietFor(&domain.RecipeRecord{Vegan: true, LactoVegetarian: true}))
	assert.Equal(t, "Vegetarian", dietFor(&domain.RecipeRecord{LactoVegetarian: true}))
	assert.Equal(t, "Balanced", dietFor(&domain.RecipeRecord{}))
}

func TestOverviewFor(t *testing.T) {
	t.Run("full record", func(t *testing.T) {
		got := overviewFor(&domain.RecipeRecord{
			Title:     "Paneer Tikka",
			Region:    "Indian Subcontinent",
			SubRegion: "Indian",
			Continent: "Asian",
			TotalTime: "40",
			Servings:  "2",
			Vegan:     false,
		})

		assert.Equal(t, domain.RecipeOverview{
			Name:        "Paneer Tikka",
			Description: "A Indian recipe from Asian.",
			Time:        "40 min",
			Servings:    "2",
			Difficulty:  "Medium",
			Diet:        "Balanced",
			Cuisine:     "Indian Subcontinent",
		}, got)
	})

	t.Run("sparse record falls back", func(t *testing.T) {
		got := overviewFor(&domain.RecipeRecord{Title: "Mystery"})

		assert.Equal(t, "A classic recipe from the world.", got.Description)
		assert.Equal(t, "? min", got.Time)
		assert.Equal(t, "4", got.Servings)
		assert.Equal(t, "International", got.Cuisine)
	})
}

func TestScaleNutrients(t *testing.T) {
	base := domain.Nutrients{Calories: 333.4, Protein: 12.25, Carbohydrates: 40.04, TotalFat: 9.96}

	assert.Equal(t, domain.Nutrients{Calories: 667, Protein: 24.5, Carbohydrates: 80.1, TotalFat: 19.9},
		scaleNutrients(base, 2))
	assert.Equal(t, domain.Nutrients{Calories: 333, Protein: 12.3, Carbohydrates: 40, TotalFat: 10},
		scaleNutrients(base, 0))
}

func TestProcedureFromInstructions(t *testing.T) {
	got := procedureFromInstructions([]string{"Boil water.", "  ", "Add pasta."})

	assert.Equal(t, []domain.ProcedureStep{
		{Title: "Step 1", Instruction: "Boil water."},
		{Title: "Step 2", Instruction: "Add pasta."},
	}, got)
	assert.Empty(t, procedureFromInstructions(nil))
}

func TestProcedureFromProcesses(t *testing.T) {
	t.Run("splits and capitalizes", func(t *testing.T) {
		got := procedureFromProcesses("boil||FRY|| ")

		assert.Equal(t, []domain.ProcedureStep{
			{Title: "Boil", Instruction: "Boil the ingredients carefully."},
			{Title: "Fry", Instruction: "Fry the ingredients carefully."},
		}, got)
	})

	t.Run("keeps at most eight steps", func(t *testing.T) {
		got := procedureFromProcesses("a||b||c||d||e||f||g||h||i||j")
		assert.Len(t, got, maxProcessSteps)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Nil(t, procedureFromProcesses("  "))
	})
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "", capitalize(""))
	assert.Equal(t, "Sauté", capitalize("SAUTÉ"))
	assert.Equal(t, "Éclair", capitalize("éclair"))
}
