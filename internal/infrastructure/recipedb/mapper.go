package recipedb

import (
	"strings"

	"github.com/recipelens/backend/internal/domain"
)

// mapRecipe converts a raw RecipeDB recipe into the domain record.
// Ingredients are attached separately because they come from another endpoint.
func mapRecipe(raw *rawRecipe) domain.RecipeRecord {
	return domain.RecipeRecord{
		ID:              strings.TrimSpace(string(raw.RecipeID)),
		Title:           strings.TrimSpace(raw.Title),
		Ingredients:     []string{},
		Region:          raw.Region,
		SubRegion:       raw.SubRegion,
		Continent:       raw.Continent,
		CookTime:        string(raw.CookTime),
		PrepTime:        string(raw.PrepTime),
		TotalTime:       string(raw.TotalTime),
		Servings:        string(raw.Servings),
		Processes:       raw.Processes,
		Vegan:           raw.Vegan.truthy(),
		LactoVegetarian: raw.LactoVegetarian.truthy(),
		Nutrients: domain.Nutrients{
			Calories:      float64(raw.Calories),
			Protein:       float64(raw.Protein),
			Carbohydrates: float64(raw.Carbohydrates),
			TotalFat:      float64(raw.TotalFat),
		},
	}
}

// mergeDetail overlays the full recipe on the title search result. Fields the
// detail endpoint leaves empty keep the value from the search result.
func mergeDetail(base domain.RecipeRecord, detail *detailResponse) domain.RecipeRecord {
	full := mapRecipe(&detail.Recipe)

	merged := base
	overlay := func(dst *string, src string) {
		if src != "" {
			*dst = src
		}
	}
	overlay(&merged.ID, full.ID)
	overlay(&merged.Title, full.Title)
	overlay(&merged.Region, full.Region)
	overlay(&merged.SubRegion, full.SubRegion)
	overlay(&merged.Continent, full.Continent)
	overlay(&merged.CookTime, full.CookTime)
	overlay(&merged.PrepTime, full.PrepTime)
	overlay(&merged.TotalTime, full.TotalTime)
	overlay(&merged.Servings, full.Servings)
	overlay(&merged.Processes, full.Processes)
	merged.Vegan = merged.Vegan || full.Vegan
	merged.LactoVegetarian = merged.LactoVegetarian || full.LactoVegetarian
	if full.Nutrients != (domain.Nutrients{}) {
		merged.Nutrients = full.Nutrients
	}

	merged.Ingredients = ingredientNames(detail.Ingredients)
	return merged
}

// ingredientNames extracts the non-empty ingredient names
func ingredientNames(raw []rawIngredient) []string {
	names := make([]string, 0, len(raw))
	for _, ing := range raw {
		if name := strings.TrimSpace(ing.Ingredient); name != "" {
			names = append(names, name)
		}
	}
	return names
}
