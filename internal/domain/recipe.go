package domain

// RecipeRecord is a recipe as returned by the recipe database, already
// decoded from the provider's wire format.
type RecipeRecord struct {
	ID              string    `json:"recipeId"`
	Title           string    `json:"title"`
	Ingredients     []string  `json:"ingredients"`
	Region          string    `json:"region,omitempty"`
	SubRegion       string    `json:"subRegion,omitempty"`
	Continent       string    `json:"continent,omitempty"`
	CookTime        string    `json:"cookTime,omitempty"`
	PrepTime        string    `json:"prepTime,omitempty"`
	TotalTime       string    `json:"totalTime,omitempty"`
	Servings        string    `json:"servings,omitempty"`
	Processes       string    `json:"processes,omitempty"`
	Vegan           bool      `json:"vegan"`
	LactoVegetarian bool      `json:"lactoVegetarian"`
	Nutrients       Nutrients `json:"nutrients"`
}

// Nutrients contains the key macronutrients reported per recipe
type Nutrients struct {
	Calories      float64 `json:"calories"`
	Protein       float64 `json:"protein"`       // grams
	Carbohydrates float64 `json:"carbohydrates"` // grams
	TotalFat      float64 `json:"totalFat"`      // grams
}

// FlavorEntity is the subset of a flavor database entity used to suggest substitutes
type FlavorEntity struct {
	ID           string `json:"entityId,omitempty"`
	ReadableName string `json:"readableName"`
	Category     string `json:"category"`
}

// RecipeOverview is the display summary of a recipe
type RecipeOverview struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Time        string `json:"time"`
	Servings    string `json:"servings"`
	Difficulty  string `json:"difficulty"`
	Diet        string `json:"diet"`
	Cuisine     string `json:"cuisine"`
}

// RecipeSummary is one entry of a title search
type RecipeSummary struct {
	RecipeOverview
	MatchScore float64   `json:"matchScore"`
	Nutrition  Nutrients `json:"nutrition"`
}

// IngredientStatus reports whether the user has a recipe ingredient
type IngredientStatus struct {
	Name      string `json:"name"`
	Quantity  string `json:"qty"`
	Available bool   `json:"available"`
	Role      string `json:"role"`
}

// ProcedureStep is a single cooking step
type ProcedureStep struct {
	Title       string `json:"title"`
	Instruction string `json:"instruction"`
	Tip         string `json:"tip"`
}

// RecipeDetail is the full view of one recipe analysed against a user's pantry
type RecipeDetail struct {
	Overview          RecipeOverview     `json:"overview"`
	Nutrition         Nutrients          `json:"nutrition"`
	Ingredients       []IngredientStatus `json:"ingredients"`
	Analysis          *Analysis          `json:"analysis"`
	SubstitutionCount int                `json:"subCount"`
	Procedure         []ProcedureStep    `json:"procedure"`
}

// RecipeAnalysis is an Analysis bound to the recipe it was computed for
type RecipeAnalysis struct {
	RecipeID    string `json:"recipeId"`
	RecipeTitle string `json:"recipeTitle"`
	*Analysis
}

// IngredientMatch is one recipe discovered from a user's ingredient list
type IngredientMatch struct {
	Name       string    `json:"name"`
	MatchScore float64   `json:"matchScore"`
	Matched    []string  `json:"matched"`
	Missing    []string  `json:"missing"`
	Nutrition  Nutrients `json:"nutrition"`
	Diet       string    `json:"diet"`
	Time       string    `json:"time"`
}
