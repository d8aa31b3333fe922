package recipedb

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// titleResponse is the body of GET /recipe-bytitle/recipeByTitle
type titleResponse struct {
	Success flexString  `json:"success"`
	Data    []rawRecipe `json:"data"`
}

// detailResponse is the body of GET /search-recipe/{id}
type detailResponse struct {
	Recipe      rawRecipe       `json:"recipe"`
	Ingredients []rawIngredient `json:"ingredients"`
}

// instructionsResponse is the body of GET /instructions/{id}
type instructionsResponse struct {
	Success flexString `json:"success"`
	Data    []string   `json:"data"`
	Steps   []string   `json:"steps"`
}

type rawIngredient struct {
	Ingredient string `json:"ingredient"`
}

// rawRecipe mirrors the RecipeDB recipe object. The API is inconsistent about
// quoting numbers, so most fields accept either form.
type rawRecipe struct {
	RecipeID        flexString `json:"Recipe_id"`
	Title           string     `json:"Recipe_title"`
	Region          string     `json:"Region"`
	SubRegion       string     `json:"Sub_region"`
	Continent       string     `json:"Continent"`
	CookTime        flexString `json:"cook_time"`
	PrepTime        flexString `json:"prep_time"`
	TotalTime       flexString `json:"total_time"`
	Servings        flexString `json:"servings"`
	Processes       string     `json:"Processes"`
	Vegan           flexString `json:"vegan"`
	LactoVegetarian flexString `json:"lacto_vegetarian"`
	Calories        flexFloat  `json:"Calories"`
	Protein         flexFloat  `json:"Protein (g)"`
	Carbohydrates   flexFloat  `json:"-"` // see carbohydrateKey
	TotalFat        flexFloat  `json:"Total lipid (fat) (g)"`
}

// carbohydrateKey contains a comma, which struct tags cannot express
const carbohydrateKey = "Carbohydrate, by difference (g)"

func (r *rawRecipe) UnmarshalJSON(data []byte) error {
	type plain rawRecipe
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	if raw, ok := fields[carbohydrateKey]; ok {
		if err := p.Carbohydrates.UnmarshalJSON(raw); err != nil {
			return err
		}
	}

	*r = rawRecipe(p)
	return nil
}

// flexString decodes a JSON string, number or boolean into its text form
type flexString string

func (s *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = flexString(v)
		return nil
	}
	*s = flexString(data)
	return nil
}

// truthy reports whether the value is one of the API's spellings of true
func (s flexString) truthy() bool {
	switch strings.ToLower(strings.TrimSpace(string(s))) {
	case "1", "1.0", "true", "yes":
		return true
	}
	return false
}

// flexFloat decodes a JSON number or numeric string; anything unparseable is 0
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(data []byte) error {
	var text flexString
	if err := text.UnmarshalJSON(data); err != nil {
		return err
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(string(text)), 64)
	if err != nil {
		*f = 0
		return nil
	}
	*f = flexFloat(v)
	return nil
}
