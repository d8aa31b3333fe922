package flavordb

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Compiled patterns for ingredient query cleaning
var (
	// Leading quantities like "2", "1/2", "1.5", "2-3"
	quantityPattern = regexp.MustCompile(`\b\d+([./-]\d+)?\b`)

	// Parenthesised notes like "(optional)" or "(about 200g)"
	parenPattern = regexp.MustCompile(`\([^)]*\)`)

	// Everything after the first comma is usually preparation ("onion, finely chopped")
	trailingNotePattern = regexp.MustCompile(`,.*$`)

	multiSpacePattern = regexp.MustCompile(`\s+`)
)

// ingredientNoiseWords are units and preparation terms that never name a flavor entity
var ingredientNoiseWords = map[string]bool{
	// Units
	"cup": true, "cups": true,
	"tbsp": true, "tablespoon": true, "tablespoons": true,
	"tsp": true, "teaspoon": true, "teaspoons": true,
	"g": true, "gram": true, "grams": true, "kg": true,
	"ml": true, "l": true, "litre": true, "liter": true,
	"oz": true, "ounce": true, "ounces": true,
	"lb": true, "lbs": true, "pound": true, "pounds": true,
	"pinch": true, "dash": true, "clove": true, "cloves": true,
	"piece": true, "pieces": true, "slice": true, "slices": true,
	"can": true, "package": true, "bunch": true, "sprig": true, "sprigs": true,

	// Preparation
	"chopped": true, "diced": true, "minced": true, "sliced": true,
	"grated": true, "crushed": true, "ground": true, "peeled": true,
	"fresh": true, "freshly": true, "finely": true, "roughly": true,
	"large": true, "medium": true, "small": true, "whole": true,
	"boneless": true, "skinless": true, "optional": true, "to": true,
	"taste": true, "of": true, "a": true, "and": true,
}

const maxQueryLength = 60

// CleanIngredientName strips quantities, units and preparation notes from an
// ingredient phrase, e.g. "2 cups finely chopped onion" becomes "onion".
// If nothing is left the lower-cased input is returned.
func CleanIngredientName(name string) string {
	original := strings.ToLower(strings.TrimSpace(name))
	if original == "" {
		return ""
	}

	cleaned := parenPattern.ReplaceAllString(original, " ")
	cleaned = trailingNotePattern.ReplaceAllString(cleaned, "")
	cleaned = quantityPattern.ReplaceAllString(cleaned, " ")

	words := strings.Fields(cleaned)
	kept := make([]string, 0, len(words))
	for _, word := range words {
		word = strings.Trim(word, ".;:-'\"")
		if word == "" || ingredientNoiseWords[word] {
			continue
		}
		kept = append(kept, word)
	}

	cleaned = multiSpacePattern.ReplaceAllString(strings.Join(kept, " "), " ")
	if cleaned == "" {
		return original
	}

	if len(cleaned) > maxQueryLength {
		cut := maxQueryLength
		for cut > 0 && !utf8.RuneStart(cleaned[cut]) {
			cut--
		}
		cleaned = cleaned[:cut]
		if lastSpace := strings.LastIndex(cleaned, " "); lastSpace > 0 {
			cleaned = cleaned[:lastSpace]
		}
	}

	return cleaned
}

// QueryCandidates returns the names to try against FlavorDB, most specific
// first: the cleaned full name, then its first word. Duplicates are dropped.
func QueryCandidates(name string) []string {
	cleaned := CleanIngredientName(name)
	if cleaned == "" {
		return nil
	}

	candidates := []string{cleaned}
	if fields := strings.Fields(cleaned); len(fields) > 1 {
		candidates = append(candidates, fields[0])
	}
	return candidates
}
