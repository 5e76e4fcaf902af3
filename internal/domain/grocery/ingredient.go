// Package grocery contains the core domain logic for ingredient handling:
// name normalization and multi-source list aggregation. Everything in this
// package is a pure transform with no I/O.
package grocery

import "strings"

// Ingredient is a single ingredient line as it arrives from a source:
// a recipe, an AI generation result, or a manual entry. Amount is a
// free-text quantity string ("1/2 cup", "2 cloves"); no unit parsing is
// attempted anywhere, so amounts are carried and listed, never summed.
type Ingredient struct {
	Name        string `json:"name"`
	Amount      string `json:"amount"`
	RecipeTitle string `json:"recipeTitle,omitempty"`
	Barcode     string `json:"barcode,omitempty"`
	InPantry    bool   `json:"inPantry,omitempty"`
	IsChecked   bool   `json:"isChecked,omitempty"`
}

// Normalize canonicalizes an ingredient name for use as a merge key.
// It lowercases and trims surrounding whitespace, and is idempotent.
//
// It deliberately does not stem, pluralize, or unit-convert: "tomato"
// and "tomatoes" are distinct keys. That is a documented limitation of
// the matching model, not a bug.
func Normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
