package grocery

import "strings"

// SourceAmount is one provenance entry for an aggregated item: the
// free-text amount together with the recipe or meal title it came from.
type SourceAmount struct {
	Amount      string `json:"amount"`
	RecipeTitle string `json:"recipeTitle,omitempty"`
}

// Item is a single aggregated shopping-list line. All source entries
// whose normalized names match are grouped into one Item; their amounts
// are retained individually as provenance, never merged numerically.
type Item struct {
	// Name keeps the first-seen original casing for display.
	Name           string         `json:"name"`
	NormalizedName string         `json:"normalizedName"`
	Provenance     []SourceAmount `json:"provenance"`
	Barcode        string         `json:"barcode,omitempty"`
	IsChecked      bool           `json:"isChecked"`
}

// Amounts returns the provenance amounts in source order.
func (it Item) Amounts() []string {
	amounts := make([]string, len(it.Provenance))
	for i, p := range it.Provenance {
		amounts[i] = p.Amount
	}
	return amounts
}

// Aggregate merges any number of ingredient sources into one deduplicated
// list. Grouping is by normalized name; output order is the insertion
// order of each name's first appearance across the flattened sources, so
// ingredients show up in the order their recipes were added.
//
// No entry is ever dropped: an ingredient with a missing amount is kept
// with an empty amount string. Duplicates inside a single source merge
// into the same group as duplicates across sources.
func Aggregate(sources ...[]Ingredient) []Item {
	index := make(map[string]int)
	items := make([]Item, 0)

	for _, source := range sources {
		for _, ing := range source {
			key := Normalize(ing.Name)
			if key == "" {
				continue
			}

			entry := SourceAmount{
				Amount:      ing.Amount,
				RecipeTitle: ing.RecipeTitle,
			}

			pos, seen := index[key]
			if !seen {
				index[key] = len(items)
				items = append(items, Item{
					Name:           strings.TrimSpace(ing.Name),
					NormalizedName: key,
					Provenance:     []SourceAmount{entry},
					Barcode:        ing.Barcode,
					IsChecked:      ing.IsChecked,
				})
				continue
			}

			items[pos].Provenance = append(items[pos].Provenance, entry)
			if items[pos].Barcode == "" {
				items[pos].Barcode = ing.Barcode
			}
		}
	}

	return items
}

// AggregateItems re-aggregates already-grouped items together with new
// ingredient sources. Existing groups keep their position, display name,
// and checked state; new provenance entries append in arrival order.
// Aggregate is idempotent under this operation: feeding an aggregated
// list back in yields the same groups.
func AggregateItems(existing []Item, sources ...[]Ingredient) []Item {
	index := make(map[string]int, len(existing))
	items := make([]Item, len(existing))
	for i, item := range existing {
		items[i] = item
		items[i].Provenance = append([]SourceAmount(nil), item.Provenance...)
		index[item.NormalizedName] = i
	}

	for _, source := range sources {
		for _, ing := range source {
			key := Normalize(ing.Name)
			if key == "" {
				continue
			}

			entry := SourceAmount{
				Amount:      ing.Amount,
				RecipeTitle: ing.RecipeTitle,
			}

			pos, seen := index[key]
			if !seen {
				index[key] = len(items)
				items = append(items, Item{
					Name:           strings.TrimSpace(ing.Name),
					NormalizedName: key,
					Provenance:     []SourceAmount{entry},
					Barcode:        ing.Barcode,
					IsChecked:      ing.IsChecked,
				})
				continue
			}

			if containsAmount(items[pos].Provenance, entry) {
				continue
			}
			items[pos].Provenance = append(items[pos].Provenance, entry)
		}
	}

	return items
}

// containsAmount reports whether an identical provenance entry is already
// present. Re-merging the same source must not duplicate amounts.
func containsAmount(provenance []SourceAmount, entry SourceAmount) bool {
	for _, p := range provenance {
		if p == entry {
			return true
		}
	}
	return false
}
