package mealplan

import "github.com/platewise/platewise/internal/domain/grocery"

// FlattenPlan extracts every ingredient from every populated slot of a
// plan, tagging each with the slot's display title so provenance
// survives aggregation. Days and slots are visited in order, so the
// flattened list is deterministic.
//
// Missing or nil slots contribute nothing. A slot with a title but no
// ingredients also contributes nothing; neither case is an error.
func FlattenPlan(days []DayPlan) []grocery.Ingredient {
	var flattened []grocery.Ingredient

	for _, day := range days {
		for _, slot := range day.Slots() {
			title := slot.DisplayTitle()
			for _, ing := range slot.Ingredients {
				tagged := ing
				tagged.RecipeTitle = title
				flattened = append(flattened, tagged)
			}
		}
	}

	return flattened
}

// MixedShapes reports whether a plan accidentally combines manual and
// generated days. The reconciler never repairs this; it is surfaced so
// the caller can decide whether to reject the plan.
func MixedShapes(days []DayPlan) bool {
	var sawManual, sawGenerated bool
	for _, day := range days {
		switch day.Origin {
		case OriginManual:
			sawManual = true
		case OriginGenerated:
			sawGenerated = true
		}
	}
	return sawManual && sawGenerated
}
