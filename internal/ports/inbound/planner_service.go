package inbound

import (
	"context"

	"github.com/google/uuid"
	"github.com/platewise/platewise/internal/domain/grocery"
	"github.com/platewise/platewise/internal/domain/mealplan"
)

// PlannerService defines the AI-assisted planning use cases. A failed
// or unparsable generation leaves all persisted state untouched; the
// reconciliation pipeline only runs on a complete, parsed result.
type PlannerService interface {
	// GenerateSmartShoppingList builds a day-by-day meal outline and a
	// structured shopping list from free-text dietary constraints, and
	// merges the list into the user's active shopping list.
	GenerateSmartShoppingList(ctx context.Context, cmd GenerateListCommand) (*SmartListResult, error)

	// GenerateMealPlan builds a full meal plan without touching the
	// active list; the caller decides whether to save or apply it.
	GenerateMealPlan(ctx context.Context, cmd GeneratePlanCommand) ([]mealplan.DayPlan, error)
}

// GenerateListCommand for AI shopping-list generation
type GenerateListCommand struct {
	UserID uuid.UUID
	Diet   string
	Days   int
	Notes  string
}

// GeneratePlanCommand for AI meal-plan generation
type GeneratePlanCommand struct {
	UserID             uuid.UUID
	Days               int
	DietaryPreferences []string
	CustomPrompt       string
	IncludeRecipes     bool
	Goals              string
}

// MealOutline is one generated day's meal names, for preview display
type MealOutline struct {
	Day   string   `json:"day"`
	Meals []string `json:"meals"`
}

// SmartListResult is the outcome of a smart-list generation
type SmartListResult struct {
	MealPlan    []MealOutline        `json:"mealPlan"`
	Ingredients []grocery.Ingredient `json:"ingredients"`
	List        *ListDTO             `json:"list"`
}
