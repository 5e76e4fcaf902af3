package outbound

import (
	"context"

	"github.com/platewise/platewise/internal/domain/mealplan"
)

// AIService defines the interface for the generative-model collaborator.
// Both calls are black boxes that return structured JSON or an error;
// they may hang or fail and must be guarded by the caller's context.
type AIService interface {
	// GenerateShoppingList turns free-text dietary constraints into a
	// day-by-day meal outline plus a structured ingredient list.
	GenerateShoppingList(ctx context.Context, req ShoppingListRequest) (*ShoppingListResponse, error)

	// GenerateMealPlan produces exactly req.Days generated-shape days,
	// each with all four meals populated. The contract is enforced by
	// the generator; callers still defend with safe defaults.
	GenerateMealPlan(ctx context.Context, req MealPlanRequest) ([]mealplan.DayPlan, error)
}

// ShoppingListRequest for smart shopping-list generation
type ShoppingListRequest struct {
	Diet  string
	Days  int
	Notes string
}

// GeneratedItem is one structured shopping-list entry from the model
type GeneratedItem struct {
	Name          string `json:"name"`
	Amount        string `json:"amount"`
	Category      string `json:"category"`
	IsAIGenerated bool   `json:"isAiGenerated"`
}

// GeneratedDay is one generated day's meal outline
type GeneratedDay struct {
	Day   string   `json:"day"`
	Meals []string `json:"meals"`
}

// ShoppingListResponse from the model
type ShoppingListResponse struct {
	MealPlan     []GeneratedDay  `json:"mealPlan"`
	ShoppingList []GeneratedItem `json:"shoppingList"`
}

// MealPlanRequest for full meal-plan generation
type MealPlanRequest struct {
	Days               int
	DietaryPreferences []string
	CustomPrompt       string
	IncludeRecipes     bool
	Goals              string
}
