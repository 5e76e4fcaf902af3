// Package inbound defines the interfaces for inbound ports (primary/driving adapters)
// These are the interfaces that the application exposes to the outside world
package inbound

import (
	"context"

	"github.com/google/uuid"
	"github.com/platewise/platewise/internal/domain/grocery"
	"github.com/platewise/platewise/internal/domain/mealplan"
)

// RestoreMode selects how a saved template is applied to the active list
type RestoreMode string

const (
	RestoreModeMerge     RestoreMode = "merge"
	RestoreModeOverwrite RestoreMode = "overwrite"
)

// ListService defines the use cases for the active shopping list,
// pantry, and saved-list templates. Every operation takes an
// already-authenticated user ID; callers are responsible for
// authentication, the service enforces ownership.
type ListService interface {
	// Commands - operations that modify state
	AddIngredients(ctx context.Context, userID uuid.UUID, ingredients []grocery.Ingredient) (*ListDTO, error)
	AddMealPlanToActiveList(ctx context.Context, userID uuid.UUID, plan []mealplan.DayPlan) (*ListDTO, error)
	RestoreListToActive(ctx context.Context, userID uuid.UUID, items []grocery.Ingredient, mode RestoreMode) (*ListDTO, error)
	ToggleChecked(ctx context.Context, userID uuid.UUID, itemName string, checked bool) error
	FinishShopping(ctx context.Context, userID uuid.UUID) (*FinishShoppingResult, error)

	// Pantry commands
	StockPantry(ctx context.Context, userID uuid.UUID, ingredients []grocery.Ingredient) (*PantryDTO, error)
	ConsumeRecipe(ctx context.Context, cmd ConsumeRecipeCommand) (*PantryDTO, error)

	// Saved list templates
	SaveListTemplate(ctx context.Context, cmd SaveTemplateCommand) (*SavedListDTO, error)
	UpdatePlan(ctx context.Context, cmd UpdatePlanCommand) (*SavedListDTO, error)
	DeletePlan(ctx context.Context, userID, planID uuid.UUID) error

	// Queries - operations that read state
	GetActiveList(ctx context.Context, userID uuid.UUID) (*ListDTO, error)
	GetPantry(ctx context.Context, userID uuid.UUID) (*PantryDTO, error)
	GetSavedLists(ctx context.Context, userID uuid.UUID) ([]SavedListDTO, error)
	GetSavedList(ctx context.Context, userID, planID uuid.UUID) (*SavedListDTO, error)
}

// Command objects for operations

// SaveTemplateCommand contains data for snapshotting a list or plan
type SaveTemplateCommand struct {
	UserID      uuid.UUID
	Title       string
	Description string
	IsPublic    bool
	Type        mealplan.SavedListType
	Items       []grocery.Ingredient
	PlanDetails []mealplan.DayPlan
}

// UpdatePlanCommand contains metadata/visibility changes for a saved list
type UpdatePlanCommand struct {
	UserID      uuid.UUID
	PlanID      uuid.UUID
	Title       string
	Description string
	IsPublic    bool
}

// ConsumeRecipeCommand removes a cooked recipe's ingredients from the pantry
type ConsumeRecipeCommand struct {
	UserID      uuid.UUID
	RecipeTitle string
	Ingredients []grocery.Ingredient
}

// Response DTOs

// ItemDTO is one aggregated shopping-list or pantry line
type ItemDTO struct {
	Name       string                 `json:"name"`
	Provenance []grocery.SourceAmount `json:"provenance"`
	Barcode    string                 `json:"barcode,omitempty"`
	IsChecked  bool                   `json:"isChecked"`
}

// ListDTO is the active shopping list
type ListDTO struct {
	UserID    uuid.UUID `json:"userId"`
	Items     []ItemDTO `json:"items"`
	UpdatedAt string    `json:"updatedAt"`
}

// PantryDTO is the active pantry
type PantryDTO struct {
	UserID    uuid.UUID `json:"userId"`
	Items     []ItemDTO `json:"items"`
	UpdatedAt string    `json:"updatedAt"`
}

// FinishShoppingResult reports what a finish-shopping pass moved
type FinishShoppingResult struct {
	Moved     int        `json:"moved"`
	Remaining int        `json:"remaining"`
	List      *ListDTO   `json:"list"`
	Pantry    *PantryDTO `json:"pantry"`
}

// SavedListDTO is a persisted template snapshot
type SavedListDTO struct {
	ID          uuid.UUID              `json:"id"`
	OwnerID     uuid.UUID              `json:"ownerId"`
	Title       string                 `json:"title"`
	Description string                 `json:"description,omitempty"`
	IsPublic    bool                   `json:"isPublic"`
	Type        mealplan.SavedListType `json:"type"`
	Items       []grocery.Ingredient   `json:"items,omitempty"`
	PlanDetails []mealplan.DayPlan     `json:"planDetails,omitempty"`
	ItemCount   int                    `json:"itemCount"`
	CreatedAt   string                 `json:"createdAt"`
}
