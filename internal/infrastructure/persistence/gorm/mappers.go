package gorm

import (
	"github.com/platewise/platewise/internal/domain/mealplan"
	"github.com/platewise/platewise/internal/domain/pantry"
	"github.com/platewise/platewise/internal/domain/shoppinglist"
)

// Mappers between domain entities and GORM models. The domain side
// keeps private fields, so reconstruction goes through Rehydrate.

// ListToModel converts a shopping list entity to its GORM model
func ListToModel(list *shoppinglist.ShoppingList) *ShoppingListModel {
	return &ShoppingListModel{
		UserID:    list.UserID(),
		Version:   list.Version(),
		Items:     ItemsJSON(list.Items()),
		UpdatedAt: list.UpdatedAt(),
	}
}

// ModelToList converts a GORM model to a shopping list entity
func ModelToList(model *ShoppingListModel) *shoppinglist.ShoppingList {
	return shoppinglist.Rehydrate(model.UserID, model.Version, model.Items, model.UpdatedAt)
}

// PantryToModel converts a pantry entity to its GORM model
func PantryToModel(p *pantry.Pantry) *PantryModel {
	return &PantryModel{
		UserID:    p.UserID(),
		Version:   p.Version(),
		Items:     ItemsJSON(p.Items()),
		UpdatedAt: p.UpdatedAt(),
	}
}

// ModelToPantry converts a GORM model to a pantry entity
func ModelToPantry(model *PantryModel) *pantry.Pantry {
	return pantry.Rehydrate(model.UserID, model.Version, model.Items, model.UpdatedAt)
}

// SavedListToModel converts a saved list entity to its GORM model
func SavedListToModel(list *mealplan.SavedList) *SavedListModel {
	return &SavedListModel{
		ID:          list.ID(),
		OwnerID:     list.OwnerID(),
		Title:       list.Title(),
		Description: list.Description(),
		IsPublic:    list.IsPublic(),
		Type:        string(list.Type()),
		Items:       IngredientsJSON(list.Items()),
		PlanDetails: PlanJSON(list.PlanDetails()),
		ItemCount:   list.ItemCount(),
		CreatedAt:   list.CreatedAt(),
		UpdatedAt:   list.UpdatedAt(),
	}
}

// ModelToSavedList converts a GORM model to a saved list entity
func ModelToSavedList(model *SavedListModel) *mealplan.SavedList {
	return mealplan.Rehydrate(
		model.ID,
		model.OwnerID,
		model.Title,
		model.Description,
		model.IsPublic,
		mealplan.SavedListType(model.Type),
		model.Items,
		model.PlanDetails,
		model.CreatedAt,
		model.UpdatedAt,
	)
}
