// Package gorm provides GORM-based repository implementations
package gorm

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/platewise/platewise/internal/domain/pantry"
	"github.com/platewise/platewise/internal/domain/shoppinglist"
	"github.com/platewise/platewise/internal/ports/outbound"
	"gorm.io/gorm"
)

// ListRepository implements the list and pantry repository interfaces
// using GORM with optimistic locking on the version column.
type ListRepository struct {
	db *gorm.DB
}

// NewListRepository creates a new list repository
func NewListRepository(db *gorm.DB) *ListRepository {
	return &ListRepository{db: db}
}

// GetList loads the user's active list, creating an empty row on first
// access so the optimistic-write path always has a version to check.
func (r *ListRepository) GetList(ctx context.Context, userID uuid.UUID) (*shoppinglist.ShoppingList, error) {
	var model ShoppingListModel

	err := r.db.WithContext(ctx).First(&model, "user_id = ?", userID).Error
	if err == nil {
		return ModelToList(&model), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	model = ShoppingListModel{
		UserID:    userID,
		Version:   1,
		Items:     ItemsJSON{},
		UpdatedAt: time.Now(),
	}
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		// A concurrent first access may have created the row already.
		if refetch := r.db.WithContext(ctx).First(&model, "user_id = ?", userID).Error; refetch != nil {
			return nil, err
		}
	}

	return ModelToList(&model), nil
}

// SaveList writes the list back only if the stored version still
// matches the version the entity was loaded with.
func (r *ListRepository) SaveList(ctx context.Context, list *shoppinglist.ShoppingList) error {
	model := ListToModel(list)
	result := r.db.WithContext(ctx).
		Model(&ShoppingListModel{}).
		Where("user_id = ? AND version = ?", model.UserID, model.Version).
		Updates(map[string]interface{}{
			"items":      model.Items,
			"version":    model.Version + 1,
			"updated_at": model.UpdatedAt,
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return outbound.ErrVersionConflict
	}
	return nil
}

// FinishShopping commits the post-trip list and the restocked pantry in
// one transaction. Both rows are version-checked; any conflict rolls
// back the whole operation so state is never half-applied.
func (r *ListRepository) FinishShopping(ctx context.Context, list *shoppinglist.ShoppingList, p *pantry.Pantry) error {
	listModel := ListToModel(list)
	pantryModel := PantryToModel(p)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		listResult := tx.
			Model(&ShoppingListModel{}).
			Where("user_id = ? AND version = ?", listModel.UserID, listModel.Version).
			Updates(map[string]interface{}{
				"items":      listModel.Items,
				"version":    listModel.Version + 1,
				"updated_at": listModel.UpdatedAt,
			})
		if listResult.Error != nil {
			return listResult.Error
		}
		if listResult.RowsAffected == 0 {
			return outbound.ErrVersionConflict
		}

		pantryResult := tx.
			Model(&PantryModel{}).
			Where("user_id = ? AND version = ?", pantryModel.UserID, pantryModel.Version).
			Updates(map[string]interface{}{
				"items":      pantryModel.Items,
				"version":    pantryModel.Version + 1,
				"updated_at": pantryModel.UpdatedAt,
			})
		if pantryResult.Error != nil {
			return pantryResult.Error
		}
		if pantryResult.RowsAffected == 0 {
			return outbound.ErrVersionConflict
		}

		return nil
	})
}

// PantryRepository implements the pantry repository interface using GORM
type PantryRepository struct {
	db *gorm.DB
}

// NewPantryRepository creates a new pantry repository
func NewPantryRepository(db *gorm.DB) *PantryRepository {
	return &PantryRepository{db: db}
}

// GetPantry loads the user's pantry, creating an empty row on first access.
func (r *PantryRepository) GetPantry(ctx context.Context, userID uuid.UUID) (*pantry.Pantry, error) {
	var model PantryModel

	err := r.db.WithContext(ctx).First(&model, "user_id = ?", userID).Error
	if err == nil {
		return ModelToPantry(&model), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	model = PantryModel{
		UserID:    userID,
		Version:   1,
		Items:     ItemsJSON{},
		UpdatedAt: time.Now(),
	}
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		if refetch := r.db.WithContext(ctx).First(&model, "user_id = ?", userID).Error; refetch != nil {
			return nil, err
		}
	}

	return ModelToPantry(&model), nil
}

// SavePantry writes the pantry back under the same optimistic contract
// as SaveList.
func (r *PantryRepository) SavePantry(ctx context.Context, p *pantry.Pantry) error {
	model := PantryToModel(p)
	result := r.db.WithContext(ctx).
		Model(&PantryModel{}).
		Where("user_id = ? AND version = ?", model.UserID, model.Version).
		Updates(map[string]interface{}{
			"items":      model.Items,
			"version":    model.Version + 1,
			"updated_at": model.UpdatedAt,
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return outbound.ErrVersionConflict
	}
	return nil
}
