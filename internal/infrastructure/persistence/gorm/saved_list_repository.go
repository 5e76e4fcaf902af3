package gorm

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/platewise/platewise/internal/domain/mealplan"
	"github.com/platewise/platewise/internal/ports/outbound"
	"gorm.io/gorm"
)

// SavedListRepository implements the saved-list repository interface using GORM
type SavedListRepository struct {
	db *gorm.DB
}

// NewSavedListRepository creates a new saved list repository
func NewSavedListRepository(db *gorm.DB) outbound.SavedListRepository {
	return &SavedListRepository{db: db}
}

// Create creates a new saved list
func (r *SavedListRepository) Create(ctx context.Context, list *mealplan.SavedList) error {
	model := SavedListToModel(list)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update updates an existing saved list
func (r *SavedListRepository) Update(ctx context.Context, list *mealplan.SavedList) error {
	model := SavedListToModel(list)

	result := r.db.WithContext(ctx).
		Model(&SavedListModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"title":       model.Title,
			"description": model.Description,
			"is_public":   model.IsPublic,
			"updated_at":  model.UpdatedAt,
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return mealplan.ErrSavedListNotFound
	}
	return nil
}

// Delete deletes a saved list by ID (soft delete)
func (r *SavedListRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&SavedListModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return mealplan.ErrSavedListNotFound
	}
	return nil
}

// FindByID finds a saved list by ID; a missing row returns (nil, nil)
// so the application layer can map it to its own not-found error.
func (r *SavedListRepository) FindByID(ctx context.Context, id uuid.UUID) (*mealplan.SavedList, error) {
	var model SavedListModel

	err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return ModelToSavedList(&model), nil
}

// FindByOwner finds every saved list owned by a user, newest first.
func (r *SavedListRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*mealplan.SavedList, error) {
	var models []SavedListModel

	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	lists := make([]*mealplan.SavedList, len(models))
	for i := range models {
		lists[i] = ModelToSavedList(&models[i])
	}
	return lists, nil
}
