package mealplan

import (
	"time"

	"github.com/google/uuid"
	"github.com/platewise/platewise/internal/domain/grocery"
)

// SavedListType fixes which payload of a saved list is authoritative.
// The type is set at creation and never changes.
type SavedListType string

const (
	SavedListTypeMealPlan     SavedListType = "meal_plan"
	SavedListTypeShoppingList SavedListType = "shopping_list"
)

// SavedList is a named, persisted snapshot of either a shopping list or
// a meal plan. It never tracks the live list it was derived from; saving
// a template does not mutate the active list.
type SavedList struct {
	id          uuid.UUID
	ownerID     uuid.UUID
	title       string
	description string
	isPublic    bool
	listType    SavedListType
	items       []grocery.Ingredient
	planDetails []DayPlan
	createdAt   time.Time
	updatedAt   time.Time
}

// NewSavedList creates a saved list snapshot with validation. For a
// shopping_list type the items payload is authoritative; for a meal_plan
// type the plan details are.
func NewSavedList(ownerID uuid.UUID, title string, listType SavedListType, items []grocery.Ingredient, planDetails []DayPlan) (*SavedList, error) {
	if err := validateTitle(title); err != nil {
		return nil, err
	}

	switch listType {
	case SavedListTypeShoppingList, SavedListTypeMealPlan:
	default:
		return nil, ErrInvalidListType
	}

	now := time.Now()
	list := &SavedList{
		id:        uuid.New(),
		ownerID:   ownerID,
		title:     title,
		listType:  listType,
		createdAt: now,
		updatedAt: now,
	}

	switch listType {
	case SavedListTypeShoppingList:
		list.items = append([]grocery.Ingredient(nil), items...)
	case SavedListTypeMealPlan:
		list.planDetails = append([]DayPlan(nil), planDetails...)
	}

	return list, nil
}

// Rehydrate reconstructs a SavedList from persisted state.
func Rehydrate(id, ownerID uuid.UUID, title, description string, isPublic bool, listType SavedListType, items []grocery.Ingredient, planDetails []DayPlan, createdAt, updatedAt time.Time) *SavedList {
	return &SavedList{
		id:          id,
		ownerID:     ownerID,
		title:       title,
		description: description,
		isPublic:    isPublic,
		listType:    listType,
		items:       items,
		planDetails: planDetails,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// ID returns the saved list's unique identifier
func (l *SavedList) ID() uuid.UUID { return l.id }

// OwnerID returns the owning user's identifier
func (l *SavedList) OwnerID() uuid.UUID { return l.ownerID }

// Title returns the saved list's title
func (l *SavedList) Title() string { return l.title }

// Description returns the saved list's description
func (l *SavedList) Description() string { return l.description }

// IsPublic reports whether other users may read the saved list.
// Visibility never grants write access.
func (l *SavedList) IsPublic() bool { return l.isPublic }

// Type returns the saved list's type
func (l *SavedList) Type() SavedListType { return l.listType }

// Items returns the snapshot's ingredients (shopping_list type)
func (l *SavedList) Items() []grocery.Ingredient { return l.items }

// PlanDetails returns the snapshot's day plans (meal_plan type)
func (l *SavedList) PlanDetails() []DayPlan { return l.planDetails }

// CreatedAt returns when the saved list was created
func (l *SavedList) CreatedAt() time.Time { return l.createdAt }

// UpdatedAt returns when the saved list was last modified
func (l *SavedList) UpdatedAt() time.Time { return l.updatedAt }

// ItemCount returns the display count: distinct items for a shopping
// list snapshot, days for a meal plan snapshot.
func (l *SavedList) ItemCount() int {
	if l.listType == SavedListTypeMealPlan {
		return len(l.planDetails)
	}
	return len(l.items)
}

// UpdateMetadata changes title, description, and visibility. The caller
// must already have verified ownership.
func (l *SavedList) UpdateMetadata(title, description string, isPublic bool) error {
	if err := validateTitle(title); err != nil {
		return err
	}
	l.title = title
	l.description = description
	l.isPublic = isPublic
	l.updatedAt = time.Now()
	return nil
}

// OwnedBy reports whether userID owns this saved list.
func (l *SavedList) OwnedBy(userID uuid.UUID) bool {
	return l.ownerID == userID
}

func validateTitle(title string) error {
	if len(title) == 0 {
		return ErrTitleRequired
	}
	if len(title) > 200 {
		return ErrTitleTooLong
	}
	return nil
}
