package shoppinglist

import (
	"time"

	"github.com/google/uuid"
)

// Domain Events - Events that occur within the shopping list domain

// ItemsMergedEvent is raised when ingredients are merged into the list
type ItemsMergedEvent struct {
	UserID   uuid.UUID
	Added    int
	Total    int
	MergedAt time.Time
}

func (e ItemsMergedEvent) EventName() string {
	return "shoppinglist.items.merged"
}

func (e ItemsMergedEvent) OccurredAt() time.Time {
	return e.MergedAt
}

// ListReplacedEvent is raised when the list is overwritten wholesale
type ListReplacedEvent struct {
	UserID     uuid.UUID
	Total      int
	ReplacedAt time.Time
}

func (e ListReplacedEvent) EventName() string {
	return "shoppinglist.replaced"
}

func (e ListReplacedEvent) OccurredAt() time.Time {
	return e.ReplacedAt
}

// ItemToggledEvent is raised when an item's checked flag changes
type ItemToggledEvent struct {
	UserID    uuid.UUID
	ItemName  string
	Checked   bool
	ToggledAt time.Time
}

func (e ItemToggledEvent) EventName() string {
	return "shoppinglist.item.toggled"
}

func (e ItemToggledEvent) OccurredAt() time.Time {
	return e.ToggledAt
}

// ShoppingFinishedEvent is raised when checked items move to the pantry
type ShoppingFinishedEvent struct {
	UserID     uuid.UUID
	Moved      int
	Remaining  int
	FinishedAt time.Time
}

func (e ShoppingFinishedEvent) EventName() string {
	return "shoppinglist.finished"
}

func (e ShoppingFinishedEvent) OccurredAt() time.Time {
	return e.FinishedAt
}
