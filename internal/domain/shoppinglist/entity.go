// Package shoppinglist contains the active shopping list aggregate: the
// single, continuously-mutated list each user owns, as opposed to the
// SavedList snapshots in the mealplan package.
package shoppinglist

import (
	"time"

	"github.com/google/uuid"
	"github.com/platewise/platewise/internal/domain/grocery"
	"github.com/platewise/platewise/internal/domain/shared"
)

// ShoppingList is the aggregate root for a user's active list. Items
// are ordered by first appearance and keyed by normalized name. The
// version supports optimistic locking: concurrent read-merge-write
// cycles for the same user must detect each other through it.
type ShoppingList struct {
	userID    uuid.UUID
	version   int64
	items     []grocery.Item
	updatedAt time.Time

	events []shared.DomainEvent
}

// New creates an empty active list for a user.
func New(userID uuid.UUID) *ShoppingList {
	return &ShoppingList{
		userID:    userID,
		version:   1,
		updatedAt: time.Now(),
	}
}

// Rehydrate reconstructs a list from persisted state.
func Rehydrate(userID uuid.UUID, version int64, items []grocery.Item, updatedAt time.Time) *ShoppingList {
	return &ShoppingList{
		userID:    userID,
		version:   version,
		items:     items,
		updatedAt: updatedAt,
	}
}

// UserID returns the owning user's identifier
func (l *ShoppingList) UserID() uuid.UUID { return l.userID }

// Version returns the optimistic-locking version
func (l *ShoppingList) Version() int64 { return l.version }

// Items returns the aggregated list items in display order
func (l *ShoppingList) Items() []grocery.Item { return l.items }

// UpdatedAt returns when the list was last modified
func (l *ShoppingList) UpdatedAt() time.Time { return l.updatedAt }

// Len returns the number of distinct grouped items
func (l *ShoppingList) Len() int { return len(l.items) }

// MergeIngredients aggregates new sources into the current items.
// Existing groups keep their position and checked state; nothing is
// ever dropped.
func (l *ShoppingList) MergeIngredients(sources ...[]grocery.Ingredient) {
	before := len(l.items)
	l.items = grocery.AggregateItems(l.items, sources...)
	l.touch()

	l.addEvent(ItemsMergedEvent{
		UserID:   l.userID,
		Added:    len(l.items) - before,
		Total:    len(l.items),
		MergedAt: l.updatedAt,
	})
}

// Replace overwrites the list wholesale with the given ingredients.
// Checked flags reset to false: a restored template starts unchecked.
func (l *ShoppingList) Replace(items []grocery.Ingredient) {
	cleared := make([]grocery.Ingredient, len(items))
	for i, ing := range items {
		cleared[i] = ing
		cleared[i].IsChecked = false
	}
	l.items = grocery.Aggregate(cleared)
	l.touch()

	l.addEvent(ListReplacedEvent{
		UserID:     l.userID,
		Total:      len(l.items),
		ReplacedAt: l.updatedAt,
	})
}

// Toggle sets the checked flag on the item matching name. A missing
// name is a no-op, not an error: a concurrent removal may have won the
// race and that is benign.
func (l *ShoppingList) Toggle(name string, checked bool) bool {
	key := grocery.Normalize(name)
	for i := range l.items {
		if l.items[i].NormalizedName != key {
			continue
		}
		l.items[i].IsChecked = checked
		l.touch()
		l.addEvent(ItemToggledEvent{
			UserID:    l.userID,
			ItemName:  l.items[i].Name,
			Checked:   checked,
			ToggledAt: l.updatedAt,
		})
		return true
	}
	return false
}

// CheckedItems returns the items currently marked as picked up.
func (l *ShoppingList) CheckedItems() []grocery.Item {
	var checked []grocery.Item
	for _, item := range l.items {
		if item.IsChecked {
			checked = append(checked, item)
		}
	}
	return checked
}

// RemoveChecked drops every checked item and returns the removed set.
// Unchecked items keep their order. Calling it again immediately is a
// no-op, which is what makes finish-shopping safely re-runnable.
func (l *ShoppingList) RemoveChecked() []grocery.Item {
	var removed, kept []grocery.Item
	for _, item := range l.items {
		if item.IsChecked {
			removed = append(removed, item)
		} else {
			kept = append(kept, item)
		}
	}
	if len(removed) == 0 {
		return nil
	}

	l.items = kept
	l.touch()
	l.addEvent(ShoppingFinishedEvent{
		UserID:     l.userID,
		Moved:      len(removed),
		Remaining:  len(kept),
		FinishedAt: l.updatedAt,
	})
	return removed
}

func (l *ShoppingList) touch() {
	l.updatedAt = time.Now()
}

// addEvent adds a domain event to be dispatched
func (l *ShoppingList) addEvent(event shared.DomainEvent) {
	l.events = append(l.events, event)
}

// Events returns and clears pending domain events
func (l *ShoppingList) Events() []shared.DomainEvent {
	events := l.events
	l.events = nil
	return events
}
