// Package pantry contains the active pantry aggregate: the per-user set
// of on-hand ingredients fed by manual adds, barcode scans, image-scan
// confirmations, and finished shopping trips.
package pantry

import (
	"time"

	"github.com/google/uuid"
	"github.com/platewise/platewise/internal/domain/grocery"
	"github.com/platewise/platewise/internal/domain/shared"
)

// Pantry is the aggregate root for a user's on-hand ingredients. Unlike
// the shopping list, pantry entries carry no checked state. Entries
// dedupe by normalized name; amounts from separate stockings concatenate
// as provenance lines rather than summing.
type Pantry struct {
	userID    uuid.UUID
	version   int64
	items     []grocery.Item
	updatedAt time.Time

	events []shared.DomainEvent
}

// New creates an empty pantry for a user.
func New(userID uuid.UUID) *Pantry {
	return &Pantry{
		userID:    userID,
		version:   1,
		updatedAt: time.Now(),
	}
}

// Rehydrate reconstructs a pantry from persisted state.
func Rehydrate(userID uuid.UUID, version int64, items []grocery.Item, updatedAt time.Time) *Pantry {
	return &Pantry{
		userID:    userID,
		version:   version,
		items:     items,
		updatedAt: updatedAt,
	}
}

// UserID returns the owning user's identifier
func (p *Pantry) UserID() uuid.UUID { return p.userID }

// Version returns the optimistic-locking version
func (p *Pantry) Version() int64 { return p.version }

// Items returns the pantry entries in display order
func (p *Pantry) Items() []grocery.Item { return p.items }

// UpdatedAt returns when the pantry was last modified
func (p *Pantry) UpdatedAt() time.Time { return p.updatedAt }

// Stock merges already-aggregated items into the pantry. Merging is
// idempotent: stocking the same item with the same amount lines twice
// leaves the pantry unchanged, which is what makes a retried
// finish-shopping safe.
func (p *Pantry) Stock(items []grocery.Item) {
	if len(items) == 0 {
		return
	}

	var incoming []grocery.Ingredient
	for _, item := range items {
		for _, prov := range item.Provenance {
			incoming = append(incoming, grocery.Ingredient{
				Name:        item.Name,
				Amount:      prov.Amount,
				RecipeTitle: prov.RecipeTitle,
				Barcode:     item.Barcode,
			})
		}
		if len(item.Provenance) == 0 {
			incoming = append(incoming, grocery.Ingredient{Name: item.Name, Barcode: item.Barcode})
		}
	}

	before := p.items
	p.items = grocery.AggregateItems(p.items, incoming)
	for i := range p.items {
		p.items[i].IsChecked = false
	}
	if !changed(before, p.items) {
		return
	}

	p.touch()
	p.addEvent(ItemsStockedEvent{
		UserID:    p.userID,
		Count:     len(items),
		StockedAt: p.updatedAt,
	})
}

// StockIngredients merges raw ingredients (manual add, barcode scan,
// image-scan confirm) into the pantry.
func (p *Pantry) StockIngredients(ingredients []grocery.Ingredient) {
	if len(ingredients) == 0 {
		return
	}
	p.items = grocery.AggregateItems(p.items, ingredients)
	for i := range p.items {
		p.items[i].IsChecked = false
	}
	p.touch()
	p.addEvent(ItemsStockedEvent{
		UserID:    p.userID,
		Count:     len(ingredients),
		StockedAt: p.updatedAt,
	})
}

// Consume removes the given recipe's ingredients from the pantry, used
// when a recipe is marked cooked. Names not present are skipped; the
// pantry does not track quantities precisely enough to decrement.
func (p *Pantry) Consume(recipeTitle string, ingredients []grocery.Ingredient) []grocery.Item {
	if len(ingredients) == 0 {
		return nil
	}

	consume := make(map[string]bool, len(ingredients))
	for _, ing := range ingredients {
		consume[grocery.Normalize(ing.Name)] = true
	}

	var removed, kept []grocery.Item
	for _, item := range p.items {
		if consume[item.NormalizedName] {
			removed = append(removed, item)
		} else {
			kept = append(kept, item)
		}
	}
	if len(removed) == 0 {
		return nil
	}

	p.items = kept
	p.touch()
	p.addEvent(ItemsConsumedEvent{
		UserID:      p.userID,
		RecipeTitle: recipeTitle,
		Count:       len(removed),
		ConsumedAt:  p.updatedAt,
	})
	return removed
}

// changed reports whether an idempotent merge actually altered the
// pantry, comparing distinct names and per-item provenance lengths.
func changed(before, after []grocery.Item) bool {
	if len(before) != len(after) {
		return true
	}
	for i := range before {
		if len(before[i].Provenance) != len(after[i].Provenance) {
			return true
		}
	}
	return false
}

func (p *Pantry) touch() {
	p.updatedAt = time.Now()
}

// addEvent adds a domain event to be dispatched
func (p *Pantry) addEvent(event shared.DomainEvent) {
	p.events = append(p.events, event)
}

// Events returns and clears pending domain events
func (p *Pantry) Events() []shared.DomainEvent {
	events := p.events
	p.events = nil
	return events
}
