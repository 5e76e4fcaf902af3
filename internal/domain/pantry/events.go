package pantry

import (
	"time"

	"github.com/google/uuid"
)

// ItemsStockedEvent is raised when ingredients are merged into the pantry
type ItemsStockedEvent struct {
	UserID    uuid.UUID
	Count     int
	StockedAt time.Time
}

func (e ItemsStockedEvent) EventName() string {
	return "pantry.items.stocked"
}

func (e ItemsStockedEvent) OccurredAt() time.Time {
	return e.StockedAt
}

// ItemsConsumedEvent is raised when a cooked recipe consumes pantry items
type ItemsConsumedEvent struct {
	UserID      uuid.UUID
	RecipeTitle string
	Count       int
	ConsumedAt  time.Time
}

func (e ItemsConsumedEvent) EventName() string {
	return "pantry.items.consumed"
}

func (e ItemsConsumedEvent) OccurredAt() time.Time {
	return e.ConsumedAt
}
