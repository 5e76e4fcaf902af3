// Package outbound defines the interfaces for outbound ports (secondary/driven adapters)
// These are the interfaces that the application uses to interact with external systems
package outbound

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/platewise/platewise/internal/domain/mealplan"
	"github.com/platewise/platewise/internal/domain/pantry"
	"github.com/platewise/platewise/internal/domain/shoppinglist"
)

// ErrVersionConflict is returned by the repositories when an optimistic
// write lost against a concurrent writer. The application layer retries
// the whole read-modify-write cycle a bounded number of times.
var ErrVersionConflict = errors.New("version conflict: resource was modified concurrently")

// ListRepository persists the active shopping list, one per user.
// Writes use optimistic concurrency: SaveList only succeeds if the
// stored version still matches the entity's version at load time, so
// two concurrent read-merge-write cycles cannot silently clobber each
// other.
type ListRepository interface {
	// GetList loads the user's active list, creating an empty one on
	// first access.
	GetList(ctx context.Context, userID uuid.UUID) (*shoppinglist.ShoppingList, error)

	// SaveList writes the list back, returning ErrVersionConflict if a
	// concurrent writer won.
	SaveList(ctx context.Context, list *shoppinglist.ShoppingList) error

	// FinishShopping commits the list and pantry together in one
	// transaction, so a partial failure leaves the previously-committed
	// state of both intact.
	FinishShopping(ctx context.Context, list *shoppinglist.ShoppingList, p *pantry.Pantry) error
}

// PantryRepository persists the active pantry, one per user, with the
// same optimistic-write contract as ListRepository.
type PantryRepository interface {
	GetPantry(ctx context.Context, userID uuid.UUID) (*pantry.Pantry, error)
	SavePantry(ctx context.Context, p *pantry.Pantry) error
}

// SavedListRepository persists saved-list template snapshots.
type SavedListRepository interface {
	Create(ctx context.Context, list *mealplan.SavedList) error
	Update(ctx context.Context, list *mealplan.SavedList) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*mealplan.SavedList, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*mealplan.SavedList, error)
}

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// Notifier pushes change notifications so connected clients can refresh
// without polling. Correctness never depends on delivery; publishing is
// fire-and-forget from the service's point of view.
type Notifier interface {
	NotifyListChanged(ctx context.Context, userID uuid.UUID) error
	NotifyPantryChanged(ctx context.Context, userID uuid.UUID) error
	NotifySavedListsChanged(ctx context.Context, userID uuid.UUID) error
}
