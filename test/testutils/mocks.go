// Package testutils provides mock and fake implementations for testing
package testutils

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/platewise/platewise/internal/domain/grocery"
	"github.com/platewise/platewise/internal/domain/mealplan"
	"github.com/platewise/platewise/internal/domain/pantry"
	"github.com/platewise/platewise/internal/domain/shoppinglist"
	"github.com/platewise/platewise/internal/ports/outbound"
	"github.com/stretchr/testify/mock"
)

// FakeListRepository is an in-memory ListRepository with real optimistic
// locking semantics, so the service retry loop can be exercised without
// a database.
type FakeListRepository struct {
	mu       sync.Mutex
	versions map[uuid.UUID]int64
	items    map[uuid.UUID][]grocery.Item

	// ConflictNextSaves makes the next N writes fail with
	// ErrVersionConflict while still bumping the stored version, the way
	// a concurrent writer would.
	ConflictNextSaves int
	SaveCalls         int
	GetCalls          int

	// Pantries, when set, receives the pantry half of FinishShopping
	// commits, mimicking the production single-transaction repository.
	Pantries *FakePantryRepository
}

// NewFakeListRepository creates an empty fake list repository
func NewFakeListRepository() *FakeListRepository {
	return &FakeListRepository{
		versions: make(map[uuid.UUID]int64),
		items:    make(map[uuid.UUID][]grocery.Item),
	}
}

// GetList loads the user's list, creating an empty one on first access
func (f *FakeListRepository) GetList(ctx context.Context, userID uuid.UUID) (*shoppinglist.ShoppingList, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.GetCalls++

	if _, ok := f.versions[userID]; !ok {
		f.versions[userID] = 1
		f.items[userID] = nil
	}

	items := append([]grocery.Item(nil), f.items[userID]...)
	return shoppinglist.Rehydrate(userID, f.versions[userID], items, time.Now()), nil
}

// SaveList writes the list back under the optimistic-locking contract
func (f *FakeListRepository) SaveList(ctx context.Context, list *shoppinglist.ShoppingList) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.SaveCalls++

	if f.ConflictNextSaves > 0 {
		f.ConflictNextSaves--
		f.versions[list.UserID()]++
		return outbound.ErrVersionConflict
	}

	if f.versions[list.UserID()] != list.Version() {
		return outbound.ErrVersionConflict
	}

	f.versions[list.UserID()]++
	f.items[list.UserID()] = append([]grocery.Item(nil), list.Items()...)
	return nil
}

// FinishShopping commits list and pantry together
func (f *FakeListRepository) FinishShopping(ctx context.Context, list *shoppinglist.ShoppingList, p *pantry.Pantry) error {
	if err := f.SaveList(ctx, list); err != nil {
		return err
	}
	if f.Pantries != nil {
		return f.Pantries.SavePantry(ctx, p)
	}
	return nil
}

var _ outbound.ListRepository = (*FakeListRepository)(nil)

// StoredItems returns the committed items for a user
func (f *FakeListRepository) StoredItems(userID uuid.UUID) []grocery.Item {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]grocery.Item(nil), f.items[userID]...)
}

// FakePantryRepository is the pantry counterpart of FakeListRepository
type FakePantryRepository struct {
	mu       sync.Mutex
	versions map[uuid.UUID]int64
	items    map[uuid.UUID][]grocery.Item

	ConflictNextSaves int
}

// NewFakePantryRepository creates an empty fake pantry repository
func NewFakePantryRepository() *FakePantryRepository {
	return &FakePantryRepository{
		versions: make(map[uuid.UUID]int64),
		items:    make(map[uuid.UUID][]grocery.Item),
	}
}

// GetPantry loads the user's pantry, creating an empty one on first access
func (f *FakePantryRepository) GetPantry(ctx context.Context, userID uuid.UUID) (*pantry.Pantry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.versions[userID]; !ok {
		f.versions[userID] = 1
		f.items[userID] = nil
	}

	items := append([]grocery.Item(nil), f.items[userID]...)
	return pantry.Rehydrate(userID, f.versions[userID], items, time.Now()), nil
}

// SavePantry writes the pantry back under the optimistic-locking contract
func (f *FakePantryRepository) SavePantry(ctx context.Context, p *pantry.Pantry) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.ConflictNextSaves > 0 {
		f.ConflictNextSaves--
		f.versions[p.UserID()]++
		return outbound.ErrVersionConflict
	}

	if f.versions[p.UserID()] != p.Version() {
		return outbound.ErrVersionConflict
	}

	f.versions[p.UserID()]++
	f.items[p.UserID()] = append([]grocery.Item(nil), p.Items()...)
	return nil
}

var _ outbound.PantryRepository = (*FakePantryRepository)(nil)

// StoredItems returns the committed pantry items for a user
func (f *FakePantryRepository) StoredItems(userID uuid.UUID) []grocery.Item {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]grocery.Item(nil), f.items[userID]...)
}

// FakeSavedListRepository is an in-memory SavedListRepository
type FakeSavedListRepository struct {
	mu    sync.Mutex
	lists map[uuid.UUID]*mealplan.SavedList
}

// NewFakeSavedListRepository creates an empty fake saved-list repository
func NewFakeSavedListRepository() *FakeSavedListRepository {
	return &FakeSavedListRepository{
		lists: make(map[uuid.UUID]*mealplan.SavedList),
	}
}

// Create stores a new saved list
func (f *FakeSavedListRepository) Create(ctx context.Context, list *mealplan.SavedList) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lists[list.ID()] = list
	return nil
}

// Update replaces a stored saved list
func (f *FakeSavedListRepository) Update(ctx context.Context, list *mealplan.SavedList) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.lists[list.ID()]; !ok {
		return mealplan.ErrSavedListNotFound
	}
	f.lists[list.ID()] = list
	return nil
}

// Delete removes a stored saved list
func (f *FakeSavedListRepository) Delete(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.lists[id]; !ok {
		return mealplan.ErrSavedListNotFound
	}
	delete(f.lists, id)
	return nil
}

// FindByID returns a stored saved list, or nil when absent
func (f *FakeSavedListRepository) FindByID(ctx context.Context, id uuid.UUID) (*mealplan.SavedList, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lists[id], nil
}

// FindByOwner returns every saved list owned by ownerID
func (f *FakeSavedListRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*mealplan.SavedList, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var owned []*mealplan.SavedList
	for _, list := range f.lists {
		if list.OwnedBy(ownerID) {
			owned = append(owned, list)
		}
	}
	return owned, nil
}

var _ outbound.SavedListRepository = (*FakeSavedListRepository)(nil)

// FakeCacheRepository is an in-memory CacheRepository
type FakeCacheRepository struct {
	mu      sync.Mutex
	entries map[string][]byte

	Deletes []string
}

// NewFakeCacheRepository creates an empty fake cache
func NewFakeCacheRepository() *FakeCacheRepository {
	return &FakeCacheRepository{
		entries: make(map[string][]byte),
	}
}

// Get returns a cached value, nil when absent
func (f *FakeCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.entries[key], nil
}

// Set stores a value, ignoring the TTL
func (f *FakeCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries[key] = value
	return nil
}

// Delete removes a value and records the invalidation
func (f *FakeCacheRepository) Delete(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.entries, key)
	f.Deletes = append(f.Deletes, key)
	return nil
}

// Exists checks if a key exists
func (f *FakeCacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.entries[key]
	return ok, nil
}

var _ outbound.CacheRepository = (*FakeCacheRepository)(nil)

// FakeNotifier records change notifications
type FakeNotifier struct {
	mu            sync.Mutex
	ListChanges   int
	PantryChanges int
	SavedChanges  int
}

// NewFakeNotifier creates a fake notifier
func NewFakeNotifier() *FakeNotifier {
	return &FakeNotifier{}
}

// NotifyListChanged records a list change notification
func (f *FakeNotifier) NotifyListChanged(ctx context.Context, userID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ListChanges++
	return nil
}

// NotifyPantryChanged records a pantry change notification
func (f *FakeNotifier) NotifyPantryChanged(ctx context.Context, userID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.PantryChanges++
	return nil
}

// NotifySavedListsChanged records a saved-lists change notification
func (f *FakeNotifier) NotifySavedListsChanged(ctx context.Context, userID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.SavedChanges++
	return nil
}

var _ outbound.Notifier = (*FakeNotifier)(nil)

// MockAIService provides a mock implementation of AIService
type MockAIService struct {
	mock.Mock
}

// GenerateShoppingList mocks shopping-list generation
func (m *MockAIService) GenerateShoppingList(ctx context.Context, req outbound.ShoppingListRequest) (*outbound.ShoppingListResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*outbound.ShoppingListResponse), args.Error(1)
}

// GenerateMealPlan mocks meal-plan generation
func (m *MockAIService) GenerateMealPlan(ctx context.Context, req outbound.MealPlanRequest) ([]mealplan.DayPlan, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]mealplan.DayPlan), args.Error(1)
}

var _ outbound.AIService = (*MockAIService)(nil)
