// Package list provides the application layer for the active shopping
// list, pantry, and saved-list templates. It is the transactional
// boundary: every mutation runs as a read-merge-write cycle against the
// repositories' optimistic-concurrency contract, retried a bounded
// number of times on conflict.
package list

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/platewise/platewise/internal/domain/grocery"
	"github.com/platewise/platewise/internal/domain/mealplan"
	"github.com/platewise/platewise/internal/domain/pantry"
	"github.com/platewise/platewise/internal/domain/shared"
	"github.com/platewise/platewise/internal/domain/shoppinglist"
	"github.com/platewise/platewise/internal/ports/inbound"
	"github.com/platewise/platewise/internal/ports/outbound"
	"github.com/platewise/platewise/pkg/errors"
	"go.uber.org/zap"
)

// maxWriteAttempts bounds the read-merge-write retry loop on version
// conflicts before surfacing PersistenceConflict to the caller.
const maxWriteAttempts = 3

const listCacheTTL = 5 * time.Minute

// ListService implements the list use cases
type ListService struct {
	lists    outbound.ListRepository
	pantries outbound.PantryRepository
	saved    outbound.SavedListRepository
	cache    outbound.CacheRepository
	notifier outbound.Notifier
	logger   *zap.Logger
}

// NewListService creates a new list service
func NewListService(
	lists outbound.ListRepository,
	pantries outbound.PantryRepository,
	saved outbound.SavedListRepository,
	cache outbound.CacheRepository,
	notifier outbound.Notifier,
	logger *zap.Logger,
) inbound.ListService {
	return &ListService{
		lists:    lists,
		pantries: pantries,
		saved:    saved,
		cache:    cache,
		notifier: notifier,
		logger:   logger.Named("list-service"),
	}
}

// AddIngredients merges ingredients into the user's active list. The
// merge is recomputed from a fresh read on every attempt, so concurrent
// adds converge on the superset of both sets rather than last-write-wins.
func (s *ListService) AddIngredients(ctx context.Context, userID uuid.UUID, ingredients []grocery.Ingredient) (*inbound.ListDTO, error) {
	s.logger.Info("Adding ingredients to active list",
		zap.String("user_id", userID.String()),
		zap.Int("count", len(ingredients)),
	)

	list, err := s.mutateList(ctx, userID, func(l *shoppinglist.ShoppingList) error {
		l.MergeIngredients(ingredients)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.afterListWrite(ctx, userID)
	return s.listToDTO(list), nil
}

// AddMealPlanToActiveList flattens a plan and merges its ingredients
// into the active list.
func (s *ListService) AddMealPlanToActiveList(ctx context.Context, userID uuid.UUID, plan []mealplan.DayPlan) (*inbound.ListDTO, error) {
	s.logger.Info("Adding meal plan to active list",
		zap.String("user_id", userID.String()),
		zap.Int("days", len(plan)),
		zap.Bool("mixed_shapes", mealplan.MixedShapes(plan)),
	)

	return s.AddIngredients(ctx, userID, mealplan.FlattenPlan(plan))
}

// RestoreListToActive applies a saved template to the active list. In
// overwrite mode the list is replaced wholesale with checked flags
// reset; in merge mode it behaves exactly like AddIngredients.
func (s *ListService) RestoreListToActive(ctx context.Context, userID uuid.UUID, items []grocery.Ingredient, mode inbound.RestoreMode) (*inbound.ListDTO, error) {
	s.logger.Info("Restoring saved list to active",
		zap.String("user_id", userID.String()),
		zap.String("mode", string(mode)),
		zap.Int("count", len(items)),
	)

	switch mode {
	case inbound.RestoreModeMerge:
		return s.AddIngredients(ctx, userID, items)
	case inbound.RestoreModeOverwrite:
	default:
		return nil, errors.NewValidationError(fmt.Sprintf("unknown restore mode %q", mode))
	}

	list, err := s.mutateList(ctx, userID, func(l *shoppinglist.ShoppingList) error {
		l.Replace(items)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.afterListWrite(ctx, userID)
	return s.listToDTO(list), nil
}

// ToggleChecked sets the checked flag on the named item. A name not
// present is a no-op, not an error, to tolerate races with concurrent
// removals.
func (s *ListService) ToggleChecked(ctx context.Context, userID uuid.UUID, itemName string, checked bool) error {
	var found bool
	_, err := s.mutateList(ctx, userID, func(l *shoppinglist.ShoppingList) error {
		found = l.Toggle(itemName, checked)
		return nil
	})
	if err != nil {
		return err
	}

	if !found {
		s.logger.Debug("Toggle target not on list, ignoring",
			zap.String("user_id", userID.String()),
			zap.String("item", itemName),
		)
		return nil
	}

	s.afterListWrite(ctx, userID)
	return nil
}

// FinishShopping moves every checked item into the pantry and removes
// it from the active list, committing both through one repository
// transaction. Re-running after a partial failure cannot duplicate
// pantry entries: the checked set is recomputed from the current list
// and the pantry merge is idempotent by normalized name.
func (s *ListService) FinishShopping(ctx context.Context, userID uuid.UUID) (*inbound.FinishShoppingResult, error) {
	s.logger.Info("Finishing shopping trip", zap.String("user_id", userID.String()))

	var (
		list *shoppinglist.ShoppingList
		pan  *pantry.Pantry
		err  error
	)

	for attempt := 1; attempt <= maxWriteAttempts; attempt++ {
		list, err = s.lists.GetList(ctx, userID)
		if err != nil {
			return nil, errors.NewDatabaseError("load shopping list", err)
		}
		pan, err = s.pantries.GetPantry(ctx, userID)
		if err != nil {
			return nil, errors.NewDatabaseError("load pantry", err)
		}

		checked := list.RemoveChecked()
		pan.Stock(checked)

		err = s.lists.FinishShopping(ctx, list, pan)
		if err == nil {
			s.publishEvents(list.Events())
			s.publishEvents(pan.Events())
			s.afterListWrite(ctx, userID)
			s.afterPantryWrite(ctx, userID)
			return &inbound.FinishShoppingResult{
				Moved:     len(checked),
				Remaining: list.Len(),
				List:      s.listToDTO(list),
				Pantry:    s.pantryToDTO(pan),
			}, nil
		}
		if err != outbound.ErrVersionConflict {
			return nil, errors.NewDatabaseError("finish shopping", err)
		}

		s.logger.Warn("Finish shopping hit a version conflict, retrying",
			zap.String("user_id", userID.String()),
			zap.Int("attempt", attempt),
		)
	}

	return nil, errors.NewPersistenceConflictError("shopping list", maxWriteAttempts)
}

// StockPantry merges raw ingredients into the user's pantry.
func (s *ListService) StockPantry(ctx context.Context, userID uuid.UUID, ingredients []grocery.Ingredient) (*inbound.PantryDTO, error) {
	s.logger.Info("Stocking pantry",
		zap.String("user_id", userID.String()),
		zap.Int("count", len(ingredients)),
	)

	pan, err := s.mutatePantry(ctx, userID, func(p *pantry.Pantry) error {
		p.StockIngredients(ingredients)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.afterPantryWrite(ctx, userID)
	return s.pantryToDTO(pan), nil
}

// ConsumeRecipe removes a cooked recipe's ingredients from the pantry.
func (s *ListService) ConsumeRecipe(ctx context.Context, cmd inbound.ConsumeRecipeCommand) (*inbound.PantryDTO, error) {
	s.logger.Info("Consuming recipe from pantry",
		zap.String("user_id", cmd.UserID.String()),
		zap.String("recipe", cmd.RecipeTitle),
	)

	pan, err := s.mutatePantry(ctx, cmd.UserID, func(p *pantry.Pantry) error {
		p.Consume(cmd.RecipeTitle, cmd.Ingredients)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.afterPantryWrite(ctx, cmd.UserID)
	return s.pantryToDTO(pan), nil
}

// SaveListTemplate snapshots a list or plan as a named template. The
// active list it was derived from is never touched.
func (s *ListService) SaveListTemplate(ctx context.Context, cmd inbound.SaveTemplateCommand) (*inbound.SavedListDTO, error) {
	s.logger.Info("Saving list template",
		zap.String("user_id", cmd.UserID.String()),
		zap.String("title", cmd.Title),
		zap.String("type", string(cmd.Type)),
	)

	snapshot, err := mealplan.NewSavedList(cmd.UserID, cmd.Title, cmd.Type, cmd.Items, cmd.PlanDetails)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := snapshot.UpdateMetadata(cmd.Title, cmd.Description, cmd.IsPublic); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.saved.Create(ctx, snapshot); err != nil {
		return nil, errors.NewDatabaseError("create saved list", err)
	}

	s.notifySavedLists(ctx, cmd.UserID)

	return s.savedToDTO(snapshot), nil
}

// UpdatePlan changes a saved list's metadata and visibility. Ownership
// is verified before any write.
func (s *ListService) UpdatePlan(ctx context.Context, cmd inbound.UpdatePlanCommand) (*inbound.SavedListDTO, error) {
	s.logger.Info("Updating saved list",
		zap.String("user_id", cmd.UserID.String()),
		zap.String("plan_id", cmd.PlanID.String()),
	)

	snapshot, err := s.loadOwnedPlan(ctx, cmd.UserID, cmd.PlanID, "update this saved list")
	if err != nil {
		return nil, err
	}

	if err := snapshot.UpdateMetadata(cmd.Title, cmd.Description, cmd.IsPublic); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.saved.Update(ctx, snapshot); err != nil {
		return nil, errors.NewDatabaseError("update saved list", err)
	}

	s.notifySavedLists(ctx, cmd.UserID)

	return s.savedToDTO(snapshot), nil
}

// DeletePlan removes a saved list after verifying ownership.
func (s *ListService) DeletePlan(ctx context.Context, userID, planID uuid.UUID) error {
	s.logger.Info("Deleting saved list",
		zap.String("user_id", userID.String()),
		zap.String("plan_id", planID.String()),
	)

	if _, err := s.loadOwnedPlan(ctx, userID, planID, "delete this saved list"); err != nil {
		return err
	}

	if err := s.saved.Delete(ctx, planID); err != nil {
		return errors.NewDatabaseError("delete saved list", err)
	}

	s.notifySavedLists(ctx, userID)
	return nil
}

// GetActiveList returns the user's active shopping list.
func (s *ListService) GetActiveList(ctx context.Context, userID uuid.UUID) (*inbound.ListDTO, error) {
	if cached := s.cachedList(ctx, userID); cached != nil {
		return cached, nil
	}

	list, err := s.lists.GetList(ctx, userID)
	if err != nil {
		return nil, errors.NewDatabaseError("load shopping list", err)
	}

	dto := s.listToDTO(list)
	s.cacheList(ctx, userID, dto)
	return dto, nil
}

// GetPantry returns the user's pantry.
func (s *ListService) GetPantry(ctx context.Context, userID uuid.UUID) (*inbound.PantryDTO, error) {
	pan, err := s.pantries.GetPantry(ctx, userID)
	if err != nil {
		return nil, errors.NewDatabaseError("load pantry", err)
	}
	return s.pantryToDTO(pan), nil
}

// GetSavedLists returns every template owned by the user.
func (s *ListService) GetSavedLists(ctx context.Context, userID uuid.UUID) ([]inbound.SavedListDTO, error) {
	snapshots, err := s.saved.FindByOwner(ctx, userID)
	if err != nil {
		return nil, errors.NewDatabaseError("list saved lists", err)
	}

	dtos := make([]inbound.SavedListDTO, len(snapshots))
	for i, snapshot := range snapshots {
		dtos[i] = *s.savedToDTO(snapshot)
	}
	return dtos, nil
}

// GetSavedList returns one saved list. Non-owners may read it only if
// it is public.
func (s *ListService) GetSavedList(ctx context.Context, userID, planID uuid.UUID) (*inbound.SavedListDTO, error) {
	snapshot, err := s.saved.FindByID(ctx, planID)
	if err != nil {
		return nil, errors.NewDatabaseError("load saved list", err)
	}
	if snapshot == nil {
		return nil, errors.NewPlanNotFoundError(planID.String())
	}
	if !snapshot.OwnedBy(userID) && !snapshot.IsPublic() {
		return nil, errors.NewNotListOwnerError("view this saved list")
	}
	return s.savedToDTO(snapshot), nil
}

// Helper methods

// mutateList runs one read-mutate-write cycle against the active list,
// retrying on version conflicts with a fresh read each time.
func (s *ListService) mutateList(ctx context.Context, userID uuid.UUID, mutate func(*shoppinglist.ShoppingList) error) (*shoppinglist.ShoppingList, error) {
	for attempt := 1; attempt <= maxWriteAttempts; attempt++ {
		list, err := s.lists.GetList(ctx, userID)
		if err != nil {
			return nil, errors.NewDatabaseError("load shopping list", err)
		}

		if err := mutate(list); err != nil {
			return nil, errors.Wrap(err, "failed to apply list mutation")
		}

		err = s.lists.SaveList(ctx, list)
		if err == nil {
			s.publishEvents(list.Events())
			return list, nil
		}
		if err != outbound.ErrVersionConflict {
			return nil, errors.NewDatabaseError("save shopping list", err)
		}

		s.logger.Warn("List write hit a version conflict, retrying",
			zap.String("user_id", userID.String()),
			zap.Int("attempt", attempt),
		)
	}

	return nil, errors.NewPersistenceConflictError("shopping list", maxWriteAttempts)
}

// mutatePantry is the pantry counterpart of mutateList.
func (s *ListService) mutatePantry(ctx context.Context, userID uuid.UUID, mutate func(*pantry.Pantry) error) (*pantry.Pantry, error) {
	for attempt := 1; attempt <= maxWriteAttempts; attempt++ {
		pan, err := s.pantries.GetPantry(ctx, userID)
		if err != nil {
			return nil, errors.NewDatabaseError("load pantry", err)
		}

		if err := mutate(pan); err != nil {
			return nil, errors.Wrap(err, "failed to apply pantry mutation")
		}

		err = s.pantries.SavePantry(ctx, pan)
		if err == nil {
			s.publishEvents(pan.Events())
			return pan, nil
		}
		if err != outbound.ErrVersionConflict {
			return nil, errors.NewDatabaseError("save pantry", err)
		}

		s.logger.Warn("Pantry write hit a version conflict, retrying",
			zap.String("user_id", userID.String()),
			zap.Int("attempt", attempt),
		)
	}

	return nil, errors.NewPersistenceConflictError("pantry", maxWriteAttempts)
}

// loadOwnedPlan loads a saved list and enforces ownership.
func (s *ListService) loadOwnedPlan(ctx context.Context, userID, planID uuid.UUID, action string) (*mealplan.SavedList, error) {
	snapshot, err := s.saved.FindByID(ctx, planID)
	if err != nil {
		return nil, errors.NewDatabaseError("load saved list", err)
	}
	if snapshot == nil {
		return nil, errors.NewPlanNotFoundError(planID.String())
	}
	if !snapshot.OwnedBy(userID) {
		return nil, errors.NewNotListOwnerError(action)
	}
	return snapshot, nil
}

// publishEvents emits the events an aggregate recorded during a
// successful write. Only the winning attempt's events are published:
// entities discarded by a conflict retry are never drained. The write
// has already committed, so publication never fails the operation.
func (s *ListService) publishEvents(events []shared.DomainEvent) {
	for _, event := range events {
		s.logger.Info("Domain event",
			zap.String("event", event.EventName()),
			zap.Time("occurred_at", event.OccurredAt()),
		)
	}
}

// afterListWrite invalidates the cached list and notifies listeners.
// Both are best-effort; failures are logged and swallowed.
func (s *ListService) afterListWrite(ctx context.Context, userID uuid.UUID) {
	if err := s.cache.Delete(ctx, listCacheKey(userID)); err != nil {
		s.logger.Debug("List cache invalidation failed", zap.Error(err))
	}
	if err := s.notifier.NotifyListChanged(ctx, userID); err != nil {
		s.logger.Debug("List change notification failed", zap.Error(err))
	}
}

func (s *ListService) afterPantryWrite(ctx context.Context, userID uuid.UUID) {
	if err := s.notifier.NotifyPantryChanged(ctx, userID); err != nil {
		s.logger.Debug("Pantry change notification failed", zap.Error(err))
	}
}

func (s *ListService) notifySavedLists(ctx context.Context, userID uuid.UUID) {
	if err := s.notifier.NotifySavedListsChanged(ctx, userID); err != nil {
		s.logger.Debug("Saved lists notification failed", zap.Error(err))
	}
}

// Cache operations

func listCacheKey(userID uuid.UUID) string {
	return fmt.Sprintf("list:active:%s", userID.String())
}

func (s *ListService) cachedList(ctx context.Context, userID uuid.UUID) *inbound.ListDTO {
	data, err := s.cache.Get(ctx, listCacheKey(userID))
	if err != nil || len(data) == 0 {
		return nil
	}
	var dto inbound.ListDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return nil
	}
	return &dto
}

func (s *ListService) cacheList(ctx context.Context, userID uuid.UUID, dto *inbound.ListDTO) {
	data, err := json.Marshal(dto)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, listCacheKey(userID), data, listCacheTTL); err != nil {
		s.logger.Debug("List cache set failed", zap.Error(err))
	}
}

// DTO mapping

func (s *ListService) listToDTO(list *shoppinglist.ShoppingList) *inbound.ListDTO {
	return &inbound.ListDTO{
		UserID:    list.UserID(),
		Items:     itemsToDTO(list.Items()),
		UpdatedAt: list.UpdatedAt().Format(time.RFC3339),
	}
}

func (s *ListService) pantryToDTO(p *pantry.Pantry) *inbound.PantryDTO {
	return &inbound.PantryDTO{
		UserID:    p.UserID(),
		Items:     itemsToDTO(p.Items()),
		UpdatedAt: p.UpdatedAt().Format(time.RFC3339),
	}
}

func itemsToDTO(items []grocery.Item) []inbound.ItemDTO {
	dtos := make([]inbound.ItemDTO, len(items))
	for i, item := range items {
		dtos[i] = inbound.ItemDTO{
			Name:       item.Name,
			Provenance: item.Provenance,
			Barcode:    item.Barcode,
			IsChecked:  item.IsChecked,
		}
	}
	return dtos
}

func (s *ListService) savedToDTO(snapshot *mealplan.SavedList) *inbound.SavedListDTO {
	return &inbound.SavedListDTO{
		ID:          snapshot.ID(),
		OwnerID:     snapshot.OwnerID(),
		Title:       snapshot.Title(),
		Description: snapshot.Description(),
		IsPublic:    snapshot.IsPublic(),
		Type:        snapshot.Type(),
		Items:       snapshot.Items(),
		PlanDetails: snapshot.PlanDetails(),
		ItemCount:   snapshot.ItemCount(),
		CreatedAt:   snapshot.CreatedAt().Format(time.RFC3339),
	}
}
