package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/platewise/platewise/internal/domain/grocery"
	"github.com/platewise/platewise/internal/domain/mealplan"
	"github.com/platewise/platewise/internal/infrastructure/http/middleware"
	"github.com/platewise/platewise/internal/ports/inbound"
	"github.com/platewise/platewise/pkg/errors"
	"go.uber.org/zap"
)

// ListAPIHandlers handles shopping list, pantry and saved-list requests
type ListAPIHandlers struct {
	listService inbound.ListService
	validator   *validator.Validate
	logger      *zap.Logger
}

// NewListAPIHandlers creates a new list API handlers instance
func NewListAPIHandlers(listService inbound.ListService, logger *zap.Logger) *ListAPIHandlers {
	return &ListAPIHandlers{
		listService: listService,
		validator:   validator.New(),
		logger:      logger,
	}
}

// Request types

// AddIngredientsRequest adds recipe ingredients to the active list
type AddIngredientsRequest struct {
	Ingredients []grocery.Ingredient `json:"ingredients" validate:"required,min=1"`
}

// AddMealPlanRequest merges a whole plan's ingredients into the list
type AddMealPlanRequest struct {
	Days []mealplan.DayPlan `json:"days" validate:"required,min=1"`
}

// RestoreListRequest applies a saved template to the active list
type RestoreListRequest struct {
	Items []grocery.Ingredient `json:"items" validate:"required"`
	Mode  string               `json:"mode" validate:"required,oneof=merge overwrite"`
}

// ToggleItemRequest checks or unchecks one list item
type ToggleItemRequest struct {
	Name    string `json:"name" validate:"required"`
	Checked bool   `json:"checked"`
}

// StockPantryRequest adds items directly to the pantry
type StockPantryRequest struct {
	Ingredients []grocery.Ingredient `json:"ingredients" validate:"required,min=1"`
}

// ConsumeRecipeRequest removes a cooked recipe's ingredients from the pantry
type ConsumeRecipeRequest struct {
	RecipeTitle string               `json:"recipeTitle" validate:"required"`
	Ingredients []grocery.Ingredient `json:"ingredients" validate:"required,min=1"`
}

// SaveTemplateRequest snapshots the current list or a plan
type SaveTemplateRequest struct {
	Title       string               `json:"title" validate:"required,max=200"`
	Description string               `json:"description" validate:"max=1000"`
	IsPublic    bool                 `json:"isPublic"`
	Type        string               `json:"type" validate:"required,oneof=meal_plan shopping_list"`
	Items       []grocery.Ingredient `json:"items"`
	PlanDetails []mealplan.DayPlan   `json:"planDetails"`
}

// UpdatePlanRequest changes a saved list's metadata
type UpdatePlanRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description" validate:"max=1000"`
	IsPublic    bool   `json:"isPublic"`
}

// GetList handles GET /api/v1/list
func (h *ListAPIHandlers) GetList(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, h.logger, errors.NewAppError(errors.CodeUnauthorized, "Authentication required", ""))
		return
	}

	list, err := h.listService.GetActiveList(r.Context(), userID)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{Success: true, Data: list})
}

// AddIngredients handles POST /api/v1/list/ingredients
func (h *ListAPIHandlers) AddIngredients(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, h.logger, errors.NewAppError(errors.CodeUnauthorized, "Authentication required", ""))
		return
	}

	var req AddIngredientsRequest
	if !h.decode(w, r, &req) {
		return
	}

	list, err := h.listService.AddIngredients(r.Context(), userID, req.Ingredients)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{
		Success: true,
		Data:    list,
		Message: "Ingredients added to shopping list",
	})
}

// AddMealPlan handles POST /api/v1/list/meal-plan
func (h *ListAPIHandlers) AddMealPlan(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, h.logger, errors.NewAppError(errors.CodeUnauthorized, "Authentication required", ""))
		return
	}

	var req AddMealPlanRequest
	if !h.decode(w, r, &req) {
		return
	}

	list, err := h.listService.AddMealPlanToActiveList(r.Context(), userID, req.Days)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{
		Success: true,
		Data:    list,
		Message: "Meal plan added to shopping list",
	})
}

// RestoreList handles POST /api/v1/list/restore
func (h *ListAPIHandlers) RestoreList(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, h.logger, errors.NewAppError(errors.CodeUnauthorized, "Authentication required", ""))
		return
	}

	var req RestoreListRequest
	if !h.decode(w, r, &req) {
		return
	}

	list, err := h.listService.RestoreListToActive(r.Context(), userID, req.Items, inbound.RestoreMode(req.Mode))
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{
		Success: true,
		Data:    list,
		Message: "List restored",
	})
}

// ToggleItem handles PATCH /api/v1/list/items
func (h *ListAPIHandlers) ToggleItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, h.logger, errors.NewAppError(errors.CodeUnauthorized, "Authentication required", ""))
		return
	}

	var req ToggleItemRequest
	if !h.decode(w, r, &req) {
		return
	}

	if err := h.listService.ToggleChecked(r.Context(), userID, req.Name, req.Checked); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{Success: true, Message: "Item updated"})
}

// FinishShopping handles POST /api/v1/list/finish
func (h *ListAPIHandlers) FinishShopping(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, h.logger, errors.NewAppError(errors.CodeUnauthorized, "Authentication required", ""))
		return
	}

	result, err := h.listService.FinishShopping(r.Context(), userID)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{
		Success: true,
		Data:    result,
		Message: "Checked items moved to pantry",
	})
}

// GetPantry handles GET /api/v1/pantry
func (h *ListAPIHandlers) GetPantry(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, h.logger, errors.NewAppError(errors.CodeUnauthorized, "Authentication required", ""))
		return
	}

	pantry, err := h.listService.GetPantry(r.Context(), userID)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{Success: true, Data: pantry})
}

// StockPantry handles POST /api/v1/pantry/stock
func (h *ListAPIHandlers) StockPantry(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, h.logger, errors.NewAppError(errors.CodeUnauthorized, "Authentication required", ""))
		return
	}

	var req StockPantryRequest
	if !h.decode(w, r, &req) {
		return
	}

	pantry, err := h.listService.StockPantry(r.Context(), userID, req.Ingredients)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{
		Success: true,
		Data:    pantry,
		Message: "Pantry stocked",
	})
}

// ConsumeRecipe handles POST /api/v1/pantry/consume
func (h *ListAPIHandlers) ConsumeRecipe(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, h.logger, errors.NewAppError(errors.CodeUnauthorized, "Authentication required", ""))
		return
	}

	var req ConsumeRecipeRequest
	if !h.decode(w, r, &req) {
		return
	}

	pantry, err := h.listService.ConsumeRecipe(r.Context(), inbound.ConsumeRecipeCommand{
		UserID:      userID,
		RecipeTitle: req.RecipeTitle,
		Ingredients: req.Ingredients,
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{
		Success: true,
		Data:    pantry,
		Message: "Recipe ingredients consumed",
	})
}

// SaveTemplate handles POST /api/v1/saved-lists
func (h *ListAPIHandlers) SaveTemplate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, h.logger, errors.NewAppError(errors.CodeUnauthorized, "Authentication required", ""))
		return
	}

	var req SaveTemplateRequest
	if !h.decode(w, r, &req) {
		return
	}

	saved, err := h.listService.SaveListTemplate(r.Context(), inbound.SaveTemplateCommand{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		IsPublic:    req.IsPublic,
		Type:        mealplan.SavedListType(req.Type),
		Items:       req.Items,
		PlanDetails: req.PlanDetails,
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusCreated, APIResponse{
		Success: true,
		Data:    saved,
		Message: "List saved",
	})
}

// ListSaved handles GET /api/v1/saved-lists
func (h *ListAPIHandlers) ListSaved(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, h.logger, errors.NewAppError(errors.CodeUnauthorized, "Authentication required", ""))
		return
	}

	saved, err := h.listService.GetSavedLists(r.Context(), userID)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{Success: true, Data: saved})
}

// GetSaved handles GET /api/v1/saved-lists/{id}
func (h *ListAPIHandlers) GetSaved(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, h.logger, errors.NewAppError(errors.CodeUnauthorized, "Authentication required", ""))
		return
	}

	planID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, h.logger, errors.NewBadRequestError("Invalid list ID"))
		return
	}

	saved, err := h.listService.GetSavedList(r.Context(), userID, planID)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{Success: true, Data: saved})
}

// UpdateSaved handles PUT /api/v1/saved-lists/{id}
func (h *ListAPIHandlers) UpdateSaved(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, h.logger, errors.NewAppError(errors.CodeUnauthorized, "Authentication required", ""))
		return
	}

	planID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, h.logger, errors.NewBadRequestError("Invalid list ID"))
		return
	}

	var req UpdatePlanRequest
	if !h.decode(w, r, &req) {
		return
	}

	saved, err := h.listService.UpdatePlan(r.Context(), inbound.UpdatePlanCommand{
		UserID:      userID,
		PlanID:      planID,
		Title:       req.Title,
		Description: req.Description,
		IsPublic:    req.IsPublic,
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{
		Success: true,
		Data:    saved,
		Message: "List updated",
	})
}

// DeleteSaved handles DELETE /api/v1/saved-lists/{id}
func (h *ListAPIHandlers) DeleteSaved(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, h.logger, errors.NewAppError(errors.CodeUnauthorized, "Authentication required", ""))
		return
	}

	planID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, h.logger, errors.NewBadRequestError("Invalid list ID"))
		return
	}

	if err := h.listService.DeletePlan(r.Context(), userID, planID); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{Success: true, Message: "List deleted"})
}

// decode unmarshals and validates a request body, writing the error
// response itself on failure.
func (h *ListAPIHandlers) decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, r, h.logger, errors.NewBadRequestError("Invalid request body"))
		return false
	}
	if err := h.validator.Struct(dst); err != nil {
		writeError(w, r, h.logger, errors.NewValidationError(err.Error()))
		return false
	}
	return true
}
