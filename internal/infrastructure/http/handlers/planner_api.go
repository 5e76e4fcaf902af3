package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/platewise/platewise/internal/infrastructure/http/middleware"
	"github.com/platewise/platewise/internal/ports/inbound"
	"github.com/platewise/platewise/pkg/errors"
	"go.uber.org/zap"
)

// PlannerAPIHandlers handles AI-assisted planning requests
type PlannerAPIHandlers struct {
	plannerService inbound.PlannerService
	validator      *validator.Validate
	logger         *zap.Logger
}

// NewPlannerAPIHandlers creates a new planner API handlers instance
func NewPlannerAPIHandlers(plannerService inbound.PlannerService, logger *zap.Logger) *PlannerAPIHandlers {
	return &PlannerAPIHandlers{
		plannerService: plannerService,
		validator:      validator.New(),
		logger:         logger,
	}
}

// GenerateSmartListRequest for AI shopping-list generation
type GenerateSmartListRequest struct {
	Diet  string `json:"diet" validate:"max=100"`
	Days  int    `json:"days" validate:"required,min=1,max=14"`
	Notes string `json:"notes" validate:"max=2000"`
}

// GenerateMealPlanRequest for AI meal-plan generation
type GenerateMealPlanRequest struct {
	Days               int      `json:"days" validate:"required,min=1,max=14"`
	DietaryPreferences []string `json:"dietaryPreferences" validate:"max=10,dive,max=100"`
	CustomPrompt       string   `json:"customPrompt" validate:"max=2000"`
	IncludeRecipes     bool     `json:"includeRecipes"`
	Goals              string   `json:"goals" validate:"max=500"`
}

// GenerateSmartList handles POST /api/v1/planner/smart-list
func (h *PlannerAPIHandlers) GenerateSmartList(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, h.logger, errors.NewAppError(errors.CodeUnauthorized, "Authentication required", ""))
		return
	}

	var req GenerateSmartListRequest
	if !h.decode(w, r, &req) {
		return
	}

	result, err := h.plannerService.GenerateSmartShoppingList(r.Context(), inbound.GenerateListCommand{
		UserID: userID,
		Diet:   req.Diet,
		Days:   req.Days,
		Notes:  req.Notes,
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{
		Success: true,
		Data:    result,
		Message: "Smart shopping list generated",
	})
}

// GenerateMealPlan handles POST /api/v1/planner/meal-plan
func (h *PlannerAPIHandlers) GenerateMealPlan(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, h.logger, errors.NewAppError(errors.CodeUnauthorized, "Authentication required", ""))
		return
	}

	var req GenerateMealPlanRequest
	if !h.decode(w, r, &req) {
		return
	}

	plan, err := h.plannerService.GenerateMealPlan(r.Context(), inbound.GeneratePlanCommand{
		UserID:             userID,
		Days:               req.Days,
		DietaryPreferences: req.DietaryPreferences,
		CustomPrompt:       req.CustomPrompt,
		IncludeRecipes:     req.IncludeRecipes,
		Goals:              req.Goals,
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{
		Success: true,
		Data:    map[string]interface{}{"days": plan},
		Message: "Meal plan generated",
	})
}

func (h *PlannerAPIHandlers) decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
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
