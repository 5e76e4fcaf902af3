// Package planner provides the application layer for AI-assisted
// planning. Generation failures are surfaced without touching any
// persisted state; only a complete, parsed result enters the
// reconciliation pipeline.
package planner

import (
	"context"
	"fmt"

	"github.com/platewise/platewise/internal/domain/grocery"
	"github.com/platewise/platewise/internal/domain/mealplan"
	"github.com/platewise/platewise/internal/ports/inbound"
	"github.com/platewise/platewise/internal/ports/outbound"
	"github.com/platewise/platewise/pkg/errors"
	"go.uber.org/zap"
)

const (
	minPlanDays = 1
	maxPlanDays = 14
)

// PlannerService implements the planning use cases
type PlannerService struct {
	ai     outbound.AIService
	lists  inbound.ListService
	logger *zap.Logger
}

// NewPlannerService creates a new planner service
func NewPlannerService(ai outbound.AIService, lists inbound.ListService, logger *zap.Logger) inbound.PlannerService {
	return &PlannerService{
		ai:     ai,
		lists:  lists,
		logger: logger.Named("planner-service"),
	}
}

// GenerateSmartShoppingList asks the model for a meal outline and a
// structured ingredient list, then merges the ingredients into the
// user's active list. If generation fails nothing is persisted.
func (s *PlannerService) GenerateSmartShoppingList(ctx context.Context, cmd inbound.GenerateListCommand) (*inbound.SmartListResult, error) {
	if err := validateDays(cmd.Days); err != nil {
		return nil, err
	}

	s.logger.Info("Generating smart shopping list",
		zap.String("user_id", cmd.UserID.String()),
		zap.String("diet", cmd.Diet),
		zap.Int("days", cmd.Days),
	)

	resp, err := s.ai.GenerateShoppingList(ctx, outbound.ShoppingListRequest{
		Diet:  cmd.Diet,
		Days:  cmd.Days,
		Notes: cmd.Notes,
	})
	if err != nil {
		return nil, errors.NewGenerationFailedError(err)
	}
	if len(resp.ShoppingList) == 0 {
		return nil, errors.NewGenerationFailedError(fmt.Errorf("generator returned an empty shopping list"))
	}

	ingredients := make([]grocery.Ingredient, 0, len(resp.ShoppingList))
	for _, item := range resp.ShoppingList {
		if item.Name == "" {
			continue
		}
		ingredients = append(ingredients, grocery.Ingredient{
			Name:   item.Name,
			Amount: item.Amount,
		})
	}

	listDTO, err := s.lists.AddIngredients(ctx, cmd.UserID, ingredients)
	if err != nil {
		return nil, err
	}

	outline := make([]inbound.MealOutline, len(resp.MealPlan))
	for i, day := range resp.MealPlan {
		outline[i] = inbound.MealOutline{Day: day.Day, Meals: day.Meals}
	}

	s.logger.Info("Smart shopping list generated",
		zap.String("user_id", cmd.UserID.String()),
		zap.Int("ingredients", len(ingredients)),
	)

	return &inbound.SmartListResult{
		MealPlan:    outline,
		Ingredients: ingredients,
		List:        listDTO,
	}, nil
}

// GenerateMealPlan asks the model for a full generated-shape plan. The
// generator promises exactly cmd.Days days with all four meals; the
// result is still defended with safe defaults before being returned.
func (s *PlannerService) GenerateMealPlan(ctx context.Context, cmd inbound.GeneratePlanCommand) ([]mealplan.DayPlan, error) {
	if err := validateDays(cmd.Days); err != nil {
		return nil, err
	}

	s.logger.Info("Generating meal plan",
		zap.String("user_id", cmd.UserID.String()),
		zap.Int("days", cmd.Days),
		zap.Strings("dietary", cmd.DietaryPreferences),
	)

	days, err := s.ai.GenerateMealPlan(ctx, outbound.MealPlanRequest{
		Days:               cmd.Days,
		DietaryPreferences: cmd.DietaryPreferences,
		CustomPrompt:       cmd.CustomPrompt,
		IncludeRecipes:     cmd.IncludeRecipes,
		Goals:              cmd.Goals,
	})
	if err != nil {
		return nil, errors.NewGenerationFailedError(err)
	}
	if len(days) == 0 {
		return nil, errors.NewGenerationFailedError(fmt.Errorf("generator returned no days"))
	}

	days = defendPlan(days, cmd.Days)

	s.logger.Info("Meal plan generated",
		zap.String("user_id", cmd.UserID.String()),
		zap.Int("days", len(days)),
	)

	return days, nil
}

// defendPlan enforces the generator contract with safe defaults: the
// plan is truncated or padded to exactly want days, every day is tagged
// as generated, and absent slots get an explicitly empty meal so the
// plan renders with all four keys.
func defendPlan(days []mealplan.DayPlan, want int) []mealplan.DayPlan {
	if len(days) > want {
		days = days[:want]
	}
	for len(days) < want {
		days = append(days, mealplan.DayPlan{
			Day:    fmt.Sprintf("Day %d", len(days)+1),
			Origin: mealplan.OriginGenerated,
		})
	}

	for i := range days {
		days[i].Origin = mealplan.OriginGenerated
		if days[i].Day == "" {
			days[i].Day = fmt.Sprintf("Day %d", i+1)
		}
		if days[i].Breakfast == nil {
			days[i].Breakfast = &mealplan.MealSlot{Title: "Breakfast"}
		}
		if days[i].Lunch == nil {
			days[i].Lunch = &mealplan.MealSlot{Title: "Lunch"}
		}
		if days[i].Dinner == nil {
			days[i].Dinner = &mealplan.MealSlot{Title: "Dinner"}
		}
		if days[i].Snacks == nil {
			days[i].Snacks = &mealplan.MealSlot{Title: "Snacks"}
		}
	}
	return days
}

func validateDays(days int) error {
	if days < minPlanDays || days > maxPlanDays {
		return errors.NewValidationError(fmt.Sprintf("days must be between %d and %d", minPlanDays, maxPlanDays))
	}
	return nil
}
