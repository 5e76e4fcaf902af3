// Package testutils provides test data factories for consistent test data generation
package testutils

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/platewise/platewise/internal/domain/grocery"
	"github.com/platewise/platewise/internal/domain/mealplan"
)

// IngredientFactory provides methods to create test ingredients
type IngredientFactory struct {
	faker *gofakeit.Faker
}

// NewIngredientFactory creates a new ingredient factory with seeded faker
func NewIngredientFactory(seed int64) *IngredientFactory {
	return &IngredientFactory{
		faker: gofakeit.New(seed),
	}
}

// Ingredient creates one ingredient with a random name and amount
func (f *IngredientFactory) Ingredient() grocery.Ingredient {
	return grocery.Ingredient{
		Name:   f.faker.Vegetable(),
		Amount: fmt.Sprintf("%d %s", f.faker.Number(1, 500), f.faker.RandomString([]string{"g", "ml", "pcs", "cups"})),
	}
}

// Ingredients creates n random ingredients. Names may repeat, which is
// realistic input for the aggregator.
func (f *IngredientFactory) Ingredients(n int) []grocery.Ingredient {
	ingredients := make([]grocery.Ingredient, n)
	for i := range ingredients {
		ingredients[i] = f.Ingredient()
	}
	return ingredients
}

// Named creates an ingredient with a fixed name
func (f *IngredientFactory) Named(name, amount, recipeTitle string) grocery.Ingredient {
	return grocery.Ingredient{
		Name:        name,
		Amount:      amount,
		RecipeTitle: recipeTitle,
	}
}

// DayPlanBuilder provides a fluent interface for building test day plans
type DayPlanBuilder struct {
	day    string
	origin mealplan.PlanOrigin
	slots  map[string]*mealplan.MealSlot
}

// NewDayPlanBuilder creates a new day plan builder with default values
func NewDayPlanBuilder() *DayPlanBuilder {
	return &DayPlanBuilder{
		day:    "Day 1",
		origin: mealplan.OriginManual,
		slots:  make(map[string]*mealplan.MealSlot),
	}
}

// WithDay sets the day label
func (b *DayPlanBuilder) WithDay(day string) *DayPlanBuilder {
	b.day = day
	return b
}

// WithOrigin sets the plan origin
func (b *DayPlanBuilder) WithOrigin(origin mealplan.PlanOrigin) *DayPlanBuilder {
	b.origin = origin
	return b
}

// WithBreakfast sets the breakfast slot
func (b *DayPlanBuilder) WithBreakfast(slot *mealplan.MealSlot) *DayPlanBuilder {
	b.slots["breakfast"] = slot
	return b
}

// WithLunch sets the lunch slot
func (b *DayPlanBuilder) WithLunch(slot *mealplan.MealSlot) *DayPlanBuilder {
	b.slots["lunch"] = slot
	return b
}

// WithDinner sets the dinner slot
func (b *DayPlanBuilder) WithDinner(slot *mealplan.MealSlot) *DayPlanBuilder {
	b.slots["dinner"] = slot
	return b
}

// WithSnacks sets the snacks slot
func (b *DayPlanBuilder) WithSnacks(slot *mealplan.MealSlot) *DayPlanBuilder {
	b.slots["snacks"] = slot
	return b
}

// Build creates the day plan
func (b *DayPlanBuilder) Build() mealplan.DayPlan {
	return mealplan.DayPlan{
		Day:       b.day,
		Origin:    b.origin,
		Breakfast: b.slots["breakfast"],
		Lunch:     b.slots["lunch"],
		Dinner:    b.slots["dinner"],
		Snacks:    b.slots["snacks"],
	}
}

// RecipeSlot creates a recipe-backed meal slot with the given ingredients
func RecipeSlot(recipeTitle string, ingredients ...grocery.Ingredient) *mealplan.MealSlot {
	return &mealplan.MealSlot{
		RecipeID:    uuid.NewString(),
		RecipeTitle: recipeTitle,
		Ingredients: ingredients,
	}
}

// GeneratedSlot creates a generator-shaped meal slot
func GeneratedSlot(title string, ingredients ...grocery.Ingredient) *mealplan.MealSlot {
	return &mealplan.MealSlot{
		Title:        title,
		Description:  "A generated meal",
		Ingredients:  ingredients,
		Instructions: []string{"Combine everything.", "Serve."},
	}
}

// SavedListSnapshot creates a valid saved shopping-list snapshot
func SavedListSnapshot(ownerID uuid.UUID, title string, items []grocery.Ingredient) *mealplan.SavedList {
	list, err := mealplan.NewSavedList(ownerID, title, mealplan.SavedListTypeShoppingList, items, nil)
	if err != nil {
		panic(fmt.Sprintf("invalid saved list fixture: %v", err))
	}
	return list
}

// SavedPlanSnapshot creates a valid saved meal-plan snapshot
func SavedPlanSnapshot(ownerID uuid.UUID, title string, days []mealplan.DayPlan) *mealplan.SavedList {
	list, err := mealplan.NewSavedList(ownerID, title, mealplan.SavedListTypeMealPlan, nil, days)
	if err != nil {
		panic(fmt.Sprintf("invalid saved plan fixture: %v", err))
	}
	return list
}

// FixedTime returns a stable timestamp for deterministic assertions
func FixedTime() time.Time {
	return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
}
