// Package mealplan contains the meal-plan domain: the canonical day/slot
// model, ingestion of the two plan shapes in circulation (user-built days
// and generator-built days), and the reconciler that flattens a plan into
// aggregator input.
package mealplan

import (
	"encoding/json"

	"github.com/platewise/platewise/internal/domain/grocery"
)

// PlanOrigin tells which wire shape a day arrived in. It is resolved
// once at ingestion; downstream code never re-inspects the raw shape.
type PlanOrigin string

const (
	// OriginManual is a user-built day: meal slots sit directly on the day.
	OriginManual PlanOrigin = "manual"
	// OriginGenerated is an AI-built day: meal slots nest under "meals"
	// and carry recipe-shaped data (title, description, instructions).
	OriginGenerated PlanOrigin = "generated"
)

// MealKeys are the four slots of a day, in display order.
var MealKeys = []string{"breakfast", "lunch", "dinner", "snacks"}

// Nutrition is the per-meal or per-day nutritional summary.
type Nutrition struct {
	Calories int     `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// MealSlot is one meal within a day. Exactly one of RecipeTitle (a
// recipe-backed slot), CustomName (a free-text slot), or Title (a
// generator slot) names the meal; a nil slot on a day means "nothing
// planned", distinct from a slot with no ingredients.
type MealSlot struct {
	RecipeID     string               `json:"recipeId,omitempty"`
	RecipeTitle  string               `json:"recipeTitle,omitempty"`
	CustomName   string               `json:"customName,omitempty"`
	Title        string               `json:"title,omitempty"`
	Description  string               `json:"description,omitempty"`
	ImageURL     string               `json:"imageUrl,omitempty"`
	Ingredients  []grocery.Ingredient `json:"ingredients,omitempty"`
	Instructions []string             `json:"instructions,omitempty"`
	Nutrition    *Nutrition           `json:"nutrition,omitempty"`
}

// DisplayTitle resolves the provenance title attached to the slot's
// ingredients when the plan is flattened.
func (s *MealSlot) DisplayTitle() string {
	switch {
	case s == nil:
		return fallbackTitle
	case s.RecipeTitle != "":
		return s.RecipeTitle
	case s.CustomName != "":
		return s.CustomName
	case s.Title != "":
		return s.Title
	default:
		return fallbackTitle
	}
}

const fallbackTitle = "Meal Plan"

// DayPlan is the canonical shape for one day of a plan, regardless of
// which wire shape it arrived in.
type DayPlan struct {
	Day            string     `json:"day"`
	Origin         PlanOrigin `json:"-"`
	Breakfast      *MealSlot  `json:"breakfast,omitempty"`
	Lunch          *MealSlot  `json:"lunch,omitempty"`
	Dinner         *MealSlot  `json:"dinner,omitempty"`
	Snacks         *MealSlot  `json:"snacks,omitempty"`
	DailyNutrition *Nutrition `json:"dailyNutrition,omitempty"`
}

// Slots returns the day's populated meal slots in MealKeys order.
func (d DayPlan) Slots() []*MealSlot {
	slots := make([]*MealSlot, 0, 4)
	for _, s := range []*MealSlot{d.Breakfast, d.Lunch, d.Dinner, d.Snacks} {
		if s != nil {
			slots = append(slots, s)
		}
	}
	return slots
}

// wireDay covers both day shapes: user-built days carry the slots at the
// top level, generator days nest them under "meals". The presence of the
// meals wrapper is the shape discriminator.
type wireDay struct {
	Day            string     `json:"day"`
	Breakfast      *MealSlot  `json:"breakfast"`
	Lunch          *MealSlot  `json:"lunch"`
	Dinner         *MealSlot  `json:"dinner"`
	Snacks         *MealSlot  `json:"snacks"`
	DailyNutrition *Nutrition `json:"dailyNutrition"`
	Meals          *wireMeals `json:"meals"`
}

// wireMeals is the slot block nested under a generator day's "meals" key.
type wireMeals struct {
	Breakfast *MealSlot `json:"breakfast,omitempty"`
	Lunch     *MealSlot `json:"lunch,omitempty"`
	Dinner    *MealSlot `json:"dinner,omitempty"`
	Snacks    *MealSlot `json:"snacks,omitempty"`
}

// UnmarshalJSON decodes either day shape into the canonical DayPlan,
// tagging Origin from the shape discriminator. A plan that mixes shapes
// within one day (slots both on the day and under meals) is not
// repaired: the meals wrapper wins and Origin records the day as
// generated, so callers can inspect the inconsistency.
func (d *DayPlan) UnmarshalJSON(data []byte) error {
	var w wireDay
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	d.Day = w.Day
	d.DailyNutrition = w.DailyNutrition

	if w.Meals != nil {
		d.Origin = OriginGenerated
		d.Breakfast = w.Meals.Breakfast
		d.Lunch = w.Meals.Lunch
		d.Dinner = w.Meals.Dinner
		d.Snacks = w.Meals.Snacks
		return nil
	}

	d.Origin = OriginManual
	d.Breakfast = w.Breakfast
	d.Lunch = w.Lunch
	d.Dinner = w.Dinner
	d.Snacks = w.Snacks
	return nil
}

// MarshalJSON re-emits the wire shape the day arrived in. Generated
// days keep their meals wrapper so Origin survives a store-and-reload
// round trip; manual days marshal with the slots flat on the day.
func (d DayPlan) MarshalJSON() ([]byte, error) {
	if d.Origin != OriginGenerated {
		type manualDay DayPlan
		return json.Marshal(manualDay(d))
	}

	return json.Marshal(struct {
		Day            string     `json:"day"`
		Meals          wireMeals  `json:"meals"`
		DailyNutrition *Nutrition `json:"dailyNutrition,omitempty"`
	}{
		Day: d.Day,
		Meals: wireMeals{
			Breakfast: d.Breakfast,
			Lunch:     d.Lunch,
			Dinner:    d.Dinner,
			Snacks:    d.Snacks,
		},
		DailyNutrition: d.DailyNutrition,
	})
}
