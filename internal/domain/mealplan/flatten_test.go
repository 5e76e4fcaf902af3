package mealplan

import (
	"testing"

	"github.com/platewise/platewise/internal/domain/grocery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// FlattenTestSuite provides a test suite for plan flattening
type FlattenTestSuite struct {
	suite.Suite
}

// TestFlattenPlan tests the plan-to-ingredient reconciliation
func (suite *FlattenTestSuite) TestFlattenPlan() {
	suite.Run("CollectsEveryIngredientFromEverySlot", func() {
		// Arrange
		days := []DayPlan{
			{
				Day: "Monday",
				Breakfast: &MealSlot{
					RecipeTitle: "Oatmeal",
					Ingredients: []grocery.Ingredient{{Name: "Oats", Amount: "50g"}},
				},
				Dinner: &MealSlot{
					RecipeTitle: "Stir Fry",
					Ingredients: []grocery.Ingredient{
						{Name: "Chicken", Amount: "200g"},
						{Name: "Rice", Amount: "1 cup"},
					},
				},
			},
			{
				Day: "Tuesday",
				Lunch: &MealSlot{
					CustomName:  "Leftover Bowl",
					Ingredients: []grocery.Ingredient{{Name: "Rice", Amount: "1 cup"}},
				},
			},
		}

		// Act
		flattened := FlattenPlan(days)

		// Assert
		require.Len(suite.T(), flattened, 4)
		assert.Equal(suite.T(), "Oats", flattened[0].Name)
		assert.Equal(suite.T(), "Oatmeal", flattened[0].RecipeTitle)
		assert.Equal(suite.T(), "Stir Fry", flattened[1].RecipeTitle)
		assert.Equal(suite.T(), "Leftover Bowl", flattened[3].RecipeTitle)
	})

	suite.Run("TagsUnnamedSlotsWithFallbackTitle", func() {
		// Arrange
		days := []DayPlan{{
			Day: "Day 1",
			Snacks: &MealSlot{
				Ingredients: []grocery.Ingredient{{Name: "Almonds", Amount: "30g"}},
			},
		}}

		// Act
		flattened := FlattenPlan(days)

		// Assert
		require.Len(suite.T(), flattened, 1)
		assert.Equal(suite.T(), "Meal Plan", flattened[0].RecipeTitle)
	})

	suite.Run("NilAndEmptySlotsContributeNothing", func() {
		// Arrange
		days := []DayPlan{{
			Day:       "Rest Day",
			Breakfast: &MealSlot{Title: "Fasting"},
		}}

		// Act
		flattened := FlattenPlan(days)

		// Assert
		assert.Empty(suite.T(), flattened)
	})

	suite.Run("FlattenThenAggregate_GroupsAcrossDays", func() {
		// The full reconciliation path: two days sharing rice end up
		// with one rice line carrying both provenance entries.
		days := []DayPlan{
			{Day: "Mon", Dinner: &MealSlot{RecipeTitle: "Stir Fry", Ingredients: []grocery.Ingredient{{Name: "Rice", Amount: "1 cup"}}}},
			{Day: "Tue", Dinner: &MealSlot{RecipeTitle: "Curry", Ingredients: []grocery.Ingredient{{Name: "rice", Amount: "200g"}}}},
		}

		items := grocery.Aggregate(FlattenPlan(days))

		require.Len(suite.T(), items, 1)
		assert.Equal(suite.T(), []string{"1 cup", "200g"}, items[0].Amounts())
		assert.Equal(suite.T(), "Stir Fry", items[0].Provenance[0].RecipeTitle)
		assert.Equal(suite.T(), "Curry", items[0].Provenance[1].RecipeTitle)
	})
}

// TestMixedShapes tests mixed-origin detection
func (suite *FlattenTestSuite) TestMixedShapes() {
	suite.Run("DetectsManualAndGeneratedTogether", func() {
		days := []DayPlan{
			{Day: "Mon", Origin: OriginManual},
			{Day: "Tue", Origin: OriginGenerated},
		}
		assert.True(suite.T(), MixedShapes(days))
	})

	suite.Run("UniformPlanIsNotMixed", func() {
		days := []DayPlan{
			{Day: "Mon", Origin: OriginGenerated},
			{Day: "Tue", Origin: OriginGenerated},
		}
		assert.False(suite.T(), MixedShapes(days))
	})
}

func TestFlattenTestSuite(t *testing.T) {
	suite.Run(t, new(FlattenTestSuite))
}
