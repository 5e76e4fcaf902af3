package gorm

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/platewise/platewise/internal/domain/grocery"
	"github.com/platewise/platewise/internal/domain/mealplan"
	"github.com/platewise/platewise/internal/domain/pantry"
	"github.com/platewise/platewise/internal/domain/shoppinglist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// MapperTestSuite provides a test suite for entity/model mapping
type MapperTestSuite struct {
	suite.Suite
}

// TestListRoundTrip tests shopping list entity/model conversion
func (suite *MapperTestSuite) TestListRoundTrip() {
	// Arrange
	userID := uuid.New()
	entity := shoppinglist.Rehydrate(userID, 3, []grocery.Item{
		{
			Name:           "Milk",
			NormalizedName: "milk",
			Provenance:     []grocery.SourceAmount{{Amount: "1L", RecipeTitle: "Porridge"}},
			IsChecked:      true,
		},
	}, time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC))

	// Act
	back := ModelToList(ListToModel(entity))

	// Assert
	assert.Equal(suite.T(), entity.UserID(), back.UserID())
	assert.Equal(suite.T(), entity.Version(), back.Version())
	assert.Equal(suite.T(), entity.Items(), back.Items())
	assert.Equal(suite.T(), entity.UpdatedAt(), back.UpdatedAt())
}

// TestPantryRoundTrip tests pantry entity/model conversion
func (suite *MapperTestSuite) TestPantryRoundTrip() {
	userID := uuid.New()
	entity := pantry.Rehydrate(userID, 7, []grocery.Item{
		{Name: "Rice", NormalizedName: "rice", Provenance: []grocery.SourceAmount{{Amount: "2kg"}}},
	}, time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC))

	back := ModelToPantry(PantryToModel(entity))

	assert.Equal(suite.T(), entity.UserID(), back.UserID())
	assert.Equal(suite.T(), entity.Version(), back.Version())
	assert.Equal(suite.T(), entity.Items(), back.Items())
}

// TestSavedPlanRoundTrip tests that a stored generated plan keeps its
// origin through the JSON column
func (suite *MapperTestSuite) TestSavedPlanRoundTrip() {
	// Arrange: a generated-shape day inside a saved meal plan
	owner := uuid.New()
	plan := []mealplan.DayPlan{
		{
			Day:    "Day 1",
			Origin: mealplan.OriginGenerated,
			Lunch:  &mealplan.MealSlot{Title: "Grain Bowl"},
		},
	}
	entity, err := mealplan.NewSavedList(owner, "Week of meals", mealplan.SavedListTypeMealPlan, nil, plan)
	require.NoError(suite.T(), err)

	// Act: through the model's JSON column encoding and back
	model := SavedListToModel(entity)
	raw, err := model.PlanDetails.Value()
	require.NoError(suite.T(), err)

	var reloaded PlanJSON
	require.NoError(suite.T(), reloaded.Scan(raw))

	// Assert
	require.Len(suite.T(), reloaded, 1)
	assert.Equal(suite.T(), mealplan.OriginGenerated, reloaded[0].Origin)
	require.NotNil(suite.T(), reloaded[0].Lunch)
	assert.Equal(suite.T(), "Grain Bowl", reloaded[0].Lunch.Title)
}

func TestMapperTestSuite(t *testing.T) {
	suite.Run(t, new(MapperTestSuite))
}
