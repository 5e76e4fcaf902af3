package planner

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/platewise/platewise/internal/application/list"
	"github.com/platewise/platewise/internal/domain/mealplan"
	"github.com/platewise/platewise/internal/ports/inbound"
	"github.com/platewise/platewise/internal/ports/outbound"
	"github.com/platewise/platewise/pkg/errors"
	"github.com/platewise/platewise/test/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
)

// PlannerServiceTestSuite provides a test suite for the planner service
type PlannerServiceTestSuite struct {
	suite.Suite
	ai      *testutils.MockAIService
	lists   *testutils.FakeListRepository
	service inbound.PlannerService
	userID  uuid.UUID
	ctx     context.Context
}

// SetupTest wires a planner over a real list service with fake storage
func (suite *PlannerServiceTestSuite) SetupTest() {
	suite.ai = new(testutils.MockAIService)
	suite.lists = testutils.NewFakeListRepository()
	pantries := testutils.NewFakePantryRepository()
	suite.lists.Pantries = pantries

	listService := list.NewListService(
		suite.lists,
		pantries,
		testutils.NewFakeSavedListRepository(),
		testutils.NewFakeCacheRepository(),
		testutils.NewFakeNotifier(),
		zap.NewNop(),
	)
	suite.service = NewPlannerService(suite.ai, listService, zap.NewNop())
	suite.userID = uuid.New()
	suite.ctx = context.Background()
}

// TestGenerateSmartShoppingList tests AI list generation and merging
func (suite *PlannerServiceTestSuite) TestGenerateSmartShoppingList() {
	suite.Run("MergesGeneratedItemsIntoActiveList", func() {
		suite.SetupTest()

		// Arrange
		suite.ai.On("GenerateShoppingList", mock.Anything, mock.Anything).Return(&outbound.ShoppingListResponse{
			MealPlan: []outbound.GeneratedDay{
				{Day: "Day 1", Meals: []string{"Oatmeal", "Grain Bowl", "Stir Fry"}},
			},
			ShoppingList: []outbound.GeneratedItem{
				{Name: "Oats", Amount: "200g", Category: "pantry"},
				{Name: "Rice", Amount: "1 cup", Category: "pantry"},
				{Name: "", Amount: "ghost entry"},
			},
		}, nil)

		// Act
		result, err := suite.service.GenerateSmartShoppingList(suite.ctx, inbound.GenerateListCommand{
			UserID: suite.userID,
			Diet:   "vegetarian",
			Days:   1,
		})

		// Assert: nameless entries are dropped, the rest merged
		require.NoError(suite.T(), err)
		require.Len(suite.T(), result.Ingredients, 2)
		require.Len(suite.T(), result.MealPlan, 1)
		assert.Equal(suite.T(), []string{"Oatmeal", "Grain Bowl", "Stir Fry"}, result.MealPlan[0].Meals)
		require.Len(suite.T(), result.List.Items, 2)
		assert.Len(suite.T(), suite.lists.StoredItems(suite.userID), 2)
	})

	suite.Run("GenerationFailure_LeavesListUntouched", func() {
		suite.SetupTest()
		suite.ai.On("GenerateShoppingList", mock.Anything, mock.Anything).Return(nil, fmt.Errorf("model timeout"))

		// Act
		result, err := suite.service.GenerateSmartShoppingList(suite.ctx, inbound.GenerateListCommand{
			UserID: suite.userID,
			Days:   3,
		})

		// Assert
		assert.Nil(suite.T(), result)
		require.Error(suite.T(), err)
		assert.Equal(suite.T(), errors.CodeGenerationFailed, errors.GetCode(err))
		assert.Zero(suite.T(), suite.lists.SaveCalls, "failed generation must not write")
	})

	suite.Run("EmptyGeneratedList_TreatedAsFailure", func() {
		suite.SetupTest()
		suite.ai.On("GenerateShoppingList", mock.Anything, mock.Anything).Return(&outbound.ShoppingListResponse{}, nil)

		result, err := suite.service.GenerateSmartShoppingList(suite.ctx, inbound.GenerateListCommand{
			UserID: suite.userID,
			Days:   2,
		})

		assert.Nil(suite.T(), result)
		require.Error(suite.T(), err)
		assert.Equal(suite.T(), errors.CodeGenerationFailed, errors.GetCode(err))
		assert.Zero(suite.T(), suite.lists.SaveCalls)
	})

	suite.Run("DaysOutOfRange_Rejected", func() {
		suite.SetupTest()

		result, err := suite.service.GenerateSmartShoppingList(suite.ctx, inbound.GenerateListCommand{
			UserID: suite.userID,
			Days:   0,
		})

		assert.Nil(suite.T(), result)
		require.Error(suite.T(), err)
		assert.Equal(suite.T(), errors.CodeValidationFailed, errors.GetCode(err))
		suite.ai.AssertNotCalled(suite.T(), "GenerateShoppingList", mock.Anything, mock.Anything)
	})
}

// TestGenerateMealPlan tests full plan generation with defensive padding
func (suite *PlannerServiceTestSuite) TestGenerateMealPlan() {
	suite.Run("TagsDaysAsGenerated", func() {
		suite.SetupTest()
		suite.ai.On("GenerateMealPlan", mock.Anything, mock.Anything).Return([]mealplan.DayPlan{
			{Day: "Day 1", Breakfast: &mealplan.MealSlot{Title: "Veggie Scramble"}},
			{Day: "Day 2"},
		}, nil)

		// Act
		days, err := suite.service.GenerateMealPlan(suite.ctx, inbound.GeneratePlanCommand{
			UserID: suite.userID,
			Days:   2,
		})

		// Assert
		require.NoError(suite.T(), err)
		require.Len(suite.T(), days, 2)
		for _, day := range days {
			assert.Equal(suite.T(), mealplan.OriginGenerated, day.Origin)
		}
		assert.Equal(suite.T(), "Veggie Scramble", days[0].Breakfast.Title)
	})

	suite.Run("PadsMissingDaysAndSlots", func() {
		suite.SetupTest()

		// Arrange: the generator undershoots the requested day count and
		// leaves slots empty
		suite.ai.On("GenerateMealPlan", mock.Anything, mock.Anything).Return([]mealplan.DayPlan{
			{Day: "Day 1", Breakfast: &mealplan.MealSlot{Title: "Smoothie"}},
		}, nil)

		// Act
		days, err := suite.service.GenerateMealPlan(suite.ctx, inbound.GeneratePlanCommand{
			UserID: suite.userID,
			Days:   3,
		})

		// Assert: padded to three days, every slot populated
		require.NoError(suite.T(), err)
		require.Len(suite.T(), days, 3)
		assert.Equal(suite.T(), "Day 2", days[1].Day)
		assert.Equal(suite.T(), "Day 3", days[2].Day)
		for _, day := range days {
			require.NotNil(suite.T(), day.Breakfast)
			require.NotNil(suite.T(), day.Lunch)
			require.NotNil(suite.T(), day.Dinner)
			require.NotNil(suite.T(), day.Snacks)
		}
		assert.Equal(suite.T(), "Smoothie", days[0].Breakfast.Title)
		assert.Equal(suite.T(), "Lunch", days[0].Lunch.Title)
	})

	suite.Run("TruncatesOvershoot", func() {
		suite.SetupTest()
		suite.ai.On("GenerateMealPlan", mock.Anything, mock.Anything).Return([]mealplan.DayPlan{
			{Day: "Day 1"}, {Day: "Day 2"}, {Day: "Day 3"},
		}, nil)

		days, err := suite.service.GenerateMealPlan(suite.ctx, inbound.GeneratePlanCommand{
			UserID: suite.userID,
			Days:   2,
		})

		require.NoError(suite.T(), err)
		assert.Len(suite.T(), days, 2)
	})

	suite.Run("NoDaysReturned_TreatedAsFailure", func() {
		suite.SetupTest()
		suite.ai.On("GenerateMealPlan", mock.Anything, mock.Anything).Return([]mealplan.DayPlan{}, nil)

		days, err := suite.service.GenerateMealPlan(suite.ctx, inbound.GeneratePlanCommand{
			UserID: suite.userID,
			Days:   2,
		})

		assert.Nil(suite.T(), days)
		require.Error(suite.T(), err)
		assert.Equal(suite.T(), errors.CodeGenerationFailed, errors.GetCode(err))
	})
}

func TestPlannerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PlannerServiceTestSuite))
}
