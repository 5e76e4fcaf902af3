package shoppinglist

import (
	"testing"

	"github.com/google/uuid"
	"github.com/platewise/platewise/internal/domain/grocery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// ShoppingListTestSuite provides a test suite for the active list aggregate
type ShoppingListTestSuite struct {
	suite.Suite
}

// TestMergeIngredients tests the additive merge path
func (suite *ShoppingListTestSuite) TestMergeIngredients() {
	suite.Run("MergesIntoExistingGroups", func() {
		// Arrange
		list := New(uuid.New())
		list.MergeIngredients([]grocery.Ingredient{
			{Name: "Milk", Amount: "1 cup", RecipeTitle: "Pancakes"},
		})
		list.Events()

		// Act
		list.MergeIngredients([]grocery.Ingredient{
			{Name: "milk", Amount: "500ml", RecipeTitle: "Smoothie"},
			{Name: "Eggs", Amount: "2", RecipeTitle: "Pancakes"},
		})

		// Assert
		require.Equal(suite.T(), 2, list.Len())
		assert.Equal(suite.T(), []string{"1 cup", "500ml"}, list.Items()[0].Amounts())

		events := list.Events()
		require.Len(suite.T(), events, 1)
		merged, ok := events[0].(ItemsMergedEvent)
		require.True(suite.T(), ok, "Should emit ItemsMergedEvent")
		assert.Equal(suite.T(), 1, merged.Added)
		assert.Equal(suite.T(), 2, merged.Total)
	})

	suite.Run("CheckedStateSurvivesMerge", func() {
		// Arrange
		list := New(uuid.New())
		list.MergeIngredients([]grocery.Ingredient{{Name: "Rice", Amount: "1 cup"}})
		list.Toggle("Rice", true)

		// Act
		list.MergeIngredients([]grocery.Ingredient{{Name: "Rice", Amount: "200g"}})

		// Assert
		assert.True(suite.T(), list.Items()[0].IsChecked)
	})
}

// TestReplace tests the overwrite path
func (suite *ShoppingListTestSuite) TestReplace() {
	suite.Run("OverwritesAndResetsCheckedFlags", func() {
		// Arrange
		list := New(uuid.New())
		list.MergeIngredients([]grocery.Ingredient{{Name: "Old Item", Amount: "1"}})
		list.Toggle("Old Item", true)
		list.Events()

		// Act
		list.Replace([]grocery.Ingredient{
			{Name: "Bread", Amount: "1 loaf", IsChecked: true},
			{Name: "Jam", Amount: "1 jar"},
		})

		// Assert
		require.Equal(suite.T(), 2, list.Len())
		assert.Equal(suite.T(), "Bread", list.Items()[0].Name)
		assert.False(suite.T(), list.Items()[0].IsChecked, "restored items start unchecked")

		events := list.Events()
		require.Len(suite.T(), events, 1)
		_, ok := events[0].(ListReplacedEvent)
		assert.True(suite.T(), ok, "Should emit ListReplacedEvent")
	})
}

// TestToggle tests checking items off
func (suite *ShoppingListTestSuite) TestToggle() {
	suite.Run("TogglesByNormalizedName", func() {
		// Arrange
		list := New(uuid.New())
		list.MergeIngredients([]grocery.Ingredient{{Name: "Chicken Breast", Amount: "200g"}})

		// Act
		found := list.Toggle("  chicken breast ", true)

		// Assert
		assert.True(suite.T(), found)
		assert.True(suite.T(), list.Items()[0].IsChecked)
	})

	suite.Run("MissingName_IsANoOp", func() {
		// Arrange
		list := New(uuid.New())
		list.MergeIngredients([]grocery.Ingredient{{Name: "Rice", Amount: "1 cup"}})
		list.Events()

		// Act
		found := list.Toggle("Quinoa", true)

		// Assert
		assert.False(suite.T(), found)
		assert.Empty(suite.T(), list.Events())
	})
}

// TestRemoveChecked tests the finish-shopping removal
func (suite *ShoppingListTestSuite) TestRemoveChecked() {
	suite.Run("RemovesCheckedKeepsRest", func() {
		// Arrange
		list := New(uuid.New())
		list.MergeIngredients([]grocery.Ingredient{
			{Name: "Milk", Amount: "1L"},
			{Name: "Eggs", Amount: "12"},
			{Name: "Bread", Amount: "1 loaf"},
		})
		list.Toggle("Milk", true)
		list.Toggle("Bread", true)
		list.Events()

		// Act
		removed := list.RemoveChecked()

		// Assert
		require.Len(suite.T(), removed, 2)
		assert.Equal(suite.T(), "Milk", removed[0].Name)
		assert.Equal(suite.T(), "Bread", removed[1].Name)
		require.Equal(suite.T(), 1, list.Len())
		assert.Equal(suite.T(), "Eggs", list.Items()[0].Name)

		events := list.Events()
		require.Len(suite.T(), events, 1)
		finished, ok := events[0].(ShoppingFinishedEvent)
		require.True(suite.T(), ok, "Should emit ShoppingFinishedEvent")
		assert.Equal(suite.T(), 2, finished.Moved)
		assert.Equal(suite.T(), 1, finished.Remaining)
	})

	suite.Run("NothingChecked_ReturnsNilWithoutEvent", func() {
		// Arrange
		list := New(uuid.New())
		list.MergeIngredients([]grocery.Ingredient{{Name: "Milk", Amount: "1L"}})
		list.Events()

		// Act
		removed := list.RemoveChecked()

		// Assert
		assert.Nil(suite.T(), removed)
		assert.Empty(suite.T(), list.Events())
		assert.Equal(suite.T(), 1, list.Len())
	})
}

func TestShoppingListTestSuite(t *testing.T) {
	suite.Run(t, new(ShoppingListTestSuite))
}
