package pantry

import (
	"testing"

	"github.com/google/uuid"
	"github.com/platewise/platewise/internal/domain/grocery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// PantryTestSuite provides a test suite for the pantry aggregate
type PantryTestSuite struct {
	suite.Suite
}

// TestStock tests merging aggregated items into the pantry
func (suite *PantryTestSuite) TestStock() {
	suite.Run("MergesByNameAndConcatenatesAmounts", func() {
		// Arrange
		p := New(uuid.New())
		p.StockIngredients([]grocery.Ingredient{{Name: "Flour", Amount: "500g"}})
		p.Events()

		// Act
		p.Stock(grocery.Aggregate([]grocery.Ingredient{
			{Name: "flour", Amount: "1kg", RecipeTitle: "Bread"},
			{Name: "Yeast", Amount: "7g", RecipeTitle: "Bread"},
		}))

		// Assert
		require.Len(suite.T(), p.Items(), 2)
		assert.Equal(suite.T(), []string{"500g", "1kg"}, p.Items()[0].Amounts())

		events := p.Events()
		require.Len(suite.T(), events, 1)
		_, ok := events[0].(ItemsStockedEvent)
		assert.True(suite.T(), ok, "Should emit ItemsStockedEvent")
	})

	suite.Run("Idempotent_RestockingSameItemsIsANoOp", func() {
		// Re-running a finished shopping trip must not duplicate
		// pantry lines.
		p := New(uuid.New())
		checked := grocery.Aggregate([]grocery.Ingredient{
			{Name: "Milk", Amount: "1L", RecipeTitle: "Pancakes"},
		})

		p.Stock(checked)
		p.Events()
		before := p.UpdatedAt()

		p.Stock(checked)

		require.Len(suite.T(), p.Items(), 1)
		assert.Len(suite.T(), p.Items()[0].Provenance, 1)
		assert.Empty(suite.T(), p.Events(), "unchanged merge emits no event")
		assert.Equal(suite.T(), before, p.UpdatedAt())
	})

	suite.Run("ClearsCheckedFlags", func() {
		// Arrange
		p := New(uuid.New())
		items := grocery.Aggregate([]grocery.Ingredient{{Name: "Milk", Amount: "1L"}})
		items[0].IsChecked = true

		// Act
		p.Stock(items)

		// Assert
		assert.False(suite.T(), p.Items()[0].IsChecked, "pantry entries carry no checked state")
	})

	suite.Run("EmptyInput_IsANoOp", func() {
		p := New(uuid.New())

		p.Stock(nil)

		assert.Empty(suite.T(), p.Items())
		assert.Empty(suite.T(), p.Events())
	})
}

// TestConsume tests removing cooked-recipe ingredients
func (suite *PantryTestSuite) TestConsume() {
	suite.Run("RemovesMatchingNames", func() {
		// Arrange
		p := New(uuid.New())
		p.StockIngredients([]grocery.Ingredient{
			{Name: "Chicken", Amount: "500g"},
			{Name: "Rice", Amount: "1kg"},
			{Name: "Soy Sauce", Amount: "1 bottle"},
		})
		p.Events()

		// Act
		removed := p.Consume("Stir Fry", []grocery.Ingredient{
			{Name: "chicken", Amount: "200g"},
			{Name: "RICE", Amount: "1 cup"},
		})

		// Assert
		require.Len(suite.T(), removed, 2)
		require.Len(suite.T(), p.Items(), 1)
		assert.Equal(suite.T(), "Soy Sauce", p.Items()[0].Name)

		events := p.Events()
		require.Len(suite.T(), events, 1)
		consumed, ok := events[0].(ItemsConsumedEvent)
		require.True(suite.T(), ok, "Should emit ItemsConsumedEvent")
		assert.Equal(suite.T(), "Stir Fry", consumed.RecipeTitle)
		assert.Equal(suite.T(), 2, consumed.Count)
	})

	suite.Run("NamesNotInPantry_AreSkipped", func() {
		// Arrange
		p := New(uuid.New())
		p.StockIngredients([]grocery.Ingredient{{Name: "Pasta", Amount: "500g"}})
		p.Events()

		// Act
		removed := p.Consume("Curry", []grocery.Ingredient{{Name: "Coconut Milk", Amount: "1 can"}})

		// Assert
		assert.Nil(suite.T(), removed)
		assert.Len(suite.T(), p.Items(), 1)
		assert.Empty(suite.T(), p.Events())
	})
}

func TestPantryTestSuite(t *testing.T) {
	suite.Run(t, new(PantryTestSuite))
}
