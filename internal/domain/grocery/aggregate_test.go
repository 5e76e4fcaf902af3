package grocery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// AggregateTestSuite provides a test suite for ingredient aggregation
type AggregateTestSuite struct {
	suite.Suite
}

// TestNormalization tests the name normalization rules
func (suite *AggregateTestSuite) TestNormalization() {
	suite.Run("LowercasesAndTrims", func() {
		assert.Equal(suite.T(), "chicken breast", Normalize("  Chicken Breast "))
	})

	suite.Run("DistinctFormsStayDistinct", func() {
		// No stemming: singular and plural are different items.
		assert.NotEqual(suite.T(), Normalize("Tomato"), Normalize("Tomatoes"))
	})

	suite.Run("EmptyAfterTrim", func() {
		assert.Equal(suite.T(), "", Normalize("   "))
	})
}

// TestAggregate tests merging ingredient sources into grouped items
func (suite *AggregateTestSuite) TestAggregate() {
	suite.Run("GroupsByNormalizedName_KeepsFirstSeenCasing", func() {
		// Arrange
		source := []Ingredient{
			{Name: "Chicken Breast", Amount: "200g", RecipeTitle: "Stir Fry"},
			{Name: "chicken breast", Amount: "1 lb", RecipeTitle: "Tacos"},
			{Name: "Rice", Amount: "1 cup", RecipeTitle: "Stir Fry"},
		}

		// Act
		items := Aggregate(source)

		// Assert
		require.Len(suite.T(), items, 2)
		assert.Equal(suite.T(), "Chicken Breast", items[0].Name)
		assert.Equal(suite.T(), "chicken breast", items[0].NormalizedName)
		assert.Equal(suite.T(), []string{"200g", "1 lb"}, items[0].Amounts())
		assert.Equal(suite.T(), "Rice", items[1].Name)
	})

	suite.Run("PreservesInsertionOrder", func() {
		// Arrange
		first := []Ingredient{{Name: "Eggs", Amount: "2"}, {Name: "Milk", Amount: "1 cup"}}
		second := []Ingredient{{Name: "Butter", Amount: "50g"}, {Name: "Eggs", Amount: "3"}}

		// Act
		items := Aggregate(first, second)

		// Assert
		require.Len(suite.T(), items, 3)
		assert.Equal(suite.T(), "Eggs", items[0].Name)
		assert.Equal(suite.T(), "Milk", items[1].Name)
		assert.Equal(suite.T(), "Butter", items[2].Name)
	})

	suite.Run("NothingDropped_EmptyAmountKept", func() {
		// Arrange
		source := []Ingredient{
			{Name: "Salt", Amount: ""},
			{Name: "Salt", Amount: "1 tsp"},
		}

		// Act
		items := Aggregate(source)

		// Assert
		require.Len(suite.T(), items, 1)
		assert.Equal(suite.T(), []string{"", "1 tsp"}, items[0].Amounts())
	})

	suite.Run("EmptyNameSkipped", func() {
		// Act
		items := Aggregate([]Ingredient{{Name: "  ", Amount: "1"}, {Name: "Flour", Amount: "2 cups"}})

		// Assert
		require.Len(suite.T(), items, 1)
		assert.Equal(suite.T(), "Flour", items[0].Name)
	})

	suite.Run("DuplicatesWithinOneSourceMerge", func() {
		// The same recipe listing an ingredient twice still groups.
		source := []Ingredient{
			{Name: "Garlic", Amount: "2 cloves", RecipeTitle: "Pasta"},
			{Name: "Garlic", Amount: "1 clove", RecipeTitle: "Pasta"},
		}

		items := Aggregate(source)

		require.Len(suite.T(), items, 1)
		assert.Len(suite.T(), items[0].Provenance, 2)
	})

	suite.Run("ProvenanceRecordsRecipeTitles", func() {
		// Arrange
		source := []Ingredient{
			{Name: "Onion", Amount: "1", RecipeTitle: "Soup"},
			{Name: "Onion", Amount: "2", RecipeTitle: "Curry"},
		}

		// Act
		items := Aggregate(source)

		// Assert
		require.Len(suite.T(), items, 1)
		assert.Equal(suite.T(), "Soup", items[0].Provenance[0].RecipeTitle)
		assert.Equal(suite.T(), "Curry", items[0].Provenance[1].RecipeTitle)
	})

	suite.Run("GroupCountMatchesDistinctNamesAcrossSources", func() {
		// Arrange: three sources sharing names under different casings
		a := []Ingredient{
			{Name: "Milk", Amount: "1L"},
			{Name: "Eggs", Amount: "2"},
		}
		b := []Ingredient{
			{Name: "milk", Amount: "500ml"},
			{Name: "Bread", Amount: "1 loaf"},
		}
		c := []Ingredient{
			{Name: "BREAD", Amount: "2 slices"},
			{Name: "Butter", Amount: "250g"},
		}

		// Act
		items := Aggregate(a, b, c)

		// Assert: one group per distinct normalized name in the union
		distinct := map[string]struct{}{}
		for _, source := range [][]Ingredient{a, b, c} {
			for _, ing := range source {
				distinct[Normalize(ing.Name)] = struct{}{}
			}
		}
		assert.Len(suite.T(), items, len(distinct))
		assert.Len(suite.T(), items, 4)
	})

	suite.Run("BarcodeFromFirstCarrier", func() {
		source := []Ingredient{
			{Name: "Milk", Amount: "1L"},
			{Name: "Milk", Amount: "500ml", Barcode: "4001234"},
		}

		items := Aggregate(source)

		require.Len(suite.T(), items, 1)
		assert.Equal(suite.T(), "4001234", items[0].Barcode)
	})
}

// TestAggregateItems tests re-aggregation against existing groups
func (suite *AggregateTestSuite) TestAggregateItems() {
	suite.Run("ExistingGroupsKeepPositionAndCheckedState", func() {
		// Arrange
		existing := Aggregate([]Ingredient{
			{Name: "Milk", Amount: "1 cup", RecipeTitle: "Pancakes"},
			{Name: "Eggs", Amount: "2", RecipeTitle: "Pancakes"},
		})
		existing[0].IsChecked = true

		// Act
		items := AggregateItems(existing, []Ingredient{
			{Name: "milk", Amount: "500ml", RecipeTitle: "Smoothie"},
			{Name: "Bananas", Amount: "2", RecipeTitle: "Smoothie"},
		})

		// Assert
		require.Len(suite.T(), items, 3)
		assert.Equal(suite.T(), "Milk", items[0].Name)
		assert.True(suite.T(), items[0].IsChecked)
		assert.Equal(suite.T(), []string{"1 cup", "500ml"}, items[0].Amounts())
		assert.Equal(suite.T(), "Bananas", items[2].Name)
	})

	suite.Run("Idempotent_SameSourceTwice", func() {
		// Arrange
		source := []Ingredient{
			{Name: "Milk", Amount: "1 cup", RecipeTitle: "Pancakes"},
			{Name: "Eggs", Amount: "2", RecipeTitle: "Pancakes"},
		}
		once := AggregateItems(nil, source)

		// Act
		twice := AggregateItems(once, source)

		// Assert
		assert.Equal(suite.T(), once, twice)
	})

	suite.Run("DoesNotMutateExistingSlice", func() {
		// Arrange
		existing := Aggregate([]Ingredient{{Name: "Milk", Amount: "1 cup"}})
		originalProvenance := len(existing[0].Provenance)

		// Act
		AggregateItems(existing, []Ingredient{{Name: "Milk", Amount: "2 cups"}})

		// Assert
		assert.Len(suite.T(), existing[0].Provenance, originalProvenance)
	})
}

func TestAggregateTestSuite(t *testing.T) {
	suite.Run(t, new(AggregateTestSuite))
}
