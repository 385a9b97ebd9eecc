package nutrition

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type RecipeTestSuite struct {
	suite.Suite
}

func (suite *RecipeTestSuite) TestNewRecipe() {
	suite.Run("ValidInput_ShouldCreate", func() {
		recipe, err := NewRecipe("overnight oats", MealBreakfast, 420, 18, 55, 12)

		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), "overnight oats", recipe.Name())
		assert.Equal(suite.T(), MealBreakfast, recipe.MealType())
		assert.Empty(suite.T(), recipe.Ingredients())
	})

	suite.Run("BlankName_ShouldFail", func() {
		_, err := NewRecipe("   ", MealLunch, 500, 20, 50, 15)

		assert.ErrorIs(suite.T(), err, ErrNameRequired)
	})

	suite.Run("NegativeMacro_ShouldFail", func() {
		_, err := NewRecipe("bad macros", MealDinner, 500, -1, 50, 15)

		assert.ErrorIs(suite.T(), err, ErrNegativeNutrition)
	})
}

func (suite *RecipeTestSuite) TestAddIngredient() {
	suite.Run("ValidPair_ShouldAppend", func() {
		recipe, err := NewRecipe("overnight oats", MealBreakfast, 420, 18, 55, 12)
		require.NoError(suite.T(), err)

		oatsID := uuid.New()
		milkID := uuid.New()
		require.NoError(suite.T(), recipe.AddIngredient(oatsID, 80))
		require.NoError(suite.T(), recipe.AddIngredient(milkID, 200))

		require.Len(suite.T(), recipe.Ingredients(), 2)
		assert.Equal(suite.T(), oatsID, recipe.Ingredients()[0].IngredientID)
		assert.InDelta(suite.T(), 80, recipe.Ingredients()[0].Quantity, 0.001)
	})

	suite.Run("NilIngredientID_ShouldFail", func() {
		recipe, err := NewRecipe("overnight oats", MealBreakfast, 420, 18, 55, 12)
		require.NoError(suite.T(), err)

		err = recipe.AddIngredient(uuid.Nil, 80)

		assert.ErrorIs(suite.T(), err, ErrIngredientNotFound)
		assert.Empty(suite.T(), recipe.Ingredients())
	})

	suite.Run("NonPositiveQuantity_ShouldFail", func() {
		recipe, err := NewRecipe("overnight oats", MealBreakfast, 420, 18, 55, 12)
		require.NoError(suite.T(), err)

		err = recipe.AddIngredient(uuid.New(), 0)

		assert.ErrorIs(suite.T(), err, ErrInvalidQuantity)
		assert.Empty(suite.T(), recipe.Ingredients())
	})
}

func TestRecipeTestSuite(t *testing.T) {
	suite.Run(t, new(RecipeTestSuite))
}
