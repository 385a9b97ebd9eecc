package mealplan

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/kaloria/v1/internal/domain/health"
	"github.com/kaloria/v1/internal/domain/nutrition"
)

// EngineTestSuite provides a test suite for the meal planning pipeline
type EngineTestSuite struct {
	suite.Suite
}

func (suite *EngineTestSuite) TestTargetCalories() {
	suite.Run("DeficitAboveFloor_ShouldApplyUnclamped", func() {
		target := TargetCalories(2500, -500, health.GenderMale)

		assert.InDelta(suite.T(), 2000, target, 0.001)
	})

	suite.Run("MaleBelowFloor_ShouldClampTo1500", func() {
		target := TargetCalories(1400, -1000, health.GenderMale)

		assert.InDelta(suite.T(), 1500, target, 0.001)
	})

	suite.Run("FemaleBelowFloor_ShouldClampTo1200", func() {
		target := TargetCalories(1400, -1000, health.GenderFemale)

		assert.InDelta(suite.T(), 1200, target, 0.001)
	})

	suite.Run("Surplus_ShouldPassThrough", func() {
		target := TargetCalories(2000, 300, health.GenderFemale)

		assert.InDelta(suite.T(), 2300, target, 0.001)
	})
}

func (suite *EngineTestSuite) TestSlotTargets() {
	suite.Run("SharesSumToDailyTarget", func() {
		targets := SlotTargets(2000)

		assert.InDelta(suite.T(), 500, targets[nutrition.MealBreakfast], 0.001)
		assert.InDelta(suite.T(), 700, targets[nutrition.MealLunch], 0.001)
		assert.InDelta(suite.T(), 600, targets[nutrition.MealDinner], 0.001)
		assert.InDelta(suite.T(), 200, targets[nutrition.MealSnack], 0.001)

		var sum float64
		for _, v := range targets {
			sum += v
		}
		assert.InDelta(suite.T(), 2000, sum, 0.001)
	})
}

func (suite *EngineTestSuite) TestInCalorieBand() {
	suite.Run("BothBoundsInclusive", func() {
		// 500 kcal target with 10% tolerance gives [450, 550].
		assert.True(suite.T(), InCalorieBand(450, 500, 0.10))
		assert.True(suite.T(), InCalorieBand(550, 500, 0.10))
		assert.True(suite.T(), InCalorieBand(500, 500, 0.10))
	})

	suite.Run("OutsideBand_ShouldBeRejected", func() {
		assert.False(suite.T(), InCalorieBand(449.99, 500, 0.10))
		assert.False(suite.T(), InCalorieBand(550.01, 500, 0.10))
	})
}

func (suite *EngineTestSuite) TestPantryScore() {
	owned := uuid.New()
	missing := uuid.New()
	ownedSet := map[uuid.UUID]bool{owned: true}

	suite.Run("NoIngredients_ShouldScoreFull", func() {
		recipe := suite.makeRecipe("toast", 300)

		assert.InDelta(suite.T(), 100.0, PantryScore(recipe, ownedSet), 0.001)
	})

	suite.Run("OneOfFourOwned_ShouldScore25", func() {
		recipe := suite.makeRecipe("stew", 500)
		require.NoError(suite.T(), recipe.AddIngredient(owned, 100))
		for i := 0; i < 3; i++ {
			require.NoError(suite.T(), recipe.AddIngredient(uuid.New(), 50))
		}

		assert.InDelta(suite.T(), 25.0, PantryScore(recipe, ownedSet), 0.001)
	})

	suite.Run("OneOfThreeOwned_ShouldRoundToTwoDecimals", func() {
		recipe := suite.makeRecipe("salad", 400)
		require.NoError(suite.T(), recipe.AddIngredient(owned, 100))
		require.NoError(suite.T(), recipe.AddIngredient(missing, 50))
		require.NoError(suite.T(), recipe.AddIngredient(uuid.New(), 20))

		assert.InDelta(suite.T(), 33.33, PantryScore(recipe, ownedSet), 0.001)
	})

	suite.Run("AllOwned_ShouldScoreFull", func() {
		recipe := suite.makeRecipe("omelette", 350)
		require.NoError(suite.T(), recipe.AddIngredient(owned, 2))

		assert.InDelta(suite.T(), 100.0, PantryScore(recipe, ownedSet), 0.001)
	})
}

func (suite *EngineTestSuite) TestScoreAndRank() {
	owned := uuid.New()
	ownedSet := map[uuid.UUID]bool{owned: true}

	suite.Run("OrdersByScoreDescending", func() {
		full := suite.makeRecipe("full match", 500)
		require.NoError(suite.T(), full.AddIngredient(owned, 1))

		half := suite.makeRecipe("half match", 500)
		require.NoError(suite.T(), half.AddIngredient(owned, 1))
		require.NoError(suite.T(), half.AddIngredient(uuid.New(), 1))

		none := suite.makeRecipe("no match", 500)
		require.NoError(suite.T(), none.AddIngredient(uuid.New(), 1))

		ranked := ScoreAndRank([]*nutrition.Recipe{none, half, full}, ownedSet)

		require.Len(suite.T(), ranked, 3)
		assert.Equal(suite.T(), "full match", ranked[0].Name)
		assert.Equal(suite.T(), "half match", ranked[1].Name)
		assert.Equal(suite.T(), "no match", ranked[2].Name)
	})

	suite.Run("TiedScores_ShouldBreakTiesByIDAscending", func() {
		a := suite.makeRecipe("a", 500)
		b := suite.makeRecipe("b", 500)

		first := ScoreAndRank([]*nutrition.Recipe{a, b}, ownedSet)
		second := ScoreAndRank([]*nutrition.Recipe{b, a}, ownedSet)

		require.Len(suite.T(), first, 2)
		assert.Equal(suite.T(), first[0].RecipeID, second[0].RecipeID)
		assert.Equal(suite.T(), first[1].RecipeID, second[1].RecipeID)
		assert.Less(suite.T(), first[0].RecipeID.String(), first[1].RecipeID.String())
	})

	suite.Run("MoreThanFiveCandidates_ShouldCapAtFive", func() {
		candidates := make([]*nutrition.Recipe, 0, 8)
		for i := 0; i < 8; i++ {
			candidates = append(candidates, suite.makeRecipe("candidate", 500))
		}

		ranked := ScoreAndRank(candidates, ownedSet)

		assert.Len(suite.T(), ranked, MaxSuggestionsPerSlot)
	})
}

func (suite *EngineTestSuite) TestBuildSlot() {
	ownedSet := map[uuid.UUID]bool{}

	suite.Run("FiltersToBandAndMealType", func() {
		inBand := suite.makeRecipe("in band", 500)
		tooLight := suite.makeRecipe("too light", 440)
		tooHeavy := suite.makeRecipe("too heavy", 560)
		wrongMeal, err := nutrition.NewRecipe("dinner dish", nutrition.MealDinner, 500, 20, 40, 10)
		require.NoError(suite.T(), err)

		slot := BuildSlot(
			nutrition.MealBreakfast, 500, 0.10,
			[]*nutrition.Recipe{inBand, tooLight, tooHeavy, wrongMeal},
			ownedSet,
		)

		require.Len(suite.T(), slot.Recipes, 1)
		assert.Equal(suite.T(), "in band", slot.Recipes[0].Name)
		assert.Equal(suite.T(), nutrition.MealBreakfast, slot.MealType)
	})
}

func (suite *EngineTestSuite) TestComputeTotals() {
	suite.Run("SumsTopRecipePerSlotOnly", func() {
		plan := &Plan{
			Slots: []Slot{
				{
					MealType: nutrition.MealBreakfast,
					Recipes: []ScoredRecipe{
						{Kcal: 500, ProteinG: 20, CarbsG: 60, FatG: 15},
						{Kcal: 480, ProteinG: 25, CarbsG: 50, FatG: 12},
					},
				},
				{
					MealType: nutrition.MealLunch,
					Recipes: []ScoredRecipe{
						{Kcal: 700, ProteinG: 35, CarbsG: 80, FatG: 20},
					},
				},
				{MealType: nutrition.MealDinner},
			},
		}

		plan.ComputeTotals()

		assert.InDelta(suite.T(), 1200, plan.TotalMacros.Kcal, 0.001)
		assert.InDelta(suite.T(), 55, plan.TotalMacros.ProteinG, 0.001)
		assert.InDelta(suite.T(), 140, plan.TotalMacros.CarbsG, 0.001)
		assert.InDelta(suite.T(), 35, plan.TotalMacros.FatG, 0.001)
	})

	suite.Run("RoundsTotalsToTwoDecimals", func() {
		plan := &Plan{
			Slots: []Slot{
				{
					MealType: nutrition.MealBreakfast,
					Recipes: []ScoredRecipe{
						{Kcal: 501.335, ProteinG: 20.005, CarbsG: 60.113, FatG: 15.999},
					},
				},
				{
					MealType: nutrition.MealLunch,
					Recipes: []ScoredRecipe{
						{Kcal: 700.001, ProteinG: 35.002, CarbsG: 80.004, FatG: 20.004},
					},
				},
			},
		}

		plan.ComputeTotals()

		assert.InDelta(suite.T(), 1201.34, plan.TotalMacros.Kcal, 0.001)
		assert.InDelta(suite.T(), 55.01, plan.TotalMacros.ProteinG, 0.001)
		assert.InDelta(suite.T(), 140.12, plan.TotalMacros.CarbsG, 0.001)
		assert.InDelta(suite.T(), 36.0, plan.TotalMacros.FatG, 0.001)
	})
}

func (suite *EngineTestSuite) makeRecipe(name string, kcal float64) *nutrition.Recipe {
	recipe, err := nutrition.NewRecipe(name, nutrition.MealBreakfast, kcal, 20, 50, 10)
	require.NoError(suite.T(), err)
	return recipe
}

func TestEngineTestSuite(t *testing.T) {
	suite.Run(t, new(EngineTestSuite))
}
