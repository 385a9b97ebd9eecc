package mealplan

import (
	"math"
	"sort"

	"github.com/google/uuid"

	"github.com/kaloria/v1/internal/domain/health"
	"github.com/kaloria/v1/internal/domain/nutrition"
)

const (
	// DefaultDeficit is applied when the caller does not choose one.
	DefaultDeficit = -500.0

	// Minimum safe daily intake, by gender.
	floorKcalFemale = 1200.0
	floorKcalMale   = 1500.0

	// DefaultTolerance widens each slot target into an acceptance band.
	DefaultTolerance = 0.10

	// MaxSuggestionsPerSlot caps the ranked list returned for each meal.
	MaxSuggestionsPerSlot = 5
)

// distribution assigns each meal its share of the daily target. The
// shares sum to 1.0.
var distribution = map[nutrition.MealType]float64{
	nutrition.MealBreakfast: 0.25,
	nutrition.MealLunch:     0.35,
	nutrition.MealDinner:    0.30,
	nutrition.MealSnack:     0.10,
}

// MealShare returns the fraction of daily calories assigned to a meal.
func MealShare(mt nutrition.MealType) float64 {
	return distribution[mt]
}

// TargetCalories applies the deficit to the TDEE and clamps the result
// to the minimum safe intake for the gender. A positive deficit is a
// surplus and passes through unclamped only when above the floor.
func TargetCalories(tdee, deficit float64, gender health.Gender) float64 {
	target := tdee + deficit
	floor := floorKcalFemale
	if gender == health.GenderMale {
		floor = floorKcalMale
	}
	if target < floor {
		return floor
	}
	return target
}

// SlotTargets splits the daily target across the meals of the day in
// canonical order.
func SlotTargets(targetKcal float64) map[nutrition.MealType]float64 {
	targets := make(map[nutrition.MealType]float64, len(distribution))
	for _, mt := range nutrition.MealTypes() {
		targets[mt] = targetKcal * distribution[mt]
	}
	return targets
}

// CalorieBand returns the inclusive [min, max] acceptance range around a
// slot target for the given tolerance.
func CalorieBand(slotTarget, tolerance float64) (float64, float64) {
	return slotTarget * (1 - tolerance), slotTarget * (1 + tolerance)
}

// InCalorieBand reports whether a recipe's calories fall inside the
// acceptance band. Both bounds are inclusive.
func InCalorieBand(kcal, slotTarget, tolerance float64) bool {
	lo, hi := CalorieBand(slotTarget, tolerance)
	return kcal >= lo && kcal <= hi
}

// PantryScore measures how much of a recipe the user can cook from
// stock: owned ingredients over total ingredients, as a percentage
// rounded to two decimals. A recipe with no ingredients listed is
// always cookable and scores 100.
func PantryScore(recipe *nutrition.Recipe, owned map[uuid.UUID]bool) float64 {
	ingredients := recipe.Ingredients()
	if len(ingredients) == 0 {
		return 100.0
	}
	matched := 0
	for _, ri := range ingredients {
		if owned[ri.IngredientID] {
			matched++
		}
	}
	return round2(float64(matched) / float64(len(ingredients)) * 100)
}

// ScoreAndRank scores every candidate against the pantry and returns
// them ordered by score descending. Ties break on recipe ID ascending
// so the same inputs always produce the same ranking.
func ScoreAndRank(candidates []*nutrition.Recipe, owned map[uuid.UUID]bool) []ScoredRecipe {
	scored := make([]ScoredRecipe, 0, len(candidates))
	for _, r := range candidates {
		scored = append(scored, ScoredRecipe{
			RecipeID:    r.ID(),
			Name:        r.Name(),
			MealType:    r.MealType(),
			Kcal:        r.Kcal(),
			ProteinG:    r.ProteinG(),
			CarbsG:      r.CarbsG(),
			FatG:        r.FatG(),
			PantryScore: PantryScore(r, owned),
		})
	}
	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].PantryScore != scored[j].PantryScore {
			return scored[i].PantryScore > scored[j].PantryScore
		}
		return scored[i].RecipeID.String() < scored[j].RecipeID.String()
	})
	if len(scored) > MaxSuggestionsPerSlot {
		scored = scored[:MaxSuggestionsPerSlot]
	}
	return scored
}

// BuildSlot filters candidates to the calorie band for the slot, then
// scores and ranks the survivors.
func BuildSlot(mt nutrition.MealType, slotTarget, tolerance float64, candidates []*nutrition.Recipe, owned map[uuid.UUID]bool) Slot {
	inBand := make([]*nutrition.Recipe, 0, len(candidates))
	for _, r := range candidates {
		if r.MealType() == mt && InCalorieBand(r.Kcal(), slotTarget, tolerance) {
			inBand = append(inBand, r)
		}
	}
	return Slot{
		MealType:   mt,
		TargetKcal: round2(slotTarget),
		Recipes:    ScoreAndRank(inBand, owned),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
