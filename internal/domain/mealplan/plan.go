// Package mealplan implements the daily meal planning pipeline: calorie
// targeting with safe floors, per-meal distribution, candidate filtering
// within a calorie band, pantry-overlap scoring and deterministic ranking.
package mealplan

import (
	"github.com/google/uuid"

	"github.com/kaloria/v1/internal/domain/nutrition"
)

// Macros is a nutrient rollup in kilocalories and grams.
type Macros struct {
	Kcal     float64 `json:"kcal"`
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
}

// ScoredRecipe is a candidate recipe annotated with its pantry match score.
type ScoredRecipe struct {
	RecipeID    uuid.UUID          `json:"id"`
	Name        string             `json:"name"`
	MealType    nutrition.MealType `json:"meal_type"`
	Kcal        float64            `json:"kcal"`
	ProteinG    float64            `json:"protein_g"`
	CarbsG      float64            `json:"carbs_g"`
	FatG        float64            `json:"fat_g"`
	PantryScore float64            `json:"pantry_score"`
}

// Slot holds the ranked suggestions for a single meal of the day.
type Slot struct {
	MealType   nutrition.MealType `json:"meal_type"`
	TargetKcal float64            `json:"target_kcal"`
	Recipes    []ScoredRecipe     `json:"recommended_recipes"`
}

// Plan is a complete daily meal plan.
type Plan struct {
	UserID      uuid.UUID `json:"user_id"`
	TDEE        float64   `json:"tdee"`
	TargetKcal  float64   `json:"target_daily_kcal"`
	Deficit     float64   `json:"deficit"`
	Slots       []Slot    `json:"meals"`
	TotalMacros Macros    `json:"total_macros"`
}

// ComputeTotals sums the nutrition of the best-ranked recipe in each slot,
// rounded to two decimals. Slots with no candidates contribute nothing.
func (p *Plan) ComputeTotals() {
	var total Macros
	for _, slot := range p.Slots {
		if len(slot.Recipes) == 0 {
			continue
		}
		top := slot.Recipes[0]
		total.Kcal += top.Kcal
		total.ProteinG += top.ProteinG
		total.CarbsG += top.CarbsG
		total.FatG += top.FatG
	}
	total.Kcal = round2(total.Kcal)
	total.ProteinG = round2(total.ProteinG)
	total.CarbsG = round2(total.CarbsG)
	total.FatG = round2(total.FatG)
	p.TotalMacros = total
}
