// Package nutrition contains the recipe and ingredient catalog domain.
package nutrition

import "fmt"

// MealType classifies a recipe into exactly one daily meal slot.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

// MealTypes lists all slots in canonical day order. The order is load-bearing:
// plan assembly and calorie distribution iterate it.
func MealTypes() []MealType {
	return []MealType{MealBreakfast, MealLunch, MealDinner, MealSnack}
}

// ParseMealType validates a raw meal type string.
func ParseMealType(raw string) (MealType, error) {
	switch MealType(raw) {
	case MealBreakfast, MealLunch, MealDinner, MealSnack:
		return MealType(raw), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidMealType, raw)
	}
}
