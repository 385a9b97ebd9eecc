package nutrition

import "errors"

// Domain errors for the catalog

var (
	ErrInvalidMealType    = errors.New("invalid meal type")
	ErrNameRequired       = errors.New("name is required")
	ErrNegativeNutrition  = errors.New("kcal and macro grams must be non-negative")
	ErrInvalidUnit        = errors.New("ingredient unit is required")
	ErrInvalidQuantity    = errors.New("ingredient quantity must be positive")
	ErrIngredientNotFound = errors.New("ingredient not found")
	ErrIngredientExists   = errors.New("ingredient with this name already exists")
	ErrRecipeNotFound     = errors.New("recipe not found")
)
