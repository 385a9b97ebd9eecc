package inbound

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// CatalogService defines the use cases for the ingredient and recipe
// catalog.
type CatalogService interface {
	CreateIngredient(ctx context.Context, cmd CreateIngredientCommand) (*IngredientDTO, error)
	GetIngredient(ctx context.Context, id uuid.UUID) (*IngredientDTO, error)
	ListIngredients(ctx context.Context, params PaginationParams) (*IngredientList, error)
	DeleteIngredient(ctx context.Context, id uuid.UUID) error

	CreateRecipe(ctx context.Context, cmd CreateRecipeCommand) (*RecipeDTO, error)
	GetRecipe(ctx context.Context, id uuid.UUID) (*RecipeDTO, error)
	ListRecipes(ctx context.Context, params PaginationParams, filter RecipeFilter) (*RecipeList, error)
	DeleteRecipe(ctx context.Context, id uuid.UUID) error
}

// RecipeFilter narrows recipe listings. Empty fields apply no filter.
type RecipeFilter struct {
	MealType string   `json:"meal_type,omitempty"`
	MinKcal  *float64 `json:"min_kcal,omitempty" validate:"omitempty,min=0"`
	MaxKcal  *float64 `json:"max_kcal,omitempty" validate:"omitempty,min=0"`
}

// PaginationParams controls list pagination.
type PaginationParams struct {
	Page    int `json:"page" validate:"min=1"`
	PerPage int `json:"per_page" validate:"min=1,max=100"`
}

// Offset converts the page number to a row offset.
func (p PaginationParams) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.PerPage
}

// CreateIngredientCommand contains data for registering an ingredient.
type CreateIngredientCommand struct {
	Name        string  `json:"name" validate:"required,min=1,max=100"`
	Unit        string  `json:"unit" validate:"required,min=1,max=20"`
	KcalPerUnit float64 `json:"kcal_per_unit" validate:"min=0"`
}

// RecipeIngredientInput references a catalog ingredient with a quantity.
type RecipeIngredientInput struct {
	IngredientID uuid.UUID `json:"ingredient_id" validate:"required"`
	Quantity     float64   `json:"quantity" validate:"gt=0"`
}

// CreateRecipeCommand contains data for registering a recipe.
type CreateRecipeCommand struct {
	Name         string                  `json:"name" validate:"required,min=1,max=200"`
	MealType     string                  `json:"meal_type" validate:"required"`
	Kcal         float64                 `json:"kcal" validate:"min=0"`
	ProteinG     float64                 `json:"protein_g" validate:"min=0"`
	CarbsG       float64                 `json:"carbs_g" validate:"min=0"`
	FatG         float64                 `json:"fat_g" validate:"min=0"`
	Description  string                  `json:"description,omitempty"`
	Instructions string                  `json:"instructions,omitempty"`
	Ingredients  []RecipeIngredientInput `json:"ingredients,omitempty" validate:"dive"`
}

// IngredientDTO is the external representation of an ingredient.
type IngredientDTO struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Unit        string    `json:"unit"`
	KcalPerUnit float64   `json:"kcal_per_unit"`
	CreatedAt   time.Time `json:"created_at"`
}

// IngredientList is a paginated ingredient result.
type IngredientList struct {
	Items      []IngredientDTO `json:"items"`
	Total      int64           `json:"total"`
	Page       int             `json:"page"`
	PerPage    int             `json:"per_page"`
	TotalPages int             `json:"total_pages"`
}

// RecipeIngredientDTO is one ingredient line of a recipe.
type RecipeIngredientDTO struct {
	IngredientID uuid.UUID `json:"ingredient_id"`
	Quantity     float64   `json:"quantity"`
}

// RecipeDTO is the external representation of a recipe.
type RecipeDTO struct {
	ID           uuid.UUID             `json:"id"`
	Name         string                `json:"name"`
	MealType     string                `json:"meal_type"`
	Kcal         float64               `json:"kcal"`
	ProteinG     float64               `json:"protein_g"`
	CarbsG       float64               `json:"carbs_g"`
	FatG         float64               `json:"fat_g"`
	Description  string                `json:"description,omitempty"`
	Instructions string                `json:"instructions,omitempty"`
	Ingredients  []RecipeIngredientDTO `json:"ingredients,omitempty"`
	CreatedAt    time.Time             `json:"created_at"`
}

// RecipeList is a paginated recipe result.
type RecipeList struct {
	Items      []RecipeDTO `json:"items"`
	Total      int64       `json:"total"`
	Page       int         `json:"page"`
	PerPage    int         `json:"per_page"`
	TotalPages int         `json:"total_pages"`
}
