package nutrition

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// RecipeIngredient pairs an ingredient reference with the quantity a recipe
// needs. Order is irrelevant.
type RecipeIngredient struct {
	IngredientID uuid.UUID
	Quantity     float64
}

// Validate checks the pair invariants.
func (ri RecipeIngredient) Validate() error {
	if ri.IngredientID == uuid.Nil {
		return ErrIngredientNotFound
	}
	if ri.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	return nil
}

// Recipe is a catalog entry with macro nutritional data and the set of
// ingredients it requires.
type Recipe struct {
	id           uuid.UUID
	name         string
	mealType     MealType
	kcal         float64
	proteinG     float64
	carbsG       float64
	fatG         float64
	description  string
	instructions string
	ingredients  []RecipeIngredient
	createdAt    time.Time
}

// NewRecipe creates a validated recipe. Kcal and macro grams must be
// non-negative; the meal type must be one of the four slots.
func NewRecipe(name string, mealType MealType, kcal, proteinG, carbsG, fatG float64) (*Recipe, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	if _, err := ParseMealType(string(mealType)); err != nil {
		return nil, err
	}
	if kcal < 0 || proteinG < 0 || carbsG < 0 || fatG < 0 {
		return nil, ErrNegativeNutrition
	}
	return &Recipe{
		id:        uuid.New(),
		name:      name,
		mealType:  mealType,
		kcal:      kcal,
		proteinG:  proteinG,
		carbsG:    carbsG,
		fatG:      fatG,
		createdAt: time.Now(),
	}, nil
}

// ReconstituteRecipe rebuilds a recipe from persisted state without
// re-running creation validation.
func ReconstituteRecipe(
	id uuid.UUID,
	name string,
	mealType MealType,
	kcal, proteinG, carbsG, fatG float64,
	description, instructions string,
	ingredients []RecipeIngredient,
	createdAt time.Time,
) *Recipe {
	return &Recipe{
		id:           id,
		name:         name,
		mealType:     mealType,
		kcal:         kcal,
		proteinG:     proteinG,
		carbsG:       carbsG,
		fatG:         fatG,
		description:  description,
		instructions: instructions,
		ingredients:  ingredients,
		createdAt:    createdAt,
	}
}

func (r *Recipe) ID() uuid.UUID                   { return r.id }
func (r *Recipe) Name() string                    { return r.name }
func (r *Recipe) MealType() MealType              { return r.mealType }
func (r *Recipe) Kcal() float64                   { return r.kcal }
func (r *Recipe) ProteinG() float64               { return r.proteinG }
func (r *Recipe) CarbsG() float64                 { return r.carbsG }
func (r *Recipe) FatG() float64                   { return r.fatG }
func (r *Recipe) Description() string             { return r.description }
func (r *Recipe) Instructions() string            { return r.instructions }
func (r *Recipe) Ingredients() []RecipeIngredient { return r.ingredients }
func (r *Recipe) CreatedAt() time.Time            { return r.createdAt }

// SetDescription attaches the optional free-text description.
func (r *Recipe) SetDescription(description string) {
	r.description = description
}

// SetInstructions attaches the optional free-text instructions.
func (r *Recipe) SetInstructions(instructions string) {
	r.instructions = instructions
}

// AddIngredient appends a validated (ingredient, quantity) pair.
func (r *Recipe) AddIngredient(ingredientID uuid.UUID, quantity float64) error {
	ri := RecipeIngredient{IngredientID: ingredientID, Quantity: quantity}
	if err := ri.Validate(); err != nil {
		return err
	}
	r.ingredients = append(r.ingredients, ri)
	return nil
}
