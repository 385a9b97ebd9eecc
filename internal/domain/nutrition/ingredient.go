package nutrition

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Ingredient is a catalog entry usable in recipes and pantries. Once a
// recipe or pantry references it, it is immutable apart from administrative
// correction of the calorie figure.
type Ingredient struct {
	id          uuid.UUID
	name        string
	unit        string
	kcalPerUnit float64
	createdAt   time.Time
}

// NewIngredient creates a validated ingredient.
func NewIngredient(name, unit string, kcalPerUnit float64) (*Ingredient, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	if strings.TrimSpace(unit) == "" {
		return nil, ErrInvalidUnit
	}
	if kcalPerUnit < 0 {
		return nil, ErrNegativeNutrition
	}
	return &Ingredient{
		id:          uuid.New(),
		name:        name,
		unit:        unit,
		kcalPerUnit: kcalPerUnit,
		createdAt:   time.Now(),
	}, nil
}

// ReconstituteIngredient rebuilds an ingredient from persisted state.
func ReconstituteIngredient(id uuid.UUID, name, unit string, kcalPerUnit float64, createdAt time.Time) *Ingredient {
	return &Ingredient{id: id, name: name, unit: unit, kcalPerUnit: kcalPerUnit, createdAt: createdAt}
}

func (i *Ingredient) ID() uuid.UUID        { return i.id }
func (i *Ingredient) Name() string         { return i.name }
func (i *Ingredient) Unit() string         { return i.unit }
func (i *Ingredient) KcalPerUnit() float64 { return i.kcalPerUnit }
func (i *Ingredient) CreatedAt() time.Time { return i.createdAt }

// CorrectKcal applies an administrative correction to the calorie figure.
func (i *Ingredient) CorrectKcal(kcalPerUnit float64) error {
	if kcalPerUnit < 0 {
		return ErrNegativeNutrition
	}
	i.kcalPerUnit = kcalPerUnit
	return nil
}
