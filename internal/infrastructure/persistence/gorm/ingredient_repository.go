package gorm

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kaloria/v1/internal/domain/nutrition"
	"github.com/kaloria/v1/internal/ports/outbound"
)

// IngredientRepository implements the ingredient repository using GORM
type IngredientRepository struct {
	db *gorm.DB
}

// NewIngredientRepository creates a new ingredient repository
func NewIngredientRepository(db *gorm.DB) outbound.IngredientRepository {
	return &IngredientRepository{db: db}
}

// Create creates a new ingredient
func (r *IngredientRepository) Create(ctx context.Context, ingredient *nutrition.Ingredient) error {
	model := IngredientToModel(ingredient)

	result := r.db.WithContext(ctx).Create(model)
	if result.Error != nil {
		if isDuplicateErr(result.Error) {
			return nutrition.ErrIngredientExists
		}
		return result.Error
	}
	return nil
}

// Update updates an existing ingredient
func (r *IngredientRepository) Update(ctx context.Context, ingredient *nutrition.Ingredient) error {
	result := r.db.WithContext(ctx).Save(IngredientToModel(ingredient))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return nutrition.ErrIngredientNotFound
	}
	return nil
}

// FindByID finds an ingredient by ID
func (r *IngredientRepository) FindByID(ctx context.Context, id uuid.UUID) (*nutrition.Ingredient, error) {
	var model IngredientModel

	result := r.db.WithContext(ctx).First(&model, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nutrition.ErrIngredientNotFound
		}
		return nil, result.Error
	}
	return ModelToIngredient(&model), nil
}

// FindByName finds an ingredient by its unique name
func (r *IngredientRepository) FindByName(ctx context.Context, name string) (*nutrition.Ingredient, error) {
	var model IngredientModel

	result := r.db.WithContext(ctx).First(&model, "name = ?", name)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nutrition.ErrIngredientNotFound
		}
		return nil, result.Error
	}
	return ModelToIngredient(&model), nil
}

// List returns a page of ingredients ordered by name
func (r *IngredientRepository) List(ctx context.Context, offset, limit int) ([]*nutrition.Ingredient, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&IngredientModel{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var models []IngredientModel
	result := r.db.WithContext(ctx).
		Order("name ASC").
		Offset(offset).
		Limit(limit).
		Find(&models)
	if result.Error != nil {
		return nil, 0, result.Error
	}

	ingredients := make([]*nutrition.Ingredient, 0, len(models))
	for i := range models {
		ingredients = append(ingredients, ModelToIngredient(&models[i]))
	}
	return ingredients, total, nil
}

// Delete deletes an ingredient by ID
func (r *IngredientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&IngredientModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return nutrition.ErrIngredientNotFound
	}
	return nil
}
