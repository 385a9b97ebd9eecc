package gorm

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kaloria/v1/internal/domain/nutrition"
	"github.com/kaloria/v1/internal/ports/outbound"
)

// RecipeRepository implements the recipe repository using GORM
type RecipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository creates a new recipe repository
func NewRecipeRepository(db *gorm.DB) outbound.RecipeRepository {
	return &RecipeRepository{db: db}
}

// Create creates a new recipe with its ingredient lines
func (r *RecipeRepository) Create(ctx context.Context, recipe *nutrition.Recipe) error {
	model := RecipeToModel(recipe)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update replaces a recipe and its ingredient lines
func (r *RecipeRepository) Update(ctx context.Context, recipe *nutrition.Recipe) error {
	model := RecipeToModel(recipe)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&RecipeIngredientModel{}, "recipe_id = ?", recipe.ID()).Error; err != nil {
			return err
		}
		result := tx.Save(model)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nutrition.ErrRecipeNotFound
		}
		return nil
	})
}

// FindByID finds a recipe by ID including its ingredient lines
func (r *RecipeRepository) FindByID(ctx context.Context, id uuid.UUID) (*nutrition.Recipe, error) {
	var model RecipeModel

	result := r.db.WithContext(ctx).
		Preload("Ingredients").
		First(&model, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nutrition.ErrRecipeNotFound
		}
		return nil, result.Error
	}
	return ModelToRecipe(&model), nil
}

// List returns a page of recipes ordered by creation time, narrowed by
// the query's optional filters
func (r *RecipeRepository) List(ctx context.Context, query outbound.RecipeQuery, offset, limit int) ([]*nutrition.Recipe, int64, error) {
	filtered := func(db *gorm.DB) *gorm.DB {
		if query.MealType != "" {
			db = db.Where("meal_type = ?", string(query.MealType))
		}
		if query.MinKcal != nil {
			db = db.Where("kcal >= ?", *query.MinKcal)
		}
		if query.MaxKcal != nil {
			db = db.Where("kcal <= ?", *query.MaxKcal)
		}
		return db
	}

	var total int64
	if err := filtered(r.db.WithContext(ctx).Model(&RecipeModel{})).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var models []RecipeModel
	result := filtered(r.db.WithContext(ctx)).
		Preload("Ingredients").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&models)
	if result.Error != nil {
		return nil, 0, result.Error
	}

	recipes := make([]*nutrition.Recipe, 0, len(models))
	for i := range models {
		recipes = append(recipes, ModelToRecipe(&models[i]))
	}
	return recipes, total, nil
}

// FindForSlot returns recipes of a meal type inside an inclusive
// calorie range.
func (r *RecipeRepository) FindForSlot(ctx context.Context, mealType nutrition.MealType, minKcal, maxKcal float64) ([]*nutrition.Recipe, error) {
	var models []RecipeModel

	result := r.db.WithContext(ctx).
		Preload("Ingredients").
		Where("meal_type = ? AND kcal >= ? AND kcal <= ?", string(mealType), minKcal, maxKcal).
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	recipes := make([]*nutrition.Recipe, 0, len(models))
	for i := range models {
		recipes = append(recipes, ModelToRecipe(&models[i]))
	}
	return recipes, nil
}

// Delete deletes a recipe and its ingredient lines
func (r *RecipeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&RecipeIngredientModel{}, "recipe_id = ?", id).Error; err != nil {
			return err
		}
		result := tx.Delete(&RecipeModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nutrition.ErrRecipeNotFound
		}
		return nil
	})
}
