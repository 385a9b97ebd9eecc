package gorm

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kaloria/v1/internal/domain/pantry"
	"github.com/kaloria/v1/internal/ports/outbound"
)

// PantryRepository implements the pantry repository using GORM
type PantryRepository struct {
	db *gorm.DB
}

// NewPantryRepository creates a new pantry repository
func NewPantryRepository(db *gorm.DB) outbound.PantryRepository {
	return &PantryRepository{db: db}
}

// Save upserts a pantry entry
func (r *PantryRepository) Save(ctx context.Context, entry *pantry.Entry) error {
	return r.db.WithContext(ctx).Save(PantryEntryToModel(entry)).Error
}

// FindByUserAndIngredient finds the entry for one user and ingredient
func (r *PantryRepository) FindByUserAndIngredient(ctx context.Context, userID, ingredientID uuid.UUID) (*pantry.Entry, error) {
	var model PantryItemModel

	result := r.db.WithContext(ctx).
		First(&model, "user_id = ? AND ingredient_id = ?", userID, ingredientID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, pantry.ErrItemNotFound
		}
		return nil, result.Error
	}
	return ModelToPantryEntry(&model), nil
}

// ListByUser returns all entries for a user
func (r *PantryRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*pantry.Entry, error) {
	var models []PantryItemModel

	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	entries := make([]*pantry.Entry, 0, len(models))
	for i := range models {
		entries = append(entries, ModelToPantryEntry(&models[i]))
	}
	return entries, nil
}

// OwnedIngredientIDs returns the user's stocked ingredient IDs as a set
func (r *PantryRepository) OwnedIngredientIDs(ctx context.Context, userID uuid.UUID) (map[uuid.UUID]bool, error) {
	var ids []uuid.UUID

	result := r.db.WithContext(ctx).
		Model(&PantryItemModel{}).
		Where("user_id = ?", userID).
		Pluck("ingredient_id", &ids)
	if result.Error != nil {
		return nil, result.Error
	}

	owned := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		owned[id] = true
	}
	return owned, nil
}

// Delete deletes a pantry entry by ID
func (r *PantryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&PantryItemModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return pantry.ErrItemNotFound
	}
	return nil
}
