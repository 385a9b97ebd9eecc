// Package pantry provides the application layer for ingredient stock.
package pantry

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kaloria/v1/internal/domain/pantry"
	"github.com/kaloria/v1/internal/ports/inbound"
	"github.com/kaloria/v1/internal/ports/outbound"
)

// Service implements the pantry use cases.
type Service struct {
	pantryRepo     outbound.PantryRepository
	ingredientRepo outbound.IngredientRepository
	logger         *zap.Logger
}

// NewService creates a new pantry service.
func NewService(
	pantryRepo outbound.PantryRepository,
	ingredientRepo outbound.IngredientRepository,
	logger *zap.Logger,
) *Service {
	return &Service{
		pantryRepo:     pantryRepo,
		ingredientRepo: ingredientRepo,
		logger:         logger.Named("pantry-service"),
	}
}

var _ inbound.PantryService = (*Service)(nil)

// AddItem stocks an ingredient. When the user already has the ingredient
// the quantities accumulate instead of replacing each other.
func (s *Service) AddItem(ctx context.Context, cmd inbound.AddPantryItemCommand) (*inbound.PantryItemDTO, error) {
	ingredient, err := s.ingredientRepo.FindByID(ctx, cmd.IngredientID)
	if err != nil {
		return nil, err
	}

	entry, err := s.pantryRepo.FindByUserAndIngredient(ctx, cmd.UserID, cmd.IngredientID)
	switch {
	case err == nil:
		if err := entry.Add(cmd.Quantity); err != nil {
			return nil, err
		}
	case errors.Is(err, pantry.ErrItemNotFound):
		entry, err = pantry.NewEntry(cmd.UserID, cmd.IngredientID, cmd.Quantity)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("failed to look up pantry entry: %w", err)
	}

	if err := s.pantryRepo.Save(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to save pantry entry: %w", err)
	}

	s.logger.Info("Pantry item stocked",
		zap.String("user_id", cmd.UserID.String()),
		zap.String("ingredient", ingredient.Name()),
		zap.Float64("quantity", entry.Quantity()),
	)

	return &inbound.PantryItemDTO{
		ID:             entry.ID(),
		IngredientID:   entry.IngredientID(),
		IngredientName: ingredient.Name(),
		Quantity:       entry.Quantity(),
		Unit:           ingredient.Unit(),
		UpdatedAt:      entry.UpdatedAt(),
	}, nil
}

// ListItems returns the user's pantry with ingredient names resolved.
func (s *Service) ListItems(ctx context.Context, userID uuid.UUID) ([]inbound.PantryItemDTO, error) {
	entries, err := s.pantryRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pantry: %w", err)
	}

	items := make([]inbound.PantryItemDTO, 0, len(entries))
	for _, entry := range entries {
		dto := inbound.PantryItemDTO{
			ID:           entry.ID(),
			IngredientID: entry.IngredientID(),
			Quantity:     entry.Quantity(),
			UpdatedAt:    entry.UpdatedAt(),
		}
		if ingredient, err := s.ingredientRepo.FindByID(ctx, entry.IngredientID()); err == nil {
			dto.IngredientName = ingredient.Name()
			dto.Unit = ingredient.Unit()
		}
		items = append(items, dto)
	}
	return items, nil
}

// UpdateItem overwrites the quantity of one of the user's pantry lines.
func (s *Service) UpdateItem(ctx context.Context, cmd inbound.UpdatePantryItemCommand) (*inbound.PantryItemDTO, error) {
	entries, err := s.pantryRepo.ListByUser(ctx, cmd.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pantry: %w", err)
	}

	for _, entry := range entries {
		if entry.ID() != cmd.EntryID {
			continue
		}
		if err := entry.SetQuantity(cmd.Quantity); err != nil {
			return nil, err
		}
		if err := s.pantryRepo.Save(ctx, entry); err != nil {
			return nil, fmt.Errorf("failed to save pantry entry: %w", err)
		}

		dto := inbound.PantryItemDTO{
			ID:           entry.ID(),
			IngredientID: entry.IngredientID(),
			Quantity:     entry.Quantity(),
			UpdatedAt:    entry.UpdatedAt(),
		}
		if ingredient, err := s.ingredientRepo.FindByID(ctx, entry.IngredientID()); err == nil {
			dto.IngredientName = ingredient.Name()
			dto.Unit = ingredient.Unit()
		}
		return &dto, nil
	}
	return nil, pantry.ErrItemNotFound
}

// RemoveItem deletes a pantry line. A user can only remove their own
// entries.
func (s *Service) RemoveItem(ctx context.Context, userID, entryID uuid.UUID) error {
	entries, err := s.pantryRepo.ListByUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to list pantry: %w", err)
	}
	for _, entry := range entries {
		if entry.ID() == entryID {
			return s.pantryRepo.Delete(ctx, entryID)
		}
	}
	return pantry.ErrItemNotFound
}
