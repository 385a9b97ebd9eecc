package inbound

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// PantryService defines the use cases for managing a user's ingredient
// stock.
type PantryService interface {
	AddItem(ctx context.Context, cmd AddPantryItemCommand) (*PantryItemDTO, error)
	ListItems(ctx context.Context, userID uuid.UUID) ([]PantryItemDTO, error)
	UpdateItem(ctx context.Context, cmd UpdatePantryItemCommand) (*PantryItemDTO, error)
	RemoveItem(ctx context.Context, userID, entryID uuid.UUID) error
}

// AddPantryItemCommand stocks an ingredient. Adding an ingredient the
// user already has increments the stored quantity.
type AddPantryItemCommand struct {
	UserID       uuid.UUID `json:"-"`
	IngredientID uuid.UUID `json:"ingredient_id" validate:"required"`
	Quantity     float64   `json:"quantity" validate:"gt=0"`
}

// UpdatePantryItemCommand overwrites the stored quantity of a pantry
// line.
type UpdatePantryItemCommand struct {
	UserID   uuid.UUID `json:"-"`
	EntryID  uuid.UUID `json:"-"`
	Quantity float64   `json:"quantity" validate:"gt=0"`
}

// PantryItemDTO is the external representation of a pantry line.
type PantryItemDTO struct {
	ID             uuid.UUID `json:"id"`
	IngredientID   uuid.UUID `json:"ingredient_id"`
	IngredientName string    `json:"ingredient_name,omitempty"`
	Quantity       float64   `json:"quantity"`
	Unit           string    `json:"unit,omitempty"`
	UpdatedAt      time.Time `json:"updated_at"`
}
