// Package pantry models the per-user stock of ingredients used to score
// recipes by what the user already has at home.
package pantry

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrItemNotFound    = errors.New("pantry item not found")
	ErrInvalidQuantity = errors.New("pantry quantity must be positive")
	ErrNotOwner        = errors.New("pantry item belongs to another user")
)

// Entry is a single ingredient line in a user's pantry.
type Entry struct {
	id           uuid.UUID
	userID       uuid.UUID
	ingredientID uuid.UUID
	quantity     float64
	updatedAt    time.Time
}

// NewEntry creates a pantry line for a user and ingredient.
func NewEntry(userID, ingredientID uuid.UUID, quantity float64) (*Entry, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	return &Entry{
		id:           uuid.New(),
		userID:       userID,
		ingredientID: ingredientID,
		quantity:     quantity,
		updatedAt:    time.Now(),
	}, nil
}

// ReconstituteEntry rebuilds a pantry line from persisted state.
func ReconstituteEntry(id, userID, ingredientID uuid.UUID, quantity float64, updatedAt time.Time) *Entry {
	return &Entry{
		id:           id,
		userID:       userID,
		ingredientID: ingredientID,
		quantity:     quantity,
		updatedAt:    updatedAt,
	}
}

func (e *Entry) ID() uuid.UUID           { return e.id }
func (e *Entry) UserID() uuid.UUID       { return e.userID }
func (e *Entry) IngredientID() uuid.UUID { return e.ingredientID }
func (e *Entry) Quantity() float64       { return e.quantity }
func (e *Entry) UpdatedAt() time.Time    { return e.updatedAt }

// Add increments the stocked quantity. Adding an ingredient that is
// already stocked accumulates rather than replacing.
func (e *Entry) Add(quantity float64) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	e.quantity += quantity
	e.updatedAt = time.Now()
	return nil
}

// SetQuantity replaces the stocked quantity outright.
func (e *Entry) SetQuantity(quantity float64) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	e.quantity = quantity
	e.updatedAt = time.Now()
	return nil
}
