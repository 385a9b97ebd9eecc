package inbound

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// CoachService defines the AI nutrition coach use cases. Responses are
// grounded in the user's computed health metrics.
type CoachService interface {
	Chat(ctx context.Context, userID uuid.UUID, message string) (string, error)
	// Advice accepts a topic preset; an empty topic means general.
	Advice(ctx context.Context, userID uuid.UUID, topic string) (string, error)
	AnalyzeMeal(ctx context.Context, userID uuid.UUID, description string) (string, error)

	GenerateDietPlan(ctx context.Context, cmd GenerateDietPlanCommand) (*DietPlanDTO, error)
	ListDietPlans(ctx context.Context, userID uuid.UUID, includeArchived bool) ([]DietPlanDTO, error)
	GetDietPlan(ctx context.Context, userID, planID uuid.UUID) (*DietPlanDTO, error)
	ArchiveDietPlan(ctx context.Context, userID, planID uuid.UUID) error
}

// GenerateDietPlanCommand requests a persisted AI diet plan.
type GenerateDietPlanCommand struct {
	UserID   uuid.UUID `json:"-"`
	Title    string    `json:"title" validate:"required,min=1,max=200"`
	Duration string    `json:"duration" validate:"required,oneof=daily weekly monthly"`
	Goals    string    `json:"goals,omitempty"`
}

// DietPlanDTO is the external representation of a stored diet plan.
type DietPlanDTO struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Duration  string    `json:"duration"`
	Content   string    `json:"content"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
