package inbound

import (
	"context"

	"github.com/google/uuid"

	"github.com/kaloria/v1/internal/domain/mealplan"
)

// PlannerService defines the meal planning use cases.
type PlannerService interface {
	GenerateMealPlan(ctx context.Context, cmd GeneratePlanCommand) (*mealplan.Plan, error)
}

// GeneratePlanCommand requests a daily plan for a user. Deficit defaults
// to -500 kcal and Tolerance to 0.10 when left nil.
type GeneratePlanCommand struct {
	UserID    uuid.UUID `json:"-"`
	Deficit   *float64  `json:"deficit,omitempty" validate:"omitempty,gte=-1000,lte=500"`
	Tolerance *float64  `json:"tolerance,omitempty" validate:"omitempty,gt=0,lte=1"`
}
