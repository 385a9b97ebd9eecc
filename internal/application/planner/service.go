// Package planner provides the application layer for daily meal plan
// generation.
package planner

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/kaloria/v1/internal/domain/mealplan"
	"github.com/kaloria/v1/internal/domain/nutrition"
	"github.com/kaloria/v1/internal/ports/inbound"
	"github.com/kaloria/v1/internal/ports/outbound"
)

// Service implements the meal planning use cases.
type Service struct {
	userRepo   outbound.UserRepository
	recipeRepo outbound.RecipeRepository
	pantryRepo outbound.PantryRepository
	logger     *zap.Logger
}

// NewService creates a new planner service.
func NewService(
	userRepo outbound.UserRepository,
	recipeRepo outbound.RecipeRepository,
	pantryRepo outbound.PantryRepository,
	logger *zap.Logger,
) *Service {
	return &Service{
		userRepo:   userRepo,
		recipeRepo: recipeRepo,
		pantryRepo: pantryRepo,
		logger:     logger.Named("planner-service"),
	}
}

var _ inbound.PlannerService = (*Service)(nil)

// GenerateMealPlan builds a daily plan for the user: derive the calorie
// target from the TDEE and deficit, split it across the meals of the day,
// and fill each slot with the best pantry-matched recipes inside the
// calorie band.
func (s *Service) GenerateMealPlan(ctx context.Context, cmd inbound.GeneratePlanCommand) (*mealplan.Plan, error) {
	user, err := s.userRepo.FindByID(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}

	metrics, err := user.HealthMetrics()
	if err != nil {
		return nil, err
	}

	deficit := mealplan.DefaultDeficit
	if cmd.Deficit != nil {
		deficit = *cmd.Deficit
	}
	tolerance := mealplan.DefaultTolerance
	if cmd.Tolerance != nil {
		tolerance = *cmd.Tolerance
	}

	gender := user.Measurements().Gender
	target := mealplan.TargetCalories(metrics.TDEE, deficit, gender)
	slotTargets := mealplan.SlotTargets(target)

	owned, err := s.pantryRepo.OwnedIngredientIDs(ctx, cmd.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load pantry: %w", err)
	}

	plan := &mealplan.Plan{
		UserID:     cmd.UserID,
		TDEE:       metrics.TDEE,
		TargetKcal: target,
		Deficit:    deficit,
		Slots:      make([]mealplan.Slot, 0, len(slotTargets)),
	}

	for _, mt := range nutrition.MealTypes() {
		slotTarget := slotTargets[mt]
		minKcal, maxKcal := mealplan.CalorieBand(slotTarget, tolerance)

		candidates, err := s.recipeRepo.FindForSlot(ctx, mt, minKcal, maxKcal)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s candidates: %w", mt, err)
		}

		plan.Slots = append(plan.Slots, mealplan.BuildSlot(mt, slotTarget, tolerance, candidates, owned))
	}

	plan.ComputeTotals()

	s.logger.Info("Meal plan generated",
		zap.String("user_id", cmd.UserID.String()),
		zap.Float64("target_kcal", plan.TargetKcal),
		zap.Float64("tdee", plan.TDEE),
	)
	return plan, nil
}
