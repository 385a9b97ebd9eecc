package gorm

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kaloria/v1/internal/domain/dietplan"
	"github.com/kaloria/v1/internal/ports/outbound"
)

// DietPlanRepository implements the diet plan repository using GORM
type DietPlanRepository struct {
	db *gorm.DB
}

// NewDietPlanRepository creates a new diet plan repository
func NewDietPlanRepository(db *gorm.DB) outbound.DietPlanRepository {
	return &DietPlanRepository{db: db}
}

// Create creates a new diet plan
func (r *DietPlanRepository) Create(ctx context.Context, plan *dietplan.Plan) error {
	return r.db.WithContext(ctx).Create(DietPlanToModel(plan)).Error
}

// Update updates an existing diet plan
func (r *DietPlanRepository) Update(ctx context.Context, plan *dietplan.Plan) error {
	result := r.db.WithContext(ctx).Save(DietPlanToModel(plan))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return dietplan.ErrPlanNotFound
	}
	return nil
}

// FindByID finds a diet plan by ID
func (r *DietPlanRepository) FindByID(ctx context.Context, id uuid.UUID) (*dietplan.Plan, error) {
	var model DietPlanModel

	result := r.db.WithContext(ctx).First(&model, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, dietplan.ErrPlanNotFound
		}
		return nil, result.Error
	}
	return ModelToDietPlan(&model), nil
}

// ListByUser returns a user's plans, optionally filtered by status
func (r *DietPlanRepository) ListByUser(ctx context.Context, userID uuid.UUID, status dietplan.Status) ([]*dietplan.Plan, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if status != "" {
		query = query.Where("status = ?", string(status))
	}

	var models []DietPlanModel
	result := query.Order("created_at DESC").Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	plans := make([]*dietplan.Plan, 0, len(models))
	for i := range models {
		plans = append(plans, ModelToDietPlan(&models[i]))
	}
	return plans, nil
}
