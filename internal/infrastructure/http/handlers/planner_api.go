package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/kaloria/v1/internal/infrastructure/http/middleware"
	"github.com/kaloria/v1/internal/ports/inbound"
	"github.com/kaloria/v1/pkg/errors"
)

// PlannerAPIHandlers handles meal plan endpoints
type PlannerAPIHandlers struct {
	planner  inbound.PlannerService
	validate *validator.Validate
	logger   *zap.Logger
}

// NewPlannerAPIHandlers creates a new planner handlers instance
func NewPlannerAPIHandlers(planner inbound.PlannerService, logger *zap.Logger) *PlannerAPIHandlers {
	return &PlannerAPIHandlers{
		planner:  planner,
		validate: validator.New(),
		logger:   logger,
	}
}

// GeneratePlan handles POST /api/v1/mealplan
func (h *PlannerAPIHandlers) GeneratePlan(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, h.logger, errors.NewUnauthorizedError(""))
		return
	}

	var cmd inbound.GeneratePlanCommand
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
			writeError(w, h.logger, errors.NewBadRequestError("Invalid JSON body"))
			return
		}
		if err := h.validate.Struct(cmd); err != nil {
			writeError(w, h.logger, errors.NewValidationError(err.Error()))
			return
		}
	}
	cmd.UserID = userID

	plan, err := h.planner.GenerateMealPlan(r.Context(), cmd)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeData(w, h.logger, http.StatusOK, plan)
}
