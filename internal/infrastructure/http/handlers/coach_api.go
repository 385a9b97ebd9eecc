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

// CoachAPIHandlers handles AI nutrition coach endpoints
type CoachAPIHandlers struct {
	coach    inbound.CoachService
	validate *validator.Validate
	logger   *zap.Logger
}

// NewCoachAPIHandlers creates a new coach handlers instance
func NewCoachAPIHandlers(coach inbound.CoachService, logger *zap.Logger) *CoachAPIHandlers {
	return &CoachAPIHandlers{
		coach:    coach,
		validate: validator.New(),
		logger:   logger,
	}
}

type chatRequest struct {
	Message string `json:"message" validate:"required,min=1,max=2000"`
}

type coachReply struct {
	Reply string `json:"reply"`
}

// Chat handles POST /api/v1/coach/chat
func (h *CoachAPIHandlers) Chat(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, h.logger, errors.NewUnauthorizedError(""))
		return
	}

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.logger, errors.NewBadRequestError("Invalid JSON body"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, h.logger, errors.NewValidationError(err.Error()))
		return
	}

	reply, err := h.coach.Chat(r.Context(), userID, req.Message)
	if err != nil {
		writeError(w, h.logger, coachError(err))
		return
	}
	writeData(w, h.logger, http.StatusOK, coachReply{Reply: reply})
}

// Advice handles GET /api/v1/coach/advice with an optional topic query
// parameter (general, diet, workout or motivation)
func (h *CoachAPIHandlers) Advice(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, h.logger, errors.NewUnauthorizedError(""))
		return
	}

	reply, err := h.coach.Advice(r.Context(), userID, r.URL.Query().Get("topic"))
	if err != nil {
		writeError(w, h.logger, coachError(err))
		return
	}
	writeData(w, h.logger, http.StatusOK, coachReply{Reply: reply})
}

type analyzeMealRequest struct {
	Description string `json:"description" validate:"required,min=1,max=2000"`
}

// AnalyzeMeal handles POST /api/v1/coach/analyze-meal
func (h *CoachAPIHandlers) AnalyzeMeal(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, h.logger, errors.NewUnauthorizedError(""))
		return
	}

	var req analyzeMealRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.logger, errors.NewBadRequestError("Invalid JSON body"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, h.logger, errors.NewValidationError(err.Error()))
		return
	}

	reply, err := h.coach.AnalyzeMeal(r.Context(), userID, req.Description)
	if err != nil {
		writeError(w, h.logger, coachError(err))
		return
	}
	writeData(w, h.logger, http.StatusOK, coachReply{Reply: reply})
}

// GenerateDietPlan handles POST /api/v1/coach/diet-plans
func (h *CoachAPIHandlers) GenerateDietPlan(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, h.logger, errors.NewUnauthorizedError(""))
		return
	}

	var cmd inbound.GenerateDietPlanCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		writeError(w, h.logger, errors.NewBadRequestError("Invalid JSON body"))
		return
	}
	if err := h.validate.Struct(cmd); err != nil {
		writeError(w, h.logger, errors.NewValidationError(err.Error()))
		return
	}
	cmd.UserID = userID

	plan, err := h.coach.GenerateDietPlan(r.Context(), cmd)
	if err != nil {
		writeError(w, h.logger, coachError(err))
		return
	}
	writeData(w, h.logger, http.StatusCreated, plan)
}

// ListDietPlans handles GET /api/v1/coach/diet-plans
func (h *CoachAPIHandlers) ListDietPlans(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, h.logger, errors.NewUnauthorizedError(""))
		return
	}

	includeArchived := r.URL.Query().Get("include_archived") == "true"
	plans, err := h.coach.ListDietPlans(r.Context(), userID, includeArchived)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeData(w, h.logger, http.StatusOK, plans)
}

// GetDietPlan handles GET /api/v1/coach/diet-plans/{id}
func (h *CoachAPIHandlers) GetDietPlan(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, h.logger, errors.NewUnauthorizedError(""))
		return
	}

	planID, err := pathID(r, "id")
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	plan, err := h.coach.GetDietPlan(r.Context(), userID, planID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeData(w, h.logger, http.StatusOK, plan)
}

// ArchiveDietPlan handles POST /api/v1/coach/diet-plans/{id}/archive
func (h *CoachAPIHandlers) ArchiveDietPlan(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, h.logger, errors.NewUnauthorizedError(""))
		return
	}

	planID, err := pathID(r, "id")
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	if err := h.coach.ArchiveDietPlan(r.Context(), userID, planID); err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, APIResponse{Success: true, Message: "Diet plan archived"})
}

// coachError keeps upstream model failures distinguishable from user
// lookup failures.
func coachError(err error) error {
	if appErr := toAppError(err); appErr.Code != errors.CodeInternal {
		return err
	}
	return errors.NewAppError(errors.CodeAIUnavailable, "The nutrition coach is unavailable", "").WithCause(err)
}
