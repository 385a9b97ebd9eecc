// Package handlers provides HTTP handlers for the REST API
package handlers

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/kaloria/v1/internal/domain/account"
	"github.com/kaloria/v1/internal/domain/dietplan"
	"github.com/kaloria/v1/internal/domain/health"
	"github.com/kaloria/v1/internal/domain/nutrition"
	"github.com/kaloria/v1/internal/domain/pantry"
	"github.com/kaloria/v1/pkg/errors"
)

// APIResponse represents a standard API response
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *apiError   `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
}

type apiError struct {
	Code    errors.ErrorCode `json:"code"`
	Message string           `json:"message"`
	Details string           `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, logger *zap.Logger, status int, response APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error("Failed to encode response", zap.Error(err))
	}
}

func writeData(w http.ResponseWriter, logger *zap.Logger, status int, data interface{}) {
	writeJSON(w, logger, status, APIResponse{Success: true, Data: data})
}

func writeError(w http.ResponseWriter, logger *zap.Logger, err error) {
	appErr := toAppError(err)
	if appErr.StatusCode() >= http.StatusInternalServerError {
		logger.Error("Request failed", zap.Error(err))
	}
	writeJSON(w, logger, appErr.StatusCode(), APIResponse{
		Success: false,
		Error: &apiError{
			Code:    appErr.Code,
			Message: appErr.Message,
			Details: appErr.Details,
		},
	})
}

// toAppError maps domain sentinel errors onto the stable error taxonomy.
func toAppError(err error) *errors.AppError {
	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		return appErr
	}

	switch {
	case stderrors.Is(err, account.ErrUserNotFound):
		return errors.NewAppError(errors.CodeUserNotFound, "User not found", "")
	case stderrors.Is(err, account.ErrEmailExists):
		return errors.NewAppError(errors.CodeEmailAlreadyExists, "Email already registered", "")
	case stderrors.Is(err, account.ErrInvalidCredentials), stderrors.Is(err, account.ErrUserInactive):
		return errors.NewAppError(errors.CodeInvalidCredentials, "Invalid email or password", "")
	case stderrors.Is(err, account.ErrInvalidEmail), stderrors.Is(err, account.ErrWeakPassword):
		return errors.NewValidationError(err.Error())
	case stderrors.Is(err, health.ErrMissingMeasurement):
		return errors.NewAppError(errors.CodeMissingMeasurement, "Required body measurement is missing", err.Error())
	case stderrors.Is(err, health.ErrInvalidMeasurement):
		return errors.NewAppError(errors.CodeInvalidMeasurement, "Body measurements are out of the valid range", err.Error())
	case stderrors.Is(err, nutrition.ErrIngredientNotFound):
		return errors.NewAppError(errors.CodeIngredientNotFound, "Ingredient not found", "")
	case stderrors.Is(err, nutrition.ErrRecipeNotFound):
		return errors.NewAppError(errors.CodeRecipeNotFound, "Recipe not found", "")
	case stderrors.Is(err, nutrition.ErrIngredientExists):
		return errors.NewConflictError("Ingredient already exists")
	case stderrors.Is(err, nutrition.ErrInvalidMealType),
		stderrors.Is(err, nutrition.ErrNameRequired),
		stderrors.Is(err, nutrition.ErrNegativeNutrition),
		stderrors.Is(err, nutrition.ErrInvalidUnit),
		stderrors.Is(err, nutrition.ErrInvalidQuantity):
		return errors.NewValidationError(err.Error())
	case stderrors.Is(err, pantry.ErrItemNotFound):
		return errors.NewAppError(errors.CodePantryItemNotFound, "Pantry item not found", "")
	case stderrors.Is(err, pantry.ErrInvalidQuantity):
		return errors.NewValidationError(err.Error())
	case stderrors.Is(err, dietplan.ErrPlanNotFound):
		return errors.NewAppError(errors.CodeDietPlanNotFound, "Diet plan not found", "")
	case stderrors.Is(err, dietplan.ErrInvalidDuration), stderrors.Is(err, dietplan.ErrAlreadyArchived):
		return errors.NewValidationError(err.Error())
	default:
		return errors.NewInternalError("")
	}
}
