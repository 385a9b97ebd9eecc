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

// AuthAPIHandlers handles authentication and profile endpoints
type AuthAPIHandlers struct {
	accounts inbound.AccountService
	validate *validator.Validate
	logger   *zap.Logger
}

// NewAuthAPIHandlers creates a new auth handlers instance
func NewAuthAPIHandlers(accounts inbound.AccountService, logger *zap.Logger) *AuthAPIHandlers {
	return &AuthAPIHandlers{
		accounts: accounts,
		validate: validator.New(),
		logger:   logger,
	}
}

// Register handles POST /api/v1/auth/register
func (h *AuthAPIHandlers) Register(w http.ResponseWriter, r *http.Request) {
	var cmd inbound.RegisterCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		writeError(w, h.logger, errors.NewBadRequestError("Invalid JSON body"))
		return
	}
	if err := h.validate.Struct(cmd); err != nil {
		writeError(w, h.logger, errors.NewValidationError(err.Error()))
		return
	}

	user, err := h.accounts.Register(r.Context(), cmd)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeData(w, h.logger, http.StatusCreated, user)
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login handles POST /api/v1/auth/login
func (h *AuthAPIHandlers) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.logger, errors.NewBadRequestError("Invalid JSON body"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, h.logger, errors.NewValidationError(err.Error()))
		return
	}

	tokens, err := h.accounts.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeData(w, h.logger, http.StatusOK, tokens)
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// RefreshToken handles POST /api/v1/auth/refresh
func (h *AuthAPIHandlers) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.logger, errors.NewBadRequestError("Invalid JSON body"))
		return
	}

	tokens, err := h.accounts.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		writeError(w, h.logger, errors.NewUnauthorizedError("Invalid refresh token"))
		return
	}
	writeData(w, h.logger, http.StatusOK, tokens)
}

// Logout handles POST /api/v1/auth/logout
func (h *AuthAPIHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	token, ok := middleware.BearerToken(r)
	if !ok {
		writeError(w, h.logger, errors.NewUnauthorizedError(""))
		return
	}
	if err := h.accounts.Logout(r.Context(), token); err != nil {
		writeError(w, h.logger, errors.NewUnauthorizedError("Invalid token"))
		return
	}
	writeJSON(w, h.logger, http.StatusOK, APIResponse{Success: true, Message: "Logged out"})
}

// GetProfile handles GET /api/v1/auth/profile
func (h *AuthAPIHandlers) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, h.logger, errors.NewUnauthorizedError(""))
		return
	}

	user, err := h.accounts.GetProfile(r.Context(), userID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeData(w, h.logger, http.StatusOK, user)
}

// UpdateMeasurements handles PUT /api/v1/auth/profile/measurements
func (h *AuthAPIHandlers) UpdateMeasurements(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, h.logger, errors.NewUnauthorizedError(""))
		return
	}

	var cmd inbound.UpdateMeasurementsCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		writeError(w, h.logger, errors.NewBadRequestError("Invalid JSON body"))
		return
	}
	cmd.UserID = userID

	user, err := h.accounts.UpdateMeasurements(r.Context(), cmd)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeData(w, h.logger, http.StatusOK, user)
}

// HealthMetrics handles GET /api/v1/health-metrics
func (h *AuthAPIHandlers) HealthMetrics(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, h.logger, errors.NewUnauthorizedError(""))
		return
	}

	metrics, err := h.accounts.HealthMetrics(r.Context(), userID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeData(w, h.logger, http.StatusOK, metrics)
}

// ListUsers handles GET /api/v1/users (admin only)
func (h *AuthAPIHandlers) ListUsers(w http.ResponseWriter, r *http.Request) {
	list, err := h.accounts.ListUsers(r.Context(), paginationFromQuery(r))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeData(w, h.logger, http.StatusOK, list)
}
