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

// PantryAPIHandlers handles pantry stock endpoints
type PantryAPIHandlers struct {
	pantry   inbound.PantryService
	validate *validator.Validate
	logger   *zap.Logger
}

// NewPantryAPIHandlers creates a new pantry handlers instance
func NewPantryAPIHandlers(pantry inbound.PantryService, logger *zap.Logger) *PantryAPIHandlers {
	return &PantryAPIHandlers{
		pantry:   pantry,
		validate: validator.New(),
		logger:   logger,
	}
}

// AddItem handles POST /api/v1/pantry
func (h *PantryAPIHandlers) AddItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, h.logger, errors.NewUnauthorizedError(""))
		return
	}

	var cmd inbound.AddPantryItemCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		writeError(w, h.logger, errors.NewBadRequestError("Invalid JSON body"))
		return
	}
	if err := h.validate.Struct(cmd); err != nil {
		writeError(w, h.logger, errors.NewValidationError(err.Error()))
		return
	}
	cmd.UserID = userID

	item, err := h.pantry.AddItem(r.Context(), cmd)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeData(w, h.logger, http.StatusCreated, item)
}

// ListItems handles GET /api/v1/pantry
func (h *PantryAPIHandlers) ListItems(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, h.logger, errors.NewUnauthorizedError(""))
		return
	}

	items, err := h.pantry.ListItems(r.Context(), userID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeData(w, h.logger, http.StatusOK, items)
}

// UpdateItem handles PUT /api/v1/pantry/{id}
func (h *PantryAPIHandlers) UpdateItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, h.logger, errors.NewUnauthorizedError(""))
		return
	}

	entryID, err := pathID(r, "id")
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	var cmd inbound.UpdatePantryItemCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		writeError(w, h.logger, errors.NewBadRequestError("Invalid JSON body"))
		return
	}
	if err := h.validate.Struct(cmd); err != nil {
		writeError(w, h.logger, errors.NewValidationError(err.Error()))
		return
	}
	cmd.UserID = userID
	cmd.EntryID = entryID

	item, err := h.pantry.UpdateItem(r.Context(), cmd)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeData(w, h.logger, http.StatusOK, item)
}

// RemoveItem handles DELETE /api/v1/pantry/{id}
func (h *PantryAPIHandlers) RemoveItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, h.logger, errors.NewUnauthorizedError(""))
		return
	}

	entryID, err := pathID(r, "id")
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	if err := h.pantry.RemoveItem(r.Context(), userID, entryID); err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, APIResponse{Success: true, Message: "Pantry item removed"})
}
