package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kaloria/v1/internal/ports/inbound"
	"github.com/kaloria/v1/pkg/errors"
)

// CatalogAPIHandlers handles ingredient and recipe catalog endpoints
type CatalogAPIHandlers struct {
	catalog  inbound.CatalogService
	validate *validator.Validate
	logger   *zap.Logger
}

// NewCatalogAPIHandlers creates a new catalog handlers instance
func NewCatalogAPIHandlers(catalog inbound.CatalogService, logger *zap.Logger) *CatalogAPIHandlers {
	return &CatalogAPIHandlers{
		catalog:  catalog,
		validate: validator.New(),
		logger:   logger,
	}
}

// CreateIngredient handles POST /api/v1/ingredients
func (h *CatalogAPIHandlers) CreateIngredient(w http.ResponseWriter, r *http.Request) {
	var cmd inbound.CreateIngredientCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		writeError(w, h.logger, errors.NewBadRequestError("Invalid JSON body"))
		return
	}
	if err := h.validate.Struct(cmd); err != nil {
		writeError(w, h.logger, errors.NewValidationError(err.Error()))
		return
	}

	ingredient, err := h.catalog.CreateIngredient(r.Context(), cmd)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeData(w, h.logger, http.StatusCreated, ingredient)
}

// GetIngredient handles GET /api/v1/ingredients/{id}
func (h *CatalogAPIHandlers) GetIngredient(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	ingredient, err := h.catalog.GetIngredient(r.Context(), id)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeData(w, h.logger, http.StatusOK, ingredient)
}

// ListIngredients handles GET /api/v1/ingredients
func (h *CatalogAPIHandlers) ListIngredients(w http.ResponseWriter, r *http.Request) {
	list, err := h.catalog.ListIngredients(r.Context(), paginationFromQuery(r))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeData(w, h.logger, http.StatusOK, list)
}

// DeleteIngredient handles DELETE /api/v1/ingredients/{id}
func (h *CatalogAPIHandlers) DeleteIngredient(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	if err := h.catalog.DeleteIngredient(r.Context(), id); err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, APIResponse{Success: true, Message: "Ingredient deleted"})
}

// CreateRecipe handles POST /api/v1/recipes
func (h *CatalogAPIHandlers) CreateRecipe(w http.ResponseWriter, r *http.Request) {
	var cmd inbound.CreateRecipeCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		writeError(w, h.logger, errors.NewBadRequestError("Invalid JSON body"))
		return
	}
	if err := h.validate.Struct(cmd); err != nil {
		writeError(w, h.logger, errors.NewValidationError(err.Error()))
		return
	}

	recipe, err := h.catalog.CreateRecipe(r.Context(), cmd)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeData(w, h.logger, http.StatusCreated, recipe)
}

// GetRecipe handles GET /api/v1/recipes/{id}
func (h *CatalogAPIHandlers) GetRecipe(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	recipe, err := h.catalog.GetRecipe(r.Context(), id)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeData(w, h.logger, http.StatusOK, recipe)
}

// ListRecipes handles GET /api/v1/recipes with optional meal_type,
// min_kcal and max_kcal query filters
func (h *CatalogAPIHandlers) ListRecipes(w http.ResponseWriter, r *http.Request) {
	list, err := h.catalog.ListRecipes(r.Context(), paginationFromQuery(r), recipeFilterFromQuery(r))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeData(w, h.logger, http.StatusOK, list)
}

// DeleteRecipe handles DELETE /api/v1/recipes/{id}
func (h *CatalogAPIHandlers) DeleteRecipe(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	if err := h.catalog.DeleteRecipe(r.Context(), id); err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, APIResponse{Success: true, Message: "Recipe deleted"})
}

func pathID(r *http.Request, param string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, param))
	if err != nil {
		return uuid.Nil, errors.NewBadRequestError("Invalid ID in path")
	}
	return id, nil
}

func paginationFromQuery(r *http.Request) inbound.PaginationParams {
	params := inbound.PaginationParams{Page: 1, PerPage: 20}
	if page, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && page > 0 {
		params.Page = page
	}
	if perPage, err := strconv.Atoi(r.URL.Query().Get("per_page")); err == nil && perPage > 0 && perPage <= 100 {
		params.PerPage = perPage
	}
	return params
}

func recipeFilterFromQuery(r *http.Request) inbound.RecipeFilter {
	filter := inbound.RecipeFilter{MealType: r.URL.Query().Get("meal_type")}
	if min, err := strconv.ParseFloat(r.URL.Query().Get("min_kcal"), 64); err == nil {
		filter.MinKcal = &min
	}
	if max, err := strconv.ParseFloat(r.URL.Query().Get("max_kcal"), 64); err == nil {
		filter.MaxKcal = &max
	}
	return filter
}
