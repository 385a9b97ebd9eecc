// Package catalog provides the application layer for the ingredient and
// recipe catalog.
package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kaloria/v1/internal/domain/nutrition"
	"github.com/kaloria/v1/internal/ports/inbound"
	"github.com/kaloria/v1/internal/ports/outbound"
)

// Service implements the catalog use cases.
type Service struct {
	ingredientRepo outbound.IngredientRepository
	recipeRepo     outbound.RecipeRepository
	logger         *zap.Logger
}

// NewService creates a new catalog service.
func NewService(
	ingredientRepo outbound.IngredientRepository,
	recipeRepo outbound.RecipeRepository,
	logger *zap.Logger,
) *Service {
	return &Service{
		ingredientRepo: ingredientRepo,
		recipeRepo:     recipeRepo,
		logger:         logger.Named("catalog-service"),
	}
}

var _ inbound.CatalogService = (*Service)(nil)

// CreateIngredient registers a new catalog ingredient. Names are unique.
func (s *Service) CreateIngredient(ctx context.Context, cmd inbound.CreateIngredientCommand) (*inbound.IngredientDTO, error) {
	if existing, err := s.ingredientRepo.FindByName(ctx, cmd.Name); err == nil && existing != nil {
		return nil, nutrition.ErrIngredientExists
	}

	ingredient, err := nutrition.NewIngredient(cmd.Name, cmd.Unit, cmd.KcalPerUnit)
	if err != nil {
		return nil, err
	}
	if err := s.ingredientRepo.Create(ctx, ingredient); err != nil {
		return nil, fmt.Errorf("failed to save ingredient: %w", err)
	}

	s.logger.Info("Ingredient created",
		zap.String("ingredient_id", ingredient.ID().String()),
		zap.String("name", ingredient.Name()),
	)
	dto := ingredientToDTO(ingredient)
	return &dto, nil
}

// GetIngredient fetches an ingredient by ID.
func (s *Service) GetIngredient(ctx context.Context, id uuid.UUID) (*inbound.IngredientDTO, error) {
	ingredient, err := s.ingredientRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := ingredientToDTO(ingredient)
	return &dto, nil
}

// ListIngredients returns a page of the ingredient catalog.
func (s *Service) ListIngredients(ctx context.Context, params inbound.PaginationParams) (*inbound.IngredientList, error) {
	params = normalizePagination(params)
	ingredients, total, err := s.ingredientRepo.List(ctx, params.Offset(), params.PerPage)
	if err != nil {
		return nil, fmt.Errorf("failed to list ingredients: %w", err)
	}

	items := make([]inbound.IngredientDTO, 0, len(ingredients))
	for _, ing := range ingredients {
		items = append(items, ingredientToDTO(ing))
	}
	return &inbound.IngredientList{
		Items:      items,
		Total:      total,
		Page:       params.Page,
		PerPage:    params.PerPage,
		TotalPages: totalPages(total, params.PerPage),
	}, nil
}

// DeleteIngredient removes an ingredient from the catalog.
func (s *Service) DeleteIngredient(ctx context.Context, id uuid.UUID) error {
	if _, err := s.ingredientRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.ingredientRepo.Delete(ctx, id)
}

// CreateRecipe registers a new recipe. Each referenced ingredient must
// already exist in the catalog.
func (s *Service) CreateRecipe(ctx context.Context, cmd inbound.CreateRecipeCommand) (*inbound.RecipeDTO, error) {
	mealType, err := nutrition.ParseMealType(cmd.MealType)
	if err != nil {
		return nil, err
	}

	recipe, err := nutrition.NewRecipe(cmd.Name, mealType, cmd.Kcal, cmd.ProteinG, cmd.CarbsG, cmd.FatG)
	if err != nil {
		return nil, err
	}
	recipe.SetDescription(cmd.Description)
	recipe.SetInstructions(cmd.Instructions)

	for _, in := range cmd.Ingredients {
		if _, err := s.ingredientRepo.FindByID(ctx, in.IngredientID); err != nil {
			return nil, fmt.Errorf("ingredient %s: %w", in.IngredientID, err)
		}
		if err := recipe.AddIngredient(in.IngredientID, in.Quantity); err != nil {
			return nil, err
		}
	}

	if err := s.recipeRepo.Create(ctx, recipe); err != nil {
		return nil, fmt.Errorf("failed to save recipe: %w", err)
	}

	s.logger.Info("Recipe created",
		zap.String("recipe_id", recipe.ID().String()),
		zap.String("name", recipe.Name()),
		zap.String("meal_type", string(recipe.MealType())),
	)
	dto := recipeToDTO(recipe)
	return &dto, nil
}

// GetRecipe fetches a recipe by ID.
func (s *Service) GetRecipe(ctx context.Context, id uuid.UUID) (*inbound.RecipeDTO, error) {
	recipe, err := s.recipeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := recipeToDTO(recipe)
	return &dto, nil
}

// ListRecipes returns a page of the recipe catalog, optionally narrowed
// by meal type and calorie range.
func (s *Service) ListRecipes(ctx context.Context, params inbound.PaginationParams, filter inbound.RecipeFilter) (*inbound.RecipeList, error) {
	params = normalizePagination(params)

	query := outbound.RecipeQuery{MinKcal: filter.MinKcal, MaxKcal: filter.MaxKcal}
	if filter.MealType != "" {
		mealType, err := nutrition.ParseMealType(filter.MealType)
		if err != nil {
			return nil, err
		}
		query.MealType = mealType
	}

	recipes, total, err := s.recipeRepo.List(ctx, query, params.Offset(), params.PerPage)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}

	items := make([]inbound.RecipeDTO, 0, len(recipes))
	for _, r := range recipes {
		items = append(items, recipeToDTO(r))
	}
	return &inbound.RecipeList{
		Items:      items,
		Total:      total,
		Page:       params.Page,
		PerPage:    params.PerPage,
		TotalPages: totalPages(total, params.PerPage),
	}, nil
}

// DeleteRecipe removes a recipe from the catalog.
func (s *Service) DeleteRecipe(ctx context.Context, id uuid.UUID) error {
	if _, err := s.recipeRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.recipeRepo.Delete(ctx, id)
}

func normalizePagination(p inbound.PaginationParams) inbound.PaginationParams {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PerPage < 1 || p.PerPage > 100 {
		p.PerPage = 20
	}
	return p
}

func totalPages(total int64, perPage int) int {
	if perPage <= 0 {
		return 0
	}
	pages := int(total) / perPage
	if int(total)%perPage != 0 {
		pages++
	}
	return pages
}

func ingredientToDTO(i *nutrition.Ingredient) inbound.IngredientDTO {
	return inbound.IngredientDTO{
		ID:          i.ID(),
		Name:        i.Name(),
		Unit:        i.Unit(),
		KcalPerUnit: i.KcalPerUnit(),
		CreatedAt:   i.CreatedAt(),
	}
}

func recipeToDTO(r *nutrition.Recipe) inbound.RecipeDTO {
	ingredients := make([]inbound.RecipeIngredientDTO, 0, len(r.Ingredients()))
	for _, ri := range r.Ingredients() {
		ingredients = append(ingredients, inbound.RecipeIngredientDTO{
			IngredientID: ri.IngredientID,
			Quantity:     ri.Quantity,
		})
	}
	return inbound.RecipeDTO{
		ID:           r.ID(),
		Name:         r.Name(),
		MealType:     string(r.MealType()),
		Kcal:         r.Kcal(),
		ProteinG:     r.ProteinG(),
		CarbsG:       r.CarbsG(),
		FatG:         r.FatG(),
		Description:  r.Description(),
		Instructions: r.Instructions(),
		Ingredients:  ingredients,
		CreatedAt:    r.CreatedAt(),
	}
}
