// Package outbound defines the driven-side ports: persistence, caching
// and external AI services the application depends on.
package outbound

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/kaloria/v1/internal/domain/account"
	"github.com/kaloria/v1/internal/domain/dietplan"
	"github.com/kaloria/v1/internal/domain/nutrition"
	"github.com/kaloria/v1/internal/domain/pantry"
)

// UserRepository persists user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *account.User) error
	Update(ctx context.Context, user *account.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*account.User, error)
	FindByEmail(ctx context.Context, email string) (*account.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	List(ctx context.Context, offset, limit int) ([]*account.User, int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// IngredientRepository persists catalog ingredients.
type IngredientRepository interface {
	Create(ctx context.Context, ingredient *nutrition.Ingredient) error
	Update(ctx context.Context, ingredient *nutrition.Ingredient) error
	FindByID(ctx context.Context, id uuid.UUID) (*nutrition.Ingredient, error)
	FindByName(ctx context.Context, name string) (*nutrition.Ingredient, error)
	List(ctx context.Context, offset, limit int) ([]*nutrition.Ingredient, int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// RecipeQuery narrows recipe listings. Zero values mean no filter.
type RecipeQuery struct {
	MealType nutrition.MealType
	MinKcal  *float64
	MaxKcal  *float64
}

// RecipeRepository persists recipes and serves the planner's candidate
// queries.
type RecipeRepository interface {
	Create(ctx context.Context, recipe *nutrition.Recipe) error
	Update(ctx context.Context, recipe *nutrition.Recipe) error
	FindByID(ctx context.Context, id uuid.UUID) (*nutrition.Recipe, error)
	List(ctx context.Context, query RecipeQuery, offset, limit int) ([]*nutrition.Recipe, int64, error)
	// FindForSlot returns recipes of the given meal type whose calories
	// fall inside the inclusive [minKcal, maxKcal] range.
	FindForSlot(ctx context.Context, mealType nutrition.MealType, minKcal, maxKcal float64) ([]*nutrition.Recipe, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// PantryRepository persists per-user ingredient stock.
type PantryRepository interface {
	Save(ctx context.Context, entry *pantry.Entry) error
	FindByUserAndIngredient(ctx context.Context, userID, ingredientID uuid.UUID) (*pantry.Entry, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*pantry.Entry, error)
	// OwnedIngredientIDs returns the set of ingredient IDs the user has
	// stocked, keyed for constant-time lookup during scoring.
	OwnedIngredientIDs(ctx context.Context, userID uuid.UUID) (map[uuid.UUID]bool, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// DietPlanRepository persists AI-generated diet plans.
type DietPlanRepository interface {
	Create(ctx context.Context, plan *dietplan.Plan) error
	Update(ctx context.Context, plan *dietplan.Plan) error
	FindByID(ctx context.Context, id uuid.UUID) (*dietplan.Plan, error)
	// ListByUser filters by status; an empty status returns all plans.
	ListByUser(ctx context.Context, userID uuid.UUID, status dietplan.Status) ([]*dietplan.Plan, error)
}

// CacheRepository is a generic byte cache with TTLs, used for computed
// health metrics and token revocation.
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// TextCompleter generates free-form text from a prompt. Implementations
// wrap an external language model API.
type TextCompleter interface {
	Complete(ctx context.Context, system, prompt string) (string, error)
}
