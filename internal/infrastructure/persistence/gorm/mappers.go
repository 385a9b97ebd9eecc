// Mappers between domain entities and GORM models.
package gorm

import (
	"github.com/kaloria/v1/internal/domain/account"
	"github.com/kaloria/v1/internal/domain/dietplan"
	"github.com/kaloria/v1/internal/domain/health"
	"github.com/kaloria/v1/internal/domain/nutrition"
	"github.com/kaloria/v1/internal/domain/pantry"
)

// UserToModel converts a domain user to a GORM model
func UserToModel(u *account.User) *UserModel {
	m := u.Measurements()
	return &UserModel{
		ID:             u.ID(),
		Email:          u.Email(),
		Name:           u.Name(),
		PasswordHash:   u.PasswordHash(),
		IsActive:       u.IsActive(),
		IsAdmin:        u.IsAdmin(),
		HeightCm:       m.HeightCm,
		WeightKg:       m.WeightKg,
		Gender:         string(m.Gender),
		Age:            m.Age,
		ActivityLevel:  string(m.ActivityLevel),
		WaistCm:        m.WaistCm,
		NeckCm:         m.NeckCm,
		HipCm:          m.HipCm,
		TargetWeightKg: m.TargetWeightKg,
		CreatedAt:      u.CreatedAt(),
		UpdatedAt:      u.UpdatedAt(),
		LastLoginAt:    u.LastLoginAt(),
	}
}

// ModelToUser converts a GORM model to a domain user
func ModelToUser(m *UserModel) *account.User {
	measurements := health.Measurements{
		HeightCm:       m.HeightCm,
		WeightKg:       m.WeightKg,
		Gender:         health.Gender(m.Gender),
		Age:            m.Age,
		ActivityLevel:  health.ActivityLevel(m.ActivityLevel),
		WaistCm:        m.WaistCm,
		NeckCm:         m.NeckCm,
		HipCm:          m.HipCm,
		TargetWeightKg: m.TargetWeightKg,
	}
	return account.Reconstitute(
		m.ID,
		m.Email,
		m.Name,
		m.PasswordHash,
		m.IsActive,
		m.IsAdmin,
		measurements,
		m.CreatedAt,
		m.UpdatedAt,
		m.LastLoginAt,
	)
}

// IngredientToModel converts a domain ingredient to a GORM model
func IngredientToModel(i *nutrition.Ingredient) *IngredientModel {
	return &IngredientModel{
		ID:          i.ID(),
		Name:        i.Name(),
		Unit:        i.Unit(),
		KcalPerUnit: i.KcalPerUnit(),
		CreatedAt:   i.CreatedAt(),
	}
}

// ModelToIngredient converts a GORM model to a domain ingredient
func ModelToIngredient(m *IngredientModel) *nutrition.Ingredient {
	return nutrition.ReconstituteIngredient(m.ID, m.Name, m.Unit, m.KcalPerUnit, m.CreatedAt)
}

// RecipeToModel converts a domain recipe to a GORM model
func RecipeToModel(r *nutrition.Recipe) *RecipeModel {
	ingredients := make([]RecipeIngredientModel, 0, len(r.Ingredients()))
	for _, ri := range r.Ingredients() {
		ingredients = append(ingredients, RecipeIngredientModel{
			RecipeID:     r.ID(),
			IngredientID: ri.IngredientID,
			Quantity:     ri.Quantity,
		})
	}
	return &RecipeModel{
		ID:           r.ID(),
		Name:         r.Name(),
		MealType:     string(r.MealType()),
		Kcal:         r.Kcal(),
		ProteinG:     r.ProteinG(),
		CarbsG:       r.CarbsG(),
		FatG:         r.FatG(),
		Description:  r.Description(),
		Instructions: r.Instructions(),
		CreatedAt:    r.CreatedAt(),
		Ingredients:  ingredients,
	}
}

// ModelToRecipe converts a GORM model to a domain recipe
func ModelToRecipe(m *RecipeModel) *nutrition.Recipe {
	ingredients := make([]nutrition.RecipeIngredient, 0, len(m.Ingredients))
	for _, ri := range m.Ingredients {
		ingredients = append(ingredients, nutrition.RecipeIngredient{
			IngredientID: ri.IngredientID,
			Quantity:     ri.Quantity,
		})
	}
	return nutrition.ReconstituteRecipe(
		m.ID,
		m.Name,
		nutrition.MealType(m.MealType),
		m.Kcal,
		m.ProteinG,
		m.CarbsG,
		m.FatG,
		m.Description,
		m.Instructions,
		ingredients,
		m.CreatedAt,
	)
}

// PantryEntryToModel converts a domain pantry entry to a GORM model
func PantryEntryToModel(e *pantry.Entry) *PantryItemModel {
	return &PantryItemModel{
		ID:           e.ID(),
		UserID:       e.UserID(),
		IngredientID: e.IngredientID(),
		Quantity:     e.Quantity(),
		UpdatedAt:    e.UpdatedAt(),
	}
}

// ModelToPantryEntry converts a GORM model to a domain pantry entry
func ModelToPantryEntry(m *PantryItemModel) *pantry.Entry {
	return pantry.ReconstituteEntry(m.ID, m.UserID, m.IngredientID, m.Quantity, m.UpdatedAt)
}

// DietPlanToModel converts a domain diet plan to a GORM model
func DietPlanToModel(p *dietplan.Plan) *DietPlanModel {
	return &DietPlanModel{
		ID:        p.ID(),
		UserID:    p.UserID(),
		Title:     p.Title(),
		Duration:  string(p.Duration()),
		Content:   p.Content(),
		Status:    string(p.Status()),
		CreatedAt: p.CreatedAt(),
		UpdatedAt: p.UpdatedAt(),
	}
}

// ModelToDietPlan converts a GORM model to a domain diet plan
func ModelToDietPlan(m *DietPlanModel) *dietplan.Plan {
	return dietplan.ReconstitutePlan(
		m.ID,
		m.UserID,
		m.Title,
		dietplan.Duration(m.Duration),
		m.Content,
		dietplan.Status(m.Status),
		m.CreatedAt,
		m.UpdatedAt,
	)
}
