// Package gorm provides GORM model definitions for the application
package gorm

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel represents the GORM model for users
type UserModel struct {
	ID           uuid.UUID `gorm:"type:char(36);primaryKey"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name         string    `gorm:"type:varchar(255);not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	IsActive     bool      `gorm:"default:true"`
	IsAdmin      bool      `gorm:"default:false"`

	// Body measurements
	HeightCm       float64  `gorm:"not null"`
	WeightKg       float64  `gorm:"not null"`
	Gender         string   `gorm:"type:varchar(10);not null"`
	Age            int      `gorm:"not null"`
	ActivityLevel  string   `gorm:"type:varchar(20);default:'sedentary'"`
	WaistCm        float64  `gorm:"not null"`
	NeckCm         float64  `gorm:"not null"`
	HipCm          *float64
	TargetWeightKg *float64

	CreatedAt   time.Time
	UpdatedAt   time.Time
	LastLoginAt *time.Time

	// Relationships
	PantryItems []PantryItemModel `gorm:"foreignKey:UserID"`
	DietPlans   []DietPlanModel   `gorm:"foreignKey:UserID"`
}

// TableName overrides the table name
func (UserModel) TableName() string {
	return "users"
}

// IngredientModel represents the GORM model for catalog ingredients
type IngredientModel struct {
	ID          uuid.UUID `gorm:"type:char(36);primaryKey"`
	Name        string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	Unit        string    `gorm:"type:varchar(20);not null"`
	KcalPerUnit float64   `gorm:"default:0"`
	CreatedAt   time.Time
}

// TableName overrides the table name
func (IngredientModel) TableName() string {
	return "ingredients"
}

// RecipeModel represents the GORM model for recipes
type RecipeModel struct {
	ID           uuid.UUID `gorm:"type:char(36);primaryKey"`
	Name         string    `gorm:"type:varchar(200);not null;index"`
	MealType     string    `gorm:"type:varchar(20);not null;index"`
	Kcal         float64   `gorm:"not null;index"`
	ProteinG     float64   `gorm:"default:0"`
	CarbsG       float64   `gorm:"default:0"`
	FatG         float64   `gorm:"default:0"`
	Description  string    `gorm:"type:text"`
	Instructions string    `gorm:"type:text"`
	CreatedAt    time.Time `gorm:"index"`

	// Relationships
	Ingredients []RecipeIngredientModel `gorm:"foreignKey:RecipeID"`
}

// TableName overrides the table name
func (RecipeModel) TableName() string {
	return "recipes"
}

// RecipeIngredientModel links recipes to catalog ingredients
type RecipeIngredientModel struct {
	RecipeID     uuid.UUID `gorm:"type:char(36);primaryKey"`
	IngredientID uuid.UUID `gorm:"type:char(36);primaryKey;index"`
	Quantity     float64   `gorm:"not null"`

	// Relationships
	Ingredient IngredientModel `gorm:"foreignKey:IngredientID"`
}

// TableName overrides the table name
func (RecipeIngredientModel) TableName() string {
	return "recipe_ingredients"
}

// PantryItemModel represents the GORM model for pantry stock
type PantryItemModel struct {
	ID           uuid.UUID `gorm:"type:char(36);primaryKey"`
	UserID       uuid.UUID `gorm:"type:char(36);not null;uniqueIndex:idx_pantry_user_ingredient"`
	IngredientID uuid.UUID `gorm:"type:char(36);not null;uniqueIndex:idx_pantry_user_ingredient"`
	Quantity     float64   `gorm:"not null"`
	UpdatedAt    time.Time

	// Relationships
	Ingredient IngredientModel `gorm:"foreignKey:IngredientID"`
}

// TableName overrides the table name
func (PantryItemModel) TableName() string {
	return "pantry_items"
}

// DietPlanModel represents the GORM model for stored AI diet plans
type DietPlanModel struct {
	ID        uuid.UUID `gorm:"type:char(36);primaryKey"`
	UserID    uuid.UUID `gorm:"type:char(36);not null;index"`
	Title     string    `gorm:"type:varchar(200);not null"`
	Duration  string    `gorm:"type:varchar(10);not null"`
	Content   string    `gorm:"type:text;not null"`
	Status    string    `gorm:"type:varchar(10);default:'active';index"`
	Metadata  JSONField `gorm:"type:json"`
	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}

// TableName overrides the table name
func (DietPlanModel) TableName() string {
	return "diet_plans"
}

// JSONField custom type for handling JSON fields
type JSONField map[string]interface{}

// Scan implements the sql.Scanner interface
func (j *JSONField) Scan(value interface{}) error {
	if value == nil {
		*j = JSONField{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, j)
	case string:
		return json.Unmarshal([]byte(v), j)
	default:
		return fmt.Errorf("cannot scan %T into JSONField", value)
	}
}

// Value implements the driver.Valuer interface
func (j JSONField) Value() (driver.Value, error) {
	if len(j) == 0 {
		return "{}", nil
	}
	return json.Marshal(j)
}

// BeforeCreate hook for UserModel
func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// BeforeCreate hook for IngredientModel
func (i *IngredientModel) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// BeforeCreate hook for RecipeModel
func (r *RecipeModel) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// BeforeCreate hook for PantryItemModel
func (p *PantryItemModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// BeforeCreate hook for DietPlanModel
func (d *DietPlanModel) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}
