// Package persistence provides database setup and seeding
package persistence

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/kaloria/v1/internal/domain/nutrition"
	"github.com/kaloria/v1/internal/infrastructure/config"
	gormModels "github.com/kaloria/v1/internal/infrastructure/persistence/gorm"
)

// SetupDatabase opens the configured database and runs migrations
func SetupDatabase(cfg *config.Config) (*gorm.DB, error) {
	logLevel := gormlogger.Warn
	if cfg.App.Debug {
		logLevel = gormlogger.Info
	}
	gormConfig := &gorm.Config{
		Logger: gormlogger.Default.LogMode(logLevel),
	}

	var (
		db  *gorm.DB
		err error
	)
	switch cfg.Database.Driver {
	case "postgres":
		db, err = gorm.Open(postgres.Open(cfg.GetDSN()), gormConfig)
	default:
		dbPath := cfg.Database.Database
		if dbPath == "" {
			dbPath = ":memory:"
		}
		db, err = gorm.Open(sqlite.Open(dbPath), gormConfig)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access connection pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	if cfg.Database.AutoMigrate {
		if err := Migrate(db); err != nil {
			return nil, err
		}
	}
	if cfg.Database.SeedData {
		if err := SeedDatabase(db); err != nil {
			return nil, fmt.Errorf("failed to seed database: %w", err)
		}
	}

	return db, nil
}

// Migrate runs auto-migration for all models
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&gormModels.UserModel{},
		&gormModels.IngredientModel{},
		&gormModels.RecipeModel{},
		&gormModels.RecipeIngredientModel{},
		&gormModels.PantryItemModel{},
		&gormModels.DietPlanModel{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

// SeedDatabase populates the catalog with demo ingredients and recipes
func SeedDatabase(db *gorm.DB) error {
	var recipeCount int64
	db.Model(&gormModels.RecipeModel{}).Count(&recipeCount)
	if recipeCount > 0 {
		return nil // Already seeded
	}

	gofakeit.Seed(42)

	units := []string{"g", "ml", "piece", "tbsp", "cup"}
	ingredients := make([]gormModels.IngredientModel, 0, 40)
	seen := map[string]bool{}
	for len(ingredients) < 40 {
		name := gofakeit.Vegetable()
		if gofakeit.Bool() {
			name = gofakeit.Fruit()
		}
		if seen[name] {
			continue
		}
		seen[name] = true
		ingredients = append(ingredients, gormModels.IngredientModel{
			Name:        name,
			Unit:        units[gofakeit.Number(0, len(units)-1)],
			KcalPerUnit: gofakeit.Float64Range(0.2, 9),
			CreatedAt:   time.Now(),
		})
	}
	if err := db.Create(&ingredients).Error; err != nil {
		return err
	}

	// Calorie ranges roughly matching each meal's share of a 1500-2500
	// kcal daily target, so seeded plans always find candidates.
	ranges := map[nutrition.MealType][2]float64{
		nutrition.MealBreakfast: {300, 650},
		nutrition.MealLunch:     {450, 900},
		nutrition.MealDinner:    {400, 800},
		nutrition.MealSnack:     {120, 260},
	}

	for _, mt := range nutrition.MealTypes() {
		r := ranges[mt]
		for i := 0; i < 12; i++ {
			kcal := gofakeit.Float64Range(r[0], r[1])
			recipe := gormModels.RecipeModel{
				Name:        mealName(mt),
				MealType:    string(mt),
				Kcal:        kcal,
				ProteinG:    gofakeit.Float64Range(5, 45),
				CarbsG:      gofakeit.Float64Range(10, 90),
				FatG:        gofakeit.Float64Range(2, 40),
				Description: gofakeit.Sentence(8),
				CreatedAt:   time.Now(),
			}
			if err := db.Create(&recipe).Error; err != nil {
				return err
			}

			lines := gofakeit.Number(2, 5)
			for j := 0; j < lines; j++ {
				line := gormModels.RecipeIngredientModel{
					RecipeID:     recipe.ID,
					IngredientID: ingredients[gofakeit.Number(0, len(ingredients)-1)].ID,
					Quantity:     gofakeit.Float64Range(10, 400),
				}
				// Duplicate ingredient picks within one recipe are skipped.
				if err := db.Where("recipe_id = ? AND ingredient_id = ?", line.RecipeID, line.IngredientID).
					FirstOrCreate(&line).Error; err != nil {
					return err
				}
			}
		}
	}

	return nil
}

func mealName(mt nutrition.MealType) string {
	switch mt {
	case nutrition.MealBreakfast:
		return gofakeit.Breakfast()
	case nutrition.MealLunch:
		return gofakeit.Lunch()
	case nutrition.MealDinner:
		return gofakeit.Dinner()
	default:
		return gofakeit.Snack()
	}
}
