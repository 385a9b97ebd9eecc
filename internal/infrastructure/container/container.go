// Package container provides dependency injection using Uber FX
package container

import (
	"context"
	"net/http"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	accountapp "github.com/kaloria/v1/internal/application/account"
	catalogapp "github.com/kaloria/v1/internal/application/catalog"
	coachapp "github.com/kaloria/v1/internal/application/coach"
	pantryapp "github.com/kaloria/v1/internal/application/pantry"
	plannerapp "github.com/kaloria/v1/internal/application/planner"
	"github.com/kaloria/v1/internal/infrastructure/ai/gemini"
	"github.com/kaloria/v1/internal/infrastructure/cache"
	"github.com/kaloria/v1/internal/infrastructure/config"
	"github.com/kaloria/v1/internal/infrastructure/http/apiserver"
	"github.com/kaloria/v1/internal/infrastructure/persistence"
	gormRepo "github.com/kaloria/v1/internal/infrastructure/persistence/gorm"
	"github.com/kaloria/v1/internal/infrastructure/persistence/memory"
	"github.com/kaloria/v1/internal/infrastructure/security"
	"github.com/kaloria/v1/internal/ports/inbound"
	"github.com/kaloria/v1/internal/ports/outbound"
	"github.com/kaloria/v1/pkg/logger"
)

// Module provides all dependency injection modules
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DatabaseModule,
	CacheModule,
	RepositoryModule,
	ServiceModule,
	HTTPModule,
	LifecycleModule,
)

// ConfigModule provides configuration
var ConfigModule = fx.Provide(
	func() (*config.Config, error) {
		return config.Load("")
	},
)

// LoggerModule provides logging
var LoggerModule = fx.Provide(
	func(cfg *config.Config) (*zap.Logger, error) {
		return logger.New(logger.Config{
			Level:       cfg.App.LogLevel,
			Format:      cfg.App.LogFormat,
			Development: cfg.App.Debug,
		})
	},
)

// DatabaseModule provides the database connection
var DatabaseModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
		db, err := persistence.SetupDatabase(cfg)
		if err != nil {
			return nil, err
		}
		log.Info("Connected to database",
			zap.String("driver", cfg.Database.Driver),
			zap.String("database", cfg.Database.Database),
		)
		return db, nil
	},
)

// CacheModule provides caching, Redis when enabled, in-memory otherwise
var CacheModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger) outbound.CacheRepository {
		if cfg.Redis.Enabled {
			client, err := cache.NewRedisClient(context.Background(), cfg)
			if err == nil {
				log.Info("Using Redis cache", zap.String("addr", cfg.RedisAddr()))
				return cache.NewRedisRepository(client, log)
			}
			log.Warn("Redis unavailable, falling back to in-memory cache", zap.Error(err))
		}
		return memory.NewCacheRepository()
	},
)

// RepositoryModule provides repository implementations
var RepositoryModule = fx.Provide(
	gormRepo.NewUserRepository,
	gormRepo.NewIngredientRepository,
	gormRepo.NewRecipeRepository,
	gormRepo.NewPantryRepository,
	gormRepo.NewDietPlanRepository,
)

// ServiceModule provides application services
var ServiceModule = fx.Provide(
	fx.Annotate(
		security.NewAuthService,
		fx.As(new(outbound.TokenService)),
	),
	fx.Annotate(
		gemini.NewClient,
		fx.As(new(outbound.TextCompleter)),
	),
	fx.Annotate(
		accountapp.NewService,
		fx.As(new(inbound.AccountService)),
	),
	fx.Annotate(
		catalogapp.NewService,
		fx.As(new(inbound.CatalogService)),
	),
	fx.Annotate(
		pantryapp.NewService,
		fx.As(new(inbound.PantryService)),
	),
	fx.Annotate(
		plannerapp.NewService,
		fx.As(new(inbound.PlannerService)),
	),
	fx.Annotate(
		coachapp.NewService,
		fx.As(new(inbound.CoachService)),
	),
)

// HTTPModule provides the API server
var HTTPModule = fx.Provide(
	apiserver.NewAPIServer,
)

// LifecycleModule registers lifecycle hooks
var LifecycleModule = fx.Invoke(
	RegisterLifecycleHooks,
)

// RegisterLifecycleHooks registers application lifecycle hooks
func RegisterLifecycleHooks(
	lc fx.Lifecycle,
	cfg *config.Config,
	log *zap.Logger,
	db *gorm.DB,
	server *apiserver.APIServer,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("Starting Kaloria application",
				zap.String("version", cfg.App.Version),
				zap.String("environment", cfg.App.Environment),
			)

			go func() {
				if err := server.Start(); err != nil && err != http.ErrServerClosed {
					log.Fatal("Failed to start HTTP server", zap.Error(err))
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down Kaloria application")

			if err := server.Shutdown(ctx); err != nil {
				log.Error("Failed to shutdown HTTP server", zap.Error(err))
			}

			sqlDB, err := db.DB()
			if err == nil {
				if err := sqlDB.Close(); err != nil {
					log.Error("Failed to close database connection", zap.Error(err))
				}
			}

			_ = log.Sync()

			return nil
		},
	})
}
