// Package apiserver provides the JSON API HTTP server
package apiserver

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kaloria/v1/internal/infrastructure/config"
	"github.com/kaloria/v1/internal/infrastructure/http/handlers"
	"github.com/kaloria/v1/internal/infrastructure/http/middleware"
	"github.com/kaloria/v1/internal/ports/inbound"
	"github.com/kaloria/v1/internal/ports/outbound"
)

// APIServer serves the REST API
type APIServer struct {
	config  *config.Config
	logger  *zap.Logger
	server  *http.Server
	router  *chi.Mux
	tokens  outbound.TokenService
	account inbound.AccountService
	catalog inbound.CatalogService
	pantry  inbound.PantryService
	planner inbound.PlannerService
	coach   inbound.CoachService
}

// NewAPIServer creates a new API server instance
func NewAPIServer(
	cfg *config.Config,
	log *zap.Logger,
	tokens outbound.TokenService,
	accountService inbound.AccountService,
	catalogService inbound.CatalogService,
	pantryService inbound.PantryService,
	plannerService inbound.PlannerService,
	coachService inbound.CoachService,
) *APIServer {
	server := &APIServer{
		config:  cfg,
		logger:  log,
		tokens:  tokens,
		account: accountService,
		catalog: catalogService,
		pantry:  pantryService,
		planner: plannerService,
		coach:   coachService,
	}

	server.router = server.setupRoutes()
	server.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      server.router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return server
}

// setupRoutes configures the JSON API routes
func (s *APIServer) setupRoutes() *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(s.logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Security())
	if s.config.Server.EnableCORS {
		r.Use(middleware.CORS(s.config.Server.AllowedOrigins))
	}
	r.Use(chimiddleware.Timeout(60 * time.Second))
	r.Use(chimiddleware.Compress(5))
	r.Use(middleware.Metrics())
	r.Use(middleware.JSONOnly())

	r.Get("/health", s.handleHealthCheck)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		s.setupAPIV1Routes(r)
	})

	return r
}

// setupAPIV1Routes configures API v1 endpoints
func (s *APIServer) setupAPIV1Routes(r chi.Router) {
	authH := handlers.NewAuthAPIHandlers(s.account, s.logger)
	catalogH := handlers.NewCatalogAPIHandlers(s.catalog, s.logger)
	pantryH := handlers.NewPantryAPIHandlers(s.pantry, s.logger)
	plannerH := handlers.NewPlannerAPIHandlers(s.planner, s.logger)
	coachH := handlers.NewCoachAPIHandlers(s.coach, s.logger)

	authenticated := middleware.Authenticate(s.tokens)

	// Authentication and profile routes
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", authH.Register)
		r.Post("/login", authH.Login)
		r.Post("/refresh", authH.RefreshToken)
		r.Post("/logout", authH.Logout)

		r.Group(func(r chi.Router) {
			r.Use(authenticated)
			r.Get("/profile", authH.GetProfile)
			r.Put("/profile/measurements", authH.UpdateMeasurements)
		})
	})

	// Derived health metrics
	r.Group(func(r chi.Router) {
		r.Use(authenticated)
		r.Get("/health-metrics", authH.HealthMetrics)
	})

	// Admin routes
	r.Route("/users", func(r chi.Router) {
		r.Use(authenticated)
		r.Use(middleware.RequireAdmin())
		r.Get("/", authH.ListUsers)
	})

	// Ingredient catalog routes
	r.Route("/ingredients", func(r chi.Router) {
		r.Get("/", catalogH.ListIngredients)
		r.Get("/{id}", catalogH.GetIngredient)

		r.Group(func(r chi.Router) {
			r.Use(authenticated)
			r.Post("/", catalogH.CreateIngredient)
			r.Delete("/{id}", catalogH.DeleteIngredient)
		})
	})

	// Recipe catalog routes
	r.Route("/recipes", func(r chi.Router) {
		r.Get("/", catalogH.ListRecipes)
		r.Get("/{id}", catalogH.GetRecipe)

		r.Group(func(r chi.Router) {
			r.Use(authenticated)
			r.Post("/", catalogH.CreateRecipe)
			r.Delete("/{id}", catalogH.DeleteRecipe)
		})
	})

	// Pantry routes
	r.Route("/pantry", func(r chi.Router) {
		r.Use(authenticated)
		r.Post("/", pantryH.AddItem)
		r.Get("/", pantryH.ListItems)
		r.Put("/{id}", pantryH.UpdateItem)
		r.Delete("/{id}", pantryH.RemoveItem)
	})

	// Meal plan routes
	r.Group(func(r chi.Router) {
		r.Use(authenticated)
		r.Post("/mealplan", plannerH.GeneratePlan)
	})

	// AI coach routes
	r.Route("/coach", func(r chi.Router) {
		r.Use(authenticated)
		r.Post("/chat", coachH.Chat)
		r.Get("/advice", coachH.Advice)
		r.Post("/analyze-meal", coachH.AnalyzeMeal)
		r.Post("/diet-plans", coachH.GenerateDietPlan)
		r.Get("/diet-plans", coachH.ListDietPlans)
		r.Get("/diet-plans/{id}", coachH.GetDietPlan)
		r.Post("/diet-plans/{id}/archive", coachH.ArchiveDietPlan)
	})
}

// Start starts the API HTTP server
func (s *APIServer) Start() error {
	s.logger.Info("Starting JSON API server",
		zap.String("address", s.server.Addr),
	)
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the API server
func (s *APIServer) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down API server...")
	return s.server.Shutdown(ctx)
}

// handleHealthCheck provides the liveness endpoint
func (s *APIServer) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, `{"status":"healthy","service":"%s","version":"%s","timestamp":%d}`,
		s.config.App.Name, s.config.App.Version, time.Now().Unix())
}
