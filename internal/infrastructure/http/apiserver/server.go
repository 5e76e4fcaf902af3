// Package apiserver provides the JSON API HTTP server
package apiserver

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/platewise/platewise/internal/infrastructure/config"
	"github.com/platewise/platewise/internal/infrastructure/http/handlers"
	"github.com/platewise/platewise/internal/infrastructure/http/middleware"
	"github.com/platewise/platewise/internal/ports/inbound"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// APIServer serves the shopping list, pantry and planner JSON API
type APIServer struct {
	config         *config.Config
	logger         *zap.Logger
	server         *http.Server
	router         *chi.Mux
	listService    inbound.ListService
	plannerService inbound.PlannerService
	metrics        *middleware.Metrics
}

// NewAPIServer creates a new API server instance
func NewAPIServer(
	cfg *config.Config,
	log *zap.Logger,
	listService inbound.ListService,
	plannerService inbound.PlannerService,
) *APIServer {
	server := &APIServer{
		config:         cfg,
		logger:         log,
		listService:    listService,
		plannerService: plannerService,
		metrics:        middleware.NewMetrics(prometheus.DefaultRegisterer),
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

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(s.logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Security())
	r.Use(middleware.CORS())
	r.Use(s.metrics.Handler())

	// API-specific middleware
	r.Use(chimiddleware.Timeout(60 * time.Second))
	r.Use(chimiddleware.Compress(5))
	r.Use(middleware.JSONOnly())

	// Operational endpoints
	r.Get("/health", s.handleHealthCheck)
	r.Handle("/metrics", promhttp.Handler())

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		s.setupAPIV1Routes(r)
	})

	return r
}

// setupAPIV1Routes configures API v1 endpoints
func (s *APIServer) setupAPIV1Routes(r chi.Router) {
	listH := handlers.NewListAPIHandlers(s.listService, s.logger)
	plannerH := handlers.NewPlannerAPIHandlers(s.plannerService, s.logger)

	// Every route operates on the authenticated user's own data
	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(s.config.Auth))

		// Active shopping list
		r.Route("/list", func(r chi.Router) {
			r.Get("/", listH.GetList)
			r.Post("/ingredients", listH.AddIngredients)
			r.Post("/meal-plan", listH.AddMealPlan)
			r.Post("/restore", listH.RestoreList)
			r.Patch("/items", listH.ToggleItem)
			r.Post("/finish", listH.FinishShopping)
		})

		// Pantry
		r.Route("/pantry", func(r chi.Router) {
			r.Get("/", listH.GetPantry)
			r.Post("/stock", listH.StockPantry)
			r.Post("/consume", listH.ConsumeRecipe)
		})

		// Saved templates
		r.Route("/saved-lists", func(r chi.Router) {
			r.Get("/", listH.ListSaved)
			r.Post("/", listH.SaveTemplate)
			r.Get("/{id}", listH.GetSaved)
			r.Put("/{id}", listH.UpdateSaved)
			r.Delete("/{id}", listH.DeleteSaved)
		})

		// AI planner
		r.Route("/planner", func(r chi.Router) {
			r.Post("/smart-list", plannerH.GenerateSmartList)
			r.Post("/meal-plan", plannerH.GenerateMealPlan)
		})
	})
}

// Start starts the HTTP server
func (s *APIServer) Start() error {
	s.logger.Info("Starting API server",
		zap.String("address", s.server.Addr),
		zap.String("environment", s.config.App.Environment),
	)

	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the API server
func (s *APIServer) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down API server...")
	return s.server.Shutdown(ctx)
}

// handleHealthCheck provides the health check endpoint
func (s *APIServer) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	fmt.Fprintf(w, `{"status":"healthy","service":"%s","version":"%s","timestamp":%d}`,
		s.config.App.Name, s.config.App.Version, time.Now().Unix())
}
