// Package container provides dependency injection using Uber FX
package container

import (
	"context"
	"fmt"
	"net/http"

	"github.com/platewise/platewise/internal/application/list"
	"github.com/platewise/platewise/internal/application/planner"
	"github.com/platewise/platewise/internal/infrastructure/ai/gemini"
	"github.com/platewise/platewise/internal/infrastructure/config"
	"github.com/platewise/platewise/internal/infrastructure/http/apiserver"
	gormRepo "github.com/platewise/platewise/internal/infrastructure/persistence/gorm"
	"github.com/platewise/platewise/internal/infrastructure/persistence/postgres"
	redisRepo "github.com/platewise/platewise/internal/infrastructure/persistence/redis"
	"github.com/platewise/platewise/internal/infrastructure/persistence/sqlite"
	"github.com/platewise/platewise/internal/ports/outbound"
	"github.com/platewise/platewise/pkg/logger"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// Module provides all dependency injection modules
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DatabaseModule,
	RedisModule,
	RepositoryModule,
	AIModule,
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
			Development: cfg.IsDevelopment(),
		})
	},
)

// DatabaseModule provides the GORM database connection. The sqlite
// driver is for local development; everything else goes to postgres.
var DatabaseModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
		if cfg.Database.Driver == "sqlite" {
			logLevel := gormLogger.Silent
			if cfg.App.Debug {
				logLevel = gormLogger.Info
			}

			db, err := sqlite.SetupDatabase(cfg.Database.Database, logLevel)
			if err != nil {
				return nil, fmt.Errorf("failed to setup SQLite database: %w", err)
			}

			log.Info("Connected to SQLite database",
				zap.String("path", cfg.Database.Database))
			return db, nil
		}

		return postgres.Connect(cfg, log)
	},
)

// RedisModule provides the Redis client, cache and notifier
var RedisModule = fx.Provide(
	redisRepo.NewClient,
	redisRepo.NewCacheRepository,
	redisRepo.NewNotifier,
)

// RepositoryModule provides repository implementations
var RepositoryModule = fx.Provide(
	fx.Annotate(
		gormRepo.NewListRepository,
		fx.As(new(outbound.ListRepository)),
	),
	fx.Annotate(
		gormRepo.NewPantryRepository,
		fx.As(new(outbound.PantryRepository)),
	),
	gormRepo.NewSavedListRepository,
)

// AIModule provides the generative-model client
var AIModule = fx.Provide(
	func(lc fx.Lifecycle, cfg *config.Config, log *zap.Logger) (outbound.AIService, error) {
		client, err := gemini.NewClient(context.Background(), cfg, log)
		if err != nil {
			return nil, fmt.Errorf("failed to create AI client: %w", err)
		}

		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return client.Close()
			},
		})

		return client, nil
	},
)

// ServiceModule provides application services
var ServiceModule = fx.Provide(
	list.NewListService,
	planner.NewPlannerService,
)

// HTTPModule provides the HTTP server
var HTTPModule = fx.Provide(
	apiserver.NewAPIServer,
)

// LifecycleModule provides lifecycle hooks
var LifecycleModule = fx.Invoke(
	RegisterLifecycleHooks,
)

// RegisterLifecycleHooks registers application lifecycle hooks
func RegisterLifecycleHooks(
	lc fx.Lifecycle,
	cfg *config.Config,
	log *zap.Logger,
	db *gorm.DB,
	redisClient *goredis.Client,
	server *apiserver.APIServer,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("Starting Platewise application",
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
			log.Info("Shutting down Platewise application")

			if err := server.Shutdown(ctx); err != nil {
				log.Error("Failed to shutdown HTTP server", zap.Error(err))
			}

			if err := redisClient.Close(); err != nil {
				log.Error("Failed to close Redis connection", zap.Error(err))
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
