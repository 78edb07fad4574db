package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	appControllers "github.com/yigit/academies/internal/app/controllers"
	appMigrations "github.com/yigit/academies/internal/app/migrations"
	appRepos "github.com/yigit/academies/internal/app/repositories"
	appRoutes "github.com/yigit/academies/internal/app/routes"
	appServices "github.com/yigit/academies/internal/app/services"
	"github.com/yigit/academies/internal/config"
	"github.com/yigit/academies/internal/db"
	appMiddleware "github.com/yigit/academies/internal/middleware"
	"github.com/yigit/academies/internal/pkg/logger"
	"github.com/yigit/academies/internal/pkg/metrics"
	"github.com/yigit/academies/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos       *appRepos.Repositories
	Services    *appServices.Services
	Controllers *appControllers.Controllers
	Metrics     *metrics.Metrics
	Logger      zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Str("path", configPath).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	lgr := logger.Configure(logger.ConfigFrom(cfg.Logging.Level, cfg.Logging.Format))
	lgr.Info().Str("logLevel", cfg.Logging.Level).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.Database, error) {
	lgr.Info().Str("driver", cfg.Database.Driver).Msg("Establishing database connection...")
	database, err := db.Open(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	if err := Migrate(context.Background(), database, lgr); err != nil {
		database.Close()
		return nil, err
	}
	return database, nil
}

// Migrate applies the embedded schema to database.
func Migrate(ctx context.Context, database *db.Database, lgr zerolog.Logger) error {
	lgr.Info().Msg("Running database migrations...")
	migrator, err := appMigrations.NewMigrator(database, lgr)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if err := migrator.Migrate(ctx); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")
	return nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.Database, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database, appRepos.DeletePolicy(cfg.Database.OnDelete))
	deps.Services = appServices.NewServices(deps.Repos)
	deps.Controllers = appControllers.NewControllers(deps.Services, database, appRoutes.APIBasePath)

	if cfg.Metrics.Enabled {
		m, err := metrics.Setup(prometheus.NewRegistry())
		if err != nil {
			lgr.Error().Err(err).Msg("Failed to set up metrics")
			return nil, fmt.Errorf("failed to set up metrics: %w", err)
		}
		deps.Metrics = m
	}

	if cfg.Seed.Enabled {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := seed.CreateDefaultData(ctx, deps.Services, lgr); err != nil {
			// Log the error but don't fail the startup
			lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
		}
	}

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery(), appMiddleware.RequestID(), appMiddleware.RequestLogger())

	if deps.Metrics != nil {
		router.Use(deps.Metrics.Middleware())
		router.GET(cfg.Metrics.Path, gin.WrapH(deps.Metrics.Handler()))
	}

	// Setup Swagger
	appRoutes.SetupSwagger(router)

	// Setup API routes using the dependencies
	appRoutes.SetupRouter(router, deps.Controllers)

	return router
}
