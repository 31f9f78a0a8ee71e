package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/yigit/coursehub/internal/app/controllers"
	appMigrations "github.com/yigit/coursehub/internal/app/migrations"
	appRepos "github.com/yigit/coursehub/internal/app/repositories"
	"github.com/yigit/coursehub/internal/app/repositories/memory"
	appRoutes "github.com/yigit/coursehub/internal/app/routes"
	appServices "github.com/yigit/coursehub/internal/app/services"
	"github.com/yigit/coursehub/internal/config"
	"github.com/yigit/coursehub/internal/db"
	appMiddleware "github.com/yigit/coursehub/internal/middleware"
	pkgAuth "github.com/yigit/coursehub/internal/pkg/auth"
	"github.com/yigit/coursehub/internal/pkg/helpers"
	"github.com/yigit/coursehub/internal/pkg/logger"
	"github.com/yigit/coursehub/internal/pkg/validation"
	"github.com/yigit/coursehub/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos          *appRepos.Repositories
	Services       *appServices.Services
	JWTService     *pkgAuth.JWTService
	AuthMiddleware *appMiddleware.AuthMiddleware
	Controllers    *appRoutes.Controllers
	Logger         zerolog.Logger
}

// Store is the opened data layer. Pool is nil for the in-memory driver.
type Store struct {
	Repos *appRepos.Repositories
	Pool  *pgxpool.Pool
}

// Close releases the connection pool, if any
func (s *Store) Close() {
	if s.Pool != nil {
		s.Pool.Close()
	}
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	ConfigureLogger(cfg)

	lgr := log.Logger
	lgr.Info().Str("logLevel", cfg.Logging.Level).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// ConfigureLogger applies the logging section of cfg to the global logger
func ConfigureLogger(cfg *config.Config) {
	logger.Configure(logger.Config{
		Level:  logger.LogLevel(strings.ToLower(cfg.Logging.Level)),
		Pretty: strings.ToLower(cfg.Logging.Format) == "text",
		File: logger.FileConfig{
			Path:       cfg.Logging.File,
			MaxSizeMB:  cfg.Logging.MaxSizeMB,
			MaxBackups: cfg.Logging.MaxBackups,
			MaxAgeDays: cfg.Logging.MaxAgeDays,
		},
	})
}

// SetupDatabase opens the configured store, applies migrations and seeds the default catalog.
func SetupDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*Store, error) {
	store, err := OpenStore(ctx, cfg, lgr)
	if err != nil {
		return nil, err
	}

	if _, err := seed.CreateDefaultCourses(ctx, store.Repos.Courses, lgr); err != nil {
		// Log the error but don't fail the startup
		lgr.Error().Err(err).Msg("Failed to create default courses, proceeding anyway...")
	}

	return store, nil
}

// OpenStore connects to the configured driver and, for PostgreSQL, applies migrations.
func OpenStore(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*Store, error) {
	if cfg.Database.Driver == config.DriverMemory {
		lgr.Warn().Msg("Using in-memory store; data is lost on restart")
		return &Store{Repos: memory.NewRepositories(memory.NewDB())}, nil
	}

	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrateCtx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()
	if err := appMigrations.NewMigrator(database.Pool, lgr).Up(migrateCtx); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	return &Store{
		Repos: appRepos.NewRepositories(database.Pool),
		Pool:  database.Pool,
	}, nil
}

// BuildDependencies initializes services, middleware and controllers over repos.
func BuildDependencies(cfg *config.Config, repos *appRepos.Repositories, lgr zerolog.Logger) (*Dependencies, error) {
	if err := validation.RegisterGinValidators(); err != nil {
		return nil, fmt.Errorf("failed to register validators: %w", err)
	}

	deps := &Dependencies{
		Repos:  repos,
		Logger: lgr,
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 24*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.Services = appServices.NewServices(repos, deps.JWTService, lgr)
	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	recommendations := appControllers.NewRecommendationController(
		deps.Services.Recommender,
		cfg.Recommendations.DefaultLimit,
		cfg.Recommendations.MaxLimit,
	)

	deps.Controllers = &appRoutes.Controllers{
		Auth:            appControllers.NewAuthController(deps.Services.Auth, lgr),
		Courses:         appControllers.NewCourseController(deps.Services.Courses),
		Profiles:        appControllers.NewProfileController(deps.Services.Profiles),
		Bookmarks:       appControllers.NewBookmarkController(deps.Services.Bookmarks),
		Recommendations: recommendations,
	}

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	}

	router := gin.New()
	router.Use(gin.Recovery(), appMiddleware.RequestLogger(lgr), appMiddleware.Metrics())

	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware)

	return router
}

// Handler wraps the router in the CORS and rate limiting middleware.
func Handler(cfg *config.Config, router *gin.Engine) http.Handler {
	return appMiddleware.Edge(appMiddleware.EdgeConfig{
		AllowedOrigins:    cfg.AllowedOrigins(),
		RateLimitRequests: cfg.Server.RateLimitRequests,
		RateLimitWindow:   helpers.ParseDuration(cfg.Server.RateLimitWindow, time.Minute),
	}, router)
}
