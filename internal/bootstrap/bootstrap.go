// Package bootstrap wires configuration, storage and the HTTP layer
// together at startup.
package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/peerapat/gradlink/internal/app/controllers"
	"github.com/peerapat/gradlink/internal/app/migrations"
	"github.com/peerapat/gradlink/internal/app/repositories"
	"github.com/peerapat/gradlink/internal/app/routes"
	"github.com/peerapat/gradlink/internal/app/services"
	"github.com/peerapat/gradlink/internal/config"
	"github.com/peerapat/gradlink/internal/db"
	"github.com/peerapat/gradlink/internal/middleware"
	"github.com/peerapat/gradlink/internal/pkg/auth"
	"github.com/peerapat/gradlink/internal/pkg/blobstore"
	"github.com/peerapat/gradlink/internal/pkg/logger"
	"github.com/peerapat/gradlink/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos               *repositories.Repositories
	JWTService          *auth.JWTService
	BlobStore           blobstore.Store
	AuthService         *services.AuthService
	LifecycleService    *services.LifecycleService
	IntakeService       *services.IntakeService
	DirectoryService    *services.DirectoryService
	AuthController      *controllers.AuthController
	AccountController   *controllers.AccountController
	ProfileController   *controllers.ProfileController
	DirectoryController *controllers.DirectoryController
	AuthMiddleware      *middleware.AuthMiddleware
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, err
	}

	logger.Configure(logger.Config{
		Level:  logger.LogLevel(strings.ToLower(cfg.Logging.Level)),
		Pretty: strings.ToLower(cfg.Logging.Format) == "text",
	})

	logger.Info().Str("logLevel", cfg.Logging.Level).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds default data.
func SetupDatabase(cfg *config.Config) (*pgxpool.Pool, error) {
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		logger.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	logger.Info().Msg("Database connection established")

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	migrator := migrations.NewMigrator(database)
	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	logger.Info().Msg("Database migrations applied")

	if err := seed.CreateDefaultData(context.Background(), dbPool); err != nil {
		// Startup continues; seeding is best-effort.
		logger.Error().Err(err).Msg("Failed to seed default data")
	}

	return dbPool, nil
}

// BuildDependencies initializes repositories, services, controllers and
// middleware.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool) (*Dependencies, error) {
	deps := &Dependencies{}

	deps.Repos = repositories.NewRepositories(dbPool)

	tokenExp, err := time.ParseDuration(cfg.JWT.AccessTokenExpiration)
	if err != nil {
		return nil, fmt.Errorf("invalid access token expiration: %w", err)
	}
	deps.JWTService = auth.NewJWTService(auth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: tokenExp,
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.BlobStore, err = newBlobStore(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize blob storage: %w", err)
	}

	deps.AuthService = services.NewAuthService(deps.Repos.AccountRepository, deps.JWTService)
	deps.LifecycleService = services.NewLifecycleService(
		deps.Repos.AccountRepository,
		deps.Repos.StudentProfileRepository,
		deps.Repos.GraduateProfileRepository,
	)
	deps.IntakeService = services.NewIntakeService(
		deps.Repos.AccountRepository,
		deps.Repos.StudentProfileRepository,
		deps.Repos.GraduateProfileRepository,
		deps.BlobStore,
	)
	deps.DirectoryService = services.NewDirectoryService(
		deps.Repos.StudentProfileRepository,
		deps.Repos.GraduateProfileRepository,
	)

	deps.AuthController = controllers.NewAuthController(deps.AuthService)
	deps.AccountController = controllers.NewAccountController(deps.LifecycleService, deps.IntakeService)
	deps.ProfileController = controllers.NewProfileController(deps.IntakeService)
	deps.DirectoryController = controllers.NewDirectoryController(deps.DirectoryService)
	deps.AuthMiddleware = middleware.NewAuthMiddleware(deps.JWTService)

	return deps, nil
}

// newBlobStore picks the blob backend from configuration. Local disk is the
// development default; Azure Blob Storage serves deployments.
func newBlobStore(cfg *config.Config) (blobstore.Store, error) {
	switch cfg.Storage.Driver {
	case "azure":
		return blobstore.NewAzureStore(cfg.Storage.ContainerURL, cfg.Storage.SASToken), nil
	default:
		baseURL := "http://localhost:" + cfg.Server.Port + "/uploads"
		return blobstore.NewLocalStore(cfg.Storage.Path, baseURL)
	}
}

// SetupRouter builds the gin engine with middleware and all routes.
func SetupRouter(cfg *config.Config, deps *Dependencies) *gin.Engine {
	if cfg.Server.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS(cfg.CORS.AllowedOrigin))
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.Metrics())

	routes.SetupRouter(
		router,
		deps.AuthController,
		deps.AccountController,
		deps.ProfileController,
		deps.DirectoryController,
		deps.AuthMiddleware,
	)

	// Locally stored profile images are served straight from disk.
	if cfg.Storage.Driver != "azure" {
		if err := os.MkdirAll(cfg.Storage.Path, os.ModePerm); err == nil {
			router.Static("/uploads", cfg.Storage.Path)
		} else {
			logger.Error().Err(err).Str("path", cfg.Storage.Path).Msg("Failed to create uploads directory")
		}
	}

	return router
}
