package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/dayotunde25/bsf/docs" // Import generated swagger docs
	appAuth "github.com/dayotunde25/bsf/internal/app/auth"
	appControllers "github.com/dayotunde25/bsf/internal/app/controllers"
	appMigrations "github.com/dayotunde25/bsf/internal/app/migrations"
	appRepos "github.com/dayotunde25/bsf/internal/app/repositories"
	appRoutes "github.com/dayotunde25/bsf/internal/app/routes"
	appServices "github.com/dayotunde25/bsf/internal/app/services"
	"github.com/dayotunde25/bsf/internal/config"
	"github.com/dayotunde25/bsf/internal/db"
	appMiddleware "github.com/dayotunde25/bsf/internal/middleware"
	pkgAuth "github.com/dayotunde25/bsf/internal/pkg/auth"
	"github.com/dayotunde25/bsf/internal/pkg/filestorage"
	"github.com/dayotunde25/bsf/internal/pkg/logger"
	"github.com/dayotunde25/bsf/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService         appServices.AuthService
	UserService         appServices.UserService
	ChatService         appServices.ChatService
	GalleryService      appServices.GalleryService
	ResourceService     appServices.ResourceService
	PrayerService       appServices.PrayerService
	JobService          appServices.JobService
	AnnouncementService appServices.AnnouncementService
	MentorshipService   appServices.MentorshipService
	TimelineService     appServices.TimelineService
	AdminService        appServices.AdminService

	AuthController         *appControllers.AuthController
	UserController         *appControllers.UserController
	ChatController         *appControllers.ChatController
	GalleryController      *appControllers.GalleryController
	ResourceController     *appControllers.ResourceController
	PrayerController       *appControllers.PrayerController
	JobController          *appControllers.JobController
	AnnouncementController *appControllers.AnnouncementController
	MentorshipController   *appControllers.MentorshipController
	TimelineController     *appControllers.TimelineController
	AdminController        *appControllers.AdminController

	AuthMiddleware *appMiddleware.AuthMiddleware
	Repos          *appRepos.Repositories
	JWTService     *pkgAuth.JWTService
	AuthzService   *appAuth.AuthorizationService
	Logger         zerolog.Logger
	FileStorage    *filestorage.LocalStorage
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds the default admin account.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := database.Pool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		database.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database.Pool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		database.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), database, cfg, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database)

	// File storage base URL must match the static file serving path
	baseURL := "http://localhost:" + cfg.Server.Port + "/uploads"
	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath, baseURL)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.AuthzService = appAuth.NewAuthorizationService(deps.Repos.UserRepository)

	accessExp, _ := time.ParseDuration(cfg.JWT.AccessTokenExpiration)
	refreshExp, _ := time.ParseDuration(cfg.JWT.RefreshTokenExpiration)
	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  accessExp,
		RefreshTokenExp: refreshExp,
		TokenIssuer:     cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(deps.Repos.UserRepository, deps.JWTService)
	deps.UserService = appServices.NewUserService(
		deps.Repos.UserRepository,
		deps.Repos.PostRepository,
		deps.Repos.JobRepository,
		deps.Repos.AnnouncementRepository,
	)
	deps.ChatService = appServices.NewChatService(deps.Repos.MessageRepository, deps.Repos.UserRepository)
	deps.GalleryService = appServices.NewGalleryService(deps.Repos.MediaRepository, deps.FileStorage)
	deps.ResourceService = appServices.NewResourceService(deps.Repos.ResourceRepository, deps.FileStorage)
	deps.PrayerService = appServices.NewPrayerService(deps.Repos.PrayerRepository)
	deps.JobService = appServices.NewJobService(deps.Repos.JobRepository)
	deps.AnnouncementService = appServices.NewAnnouncementService(deps.Repos.AnnouncementRepository, deps.AuthzService)
	deps.MentorshipService = appServices.NewMentorshipService(deps.Repos.MentorshipRepository)
	deps.TimelineService = appServices.NewTimelineService(deps.Repos.FellowshipRepository, deps.AuthzService)
	deps.AdminService = appServices.NewAdminService(
		deps.Repos.UserRepository,
		deps.Repos.PostRepository,
		deps.Repos.AuditRepository,
		deps.AuthzService,
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.UserController = appControllers.NewUserController(deps.UserService)
	deps.ChatController = appControllers.NewChatController(deps.ChatService)
	deps.GalleryController = appControllers.NewGalleryController(deps.GalleryService)
	deps.ResourceController = appControllers.NewResourceController(deps.ResourceService, deps.FileStorage)
	deps.PrayerController = appControllers.NewPrayerController(deps.PrayerService)
	deps.JobController = appControllers.NewJobController(deps.JobService)
	deps.AnnouncementController = appControllers.NewAnnouncementController(deps.AnnouncementService)
	deps.MentorshipController = appControllers.NewMentorshipController(deps.MentorshipService)
	deps.TimelineController = appControllers.NewTimelineController(deps.TimelineService)
	deps.AdminController = appControllers.NewAdminController(
		deps.AdminService,
		deps.GalleryService,
		deps.ResourceService,
		deps.PrayerService,
		deps.JobService,
		deps.AuthzService,
	)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()

	// Setup Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	// Setup API routes using the dependencies
	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.UserController,
		deps.ChatController,
		deps.GalleryController,
		deps.ResourceController,
		deps.PrayerController,
		deps.JobController,
		deps.AnnouncementController,
		deps.MentorshipController,
		deps.TimelineController,
		deps.AdminController,
		deps.AuthMiddleware,
	)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
