package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"castlink_backend/internal/auth"
	"castlink_backend/internal/config"
	"castlink_backend/internal/database"
	"castlink_backend/internal/email"
	"castlink_backend/internal/handlers"
	"castlink_backend/internal/logger"
	"castlink_backend/internal/middleware"
	"castlink_backend/internal/repositories"
	"castlink_backend/internal/routes"
	"castlink_backend/internal/services"
	"castlink_backend/internal/storage"
	"castlink_backend/internal/validator"
	"castlink_backend/internal/workers"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Run() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...", "driver", cfg.Database.Driver)
	gormDB, err := database.Connect(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	// Вся схема создаётся на старте: запросы считают таблицы существующими
	if err := database.Migrate(gormDB); err != nil {
		logger.Fatal("Failed to migrate database schema", "error", err)
	}
	if err := database.Seed(gormDB); err != nil {
		logger.Fatal("Failed to seed database", "error", err)
	}

	ginRouter, err := SetupRouter(cfg, gormDB)
	if err != nil {
		logger.Fatal("Failed to set up router", "error", err)
	}

	workerCtx, cancelWorkers := context.WithCancel(context.Background())
	defer cancelWorkers()
	workers.NewSuspensionWorker(gormDB, time.Hour).Start(workerCtx)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("🚀 Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter собирает все зависимости и возвращает готовый *gin.Engine.
// Выделен отдельно, чтобы e2e-тесты могли поднять приложение без сети.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) (*gin.Engine, error) {
	tokens, err := auth.NewTokenManager(cfg.JWT.Secret)
	if err != nil {
		return nil, fmt.Errorf("initialize token manager: %w", err)
	}

	storageInstance, err := storage.NewStorage(storage.Config{
		Type:      cfg.Storage.Type,
		BasePath:  cfg.Storage.BasePath,
		BaseURL:   cfg.Storage.BaseURL,
		Bucket:    cfg.Storage.Bucket,
		Region:    cfg.Storage.Region,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		Endpoint:  cfg.Storage.Endpoint,
	})
	if err != nil {
		return nil, fmt.Errorf("initialize storage: %w", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type)

	emailProvider := buildEmailProvider(cfg)

	serviceContainer := initializeServices(cfg, tokens, storageInstance, emailProvider)
	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter(cfg, gormDB)

	// Локальное хранилище отдаётся тем же процессом: API возвращает URL
	// вида /uploads/<path>, и они должны открываться без внешнего сервера
	if cfg.Storage.Type == "local" {
		mount := cfg.Storage.BaseURL
		if !strings.HasPrefix(mount, "/") {
			mount = "/uploads"
		}
		dir := cfg.Storage.BasePath
		if dir == "" {
			dir = "./uploads"
		}
		ginRouter.Static(mount, dir)
	}

	routes.RegisterRoutes(ginRouter, appHandlers, tokens, serviceContainer.AuthService)

	return ginRouter, nil
}

func initializeServices(
	cfg *config.Config,
	tokens *auth.TokenManager,
	storageInstance storage.Storage,
	emailProvider email.Provider,
) *services.ServiceContainer {
	userRepo := repositories.NewUserRepository()
	productionRepo := repositories.NewProductionRepository()
	ticketRepo := repositories.NewTicketRepository()
	jobPostRepo := repositories.NewJobPostRepository()
	contentRepo := repositories.NewContentRepository()

	return &services.ServiceContainer{
		AuthService:    services.NewAuthService(userRepo, productionRepo, tokens, cfg),
		ProfileService: services.NewProfileService(userRepo),
		TicketService:  services.NewTicketService(ticketRepo, emailProvider),
		JobPostService: services.NewJobPostService(jobPostRepo),
		ContentService: services.NewContentService(contentRepo),
		AdminService:   services.NewAdminService(userRepo),
		UploadService:  services.NewUploadService(storageInstance, userRepo),
		EmailProvider:  emailProvider,
	}
}

func initializeHandlers(container *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		UserHandler: handlers.NewUserHandler(
			baseHandler,
			container.AuthService,
			container.ProfileService,
			container.TicketService,
			container.UploadService,
		),
		ProductionHandler: handlers.NewProductionHandler(
			baseHandler,
			container.AuthService,
			container.JobPostService,
		),
		AdminHandler: handlers.NewAdminHandler(
			baseHandler,
			container.AuthService,
			container.AdminService,
			container.TicketService,
			container.ContentService,
			container.UploadService,
		),
		HomeHandler: handlers.NewHomeHandler(baseHandler, container.ContentService),
	}
}

func initializeGinRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(db))
	return router
}

func buildEmailProvider(cfg *config.Config) email.Provider {
	if !cfg.Email.Enabled {
		logger.Warn("Email sending is disabled, acknowledgements will be dropped")
		return email.NewNoopProvider()
	}

	smtpConfig := email.DefaultConfig()
	smtpConfig.Host = cfg.Email.SMTPHost
	smtpConfig.Port = cfg.Email.SMTPPort
	smtpConfig.Username = cfg.Email.SMTPUsername
	smtpConfig.Password = cfg.Email.SMTPPassword
	smtpConfig.FromEmail = cfg.Email.FromEmail
	smtpConfig.FromName = cfg.Email.FromName
	smtpConfig.Timeout = 30 * time.Second

	return email.NewSMTPProvider(smtpConfig)
}
