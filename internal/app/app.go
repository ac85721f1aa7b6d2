package app

import (
	"errors"
	"fmt"

	"recruitpro_backend/internal/auth"
	"recruitpro_backend/internal/config"
	"recruitpro_backend/internal/email"
	"recruitpro_backend/internal/handlers"
	"recruitpro_backend/internal/logger"
	"recruitpro_backend/internal/middleware"
	"recruitpro_backend/internal/models"
	"recruitpro_backend/internal/repositories"
	"recruitpro_backend/internal/routes"
	"recruitpro_backend/internal/services"
	"recruitpro_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to GORM", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := Migrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// Migrate keeps the schema in step with the models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Lead{},
		&models.AssignedLead{},
		&models.User{},
		&models.Admin{},
		&models.Client{},
	)
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	serviceContainer := InitializeServices(cfg, gormDB)
	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter()
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func InitializeServices(cfg *config.Config, gormDB *gorm.DB) *services.ServiceContainer {
	var notifier email.Notifier = email.NoopNotifier{}
	if cfg.Email.Enabled {
		smtp, err := email.NewSMTPNotifier(email.Config{
			SMTPHost: cfg.Email.SMTPHost,
			SMTPPort: cfg.Email.SMTPPort,
			Username: cfg.Email.SMTPUsername,
			Password: cfg.Email.SMTPPassword,
			From:     cfg.Email.FromEmail,
			FromName: cfg.Email.FromName,
		})
		if err != nil {
			logger.Fatal("Failed to initialize SMTP notifier", "error", err)
		}
		notifier = smtp
	} else {
		logger.Warn("Email notifications disabled, using no-op notifier")
	}

	userRepo := repositories.NewUserRepository(gormDB)
	leadRepo := repositories.NewLeadRepository(gormDB)
	assignedRepo := repositories.NewAssignedLeadRepository(gormDB)
	clientRepo := repositories.NewClientRepository(gormDB)
	adminRepo := repositories.NewAdminRepository(gormDB)

	return &services.ServiceContainer{
		AuthService:      services.NewAuthService(adminRepo),
		UserService:      services.NewUserService(userRepo, assignedRepo, notifier),
		LeadService:      services.NewLeadService(leadRepo, assignedRepo, userRepo),
		ImportService:    services.NewImportService(leadRepo),
		SearchService:    services.NewSearchService(userRepo, assignedRepo),
		DashboardService: services.NewDashboardService(userRepo, leadRepo, assignedRepo),
		ClientService:    services.NewClientService(clientRepo, assignedRepo),
		EmailNotifier:    notifier,
	}
}

func initializeHandlers(sc *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:   handlers.NewAuthHandler(baseHandler, sc.AuthService),
		UserHandler:   handlers.NewUserHandler(baseHandler, sc.UserService),
		LeadHandler:   handlers.NewLeadHandler(baseHandler, sc.LeadService, sc.ImportService, sc.SearchService, sc.DashboardService),
		AdminHandler:  handlers.NewAdminHandler(baseHandler, sc.AuthService, sc.SearchService),
		ClientHandler: handlers.NewClientHandler(baseHandler, sc.ClientService),
	}
}

func initializeGinRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.CORSMiddleware())
	return router
}

func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminEmail := cfg.FirstAdminEmail
	adminPassword := cfg.FirstAdminPassword

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("FIRST_ADMIN_EMAIL or FIRST_ADMIN_PASSWORD is not set. Skipping admin seeding.")
		return nil
	}

	var admin models.Admin
	result := db.Where("email = ?", adminEmail).First(&admin)
	if result.Error == nil {
		logger.Info("Admin user already exists. Skipping creation.", "email", adminEmail)
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", result.Error)
	}

	logger.Warn("No admin user found with specified email. Creating first admin...", "email", adminEmail)

	hash, err := auth.HashPassword(adminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	newAdmin := &models.Admin{
		Email:        adminEmail,
		PasswordHash: hash,
	}
	if err := db.Create(newAdmin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	logger.Info("Successfully created first admin user", "email", adminEmail)
	return nil
}
