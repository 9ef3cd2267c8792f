package app

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"workforce_backend/database"
	"workforce_backend/internal/auth"
	"workforce_backend/internal/config"
	"workforce_backend/internal/handlers"
	"workforce_backend/internal/logger"
	"workforce_backend/internal/middleware"
	"workforce_backend/internal/routes"
	"workforce_backend/internal/services"
	"workforce_backend/internal/validator"
)

func Run() {
	// .env опционален, в контейнере конфигурация приходит из окружения
	_ = godotenv.Load()

	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := database.ConnectGorm()
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

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}
	if err := database.Seed(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed database", "error", err)
	}
	if err := database.LoadLookupCSV(gormDB, cfg.Seed.CSVDir); err != nil {
		logger.Fatal("Failed to load lookup CSV", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("🚀 Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter собирает контейнер сервисов и возвращает готовый *gin.Engine.
// Вынесено отдельно, чтобы тесты могли поднять роутер поверх своей БД.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	issuer := auth.NewTokenIssuer(cfg.JWT.Secret, cfg.JWT.TTL)

	serviceContainer := services.NewServiceContainer(gormDB, issuer)
	appHandlers := handlers.NewAppHandlers(serviceContainer, validator.New())

	ginRouter := initializeGinRouter()
	routes.RegisterRoutes(ginRouter, appHandlers, serviceContainer.Auth)

	return ginRouter
}

func initializeGinRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logging())
	return router
}
