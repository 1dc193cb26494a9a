package app

import (
	"context"
	"fmt"
	"time"

	"devjobs_backend/database"
	"devjobs_backend/internal/cache"
	"devjobs_backend/internal/config"
	"devjobs_backend/internal/email"
	"devjobs_backend/internal/handlers"
	"devjobs_backend/internal/logger"
	"devjobs_backend/internal/middleware"
	"devjobs_backend/internal/repositories"
	"devjobs_backend/internal/routes"
	"devjobs_backend/internal/services"
	"devjobs_backend/internal/sessions"
	"devjobs_backend/internal/storage"
	"devjobs_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := database.Connect(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	logger.Info("Database connected")

	if err := database.Migrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		logger.Fatal("Redis unavailable", "error", err)
	}
	logger.Info("Redis connected", "addr", cfg.Redis.Addr)

	ginRouter := SetupRouter(cfg, gormDB, redisClient)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB, redisClient *redis.Client) *gin.Engine {
	storageInstance, err := storage.NewLocalStorage(storage.Config{
		BasePath: cfg.Storage.BasePath,
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}

	sessionTTL := time.Duration(cfg.Session.TTLHours) * time.Hour

	// Repositories
	userRepo := repositories.NewUserRepository(gormDB)
	vacancyRepo := repositories.NewVacancyRepository(gormDB)

	// Session plumbing
	sessionStore := sessions.NewRedisStore(redisClient)
	authenticator := sessions.NewAuthenticator(userRepo, sessionStore, sessionTTL)
	flashStore := sessions.NewFlashStore(redisClient, sessionTTL)

	// Services
	emailSender := email.NewSMTPSender(cfg)
	listCache := cache.New(redisClient)
	uploadService := services.NewUploadService(storageInstance, cfg.Upload.MaxSize)
	authService := services.NewAuthService(userRepo, authenticator, emailSender)
	userService := services.NewUserService(userRepo, storageInstance)
	vacancyService := services.NewVacancyService(vacancyRepo, listCache)

	// Handlers
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator, flashStore, handlers.CookieConfig{
		Name:   cfg.Session.CookieName,
		MaxAge: int(sessionTTL.Seconds()),
		Secure: cfg.Session.Secure,
	})
	appHandlers := &handlers.AppHandlers{
		Base:           baseHandler,
		AuthHandler:    handlers.NewAuthHandler(baseHandler, authService),
		UserHandler:    handlers.NewUserHandler(baseHandler, userService, uploadService),
		VacancyHandler: handlers.NewVacancyHandler(baseHandler, vacancyService, uploadService),
	}

	ginRouter := initializeGinRouter(authenticator, cfg.Session.CookieName)
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeGinRouter(authenticator *sessions.Authenticator, cookieName string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.SessionMiddleware(authenticator, cookieName))
	return router
}
