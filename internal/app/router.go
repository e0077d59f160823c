package app

import (
	"fmt"

	"inforreel_backend/internal/auth"
	"inforreel_backend/internal/config"
	"inforreel_backend/internal/email"
	"inforreel_backend/internal/handlers"
	"inforreel_backend/internal/middleware"
	"inforreel_backend/internal/repositories"
	"inforreel_backend/internal/routes"
	"inforreel_backend/internal/services"
	"inforreel_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Dependencies - внешние ресурсы, открытые в Run (или подмененные в тестах)
type Dependencies struct {
	DB       *gorm.DB
	Sessions repositories.SessionRepository
	Sender   email.Sender
	// Проверки для /healthz по имени зависимости
	Checks map[string]handlers.Pinger
}

// SetupRouter собирает сервисы, хэндлеры и маршруты поверх готовых зависимостей
func SetupRouter(cfg *config.Config, deps *Dependencies) (*gin.Engine, error) {
	// 1. Инициализируем сервисы
	serviceContainer, err := initializeServices(cfg, deps)
	if err != nil {
		return nil, err
	}

	// 2. Инициализируем хэндлеры
	appHandlers := initializeHandlers(serviceContainer, deps)

	// 3. Инициализируем Gin
	ginRouter := initializeGinRouter(cfg)

	// 4. Делегируем регистрацию маршрутов пакету 'routes'
	routes.RegisterRoutes(ginRouter, appHandlers, routes.Middlewares{
		Auth:  middleware.AuthMiddleware(serviceContainer.SessionService, serviceContainer.UserService),
		Admin: middleware.APIKeyMiddleware(cfg.Admin.APIKey),
	}, cfg.IsDevelopment())

	return ginRouter, nil
}

func initializeServices(cfg *config.Config, deps *Dependencies) (*services.ServiceContainer, error) {
	tokens, err := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.Issuer)
	if err != nil {
		return nil, fmt.Errorf("token manager: %w", err)
	}

	// --- Инициализация репозиториев ---
	accountRepo := repositories.NewAccountRepository(deps.DB)

	// --- Инициализация сервисов ---
	sessionService := services.NewSessionService(tokens, deps.Sessions, services.SessionTTL{
		Web:    cfg.Sessions.WebTTL,
		Mobile: cfg.Sessions.MobileTTL,
	})
	profileService := services.NewProfileService(accountRepo, validator.New())
	userService := services.NewUserService(accountRepo, sessionService)
	authService := services.NewAuthService(
		accountRepo,
		sessionService,
		profileService,
		auth.NewOTPIssuer(cfg.OTP.BcryptCost),
		deps.Sender,
		services.OTPSettings{
			VerificationTTL: cfg.OTP.VerificationTTL,
			ResetTTL:        cfg.OTP.ResetTTL,
			BcryptCost:      cfg.OTP.BcryptCost,
		},
	)

	return &services.ServiceContainer{
		AuthService:    authService,
		SessionService: sessionService,
		ProfileService: profileService,
		UserService:    userService,
	}, nil
}

func initializeHandlers(services *services.ServiceContainer, deps *Dependencies) *handlers.AppHandlers {
	baseHandler := handlers.NewBaseHandler(validator.New())

	return &handlers.AppHandlers{
		AuthHandler:    handlers.NewAuthHandler(baseHandler, services.AuthService),
		ProfileHandler: handlers.NewProfileHandler(baseHandler, services.ProfileService),
		UserHandler:    handlers.NewUserHandler(baseHandler, services.UserService),
		HealthHandler:  handlers.NewHealthHandler(baseHandler, deps.Checks),
	}
}

func initializeGinRouter(cfg *config.Config) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.CORS.AllowedOrigins))
	return router
}
