package routes

import (
	"inforreel_backend/internal/handlers"
	"inforreel_backend/internal/logger"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Middlewares - защитные middleware, собранные в app
type Middlewares struct {
	Auth  gin.HandlerFunc
	Admin gin.HandlerFunc
}

// RegisterRoutes регистрирует все HTTP маршруты.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	mw Middlewares,
	swagger bool,
) {
	appHandlers.HealthHandler.RegisterRoutes(ginRouter)

	api := ginRouter.Group("/api")
	{
		appHandlers.AuthHandler.RegisterRoutes(api)
		appHandlers.ProfileHandler.RegisterRoutes(api, mw.Auth)
		appHandlers.UserHandler.RegisterRoutes(api, mw.Admin)
	}

	if swagger {
		ginRouter.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
		logger.Info("Swagger UI route /swagger/index.html registered")
	}
}
