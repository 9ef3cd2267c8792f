package routes

import (
	"workforce_backend/internal/handlers"
	"workforce_backend/internal/middleware"
	"workforce_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все HTTP маршруты.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	authService services.AuthService,
) {
	api := ginRouter.Group("/api/v1")

	// Публичные маршруты: health, логин и регистрация работодателя
	SetupPublicRoutes(api, appHandlers)

	// Всё остальное только для авторизованных
	authed := api.Group("")
	authed.Use(middleware.AuthMiddleware(authService))
	{
		SetupAuthRoutes(authed, appHandlers.Auth)
		SetupLookupRoutes(authed, appHandlers)
		SetupWorkforceRoutes(authed, appHandlers)
		SetupPaymentRoutes(authed, appHandlers)
	}
}
