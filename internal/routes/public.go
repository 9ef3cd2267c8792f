package routes

import (
	"net/http"

	"workforce_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

func SetupPublicRoutes(r *gin.RouterGroup, appHandlers *handlers.AppHandlers) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.POST("/auth/login", appHandlers.Auth.Login) // логин

	// Регистрация работодателя вместе с аккаунтом, без авторизации
	r.POST("/employer", appHandlers.Employers.Create)
}

func SetupAuthRoutes(r *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	r.GET("/auth/logout", authHandler.Logout) // отозвать сессию
}
