package routes

import (
	"workforce_backend/internal/handlers"
	"workforce_backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupLookupRoutes регистрирует маршруты справочников.
// Чтение доступно всем авторизованным, запись только суперпользователю.
func SetupLookupRoutes(r *gin.RouterGroup, appHandlers *handlers.AppHandlers) {
	registerLookup(r, "/role", appHandlers.Roles)
	registerLookup(r, "/status_type", appHandlers.StatusTypes)
	registerLookup(r, "/employer_type", appHandlers.EmployerTypes)
	registerLookup(r, "/account_type", appHandlers.AccountTypes)
	registerLookup(r, "/payment_status", appHandlers.PaymentStatuses)
}

func registerLookup[T any](r *gin.RouterGroup, path string, h *handlers.LookupHandler[T]) {
	group := r.Group(path)
	{
		group.GET("", h.List)
		group.GET("/search", h.Search) // до "/:id", иначе gin перехватит
		group.GET("/:id", h.Get)

		superuserOnly := group.Group("")
		superuserOnly.Use(middleware.RequireRoles())
		{
			superuserOnly.POST("", h.Create)
			superuserOnly.PUT("", h.Update)
			superuserOnly.DELETE("/:id", h.Delete)
		}
	}
}
