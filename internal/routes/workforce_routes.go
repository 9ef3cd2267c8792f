package routes

import (
	"workforce_backend/internal/handlers"
	"workforce_backend/internal/middleware"
	"workforce_backend/internal/models"

	"github.com/gin-gonic/gin"
)

// SetupWorkforceRoutes регистрирует маршруты работодателей и сотрудников.
// POST /employer публичный и регистрируется в public.go.
func SetupWorkforceRoutes(r *gin.RouterGroup, appHandlers *handlers.AppHandlers) {
	employer := r.Group("/employer")
	{
		employer.GET("", appHandlers.Employers.List)
		employer.GET("/search", appHandlers.Employers.Search)
		employer.GET("/:id", appHandlers.Employers.Get)

		employerWrite := employer.Group("")
		employerWrite.Use(middleware.RequireRoles(models.RoleEmployer))
		{
			employerWrite.PUT("", appHandlers.Employers.Update)
			employerWrite.DELETE("/:id", appHandlers.Employers.Delete)
		}
	}

	// Сотрудников заводит и ведёт работодатель
	employee := r.Group("/employee")
	{
		employee.GET("", appHandlers.Employees.List)
		employee.GET("/search", appHandlers.Employees.Search)
		employee.GET("/:id", appHandlers.Employees.Get)

		employeeWrite := employee.Group("")
		employeeWrite.Use(middleware.RequireRoles(models.RoleEmployer))
		{
			employeeWrite.POST("", appHandlers.Employees.Create)
			employeeWrite.PUT("", appHandlers.Employees.Update)
			employeeWrite.DELETE("/:id", appHandlers.Employees.Delete)
		}
	}
}
