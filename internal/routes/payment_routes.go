package routes

import (
	"workforce_backend/internal/handlers"
	"workforce_backend/internal/middleware"
	"workforce_backend/internal/models"

	"github.com/gin-gonic/gin"
)

// SetupPaymentRoutes регистрирует маршруты банков, способов оплаты и платежей.
func SetupPaymentRoutes(r *gin.RouterGroup, appHandlers *handlers.AppHandlers) {
	bank := r.Group("/bank")
	{
		bank.GET("", appHandlers.Banks.List)
		bank.GET("/search", appHandlers.Banks.Search)
		bank.GET("/:id", appHandlers.Banks.Get)

		bankWrite := bank.Group("")
		bankWrite.Use(middleware.RequireRoles(models.RoleEmployer, models.RoleEmployee))
		{
			bankWrite.POST("", appHandlers.Banks.Create)
			bankWrite.PUT("", appHandlers.Banks.Update)
			bankWrite.DELETE("/:id", appHandlers.Banks.Delete)
		}
	}

	method := r.Group("/payment_method")
	{
		method.GET("", appHandlers.Payments.ListMethods)
		method.GET("/:id", appHandlers.Payments.GetMethod)

		methodWrite := method.Group("")
		methodWrite.Use(middleware.RequireRoles(models.RoleEmployer, models.RoleEmployee))
		{
			methodWrite.POST("", appHandlers.Payments.CreateMethod)
			methodWrite.PUT("", appHandlers.Payments.UpdateMethod)
			methodWrite.DELETE("/:id", appHandlers.Payments.DeleteMethod)
		}
	}

	// Платежи создаёт и правит только работодатель
	payment := r.Group("/payment")
	{
		payment.GET("", appHandlers.Payments.ListPayments)
		payment.GET("/:id", appHandlers.Payments.GetPayment)

		paymentWrite := payment.Group("")
		paymentWrite.Use(middleware.RequireRoles(models.RoleEmployer))
		{
			paymentWrite.POST("", appHandlers.Payments.CreatePayment)
			paymentWrite.PUT("", appHandlers.Payments.UpdatePayment)
			paymentWrite.DELETE("/:id", appHandlers.Payments.DeletePayment)
		}
	}
}
