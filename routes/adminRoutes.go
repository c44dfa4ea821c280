package routes

import (
	"github.com/Rovan44/shopfront-api/controllers"
	"github.com/Rovan44/shopfront-api/middlewares"
	"github.com/gin-gonic/gin"
)

func AdminRoutes(server *gin.Engine) {
	admin := server.Group("/admin", middlewares.RequireAuth(), middlewares.RequireAdmin())
	{
		admin.POST("/products", controllers.CreateProduct)
		admin.GET("/products", controllers.GetProducts)
		admin.GET("/products/:id", controllers.GetProduct)
		admin.PUT("/products/:id", controllers.UpdateProduct)
		admin.DELETE("/products/:id", controllers.DeleteProduct)

		admin.GET("/payment-modes", controllers.GetPaymentModes)
		admin.POST("/payment-modes", controllers.CreatePaymentMode)
		admin.PUT("/payment-modes/:id", controllers.UpdatePaymentMode)
		admin.PATCH("/payment-modes/:id/toggle-active", controllers.TogglePaymentMode)
		admin.DELETE("/payment-modes/:id", controllers.DeletePaymentMode)

		admin.GET("/payments", controllers.GetPayments)
		admin.GET("/payments/stats", controllers.GetPaymentStats)
		admin.GET("/payments/transaction/:transactionId", controllers.GetPaymentByTransaction)
		admin.GET("/payments/:id", controllers.GetPayment)
		admin.PATCH("/payments/:id/status", controllers.UpdatePaymentStatus)
		admin.DELETE("/payments/:id", controllers.DeletePayment)

		admin.GET("/dashboard", controllers.GetDashboardStats)
	}
}
