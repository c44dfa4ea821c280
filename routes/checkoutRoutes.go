package routes

import (
	"github.com/Rovan44/shopfront-api/controllers"
	"github.com/Rovan44/shopfront-api/middlewares"
	"github.com/gin-gonic/gin"
)

func CheckoutRoutes(server *gin.Engine) {
	co := server.Group("/checkout", middlewares.RequireAuth())
	{
		co.GET("/payment-modes", controllers.GetCheckoutPaymentModes)
		co.GET("/transaction-id", controllers.NewTransactionID)
		co.POST("", controllers.SubmitCheckout)
	}
}
