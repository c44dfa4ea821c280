package routes

import (
	"github.com/Rovan44/shopfront-api/controllers"
	"github.com/Rovan44/shopfront-api/middlewares"
	"github.com/gin-gonic/gin"
)

func CartRoutes(server *gin.Engine) {
	cart := server.Group("/cart", middlewares.RequireAuth())
	{
		cart.GET("", controllers.GetCart)
		cart.DELETE("", controllers.ClearCart)
		cart.POST("/items", controllers.AddCartItem)
		cart.PATCH("/items/:productId", controllers.UpdateCartItem)
		cart.DELETE("/items/:productId", controllers.RemoveCartItem)
		cart.POST("/buy-now", controllers.BuyNow)
	}
}
