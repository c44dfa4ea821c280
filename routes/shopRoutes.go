package routes

import (
	"github.com/Rovan44/shopfront-api/controllers"
	"github.com/Rovan44/shopfront-api/middlewares"
	"github.com/gin-gonic/gin"
)

func ShopRoutes(server *gin.Engine) {
	shop := server.Group("/shop", middlewares.RequireAuth())
	{
		shop.GET("/products", controllers.GetProducts)
		shop.GET("/products/:id", controllers.GetProduct)
		shop.GET("/categories", controllers.GetCategories)
	}
}
