package routes

import (
	"github.com/Rovan44/shopfront-api/controllers"
	"github.com/Rovan44/shopfront-api/middlewares"
	"github.com/gin-gonic/gin"
)

func AuthRoutes(server *gin.Engine) {
	auth := server.Group("/auth")
	{
		auth.POST("/login", controllers.Login)
		auth.POST("/logout", middlewares.RequireAuth(), controllers.Logout)
	}
}
