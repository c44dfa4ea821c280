package controllers

import (
	"net/http"

	"github.com/Rovan44/shopfront-api/initializers"
	"github.com/gin-gonic/gin"
)

func GetCategories(ctx *gin.Context) {
	categories, err := initializers.Gateway.GetCategories(ctx.Request.Context())
	if err != nil {
		relayGatewayError(ctx, err, "Unable to fetch categories")
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"categories": categories})
}
