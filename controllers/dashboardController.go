package controllers

import (
	"net/http"

	"github.com/Rovan44/shopfront-api/initializers"
	"github.com/gin-gonic/gin"
)

func GetDashboardStats(ctx *gin.Context) {
	stats, err := initializers.Gateway.GetDashboardStats(ctx.Request.Context())
	if err != nil {
		relayGatewayError(ctx, err, "Unable to fetch dashboard stats")
		return
	}
	ctx.JSON(http.StatusOK, stats)
}
