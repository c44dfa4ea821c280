package controllers

import (
	"net/http"

	"github.com/Rovan44/shopfront-api/initializers"
	"github.com/Rovan44/shopfront-api/models"
	"github.com/gin-gonic/gin"
)

// Admin payment-mode management, relayed to the backend.

func GetPaymentModes(ctx *gin.Context) {
	modes, err := initializers.Gateway.GetPaymentModes(ctx.Request.Context())
	if err != nil {
		relayGatewayError(ctx, err, "Unable to fetch payment modes")
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"paymentModes": modes})
}

func CreatePaymentMode(ctx *gin.Context) {
	var mode models.PaymentMode
	if err := ctx.ShouldBindJSON(&mode); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	created, err := initializers.Gateway.CreatePaymentMode(ctx.Request.Context(), mode)
	if err != nil {
		relayGatewayError(ctx, err, "Failed to create payment mode")
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

func UpdatePaymentMode(ctx *gin.Context) {
	modeId, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var mode models.PaymentMode
	if err := ctx.ShouldBindJSON(&mode); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	updated, err := initializers.Gateway.UpdatePaymentMode(ctx.Request.Context(), modeId, mode)
	if err != nil {
		relayGatewayError(ctx, err, "Failed to update payment mode")
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

func TogglePaymentMode(ctx *gin.Context) {
	modeId, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := initializers.Gateway.TogglePaymentMode(ctx.Request.Context(), modeId); err != nil {
		relayGatewayError(ctx, err, "Failed to toggle payment mode")
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Payment mode updated successfully."})
}

func DeletePaymentMode(ctx *gin.Context) {
	modeId, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := initializers.Gateway.DeletePaymentMode(ctx.Request.Context(), modeId); err != nil {
		relayGatewayError(ctx, err, "Failed to delete payment mode")
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Payment mode deleted successfully."})
}
