package controllers

import (
	"net/http"

	"github.com/Rovan44/shopfront-api/initializers"
	"github.com/Rovan44/shopfront-api/models"
	"github.com/gin-gonic/gin"
)

// Admin payment records, relayed to the backend.

func GetPayments(ctx *gin.Context) {
	var payments []models.Payment
	var err error

	if status := ctx.Query("status"); status != "" {
		payments, err = initializers.Gateway.GetPaymentsByStatus(ctx.Request.Context(), models.PaymentStatus(status))
	} else {
		payments, err = initializers.Gateway.GetPayments(ctx.Request.Context())
	}
	if err != nil {
		relayGatewayError(ctx, err, "Unable to fetch payments")
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"payments": payments})
}

func GetPayment(ctx *gin.Context) {
	paymentId, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	payment, err := initializers.Gateway.GetPayment(ctx.Request.Context(), paymentId)
	if err != nil {
		relayGatewayError(ctx, err, "Unable to fetch payment")
		return
	}
	ctx.JSON(http.StatusOK, payment)
}

func GetPaymentByTransaction(ctx *gin.Context) {
	transactionId := ctx.Param("transactionId")
	if transactionId == "" {
		sendErrorResponse(ctx, http.StatusBadRequest, "Missing transaction id")
		return
	}

	payment, err := initializers.Gateway.GetPaymentByTransactionID(ctx.Request.Context(), transactionId)
	if err != nil {
		relayGatewayError(ctx, err, "Unable to fetch payment")
		return
	}
	ctx.JSON(http.StatusOK, payment)
}

// GetPaymentStats aggregates the completed total and per-status counts the
// admin console shows next to the payment list.
func GetPaymentStats(ctx *gin.Context) {
	requestCtx := ctx.Request.Context()

	total, err := initializers.Gateway.GetTotalCompletedPayments(requestCtx)
	if err != nil {
		relayGatewayError(ctx, err, "Unable to fetch payment stats")
		return
	}

	counts := gin.H{}
	for _, status := range []models.PaymentStatus{
		models.PaymentPending,
		models.PaymentCompleted,
		models.PaymentFailed,
		models.PaymentRefunded,
	} {
		count, err := initializers.Gateway.GetPaymentCountByStatus(requestCtx, status)
		if err != nil {
			relayGatewayError(ctx, err, "Unable to fetch payment stats")
			return
		}
		counts[string(status)] = count
	}

	ctx.JSON(http.StatusOK, gin.H{
		"totalCompleted": total,
		"countByStatus":  counts,
	})
}

func UpdatePaymentStatus(ctx *gin.Context) {
	paymentId, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var body struct {
		Status models.PaymentStatus `json:"status" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse request body")
		return
	}

	payment, err := initializers.Gateway.UpdatePaymentStatus(ctx.Request.Context(), paymentId, body.Status)
	if err != nil {
		relayGatewayError(ctx, err, "Failed to update payment status")
		return
	}
	ctx.JSON(http.StatusOK, payment)
}

func DeletePayment(ctx *gin.Context) {
	paymentId, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := initializers.Gateway.DeletePayment(ctx.Request.Context(), paymentId); err != nil {
		relayGatewayError(ctx, err, "Failed to delete payment")
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Payment deleted successfully."})
}
