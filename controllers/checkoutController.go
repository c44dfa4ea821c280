package controllers

import (
	"errors"
	"net/http"

	"github.com/Rovan44/shopfront-api/checkout"
	"github.com/Rovan44/shopfront-api/initializers"
	"github.com/Rovan44/shopfront-api/middlewares"
	"github.com/Rovan44/shopfront-api/models"
	"github.com/Rovan44/shopfront-api/utils"
	"github.com/gin-gonic/gin"
)

const (
	msgEmptyCart          = "Your cart is empty."
	msgNoModeSelected     = "Please select a payment mode."
	msgModeNotAvailable   = "Selected payment mode is not available."
	msgCheckoutInProgress = "A checkout is already in progress for this session."
	msgPaymentFailed      = "Payment failed. Please try again."
	msgCheckoutSuccess    = "Payment recorded successfully."
)

// GetCheckoutPaymentModes lists the modes offered on the checkout page.
func GetCheckoutPaymentModes(ctx *gin.Context) {
	modes, err := initializers.Gateway.GetActivePaymentModes(ctx.Request.Context())
	if err != nil {
		relayGatewayError(ctx, err, "Failed to load payment modes")
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"paymentModes": modes})
}

// NewTransactionID hands out a placeholder transaction id for the simulated
// online payment modes; the client fills it into the checkout form.
func NewTransactionID(ctx *gin.Context) {
	sendJSONResponse(ctx, http.StatusOK, gin.H{"transactionId": utils.GenerateTransactionID()})
}

// SubmitCheckout runs the checkout orchestrator on the session cart. The
// cart is cleared only when the attempt succeeds.
func SubmitCheckout(ctx *gin.Context) {
	var body struct {
		PaymentModeID   *int64 `json:"paymentModeId"`
		TransactionID   string `json:"transactionId"`
		DeliveryAddress string `json:"deliveryAddress"`
		Remarks         string `json:"remarks"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	var mode *models.PaymentMode
	if body.PaymentModeID != nil {
		modes, err := initializers.Gateway.GetActivePaymentModes(ctx.Request.Context())
		if err != nil {
			relayGatewayError(ctx, err, "Failed to load payment modes")
			return
		}
		for i := range modes {
			if modes[i].ID == *body.PaymentModeID {
				mode = &modes[i]
				break
			}
		}
		if mode == nil {
			sendErrorResponse(ctx, http.StatusBadRequest, msgModeNotAvailable)
			return
		}
	}

	session := middlewares.GetSession(ctx)
	if !session.BeginCheckout() {
		sendErrorResponse(ctx, http.StatusConflict, msgCheckoutInProgress)
		return
	}
	defer session.EndCheckout()

	result, err := initializers.Checkout.Submit(ctx.Request.Context(), session.Cart, checkout.Input{
		Mode:            mode,
		TransactionID:   body.TransactionID,
		DeliveryAddress: body.DeliveryAddress,
		Remarks:         body.Remarks,
	})
	if err != nil {
		respondToCheckoutFailure(ctx, err)
		return
	}

	session.Cart.Clear()

	response := gin.H{
		"message": msgCheckoutSuccess,
		"payment": result.Payment,
	}
	if result.Warning != nil {
		response["stockSyncWarning"] = result.Warning
	}
	sendJSONResponse(ctx, http.StatusOK, response)
}

func respondToCheckoutFailure(ctx *gin.Context, err error) {
	var validationErr *checkout.ValidationError
	var paymentErr *checkout.PaymentCreationError

	switch {
	case errors.Is(err, checkout.ErrEmptyCart):
		sendErrorResponse(ctx, http.StatusBadRequest, msgEmptyCart)
	case errors.Is(err, checkout.ErrNoModeSelected):
		sendErrorResponse(ctx, http.StatusBadRequest, msgNoModeSelected)
	case errors.As(err, &validationErr):
		sendErrorResponse(ctx, http.StatusBadRequest, validationErr.Error())
	case errors.As(err, &paymentErr):
		respondWithError(ctx, http.StatusBadGateway, msgPaymentFailed, paymentErr.Err)
	default:
		respondWithError(ctx, http.StatusInternalServerError, msgPaymentFailed, err)
	}
}
