package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/Rovan44/shopfront-api/gateway"
	"github.com/Rovan44/shopfront-api/initializers"
	"github.com/Rovan44/shopfront-api/models"
	"github.com/gin-gonic/gin"
)

// relayGatewayError forwards the backend's status and message when it
// rejected the call, and answers 502 when the backend was unreachable.
func relayGatewayError(ctx *gin.Context, err error, fallback string) {
	var apiErr *gateway.APIError
	if errors.As(err, &apiErr) {
		sendErrorResponse(ctx, apiErr.StatusCode, apiErr.Message)
		return
	}
	log.Println(fallback+":", err)
	respondWithError(ctx, http.StatusBadGateway, fallback, err)
}

func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid "+name, err)
		return 0, false
	}
	return id, true
}

// Product handlers
func GetProducts(ctx *gin.Context) {
	products, err := initializers.Gateway.GetProducts(ctx.Request.Context())
	if err != nil {
		relayGatewayError(ctx, err, "Unable to fetch products")
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"products": products})
}

func GetProduct(ctx *gin.Context) {
	productId, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	product, err := initializers.Gateway.GetProduct(ctx.Request.Context(), productId)
	if err != nil {
		relayGatewayError(ctx, err, "Unable to retrieve product")
		return
	}
	ctx.JSON(http.StatusOK, product)
}

func CreateProduct(ctx *gin.Context) {
	var input models.ProductInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	product, err := initializers.Gateway.CreateProduct(ctx.Request.Context(), input)
	if err != nil {
		relayGatewayError(ctx, err, "Failed to create product")
		return
	}
	ctx.JSON(http.StatusCreated, product)
}

func UpdateProduct(ctx *gin.Context) {
	productId, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var input models.ProductInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	product, err := initializers.Gateway.UpdateProduct(ctx.Request.Context(), productId, input)
	if err != nil {
		relayGatewayError(ctx, err, "Failed to update product")
		return
	}
	ctx.JSON(http.StatusOK, product)
}

func DeleteProduct(ctx *gin.Context) {
	productId, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := initializers.Gateway.DeleteProduct(ctx.Request.Context(), productId); err != nil {
		relayGatewayError(ctx, err, "Failed to delete product")
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Product deleted successfully."})
}
