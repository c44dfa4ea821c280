package controllers

import (
	"errors"
	"net/http"

	"github.com/Rovan44/shopfront-api/initializers"
	"github.com/Rovan44/shopfront-api/middlewares"
	"github.com/Rovan44/shopfront-api/models"
	"github.com/gin-gonic/gin"
)

const msgProductOutOfStock = "This product is out of stock."
const msgStockExceeded = "Not enough items in stock to add more."

// cartResponse serializes a snapshot so handlers never marshal the live
// lines slice.
func cartResponse(cart *models.Cart) gin.H {
	return gin.H{
		"cart":  gin.H{"lines": cart.Snapshot()},
		"total": cart.Total(),
	}
}

func GetCart(ctx *gin.Context) {
	session := middlewares.GetSession(ctx)
	sendJSONResponse(ctx, http.StatusOK, cartResponse(session.Cart))
}

// AddCartItem puts one unit of a product in the session cart. The product's
// current stock is read from the backend at add time.
func AddCartItem(ctx *gin.Context) {
	var body struct {
		ProductID int64 `json:"productId" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	product, err := initializers.Gateway.GetProduct(ctx.Request.Context(), body.ProductID)
	if err != nil {
		relayGatewayError(ctx, err, "Unable to fetch product")
		return
	}

	session := middlewares.GetSession(ctx)
	if err := session.Cart.AddLine(*product); err != nil {
		switch {
		case errors.Is(err, models.ErrOutOfStock):
			sendErrorResponse(ctx, http.StatusConflict, msgProductOutOfStock)
		case errors.Is(err, models.ErrStockExceeded):
			sendErrorResponse(ctx, http.StatusConflict, msgStockExceeded)
		default:
			respondWithError(ctx, http.StatusInternalServerError, "Unable to add product to cart", err)
		}
		return
	}

	response := cartResponse(session.Cart)
	response["message"] = product.Name + " added to cart"
	sendJSONResponse(ctx, http.StatusCreated, response)
}

// UpdateCartItem sets a line's quantity. Zero or less removes the line.
func UpdateCartItem(ctx *gin.Context) {
	productId, ok := parseIDParam(ctx, "productId")
	if !ok {
		return
	}

	var body struct {
		Quantity int `json:"quantity"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	session := middlewares.GetSession(ctx)
	session.Cart.SetQuantity(productId, body.Quantity)
	sendJSONResponse(ctx, http.StatusOK, cartResponse(session.Cart))
}

func RemoveCartItem(ctx *gin.Context) {
	productId, ok := parseIDParam(ctx, "productId")
	if !ok {
		return
	}

	session := middlewares.GetSession(ctx)
	session.Cart.RemoveLine(productId)
	sendJSONResponse(ctx, http.StatusOK, cartResponse(session.Cart))
}

func ClearCart(ctx *gin.Context) {
	session := middlewares.GetSession(ctx)
	session.Cart.Clear()
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Cart cleared."})
}

// BuyNow replaces the cart with a single line of the product so checkout can
// run on it immediately.
func BuyNow(ctx *gin.Context) {
	var body struct {
		ProductID int64 `json:"productId" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	product, err := initializers.Gateway.GetProduct(ctx.Request.Context(), body.ProductID)
	if err != nil {
		relayGatewayError(ctx, err, "Unable to fetch product")
		return
	}
	if !product.InStock() {
		sendErrorResponse(ctx, http.StatusConflict, msgProductOutOfStock)
		return
	}

	session := middlewares.GetSession(ctx)
	session.Cart.Clear()
	if err := session.Cart.AddLine(*product); err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to prepare cart", err)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, cartResponse(session.Cart))
}
