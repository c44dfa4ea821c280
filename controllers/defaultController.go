package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to the Shopfront API. Enjoy seamless interaction with this API.

The following are the endpoints for this API:

AUTH
- POST "/auth/login" - Open a shopping session
- POST "/auth/logout" - End the session and drop the cart

SHOP
- GET "/shop/products" - List products
- GET "/shop/products/:id" - Get product by ID
- GET "/shop/categories" - List categories

CART
- GET "/cart" - View the session cart
- POST "/cart/items" - Add a product to the cart
- PATCH "/cart/items/:productId" - Change a line's quantity
- DELETE "/cart/items/:productId" - Remove a line
- DELETE "/cart" - Clear the cart
- POST "/cart/buy-now" - Replace the cart with a single product

CHECKOUT
- GET "/checkout/payment-modes" - Active payment modes
- GET "/checkout/transaction-id" - Placeholder transaction id
- POST "/checkout" - Submit the checkout

ADMIN
- CRUD "/admin/products" - Manage products
- CRUD "/admin/payment-modes" (+ PATCH :id/toggle-active) - Manage payment modes
- GET/PATCH/DELETE "/admin/payments" (+ /stats) - Manage payments
- GET "/admin/dashboard" - Aggregate statistics`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
