package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Rovan44/shopfront-api/checkout"
	"github.com/Rovan44/shopfront-api/gateway"
	"github.com/Rovan44/shopfront-api/initializers"
	"github.com/Rovan44/shopfront-api/middlewares"
	"github.com/Rovan44/shopfront-api/models"
	"github.com/Rovan44/shopfront-api/sessions"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBackend stands in for the remote gateway and counts payment creations.
type fakeBackend struct {
	paymentCalls   int
	paymentRequest models.CheckoutRequest
	reducedIDs     []string
}

func (b *fakeBackend) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /payment-modes/active", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]models.PaymentMode{
			{ID: 1, Mode: "Cash On Delivery", IsActive: true},
			{ID: 2, Mode: "UPI", IsActive: true},
		})
	})
	mux.HandleFunc("POST /payments", func(w http.ResponseWriter, r *http.Request) {
		b.paymentCalls++
		json.NewDecoder(r.Body).Decode(&b.paymentRequest)
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.Payment{
			ID:      21,
			Amount:  b.paymentRequest.Amount,
			Status:  models.PaymentCompleted,
			Remarks: b.paymentRequest.Remarks,
		})
	})
	mux.HandleFunc("PATCH /products/{id}/reduce-stock", func(w http.ResponseWriter, r *http.Request) {
		b.reducedIDs = append(b.reducedIDs, r.PathValue("id"))
		json.NewEncoder(w).Encode(models.Product{})
	})
	return mux
}

// checkoutServer wires the checkout route against a fake backend and hands
// back an authenticated session plus its bearer token.
func checkoutServer(t *testing.T) (*gin.Engine, *fakeBackend, *sessions.Session, string) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	backend := &fakeBackend{}
	server := httptest.NewServer(backend.handler())
	t.Cleanup(server.Close)

	initializers.Gateway = gateway.NewClient(server.URL, 2*time.Second)
	initializers.Checkout = checkout.NewOrchestrator(initializers.Gateway, 0)

	session := sessions.Default.Create("user", "user")
	t.Cleanup(func() { sessions.Default.Remove(session.ID) })

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username": session.Username,
		"role":     session.Role,
		"sid":      session.ID,
		"iat":      time.Now().Unix(),
		"exp":      time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.POST("/checkout", middlewares.RequireAuth(), SubmitCheckout)
	return engine, backend, session, signed
}

func postCheckout(engine *gin.Engine, token, body string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/checkout", strings.NewReader(body))
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Authorization", "Bearer "+token)
	engine.ServeHTTP(recorder, request)
	return recorder
}

func TestSubmitCheckoutSuccessClearsCart(t *testing.T) {
	engine, backend, session, token := checkoutServer(t)
	require.NoError(t, session.Cart.AddLine(models.Product{
		ID: 1, Name: "Organic Apple", Price: 500, TotalItemsInStock: 5,
	}))
	session.Cart.SetQuantity(1, 2)

	recorder := postCheckout(engine, token, `{"paymentModeId":1,"deliveryAddress":"12 Main St"}`)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"payment"`)
	assert.Equal(t, 1, backend.paymentCalls)
	assert.Equal(t, 1000.0, backend.paymentRequest.Amount)
	assert.Nil(t, backend.paymentRequest.TransactionID)
	assert.Equal(t, "12 Main St", backend.paymentRequest.Remarks)
	assert.Equal(t, []string{"1"}, backend.reducedIDs)
	assert.True(t, session.Cart.IsEmpty())
}

func TestSubmitCheckoutValidationFailureKeepsCart(t *testing.T) {
	engine, backend, session, token := checkoutServer(t)
	require.NoError(t, session.Cart.AddLine(models.Product{
		ID: 1, Name: "Organic Apple", Price: 500, TotalItemsInStock: 5,
	}))

	recorder := postCheckout(engine, token, `{"paymentModeId":1}`)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	// No payment was attempted and the cart survives for a resubmit.
	assert.Zero(t, backend.paymentCalls)
	assert.False(t, session.Cart.IsEmpty())
}

func TestSubmitCheckoutWithoutModeSelected(t *testing.T) {
	engine, backend, session, token := checkoutServer(t)
	require.NoError(t, session.Cart.AddLine(models.Product{
		ID: 1, Name: "Organic Apple", Price: 500, TotalItemsInStock: 5,
	}))

	recorder := postCheckout(engine, token, `{}`)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), msgNoModeSelected)
	assert.Zero(t, backend.paymentCalls)
	assert.False(t, session.Cart.IsEmpty())
}
