package checkout

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Rovan44/shopfront-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGateway implements Gateway for tests and records every call.
type fakeGateway struct {
	CreatePaymentFn func(ctx context.Context, request models.CheckoutRequest) (*models.Payment, error)
	ReduceStockFn   func(ctx context.Context, productID int64, quantity int) (*models.Product, error)

	createCalls    int
	createdRequest models.CheckoutRequest
	reducedIDs     []int64
}

func (f *fakeGateway) CreatePayment(ctx context.Context, request models.CheckoutRequest) (*models.Payment, error) {
	f.createCalls++
	f.createdRequest = request
	return f.CreatePaymentFn(ctx, request)
}

func (f *fakeGateway) ReduceStock(ctx context.Context, productID int64, quantity int) (*models.Product, error) {
	f.reducedIDs = append(f.reducedIDs, productID)
	return f.ReduceStockFn(ctx, productID, quantity)
}

func acceptingGateway() *fakeGateway {
	return &fakeGateway{
		CreatePaymentFn: func(_ context.Context, request models.CheckoutRequest) (*models.Payment, error) {
			return &models.Payment{
				ID:            42,
				TransactionID: request.TransactionID,
				Amount:        request.Amount,
				Status:        models.PaymentCompleted,
				Remarks:       request.Remarks,
			}, nil
		},
		ReduceStockFn: func(_ context.Context, _ int64, _ int) (*models.Product, error) {
			return &models.Product{}, nil
		},
	}
}

func cartWith(lines ...models.CartLine) *models.Cart {
	cart := models.NewCart()
	cart.Lines = append(cart.Lines, lines...)
	return cart
}

func codMode() *models.PaymentMode {
	return &models.PaymentMode{ID: 1, Mode: "Cash On Delivery", IsActive: true}
}

func upiMode() *models.PaymentMode {
	return &models.PaymentMode{ID: 2, Mode: "UPI", IsActive: true}
}

func TestSubmitEmptyCart(t *testing.T) {
	gw := acceptingGateway()
	o := NewOrchestrator(gw, 0)

	_, err := o.Submit(context.Background(), models.NewCart(), Input{Mode: upiMode()})

	require.ErrorIs(t, err, ErrEmptyCart)
	assert.Zero(t, gw.createCalls)
}

func TestSubmitNoModeSelected(t *testing.T) {
	gw := acceptingGateway()
	o := NewOrchestrator(gw, 0)
	cart := cartWith(models.CartLine{ProductID: 1, Name: "Apple", Price: 299, Quantity: 1})

	_, err := o.Submit(context.Background(), cart, Input{})

	require.ErrorIs(t, err, ErrNoModeSelected)
	assert.Zero(t, gw.createCalls)
	assert.Len(t, cart.Lines, 1)
}

func TestSubmitCODWithoutAddress(t *testing.T) {
	gw := acceptingGateway()
	o := NewOrchestrator(gw, 0)
	cart := cartWith(models.CartLine{ProductID: 1, Name: "Apple", Price: 299, Quantity: 1})

	_, err := o.Submit(context.Background(), cart, Input{Mode: codMode(), DeliveryAddress: "   "})

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "deliveryAddress", validationErr.Field)
	// Validation failures must never reach the gateway.
	assert.Zero(t, gw.createCalls)
	assert.Empty(t, gw.reducedIDs)
}

func TestSubmitOnlineModeWithoutTransactionID(t *testing.T) {
	gw := acceptingGateway()
	o := NewOrchestrator(gw, 0)
	cart := cartWith(models.CartLine{ProductID: 1, Name: "Apple", Price: 299, Quantity: 1})

	_, err := o.Submit(context.Background(), cart, Input{Mode: upiMode()})

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "transactionId", validationErr.Field)
	assert.Zero(t, gw.createCalls)
}

func TestSubmitCODSuccess(t *testing.T) {
	gw := acceptingGateway()
	o := NewOrchestrator(gw, 0)
	cart := cartWith(models.CartLine{ProductID: 1, Name: "Apple", Price: 500, Quantity: 2})

	result, err := o.Submit(context.Background(), cart, Input{
		Mode:            codMode(),
		DeliveryAddress: "12 Main St",
	})

	require.NoError(t, err)
	assert.Equal(t, StateSucceeded, result.State)
	assert.Equal(t, int64(1), gw.createdRequest.PaymentModeID)
	assert.Equal(t, 1000.0, gw.createdRequest.Amount)
	assert.Nil(t, gw.createdRequest.TransactionID)
	assert.Equal(t, "12 Main St", gw.createdRequest.Remarks)
	assert.Nil(t, result.Warning)
	assert.Equal(t, []int64{1}, gw.reducedIDs)
}

func TestSubmitUPISuccessReducesEveryLineInOrder(t *testing.T) {
	gw := acceptingGateway()
	o := NewOrchestrator(gw, 0)
	cart := cartWith(
		models.CartLine{ProductID: 3, Name: "Headphones", Price: 24999, Quantity: 1},
		models.CartLine{ProductID: 1, Name: "Apple", Price: 299, Quantity: 4},
	)

	result, err := o.Submit(context.Background(), cart, Input{
		Mode:          upiMode(),
		TransactionID: "TXN17254839200042",
	})

	require.NoError(t, err)
	assert.Equal(t, StateSucceeded, result.State)
	require.NotNil(t, gw.createdRequest.TransactionID)
	assert.Equal(t, "TXN17254839200042", *gw.createdRequest.TransactionID)
	assert.Equal(t, "Payment via UPI - TXN17254839200042", gw.createdRequest.Remarks)
	assert.Equal(t, []int64{3, 1}, gw.reducedIDs)
	assert.Nil(t, result.Warning)
}

func TestSubmitPaymentCreationFailure(t *testing.T) {
	gw := acceptingGateway()
	gw.CreatePaymentFn = func(_ context.Context, _ models.CheckoutRequest) (*models.Payment, error) {
		return nil, errors.New("payment mode not found")
	}
	o := NewOrchestrator(gw, 0)
	cart := cartWith(models.CartLine{ProductID: 1, Name: "Apple", Price: 299, Quantity: 1})

	_, err := o.Submit(context.Background(), cart, Input{
		Mode:          upiMode(),
		TransactionID: "TXN1",
	})

	var paymentErr *PaymentCreationError
	require.ErrorAs(t, err, &paymentErr)
	assert.Empty(t, gw.reducedIDs)
	// The cart stays intact so the user can resubmit.
	assert.Len(t, cart.Lines, 1)
}

func TestSubmitPartialStockFailureStillSucceeds(t *testing.T) {
	gw := acceptingGateway()
	gw.ReduceStockFn = func(_ context.Context, productID int64, _ int) (*models.Product, error) {
		if productID == 1 {
			return nil, errors.New("insufficient stock")
		}
		return &models.Product{}, nil
	}
	o := NewOrchestrator(gw, 0)
	cart := cartWith(
		models.CartLine{ProductID: 1, Name: "Apple", Price: 299, Quantity: 2},
		models.CartLine{ProductID: 3, Name: "Headphones", Price: 24999, Quantity: 1},
	)

	result, err := o.Submit(context.Background(), cart, Input{
		Mode:          upiMode(),
		TransactionID: "TXN2",
	})

	require.NoError(t, err)
	assert.Equal(t, StateSucceeded, result.State)
	require.NotNil(t, result.Warning)
	require.Len(t, result.Warning.Failures, 1)
	assert.Equal(t, int64(1), result.Warning.Failures[0].ProductID)
	assert.Equal(t, "Apple", result.Warning.Failures[0].Name)
	// The second line was still attempted.
	assert.Equal(t, []int64{1, 3}, gw.reducedIDs)
}

func TestSubmitProceedsOnFailedPaymentStatus(t *testing.T) {
	gw := acceptingGateway()
	gw.CreatePaymentFn = func(_ context.Context, request models.CheckoutRequest) (*models.Payment, error) {
		return &models.Payment{ID: 9, Amount: request.Amount, Status: models.PaymentFailed}, nil
	}
	o := NewOrchestrator(gw, 0)
	cart := cartWith(models.CartLine{ProductID: 1, Name: "Apple", Price: 299, Quantity: 1})

	result, err := o.Submit(context.Background(), cart, Input{
		Mode:          upiMode(),
		TransactionID: "TXN3",
	})

	// A recorded payment is committed no matter what status it carries.
	require.NoError(t, err)
	assert.Equal(t, StateSucceeded, result.State)
	assert.Equal(t, models.PaymentFailed, result.Payment.Status)
	assert.Equal(t, []int64{1}, gw.reducedIDs)
}

func TestSubmitCancelledDuringProcessingDelay(t *testing.T) {
	gw := acceptingGateway()
	o := NewOrchestrator(gw, 500*time.Millisecond)
	cart := cartWith(models.CartLine{ProductID: 1, Name: "Apple", Price: 299, Quantity: 1})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := o.Submit(ctx, cart, Input{Mode: upiMode(), TransactionID: "TXN4"})

	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Zero(t, gw.createCalls)
}

func TestCanTransitionTo(t *testing.T) {
	assert.True(t, CanTransitionTo(StateSelectingMode, StateValidatingFields))
	assert.True(t, CanTransitionTo(StateRecordingPayment, StateReducingStock))
	assert.True(t, CanTransitionTo(StateRecordingPayment, StateFailed))
	// Once stock reduction starts, failure is no longer reachable.
	assert.False(t, CanTransitionTo(StateReducingStock, StateFailed))
	assert.False(t, CanTransitionTo(StateSucceeded, StateFailed))
}

func TestModeKinds(t *testing.T) {
	cod := KindOf(models.PaymentMode{Mode: "Cash On Delivery"})
	assert.True(t, cod.RequiresDeliveryAddress())
	assert.False(t, cod.RequiresTransactionID())

	for _, label := range []string{"UPI", "Debit/Credit Card", "Net Banking", "Wallet", "Gift Card"} {
		kind := KindOf(models.PaymentMode{Mode: label})
		assert.True(t, kind.RequiresTransactionID(), label)
		assert.False(t, kind.RequiresDeliveryAddress(), label)
	}
}
