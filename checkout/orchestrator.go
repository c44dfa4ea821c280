package checkout

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/Rovan44/shopfront-api/models"
)

type State string

const (
	StateSelectingMode    State = "SELECTING_MODE"
	StateValidatingFields State = "VALIDATING_FIELDS"
	StateAwaitingGateway  State = "AWAITING_GATEWAY_RESULT"
	StateRecordingPayment State = "RECORDING_PAYMENT"
	StateReducingStock    State = "REDUCING_STOCK"
	StateSucceeded        State = "SUCCEEDED"
	StateFailed           State = "FAILED"
)

func (s State) IsTerminal() bool {
	return s == StateSucceeded || s == StateFailed
}

func (s State) String() string {
	return string(s)
}

// Failed is only reachable before the payment is recorded. Once the gateway
// has a payment record, the attempt ends in Succeeded no matter what happens
// to the stock-reduction calls.
var transitions = map[State][]State{
	StateSelectingMode:    {StateValidatingFields, StateFailed},
	StateValidatingFields: {StateAwaitingGateway, StateFailed},
	StateAwaitingGateway:  {StateRecordingPayment, StateFailed},
	StateRecordingPayment: {StateReducingStock, StateFailed},
	StateReducingStock:    {StateSucceeded},
}

func CanTransitionTo(from, to State) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Gateway is the slice of the remote backend the orchestrator needs.
type Gateway interface {
	CreatePayment(ctx context.Context, request models.CheckoutRequest) (*models.Payment, error)
	ReduceStock(ctx context.Context, productID int64, quantity int) (*models.Product, error)
}

// Orchestrator drives a checkout attempt from mode selection to the final
// outcome. It holds no per-attempt state, so one instance serves every
// session; callers must not run two attempts for the same cart at once.
type Orchestrator struct {
	gateway Gateway
	delay   time.Duration
}

// DefaultProcessingDelay models the gateway round trip of the simulated
// payment providers.
const DefaultProcessingDelay = 2 * time.Second

func NewOrchestrator(gateway Gateway, delay time.Duration) *Orchestrator {
	return &Orchestrator{gateway: gateway, delay: delay}
}

// Input carries the user's submission. Mode is nil when nothing was selected.
type Input struct {
	Mode            *models.PaymentMode
	TransactionID   string
	DeliveryAddress string
	Remarks         string
}

type Result struct {
	State   State
	Request models.CheckoutRequest
	Payment *models.Payment
	Warning *StockSyncWarning
}

type attempt struct {
	state State
}

func (a *attempt) to(next State) error {
	if !CanTransitionTo(a.state, next) {
		return fmt.Errorf("illegal checkout transition %s -> %s", a.state, next)
	}
	a.state = next
	return nil
}

// Submit runs one checkout attempt against the cart. On any error the cart
// is left untouched; clearing it after success is the caller's job.
func (o *Orchestrator) Submit(ctx context.Context, cart *models.Cart, in Input) (*Result, error) {
	if cart.IsEmpty() {
		return nil, ErrEmptyCart
	}

	a := &attempt{state: StateSelectingMode}
	if in.Mode == nil {
		return nil, ErrNoModeSelected
	}

	if err := a.to(StateValidatingFields); err != nil {
		return nil, err
	}
	request, err := o.buildRequest(cart, in)
	if err != nil {
		return nil, err
	}

	if err := a.to(StateAwaitingGateway); err != nil {
		return nil, err
	}
	if err := o.waitForGateway(ctx); err != nil {
		return nil, err
	}

	if err := a.to(StateRecordingPayment); err != nil {
		return nil, err
	}
	payment, err := o.gateway.CreatePayment(ctx, request)
	if err != nil {
		log.Println("Payment creation failed:", err)
		return nil, &PaymentCreationError{Err: err}
	}
	// The record is committed from here on, even if the gateway reported a
	// non-COMPLETED status on it.
	log.Printf("Payment %d recorded with status %s", payment.ID, payment.Status)

	if err := a.to(StateReducingStock); err != nil {
		return nil, err
	}
	warning := o.reduceStock(ctx, cart)

	if err := a.to(StateSucceeded); err != nil {
		return nil, err
	}
	return &Result{
		State:   a.state,
		Request: request,
		Payment: payment,
		Warning: warning,
	}, nil
}

// buildRequest applies the mode-specific field rules and captures the cart
// total once; later cart mutations do not change the amount.
func (o *Orchestrator) buildRequest(cart *models.Cart, in Input) (models.CheckoutRequest, error) {
	request := models.CheckoutRequest{
		PaymentModeID: in.Mode.ID,
		Amount:        cart.Total(),
	}

	kind := KindOf(*in.Mode)
	if kind.RequiresDeliveryAddress() {
		address := strings.TrimSpace(in.DeliveryAddress)
		if address == "" {
			return request, &ValidationError{
				Field:  "deliveryAddress",
				Reason: "a delivery address is required for Cash On Delivery",
			}
		}
		request.Remarks = address
		return request, nil
	}

	transactionID := strings.TrimSpace(in.TransactionID)
	if transactionID == "" {
		return request, &ValidationError{
			Field:  "transactionId",
			Reason: "a transaction id is required for this payment mode",
		}
	}
	request.TransactionID = &transactionID

	request.Remarks = strings.TrimSpace(in.Remarks)
	if request.Remarks == "" {
		request.Remarks = fmt.Sprintf("Payment via %s - %s", in.Mode.Mode, transactionID)
	}
	return request, nil
}

func (o *Orchestrator) waitForGateway(ctx context.Context) error {
	if o.delay <= 0 {
		return nil
	}

	timer := time.NewTimer(o.delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("checkout cancelled while awaiting gateway: %w", ctx.Err())
	}
}

// reduceStock issues one reduction call per cart line, in cart order. Every
// line is attempted; failures are collected, never propagated.
func (o *Orchestrator) reduceStock(ctx context.Context, cart *models.Cart) *StockSyncWarning {
	var failures []LineFailure
	for _, line := range cart.Snapshot() {
		if _, err := o.gateway.ReduceStock(ctx, line.ProductID, line.Quantity); err != nil {
			log.Printf("Stock reduction failed for product %d (%s): %v", line.ProductID, line.Name, err)
			failures = append(failures, LineFailure{
				ProductID: line.ProductID,
				Name:      line.Name,
				Reason:    err.Error(),
			})
		}
	}

	if len(failures) == 0 {
		return nil
	}
	warning := &StockSyncWarning{Failures: failures}
	log.Println("Stock sync warning:", warning.Error())
	return warning
}
