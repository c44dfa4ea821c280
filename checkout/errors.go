package checkout

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyCart          = errors.New("cart is empty, nothing to check out")
	ErrNoModeSelected     = errors.New("no payment mode selected")
	ErrCheckoutInProgress = errors.New("a checkout is already in progress")
)

// ValidationError means a mode-specific required field was missing. The
// attempt failed before any gateway call was made.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// PaymentCreationError means the gateway rejected the payment or was
// unreachable. The cart is untouched and the user may resubmit.
type PaymentCreationError struct {
	Err error
}

func (e *PaymentCreationError) Error() string {
	if e.Err == nil {
		return "Payment failed. Please try again."
	}
	return e.Err.Error()
}

func (e *PaymentCreationError) Unwrap() error { return e.Err }

// LineFailure records one stock-reduction call that did not go through.
type LineFailure struct {
	ProductID int64  `json:"productId"`
	Name      string `json:"name"`
	Reason    string `json:"reason"`
}

// StockSyncWarning is non-fatal: the payment is already recorded, so failed
// stock reductions only flag the order for manual reconciliation.
type StockSyncWarning struct {
	Failures []LineFailure `json:"failures"`
}

func (w *StockSyncWarning) Error() string {
	names := make([]string, 0, len(w.Failures))
	for _, f := range w.Failures {
		names = append(names, f.Name)
	}
	return "payment succeeded but stock update failed for: " + strings.Join(names, ", ")
}
