package commands

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"

	"go.uber.org/multierr"
)

var (
	ErrCartIsEmpty            = errors.New("cart is empty")
	ErrPaymentAmountMismatch  = errors.New("payment amount does not match the order total")
	ErrPartialCheckoutFailure = errors.New("partial checkout failure")
)

// PaymentAmountMismatchError carries both amounts of a rejected payment.
type PaymentAmountMismatchError struct {
	StoreID  kernel.UUID
	Expected kernel.Money
	Paid     kernel.Money
}

func (e *PaymentAmountMismatchError) Error() string {
	return fmt.Sprintf("%s: store %s expects %s, got %s", ErrPaymentAmountMismatch, e.StoreID, e.Expected, e.Paid)
}

func (e *PaymentAmountMismatchError) Unwrap() error {
	return ErrPaymentAmountMismatch
}

// PartialCheckoutFailureError lists which stores got their order and which
// did not. Orders of Succeeded stores are committed and stay committed; the
// cart entries of Failed stores are untouched, so checkout can be retried.
type PartialCheckoutFailureError struct {
	Succeeded []kernel.UUID
	Failed    []kernel.UUID
	// Causes combines the per-store errors in the order of Failed.
	Causes error
}

func NewPartialCheckoutFailureError(succeeded, failed []kernel.UUID, causes error) *PartialCheckoutFailureError {
	return &PartialCheckoutFailureError{Succeeded: succeeded, Failed: failed, Causes: causes}
}

func (e *PartialCheckoutFailureError) Error() string {
	return fmt.Sprintf("%s: %d of %d stores failed: %v",
		ErrPartialCheckoutFailure, len(e.Failed), len(e.Failed)+len(e.Succeeded), e.Causes)
}

// Unwrap exposes the sentinel and every per-store cause to errors.Is and errors.As.
func (e *PartialCheckoutFailureError) Unwrap() []error {
	return append([]error{ErrPartialCheckoutFailure}, multierr.Errors(e.Causes)...)
}
