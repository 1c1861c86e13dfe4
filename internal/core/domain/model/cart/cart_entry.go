// Package cart models the client-scoped selections waiting to be paid.
package cart

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// PendingPaymentStatus is the only status an entry has while it sits in the cart.
const PendingPaymentStatus = "Pendiente a pagar"

var ErrCartEntryIsNotConstructed = errors.New("CartEntry must be created via NewCartEntry")

// Key identifies an entry within one client's cart.
type Key struct {
	StoreID   kernel.UUID
	ProductID kernel.UUID
}

// Entry is one product a client selected at one store. A client holds at
// most one entry per (store, product); adding the product again increases
// the quantity.
type Entry struct {
	clientID kernel.UUID
	storeID  kernel.UUID
	details  order.ItemDetails

	guard guard.ConstructorGuard
}

func NewCartEntry(clientID, storeID kernel.UUID, details order.ItemDetails) (*Entry, error) {
	if err := errors.Join(clientID.Validate(), storeID.Validate(), validateDetails(details)); err != nil {
		return nil, err
	}
	return &Entry{
		clientID: clientID,
		storeID:  storeID,
		details:  details,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (e *Entry) Validate() error {
	if e == nil {
		return ErrCartEntryIsNotConstructed
	}
	return e.guard.Validate(ErrCartEntryIsNotConstructed)
}

func (e *Entry) ClientID() kernel.UUID {
	return e.clientID
}

func (e *Entry) StoreID() kernel.UUID {
	return e.storeID
}

func (e *Entry) ProductID() kernel.UUID {
	return e.details.ProductID
}

func (e *Entry) Quantity() int {
	return e.details.Quantity
}

func (e *Entry) Status() string {
	return PendingPaymentStatus
}

func (e *Entry) Key() Key {
	return Key{StoreID: e.storeID, ProductID: e.details.ProductID}
}

// Details returns the line as it will be copied into an order item.
func (e *Entry) Details() order.ItemDetails {
	return e.details
}

// LineTotal is unitPrice × (1 − discount/100) × quantity, unrounded.
func (e *Entry) LineTotal() kernel.Money {
	return e.details.UnitPrice.Discounted(e.details.Discount).Times(e.details.Quantity)
}

func validateDetails(d order.ItemDetails) error {
	if err := d.ProductID.Validate(); err != nil {
		return err
	}
	if d.Quantity < 1 {
		return errs.NewValueIsOutOfRangeError("quantity", d.Quantity, 1, "unbounded")
	}
	if err := d.UnitPrice.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("unitPrice", err)
	}
	if err := d.Discount.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("discount", err)
	}
	return nil
}
