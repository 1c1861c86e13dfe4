package order

import (
	"errors"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrOrderItemIsNotConstructed = errors.New("OrderItem must be created via NewOrderItem or RestoreOrderItem")

// ItemDetails is the product line copied from a cart entry into an order.
type ItemDetails struct {
	ProductID   kernel.UUID
	Name        string
	Description string
	PhotoRef    string
	Quantity    int
	UnitPrice   kernel.Money
	Discount    kernel.Percent
}

// OrderItem is one product line of exactly one order and one store. Its
// status only ever moves forward.
type OrderItem struct {
	orderID kernel.UUID
	storeID kernel.UUID
	details ItemDetails
	status  ItemStatus

	guard guard.ConstructorGuard
}

// NewOrderItem creates an item in the RECEIVED status.
func NewOrderItem(orderID, storeID kernel.UUID, details ItemDetails) (*OrderItem, error) {
	return RestoreOrderItem(orderID, storeID, details, ItemReceived)
}

// RestoreOrderItem rebuilds an item loaded from persistence.
func RestoreOrderItem(orderID, storeID kernel.UUID, details ItemDetails, status ItemStatus) (*OrderItem, error) {
	item := &OrderItem{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		orderID.Validate(),
		storeID.Validate(),
		item.setDetails(details),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	item.orderID = orderID
	item.storeID = storeID
	item.status = status
	return item, nil
}

func (i *OrderItem) Validate() error {
	if i == nil {
		return ErrOrderItemIsNotConstructed
	}
	return i.guard.Validate(ErrOrderItemIsNotConstructed)
}

func (i *OrderItem) OrderID() kernel.UUID {
	return i.orderID
}

func (i *OrderItem) StoreID() kernel.UUID {
	return i.storeID
}

func (i *OrderItem) ProductID() kernel.UUID {
	return i.details.ProductID
}

func (i *OrderItem) Name() string {
	return i.details.Name
}

func (i *OrderItem) Description() string {
	return i.details.Description
}

func (i *OrderItem) PhotoRef() string {
	return i.details.PhotoRef
}

func (i *OrderItem) Quantity() int {
	return i.details.Quantity
}

func (i *OrderItem) UnitPrice() kernel.Money {
	return i.details.UnitPrice
}

func (i *OrderItem) Discount() kernel.Percent {
	return i.details.Discount
}

func (i *OrderItem) Status() ItemStatus {
	return i.status
}

func (i *OrderItem) Details() ItemDetails {
	return i.details
}

// LineTotal is unitPrice × (1 − discount/100) × quantity, unrounded.
func (i *OrderItem) LineTotal() kernel.Money {
	return i.details.UnitPrice.Discounted(i.details.Discount).Times(i.details.Quantity)
}

// advance applies the status machine and reports whether the status changed.
func (i *OrderItem) advance(target ItemStatus) (ItemStatus, bool, error) {
	from := i.status
	next, err := from.TransitionTo(target)
	if err != nil {
		return from, false, err
	}
	i.status = next
	return from, next != from, nil
}

func (i *OrderItem) setDetails(d ItemDetails) error {
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

	d.Name = strings.TrimSpace(d.Name)
	i.details = d
	return nil
}
