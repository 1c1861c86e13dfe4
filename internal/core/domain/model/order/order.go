package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// DefaultPaymentMethod is recorded when the caller does not name one.
const DefaultPaymentMethod = "Tarjeta"

var (
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
	ErrOrderHasNoItems       = errs.NewValueIsRequiredError("items")
)

// Order is the purchase header of one client at one store. It is the
// aggregate root of its items: every item transition goes through the order
// so the aggregate status can be projected in the same unit of work.
//
// Order follows these invariants:
//   - It owns at least one item, and every item belongs to the order's store
//   - Product IDs are unique within the order
//   - The stored total is fixed at creation; ComputeTotal re-derives it from items
//   - Status is a projection of the item statuses (see ProjectStatus)
type Order struct {
	id               kernel.UUID
	clientID         kernel.UUID
	storeID          kernel.UUID
	paymentMethod    string
	paymentReference string
	purchasedAt      time.Time
	status           Status
	total            kernel.Money
	items            []*OrderItem

	guard guard.ConstructorGuard
}

// NewOrder creates a Paid order whose items are all RECEIVED.
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewUUID(), clientID, storeID, "", time.Now(), []order.ItemDetails{
//	    {ProductID: p1, Name: "Empanada", Quantity: 2, UnitPrice: kernel.MustMoney("10.00"), Discount: kernel.ZeroPercent()},
//	})
func NewOrder(
	id, clientID, storeID kernel.UUID,
	paymentMethod string,
	purchasedAt time.Time,
	lines []ItemDetails,
) (*Order, error) {
	items := make([]*OrderItem, 0, len(lines))
	for _, line := range lines {
		item, err := NewOrderItem(id, storeID, line)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	o := &Order{status: Paid, guard: guard.NewConstructorGuard()}
	if err := errors.Join(
		o.setIdentity(id, clientID, storeID),
		o.setPayment(paymentMethod, purchasedAt),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	o.total = o.ComputeTotal()
	return o, nil
}

// RestoreOrder rebuilds an order loaded from persistence. The stored total
// and status are taken as they were written.
func RestoreOrder(
	id, clientID, storeID kernel.UUID,
	paymentMethod, paymentReference string,
	purchasedAt time.Time,
	status Status,
	total kernel.Money,
	items []*OrderItem,
) (*Order, error) {
	o := &Order{paymentReference: paymentReference, guard: guard.NewConstructorGuard()}
	if err := errors.Join(
		o.setIdentity(id, clientID, storeID),
		o.setPayment(paymentMethod, purchasedAt),
		o.setItems(items),
		status.Validate(),
		total.Validate(),
	); err != nil {
		return nil, err
	}

	o.status = status
	o.total = total
	return o, nil
}

func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) ClientID() kernel.UUID {
	return o.clientID
}

func (o *Order) StoreID() kernel.UUID {
	return o.storeID
}

func (o *Order) PaymentMethod() string {
	return o.paymentMethod
}

// PaymentReference is the opaque confirmation token of the payment
// collaborator, empty for orders created by the plain checkout path.
func (o *Order) PaymentReference() string {
	return o.paymentReference
}

func (o *Order) PurchasedAt() time.Time {
	return o.purchasedAt
}

func (o *Order) Status() Status {
	return o.status
}

// Total returns the stored total. Reports sum this value.
func (o *Order) Total() kernel.Money {
	return o.total
}

// Items returns a copy of the item slice; the items themselves are shared.
func (o *Order) Items() []*OrderItem {
	items := make([]*OrderItem, len(o.items))
	copy(items, o.items)
	return items
}

func (o *Order) IsCompleted() bool {
	return o.status == Completed
}

// ComputeTotal re-derives the total from the items, rounded half-up to cents.
func (o *Order) ComputeTotal() kernel.Money {
	total := kernel.ZeroMoney()
	for _, item := range o.items {
		total = total.Add(item.LineTotal())
	}
	return total.Round()
}

// Item finds the line of productID.
func (o *Order) Item(productID kernel.UUID) (*OrderItem, error) {
	for _, item := range o.items {
		if item.ProductID().IsEqual(productID) {
			return item, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("productId", productID.String())
}

// AttachPaymentReference records the confirmation token once.
func (o *Order) AttachPaymentReference(reference string) error {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return errs.NewValueIsRequiredError("paymentReference")
	}
	if o.paymentReference != "" && o.paymentReference != reference {
		return errs.NewValueIsInvalidErrorWithCause("paymentReference",
			fmt.Errorf("order %s already carries a payment reference", o.id))
	}
	o.paymentReference = reference
	return nil
}

// AdvanceItem moves the item of productID to target. It returns the status the
// item had before the call and whether anything changed; a target equal to the
// current status is a successful no-op. The aggregate status is not touched,
// call RefreshStatus afterwards.
func (o *Order) AdvanceItem(productID kernel.UUID, target ItemStatus) (ItemStatus, bool, error) {
	item, err := o.Item(productID)
	if err != nil {
		return ItemUnknown, false, err
	}
	return item.advance(target)
}

// RefreshStatus recomputes the aggregate status from the items and reports
// whether it changed.
func (o *Order) RefreshStatus() bool {
	statuses := make([]ItemStatus, 0, len(o.items))
	for _, item := range o.items {
		statuses = append(statuses, item.Status())
	}

	projected := ProjectStatus(statuses)
	if projected == o.status {
		return false
	}
	o.status = projected
	return true
}

func (o *Order) setIdentity(id, clientID, storeID kernel.UUID) error {
	if err := errors.Join(id.Validate(), clientID.Validate(), storeID.Validate()); err != nil {
		return err
	}
	o.id = id
	o.clientID = clientID
	o.storeID = storeID
	return nil
}

func (o *Order) setPayment(method string, purchasedAt time.Time) error {
	method = strings.TrimSpace(method)
	if method == "" {
		method = DefaultPaymentMethod
	}
	if purchasedAt.IsZero() {
		return errs.NewValueIsRequiredError("purchasedAt")
	}
	o.paymentMethod = method
	o.purchasedAt = purchasedAt
	return nil
}

func (o *Order) setItems(items []*OrderItem) error {
	if len(items) == 0 {
		return ErrOrderHasNoItems
	}

	seen := make(map[kernel.UUID]struct{}, len(items))
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		if !item.StoreID().IsEqual(o.storeID) || !item.OrderID().IsEqual(o.id) {
			return errs.NewValueIsInvalidErrorWithCause("items",
				fmt.Errorf("product %s does not belong to order %s of store %s", item.ProductID(), o.id, o.storeID))
		}
		if _, dup := seen[item.ProductID()]; dup {
			return errs.NewValueIsInvalidErrorWithCause("items",
				fmt.Errorf("product %s appears twice", item.ProductID()))
		}
		seen[item.ProductID()] = struct{}{}
	}

	o.items = items
	return nil
}
