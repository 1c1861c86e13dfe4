package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/store"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/logger"
	"fulfillment/internal/pkg/metrics"
)

// OrderNotifier runs the side effects of committed order changes: events,
// revenue rollup and metrics. Failures are logged and never returned, the
// state change they follow is already durable. A nil *OrderNotifier is valid
// and does nothing.
type OrderNotifier struct {
	publisher ports.OrderEventPublisher
	rollup    ports.RevenueRollup
	metrics   *metrics.Metrics
	log       *logger.Logger
	loc       *time.Location
	now       func() time.Time
}

// NewOrderNotifier wires the collaborators; publisher, rollup and m may be nil.
// loc decides which calendar day a completed order is credited to.
func NewOrderNotifier(
	publisher ports.OrderEventPublisher,
	rollup ports.RevenueRollup,
	m *metrics.Metrics,
	log *logger.Logger,
	loc *time.Location,
) *OrderNotifier {
	if log == nil {
		log = logger.Nop()
	}
	if loc == nil {
		loc = time.Local
	}
	return &OrderNotifier{
		publisher: publisher,
		rollup:    rollup,
		metrics:   m,
		log:       log.Component("order-notifier"),
		loc:       loc,
		now:       time.Now,
	}
}

// OrderPlaced reports a store order created by checkout or payment completion.
func (n *OrderNotifier) OrderPlaced(ctx context.Context, path string, o *order.Order) {
	if n == nil {
		return
	}
	n.metrics.StoreOrderCreated(path, true)
	n.publish(ctx, n.event(ports.OrderCreated, o))
}

// OrderFailed counts a store order that could not be created.
func (n *OrderNotifier) OrderFailed(path string) {
	if n == nil {
		return
	}
	n.metrics.StoreOrderCreated(path, false)
}

// ItemAdvanced reports an applied item transition. completed is true when the
// same transaction moved the order to Completado.
func (n *OrderNotifier) ItemAdvanced(
	ctx context.Context,
	o *order.Order,
	productID kernel.UUID,
	stage store.Stage,
	from, to order.ItemStatus,
	completed bool,
) {
	if n == nil {
		return
	}
	n.metrics.ItemTransitioned(stage.String(), to.Code())

	advanced := n.event(ports.OrderItemAdvanced, o)
	advanced.ProductID = productID.String()
	advanced.FromStatus = from.Code()
	advanced.ToStatus = to.Code()

	events := []ports.OrderEvent{advanced}
	if completed {
		n.credit(ctx, o)
		events = append(events, n.event(ports.OrderCompleted, o))
	}
	n.publish(ctx, events...)
}

// OrderCompleted reports an order found complete outside an item transition,
// as the reconciliation does.
func (n *OrderNotifier) OrderCompleted(ctx context.Context, o *order.Order) {
	if n == nil {
		return
	}
	n.credit(ctx, o)
	n.publish(ctx, n.event(ports.OrderCompleted, o))
}

// TransitionRejected counts a refused transition by reason.
func (n *OrderNotifier) TransitionRejected(reason string) {
	if n == nil {
		return
	}
	n.metrics.TransitionRejected(reason)
}

func (n *OrderNotifier) credit(ctx context.Context, o *order.Order) {
	if n.rollup == nil {
		return
	}
	day := kernel.DateOf(o.PurchasedAt(), n.loc)
	if err := n.rollup.Increment(ctx, o.StoreID(), day, o.Total()); err != nil {
		n.log.Warn(n.log.WithOrderID(ctx, o.ID().String()), "revenue rollup increment failed", err)
	}
}

func (n *OrderNotifier) publish(ctx context.Context, events ...ports.OrderEvent) {
	if n.publisher == nil || len(events) == 0 {
		return
	}
	if err := n.publisher.Publish(ctx, events...); err != nil {
		n.log.Warn(n.log.WithOrderID(ctx, events[0].OrderID), "order event publish failed", err)
	}
}

func (n *OrderNotifier) event(eventType ports.OrderEventType, o *order.Order) ports.OrderEvent {
	return ports.OrderEvent{
		Type:       eventType,
		OrderID:    o.ID().String(),
		StoreID:    o.StoreID().String(),
		ClientID:   o.ClientID().String(),
		Status:     o.Status().String(),
		Total:      o.Total().String(),
		OccurredAt: n.now().UTC(),
	}
}
