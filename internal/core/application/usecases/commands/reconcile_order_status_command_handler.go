package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
)

// ReconcileOrderStatusCommandHandler repairs header statuses that drifted from
// their items, e.g. after a header write failed or rows were edited by hand.
// Only drifted orders are selected, so orders whose items legitimately stay
// open never use up the batch. Each candidate is re-read under its header lock
// before it is written.
type ReconcileOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   *OrderNotifier
}

func NewReconcileOrderStatusCommandHandler(uowFactory OrderUoWFactory, notifier *OrderNotifier) ReconcileOrderStatusCommandHandler {
	return ReconcileOrderStatusCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle returns the number of orders whose status was corrected.
func (h *ReconcileOrderStatusCommandHandler) Handle(ctx context.Context, cmd ReconcileOrderStatusCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	ids, err := orderRepo.ListDrifted(ctx, cmd.BatchSize())
	if err != nil {
		return 0, err
	}

	completed := make([]*order.Order, 0)
	fixed := 0
	for _, id := range ids {
		o, getErr := orderRepo.GetForUpdate(ctx, id)
		if getErr != nil {
			return 0, getErr
		}
		if !o.RefreshStatus() {
			continue
		}
		if err = orderRepo.UpdateStatus(ctx, o); err != nil {
			return 0, err
		}
		fixed++
		if o.IsCompleted() {
			completed = append(completed, o)
		}
	}

	if fixed == 0 {
		return 0, nil
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	for _, o := range completed {
		h.notifier.OrderCompleted(ctx, o)
	}
	return fixed, nil
}
