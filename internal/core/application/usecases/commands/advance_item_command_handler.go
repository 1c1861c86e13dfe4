package commands

import (
	"context"
	"errors"

	"fulfillment/internal/core/application/usecases/access"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/store"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// AdvanceItemCommandHandler applies one item transition for a worker.
//
// The caller must hold the stage that owns the transition (RECEIVED→QUEUED
// belongs to Recepcionista, QUEUED→PREPARING and PREPARING→READY_FOR_PICKUP to
// Cocinero, READY_FOR_PICKUP→DELIVERED to Despachador). A regression or a
// skip is an invalid transition whoever asks. The order header is locked
// before the items are read, the item row is written with a compare-and-set
// on its previous status, and the order's aggregate status is recomputed from
// that fresh read in the same transaction.
type AdvanceItemCommandHandler struct {
	uowFactory WorkflowUoWFactory
	stages     access.StageLoader
	notifier   *OrderNotifier
}

func NewAdvanceItemCommandHandler(uowFactory WorkflowUoWFactory, notifier *OrderNotifier) AdvanceItemCommandHandler {
	return AdvanceItemCommandHandler{
		uowFactory: uowFactory,
		stages:     access.NewStageLoader(),
		notifier:   notifier,
	}
}

// Handle returns the item in its resulting status. Requesting the status the
// item already has succeeds without writing anything.
func (h *AdvanceItemCommandHandler) Handle(ctx context.Context, cmd AdvanceItemCommand) (*order.OrderItem, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	item, advanced, err := h.advance(ctx, cmd)
	if err != nil {
		h.notifier.TransitionRejected(rejectionReason(err))
		return nil, err
	}

	if advanced != nil {
		h.notifier.ItemAdvanced(ctx, advanced.order, cmd.ProductID(), advanced.stage,
			advanced.from, cmd.Target(), advanced.completed)
	}
	return item, nil
}

type advancedItem struct {
	order     *order.Order
	stage     store.Stage
	from      order.ItemStatus
	completed bool
}

func (h *AdvanceItemCommandHandler) advance(
	ctx context.Context,
	cmd AdvanceItemCommand,
) (*order.OrderItem, *advancedItem, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	grant, err := h.stages.Load(ctx, uow.StoreRepository(), uow.MembershipRepository(), cmd.StoreID(), cmd.UserID())
	if err != nil {
		return nil, nil, err
	}

	aggregate, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return nil, nil, err
	}
	if !aggregate.StoreID().IsEqual(cmd.StoreID()) {
		return nil, nil, errs.NewObjectNotFoundError("order", cmd.OrderID().String())
	}

	item, err := aggregate.Item(cmd.ProductID())
	if err != nil {
		return nil, nil, err
	}
	// Regressions and skips have no owning stage.
	if _, err = item.Status().TransitionTo(cmd.Target()); err != nil {
		return nil, nil, err
	}

	owningStage, err := store.StageFor(cmd.Target())
	if err != nil {
		return nil, nil, err
	}
	if !grant.Stages.Has(owningStage) {
		return nil, nil, store.NewUnauthorizedError(cmd.UserID(), cmd.StoreID(), owningStage)
	}

	from, changed, err := aggregate.AdvanceItem(cmd.ProductID(), cmd.Target())
	if err != nil {
		return nil, nil, err
	}
	if !changed {
		return item, nil, nil
	}

	err = orderRepo.UpdateItemStatus(ctx, cmd.OrderID(), cmd.ProductID(), from, cmd.Target())
	if errors.Is(err, errs.ErrVersionIsInvalid) {
		return h.resolveLostRace(ctx, orderRepo, cmd)
	}
	if err != nil {
		return nil, nil, err
	}

	statusChanged := aggregate.RefreshStatus()
	if statusChanged {
		if err = orderRepo.UpdateStatus(ctx, aggregate); err != nil {
			return nil, nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, nil, err
	}

	return item, &advancedItem{
		order:     aggregate,
		stage:     owningStage,
		from:      from,
		completed: statusChanged && aggregate.IsCompleted(),
	}, nil
}

// resolveLostRace handles a compare-and-set that matched no row: another
// worker moved the item first. Finding the item already at the target counts
// as success, anything else is an invalid transition from the stored status.
func (h *AdvanceItemCommandHandler) resolveLostRace(
	ctx context.Context,
	orderRepo ports.OrderRepository,
	cmd AdvanceItemCommand,
) (*order.OrderItem, *advancedItem, error) {
	current, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, nil, err
	}
	item, err := current.Item(cmd.ProductID())
	if err != nil {
		return nil, nil, err
	}
	if item.Status() == cmd.Target() {
		return item, nil, nil
	}
	return nil, nil, &order.InvalidTransitionError{From: item.Status(), To: cmd.Target()}
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, store.ErrPendingRoleAssignment):
		return "pending_role"
	case errors.Is(err, store.ErrUnauthorized):
		return "unauthorized"
	case errors.Is(err, order.ErrInvalidTransition):
		return "invalid_transition"
	case errors.Is(err, errs.ErrObjectNotFound):
		return "not_found"
	default:
		return "error"
	}
}
