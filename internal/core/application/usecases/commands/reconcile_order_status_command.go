package commands

import (
	"errors"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrReconcileOrderStatusCommandIsNotConstructed = errors.New(
	"ReconcileOrderStatusCommand must be created via NewReconcileOrderStatusCommand constructor",
)

// ReconcileOrderStatusCommand recomputes the aggregate status of up to batchSize
// open orders.
type ReconcileOrderStatusCommand struct { //nolint:recvcheck //using for validation
	batchSize int

	guard guard.ConstructorGuard
}

func NewReconcileOrderStatusCommand(batchSize int) (ReconcileOrderStatusCommand, error) {
	if batchSize <= 0 {
		return ReconcileOrderStatusCommand{}, errs.NewValueIsOutOfRangeError("batchSize", batchSize, 1, "unbounded")
	}
	return ReconcileOrderStatusCommand{batchSize: batchSize, guard: guard.NewConstructorGuard()}, nil
}

func (c ReconcileOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrReconcileOrderStatusCommandIsNotConstructed)
}

func (c ReconcileOrderStatusCommand) BatchSize() int {
	return c.batchSize
}
