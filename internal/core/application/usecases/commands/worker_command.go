package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrApproveWorkerCommandIsNotConstructed = errors.New(
		"ApproveWorkerCommand must be created via NewApproveWorkerCommand constructor",
	)
	ErrRemoveWorkerCommandIsNotConstructed = errors.New(
		"RemoveWorkerCommand must be created via NewRemoveWorkerCommand constructor",
	)
)

// workerRef names a worker of a store and the owner acting on them.
type workerRef struct {
	ownerID kernel.UUID
	storeID kernel.UUID
	userID  kernel.UUID
}

func newWorkerRef(ownerID, storeID, userID kernel.UUID) (workerRef, error) {
	if err := errors.Join(ownerID.Validate(), storeID.Validate(), userID.Validate()); err != nil {
		return workerRef{}, err
	}
	return workerRef{ownerID: ownerID, storeID: storeID, userID: userID}, nil
}

func (r workerRef) OwnerID() kernel.UUID {
	return r.ownerID
}

func (r workerRef) StoreID() kernel.UUID {
	return r.storeID
}

func (r workerRef) UserID() kernel.UUID {
	return r.userID
}

// ApproveWorkerCommand turns a pending join request into a membership
// without role.
type ApproveWorkerCommand struct { //nolint:recvcheck //using for validation
	workerRef

	guard guard.ConstructorGuard
}

func NewApproveWorkerCommand(ownerID, storeID, userID kernel.UUID) (ApproveWorkerCommand, error) {
	ref, err := newWorkerRef(ownerID, storeID, userID)
	if err != nil {
		return ApproveWorkerCommand{}, err
	}
	return ApproveWorkerCommand{workerRef: ref, guard: guard.NewConstructorGuard()}, nil
}

func (c ApproveWorkerCommand) Validate() error {
	return c.guard.Validate(ErrApproveWorkerCommandIsNotConstructed)
}

// RemoveWorkerCommand revokes a membership. The worker loses every stage at once.
type RemoveWorkerCommand struct { //nolint:recvcheck //using for validation
	workerRef

	guard guard.ConstructorGuard
}

func NewRemoveWorkerCommand(ownerID, storeID, userID kernel.UUID) (RemoveWorkerCommand, error) {
	ref, err := newWorkerRef(ownerID, storeID, userID)
	if err != nil {
		return RemoveWorkerCommand{}, err
	}
	return RemoveWorkerCommand{workerRef: ref, guard: guard.NewConstructorGuard()}, nil
}

func (c RemoveWorkerCommand) Validate() error {
	return c.guard.Validate(ErrRemoveWorkerCommandIsNotConstructed)
}
