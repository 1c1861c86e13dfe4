package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/store"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrGetStageQueueQueryIsNotConstructed = errors.New(
	"GetStageQueueQuery must be created via NewGetStageQueueQuery constructor",
)

// GetStageQueueQuery lists the items waiting for a stage at a store: RECEIVED
// items for Recepcionista, QUEUED and PREPARING for Cocinero, READY_FOR_PICKUP
// for Despachador, and every open item for Administrador.
//
// Example:
//
//	query, err := NewGetStageQueueQuery(userID, storeID, store.Cocinero)
//	if err != nil {
//	    return err
//	}
//	items, err := handler.Handle(ctx, query)
//	for _, item := range items {
//	    fmt.Printf("%s x%d (%s)\n", item.Name, item.Quantity, item.Status)
//	}
type GetStageQueueQuery struct {
	userID  kernel.UUID
	storeID kernel.UUID
	stage   store.Stage

	guard guard.ConstructorGuard
}

func NewGetStageQueueQuery(userID, storeID kernel.UUID, stage store.Stage) (GetStageQueueQuery, error) {
	var stageErr error
	if err := stage.Validate(); err != nil {
		stageErr = err
	} else if len(stage.Queue()) == 0 {
		stageErr = errs.NewValueIsInvalidErrorWithCause("stage", errors.New(stage.String()+" has no item queue"))
	}

	if err := errors.Join(userID.Validate(), storeID.Validate(), stageErr); err != nil {
		return GetStageQueueQuery{}, err
	}
	return GetStageQueueQuery{userID: userID, storeID: storeID, stage: stage, guard: guard.NewConstructorGuard()}, nil
}

func (q GetStageQueueQuery) Validate() error {
	return q.guard.Validate(ErrGetStageQueueQueryIsNotConstructed)
}

// GetStageQueueQueryResponse is one item of the queue, oldest purchase first.
type GetStageQueueQueryResponse struct {
	OrderID       kernel.UUID
	ClientID      kernel.UUID
	ProductID     kernel.UUID
	Name          string
	Description   string
	PhotoRef      string
	Quantity      int
	Status        order.ItemStatus
	PaymentMethod string
	PurchasedAt   time.Time
}
