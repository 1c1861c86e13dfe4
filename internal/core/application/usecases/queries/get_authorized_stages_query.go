package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/store"
	"fulfillment/internal/pkg/guard"
)

var ErrGetAuthorizedStagesQueryIsNotConstructed = errors.New(
	"GetAuthorizedStagesQuery must be created via NewGetAuthorizedStagesQuery constructor",
)

// GetAuthorizedStagesQuery asks which stages a user may act on at a store.
type GetAuthorizedStagesQuery struct {
	userID  kernel.UUID
	storeID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetAuthorizedStagesQuery(userID, storeID kernel.UUID) (GetAuthorizedStagesQuery, error) {
	if err := errors.Join(userID.Validate(), storeID.Validate()); err != nil {
		return GetAuthorizedStagesQuery{}, err
	}
	return GetAuthorizedStagesQuery{userID: userID, storeID: storeID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetAuthorizedStagesQuery) Validate() error {
	return q.guard.Validate(ErrGetAuthorizedStagesQueryIsNotConstructed)
}

// GetAuthorizedStagesQueryResponse lists the stages in enum order. Pending is
// true for members still waiting for a role; they get no stages.
type GetAuthorizedStagesQueryResponse struct {
	StoreID   kernel.UUID
	StoreName string
	Stages    []store.Stage
	Pending   bool
}
