package queries

import (
	"context"
	"errors"

	"fulfillment/internal/core/application/usecases/access"
	"fulfillment/internal/core/domain/model/store"
)

type GetAuthorizedStagesQueryHandler struct {
	repos  Repositories
	stages access.StageLoader
}

func NewGetAuthorizedStagesQueryHandler(repos Repositories) GetAuthorizedStagesQueryHandler {
	return GetAuthorizedStagesQueryHandler{repos: repos, stages: access.NewStageLoader()}
}

// Handle reports a pending member as Pending with no stages rather than as an
// error. Users that are not members get store.ErrUnauthorized.
func (h GetAuthorizedStagesQueryHandler) Handle(
	ctx context.Context,
	query GetAuthorizedStagesQuery,
) (GetAuthorizedStagesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetAuthorizedStagesQueryResponse{}, err
	}

	grant, err := h.stages.Load(ctx, h.repos.StoreRepository(), h.repos.MembershipRepository(), query.storeID, query.userID)
	if err != nil && !errors.Is(err, store.ErrPendingRoleAssignment) {
		return GetAuthorizedStagesQueryResponse{}, err
	}

	response := GetAuthorizedStagesQueryResponse{
		StoreID:   query.storeID,
		StoreName: displayName(grant.Store.Name()),
		Stages:    grant.Stages.Slice(),
		Pending:   err != nil,
	}
	return response, nil
}
