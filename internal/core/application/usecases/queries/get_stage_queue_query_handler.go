package queries

import (
	"context"

	"fulfillment/internal/core/application/usecases/access"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetStageQueueQueryHandler reads stage queues straight from the order tables.
// The caller must hold the requested stage.
type GetStageQueueQueryHandler struct {
	db     *gorm.DB
	repos  Repositories
	stages access.StageLoader
}

func NewGetStageQueueQueryHandler(db *gorm.DB, repos Repositories) GetStageQueueQueryHandler {
	return GetStageQueueQueryHandler{db: db, repos: repos, stages: access.NewStageLoader()}
}

func (h GetStageQueueQueryHandler) Handle(
	ctx context.Context,
	query GetStageQueueQuery,
) ([]GetStageQueueQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	_, err := h.stages.Require(ctx, h.repos.StoreRepository(), h.repos.MembershipRepository(),
		query.storeID, query.userID, query.stage)
	if err != nil {
		return nil, err
	}

	statuses := make([]int, 0, 4)
	for _, s := range query.stage.Queue() {
		statuses = append(statuses, int(s))
	}

	items := make([]GetStageQueueQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			i.order_id,
			o.client_id,
			i.product_id,
			i.name,
			i.description,
			i.photo_ref,
			i.quantity,
			i.status,
			o.payment_method,
			o.purchased_at
		FROM order_items i
		JOIN orders o ON o.id = i.order_id
		WHERE i.store_id = ? AND i.status IN ?
		ORDER BY o.purchased_at, i.order_id, i.product_id
	`, query.storeID.Bytes(), statuses).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			item                         GetStageQueueQueryResponse
			orderID, clientID, productID uuid.UUID
			status                       int
		)

		err = rows.Scan(
			&orderID,
			&clientID,
			&productID,
			&item.Name,
			&item.Description,
			&item.PhotoRef,
			&item.Quantity,
			&status,
			&item.PaymentMethod,
			&item.PurchasedAt,
		)
		if err != nil {
			return nil, err
		}

		if item.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
			return nil, err
		}
		if item.ClientID, err = kernel.UUIDFromBytes(clientID[:]); err != nil {
			return nil, err
		}
		if item.ProductID, err = kernel.UUIDFromBytes(productID[:]); err != nil {
			return nil, err
		}
		item.Status = order.ItemStatus(status)
		item.Name = displayName(item.Name)
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
