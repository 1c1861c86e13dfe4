package http

import (
	"errors"
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/store"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// GetAuthorizedStages handles GET /api/v1/stores/:storeId/stages.
func (s *Server) GetAuthorizedStages(c echo.Context) error {
	userID, err := caller(c)
	if err != nil {
		return s.fail(c, err)
	}
	storeID, err := pathUUID(c, "storeId")
	if err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewGetAuthorizedStagesQuery(userID, storeID)
	if err != nil {
		return s.fail(c, err)
	}
	resp, err := s.h.AuthorizedStages.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, AuthorizedStages{
		StoreID:   resp.StoreID.String(),
		StoreName: resp.StoreName,
		Stages:    stageNames(resp.Stages),
		Pending:   resp.Pending,
	})
}

// GetStageQueue handles GET /api/v1/stores/:storeId/queues/:stage.
func (s *Server) GetStageQueue(c echo.Context) error {
	userID, err := caller(c)
	if err != nil {
		return s.fail(c, err)
	}
	storeID, err := pathUUID(c, "storeId")
	if err != nil {
		return s.fail(c, err)
	}
	stage, err := store.ParseStage(c.Param("stage"))
	if err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewGetStageQueueQuery(userID, storeID, stage)
	if err != nil {
		return s.fail(c, err)
	}
	items, err := s.h.StageQueue.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	resp := make([]QueueItem, 0, len(items))
	for _, item := range items {
		resp = append(resp, QueueItem{
			OrderID:       item.OrderID.String(),
			ClientID:      item.ClientID.String(),
			ProductID:     item.ProductID.String(),
			Name:          item.Name,
			Description:   item.Description,
			PhotoRef:      item.PhotoRef,
			Quantity:      item.Quantity,
			Status:        item.Status.Code(),
			StatusLabel:   item.Status.String(),
			PaymentMethod: item.PaymentMethod,
			PurchasedAt:   item.PurchasedAt,
		})
	}
	return c.JSON(http.StatusOK, resp)
}

// AdvanceItem handles POST /api/v1/stores/:storeId/orders/:orderId/items/:productId/advance.
func (s *Server) AdvanceItem(c echo.Context) error {
	userID, err := caller(c)
	if err != nil {
		return s.fail(c, err)
	}
	storeID, storeErr := pathUUID(c, "storeId")
	orderID, orderErr := pathUUID(c, "orderId")
	productID, productErr := pathUUID(c, "productId")
	if err = errors.Join(storeErr, orderErr, productErr); err != nil {
		return s.fail(c, err)
	}

	var req AdvanceItemRequest
	if err = c.Bind(&req); err != nil {
		return s.fail(c, errs.NewValueIsInvalidErrorWithCause("body", err))
	}
	target, err := order.ParseItemStatus(req.Target)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewAdvanceItemCommand(userID, storeID, orderID, productID, target)
	if err != nil {
		return s.fail(c, err)
	}
	item, err := s.h.AdvanceItem.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, OrderItem{
		ProductID:   item.ProductID().String(),
		Name:        item.Name(),
		Description: item.Description(),
		PhotoRef:    item.PhotoRef(),
		Quantity:    item.Quantity(),
		UnitPrice:   item.UnitPrice().String(),
		Discount:    item.Discount().Decimal().String(),
		LineTotal:   item.LineTotal().String(),
		Status:      item.Status().Code(),
		StatusLabel: item.Status().String(),
	})
}
