package http

import (
	"errors"
	"net/http"
	"strings"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// AddCartEntry handles POST /api/v1/cart/entries.
func (s *Server) AddCartEntry(c echo.Context) error {
	clientID, err := caller(c)
	if err != nil {
		return s.fail(c, err)
	}

	var req CartEntryRequest
	if err = c.Bind(&req); err != nil {
		return s.fail(c, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	storeID, productID, details, err := req.details()
	if err != nil {
		return s.fail(c, err)
	}
	details.ProductID = productID

	cmd, err := commands.NewAddCartEntryCommand(clientID, storeID, details)
	if err != nil {
		return s.fail(c, err)
	}

	entry, err := s.h.AddCartEntry.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, cartEntryFrom(entry))
}

// RemoveCartEntry handles DELETE /api/v1/cart/entries/:storeId/:productId.
func (s *Server) RemoveCartEntry(c echo.Context) error {
	clientID, err := caller(c)
	if err != nil {
		return s.fail(c, err)
	}
	storeID, storeErr := pathUUID(c, "storeId")
	productID, productErr := pathUUID(c, "productId")
	if err = errors.Join(storeErr, productErr); err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewRemoveCartEntryCommand(clientID, storeID, productID)
	if err != nil {
		return s.fail(c, err)
	}
	if err = s.h.RemoveCartEntry.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Checkout handles POST /api/v1/checkout. When only some stores failed the
// response is 207 with the created orders and the failed stores.
func (s *Server) Checkout(c echo.Context) error {
	clientID, err := caller(c)
	if err != nil {
		return s.fail(c, err)
	}

	var req CheckoutRequest
	if err = c.Bind(&req); err != nil {
		return s.fail(c, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	cmd, err := commands.NewCheckoutCommand(clientID, req.PaymentMethod)
	if err != nil {
		return s.fail(c, err)
	}

	result, err := s.h.Checkout.Handle(c.Request().Context(), cmd)
	var partial *commands.PartialCheckoutFailureError
	switch {
	case errors.As(err, &partial) && len(result.Orders) > 0:
		return c.JSON(http.StatusMultiStatus, checkoutResponse(result, err))
	case err != nil:
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, checkoutResponse(result, nil))
}

// CompletePayment handles POST /api/v1/stores/:storeId/payments.
func (s *Server) CompletePayment(c echo.Context) error {
	clientID, err := caller(c)
	if err != nil {
		return s.fail(c, err)
	}
	storeID, err := pathUUID(c, "storeId")
	if err != nil {
		return s.fail(c, err)
	}

	var req PaymentRequest
	if err = c.Bind(&req); err != nil {
		return s.fail(c, errs.NewValueIsInvalidErrorWithCause("body", err))
	}
	amount, err := kernel.MoneyFromString(req.Amount)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewCompletePaymentCommand(clientID, storeID, amount, req.PaymentMethod, req.PaymentReference)
	if err != nil {
		return s.fail(c, err)
	}

	placed, err := s.h.CompletePayment.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, orderFrom(placed))
}

func (r CartEntryRequest) details() (kernel.UUID, kernel.UUID, order.ItemDetails, error) {
	storeID, storeErr := kernel.UUIDFromString(r.StoreID)
	if storeErr != nil {
		storeErr = errs.NewValueIsInvalidErrorWithCause("storeId", storeErr)
	}
	productID, productErr := kernel.UUIDFromString(r.ProductID)
	if productErr != nil {
		productErr = errs.NewValueIsInvalidErrorWithCause("productId", productErr)
	}
	price, priceErr := kernel.MoneyFromString(r.UnitPrice)
	discount, discountErr := parseDiscount(r.Discount)

	if err := errors.Join(storeErr, productErr, priceErr, discountErr); err != nil {
		return kernel.UUID{}, kernel.UUID{}, order.ItemDetails{}, err
	}
	return storeID, productID, order.ItemDetails{
		Name:        r.Name,
		Description: r.Description,
		PhotoRef:    r.PhotoRef,
		Quantity:    r.Quantity,
		UnitPrice:   price,
		Discount:    discount,
	}, nil
}

func parseDiscount(raw string) (kernel.Percent, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return kernel.ZeroPercent(), nil
	}
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return kernel.Percent{}, errs.NewValueIsInvalidErrorWithCause("discount", err)
	}
	return kernel.NewPercent(value)
}

func checkoutResponse(result commands.CheckoutResult, err error) CheckoutResponse {
	resp := CheckoutResponse{
		Orders:       make([]Order, 0, len(result.Orders)),
		FailedStores: uuidStrings(result.FailedStores),
	}
	for _, o := range result.Orders {
		resp.Orders = append(resp.Orders, orderFrom(o))
	}
	if err != nil {
		resp.Error = err.Error()
	}
	return resp
}
