package http

import (
	"errors"
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/store"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

var errMissingIdentity = errors.New("missing or malformed " + userIDHeader + " header")

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// statusFor maps the error taxonomy onto HTTP status codes. Order matters:
// the most specific sentinels are checked first.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errMissingIdentity):
		return http.StatusUnauthorized
	case errors.Is(err, store.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, store.ErrPendingRoleAssignment),
		errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, errs.ErrVersionIsInvalid),
		errors.Is(err, errs.ErrObjectExists):
		return http.StatusConflict
	case errors.Is(err, commands.ErrCartIsEmpty),
		errors.Is(err, commands.ErrPaymentAmountMismatch):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// fail writes the error body. Unexpected errors are logged with the request
// attached and answered with a generic message.
func (s *Server) fail(c echo.Context, err error) error {
	code := statusFor(err)
	message := err.Error()
	if code == http.StatusInternalServerError {
		ctx := s.log.WithField(c.Request().Context(), "method", c.Request().Method)
		ctx = s.log.WithField(ctx, "path", c.Request().URL.Path)
		if userID := c.Request().Header.Get(userIDHeader); userID != "" {
			ctx = s.log.WithUserID(ctx, userID)
		}
		s.log.Error(ctx, "request failed", err)
		message = http.StatusText(code)
	}
	return c.JSON(code, Error{Code: code, Message: message})
}
