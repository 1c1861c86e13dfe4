package http

import (
	"net/http"

	"fulfillment/internal/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// RequestLogger logs one line per request with the caller attached, warning
// on server errors.
func RequestLogger(log *logger.Logger) echo.MiddlewareFunc {
	log = log.Component("http")
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURIPath: true,
		LogStatus:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			ctx := c.Request().Context()
			ctx = log.WithField(ctx, "method", v.Method)
			ctx = log.WithField(ctx, "path", v.URIPath)
			ctx = log.WithField(ctx, "status", v.Status)
			ctx = log.WithField(ctx, "latency_ms", v.Latency.Milliseconds())
			if userID := c.Request().Header.Get(userIDHeader); userID != "" {
				ctx = log.WithUserID(ctx, userID)
			}

			if v.Status >= http.StatusInternalServerError {
				log.Warn(ctx, "request failed", v.Error)
				return nil
			}
			log.Info(ctx, "request")
			return nil
		},
	})
}
