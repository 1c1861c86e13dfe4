// Package http exposes the fulfillment use cases as a JSON API on echo.
// Callers are identified by the X-User-ID header set by the authenticating
// gateway in front of the service.
package http

import (
	"net/http"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/logger"

	"github.com/labstack/echo/v4"
)

const userIDHeader = "X-User-ID"

// Handlers bundles the use cases served over HTTP.
type Handlers struct {
	AddCartEntry    commands.AddCartEntryCommandHandler
	RemoveCartEntry commands.RemoveCartEntryCommandHandler
	Checkout        commands.CheckoutCommandHandler
	CompletePayment commands.CompletePaymentCommandHandler
	AdvanceItem     commands.AdvanceItemCommandHandler
	RequestJoin     commands.RequestJoinCommandHandler
	ApproveWorker   commands.ApproveWorkerCommandHandler
	RemoveWorker    commands.RemoveWorkerCommandHandler
	CreateRole      commands.CreateRoleCommandHandler
	AssignRole      commands.AssignRoleCommandHandler

	AuthorizedStages queries.GetAuthorizedStagesQueryHandler
	StageQueue       queries.GetStageQueueQueryHandler
	DailyReport      queries.GetDailyReportQueryHandler
	DailyRevenue     queries.GetDailyRevenueQueryHandler
}

// Server maps HTTP requests onto command and query handlers.
type Server struct {
	h   Handlers
	loc *time.Location
	now func() time.Time
	log *logger.Logger
}

// NewServer creates the API server. loc picks "today" for reports requested
// without a date; log receives the causes hidden behind 500 responses.
func NewServer(h Handlers, loc *time.Location, log *logger.Logger) *Server {
	if loc == nil {
		loc = time.Local
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Server{h: h, loc: loc, now: time.Now, log: log.Component("http")}
}

// RegisterRoutes mounts the health check and the /api/v1 routes on e.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	api := e.Group("/api/v1")

	api.POST("/cart/entries", s.AddCartEntry)
	api.DELETE("/cart/entries/:storeId/:productId", s.RemoveCartEntry)
	api.POST("/checkout", s.Checkout)
	api.POST("/stores/:storeId/payments", s.CompletePayment)

	api.GET("/stores/:storeId/stages", s.GetAuthorizedStages)
	api.GET("/stores/:storeId/queues/:stage", s.GetStageQueue)
	api.POST("/stores/:storeId/orders/:orderId/items/:productId/advance", s.AdvanceItem)

	api.GET("/stores/:storeId/reports/daily", s.GetDailyReport)
	api.GET("/stores/:storeId/revenue/daily", s.GetDailyRevenue)

	api.POST("/join-requests", s.RequestJoin)
	api.POST("/stores/:storeId/roles", s.CreateRole)
	api.POST("/stores/:storeId/workers/:userId/approve", s.ApproveWorker)
	api.PUT("/stores/:storeId/workers/:userId/role", s.AssignRole)
	api.DELETE("/stores/:storeId/workers/:userId", s.RemoveWorker)
}

// caller reads the acting user from the X-User-ID header.
func caller(c echo.Context) (kernel.UUID, error) {
	raw := c.Request().Header.Get(userIDHeader)
	if raw == "" {
		return kernel.UUID{}, errMissingIdentity
	}
	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, errMissingIdentity
	}
	return id, nil
}

func pathUUID(c echo.Context, name string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(c.Param(name))
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return id, nil
}

// dateParam parses ?date=YYYY-MM-DD, defaulting to today in the server's zone.
func (s *Server) dateParam(c echo.Context) (kernel.Date, error) {
	raw := c.QueryParam("date")
	if raw == "" {
		return kernel.DateOf(s.now(), s.loc), nil
	}
	return kernel.ParseDate(raw)
}
