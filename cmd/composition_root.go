package cmd

import (
	"time"

	httpadapter "fulfillment/internal/adapters/in/http"
	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/jobs"
	"fulfillment/internal/pkg/logger"
	"fulfillment/internal/pkg/metrics"

	"gorm.io/gorm"
)

// Dependencies are the infrastructure pieces built by main. Rollup and
// Publisher stay nil when not configured.
type Dependencies struct {
	Rollup    ports.RevenueRollup
	Publisher ports.OrderEventPublisher
	Metrics   *metrics.Metrics
	Logger    *logger.Logger
	Location  *time.Location
}

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	deps       Dependencies
	calculator services.RevenueCalculator
	notifier   *commands.OrderNotifier
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, deps Dependencies) CompositionRoot {
	if deps.Logger == nil {
		deps.Logger = logger.Nop()
	}
	if deps.Location == nil {
		deps.Location = time.Local
	}
	return CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		deps:       deps,
		calculator: services.NewRevenueCalculator(deps.Location),
		notifier: commands.NewOrderNotifier(
			deps.Publisher, deps.Rollup, deps.Metrics, deps.Logger, deps.Location,
		),
	}
}

func (c *CompositionRoot) cartUoWFactory() commands.CartUoWFactory {
	return FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) checkoutUoWFactory() commands.CheckoutUoWFactory {
	return FuncCheckoutUoWFactory(func() commands.CheckoutUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) workflowUoWFactory() commands.WorkflowUoWFactory {
	return FuncWorkflowUoWFactory(func() commands.WorkflowUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) membershipUoWFactory() commands.MembershipUoWFactory {
	return FuncMembershipUoWFactory(func() commands.MembershipUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateAddCartEntryCommandHandler() commands.AddCartEntryCommandHandler {
	return commands.NewAddCartEntryCommandHandler(c.cartUoWFactory())
}

func (c *CompositionRoot) CreateRemoveCartEntryCommandHandler() commands.RemoveCartEntryCommandHandler {
	return commands.NewRemoveCartEntryCommandHandler(c.cartUoWFactory())
}

func (c *CompositionRoot) CreateCheckoutCommandHandler() commands.CheckoutCommandHandler {
	return commands.NewCheckoutCommandHandler(c.checkoutUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateCompletePaymentCommandHandler() commands.CompletePaymentCommandHandler {
	return commands.NewCompletePaymentCommandHandler(c.checkoutUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateAdvanceItemCommandHandler() commands.AdvanceItemCommandHandler {
	return commands.NewAdvanceItemCommandHandler(c.workflowUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateRequestJoinCommandHandler() commands.RequestJoinCommandHandler {
	return commands.NewRequestJoinCommandHandler(c.membershipUoWFactory())
}

func (c *CompositionRoot) CreateApproveWorkerCommandHandler() commands.ApproveWorkerCommandHandler {
	return commands.NewApproveWorkerCommandHandler(c.membershipUoWFactory())
}

func (c *CompositionRoot) CreateRemoveWorkerCommandHandler() commands.RemoveWorkerCommandHandler {
	return commands.NewRemoveWorkerCommandHandler(c.membershipUoWFactory())
}

func (c *CompositionRoot) CreateCreateRoleCommandHandler() commands.CreateRoleCommandHandler {
	return commands.NewCreateRoleCommandHandler(c.membershipUoWFactory())
}

func (c *CompositionRoot) CreateAssignRoleCommandHandler() commands.AssignRoleCommandHandler {
	return commands.NewAssignRoleCommandHandler(c.membershipUoWFactory())
}

func (c *CompositionRoot) CreateReconcileOrderStatusCommandHandler() commands.ReconcileOrderStatusCommandHandler {
	return commands.NewReconcileOrderStatusCommandHandler(c.orderUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateRebuildRevenueRollupCommandHandler() commands.RebuildRevenueRollupCommandHandler {
	return commands.NewRebuildRevenueRollupCommandHandler(c.orderUoWFactory(), c.deps.Rollup, c.calculator)
}

func (c *CompositionRoot) CreateGetAuthorizedStagesQueryHandler() queries.GetAuthorizedStagesQueryHandler {
	return queries.NewGetAuthorizedStagesQueryHandler(c.uowFactory.Create())
}

func (c *CompositionRoot) CreateGetStageQueueQueryHandler() queries.GetStageQueueQueryHandler {
	return queries.NewGetStageQueueQueryHandler(c.gormDB, c.uowFactory.Create())
}

func (c *CompositionRoot) CreateGetDailyReportQueryHandler() queries.GetDailyReportQueryHandler {
	return queries.NewGetDailyReportQueryHandler(c.uowFactory.Create(), c.calculator)
}

func (c *CompositionRoot) CreateGetDailyRevenueQueryHandler() queries.GetDailyRevenueQueryHandler {
	return queries.NewGetDailyRevenueQueryHandler(c.uowFactory.Create(), c.deps.Rollup, c.calculator)
}

// CreateHTTPServer wires every use case served by the API.
func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(httpadapter.Handlers{
		AddCartEntry:     c.CreateAddCartEntryCommandHandler(),
		RemoveCartEntry:  c.CreateRemoveCartEntryCommandHandler(),
		Checkout:         c.CreateCheckoutCommandHandler(),
		CompletePayment:  c.CreateCompletePaymentCommandHandler(),
		AdvanceItem:      c.CreateAdvanceItemCommandHandler(),
		RequestJoin:      c.CreateRequestJoinCommandHandler(),
		ApproveWorker:    c.CreateApproveWorkerCommandHandler(),
		RemoveWorker:     c.CreateRemoveWorkerCommandHandler(),
		CreateRole:       c.CreateCreateRoleCommandHandler(),
		AssignRole:       c.CreateAssignRoleCommandHandler(),
		AuthorizedStages: c.CreateGetAuthorizedStagesQueryHandler(),
		StageQueue:       c.CreateGetStageQueueQueryHandler(),
		DailyReport:      c.CreateGetDailyReportQueryHandler(),
		DailyRevenue:     c.CreateGetDailyRevenueQueryHandler(),
	}, c.deps.Location, c.deps.Logger)
}

// CreateJobManager builds the scheduled jobs. The rollup rebuild is only
// scheduled when a rollup is configured.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	reconcileHandler := c.CreateReconcileOrderStatusCommandHandler()
	reconcileJob := jobs.NewReconcileOrderStatusJob(
		&reconcileHandler,
		c.cfg.Jobs.ReconcileSchedule,
		c.cfg.Jobs.ReconcileBatchSize,
		c.deps.Logger,
		c.deps.Metrics,
	)

	var rebuildJob *jobs.RevenueRollupRebuildJob
	if c.deps.Rollup != nil {
		rebuildHandler := c.CreateRebuildRevenueRollupCommandHandler()
		rebuildJob = jobs.NewRevenueRollupRebuildJob(
			c.uowFactory.Create().StoreRepository(),
			&rebuildHandler,
			c.cfg.Jobs.RollupRebuildSchedule,
			c.deps.Location,
			c.deps.Logger,
			c.deps.Metrics,
		)
	}

	return jobs.NewJobManager(reconcileJob, rebuildJob)
}

type FuncCartUoWFactory func() commands.CartUoW

func (f FuncCartUoWFactory) Create() commands.CartUoW {
	return f()
}

type FuncCheckoutUoWFactory func() commands.CheckoutUoW

func (f FuncCheckoutUoWFactory) Create() commands.CheckoutUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncWorkflowUoWFactory func() commands.WorkflowUoW

func (f FuncWorkflowUoWFactory) Create() commands.WorkflowUoW {
	return f()
}

type FuncMembershipUoWFactory func() commands.MembershipUoW

func (f FuncMembershipUoWFactory) Create() commands.MembershipUoW {
	return f()
}
