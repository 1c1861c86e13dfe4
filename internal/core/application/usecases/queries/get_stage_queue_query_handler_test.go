package queries_test

import (
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/adapters/out/postgres/testdb"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/store"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type queueFixture struct {
	db      *gorm.DB
	repos   ports.UnitOfWork
	store   *store.Store
	cook    kernel.UUID
	cashier kernel.UUID
}

func newQueueFixture(t *testing.T) queueFixture {
	t.Helper()
	ctx := t.Context()
	db := testdb.SQLite(t)
	repos := postgres.NewGormUnitOfWorkFactory(db).Create()

	st := newTestStore(t, "Panadería La Espiga")
	require.NoError(t, repos.StoreRepository().Add(ctx, st))

	f := queueFixture{db: db, repos: repos, store: st, cook: kernel.NewUUID(), cashier: kernel.NewUUID()}
	f.addWorker(t, f.cook, "Cocina", store.Cocinero)
	f.addWorker(t, f.cashier, "Caja", store.Recepcionista)
	return f
}

func (f queueFixture) addWorker(t *testing.T, userID kernel.UUID, roleName string, stage store.Stage) {
	t.Helper()
	ctx := t.Context()
	role, err := store.NewRole(kernel.NewUUID(), f.store.ID(), roleName, "", "#336699",
		store.NewStageSet(stage), f.store.OwnerID())
	require.NoError(t, err)
	require.NoError(t, f.repos.StoreRepository().AddRole(ctx, role))

	roleID := role.ID()
	membership, err := store.RestoreMembership(f.store.ID(), userID, &roleID, time.Now())
	require.NoError(t, err)
	require.NoError(t, f.repos.MembershipRepository().Add(ctx, membership))
}

type queueItem struct {
	name   string
	status order.ItemStatus
}

func (f queueFixture) addOrder(t *testing.T, storeID kernel.UUID, purchasedAt time.Time, lines ...queueItem) *order.Order {
	t.Helper()
	id := kernel.NewUUID()
	items := make([]*order.OrderItem, 0, len(lines))
	statuses := make([]order.ItemStatus, 0, len(lines))
	for _, line := range lines {
		item, err := order.RestoreOrderItem(id, storeID, order.ItemDetails{
			ProductID: kernel.NewUUID(),
			Name:      line.name,
			Quantity:  2,
			UnitPrice: kernel.MustMoney("3.00"),
			Discount:  kernel.ZeroPercent(),
		}, line.status)
		require.NoError(t, err)
		items = append(items, item)
		statuses = append(statuses, line.status)
	}

	o, err := order.RestoreOrder(id, kernel.NewUUID(), storeID, "Nequi", "", purchasedAt,
		order.ProjectStatus(statuses), kernel.MustMoney("6.00"), items)
	require.NoError(t, err)
	require.NoError(t, f.repos.OrderRepository().Add(t.Context(), o))
	return o
}

func TestGetStageQueueQueryHandler_Handle_CookQueue(t *testing.T) {
	ctx := t.Context()
	f := newQueueFixture(t)
	base := time.Date(2024, time.March, 14, 13, 0, 0, 0, time.UTC)

	later := f.addOrder(t, f.store.ID(), base.Add(time.Hour),
		queueItem{name: "Tinto", status: order.ItemReceived},
		queueItem{name: "", status: order.ItemQueued},
	)
	earlier := f.addOrder(t, f.store.ID(), base,
		queueItem{name: "Buñuelo", status: order.ItemPreparing},
		queueItem{name: "Avena", status: order.ItemDelivered},
	)
	f.addOrder(t, kernel.NewUUID(), base, queueItem{name: "Ajena", status: order.ItemQueued})

	query, err := queries.NewGetStageQueueQuery(f.cook, f.store.ID(), store.Cocinero)
	require.NoError(t, err)

	items, err := queries.NewGetStageQueueQueryHandler(f.db, f.repos).Handle(ctx, query)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, earlier.ID(), items[0].OrderID)
	assert.Equal(t, "Buñuelo", items[0].Name)
	assert.Equal(t, order.ItemPreparing, items[0].Status)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, "Nequi", items[0].PaymentMethod)
	assert.True(t, base.Equal(items[0].PurchasedAt))

	assert.Equal(t, later.ID(), items[1].OrderID)
	assert.Equal(t, later.ClientID(), items[1].ClientID)
	assert.Equal(t, queries.UnknownLabel, items[1].Name)
	assert.Equal(t, order.ItemQueued, items[1].Status)
}

func TestGetStageQueueQueryHandler_Handle_AdministradorSeesEveryOpenItem(t *testing.T) {
	ctx := t.Context()
	f := newQueueFixture(t)
	base := time.Date(2024, time.March, 14, 13, 0, 0, 0, time.UTC)
	f.addOrder(t, f.store.ID(), base,
		queueItem{name: "Tinto", status: order.ItemReceived},
		queueItem{name: "Pan", status: order.ItemReadyForPickup},
		queueItem{name: "Avena", status: order.ItemDelivered},
	)

	query, err := queries.NewGetStageQueueQuery(f.store.OwnerID(), f.store.ID(), store.Administrador)
	require.NoError(t, err)

	items, err := queries.NewGetStageQueueQueryHandler(f.db, f.repos).Handle(ctx, query)
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestGetStageQueueQueryHandler_Handle_EmptyQueue(t *testing.T) {
	f := newQueueFixture(t)

	query, err := queries.NewGetStageQueueQuery(f.cashier, f.store.ID(), store.Recepcionista)
	require.NoError(t, err)

	items, err := queries.NewGetStageQueueQueryHandler(f.db, f.repos).Handle(t.Context(), query)
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestGetStageQueueQueryHandler_Handle_RequiresStage(t *testing.T) {
	f := newQueueFixture(t)

	query, err := queries.NewGetStageQueueQuery(f.cashier, f.store.ID(), store.Cocinero)
	require.NoError(t, err)

	_, err = queries.NewGetStageQueueQueryHandler(f.db, f.repos).Handle(t.Context(), query)
	require.ErrorIs(t, err, store.ErrUnauthorized)

	query, err = queries.NewGetStageQueueQuery(kernel.NewUUID(), kernel.NewUUID(), store.Cocinero)
	require.NoError(t, err)
	_, err = queries.NewGetStageQueueQueryHandler(f.db, f.repos).Handle(t.Context(), query)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestNewGetStageQueueQuery_RejectsStageWithoutQueue(t *testing.T) {
	_, err := queries.NewGetStageQueueQuery(kernel.NewUUID(), kernel.NewUUID(), store.Contabilidad)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
