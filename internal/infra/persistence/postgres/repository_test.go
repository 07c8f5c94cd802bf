package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/Yakorrr/merchandising-management-system/internal/domain/entity"
	domainerrors "github.com/Yakorrr/merchandising-management-system/internal/domain/errors"
	"github.com/Yakorrr/merchandising-management-system/internal/domain/repository"
	"github.com/Yakorrr/merchandising-management-system/internal/infra/persistence/sqlitetest"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixture struct {
	db       *gorm.DB
	user     *entity.User
	store    *entity.Store
	store2   *entity.Store
	product  *entity.Product
	product2 *entity.Product
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctx := context.Background()
	db := sqlitetest.Open(t)
	f := &fixture{db: db}

	f.user = &entity.User{Username: "merch1", Role: entity.RoleMerchandiser, PasswordHash: "hash"}
	require.NoError(t, NewUserRepository(db).Create(ctx, f.user))

	lat, lng := 50.45, 30.52
	stores := NewStoreRepository(db)
	f.store = &entity.Store{Name: "Alpha", Address: "1 Main St", Latitude: &lat, Longitude: &lng}
	f.store2 = &entity.Store{Name: "Beta", Address: "2 Side St"}
	require.NoError(t, stores.Create(ctx, f.store))
	require.NoError(t, stores.Create(ctx, f.store2))

	products := NewProductRepository(db)
	f.product = &entity.Product{Name: "Widget", Price: decimal.RequireFromString("10.00")}
	f.product2 = &entity.Product{Name: "Gadget", Price: decimal.RequireFromString("5.00")}
	require.NoError(t, products.Create(ctx, f.product))
	require.NoError(t, products.Create(ctx, f.product2))

	return f
}

func (f *fixture) newOrder(t *testing.T) *entity.Order {
	t.Helper()

	order := &entity.Order{
		StoreID:        f.store.ID,
		MerchandiserID: f.user.ID,
		OrderDate:      time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Status:         entity.OrderStatusCreated,
	}
	require.NoError(t, NewOrderRepository(f.db).CreateOrder(context.Background(), order))

	return order
}

func TestUserRepository(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	repo := NewUserRepository(f.db)

	got, err := repo.FindByUsername(ctx, "merch1")
	require.NoError(t, err)
	assert.Equal(t, f.user.ID, got.ID)
	assert.Equal(t, entity.RoleMerchandiser, got.Role)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)

	err = repo.Create(ctx, &entity.User{Username: "merch1", Role: entity.RoleManager, PasswordHash: "x"})
	assert.ErrorIs(t, err, domainerrors.ErrConflict)
}

func TestStoreRepository_ListAndFilter(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	repo := NewStoreRepository(f.db)

	all, err := repo.List(ctx, repository.StoreFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	located, err := repo.List(ctx, repository.StoreFilter{WithLocation: true})
	require.NoError(t, err)
	require.Len(t, located, 1)
	assert.Equal(t, "Alpha", located[0].Name)

	searched, err := repo.List(ctx, repository.StoreFilter{Search: "side"})
	require.NoError(t, err)
	require.Len(t, searched, 1)
	assert.Equal(t, f.store2.ID, searched[0].ID)

	found, err := repo.FindByIDs(ctx, []uuid.UUID{f.store.ID, uuid.New()})
	require.NoError(t, err)
	assert.Len(t, found, 1)
}

func TestStoreRepository_DeleteReferenced(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.newOrder(t)

	err := NewStoreRepository(f.db).Delete(ctx, f.store.ID)
	assert.ErrorIs(t, err, domainerrors.ErrReferencedResource)

	require.NoError(t, NewStoreRepository(f.db).Delete(ctx, f.store2.ID))
	assert.ErrorIs(t, NewStoreRepository(f.db).Delete(ctx, f.store2.ID), domainerrors.ErrStoreNotFound)
}

func TestProductRepository_UpdateMissing(t *testing.T) {
	f := newFixture(t)

	err := NewProductRepository(f.db).Update(context.Background(), &entity.Product{ID: uuid.New(), Name: "x"})
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestOrderRepository_ItemsAreScopedToOrder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	repo := NewOrderRepository(f.db)
	order := f.newOrder(t)
	other := f.newOrder(t)

	item, err := repo.CreateOrderItem(ctx, order.ID, entity.OrderItemSpec{
		ProductID: f.product.ID, Quantity: 2, PricePerUnit: f.product.Price,
	})
	require.NoError(t, err)
	assert.Equal(t, "Widget", item.ProductName)

	_, err = repo.UpdateOrderItem(ctx, other.ID, item.ID, entity.OrderItemSpec{
		ProductID: f.product.ID, Quantity: 9, PricePerUnit: f.product.Price,
	})
	assert.ErrorIs(t, err, domainerrors.ErrChildNotFound)

	require.NoError(t, repo.DeleteOrderItems(ctx, other.ID, []uuid.UUID{item.ID}))

	items, err := repo.ListOrderItems(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestOrderRepository_FindWithItemsAndTotal(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	repo := NewOrderRepository(f.db)
	order := f.newOrder(t)

	_, err := repo.CreateOrderItem(ctx, order.ID, entity.OrderItemSpec{ProductID: f.product.ID, Quantity: 2, PricePerUnit: decimal.RequireFromString("10.00")})
	require.NoError(t, err)
	_, err = repo.CreateOrderItem(ctx, order.ID, entity.OrderItemSpec{ProductID: f.product2.ID, Quantity: 3, PricePerUnit: decimal.RequireFromString("5.00")})
	require.NoError(t, err)

	items, err := repo.ListOrderItems(ctx, order.ID)
	require.NoError(t, err)
	require.NoError(t, repo.UpdateOrderTotal(ctx, order.ID, entity.OrderTotal(items)))

	got, err := repo.FindOrderByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alpha", got.StoreName)
	assert.Len(t, got.Items, 2)
	assert.True(t, decimal.RequireFromString("35.00").Equal(got.TotalAmount), got.TotalAmount.String())
	assert.Equal(t, order.OrderDate, got.OrderDate)

	_, err = repo.CreateOrderItem(ctx, order.ID, entity.OrderItemSpec{ProductID: uuid.New(), Quantity: 1})
	assert.ErrorIs(t, err, domainerrors.ErrReferenceNotFound)

	require.NoError(t, repo.DeleteOrder(ctx, order.ID))
	_, err = repo.FindOrderByID(ctx, order.ID)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderRepository_ListFilters(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	repo := NewOrderRepository(f.db)
	f.newOrder(t)

	mine, err := repo.ListOrders(ctx, repository.OrderFilter{MerchandiserID: &f.user.ID})
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	stranger := uuid.New()
	none, err := repo.ListOrders(ctx, repository.OrderFilter{MerchandiserID: &stranger})
	require.NoError(t, err)
	assert.Empty(t, none)

	shipped, err := repo.ListOrders(ctx, repository.OrderFilter{Status: entity.OrderStatusShipped})
	require.NoError(t, err)
	assert.Empty(t, shipped)
}

func newPlan(t *testing.T, f *fixture) *entity.DailyPlan {
	t.Helper()

	plan := &entity.DailyPlan{
		MerchandiserID: f.user.ID,
		PlanDate:       time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, NewDailyPlanRepository(f.db).CreatePlan(context.Background(), plan))

	return plan
}

func TestDailyPlanRepository_OnePlanPerDay(t *testing.T) {
	f := newFixture(t)
	plan := newPlan(t, f)

	dup := &entity.DailyPlan{MerchandiserID: f.user.ID, PlanDate: plan.PlanDate}
	err := NewDailyPlanRepository(f.db).CreatePlan(context.Background(), dup)
	assert.ErrorIs(t, err, domainerrors.ErrDailyPlanExists)

	day := plan.PlanDate
	plans, err := NewDailyPlanRepository(f.db).ListPlans(context.Background(), repository.DailyPlanFilter{PlanDate: &day})
	require.NoError(t, err)
	assert.Len(t, plans, 1)
}

func TestDailyPlanRepository_VisitOrderSwapAfterRelease(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	repo := NewDailyPlanRepository(f.db)
	plan := newPlan(t, f)

	first, err := repo.CreateVisit(ctx, plan.ID, entity.PlanVisitSpec{StoreID: f.store.ID, VisitOrder: 1})
	require.NoError(t, err)
	second, err := repo.CreateVisit(ctx, plan.ID, entity.PlanVisitSpec{StoreID: f.store2.ID, VisitOrder: 2})
	require.NoError(t, err)
	assert.Equal(t, "Beta", second.StoreName)

	_, err = repo.CreateVisit(ctx, plan.ID, entity.PlanVisitSpec{StoreID: f.store2.ID, VisitOrder: 1})
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateKey)

	require.NoError(t, repo.ReleaseVisitOrders(ctx, plan.ID, []uuid.UUID{first.ID, second.ID}))
	_, err = repo.UpdateVisit(ctx, plan.ID, first.ID, entity.PlanVisitSpec{StoreID: f.store.ID, VisitOrder: 2})
	require.NoError(t, err)
	_, err = repo.UpdateVisit(ctx, plan.ID, second.ID, entity.PlanVisitSpec{StoreID: f.store2.ID, VisitOrder: 1, Completed: true})
	require.NoError(t, err)

	got, err := repo.FindPlanByID(ctx, plan.ID)
	require.NoError(t, err)
	require.Len(t, got.Visits, 2)
	assert.Equal(t, second.ID, got.Visits[0].ID)
	assert.True(t, got.Visits[0].Completed)
	assert.Equal(t, first.ID, got.Visits[1].ID)

	_, err = repo.FindVisit(ctx, uuid.New(), first.ID)
	assert.ErrorIs(t, err, domainerrors.ErrChildNotFound)

	require.NoError(t, repo.DeletePlan(ctx, plan.ID))
	visits, err := repo.ListVisits(ctx, plan.ID)
	require.NoError(t, err)
	assert.Empty(t, visits)
}

func TestDailyPlanRepository_StoreSwapNeedsNoRelease(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	repo := NewDailyPlanRepository(f.db)
	plan := newPlan(t, f)

	first, err := repo.CreateVisit(ctx, plan.ID, entity.PlanVisitSpec{StoreID: f.store.ID, VisitOrder: 1})
	require.NoError(t, err)
	second, err := repo.CreateVisit(ctx, plan.ID, entity.PlanVisitSpec{StoreID: f.store2.ID, VisitOrder: 2})
	require.NoError(t, err)

	_, err = repo.UpdateVisit(ctx, plan.ID, first.ID, entity.PlanVisitSpec{StoreID: f.store2.ID, VisitOrder: 1})
	require.NoError(t, err)
	_, err = repo.UpdateVisit(ctx, plan.ID, second.ID, entity.PlanVisitSpec{StoreID: f.store.ID, VisitOrder: 2})
	require.NoError(t, err)

	got, err := repo.FindPlanByID(ctx, plan.ID)
	require.NoError(t, err)
	require.Len(t, got.Visits, 2)
	assert.Equal(t, f.store2.ID, got.Visits[0].StoreID)
	assert.Equal(t, f.store.ID, got.Visits[1].StoreID)

	_, err = repo.CreateVisit(ctx, plan.ID, entity.PlanVisitSpec{StoreID: f.store.ID, VisitOrder: 2})
	require.ErrorIs(t, err, domainerrors.ErrDuplicateKey)
	assert.Contains(t, err.Error(), "visit_order 2")
}

func TestAuditLogRepository_ListNewestFirst(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	repo := NewAuditLogRepository(f.db)

	require.NoError(t, repo.Create(ctx, &entity.AuditLog{UserID: &f.user.ID, Action: entity.AuditOrderCreated, Details: map[string]any{"order_id": "a"}}))
	time.Sleep(2 * time.Millisecond)
	require.NoError(t, repo.Create(ctx, &entity.AuditLog{UserID: &f.user.ID, Action: entity.AuditOrderUpdated, Details: map[string]any{"order_id": "a"}}))
	require.NoError(t, repo.Create(ctx, &entity.AuditLog{Action: entity.AuditStoreCreated}))

	logs, err := repo.List(ctx, repository.AuditLogFilter{UserID: &f.user.ID})
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, entity.AuditOrderUpdated, logs[0].Action)
	assert.Equal(t, "a", logs[0].Details["order_id"])

	byAction, err := repo.List(ctx, repository.AuditLogFilter{Action: "ORDER_CREATED"})
	require.NoError(t, err)
	require.Len(t, byAction, 1)

	limited, err := repo.List(ctx, repository.AuditLogFilter{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	tm := NewTransactionManager(f.db)

	sentinel := domainerrors.ErrInvalidPayload
	err := tm.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.NewStoreRepository().Create(ctx, &entity.Store{Name: "Gamma", Address: "3"}); err != nil {
			return err
		}

		return sentinel
	})
	assert.ErrorIs(t, err, sentinel)

	stores, err := NewStoreRepository(f.db).List(ctx, repository.StoreFilter{Search: "gamma"})
	require.NoError(t, err)
	assert.Empty(t, stores)
}
