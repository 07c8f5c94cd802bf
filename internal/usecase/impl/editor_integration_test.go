package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/Yakorrr/merchandising-management-system/internal/domain/entity"
	domainerrors "github.com/Yakorrr/merchandising-management-system/internal/domain/errors"
	"github.com/Yakorrr/merchandising-management-system/internal/domain/service"
	"github.com/Yakorrr/merchandising-management-system/internal/errors"
	mockSvc "github.com/Yakorrr/merchandising-management-system/internal/mocks/service"
	"github.com/Yakorrr/merchandising-management-system/internal/infra/persistence/postgres"
	"github.com/Yakorrr/merchandising-management-system/internal/infra/persistence/sqlitetest"
	"github.com/Yakorrr/merchandising-management-system/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var fixedNow = time.Date(2024, 5, 14, 9, 30, 0, 0, time.UTC)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// editorHarness wires the order and daily plan services to a private sqlite database.
type editorHarness struct {
	db        *gorm.DB
	manager   usecase.Actor
	merch     usecase.Actor
	otherMerc usecase.Actor
	storeA    *entity.Store
	storeB    *entity.Store
	storeC    *entity.Store
	widget    *entity.Product
	gadget    *entity.Product
	observer  *mockSvc.MockReconcileObserver
	orders    usecase.OrderUsecase
	plans     usecase.DailyPlanUsecase
}

func newEditorHarness(t *testing.T) *editorHarness {
	t.Helper()

	ctx := context.Background()
	db := sqlitetest.Open(t)
	h := &editorHarness{db: db}

	users := postgres.NewUserRepository(db)
	h.manager = createActor(t, users, "boss", entity.RoleManager)
	h.merch = createActor(t, users, "merch1", entity.RoleMerchandiser)
	h.otherMerc = createActor(t, users, "merch2", entity.RoleMerchandiser)

	stores := postgres.NewStoreRepository(db)
	h.storeA = &entity.Store{Name: "Alpha", Address: "1 Main St"}
	h.storeB = &entity.Store{Name: "Beta", Address: "2 Side St"}
	h.storeC = &entity.Store{Name: "Gamma", Address: "3 Back St"}
	for _, store := range []*entity.Store{h.storeA, h.storeB, h.storeC} {
		require.NoError(t, stores.Create(ctx, store))
	}

	products := postgres.NewProductRepository(db)
	h.widget = &entity.Product{Name: "Widget", Price: decimal.RequireFromString("10.00")}
	h.gadget = &entity.Product{Name: "Gadget", Price: decimal.RequireFromString("5.00")}
	require.NoError(t, products.Create(ctx, h.widget))
	require.NoError(t, products.Create(ctx, h.gadget))

	publisher := mockSvc.NewMockEventPublisher(t)
	publisher.EXPECT().PublishAuditEvent(mock.Anything, mock.Anything).Return(nil).Maybe()

	h.observer = mockSvc.NewMockReconcileObserver(t)
	h.observer.EXPECT().ObserveReconcile(mock.Anything).Return().Maybe()

	orders := NewOrderService(OrderServiceParams{
		TxManager:   postgres.NewTransactionManager(db),
		OrderRepo:   postgres.NewOrderRepository(db),
		UserRepo:    users,
		StoreRepo:   stores,
		ProductRepo: products,
		Publisher:   publisher,
		Observer:    h.observer,
		Logger:      newDiscardLogger(),
	})
	orders.(*orderService).now = func() time.Time { return fixedNow }
	h.orders = orders

	plans := NewDailyPlanService(DailyPlanServiceParams{
		TxManager:   postgres.NewTransactionManager(db),
		PlanRepo:    postgres.NewDailyPlanRepository(db),
		UserRepo:    users,
		StoreRepo:   stores,
		ProductRepo: products,
		Publisher:   publisher,
		Observer:    h.observer,
		Logger:      newDiscardLogger(),
	})
	plans.(*dailyPlanService).now = func() time.Time { return fixedNow }
	h.plans = plans

	return h
}

func createActor(t *testing.T, users interface {
	Create(ctx context.Context, user *entity.User) error
}, username string, role entity.Role,
) usecase.Actor {
	t.Helper()

	user := &entity.User{Username: username, Role: role, PasswordHash: "hash"}
	require.NoError(t, users.Create(context.Background(), user))

	return usecase.Actor{UserID: user.ID, Role: role}
}

func (h *editorHarness) countRows(t *testing.T, table string) int64 {
	t.Helper()

	var n int64
	require.NoError(t, h.db.Table(table).Count(&n).Error)

	return n
}

func detailsOf(t *testing.T, err error) string {
	t.Helper()

	appErr, ok := errors.AsType[domainerrors.AppError](err)
	require.True(t, ok, "expected an application error, got %v", err)

	return appErr.Details()
}

func TestOrderService_CreateComputesTotal(t *testing.T) {
	h := newEditorHarness(t)
	ctx := context.Background()
	price := decimal.RequireFromString("5.00")

	order, err := h.orders.CreateOrder(ctx, h.merch, usecase.CreateOrderInput{
		StoreID: h.storeA.ID,
		Items: []usecase.OrderItemInput{
			{ProductID: h.widget.ID, Quantity: 2},
			{ProductID: h.gadget.ID, Quantity: 3, PricePerUnit: &price},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, h.merch.UserID, order.MerchandiserID)
	assert.Equal(t, entity.OrderStatusCreated, order.Status)
	assert.Equal(t, "2024-05-14", order.OrderDate.Format(time.DateOnly))
	require.Len(t, order.Items, 2)
	assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("35.00")), "total was %s", order.TotalAmount)
	assert.True(t, order.Items[0].PricePerUnit.Equal(h.widget.Price), "price defaults to the product price")

	h.observer.AssertCalled(t, "ObserveReconcile", mock.MatchedBy(func(o service.ReconcileOutcome) bool {
		return o.Parent == parentOrder && o.Created == 2 && o.Err == nil
	}))
	assert.Equal(t, int64(1), h.countRows(t, "audit_logs"))
}

func TestOrderService_UpdateReconcilesItems(t *testing.T) {
	h := newEditorHarness(t)
	ctx := context.Background()

	order, err := h.orders.CreateOrder(ctx, h.merch, usecase.CreateOrderInput{
		StoreID: h.storeA.ID,
		Items: []usecase.OrderItemInput{
			{ProductID: h.widget.ID, Quantity: 2},
			{ProductID: h.gadget.ID, Quantity: 3},
		},
	})
	require.NoError(t, err)
	kept := order.Items[0]

	updated, err := h.orders.UpdateOrder(ctx, h.merch, order.ID, usecase.UpdateOrderInput{
		Items: []usecase.OrderItemInput{
			{ID: &kept.ID, ProductID: h.widget.ID, Quantity: 5},
			{ProductID: h.gadget.ID, Quantity: 1},
		},
	})
	require.NoError(t, err)

	require.Len(t, updated.Items, 2)
	assert.Equal(t, kept.ID, updated.Items[0].ID)
	assert.Equal(t, 5, updated.Items[0].Quantity)
	assert.NotEqual(t, order.Items[1].ID, updated.Items[1].ID, "omitted item is replaced, not reused")
	assert.True(t, updated.TotalAmount.Equal(decimal.RequireFromString("55.00")), "total was %s", updated.TotalAmount)
	assert.Equal(t, int64(2), h.countRows(t, "order_items"))
}

func TestOrderService_UpdateWithoutItemsKeepsThem(t *testing.T) {
	h := newEditorHarness(t)
	ctx := context.Background()

	order, err := h.orders.CreateOrder(ctx, h.manager, usecase.CreateOrderInput{
		StoreID:        h.storeA.ID,
		MerchandiserID: &h.merch.UserID,
		Items:          []usecase.OrderItemInput{{ProductID: h.widget.ID, Quantity: 1}},
	})
	require.NoError(t, err)
	assert.Equal(t, h.merch.UserID, order.MerchandiserID)

	shipped := entity.OrderStatusShipped
	updated, err := h.orders.UpdateOrder(ctx, h.merch, order.ID, usecase.UpdateOrderInput{Status: &shipped})
	require.NoError(t, err)

	assert.Equal(t, entity.OrderStatusShipped, updated.Status)
	require.Len(t, updated.Items, 1)
	assert.Equal(t, order.Items[0].ID, updated.Items[0].ID)
	assert.True(t, updated.TotalAmount.Equal(order.TotalAmount))
}

func TestOrderService_EmptyItemsClearOrder(t *testing.T) {
	h := newEditorHarness(t)
	ctx := context.Background()

	order, err := h.orders.CreateOrder(ctx, h.merch, usecase.CreateOrderInput{
		StoreID: h.storeA.ID,
		Items:   []usecase.OrderItemInput{{ProductID: h.widget.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	updated, err := h.orders.UpdateOrder(ctx, h.merch, order.ID, usecase.UpdateOrderInput{Items: []usecase.OrderItemInput{}})
	require.NoError(t, err)

	assert.Empty(t, updated.Items)
	assert.True(t, updated.TotalAmount.IsZero())
}

func TestOrderService_UnknownItemLeavesOrderUntouched(t *testing.T) {
	h := newEditorHarness(t)
	ctx := context.Background()

	order, err := h.orders.CreateOrder(ctx, h.merch, usecase.CreateOrderInput{
		StoreID: h.storeA.ID,
		Items:   []usecase.OrderItemInput{{ProductID: h.widget.ID, Quantity: 2}},
	})
	require.NoError(t, err)

	unknown := uuid.New()
	_, err = h.orders.UpdateOrder(ctx, h.merch, order.ID, usecase.UpdateOrderInput{
		Status: ptr(entity.OrderStatusProcessed),
		Items: []usecase.OrderItemInput{
			{ProductID: h.gadget.ID, Quantity: 4},
			{ID: &unknown, ProductID: h.widget.ID, Quantity: 1},
		},
	})
	require.ErrorIs(t, err, domainerrors.ErrChildNotFound)
	assert.Contains(t, detailsOf(t, err), unknown.String())

	reloaded, err := h.orders.GetOrder(ctx, h.merch, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCreated, reloaded.Status)
	require.Len(t, reloaded.Items, 1)
	assert.Equal(t, order.Items[0].ID, reloaded.Items[0].ID)
	assert.True(t, reloaded.TotalAmount.Equal(decimal.RequireFromString("20.00")))
	assert.Equal(t, int64(1), h.countRows(t, "audit_logs"))
}

func TestOrderService_RejectsInvalidItems(t *testing.T) {
	h := newEditorHarness(t)
	ctx := context.Background()
	negative := decimal.RequireFromString("-1")

	tests := []struct {
		name  string
		items []usecase.OrderItemInput
		want  error
	}{
		{"zero quantity", []usecase.OrderItemInput{{ProductID: h.widget.ID, Quantity: 0}}, domainerrors.ErrInvalidPayload},
		{"negative price", []usecase.OrderItemInput{{ProductID: h.widget.ID, Quantity: 1, PricePerUnit: &negative}}, domainerrors.ErrInvalidPayload},
		{"unknown product", []usecase.OrderItemInput{{ProductID: uuid.New(), Quantity: 1}}, domainerrors.ErrReferenceNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := h.orders.CreateOrder(ctx, h.merch, usecase.CreateOrderInput{StoreID: h.storeA.ID, Items: tt.items})
			assert.ErrorIs(t, err, tt.want)
		})
	}

	_, err := h.orders.CreateOrder(ctx, h.merch, usecase.CreateOrderInput{StoreID: uuid.New()})
	assert.ErrorIs(t, err, domainerrors.ErrReferenceNotFound)

	assert.Equal(t, int64(0), h.countRows(t, "orders"))
}

func TestOrderService_MerchandiserScope(t *testing.T) {
	h := newEditorHarness(t)
	ctx := context.Background()

	order, err := h.orders.CreateOrder(ctx, h.merch, usecase.CreateOrderInput{StoreID: h.storeA.ID})
	require.NoError(t, err)

	_, err = h.orders.GetOrder(ctx, h.otherMerc, order.ID)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)

	_, err = h.orders.UpdateOrder(ctx, h.otherMerc, order.ID, usecase.UpdateOrderInput{Items: []usecase.OrderItemInput{}})
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)

	listed, err := h.orders.ListOrders(ctx, h.otherMerc, usecase.OrderFilter{MerchandiserID: &h.merch.UserID})
	require.NoError(t, err)
	assert.Empty(t, listed)

	listed, err = h.orders.ListOrders(ctx, h.manager, usecase.OrderFilter{})
	require.NoError(t, err)
	assert.Len(t, listed, 1)

	assert.ErrorIs(t, h.orders.DeleteOrder(ctx, h.merch, order.ID), domainerrors.ErrForbidden)
	require.NoError(t, h.orders.DeleteOrder(ctx, h.manager, order.ID))

	_, err = h.orders.GetOrder(ctx, h.manager, order.ID)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func (h *editorHarness) createPlan(t *testing.T, visits ...usecase.PlanVisitInput) *entity.DailyPlan {
	t.Helper()

	plan, err := h.plans.CreatePlan(context.Background(), h.manager, usecase.CreateDailyPlanInput{
		MerchandiserID: h.merch.UserID,
		PlanDate:       time.Date(2024, 5, 20, 15, 0, 0, 0, time.UTC),
		Visits:         visits,
	})
	require.NoError(t, err)

	return plan
}

func visitStores(plan *entity.DailyPlan) map[int]uuid.UUID {
	stores := make(map[int]uuid.UUID, len(plan.Visits))
	for _, visit := range plan.Visits {
		stores[visit.VisitOrder] = visit.StoreID
	}

	return stores
}

func TestDailyPlanService_Create(t *testing.T) {
	h := newEditorHarness(t)

	plan := h.createPlan(t,
		usecase.PlanVisitInput{StoreID: h.storeA.ID, VisitOrder: 1},
		usecase.PlanVisitInput{StoreID: h.storeB.ID, VisitOrder: 2},
	)

	assert.Equal(t, "2024-05-20", plan.PlanDate.Format(time.DateOnly))
	assert.Equal(t, map[int]uuid.UUID{1: h.storeA.ID, 2: h.storeB.ID}, visitStores(plan))

	_, err := h.plans.CreatePlan(context.Background(), h.manager, usecase.CreateDailyPlanInput{
		MerchandiserID: h.merch.UserID,
		PlanDate:       time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, domainerrors.ErrDailyPlanExists)

	_, err = h.plans.CreatePlan(context.Background(), h.merch, usecase.CreateDailyPlanInput{
		MerchandiserID: h.merch.UserID,
		PlanDate:       time.Date(2024, 5, 21, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestDailyPlanService_UpdateSwapsVisitOrders(t *testing.T) {
	h := newEditorHarness(t)
	plan := h.createPlan(t,
		usecase.PlanVisitInput{StoreID: h.storeA.ID, VisitOrder: 1},
		usecase.PlanVisitInput{StoreID: h.storeB.ID, VisitOrder: 2},
	)
	first, second := plan.Visits[0], plan.Visits[1]

	updated, err := h.plans.UpdatePlan(context.Background(), h.manager, plan.ID, usecase.UpdateDailyPlanInput{
		Visits: []usecase.PlanVisitInput{
			{ID: &first.ID, StoreID: h.storeA.ID, VisitOrder: 2},
			{ID: &second.ID, StoreID: h.storeB.ID, VisitOrder: 1},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, map[int]uuid.UUID{1: h.storeB.ID, 2: h.storeA.ID}, visitStores(updated))
	assert.Equal(t, second.ID, updated.Visits[0].ID)
}

func TestDailyPlanService_UpdateDeletesOmittedVisits(t *testing.T) {
	h := newEditorHarness(t)
	plan := h.createPlan(t,
		usecase.PlanVisitInput{StoreID: h.storeA.ID, VisitOrder: 1},
		usecase.PlanVisitInput{StoreID: h.storeB.ID, VisitOrder: 2},
	)
	second := plan.Visits[1]

	updated, err := h.plans.UpdatePlan(context.Background(), h.manager, plan.ID, usecase.UpdateDailyPlanInput{
		Visits: []usecase.PlanVisitInput{
			{ID: &second.ID, StoreID: h.storeB.ID, VisitOrder: 1},
			{StoreID: h.storeC.ID, VisitOrder: 2},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, map[int]uuid.UUID{1: h.storeB.ID, 2: h.storeC.ID}, visitStores(updated))

	cleared, err := h.plans.UpdatePlan(context.Background(), h.manager, plan.ID, usecase.UpdateDailyPlanInput{
		Visits: []usecase.PlanVisitInput{},
	})
	require.NoError(t, err)
	assert.Empty(t, cleared.Visits)
	assert.Equal(t, int64(0), h.countRows(t, "daily_plan_stores"))
}

func TestDailyPlanService_DuplicateKeysLeaveStateUntouched(t *testing.T) {
	h := newEditorHarness(t)
	plan := h.createPlan(t,
		usecase.PlanVisitInput{StoreID: h.storeA.ID, VisitOrder: 1},
		usecase.PlanVisitInput{StoreID: h.storeB.ID, VisitOrder: 2},
	)
	first := plan.Visits[0]

	tests := []struct {
		name    string
		visits  []usecase.PlanVisitInput
		details string
	}{
		{
			name: "repeated visit order in payload",
			visits: []usecase.PlanVisitInput{
				{ID: &first.ID, StoreID: h.storeA.ID, VisitOrder: 1},
				{StoreID: h.storeC.ID, VisitOrder: 1},
			},
			details: "visit_order 1 appears more than once",
		},
		{
			name: "repeated store in payload",
			visits: []usecase.PlanVisitInput{
				{StoreID: h.storeC.ID, VisitOrder: 1},
				{StoreID: h.storeC.ID, VisitOrder: 2},
			},
			details: "appears more than once",
		},
		{
			name: "new visit takes the order of an omitted one",
			visits: []usecase.PlanVisitInput{
				{ID: &first.ID, StoreID: h.storeA.ID, VisitOrder: 1},
				{StoreID: h.storeC.ID, VisitOrder: 2},
			},
			details: "is already used by an existing item",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := h.plans.UpdatePlan(context.Background(), h.manager, plan.ID, usecase.UpdateDailyPlanInput{Visits: tt.visits})
			require.ErrorIs(t, err, domainerrors.ErrDuplicateKey)
			assert.Contains(t, detailsOf(t, err), tt.details)

			reloaded, err := h.plans.GetPlan(context.Background(), h.manager, plan.ID)
			require.NoError(t, err)
			assert.Equal(t, map[int]uuid.UUID{1: h.storeA.ID, 2: h.storeB.ID}, visitStores(reloaded))
		})
	}
}

func TestEditors_ReportRejectedTargets(t *testing.T) {
	h := newEditorHarness(t)
	ctx := context.Background()

	order, err := h.orders.CreateOrder(ctx, h.merch, usecase.CreateOrderInput{
		StoreID: h.storeA.ID,
		Items:   []usecase.OrderItemInput{{ProductID: h.widget.ID, Quantity: 2}},
	})
	require.NoError(t, err)
	itemID := order.Items[0].ID

	_, err = h.orders.UpdateOrder(ctx, h.merch, order.ID, usecase.UpdateOrderInput{
		Items: []usecase.OrderItemInput{
			{ID: &itemID, ProductID: h.widget.ID, Quantity: 1},
			{ID: &itemID, ProductID: h.widget.ID, Quantity: 3},
		},
	})
	require.ErrorIs(t, err, domainerrors.ErrDuplicateKey)

	_, err = h.orders.CreateOrder(ctx, h.merch, usecase.CreateOrderInput{
		StoreID: h.storeA.ID,
		Items:   []usecase.OrderItemInput{{ProductID: h.widget.ID, Quantity: 0}},
	})
	require.ErrorIs(t, err, domainerrors.ErrInvalidPayload)

	_, err = h.plans.CreatePlan(ctx, h.manager, usecase.CreateDailyPlanInput{
		MerchandiserID: h.merch.UserID,
		PlanDate:       time.Date(2024, 5, 21, 0, 0, 0, 0, time.UTC),
		Visits: []usecase.PlanVisitInput{
			{StoreID: h.storeA.ID, VisitOrder: 1},
			{StoreID: h.storeB.ID, VisitOrder: 1},
		},
	})
	require.ErrorIs(t, err, domainerrors.ErrDuplicateKey)

	rejected := func(parent string, target error) any {
		return mock.MatchedBy(func(o service.ReconcileOutcome) bool {
			return o.Parent == parent && errors.Is(o.Err, target)
		})
	}
	h.observer.AssertCalled(t, "ObserveReconcile", rejected(parentOrder, domainerrors.ErrDuplicateKey))
	h.observer.AssertCalled(t, "ObserveReconcile", rejected(parentOrder, domainerrors.ErrInvalidPayload))
	h.observer.AssertCalled(t, "ObserveReconcile", rejected(parentDailyPlan, domainerrors.ErrDuplicateKey))
	assert.Equal(t, int64(1), h.countRows(t, "orders"))
	assert.Equal(t, int64(0), h.countRows(t, "daily_plans"))
}

func TestDailyPlanService_VisitProgress(t *testing.T) {
	h := newEditorHarness(t)
	plan := h.createPlan(t, usecase.PlanVisitInput{StoreID: h.storeA.ID, VisitOrder: 1})
	visit := plan.Visits[0]
	ctx := context.Background()

	_, err := h.plans.UpdateVisitProgress(ctx, h.otherMerc, plan.ID, visit.ID, usecase.VisitProgressInput{Completed: ptr(true)})
	assert.ErrorIs(t, err, domainerrors.ErrDailyPlanNotFound)

	_, err = h.plans.UpdateVisitProgress(ctx, h.merch, plan.ID, uuid.New(), usecase.VisitProgressInput{Completed: ptr(true)})
	assert.ErrorIs(t, err, domainerrors.ErrChildNotFound)

	updated, err := h.plans.UpdateVisitProgress(ctx, h.merch, plan.ID, visit.ID, usecase.VisitProgressInput{Completed: ptr(true)})
	require.NoError(t, err)
	assert.True(t, updated.Completed)
	require.NotNil(t, updated.VisitedAt)
	assert.True(t, fixedNow.Equal(*updated.VisitedAt))
	assert.Equal(t, 1, updated.VisitOrder)

	_, err = h.plans.UpdatePlan(ctx, h.merch, plan.ID, usecase.UpdateDailyPlanInput{Notes: ptr("mine now")})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestDailyPlanService_Scope(t *testing.T) {
	h := newEditorHarness(t)
	plan := h.createPlan(t)
	ctx := context.Background()

	_, err := h.plans.GetPlan(ctx, h.otherMerc, plan.ID)
	assert.ErrorIs(t, err, domainerrors.ErrDailyPlanNotFound)

	got, err := h.plans.GetPlan(ctx, h.merch, plan.ID)
	require.NoError(t, err)
	assert.Equal(t, plan.ID, got.ID)

	day := time.Date(2024, 5, 20, 18, 45, 0, 0, time.UTC)
	listed, err := h.plans.ListPlans(ctx, h.manager, usecase.DailyPlanFilter{PlanDate: &day})
	require.NoError(t, err)
	assert.Len(t, listed, 1)

	listed, err = h.plans.ListPlans(ctx, h.otherMerc, usecase.DailyPlanFilter{})
	require.NoError(t, err)
	assert.Empty(t, listed)

	assert.ErrorIs(t, h.plans.DeletePlan(ctx, h.merch, plan.ID), domainerrors.ErrForbidden)
	require.NoError(t, h.plans.DeletePlan(ctx, h.manager, plan.ID))
	assert.Equal(t, int64(0), h.countRows(t, "daily_plans"))
}

func ptr[T any](v T) *T {
	return &v
}
