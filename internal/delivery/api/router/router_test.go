package router

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Yakorrr/merchandising-management-system/internal/delivery/api/middleware"
	"github.com/Yakorrr/merchandising-management-system/internal/delivery/api/router/handler"
	"github.com/Yakorrr/merchandising-management-system/internal/delivery/api/validator"
	domainerrors "github.com/Yakorrr/merchandising-management-system/internal/domain/errors"
	"github.com/Yakorrr/merchandising-management-system/internal/domain/entity"
	"github.com/Yakorrr/merchandising-management-system/internal/domain/service"
	mockSvc "github.com/Yakorrr/merchandising-management-system/internal/mocks/service"
	mockUC "github.com/Yakorrr/merchandising-management-system/internal/mocks/usecase"
	"github.com/Yakorrr/merchandising-management-system/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	managerToken = "manager-token"
	merchToken   = "merch-token"
)

var (
	managerID    = uuid.MustParse("0190a000-0000-7000-8000-000000000001")
	merchID      = uuid.MustParse("0190a000-0000-7000-8000-000000000002")
	managerActor = usecase.Actor{UserID: managerID, Role: entity.RoleManager}
	merchActor   = usecase.Actor{UserID: merchID, Role: entity.RoleMerchandiser}
)

type apiHarness struct {
	e        *echo.Echo
	tokens   *mockSvc.MockTokenService
	auth     *mockUC.MockAuthUsecase
	stores   *mockUC.MockStoreUsecase
	products *mockUC.MockProductUsecase
	orders   *mockUC.MockOrderUsecase
	plans    *mockUC.MockDailyPlanUsecase
	routes   *mockUC.MockRouteUsecase
	logs     *mockUC.MockAuditLogUsecase
}

func newAPIHarness(t *testing.T) *apiHarness {
	t.Helper()

	h := &apiHarness{
		tokens:   mockSvc.NewMockTokenService(t),
		auth:     mockUC.NewMockAuthUsecase(t),
		stores:   mockUC.NewMockStoreUsecase(t),
		products: mockUC.NewMockProductUsecase(t),
		orders:   mockUC.NewMockOrderUsecase(t),
		plans:    mockUC.NewMockDailyPlanUsecase(t),
		routes:   mockUC.NewMockRouteUsecase(t),
		logs:     mockUC.NewMockAuditLogUsecase(t),
	}

	h.tokens.EXPECT().ValidateAccessToken(managerToken).
		Return(&service.Claims{UserID: managerID, Roles: []string{"manager"}}, nil).Maybe()
	h.tokens.EXPECT().ValidateAccessToken(merchToken).
		Return(&service.Claims{UserID: merchID, Roles: []string{"merchandiser"}}, nil).Maybe()
	h.tokens.EXPECT().ValidateAccessToken("expired").
		Return(nil, errors.New("token is expired")).Maybe()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	h.e = echo.New()
	h.e.Validator = validator.New()
	h.e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	NewRouter(RouterParams{
		AuthHandler:      handler.NewAuthHandler(handler.AuthHandlerParams{AuthUC: h.auth, Logger: logger}),
		CatalogHandler:   handler.NewCatalogHandler(handler.CatalogHandlerParams{StoreUC: h.stores, ProductUC: h.products, Logger: logger}),
		OrderHandler:     handler.NewOrderHandler(handler.OrderHandlerParams{OrderUC: h.orders, Logger: logger}),
		DailyPlanHandler: handler.NewDailyPlanHandler(handler.DailyPlanHandlerParams{PlanUC: h.plans, Logger: logger}),
		RouteHandler:     handler.NewRouteHandler(handler.RouteHandlerParams{RouteUC: h.routes, Logger: logger}),
		AuditLogHandler:  handler.NewAuditLogHandler(handler.AuditLogHandlerParams{AuditLogUC: h.logs}),
		AuthMiddleware:   middleware.NewAuthMiddleware(h.tokens),
	}).RegisterRoutes(h.e)

	return h
}

func (h *apiHarness) do(method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	h.e.ServeHTTP(rec, req)

	return rec
}

type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	t.Helper()

	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())

	return body
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body struct {
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())

	return body.Data
}

func TestHealthCheck(t *testing.T) {
	h := newAPIHarness(t)

	rec := h.do(http.MethodGet, "/health", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decodeData(t, rec)["status"])
}

func TestAuthenticate_RejectsBadCredentials(t *testing.T) {
	h := newAPIHarness(t)

	tests := []struct {
		name   string
		header string
		code   string
	}{
		{name: "missing header", header: "", code: "UNAUTHORIZED"},
		{name: "not a bearer token", header: "Token abc", code: "UNAUTHORIZED"},
		{name: "expired token", header: "Bearer expired", code: "TOKEN_INVALID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/stores", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			h.e.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, tt.code, decodeError(t, rec).Error.Code)
		})
	}
}

func TestLogin(t *testing.T) {
	h := newAPIHarness(t)
	h.auth.EXPECT().Login(mock.Anything, usecase.LoginInput{Username: "admin", Password: "secret"}).
		Return(&usecase.LoginOutput{
			AccessToken:  "access",
			RefreshToken: "refresh",
			User:         &entity.User{ID: managerID, Username: "admin", Role: entity.RoleManager},
		}, nil)
	h.auth.EXPECT().Login(mock.Anything, usecase.LoginInput{Username: "admin", Password: "wrong"}).
		Return(nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login"))

	rec := h.do(http.MethodPost, "/auth/login", "", `{"username":"admin","password":"secret"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	data := decodeData(t, rec)
	assert.Equal(t, "access", data["access_token"])
	assert.Equal(t, "refresh", data["refresh_token"])

	rec = h.do(http.MethodPost, "/auth/login", "", `{"username":"admin","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", decodeError(t, rec).Error.Code)

	rec = h.do(http.MethodPost, "/auth/login", "", `{"username":"admin"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_ERROR", decodeError(t, rec).Error.Code)
}

func TestMe(t *testing.T) {
	h := newAPIHarness(t)
	h.auth.EXPECT().Me(mock.Anything, merchID).
		Return(&entity.User{ID: merchID, Username: "user", Role: entity.RoleMerchandiser}, nil)

	rec := h.do(http.MethodGet, "/auth/me", merchToken, "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user", decodeData(t, rec)["username"])
}

func TestStores_WritesAreManagerOnly(t *testing.T) {
	h := newAPIHarness(t)
	storeID := uuid.New()

	for _, req := range []struct{ method, path string }{
		{http.MethodPost, "/api/v1/stores"},
		{http.MethodPut, "/api/v1/stores/" + storeID.String()},
		{http.MethodDelete, "/api/v1/stores/" + storeID.String()},
		{http.MethodPost, "/api/v1/products"},
	} {
		rec := h.do(req.method, req.path, merchToken, `{"name":"x","address":"y"}`)
		assert.Equal(t, http.StatusForbidden, rec.Code, req.method+" "+req.path)
	}

	h.stores.EXPECT().ListStores(mock.Anything, "main").Return([]*entity.Store{{ID: storeID, Name: "Main St"}}, nil)

	rec := h.do(http.MethodGet, "/api/v1/stores?search=main", merchToken, "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCreateStore(t *testing.T) {
	h := newAPIHarness(t)
	lat, lng := 50.45, 30.52
	h.stores.EXPECT().CreateStore(mock.Anything, managerActor, usecase.StoreInput{
		Name:      "Central",
		Address:   "1 Main St",
		Latitude:  &lat,
		Longitude: &lng,
	}).Return(&entity.Store{ID: uuid.New(), Name: "Central"}, nil)

	rec := h.do(http.MethodPost, "/api/v1/stores", managerToken,
		`{"name":"Central","address":"1 Main St","latitude":50.45,"longitude":30.52}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Central", decodeData(t, rec)["name"])
}

func TestDeleteStore_InUse(t *testing.T) {
	h := newAPIHarness(t)
	storeID := uuid.New()
	h.stores.EXPECT().DeleteStore(mock.Anything, managerActor, storeID).
		Return(domainerrors.ErrReferencedResource.WithDetails("store is referenced by orders or daily plans"))

	rec := h.do(http.MethodDelete, "/api/v1/stores/"+storeID.String(), managerToken, "")

	assert.Equal(t, http.StatusConflict, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "RESOURCE_IN_USE", body.Error.Code)
	assert.Equal(t, "store is referenced by orders or daily plans", body.Error.Details)
}

func TestCreateOrder_MapsReferencesAndItems(t *testing.T) {
	h := newAPIHarness(t)
	storeID, widget, gadget := uuid.New(), uuid.New(), uuid.New()

	h.orders.EXPECT().CreateOrder(mock.Anything, merchActor, mock.MatchedBy(func(in usecase.CreateOrderInput) bool {
		return in.StoreID == storeID &&
			in.MerchandiserID == nil &&
			len(in.Items) == 2 &&
			in.Items[0].ProductID == widget && in.Items[0].Quantity == 2 && in.Items[0].PricePerUnit == nil &&
			in.Items[1].ProductID == gadget && in.Items[1].PricePerUnit != nil &&
			in.Items[1].PricePerUnit.Equal(decimal.RequireFromString("4.50"))
	})).Return(&entity.Order{ID: uuid.New(), StoreID: storeID, TotalAmount: decimal.RequireFromString("24.50")}, nil)

	body := `{"store":"` + storeID.String() + `","items":[` +
		`{"product":{"id":"` + widget.String() + `"},"quantity":2},` +
		`{"product":"` + gadget.String() + `","quantity":1,"price_per_unit":"4.50"}]}`
	rec := h.do(http.MethodPost, "/api/v1/orders", merchToken, body)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "24.5", decodeData(t, rec)["total_amount"])
}

func TestUpdateOrder_ItemsPresence(t *testing.T) {
	h := newAPIHarness(t)
	orderID := uuid.New()

	h.orders.EXPECT().UpdateOrder(mock.Anything, managerActor, orderID, mock.MatchedBy(func(in usecase.UpdateOrderInput) bool {
		return in.Items == nil && in.Status != nil && *in.Status == entity.OrderStatusShipped
	})).Return(&entity.Order{ID: orderID}, nil).Once()

	rec := h.do(http.MethodPut, "/api/v1/orders/"+orderID.String(), managerToken, `{"status":"shipped"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	h.orders.EXPECT().UpdateOrder(mock.Anything, managerActor, orderID, mock.MatchedBy(func(in usecase.UpdateOrderInput) bool {
		return in.Items != nil && len(in.Items) == 0
	})).Return(&entity.Order{ID: orderID}, nil).Once()

	rec = h.do(http.MethodPut, "/api/v1/orders/"+orderID.String(), managerToken, `{"items":[]}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdateOrder_ReconcileErrors(t *testing.T) {
	h := newAPIHarness(t)
	orderID, missing := uuid.New(), uuid.New()

	h.orders.EXPECT().UpdateOrder(mock.Anything, merchActor, orderID, mock.Anything).
		Return(nil, errors.Wrap(domainerrors.ErrChildNotFound.WithDetails("id "+missing.String()), "reconcile order items"))

	body := `{"items":[{"id":"` + missing.String() + `","product":"` + uuid.NewString() + `","quantity":1}]}`
	rec := h.do(http.MethodPut, "/api/v1/orders/"+orderID.String(), merchToken, body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	errBody := decodeError(t, rec)
	assert.Equal(t, "CHILD_NOT_FOUND", errBody.Error.Code)
	assert.Equal(t, "id "+missing.String(), errBody.Error.Details)
}

func TestOrders_RequestValidation(t *testing.T) {
	h := newAPIHarness(t)

	rec := h.do(http.MethodGet, "/api/v1/orders/not-a-uuid", managerToken, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_ID", decodeError(t, rec).Error.Code)

	rec = h.do(http.MethodGet, "/api/v1/orders?status=lost", managerToken, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = h.do(http.MethodDelete, "/api/v1/orders/"+uuid.NewString(), merchToken, "")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = h.do(http.MethodPost, "/api/v1/orders", merchToken, `{"store":12}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_INPUT", decodeError(t, rec).Error.Code)
}

func TestListOrders_Filters(t *testing.T) {
	h := newAPIHarness(t)
	storeID := uuid.New()
	h.orders.EXPECT().ListOrders(mock.Anything, managerActor, usecase.OrderFilter{
		StoreID: &storeID,
		Status:  entity.OrderStatusCreated,
	}).Return([]*entity.Order{}, nil)

	rec := h.do(http.MethodGet, "/api/v1/orders?status=created&store_id="+storeID.String(), managerToken, "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUnhandledErrorIsInternal(t *testing.T) {
	h := newAPIHarness(t)
	h.orders.EXPECT().ListOrders(mock.Anything, merchActor, usecase.OrderFilter{}).
		Return(nil, errors.New("connection reset"))

	rec := h.do(http.MethodGet, "/api/v1/orders", merchToken, "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
	assert.NotContains(t, body.Error.Message, "connection reset")
}

func TestCreatePlan(t *testing.T) {
	h := newAPIHarness(t)
	storeID := uuid.New()
	planDate := time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC)

	h.plans.EXPECT().CreatePlan(mock.Anything, managerActor, mock.MatchedBy(func(in usecase.CreateDailyPlanInput) bool {
		return in.MerchandiserID == merchID &&
			in.PlanDate.Equal(planDate) &&
			len(in.Visits) == 1 &&
			in.Visits[0].StoreID == storeID && in.Visits[0].VisitOrder == 1
	})).Return(&entity.DailyPlan{ID: uuid.New(), MerchandiserID: merchID, PlanDate: planDate}, nil)

	body := `{"merchandiser":"` + merchID.String() + `","plan_date":"2026-10-20",` +
		`"stores":[{"store":"` + storeID.String() + `","visit_order":1}]}`

	rec := h.do(http.MethodPost, "/api/v1/daily-plans", managerToken, body)
	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = h.do(http.MethodPost, "/api/v1/daily-plans", merchToken, body)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = h.do(http.MethodPost, "/api/v1/daily-plans", managerToken, `{"plan_date":"20-10-2026"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_INPUT", decodeError(t, rec).Error.Code)
}

func TestUpdatePlan_DuplicateVisitOrder(t *testing.T) {
	h := newAPIHarness(t)
	planID := uuid.New()
	h.plans.EXPECT().UpdatePlan(mock.Anything, managerActor, planID, mock.MatchedBy(func(in usecase.UpdateDailyPlanInput) bool {
		return len(in.Visits) == 2 && in.Notes == nil
	})).Return(nil, domainerrors.ErrDuplicateKey.WithDetails("visit_order 1 appears more than once"))

	body := `{"stores":[{"store":"` + uuid.NewString() + `","visit_order":1},{"store":"` + uuid.NewString() + `","visit_order":1}]}`
	rec := h.do(http.MethodPut, "/api/v1/daily-plans/"+planID.String(), managerToken, body)

	assert.Equal(t, http.StatusConflict, rec.Code)
	errBody := decodeError(t, rec)
	assert.Equal(t, "DUPLICATE_KEY", errBody.Error.Code)
	assert.Equal(t, "visit_order 1 appears more than once", errBody.Error.Details)
}

func TestListPlans_DateFilter(t *testing.T) {
	h := newAPIHarness(t)
	planDate := time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC)
	h.plans.EXPECT().ListPlans(mock.Anything, merchActor, mock.MatchedBy(func(f usecase.DailyPlanFilter) bool {
		return f.PlanDate != nil && f.PlanDate.Equal(planDate) && f.MerchandiserID == nil
	})).Return([]*entity.DailyPlan{}, nil)

	rec := h.do(http.MethodGet, "/api/v1/daily-plans?plan_date=2026-10-20", merchToken, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = h.do(http.MethodGet, "/api/v1/daily-plans?plan_date=tomorrow", merchToken, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateVisit_ByMerchandiser(t *testing.T) {
	h := newAPIHarness(t)
	planID, visitID := uuid.New(), uuid.New()
	h.plans.EXPECT().UpdateVisitProgress(mock.Anything, merchActor, planID, visitID, mock.MatchedBy(func(in usecase.VisitProgressInput) bool {
		return in.Completed != nil && *in.Completed && in.VisitedAt == nil
	})).Return(&entity.PlanVisit{ID: visitID, VisitOrder: 1, Completed: true}, nil)

	rec := h.do(http.MethodPatch, "/api/v1/daily-plans/"+planID.String()+"/visits/"+visitID.String(), merchToken, `{"completed":true}`)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, true, decodeData(t, rec)["completed"])
}

func TestCalculateRoute(t *testing.T) {
	h := newAPIHarness(t)
	a, b := uuid.New(), uuid.New()
	h.routes.EXPECT().CalculateRoute(mock.Anything, merchActor, usecase.RouteInput{StoreIDs: []uuid.UUID{a, b}, OptimizeOrder: true}).
		Return(&entity.Route{DistanceKm: 12.35, DurationMin: 16.67, Optimized: true, Provider: "osrm"}, nil).Once()

	body := `{"stores":["` + a.String() + `",{"id":"` + b.String() + `"}],"optimize_order":true}`
	rec := h.do(http.MethodPost, "/api/v1/routes", merchToken, body)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.InDelta(t, 12.35, decodeData(t, rec)["distance_km"], 0.0001)

	h.routes.EXPECT().CalculateRoute(mock.Anything, merchActor, mock.Anything).
		Return(nil, domainerrors.ErrRoutingUnavailable).Once()

	rec = h.do(http.MethodPost, "/api/v1/routes", merchToken, body)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "ROUTING_UNAVAILABLE", decodeError(t, rec).Error.Code)
}

func TestListLogs(t *testing.T) {
	h := newAPIHarness(t)
	h.logs.EXPECT().ListLogs(mock.Anything, usecase.AuditLogFilter{Action: "order_created", Limit: 5}).
		Return([]*entity.AuditLog{}, nil)

	rec := h.do(http.MethodGet, "/api/v1/logs?action=order_created&limit=5", managerToken, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = h.do(http.MethodGet, "/api/v1/logs", merchToken, "")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = h.do(http.MethodGet, "/api/v1/logs?limit=-1", managerToken, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
