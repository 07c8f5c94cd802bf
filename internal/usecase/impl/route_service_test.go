package impl

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/Yakorrr/merchandising-management-system/internal/domain/entity"
	domainerrors "github.com/Yakorrr/merchandising-management-system/internal/domain/errors"
	"github.com/Yakorrr/merchandising-management-system/internal/domain/service"
	mockRepo "github.com/Yakorrr/merchandising-management-system/internal/mocks/repository"
	mockSvc "github.com/Yakorrr/merchandising-management-system/internal/mocks/service"
	"github.com/Yakorrr/merchandising-management-system/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type routeServiceFixtures struct {
	service   usecase.RouteUsecase
	storeRepo *mockRepo.MockStoreRepository
	auditRepo *mockRepo.MockAuditLogRepository
	provider  *mockSvc.MockRouteProvider
	publisher *mockSvc.MockEventPublisher
}

func createTestRouteService(t *testing.T) routeServiceFixtures {
	fx := routeServiceFixtures{
		storeRepo: mockRepo.NewMockStoreRepository(t),
		auditRepo: mockRepo.NewMockAuditLogRepository(t),
		provider:  mockSvc.NewMockRouteProvider(t),
		publisher: mockSvc.NewMockEventPublisher(t),
	}
	fx.service = NewRouteService(RouteServiceParams{
		StoreRepo: fx.storeRepo,
		AuditRepo: fx.auditRepo,
		Provider:  fx.provider,
		Publisher: fx.publisher,
		Logger:    newDiscardLogger(),
	})

	return fx
}

func storeAt(name string, lat, lng float64) *entity.Store {
	return &entity.Store{ID: uuid.New(), Name: name, Latitude: &lat, Longitude: &lng}
}

func TestRouteService_CalculateRoute_Optimized(t *testing.T) {
	fx := createTestRouteService(t)
	ctx := context.Background()
	a, b, c := storeAt("A", 50.0, 30.0), storeAt("B", 50.1, 30.1), storeAt("C", 50.2, 30.2)
	ids := []uuid.UUID{a.ID, b.ID, c.ID}

	fx.storeRepo.EXPECT().FindByIDs(ctx, ids).Return([]*entity.Store{c, a, b}, nil)
	fx.provider.EXPECT().Name().Return("osrm")
	fx.provider.EXPECT().
		Route(ctx, service.RouteRequest{
			Points:   []orb.Point{{30.0, 50.0}, {30.1, 50.1}, {30.2, 50.2}},
			Optimize: true,
		}).
		Return(&service.RouteResponse{
			DistanceMeters:  12345.678,
			DurationSeconds: 1000,
			Geometry:        json.RawMessage(`{"type":"LineString","coordinates":[]}`),
			WaypointIndex:   []int{0, 2, 1},
		}, nil)
	fx.auditRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(log *entity.AuditLog) bool {
			return log.Action == entity.AuditRouteCalculated && log.Details["provider"] == "osrm"
		})).
		Return(nil)
	fx.publisher.EXPECT().PublishAuditEvent(ctx, mock.Anything).Return(nil)

	route, err := fx.service.CalculateRoute(ctx, usecase.Actor{UserID: uuid.New(), Role: entity.RoleMerchandiser}, usecase.RouteInput{
		StoreIDs:      ids,
		OptimizeOrder: true,
	})
	require.NoError(t, err)

	assert.InDelta(t, 12.35, route.DistanceKm, 1e-9)
	assert.InDelta(t, 16.67, route.DurationMin, 1e-9)
	assert.True(t, route.Optimized)
	assert.Equal(t, "osrm", route.Provider)
	assert.Equal(t, []*entity.Store{a, c, b}, route.Stores)
	assert.JSONEq(t, `{"type":"LineString","coordinates":[]}`, string(route.Geometry))
}

func TestRouteService_CalculateRoute_ProviderFailure(t *testing.T) {
	fx := createTestRouteService(t)
	a, b := storeAt("A", 50.0, 30.0), storeAt("B", 50.1, 30.1)

	fx.storeRepo.EXPECT().FindByIDs(mock.Anything, mock.Anything).Return([]*entity.Store{a, b}, nil)
	fx.provider.EXPECT().Name().Return("osrm")
	fx.provider.EXPECT().Route(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrRoutingUnavailable)

	_, err := fx.service.CalculateRoute(context.Background(), usecase.Actor{}, usecase.RouteInput{StoreIDs: []uuid.UUID{a.ID, b.ID}})
	assert.ErrorIs(t, err, domainerrors.ErrRoutingUnavailable)
}

func TestRouteService_CalculateRoute_Validation(t *testing.T) {
	a := storeAt("A", 50.0, 30.0)
	noCoords := &entity.Store{ID: uuid.New(), Name: "Nowhere"}

	tests := []struct {
		name   string
		ids    []uuid.UUID
		stores []*entity.Store
		want   error
	}{
		{name: "single store", ids: []uuid.UUID{a.ID}, want: domainerrors.ErrValidationFailed},
		{name: "unknown store", ids: []uuid.UUID{a.ID, uuid.New()}, stores: []*entity.Store{a}, want: domainerrors.ErrReferenceNotFound},
		{name: "store without coordinates", ids: []uuid.UUID{a.ID, noCoords.ID}, stores: []*entity.Store{a, noCoords}, want: domainerrors.ErrValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestRouteService(t)
			if tt.stores != nil {
				fx.storeRepo.EXPECT().FindByIDs(mock.Anything, tt.ids).Return(tt.stores, nil)
			}

			_, err := fx.service.CalculateRoute(context.Background(), usecase.Actor{}, usecase.RouteInput{StoreIDs: tt.ids})
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestVisitOrder(t *testing.T) {
	a, b, c := &entity.Store{Name: "A"}, &entity.Store{Name: "B"}, &entity.Store{Name: "C"}

	assert.Equal(t, []*entity.Store{a, b, c}, visitOrder([]*entity.Store{a, b, c}, nil))
	assert.Equal(t, []*entity.Store{c, a, b}, visitOrder([]*entity.Store{a, b, c}, []int{1, 2, 0}))
}
