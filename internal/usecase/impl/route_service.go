package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"slices"

	deliverycontext "github.com/Yakorrr/merchandising-management-system/internal/delivery/context"
	"github.com/Yakorrr/merchandising-management-system/internal/domain/entity"
	domainerrors "github.com/Yakorrr/merchandising-management-system/internal/domain/errors"
	"github.com/Yakorrr/merchandising-management-system/internal/domain/repository"
	"github.com/Yakorrr/merchandising-management-system/internal/domain/service"
	"github.com/Yakorrr/merchandising-management-system/internal/errors"
	"github.com/Yakorrr/merchandising-management-system/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"go.uber.org/fx"
)

const minRouteStops = 2

// routeService implements the RouteUsecase interface.
type routeService struct {
	storeRepo repository.StoreRepository
	auditRepo repository.AuditLogRepository
	provider  service.RouteProvider
	audit     *auditTrail
	logger    *slog.Logger
}

// RouteServiceParams holds dependencies for RouteService, injected by Fx.
type RouteServiceParams struct {
	fx.In

	StoreRepo repository.StoreRepository
	AuditRepo repository.AuditLogRepository
	Provider  service.RouteProvider
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewRouteService is the constructor for routeService.
func NewRouteService(params RouteServiceParams) usecase.RouteUsecase {
	return &routeService{
		storeRepo: params.StoreRepo,
		auditRepo: params.AuditRepo,
		provider:  params.Provider,
		audit:     newAuditTrail(params.Publisher, params.Logger),
		logger:    params.Logger,
	}
}

func (srv *routeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CalculateRoute asks the routing provider for a path through the stores.
// No transaction is held while the provider is called.
func (srv *routeService) CalculateRoute(ctx context.Context, actor usecase.Actor, input usecase.RouteInput) (*entity.Route, error) {
	if len(input.StoreIDs) < minRouteStops {
		return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("at least %d stores are required", minRouteStops))
	}

	stores, points, err := srv.resolveStops(ctx, input.StoreIDs)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Calculating route",
		slog.String("provider", srv.provider.Name()),
		slog.Int("stops", len(stores)),
		slog.Bool("optimize", input.OptimizeOrder),
	)

	resp, err := srv.provider.Route(ctx, service.RouteRequest{Points: points, Optimize: input.OptimizeOrder})
	if err != nil {
		srv.log(ctx).Warn("Route calculation failed", slog.String("provider", srv.provider.Name()), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to calculate route")
	}

	route := &entity.Route{
		DistanceKm:  roundTo2(resp.DistanceMeters / 1000),
		DurationMin: roundTo2(resp.DurationSeconds / 60),
		Geometry:    resp.Geometry,
		Stores:      visitOrder(stores, resp.WaypointIndex),
		Optimized:   input.OptimizeOrder,
		Provider:    srv.provider.Name(),
	}

	logEntry := newAuditLog(actor, entity.AuditRouteCalculated, map[string]any{
		"store_ids":    storeIDStrings(route.Stores),
		"optimized":    route.Optimized,
		"provider":     route.Provider,
		"distance_km":  route.DistanceKm,
		"duration_min": route.DurationMin,
	})
	if err := srv.auditRepo.Create(ctx, logEntry); err != nil {
		srv.log(ctx).Error("Failed to record route calculation", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to record route calculation")
	}
	srv.audit.publish(ctx, logEntry)

	return route, nil
}

// resolveStops returns the stores in request order together with their points.
func (srv *routeService) resolveStops(ctx context.Context, ids []uuid.UUID) ([]*entity.Store, []orb.Point, error) {
	found, err := srv.storeRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to resolve stores")
	}
	byID := make(map[uuid.UUID]*entity.Store, len(found))
	for _, store := range found {
		byID[store.ID] = store
	}

	stores := make([]*entity.Store, 0, len(ids))
	points := make([]orb.Point, 0, len(ids))
	for _, id := range ids {
		store, ok := byID[id]
		if !ok {
			return nil, nil, domainerrors.ErrReferenceNotFound.WithDetails(fmt.Sprintf("store %s does not exist", id))
		}

		point, ok := store.Point()
		if !ok {
			return nil, nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("store %q has no coordinates", store.Name))
		}

		stores = append(stores, store)
		points = append(points, point)
	}

	return stores, points, nil
}

// visitOrder places stores[i] at position index[i]. A missing index keeps the request order.
func visitOrder(stores []*entity.Store, index []int) []*entity.Store {
	if len(index) != len(stores) {
		return slices.Clone(stores)
	}

	ordered := make([]*entity.Store, len(stores))
	for i, position := range index {
		ordered[position] = stores[i]
	}

	return ordered
}

func roundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}

func storeIDStrings(stores []*entity.Store) []string {
	ids := make([]string, 0, len(stores))
	for _, store := range stores {
		ids = append(ids, store.ID.String())
	}

	return ids
}
