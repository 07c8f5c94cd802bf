package routing

import (
	"context"
	"encoding/json"

	domainerrors "github.com/Yakorrr/merchandising-management-system/internal/domain/errors"
	"github.com/Yakorrr/merchandising-management-system/internal/domain/service"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
)

// defaultSpeedKmh keeps duration estimates meaningful when config is missing.
const defaultSpeedKmh = 30.0

// haversineProvider estimates routes as straight legs between consecutive
// points. It never reorders.
type haversineProvider struct {
	speedKmh float64
}

// NewHaversineProvider creates the straight-line fallback provider.
func NewHaversineProvider(speedKmh float64) service.RouteProvider {
	return &haversineProvider{speedKmh: speedOrDefault(speedKmh)}
}

func speedOrDefault(speedKmh float64) float64 {
	if speedKmh <= 0 {
		return defaultSpeedKmh
	}

	return speedKmh
}

func (p *haversineProvider) Name() string {
	return "haversine"
}

func (p *haversineProvider) Route(_ context.Context, req service.RouteRequest) (*service.RouteResponse, error) {
	if len(req.Points) < 2 {
		return nil, domainerrors.ErrRouteNotFound.WithDetails("at least two points are required")
	}

	line := make(orb.LineString, 0, len(req.Points))
	meters := 0.0
	for i, pt := range req.Points {
		if i > 0 {
			meters += geo.DistanceHaversine(req.Points[i-1], pt)
		}
		line = append(line, pt)
	}

	geometry, err := json.Marshal(geojson.NewGeometry(line))
	if err != nil {
		return nil, errors.WithStack(err)
	}

	// hours = km / speed, seconds = hours * 3600
	seconds := (meters / 1000) / p.speedKmh * 3600

	return &service.RouteResponse{
		DistanceMeters:  meters,
		DurationSeconds: seconds,
		Geometry:        geometry,
	}, nil
}
