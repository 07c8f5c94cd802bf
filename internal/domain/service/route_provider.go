package service

import (
	"context"
	"encoding/json"

	"github.com/paulmach/orb"
)

// RouteRequest asks for a path through Points in the given order, or in the
// provider's best order when Optimize is set.
type RouteRequest struct {
	Points   []orb.Point
	Optimize bool
}

// RouteResponse is the raw provider answer.
type RouteResponse struct {
	DistanceMeters  float64
	DurationSeconds float64
	Geometry        json.RawMessage
	// WaypointIndex[i] is the visiting position of Points[i]. Nil when the
	// provider kept the requested order.
	WaypointIndex []int
}

// RouteProvider computes multi-stop routes. Implementations call external
// services and must never be used inside a database transaction.
type RouteProvider interface {
	Name() string
	Route(ctx context.Context, req RouteRequest) (*RouteResponse, error)
}
