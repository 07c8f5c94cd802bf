package routing

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Yakorrr/merchandising-management-system/config"
	domainerrors "github.com/Yakorrr/merchandising-management-system/internal/domain/errors"
	"github.com/Yakorrr/merchandising-management-system/internal/domain/service"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var kyivPoints = []orb.Point{{30.5234, 50.4501}, {30.6, 50.5}, {30.7, 50.4}}

func newOSRMServer(t *testing.T, status int, body string, gotURL *string) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*gotURL = r.URL.String()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)

	return srv
}

func TestOSRMProvider_Route(t *testing.T) {
	var gotURL string
	srv := newOSRMServer(t, http.StatusOK,
		`{"code":"Ok","routes":[{"distance":12345.6,"duration":900,"geometry":"abc_polyline"}],"waypoints":[{},{},{}]}`, &gotURL)

	provider := NewOSRMProvider(&config.RoutingConfig{BaseURL: srv.URL, RoutePath: "route/v1/driving"})
	resp, err := provider.Route(context.Background(), service.RouteRequest{Points: kyivPoints})
	require.NoError(t, err)

	assert.Equal(t, "/route/v1/driving/30.5234,50.4501;30.6,50.5;30.7,50.4?overview=full&alternatives=false&steps=false", gotURL)
	assert.InDelta(t, 12345.6, resp.DistanceMeters, 1e-9)
	assert.InDelta(t, 900, resp.DurationSeconds, 1e-9)
	assert.JSONEq(t, `"abc_polyline"`, string(resp.Geometry))
	assert.Nil(t, resp.WaypointIndex)
}

func TestOSRMProvider_TripReordersByWaypointIndex(t *testing.T) {
	var gotURL string
	srv := newOSRMServer(t, http.StatusOK,
		`{"code":"Ok","trips":[{"distance":2000,"duration":120,"geometry":{"type":"LineString","coordinates":[]}}],
		   "waypoints":[{"waypoint_index":0},{"waypoint_index":2},{"waypoint_index":1}]}`, &gotURL)

	provider := NewOSRMProvider(&config.RoutingConfig{BaseURL: srv.URL + "/"})
	resp, err := provider.Route(context.Background(), service.RouteRequest{Points: kyivPoints, Optimize: true})
	require.NoError(t, err)

	assert.Equal(t, "/trip/v1/driving/30.5234,50.4501;30.6,50.5;30.7,50.4?overview=full", gotURL)
	assert.Equal(t, []int{0, 2, 1}, resp.WaypointIndex)
}

func TestOSRMProvider_Errors(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		optimize bool
		want     error
	}{
		{name: "no route code", status: http.StatusBadRequest, body: `{"code":"NoRoute","message":"Impossible route"}`, want: domainerrors.ErrRouteNotFound},
		{name: "empty routes", status: http.StatusOK, body: `{"code":"Ok","routes":[]}`, want: domainerrors.ErrRouteNotFound},
		{name: "garbage body", status: http.StatusBadGateway, body: `<html>bad gateway</html>`, want: domainerrors.ErrRoutingUnavailable},
		{
			name: "broken waypoint permutation", status: http.StatusOK, optimize: true,
			body: `{"code":"Ok","trips":[{"distance":1,"duration":1}],"waypoints":[{"waypoint_index":0},{"waypoint_index":0},{"waypoint_index":1}]}`,
			want: domainerrors.ErrRoutingUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotURL string
			srv := newOSRMServer(t, tt.status, tt.body, &gotURL)

			provider := NewOSRMProvider(&config.RoutingConfig{BaseURL: srv.URL})
			_, err := provider.Route(context.Background(), service.RouteRequest{Points: kyivPoints, Optimize: tt.optimize})
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestOSRMProvider_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	provider := NewOSRMProvider(&config.RoutingConfig{BaseURL: url})
	_, err := provider.Route(context.Background(), service.RouteRequest{Points: kyivPoints})
	assert.ErrorIs(t, err, domainerrors.ErrRoutingUnavailable)
}

func TestHaversineProvider_Route(t *testing.T) {
	provider := NewHaversineProvider(60)
	resp, err := provider.Route(context.Background(), service.RouteRequest{
		Points: []orb.Point{{0, 0}, {0, 1}},
	})
	require.NoError(t, err)

	// One degree of latitude on orb's 6378137 m sphere.
	assert.InDelta(t, geo.DistanceHaversine(orb.Point{0, 0}, orb.Point{0, 1}), resp.DistanceMeters, 1e-6)
	assert.InDelta(t, 111319, resp.DistanceMeters, 1)
	assert.InDelta(t, resp.DistanceMeters/1000*60, resp.DurationSeconds, 1e-6)
	assert.Nil(t, resp.WaypointIndex)

	var geometry struct {
		Type        string      `json:"type"`
		Coordinates [][]float64 `json:"coordinates"`
	}
	require.NoError(t, json.Unmarshal(resp.Geometry, &geometry))
	assert.Equal(t, "LineString", geometry.Type)
	assert.Len(t, geometry.Coordinates, 2)

	_, err = provider.Route(context.Background(), service.RouteRequest{Points: []orb.Point{{0, 0}}})
	assert.ErrorIs(t, err, domainerrors.ErrRouteNotFound)
}

func TestNewRouteProvider(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	p, err := NewRouteProvider(ProviderParams{Config: &config.Config{}, Logger: logger})
	require.NoError(t, err)
	assert.Equal(t, "haversine", p.Name())

	p, err = NewRouteProvider(ProviderParams{Config: &config.Config{Routing: &config.RoutingConfig{BaseURL: "http://osrm"}}, Logger: logger})
	require.NoError(t, err)
	assert.Equal(t, "osrm", p.Name())

	_, err = NewRouteProvider(ProviderParams{Config: &config.Config{Routing: &config.RoutingConfig{Provider: "osrm"}}, Logger: logger})
	assert.ErrorContains(t, err, "base URL")

	_, err = NewRouteProvider(ProviderParams{Config: &config.Config{Routing: &config.RoutingConfig{Provider: "graphhopper"}}, Logger: logger})
	assert.ErrorContains(t, err, "unknown routing provider")
}
