package routing

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Yakorrr/merchandising-management-system/config"
	domainerrors "github.com/Yakorrr/merchandising-management-system/internal/domain/errors"
	"github.com/Yakorrr/merchandising-management-system/internal/domain/service"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

const (
	defaultOSRMTimeout   = 10 * time.Second
	defaultOSRMRoutePath = "/route/v1/driving/"
	defaultOSRMTripPath  = "/trip/v1/driving/"

	osrmRouteParams = "overview=full&alternatives=false&steps=false"
	osrmTripParams  = "overview=full"
	osrmCodeOK      = "Ok"
)

// osrmProvider talks to an OSRM-compatible HTTP API.
type osrmProvider struct {
	baseURL    string
	routePath  string
	tripPath   string
	httpClient *http.Client
}

type osrmLeg struct {
	Distance float64         `json:"distance"`
	Duration float64         `json:"duration"`
	Geometry json.RawMessage `json:"geometry"`
}

type osrmWaypoint struct {
	WaypointIndex *int `json:"waypoint_index"`
}

type osrmResponse struct {
	Code      string         `json:"code"`
	Message   string         `json:"message"`
	Routes    []osrmLeg      `json:"routes"`
	Trips     []osrmLeg      `json:"trips"`
	Waypoints []osrmWaypoint `json:"waypoints"`
}

// NewOSRMProvider creates a provider for the configured OSRM endpoint.
func NewOSRMProvider(cfg *config.RoutingConfig) service.RouteProvider {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultOSRMTimeout
	}

	routePath := cfg.RoutePath
	if routePath == "" {
		routePath = defaultOSRMRoutePath
	}

	tripPath := cfg.TripPath
	if tripPath == "" {
		tripPath = defaultOSRMTripPath
	}

	return &osrmProvider{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		routePath: ensureSlashes(routePath),
		tripPath:  ensureSlashes(tripPath),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (p *osrmProvider) Name() string {
	return "osrm"
}

// Route calls /route for a fixed order or /trip when the order may be optimised.
func (p *osrmProvider) Route(ctx context.Context, req service.RouteRequest) (*service.RouteResponse, error) {
	url := p.buildURL(req)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	httpReq.Header.Set("Accept", "application/json")

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return nil, domainerrors.ErrRoutingUnavailable.WithDetails(err.Error())
	}
	defer resp.Body.Close()

	// OSRM reports routing failures such as NoRoute with a 4xx status and a JSON body.
	var body osrmResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, domainerrors.ErrRoutingUnavailable.WithDetails(fmt.Sprintf("unreadable response, status %d", resp.StatusCode))
	}

	if body.Code != osrmCodeOK {
		detail := body.Code
		if body.Message != "" {
			detail += ": " + body.Message
		}

		return nil, domainerrors.ErrRouteNotFound.WithDetails(detail)
	}

	legs := body.Routes
	if req.Optimize {
		legs = body.Trips
	}
	if len(legs) == 0 {
		return nil, domainerrors.ErrRouteNotFound.WithDetails("no route or trip found for the given points")
	}

	best := legs[0]
	result := &service.RouteResponse{
		DistanceMeters:  best.Distance,
		DurationSeconds: best.Duration,
		Geometry:        best.Geometry,
	}

	if req.Optimize {
		order, err := waypointOrder(body.Waypoints, len(req.Points))
		if err != nil {
			return nil, err
		}
		result.WaypointIndex = order
	}

	return result, nil
}

func (p *osrmProvider) buildURL(req service.RouteRequest) string {
	coords := make([]string, 0, len(req.Points))
	for _, pt := range req.Points {
		coords = append(coords, formatCoordinate(pt))
	}

	path, params := p.routePath, osrmRouteParams
	if req.Optimize {
		path, params = p.tripPath, osrmTripParams
	}

	return p.baseURL + path + strings.Join(coords, ";") + "?" + params
}

// waypointOrder returns the visiting position of each input point and rejects
// anything that is not a permutation of the inputs.
func waypointOrder(waypoints []osrmWaypoint, n int) ([]int, error) {
	if len(waypoints) != n {
		return nil, domainerrors.ErrRoutingUnavailable.WithDetails(fmt.Sprintf("expected %d waypoints, got %d", n, len(waypoints)))
	}

	seen := make([]bool, n)
	order := make([]int, n)
	for i, wp := range waypoints {
		if wp.WaypointIndex == nil || *wp.WaypointIndex < 0 || *wp.WaypointIndex >= n || seen[*wp.WaypointIndex] {
			return nil, domainerrors.ErrRoutingUnavailable.WithDetails("invalid waypoint order in trip response")
		}
		seen[*wp.WaypointIndex] = true
		order[i] = *wp.WaypointIndex
	}

	return order, nil
}

// formatCoordinate renders a point in OSRM's lng,lat form.
func formatCoordinate(pt orb.Point) string {
	return fmt.Sprintf("%g,%g", pt.Lon(), pt.Lat())
}

func ensureSlashes(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if !strings.HasSuffix(path, "/") {
		path += "/"
	}

	return path
}
