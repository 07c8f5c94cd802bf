// Package routing computes multi-stop routes for merchandisers.
package routing

import (
	"log/slog"
	"strings"

	"github.com/Yakorrr/merchandising-management-system/config"
	"github.com/Yakorrr/merchandising-management-system/internal/domain/constants"
	"github.com/Yakorrr/merchandising-management-system/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ProviderParams holds dependencies for RouteProvider, injected by Fx
type ProviderParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewRouteProvider creates a RouteProvider based on configuration. Without a
// configured routing service it falls back to straight-line estimates.
func NewRouteProvider(params ProviderParams) (service.RouteProvider, error) {
	cfg := params.Config.Routing
	logger := params.Logger

	if cfg == nil {
		cfg = &config.RoutingConfig{}
	}

	provider := strings.ToLower(strings.TrimSpace(cfg.Provider))
	if provider == "" && cfg.BaseURL == "" {
		provider = constants.RoutingProviderHaversine
	}

	switch provider {
	case constants.RoutingProviderOSRM, "":
		if cfg.BaseURL == "" {
			return nil, errors.New("base URL is required for osrm provider")
		}
		logger.Info("Using OSRM route provider",
			slog.String("base_url", cfg.BaseURL),
		)

		return NewOSRMProvider(cfg), nil

	case constants.RoutingProviderHaversine:
		logger.Info("Routing service not configured, using Haversine fallback",
			slog.Float64("speed_kmh", speedOrDefault(cfg.DefaultSpeedKmh)),
		)

		return NewHaversineProvider(cfg.DefaultSpeedKmh), nil

	default:
		return nil, errors.Errorf("unknown routing provider: %s", cfg.Provider)
	}
}

// Module provides the routing FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewRouteProvider),
)
