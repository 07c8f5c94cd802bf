package constants

// Event publisher providers accepted by pubsub.provider.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Routing providers accepted by routing.provider.
const (
	RoutingProviderOSRM      = "osrm"
	RoutingProviderHaversine = "haversine"
)

// Deployment environments accepted by env.env.
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)
