package entity

import "encoding/json"

// Route is a multi-stop path through stores.
type Route struct {
	// DistanceKm and DurationMin are rounded to two decimals.
	DistanceKm  float64 `json:"distance_km"`
	DurationMin float64 `json:"duration_min"`
	// Geometry is passed through as produced by the routing provider.
	Geometry  json.RawMessage `json:"geometry"`
	Stores    []*Store        `json:"stores"`
	Optimized bool            `json:"optimized"`
	Provider  string          `json:"provider"`
}
