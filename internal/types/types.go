// README: Common value objects shared across modules.
package types

// ID identifies an entity (jobs, contractors, assignments, users).
type ID string

// Point is a geographic coordinate pair in decimal degrees.
type Point struct {
	Lat float64
	Lng float64
}

// DistanceEstimate is a road distance and travel-time estimate between two
// points, as reported by a distance provider.
type DistanceEstimate struct {
	Miles   float64
	Minutes float64
}
