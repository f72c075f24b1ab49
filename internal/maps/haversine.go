// README: Offline distance estimator using great-circle distance.
package maps

import (
	"context"
	"math"

	"fieldops/internal/types"
)

const (
	earthRadiusKm = 6371.0
	kmPerMile     = 1.609344
	// avgSpeedMph approximates mixed urban/highway driving for the travel
	// time estimate.
	avgSpeedMph = 30.0
)

// HaversineEstimator is a DistanceProvider that needs no network or API
// key: straight-line miles with a flat-speed travel-time estimate. Used
// when no Maps API key is configured, and in local development.
type HaversineEstimator struct{}

func NewHaversineEstimator() *HaversineEstimator {
	return &HaversineEstimator{}
}

func (e *HaversineEstimator) Estimate(_ context.Context, origin, dest types.Point) (types.DistanceEstimate, error) {
	miles := haversineKm(origin.Lat, origin.Lng, dest.Lat, dest.Lng) / kmPerMile
	return types.DistanceEstimate{
		Miles:   miles,
		Minutes: miles / avgSpeedMph * 60,
	}, nil
}

func (e *HaversineEstimator) EstimateBatch(ctx context.Context, origin types.Point, dests []types.Point) ([]types.DistanceEstimate, error) {
	out := make([]types.DistanceEstimate, len(dests))
	for i, d := range dests {
		out[i], _ = e.Estimate(ctx, origin, d)
	}
	return out, nil
}

// haversineKm returns the great-circle distance in kilometres between two
// points specified in decimal degrees.
func haversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := degreesToRadians(lat2 - lat1)
	dLng := degreesToRadians(lng2 - lng1)

	rLat1 := degreesToRadians(lat1)
	rLat2 := degreesToRadians(lat2)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rLat1)*math.Cos(rLat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

func degreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}
