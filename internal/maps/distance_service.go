// README: Distance provider backed by the Google Maps Distance Matrix API with a Redis cache.
package maps

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"googlemaps.github.io/maps"

	"fieldops/internal/logging"
	"fieldops/internal/types"
)

const (
	// cacheTTL bounds staleness of cached road distances; contractor and
	// job coordinates rarely move, so a day is plenty.
	cacheTTL = 24 * time.Hour

	metersPerMile = 1609.344
)

// DistanceService resolves road distance and travel time between two
// coordinate pairs. Lookups are read-through cached in Redis; callers treat
// the service as a black box and do their own failure handling.
type DistanceService struct {
	client *maps.Client
	cache  *redis.Client
	log    *logging.Logger
}

func NewDistanceService(apiKey string, cache *redis.Client, log *logging.Logger) (*DistanceService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &DistanceService{client: client, cache: cache, log: log}, nil
}

// Estimate returns the driving distance in miles and travel time in minutes
// from origin to dest.
func (s *DistanceService) Estimate(ctx context.Context, origin, dest types.Point) (types.DistanceEstimate, error) {
	if est, ok := s.cached(ctx, origin, dest); ok {
		return est, nil
	}

	ests, err := s.matrix(ctx, origin, []types.Point{dest})
	if err != nil {
		return types.DistanceEstimate{}, err
	}
	s.store(ctx, origin, dest, ests[0])
	return ests[0], nil
}

// EstimateBatch resolves one origin against many destinations in a single
// Distance Matrix call. Results are cached individually.
func (s *DistanceService) EstimateBatch(ctx context.Context, origin types.Point, dests []types.Point) ([]types.DistanceEstimate, error) {
	if len(dests) == 0 {
		return nil, nil
	}
	ests, err := s.matrix(ctx, origin, dests)
	if err != nil {
		return nil, err
	}
	for i, d := range dests {
		s.store(ctx, origin, d, ests[i])
	}
	return ests, nil
}

func (s *DistanceService) matrix(ctx context.Context, origin types.Point, dests []types.Point) ([]types.DistanceEstimate, error) {
	req := &maps.DistanceMatrixRequest{
		Origins:      []string{coord(origin)},
		Destinations: make([]string, len(dests)),
		Mode:         maps.TravelModeDriving,
		Units:        maps.UnitsImperial,
	}
	for i, d := range dests {
		req.Destinations[i] = coord(d)
	}

	resp, err := s.client.DistanceMatrix(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("maps api error: %w", err)
	}
	if len(resp.Rows) == 0 || len(resp.Rows[0].Elements) != len(dests) {
		return nil, fmt.Errorf("maps api returned %d rows", len(resp.Rows))
	}

	out := make([]types.DistanceEstimate, len(dests))
	for i, el := range resp.Rows[0].Elements {
		if el.Status != "OK" {
			return nil, fmt.Errorf("no route found: %s", el.Status)
		}
		out[i] = types.DistanceEstimate{
			Miles:   float64(el.Distance.Meters) / metersPerMile,
			Minutes: el.Duration.Minutes(),
		}
	}
	return out, nil
}

func (s *DistanceService) cached(ctx context.Context, origin, dest types.Point) (types.DistanceEstimate, bool) {
	val, err := s.cache.Get(ctx, cacheKey(origin, dest)).Result()
	if err == redis.Nil {
		return types.DistanceEstimate{}, false
	}
	if err != nil {
		s.log.Debug("distance cache read failed", "err", err)
		return types.DistanceEstimate{}, false
	}
	var est types.DistanceEstimate
	if err := json.Unmarshal([]byte(val), &est); err != nil {
		return types.DistanceEstimate{}, false
	}
	return est, true
}

func (s *DistanceService) store(ctx context.Context, origin, dest types.Point, est types.DistanceEstimate) {
	raw, err := json.Marshal(est)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, cacheKey(origin, dest), raw, cacheTTL).Err(); err != nil {
		s.log.Debug("distance cache write failed", "err", err)
	}
}

func cacheKey(origin, dest types.Point) string {
	return fmt.Sprintf("distance:%s:%s", coord(origin), coord(dest))
}

func coord(p types.Point) string {
	return fmt.Sprintf("%.5f,%.5f", p.Lat, p.Lng)
}
