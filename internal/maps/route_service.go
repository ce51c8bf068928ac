// README: Google Maps travel-estimate client for transport enrichment.
package maps

import (
	"context"
	"fmt"
	"time"

	"googlemaps.github.io/maps"

	"yatra/internal/provider"
)

// RouteService handles interactions with the Google Maps Directions API.
type RouteService struct {
	client *maps.Client
}

// NewRouteService creates a RouteService with the given API key.
func NewRouteService(apiKey string) (*RouteService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &RouteService{client: client}, nil
}

// TravelEstimate returns the driving duration and a human-readable distance
// for a trip from origin to destination.
func (s *RouteService) TravelEstimate(ctx context.Context, origin, destination string) (time.Duration, string, error) {
	r := &maps.DirectionsRequest{
		Origin:      origin,
		Destination: destination,
		Mode:        maps.TravelModeDriving,
		Language:    "en",
		Region:      "IN", // Bias results to India
	}

	routes, _, err := s.client.Directions(ctx, r)
	if err != nil {
		return 0, "", provider.Classify("googlemaps", err)
	}

	if len(routes) == 0 || len(routes[0].Legs) == 0 {
		return 0, "", provider.Malformed("googlemaps", fmt.Errorf("no route from %q to %q", origin, destination))
	}

	leg := routes[0].Legs[0]
	return leg.Duration, leg.Distance.HumanReadable, nil
}
