package maps

import (
	"context"

	"github.com/chargescout/chargescout/backend-go/internal/models"
)

// Service defines the interface for the mapping adapter.
type Service interface {
	Geocode(ctx context.Context, address string) (*models.Location, error)
	ReverseGeocode(ctx context.Context, lat, lng float64) (*models.Location, error)
	GetDistance(ctx context.Context, origin, destination models.LatLng) (*models.DistanceResult, error)
	GetDirections(ctx context.Context, origin, destination models.LatLng, waypoints []models.LatLng) (*models.NavigationRoute, error)
	Autocomplete(ctx context.Context, input string, limit int) ([]models.PlaceSuggestion, error)
}
