package maps

import (
	"context"
	"fmt"
	"strings"
	"time"

	"googlemaps.github.io/maps"

	"github.com/chargescout/chargescout/backend-go/internal/cache"
	"github.com/chargescout/chargescout/backend-go/internal/geo"
	"github.com/chargescout/chargescout/backend-go/internal/models"
)

// Adapter exposes the vendor operations as single-result calls. Each call
// yields exactly one success-or-failure outcome; the vendor offers no
// mid-flight cancellation beyond the request context. "Nothing found" is a
// normal outcome (nil result, nil error), not a failure.
type Adapter struct {
	handle       *Handle
	geocodeCache *cache.GeocodeCache
}

// NewAdapter wires an adapter to a handle. geocodeCache may be nil to
// disable geocode caching.
func NewAdapter(handle *Handle, geocodeCache *cache.GeocodeCache) *Adapter {
	return &Adapter{
		handle:       handle,
		geocodeCache: geocodeCache,
	}
}

// Geocode resolves an address to a normalized location.
func (a *Adapter) Geocode(ctx context.Context, address string) (*models.Location, error) {
	if a.geocodeCache != nil {
		if loc, ok := a.geocodeCache.Get("fwd:" + address); ok {
			return &loc, nil
		}
	}

	client, err := a.handle.Client()
	if err != nil {
		return nil, err
	}

	results, err := client.Geocode(ctx, &maps.GeocodingRequest{Address: address})
	if err != nil {
		return nil, fmt.Errorf("geocoding %q: %w", address, err)
	}
	if len(results) == 0 {
		return nil, nil
	}

	loc := normalizeGeocodingResult(results[0])
	if a.geocodeCache != nil {
		a.geocodeCache.Add("fwd:"+address, loc)
	}
	return &loc, nil
}

// ReverseGeocode resolves coordinates to a normalized location.
func (a *Adapter) ReverseGeocode(ctx context.Context, lat, lng float64) (*models.Location, error) {
	key := fmt.Sprintf("rev:%.6f,%.6f", lat, lng)
	if a.geocodeCache != nil {
		if loc, ok := a.geocodeCache.Get(key); ok {
			return &loc, nil
		}
	}

	client, err := a.handle.Client()
	if err != nil {
		return nil, err
	}

	results, err := client.ReverseGeocode(ctx, &maps.GeocodingRequest{
		LatLng: &maps.LatLng{Lat: lat, Lng: lng},
	})
	if err != nil {
		return nil, fmt.Errorf("reverse geocoding %f,%f: %w", lat, lng, err)
	}
	if len(results) == 0 {
		return nil, nil
	}

	loc := normalizeGeocodingResult(results[0])
	if a.geocodeCache != nil {
		a.geocodeCache.Add(key, loc)
	}
	return &loc, nil
}

// GetDistance returns driving distance and duration between two points.
func (a *Adapter) GetDistance(ctx context.Context, origin, destination models.LatLng) (*models.DistanceResult, error) {
	client, err := a.handle.Client()
	if err != nil {
		return nil, err
	}

	resp, err := client.DistanceMatrix(ctx, &maps.DistanceMatrixRequest{
		Origins:      []string{formatLatLng(origin)},
		Destinations: []string{formatLatLng(destination)},
		Units:        maps.UnitsImperial,
		Mode:         maps.TravelModeDriving,
	})
	if err != nil {
		return nil, fmt.Errorf("distance matrix: %w", err)
	}

	if len(resp.Rows) == 0 || len(resp.Rows[0].Elements) == 0 {
		return nil, nil
	}

	element := resp.Rows[0].Elements[0]
	if element.Status != "OK" {
		// No drivable path between the points is a normal outcome.
		return nil, nil
	}

	return &models.DistanceResult{
		DistanceText:  element.Distance.HumanReadable,
		DistanceMeter: element.Distance.Meters,
		DurationText:  formatDuration(element.Duration),
		DurationSecs:  int(element.Duration.Seconds()),
	}, nil
}

// GetDirections returns a turn-by-turn route from origin to destination
// through the given waypoints (reordered for optimization).
func (a *Adapter) GetDirections(ctx context.Context, origin, destination models.LatLng, waypoints []models.LatLng) (*models.NavigationRoute, error) {
	client, err := a.handle.Client()
	if err != nil {
		return nil, err
	}

	req := &maps.DirectionsRequest{
		Origin:      formatLatLng(origin),
		Destination: formatLatLng(destination),
		Mode:        maps.TravelModeDriving,
		Units:       maps.UnitsImperial,
	}
	if len(waypoints) > 0 {
		req.Optimize = true
		for _, wp := range waypoints {
			req.Waypoints = append(req.Waypoints, formatLatLng(wp))
		}
	}

	routes, _, err := client.Directions(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("directions: %w", err)
	}
	if len(routes) == 0 {
		return nil, nil
	}

	route := normalizeRoute(routes[0])
	return &route, nil
}

// Autocomplete returns address suggestions for a partial input. Only
// predictions whose place resolves with geometry are returned.
func (a *Adapter) Autocomplete(ctx context.Context, input string, limit int) ([]models.PlaceSuggestion, error) {
	client, err := a.handle.Client()
	if err != nil {
		return nil, err
	}

	resp, err := client.PlaceAutocomplete(ctx, &maps.PlaceAutocompleteRequest{
		Input: input,
	})
	if err != nil {
		return nil, fmt.Errorf("autocomplete %q: %w", input, err)
	}

	var suggestions []models.PlaceSuggestion
	for _, prediction := range resp.Predictions {
		if limit > 0 && len(suggestions) >= limit {
			break
		}

		details, err := client.PlaceDetails(ctx, &maps.PlaceDetailsRequest{
			PlaceID: prediction.PlaceID,
			Fields: []maps.PlaceDetailsFieldMask{
				maps.PlaceDetailsFieldMaskGeometry,
			},
		})
		if err != nil {
			// Skip predictions whose place cannot be resolved.
			continue
		}
		if details.Geometry.Location.Lat == 0 && details.Geometry.Location.Lng == 0 {
			continue
		}

		suggestions = append(suggestions, models.PlaceSuggestion{
			Description: prediction.Description,
			PlaceID:     prediction.PlaceID,
			Latitude:    details.Geometry.Location.Lat,
			Longitude:   details.Geometry.Location.Lng,
		})
	}

	return suggestions, nil
}

// normalizeGeocodingResult extracts the normalized location from the
// vendor's structured address-component list by matching type tags.
func normalizeGeocodingResult(result maps.GeocodingResult) models.Location {
	loc := models.Location{
		FormattedAddress: result.FormattedAddress,
		Latitude:         result.Geometry.Location.Lat,
		Longitude:        result.Geometry.Location.Lng,
	}

	for _, component := range result.AddressComponents {
		for _, componentType := range component.Types {
			switch componentType {
			case "street_number":
				loc.StreetNumber = component.LongName
			case "route":
				loc.Route = component.LongName
			case "locality":
				loc.City = component.LongName
			case "administrative_area_level_1":
				loc.State = component.ShortName
			case "postal_code":
				loc.PostalCode = component.LongName
			case "country":
				loc.Country = component.LongName
			}
		}
	}

	return loc
}

func normalizeRoute(route maps.Route) models.NavigationRoute {
	var totalMeters int
	var totalDuration time.Duration
	var steps []models.RouteStep
	var startAddress, endAddress string

	for i, leg := range route.Legs {
		totalMeters += leg.Distance.Meters
		totalDuration += leg.Duration

		if i == 0 {
			startAddress = leg.StartAddress
		}
		endAddress = leg.EndAddress

		for _, step := range leg.Steps {
			steps = append(steps, models.RouteStep{
				Instruction: stripHTML(step.HTMLInstructions),
				Distance:    step.Distance.HumanReadable,
				Duration:    formatDuration(step.Duration),
				StartLoc:    models.LatLng{Lat: step.StartLocation.Lat, Lng: step.StartLocation.Lng},
				EndLoc:      models.LatLng{Lat: step.EndLocation.Lat, Lng: step.EndLocation.Lng},
				EncodedPath: step.Polyline.Points,
			})
		}
	}

	// A single-leg route keeps the vendor's distance text, matching
	// GetDistance; multi-leg totals are formatted locally.
	distance := geo.FormatDistance(float64(totalMeters) / 1609.344)
	if len(route.Legs) == 1 {
		distance = route.Legs[0].Distance.HumanReadable
	}

	return models.NavigationRoute{
		Summary:      route.Summary,
		Distance:     distance,
		Duration:     formatDuration(totalDuration),
		EncodedPath:  route.OverviewPolyline.Points,
		Steps:        steps,
		StartAddress: startAddress,
		EndAddress:   endAddress,
		Bounds: models.Bounds{
			NorthEast: models.LatLng{Lat: route.Bounds.NorthEast.Lat, Lng: route.Bounds.NorthEast.Lng},
			SouthWest: models.LatLng{Lat: route.Bounds.SouthWest.Lat, Lng: route.Bounds.SouthWest.Lng},
		},
	}
}

func formatLatLng(p models.LatLng) string {
	return fmt.Sprintf("%f,%f", p.Lat, p.Lng)
}

func formatDuration(d time.Duration) string {
	minutes := int(d.Round(time.Minute).Minutes())
	if minutes < 1 {
		minutes = 1
	}
	if minutes < 60 {
		return fmt.Sprintf("%d min", minutes)
	}
	return fmt.Sprintf("%d hr %d min", minutes/60, minutes%60)
}

// stripHTML drops markup tags from vendor instruction text.
func stripHTML(s string) string {
	var b strings.Builder
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}
