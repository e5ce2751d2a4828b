package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/aws/aws-lambda-go/events"

	"github.com/chargescout/chargescout/backend-go/internal/api"
	"github.com/chargescout/chargescout/backend-go/internal/maps"
	"github.com/chargescout/chargescout/backend-go/internal/models"
)

// DirectionsHandler serves turn-by-turn routes and distance/duration
// lookups between an origin and a destination.
type DirectionsHandler struct {
	mapsService maps.Service
}

func NewDirectionsHandler(mapsService maps.Service) *DirectionsHandler {
	return &DirectionsHandler{
		mapsService: mapsService,
	}
}

func (h *DirectionsHandler) HandleRequest(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	params := request.QueryStringParameters

	origin, ok := parsePoint(params["originLat"], params["originLng"])
	if !ok {
		return api.Error("Invalid origin coordinates", http.StatusBadRequest)
	}
	destination, ok := parsePoint(params["destLat"], params["destLng"])
	if !ok {
		return api.Error("Invalid destination coordinates", http.StatusBadRequest)
	}

	if params["mode"] == "distance" {
		result, err := h.mapsService.GetDistance(ctx, origin, destination)
		if err != nil {
			return mapsError(err)
		}
		// nil means no drivable path; callers treat that as a normal outcome
		return api.Success(result, nil)
	}

	waypoints, ok := parseWaypoints(params["waypoints"])
	if !ok {
		return api.Error("Invalid waypoints", http.StatusBadRequest)
	}

	route, err := h.mapsService.GetDirections(ctx, origin, destination, waypoints)
	if err != nil {
		return mapsError(err)
	}
	return api.Success(route, nil)
}

func parsePoint(latStr, lngStr string) (models.LatLng, bool) {
	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return models.LatLng{}, false
	}
	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil {
		return models.LatLng{}, false
	}
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return models.LatLng{}, false
	}
	return models.LatLng{Lat: lat, Lng: lng}, true
}

// parseWaypoints decodes "lat,lng|lat,lng" into ordered points.
func parseWaypoints(raw string) ([]models.LatLng, bool) {
	if raw == "" {
		return nil, true
	}

	var points []models.LatLng
	for _, pair := range strings.Split(raw, "|") {
		parts := strings.SplitN(pair, ",", 2)
		if len(parts) != 2 {
			return nil, false
		}
		point, ok := parsePoint(strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]))
		if !ok {
			return nil, false
		}
		points = append(points, point)
	}
	return points, true
}
