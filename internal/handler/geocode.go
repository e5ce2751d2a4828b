package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/aws/aws-lambda-go/events"

	"github.com/chargescout/chargescout/backend-go/internal/api"
	"github.com/chargescout/chargescout/backend-go/internal/maps"
)

const defaultAutocompleteLimit = 5

// GeocodeHandler serves forward/reverse geocoding and address autocomplete.
type GeocodeHandler struct {
	mapsService maps.Service
}

func NewGeocodeHandler(mapsService maps.Service) *GeocodeHandler {
	return &GeocodeHandler{
		mapsService: mapsService,
	}
}

func (h *GeocodeHandler) HandleRequest(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	params := request.QueryStringParameters

	if input, ok := params["input"]; ok {
		return h.handleAutocomplete(ctx, input, params["limit"])
	}

	if address, ok := params["address"]; ok {
		loc, err := h.mapsService.Geocode(ctx, address)
		if err != nil {
			return mapsError(err)
		}
		// A nil location means no match; that is a normal outcome.
		return api.Success(loc, nil)
	}

	lat, lng, err := api.ParseCoordinates(params)
	if err != nil || lat == nil || lng == nil {
		return api.Error("Provide either address, input, or lat/lng", http.StatusBadRequest)
	}

	loc, err := h.mapsService.ReverseGeocode(ctx, *lat, *lng)
	if err != nil {
		return mapsError(err)
	}
	return api.Success(loc, nil)
}

func (h *GeocodeHandler) handleAutocomplete(ctx context.Context, input, limitStr string) (events.APIGatewayProxyResponse, error) {
	limit := defaultAutocompleteLimit
	if limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	suggestions, err := h.mapsService.Autocomplete(ctx, input, limit)
	if err != nil {
		return mapsError(err)
	}
	return api.Success(suggestions, &api.Meta{Count: len(suggestions)})
}

func mapsError(err error) (events.APIGatewayProxyResponse, error) {
	if errors.Is(err, maps.ErrMissingAPIKey) {
		return api.Error(maps.MsgLoadFailed, http.StatusServiceUnavailable)
	}
	return api.Error(maps.MsgLoadFailed, http.StatusBadGateway)
}
