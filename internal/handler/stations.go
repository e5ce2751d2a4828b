package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/aws/aws-lambda-go/events"

	"github.com/chargescout/chargescout/backend-go/internal/api"
	"github.com/chargescout/chargescout/backend-go/internal/directory"
	"github.com/chargescout/chargescout/backend-go/internal/maps"
)

type StationsHandler struct {
	directory directory.Directory
}

func NewStationsHandler(d directory.Directory) *StationsHandler {
	return &StationsHandler{
		directory: d,
	}
}

func (h *StationsHandler) HandleRequest(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	params := request.QueryStringParameters

	// Check if we're looking up by station id or searching by filters
	if idStr, ok := params["stationId"]; ok {
		return h.handleByID(ctx, idStr)
	}

	filters, err := api.ParseFilters(params)
	if err != nil {
		var invalidCoordErr api.InvalidCoordinatesError
		if errors.As(err, &invalidCoordErr) {
			return api.Error(err.Error(), http.StatusBadRequest)
		}
		return api.Error("Invalid parameters", http.StatusBadRequest)
	}

	result := h.directory.SearchStations(ctx, filters)
	if !result.Success {
		return api.Error(result.Error, searchFailureStatus(result.Error))
	}

	meta := &api.Meta{Count: result.Meta.Count}

	// The browser can ask for marker descriptors instead of full records.
	if params["markers"] == "true" {
		return api.Success(maps.StationMarkers(result.Stations), meta)
	}

	return api.Success(result.Stations, meta)
}

func (h *StationsHandler) handleByID(ctx context.Context, idStr string) (events.APIGatewayProxyResponse, error) {
	id, err := strconv.Atoi(idStr)
	if err != nil {
		return api.Error("Invalid station id", http.StatusBadRequest)
	}

	station, err := h.directory.GetStationByID(ctx, id)
	if err != nil {
		var notFound directory.NotFoundError
		if errors.As(err, &notFound) {
			return api.Error(directory.MsgStationNotFound, http.StatusNotFound)
		}
		var rateLimited directory.RateLimitError
		if errors.As(err, &rateLimited) {
			return api.Error(directory.MsgRateLimited, http.StatusTooManyRequests)
		}
		return api.Error(directory.MsgAPIError, http.StatusBadGateway)
	}

	return api.Success(station, nil)
}

func searchFailureStatus(message string) int {
	if message == directory.MsgRateLimited {
		return http.StatusTooManyRequests
	}
	return http.StatusBadGateway
}
