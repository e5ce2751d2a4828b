package handler

import (
	"context"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/rs/zerolog/log"

	"github.com/chargescout/chargescout/backend-go/internal/api"
	"github.com/chargescout/chargescout/backend-go/internal/directory"
	"github.com/chargescout/chargescout/backend-go/internal/models"
)

// LookupsHandler serves directory reference data. For the tables we mirror
// locally (connection types, levels, status types) a directory failure
// degrades to the static fallback instead of an error.
type LookupsHandler struct {
	directory directory.Directory
}

func NewLookupsHandler(d directory.Directory) *LookupsHandler {
	return &LookupsHandler{
		directory: d,
	}
}

func (h *LookupsHandler) HandleRequest(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	lookupType := request.QueryStringParameters["type"]

	switch lookupType {
	case "connectiontypes":
		items, err := h.directory.GetConnectionTypes(ctx)
		if err != nil {
			log.Warn().Err(err).Msg("Connection-type lookup failed, serving fallback table")
			items = models.FallbackConnectionTypes
		}
		return api.Success(items, &api.Meta{Count: len(items)})

	case "levels":
		// Charger levels are static reference data, no directory call.
		return api.Success(models.FallbackChargerLevels, &api.Meta{Count: len(models.FallbackChargerLevels)})

	case "statustypes":
		items, err := h.directory.GetStatusTypes(ctx)
		if err != nil {
			log.Warn().Err(err).Msg("Status-type lookup failed, serving fallback table")
			items = models.FallbackStatusTypes
		}
		return api.Success(items, &api.Meta{Count: len(items)})

	case "operators":
		items, err := h.directory.GetOperators(ctx)
		if err != nil {
			return lookupError(err)
		}
		return api.Success(items, &api.Meta{Count: len(items)})

	case "countries":
		items, err := h.directory.GetCountries(ctx)
		if err != nil {
			return lookupError(err)
		}
		return api.Success(items, &api.Meta{Count: len(items)})

	case "usagetypes":
		items, err := h.directory.GetUsageTypes(ctx)
		if err != nil {
			return lookupError(err)
		}
		return api.Success(items, &api.Meta{Count: len(items)})
	}

	return api.Error("Unknown lookup type", http.StatusBadRequest)
}

func lookupError(err error) (events.APIGatewayProxyResponse, error) {
	log.Warn().Err(err).Msg("Reference-data lookup failed")
	return api.Error(directory.MsgAPIError, http.StatusBadGateway)
}
