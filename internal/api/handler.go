package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/aws/aws-lambda-go/events"

	"github.com/chargescout/chargescout/backend-go/internal/models"
)

// Meta carries result metadata in a successful response.
type Meta struct {
	Count int `json:"count"`
}

// Response is the uniform JSON envelope for every endpoint.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Meta    *Meta       `json:"meta,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// Response helpers
func Success(data interface{}, meta *Meta) (events.APIGatewayProxyResponse, error) {
	jsonBody, err := json.Marshal(Response{Success: true, Data: data, Meta: meta})
	if err != nil {
		return Error("Internal Server Error", http.StatusInternalServerError)
	}

	return events.APIGatewayProxyResponse{
		StatusCode: http.StatusOK,
		Headers: map[string]string{
			"Content-Type":                "application/json",
			"Access-Control-Allow-Origin": "*",
		},
		Body: string(jsonBody),
	}, nil
}

func Error(message string, statusCode int) (events.APIGatewayProxyResponse, error) {
	body, _ := json.Marshal(Response{Success: false, Error: message})

	return events.APIGatewayProxyResponse{
		StatusCode: statusCode,
		Headers: map[string]string{
			"Content-Type":                "application/json",
			"Access-Control-Allow-Origin": "*",
		},
		Body: string(body),
	}, nil
}

type InvalidCoordinatesError struct{}

func (InvalidCoordinatesError) Error() string {
	return "Invalid coordinates"
}

// ParseCoordinates extracts and validates lat/lng query parameters. Both
// absent is not an error; the caller decides whether location is required.
func ParseCoordinates(params map[string]string) (*float64, *float64, error) {
	latStr, hasLat := params["lat"]
	lngStr, hasLng := params["lng"]

	if !hasLat || !hasLng {
		return nil, nil, nil
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return nil, nil, err
	}

	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil {
		return nil, nil, err
	}

	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return nil, nil, InvalidCoordinatesError{}
	}

	return &lat, &lng, nil
}

// ParseFilters builds SearchFilters from query parameters. Unknown or
// malformed values are ignored rather than rejected.
func ParseFilters(params map[string]string) (models.SearchFilters, error) {
	filters := models.SearchFilters{}

	lat, lng, err := ParseCoordinates(params)
	if err != nil {
		return filters, err
	}
	filters.Latitude = lat
	filters.Longitude = lng

	if radius, ok := parseFloatParam(params, "radius"); ok {
		filters.RadiusMiles = &radius
	}
	if minPower, ok := parseFloatParam(params, "minPower"); ok {
		filters.MinPowerKW = &minPower
	}
	if maxPower, ok := parseFloatParam(params, "maxPower"); ok {
		filters.MaxPowerKW = &maxPower
	}

	filters.ConnectionTypeIDs = parseIntList(params["connectionTypes"])
	filters.LevelIDs = parseIntList(params["levels"])
	filters.StatusTypeIDs = parseIntList(params["statusTypes"])
	filters.OperatorIDs = parseIntList(params["operators"])

	if usageStr, ok := params["usageType"]; ok {
		if usageType, err := strconv.Atoi(usageStr); err == nil {
			filters.UsageTypeID = &usageType
		}
	}

	filters.CountryCode = params["country"]

	if limitStr, ok := params["limit"]; ok {
		if limit, err := strconv.Atoi(limitStr); err == nil && limit > 0 {
			filters.MaxResults = limit
		}
	}

	filters.OpenDataOnly = params["openData"] == "true"
	filters.IncludeComments = params["includeComments"] == "true"

	return filters, nil
}

func parseFloatParam(params map[string]string, key string) (float64, bool) {
	str, ok := params[key]
	if !ok {
		return 0, false
	}
	val, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return 0, false
	}
	return val, true
}

// parseIntList splits a comma-separated id list, skipping malformed items.
func parseIntList(raw string) []int {
	if raw == "" {
		return nil
	}

	var ids []int
	for _, part := range strings.Split(raw, ",") {
		if id, err := strconv.Atoi(strings.TrimSpace(part)); err == nil {
			ids = append(ids, id)
		}
	}
	return ids
}
