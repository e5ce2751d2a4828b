package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chargescout/chargescout/backend-go/internal/directory"
	"github.com/chargescout/chargescout/backend-go/internal/models"
)

func lookupRequest(lookupType string) events.APIGatewayProxyRequest {
	return events.APIGatewayProxyRequest{
		QueryStringParameters: map[string]string{"type": lookupType},
	}
}

func TestLookupsHandlerConnectionTypes(t *testing.T) {
	t.Parallel()

	mock := &mockDirectory{
		connectionTypesFunc: func(context.Context) ([]models.ConnectionType, error) {
			return []models.ConnectionType{{ID: 32, Title: "CCS (Type 1)"}}, nil
		},
	}
	h := NewLookupsHandler(mock)

	resp, err := h.HandleRequest(context.Background(), lookupRequest("connectiontypes"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	envelope := decodeEnvelope(t, resp)
	assert.True(t, envelope.Success)
	require.NotNil(t, envelope.Meta)
	assert.Equal(t, 1, envelope.Meta.Count)
}

func TestLookupsHandlerConnectionTypesFallback(t *testing.T) {
	t.Parallel()

	mock := &mockDirectory{
		connectionTypesFunc: func(context.Context) ([]models.ConnectionType, error) {
			return nil, errors.New("upstream down")
		},
	}
	h := NewLookupsHandler(mock)

	resp, err := h.HandleRequest(context.Background(), lookupRequest("connectiontypes"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	envelope := decodeEnvelope(t, resp)
	assert.True(t, envelope.Success)
	require.NotNil(t, envelope.Meta)
	assert.Equal(t, len(models.FallbackConnectionTypes), envelope.Meta.Count)
}

func TestLookupsHandlerLevelsAreStatic(t *testing.T) {
	t.Parallel()

	// No directory method is scripted: levels must never hit the directory.
	h := NewLookupsHandler(&mockDirectory{})

	resp, err := h.HandleRequest(context.Background(), lookupRequest("levels"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	envelope := decodeEnvelope(t, resp)
	raw, err := json.Marshal(envelope.Data)
	require.NoError(t, err)
	var levels []models.ChargerLevel
	require.NoError(t, json.Unmarshal(raw, &levels))
	assert.Len(t, levels, len(models.FallbackChargerLevels))
}

func TestLookupsHandlerOperatorsFailure(t *testing.T) {
	t.Parallel()

	mock := &mockDirectory{
		operatorsFunc: func(context.Context) ([]models.Operator, error) {
			return nil, errors.New("upstream down")
		},
	}
	h := NewLookupsHandler(mock)

	resp, err := h.HandleRequest(context.Background(), lookupRequest("operators"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.Equal(t, directory.MsgAPIError, decodeEnvelope(t, resp).Error)
}

func TestLookupsHandlerCountries(t *testing.T) {
	t.Parallel()

	mock := &mockDirectory{
		countriesFunc: func(context.Context) ([]models.Country, error) {
			return []models.Country{{ID: 2, ISOCode: "US", Title: "United States"}}, nil
		},
	}
	h := NewLookupsHandler(mock)

	resp, err := h.HandleRequest(context.Background(), lookupRequest("countries"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestLookupsHandlerUnknownType(t *testing.T) {
	t.Parallel()

	h := NewLookupsHandler(&mockDirectory{})

	resp, err := h.HandleRequest(context.Background(), lookupRequest("plugshapes"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
