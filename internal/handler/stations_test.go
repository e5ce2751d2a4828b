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

	"github.com/chargescout/chargescout/backend-go/internal/api"
	"github.com/chargescout/chargescout/backend-go/internal/directory"
	"github.com/chargescout/chargescout/backend-go/internal/models"
)

// mockDirectory is a scriptable directory.Directory.
type mockDirectory struct {
	searchFunc          func(ctx context.Context, filters models.SearchFilters) directory.SearchResult
	getByIDFunc         func(ctx context.Context, id int) (*models.ChargingStation, error)
	connectionTypesFunc func(ctx context.Context) ([]models.ConnectionType, error)
	operatorsFunc       func(ctx context.Context) ([]models.Operator, error)
	countriesFunc       func(ctx context.Context) ([]models.Country, error)
	usageTypesFunc      func(ctx context.Context) ([]models.UsageType, error)
	statusTypesFunc     func(ctx context.Context) ([]models.StatusType, error)
}

func (m *mockDirectory) SearchStations(ctx context.Context, filters models.SearchFilters) directory.SearchResult {
	if m.searchFunc != nil {
		return m.searchFunc(ctx, filters)
	}
	return directory.SearchResult{Success: true, Stations: []models.ChargingStation{}}
}

func (m *mockDirectory) GetStationByID(ctx context.Context, id int) (*models.ChargingStation, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, directory.NotFoundError{ID: id}
}

func (m *mockDirectory) GetConnectionTypes(ctx context.Context) ([]models.ConnectionType, error) {
	if m.connectionTypesFunc != nil {
		return m.connectionTypesFunc(ctx)
	}
	return nil, errors.New("not scripted")
}

func (m *mockDirectory) GetOperators(ctx context.Context) ([]models.Operator, error) {
	if m.operatorsFunc != nil {
		return m.operatorsFunc(ctx)
	}
	return nil, errors.New("not scripted")
}

func (m *mockDirectory) GetCountries(ctx context.Context) ([]models.Country, error) {
	if m.countriesFunc != nil {
		return m.countriesFunc(ctx)
	}
	return nil, errors.New("not scripted")
}

func (m *mockDirectory) GetUsageTypes(ctx context.Context) ([]models.UsageType, error) {
	if m.usageTypesFunc != nil {
		return m.usageTypesFunc(ctx)
	}
	return nil, errors.New("not scripted")
}

func (m *mockDirectory) GetStatusTypes(ctx context.Context) ([]models.StatusType, error) {
	if m.statusTypesFunc != nil {
		return m.statusTypesFunc(ctx)
	}
	return nil, errors.New("not scripted")
}

func decodeEnvelope(t *testing.T, resp events.APIGatewayProxyResponse) api.Response {
	t.Helper()
	var envelope api.Response
	require.NoError(t, json.Unmarshal([]byte(resp.Body), &envelope))
	return envelope
}

func TestStationsHandlerSearch(t *testing.T) {
	t.Parallel()

	mock := &mockDirectory{
		searchFunc: func(_ context.Context, filters models.SearchFilters) directory.SearchResult {
			require.NotNil(t, filters.Latitude)
			assert.InDelta(t, 47.6, *filters.Latitude, 1e-9)
			return directory.SearchResult{
				Success: true,
				Stations: []models.ChargingStation{
					{ID: 101, AddressInfo: models.AddressInfo{Title: "Downtown Garage"}},
				},
				Meta: directory.Meta{Count: 1},
			}
		},
	}
	h := NewStationsHandler(mock)

	resp, err := h.HandleRequest(context.Background(), events.APIGatewayProxyRequest{
		QueryStringParameters: map[string]string{"lat": "47.6", "lng": "-122.33", "radius": "25"},
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	envelope := decodeEnvelope(t, resp)
	assert.True(t, envelope.Success)
	require.NotNil(t, envelope.Meta)
	assert.Equal(t, 1, envelope.Meta.Count)
}

func TestStationsHandlerSearchFailure(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		message    string
		wantStatus int
	}{
		{
			name:       "rate limited",
			message:    directory.MsgRateLimited,
			wantStatus: http.StatusTooManyRequests,
		},
		{
			name:       "generic API failure",
			message:    directory.MsgAPIError,
			wantStatus: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mock := &mockDirectory{
				searchFunc: func(context.Context, models.SearchFilters) directory.SearchResult {
					return directory.SearchResult{
						Success:  false,
						Stations: []models.ChargingStation{},
						Error:    tt.message,
					}
				},
			}
			h := NewStationsHandler(mock)

			resp, err := h.HandleRequest(context.Background(), events.APIGatewayProxyRequest{
				QueryStringParameters: map[string]string{},
			})
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			envelope := decodeEnvelope(t, resp)
			assert.False(t, envelope.Success)
			assert.Equal(t, tt.message, envelope.Error)
		})
	}
}

func TestStationsHandlerInvalidCoordinates(t *testing.T) {
	t.Parallel()

	h := NewStationsHandler(&mockDirectory{})

	resp, err := h.HandleRequest(context.Background(), events.APIGatewayProxyRequest{
		QueryStringParameters: map[string]string{"lat": "99", "lng": "0"},
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestStationsHandlerByID(t *testing.T) {
	t.Parallel()

	mock := &mockDirectory{
		getByIDFunc: func(_ context.Context, id int) (*models.ChargingStation, error) {
			if id == 101 {
				return &models.ChargingStation{ID: 101}, nil
			}
			return nil, directory.NotFoundError{ID: id}
		},
	}
	h := NewStationsHandler(mock)

	resp, err := h.HandleRequest(context.Background(), events.APIGatewayProxyRequest{
		QueryStringParameters: map[string]string{"stationId": "101"},
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = h.HandleRequest(context.Background(), events.APIGatewayProxyRequest{
		QueryStringParameters: map[string]string{"stationId": "999"},
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, directory.MsgStationNotFound, decodeEnvelope(t, resp).Error)

	resp, err = h.HandleRequest(context.Background(), events.APIGatewayProxyRequest{
		QueryStringParameters: map[string]string{"stationId": "abc"},
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestStationsHandlerMarkers(t *testing.T) {
	t.Parallel()

	mock := &mockDirectory{
		searchFunc: func(context.Context, models.SearchFilters) directory.SearchResult {
			return directory.SearchResult{
				Success: true,
				Stations: []models.ChargingStation{
					{ID: 7, AddressInfo: models.AddressInfo{Title: "Pier 66", Latitude: 47.61, Longitude: -122.35}},
				},
				Meta: directory.Meta{Count: 1},
			}
		},
	}
	h := NewStationsHandler(mock)

	resp, err := h.HandleRequest(context.Background(), events.APIGatewayProxyRequest{
		QueryStringParameters: map[string]string{"markers": "true"},
	})
	require.NoError(t, err)

	envelope := decodeEnvelope(t, resp)
	require.True(t, envelope.Success)

	raw, err := json.Marshal(envelope.Data)
	require.NoError(t, err)
	var markers []models.Marker
	require.NoError(t, json.Unmarshal(raw, &markers))
	require.Len(t, markers, 1)
	assert.Equal(t, 7, markers[0].StationID)
}
