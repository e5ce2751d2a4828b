// Package directory implements the client for the external charging-station
// directory API.
package directory

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/chargescout/chargescout/backend-go/internal/cache"
	"github.com/chargescout/chargescout/backend-go/internal/geo"
	"github.com/chargescout/chargescout/backend-go/internal/models"
	"github.com/chargescout/chargescout/backend-go/pkg/http/client"
)

// Meta carries result metadata alongside a successful search.
type Meta struct {
	Count int `json:"count"`
}

// SearchResult is the uniform response envelope for station searches. On
// failure Stations is empty and Error carries a human-readable message;
// callers must not assume a non-empty successful response.
type SearchResult struct {
	Success  bool                     `json:"success"`
	Stations []models.ChargingStation `json:"stations"`
	Meta     Meta                     `json:"meta"`
	Error    string                   `json:"error,omitempty"`
}

// Client queries the station directory. All requests are single-shot: no
// retry, no backoff, no partial results.
type Client struct {
	httpClient *client.Client
	apiKey     string
	respCache  *cache.ResponseCache
	maxResults int
}

// Options configures a directory client.
type Options struct {
	HTTPClient *client.Client
	APIKey     string
	// ResponseCache may be nil to disable caching.
	ResponseCache *cache.ResponseCache
	// MaxResults caps result counts when a filter does not set one.
	MaxResults int
}

func NewClient(opts Options) *Client {
	maxResults := opts.MaxResults
	if maxResults == 0 {
		maxResults = 100
	}
	return &Client{
		httpClient: opts.HTTPClient,
		apiKey:     opts.APIKey,
		respCache:  opts.ResponseCache,
		maxResults: maxResults,
	}
}

// SearchStations maps the filter object onto directory query parameters and
// performs one GET against /poi, consulting the response cache first. The
// result always carries the envelope's success flag.
func (c *Client) SearchStations(ctx context.Context, filters models.SearchFilters) SearchResult {
	query := c.buildQuery(filters)
	cacheKey := "/poi?" + query.Encode()

	body, ok := c.cachedResponse(cacheKey)
	if !ok {
		resp, err := c.get(ctx, "/poi", query)
		if err != nil {
			return failedSearch(err)
		}
		body = resp
		c.storeResponse(cacheKey, body)
	}

	var stations []models.ChargingStation
	if err := json.Unmarshal(body, &stations); err != nil {
		return failedSearch(NewAPIError("decoding response", err))
	}

	if filters.Latitude != nil && filters.Longitude != nil {
		stations = attachDistances(stations, *filters.Latitude, *filters.Longitude)
	}

	return SearchResult{
		Success:  true,
		Stations: stations,
		Meta:     Meta{Count: len(stations)},
	}
}

// GetStationByID issues a single-result query and unwraps the first element.
func (c *Client) GetStationByID(ctx context.Context, id int) (*models.ChargingStation, error) {
	query := url.Values{}
	c.addKey(query)
	query.Set("chargepointid", strconv.Itoa(id))
	query.Set("maxresults", "1")
	query.Set("compact", "false")
	query.Set("verbose", "true")

	body, err := c.get(ctx, "/poi", query)
	if err != nil {
		return nil, err
	}

	var stations []models.ChargingStation
	if err := json.Unmarshal(body, &stations); err != nil {
		return nil, NewAPIError("decoding response", err)
	}

	if len(stations) == 0 {
		return nil, NotFoundError{ID: id}
	}

	return &stations[0], nil
}

// Reference-data lookups are uniform GET passthroughs with no transformation.

func (c *Client) GetConnectionTypes(ctx context.Context) ([]models.ConnectionType, error) {
	return lookup[models.ConnectionType](ctx, c, "/connectiontypes")
}

func (c *Client) GetOperators(ctx context.Context) ([]models.Operator, error) {
	return lookup[models.Operator](ctx, c, "/operators")
}

func (c *Client) GetCountries(ctx context.Context) ([]models.Country, error) {
	return lookup[models.Country](ctx, c, "/countries")
}

func (c *Client) GetUsageTypes(ctx context.Context) ([]models.UsageType, error) {
	return lookup[models.UsageType](ctx, c, "/usagetypes")
}

func (c *Client) GetStatusTypes(ctx context.Context) ([]models.StatusType, error) {
	return lookup[models.StatusType](ctx, c, "/statustypes")
}

func lookup[T any](ctx context.Context, c *Client, path string) ([]T, error) {
	query := url.Values{}
	c.addKey(query)

	body, err := c.get(ctx, path, query)
	if err != nil {
		return nil, err
	}

	var items []T
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, NewAPIError("decoding response", err)
	}
	return items, nil
}

// get performs the request and maps non-2xx statuses onto the error
// taxonomy: 429 is surfaced distinctly, everything else is a generic API
// error.
func (c *Client) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	resp, err := c.httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, NewAPIError("fetching "+path, err)
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, RateLimitError{}
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		log.Warn().Int("status", resp.StatusCode).Str("path", path).Msg("Directory request failed")
		return nil, NewAPIError("unexpected status "+strconv.Itoa(resp.StatusCode), nil)
	}

	return resp.Body, nil
}

func (c *Client) buildQuery(filters models.SearchFilters) url.Values {
	query := url.Values{}
	c.addKey(query)
	query.Set("compact", "false")
	query.Set("verbose", "true")

	if filters.CountryCode != "" {
		query.Set("countrycode", filters.CountryCode)
	}

	maxResults := filters.MaxResults
	if maxResults == 0 {
		maxResults = c.maxResults
	}
	query.Set("maxresults", strconv.Itoa(maxResults))

	if filters.Latitude != nil && filters.Longitude != nil {
		query.Set("latitude", formatFloat(*filters.Latitude))
		query.Set("longitude", formatFloat(*filters.Longitude))
	}
	if filters.RadiusMiles != nil {
		query.Set("distance", formatFloat(*filters.RadiusMiles))
		query.Set("distanceunit", "Miles")
	}

	for _, id := range filters.ConnectionTypeIDs {
		query.Add("connectiontypeid", strconv.Itoa(id))
	}
	for _, id := range filters.LevelIDs {
		query.Add("levelid", strconv.Itoa(id))
	}
	for _, id := range filters.StatusTypeIDs {
		query.Add("statustypeid", strconv.Itoa(id))
	}
	for _, id := range filters.OperatorIDs {
		query.Add("operatorid", strconv.Itoa(id))
	}

	if filters.UsageTypeID != nil {
		query.Set("usagetypeid", strconv.Itoa(*filters.UsageTypeID))
	}
	if filters.MinPowerKW != nil {
		query.Set("minpowerkw", formatFloat(*filters.MinPowerKW))
	}
	if filters.MaxPowerKW != nil {
		query.Set("maxpowerkw", formatFloat(*filters.MaxPowerKW))
	}
	if filters.OpenDataOnly {
		query.Set("opendata", "true")
	}
	if filters.IncludeComments {
		query.Set("includecomments", "true")
	}

	return query
}

func (c *Client) addKey(query url.Values) {
	if c.apiKey != "" {
		query.Set("key", c.apiKey)
	}
}

func (c *Client) cachedResponse(key string) ([]byte, bool) {
	if c.respCache == nil {
		return nil, false
	}
	body, ok := c.respCache.Get(key)
	if ok {
		log.Debug().Msg("Cache HIT for station search")
	} else {
		log.Debug().Msg("Cache MISS for station search, calling directory API")
	}
	return body, ok
}

func (c *Client) storeResponse(key string, body []byte) {
	if c.respCache != nil {
		c.respCache.Set(key, body)
	}
}

// attachDistances computes each station's distance from the query origin in
// parallel, then sorts ascending.
func attachDistances(stations []models.ChargingStation, lat, lon float64) []models.ChargingStation {
	const workerCount = 4
	work := make(chan models.ChargingStation, len(stations))
	results := make(chan models.ChargingStation, len(stations))

	var wg sync.WaitGroup
	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for station := range work {
				station.Distance = geo.CalculateDistance(lat, lon,
					station.AddressInfo.Latitude, station.AddressInfo.Longitude)
				results <- station
			}
		}()
	}

	for _, station := range stations {
		work <- station
	}
	close(work)

	go func() {
		wg.Wait()
		close(results)
	}()

	withDistance := make([]models.ChargingStation, 0, len(stations))
	for station := range results {
		withDistance = append(withDistance, station)
	}

	sort.Slice(withDistance, func(i, j int) bool {
		return withDistance[i].Distance < withDistance[j].Distance
	})

	return withDistance
}

func failedSearch(err error) SearchResult {
	log.Warn().Err(err).Msg("Station search failed")

	message := MsgAPIError
	var rateLimited RateLimitError
	if errors.As(err, &rateLimited) {
		message = MsgRateLimited
	}

	return SearchResult{
		Success:  false,
		Stations: []models.ChargingStation{},
		Error:    message,
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
