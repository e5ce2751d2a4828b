// Command server runs every endpoint behind one local HTTP listener for
// development, instead of the per-function Lambda deployments.
package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/rs/zerolog/log"

	"github.com/chargescout/chargescout/backend-go/internal/api"
	"github.com/chargescout/chargescout/backend-go/internal/cache"
	"github.com/chargescout/chargescout/backend-go/internal/config"
	"github.com/chargescout/chargescout/backend-go/internal/directory"
	"github.com/chargescout/chargescout/backend-go/internal/handler"
	"github.com/chargescout/chargescout/backend-go/internal/maps"
	"github.com/chargescout/chargescout/backend-go/internal/models"
	"github.com/chargescout/chargescout/backend-go/internal/position"
	"github.com/chargescout/chargescout/backend-go/pkg/http/client"
)

type lambdaHandler func(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error)

// adapt bridges a Lambda handler onto net/http for the local server.
func adapt(h lambdaHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := make(map[string]string)
		for key, values := range r.URL.Query() {
			if len(values) > 0 {
				params[key] = values[0]
			}
		}

		resp, err := h(r.Context(), events.APIGatewayProxyRequest{
			Path:                  r.URL.Path,
			HTTPMethod:            r.Method,
			QueryStringParameters: params,
		})
		if err != nil {
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		for key, value := range resp.Headers {
			w.Header().Set(key, value)
		}
		w.WriteHeader(resp.StatusCode)
		if _, err := w.Write([]byte(resp.Body)); err != nil {
			log.Error().Err(err).Msg("Writing response")
		}
	}
}

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("Loading configuration")
	}
	cfg.InitializeLogging()

	log.Info().Str("env", cfg.Environment).Str("port", cfg.Port).Msg("Starting local server")

	cacheConfig := config.GetCacheConfig()

	var respCache *cache.ResponseCache
	if cacheConfig.EnableResponseCache {
		respCache = cache.NewResponseCache(cacheConfig.GetResponseTTL())
	}

	dir := directory.NewClient(directory.Options{
		HTTPClient: client.New(client.Options{
			BaseURL: cfg.DirectoryBaseURL,
			Timeout: cfg.HTTPTimeout,
		}),
		APIKey:        cfg.DirectoryAPIKey,
		ResponseCache: respCache,
		MaxResults:    cfg.MaxResults,
	})

	geocodeCache, err := cache.NewGeocodeCache(cacheConfig)
	if err != nil {
		log.Fatal().Err(err).Msg("Creating geocode cache")
	}
	mapsAdapter := maps.NewAdapter(maps.NewHandle(cfg.MapsAPIKey), geocodeCache)

	tracker := position.NewTracker(position.NewIPSource(position.IPSourceOptions{
		HTTPClient: client.New(client.Options{
			BaseURL: cfg.PositionBaseURL,
			Timeout: cfg.HTTPTimeout,
		}),
	}))
	defer tracker.Close()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/stations", adapt(handler.NewStationsHandler(dir).HandleRequest))
	mux.HandleFunc("GET /api/lookups", adapt(handler.NewLookupsHandler(dir).HandleRequest))
	mux.HandleFunc("GET /api/geocode", adapt(handler.NewGeocodeHandler(mapsAdapter).HandleRequest))
	mux.HandleFunc("GET /api/directions", adapt(handler.NewDirectionsHandler(mapsAdapter).HandleRequest))
	mux.HandleFunc("GET /api/position", adapt(positionHandler(tracker)))
	mux.HandleFunc("GET /api/map-config", adapt(mapConfigHandler(cfg)))
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("ok")); err != nil {
			log.Error().Err(err).Msg("Writing health response")
		}
	})

	server := &http.Server{
		Addr:    net.JoinHostPort("", cfg.Port),
		Handler: mux,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Shutdown failed")
	}
}

// positionHandler resolves the caller's position from the IP-geolocation
// fallback source. The browser normally supplies its own fix; this lets
// local testing work without one.
func positionHandler(tracker *position.Tracker) lambdaHandler {
	return func(ctx context.Context, _ events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		pos, err := tracker.GetCurrentPosition(ctx)
		if err != nil {
			var posErr *position.Error
			if errors.As(err, &posErr) {
				return api.Error(posErr.Message(), http.StatusServiceUnavailable)
			}
			return api.Error(position.MsgGeneric, http.StatusServiceUnavailable)
		}
		return api.Success(pos, nil)
	}
}

// mapConfigHandler serves the initial viewport, centered on the caller's
// position when provided, otherwise on the configured default.
func mapConfigHandler(cfg *config.Config) lambdaHandler {
	return func(_ context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		center := models.LatLng{Lat: cfg.DefaultCenterLat, Lng: cfg.DefaultCenterLng}

		lat, lng, err := api.ParseCoordinates(request.QueryStringParameters)
		if err != nil {
			return api.Error(err.Error(), http.StatusBadRequest)
		}
		if lat != nil && lng != nil {
			center = models.LatLng{Lat: *lat, Lng: *lng}
		}

		return api.Success(maps.NewMapConfig(center, maps.DefaultZoom), nil)
	}
}
