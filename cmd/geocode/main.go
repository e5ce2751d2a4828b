package main

import (
	"sync"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/rs/zerolog/log"

	"github.com/chargescout/chargescout/backend-go/internal/cache"
	"github.com/chargescout/chargescout/backend-go/internal/config"
	"github.com/chargescout/chargescout/backend-go/internal/handler"
	"github.com/chargescout/chargescout/backend-go/internal/maps"
)

var (
	geocodeHandler *handler.GeocodeHandler
	setupOnce      sync.Once
)

func init() {
	setupOnce.Do(func() {
		cfg, err := config.LoadFromEnv()
		if err != nil {
			log.Fatal().Err(err).Msg("Loading configuration")
		}
		cfg.InitializeLogging()

		geocodeCache, err := cache.NewGeocodeCache(config.GetCacheConfig())
		if err != nil {
			log.Fatal().Err(err).Msg("Creating geocode cache")
		}

		adapter := maps.NewAdapter(maps.NewHandle(cfg.MapsAPIKey), geocodeCache)
		geocodeHandler = handler.NewGeocodeHandler(adapter)
	})
}

func main() {
	lambda.Start(geocodeHandler.HandleRequest)
}
