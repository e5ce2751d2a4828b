package main

import (
	"sync"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/rs/zerolog/log"

	"github.com/chargescout/chargescout/backend-go/internal/cache"
	"github.com/chargescout/chargescout/backend-go/internal/config"
	"github.com/chargescout/chargescout/backend-go/internal/directory"
	"github.com/chargescout/chargescout/backend-go/internal/handler"
	"github.com/chargescout/chargescout/backend-go/pkg/http/client"
)

var (
	lookupsHandler *handler.LookupsHandler
	setupOnce      sync.Once
)

func init() {
	setupOnce.Do(func() {
		cfg, err := config.LoadFromEnv()
		if err != nil {
			log.Fatal().Err(err).Msg("Loading configuration")
		}
		cfg.InitializeLogging()

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

		lookupsHandler = handler.NewLookupsHandler(dir)
	})
}

func main() {
	lambda.Start(lookupsHandler.HandleRequest)
}
