// Package position resolves and tracks the caller's geographic position.
package position

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/chargescout/chargescout/backend-go/internal/models"
	"github.com/chargescout/chargescout/backend-go/pkg/http/client"
)

// Source provides position fixes. CurrentPosition resolves a single fix;
// Watch delivers continuous updates until the release func is called.
type Source interface {
	CurrentPosition(ctx context.Context) (models.Position, error)
	Watch(ctx context.Context) (<-chan models.Position, func(), error)
}

// IPSource resolves positions from an IP-geolocation HTTP service. Accuracy
// is city-level at best; it is the fallback when the browser provides no
// fix of its own.
type IPSource struct {
	httpClient   *client.Client
	pollInterval time.Duration
}

// IPSourceOptions configures an IPSource.
type IPSourceOptions struct {
	HTTPClient *client.Client
	// PollInterval is the watch refresh cadence. Defaults to one minute.
	PollInterval time.Duration
}

func NewIPSource(opts IPSourceOptions) *IPSource {
	interval := opts.PollInterval
	if interval == 0 {
		interval = time.Minute
	}
	return &IPSource{
		httpClient:   opts.HTTPClient,
		pollInterval: interval,
	}
}

type ipLookupResponse struct {
	Status  string  `json:"status"`
	Message string  `json:"message,omitempty"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	City    string  `json:"city,omitempty"`
}

// CurrentPosition performs one lookup against the geolocation service.
func (s *IPSource) CurrentPosition(ctx context.Context) (models.Position, error) {
	resp, err := s.httpClient.Get(ctx, "/json", nil)
	if err != nil {
		if ctx.Err() != nil {
			return models.Position{}, NewError(ErrorTimeout, err)
		}
		return models.Position{}, NewError(ErrorUnavailable, err)
	}

	var lookup ipLookupResponse
	if err := json.Unmarshal(resp.Body, &lookup); err != nil {
		return models.Position{}, NewError(ErrorGeneric, err)
	}

	if lookup.Status != "success" {
		log.Warn().Str("message", lookup.Message).Msg("IP geolocation lookup failed")
		return models.Position{}, NewError(ErrorUnavailable, nil)
	}

	return models.Position{
		Latitude:  lookup.Lat,
		Longitude: lookup.Lon,
		// IP geolocation is city-level; report a wide accuracy radius.
		Accuracy:  5000,
		Timestamp: time.Now().UnixMilli(),
	}, nil
}

// Watch polls for position changes until released. The returned func is
// idempotent and must be called to stop the underlying polling.
func (s *IPSource) Watch(ctx context.Context) (<-chan models.Position, func(), error) {
	first, err := s.CurrentPosition(ctx)
	if err != nil {
		return nil, nil, err
	}

	updates := make(chan models.Position, 1)
	updates <- first

	watchCtx, cancel := context.WithCancel(ctx)
	go func() {
		defer close(updates)
		ticker := time.NewTicker(s.pollInterval)
		defer ticker.Stop()

		last := first
		for {
			select {
			case <-watchCtx.Done():
				return
			case <-ticker.C:
				pos, err := s.CurrentPosition(watchCtx)
				if err != nil {
					continue
				}
				if pos.Latitude == last.Latitude && pos.Longitude == last.Longitude {
					continue
				}
				last = pos
				select {
				case updates <- pos:
				case <-watchCtx.Done():
					return
				}
			}
		}
	}()

	return updates, cancel, nil
}
