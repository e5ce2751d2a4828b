// Package maps wraps the vendor mapping client (geocoding, distance matrix,
// directions, place autocomplete) behind normalized result types.
package maps

import (
	"errors"
	"sync"

	"github.com/rs/zerolog/log"
	"googlemaps.github.io/maps"
)

// MsgLoadFailed is the user-facing message when the mapping service cannot
// be initialized.
const MsgLoadFailed = "Failed to load the mapping service."

// ErrMissingAPIKey indicates no credential was configured for the vendor.
var ErrMissingAPIKey = errors.New("maps API key is not configured")

// LoadState describes the shared vendor-client handle.
type LoadState int

const (
	StateNotLoaded LoadState = iota
	StateLoading
	StateLoaded
	StateFailed
)

func (s LoadState) String() string {
	switch s {
	case StateNotLoaded:
		return "not_loaded"
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

// Handle owns the lazily-constructed vendor client. The first caller
// triggers construction; all callers share the same outcome. A failed
// construction is cached and not retried automatically.
type Handle struct {
	apiKey  string
	options []maps.ClientOption

	mu     sync.Mutex
	state  LoadState
	client *maps.Client
	err    error
}

// NewHandle prepares a handle without constructing the vendor client.
// Extra options (custom base URL, HTTP client) are mainly for tests.
func NewHandle(apiKey string, options ...maps.ClientOption) *Handle {
	return &Handle{
		apiKey:  apiKey,
		options: options,
		state:   StateNotLoaded,
	}
}

// Client returns the shared vendor client, constructing it on first use.
func (h *Handle) Client() (*maps.Client, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	switch h.state {
	case StateLoaded:
		return h.client, nil
	case StateFailed:
		return nil, h.err
	}

	h.state = StateLoading

	if h.apiKey == "" {
		h.state = StateFailed
		h.err = ErrMissingAPIKey
		log.Error().Msg("Maps client initialization failed: missing API key")
		return nil, h.err
	}

	opts := append([]maps.ClientOption{maps.WithAPIKey(h.apiKey)}, h.options...)
	client, err := maps.NewClient(opts...)
	if err != nil {
		h.state = StateFailed
		h.err = err
		log.Error().Err(err).Msg("Maps client initialization failed")
		return nil, err
	}

	h.state = StateLoaded
	h.client = client
	log.Debug().Msg("Maps client initialized")
	return client, nil
}

// State reports the current load state.
func (h *Handle) State() LoadState {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state
}
