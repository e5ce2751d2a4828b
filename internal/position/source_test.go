package position

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chargescout/chargescout/backend-go/pkg/http/client"
)

func newIPSourceForServer(srv *httptest.Server, pollInterval time.Duration) *IPSource {
	return NewIPSource(IPSourceOptions{
		HTTPClient: client.New(client.Options{
			BaseURL: srv.URL,
			Timeout: 2 * time.Second,
		}),
		PollInterval: pollInterval,
	})
}

func TestIPSourceCurrentPosition(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/json", r.URL.Path)
		_, _ = w.Write([]byte(`{"status":"success","lat":47.6062,"lon":-122.3321,"city":"Seattle"}`))
	}))
	defer srv.Close()

	source := newIPSourceForServer(srv, 0)

	pos, err := source.CurrentPosition(context.Background())
	require.NoError(t, err)

	assert.InDelta(t, 47.6062, pos.Latitude, 1e-6)
	assert.InDelta(t, -122.3321, pos.Longitude, 1e-6)
	assert.Greater(t, pos.Accuracy, 0.0)
	assert.NotZero(t, pos.Timestamp)
}

func TestIPSourceLookupFailure(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status":"fail","message":"private range"}`))
	}))
	defer srv.Close()

	source := newIPSourceForServer(srv, 0)

	_, err := source.CurrentPosition(context.Background())
	require.Error(t, err)

	var posErr *Error
	require.ErrorAs(t, err, &posErr)
	assert.Equal(t, ErrorUnavailable, posErr.Code)
}

func TestIPSourceUnreachable(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // connection refused from here on

	source := newIPSourceForServer(srv, 0)

	_, err := source.CurrentPosition(context.Background())
	var posErr *Error
	require.ErrorAs(t, err, &posErr)
	assert.Equal(t, ErrorUnavailable, posErr.Code)
}

func TestIPSourceWatch(t *testing.T) {
	t.Parallel()

	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		n := calls.Add(1)
		if n <= 1 {
			_, _ = w.Write([]byte(`{"status":"success","lat":47.60,"lon":-122.33}`))
			return
		}
		_, _ = w.Write([]byte(`{"status":"success","lat":47.70,"lon":-122.40}`))
	}))
	defer srv.Close()

	source := newIPSourceForServer(srv, 10*time.Millisecond)

	updates, release, err := source.Watch(context.Background())
	require.NoError(t, err)
	defer release()

	first := <-updates
	assert.InDelta(t, 47.60, first.Latitude, 1e-6)

	select {
	case second := <-updates:
		assert.InDelta(t, 47.70, second.Latitude, 1e-6)
	case <-time.After(2 * time.Second):
		t.Fatal("expected a position update after the source moved")
	}

	release()
	assert.Eventually(t, func() bool {
		_, open := <-updates
		return !open
	}, time.Second, 5*time.Millisecond, "release must close the update channel")
}
