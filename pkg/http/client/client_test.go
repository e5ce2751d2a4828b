package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientGet(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/poi", r.URL.Path)
		assert.Equal(t, "25", r.URL.Query().Get("distance"))
		assert.Equal(t, "test-key", r.Header.Get("X-API-Key"))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := New(Options{
		BaseURL: srv.URL,
		Timeout: 5 * time.Second,
		Headers: map[string]string{"X-API-Key": "test-key"},
	})

	query := url.Values{}
	query.Set("distance", "25")

	resp, err := c.Get(context.Background(), "/poi", query)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []byte(`[]`), resp.Body)
}

func TestClientGetNoQuery(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.RawQuery)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := New(Options{BaseURL: srv.URL})

	resp, err := c.Get(context.Background(), "/countries", nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestClientGetStatusPassthrough(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := New(Options{BaseURL: srv.URL})

	resp, err := c.Get(context.Background(), "/poi", nil)
	require.NoError(t, err, "non-2xx must not be an error at the transport layer")
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
}

func TestClientGetContextCancelled(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	c := New(Options{BaseURL: srv.URL})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Get(ctx, "/poi", nil)
	assert.Error(t, err)
}

func TestClientGetFuncOverride(t *testing.T) {
	t.Parallel()

	c := New(Options{})
	c.GetFunc = func(_ context.Context, path string, _ url.Values) (*Response, error) {
		return &Response{StatusCode: http.StatusOK, Body: []byte(path)}, nil
	}

	resp, err := c.Get(context.Background(), "/operators", nil)
	require.NoError(t, err)
	assert.Equal(t, []byte("/operators"), resp.Body)
}
