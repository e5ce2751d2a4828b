package client

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"
)

type Response struct {
	StatusCode int
	Body       []byte
}

type Interface interface {
	Get(ctx context.Context, path string, query url.Values) (*Response, error)
}

type Client struct {
	baseURL    string
	headers    map[string]string
	httpClient *http.Client
	GetFunc    func(ctx context.Context, path string, query url.Values) (*Response, error)
}

type Options struct {
	BaseURL string
	Timeout time.Duration
	// Headers are attached to every request (API keys, accept types).
	Headers map[string]string
}

func New(opts Options) *Client {
	if opts.Timeout == 0 {
		opts.Timeout = 30 * time.Second
	}

	return &Client{
		baseURL: opts.BaseURL,
		headers: opts.Headers,
		httpClient: &http.Client{
			Timeout: opts.Timeout,
		},
	}
}

// Get performs a GET against baseURL+path with the given query string. A nil
// query is allowed. The response body is fully read before returning.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	if c.GetFunc != nil {
		return c.GetFunc(ctx, path, query)
	}

	fullURL := path
	if c.baseURL != "" {
		fullURL = c.baseURL + path
	}
	if len(query) > 0 {
		fullURL = fullURL + "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, err
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func(body io.ReadCloser) {
		if closeErr := body.Close(); closeErr != nil {
			return
		}
	}(resp.Body)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Body:       body,
	}, nil
}
