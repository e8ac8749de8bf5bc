package wbapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

// DefaultBaseURL is the production Documents & Reports endpoint.
const DefaultBaseURL = "https://search.worldbank.org/api/v3/wds"

// minRequestInterval is the self-imposed spacing between outbound
// requests; the upstream API publishes no rate limit of its own.
const minRequestInterval = 300 * time.Millisecond

// Client issues rate-limited GET requests against the Documents &
// Reports API. It is the sole gatekeeper of network access: every
// operation in this package goes through fetch.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient creates a client for the given base URL, using the default
// 300ms minimum spacing between requests. An empty baseURL selects the
// production endpoint.
func NewClient(baseURL string) *Client {
	return NewClientWithInterval(baseURL, minRequestInterval)
}

// NewClientWithInterval creates a client with a custom minimum spacing
// between requests. Tests use short intervals to keep runtimes sane.
func NewClientWithInterval(baseURL string, interval time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
		limiter:    rate.NewLimiter(rate.Every(interval), 1),
	}
}

// fetch waits out the minimum request interval, then issues a single
// GET with the given query parameters and returns the raw response
// body. The format=json parameter is always forced, overriding any
// caller-supplied value. Non-success statuses become a *NetworkError;
// there are no retries.
func (c *Client) fetch(ctx context.Context, params url.Values) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	params.Set("format", "json")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request World Bank API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &NetworkError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	return body, nil
}
