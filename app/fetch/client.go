package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client wraps an http.Client with the header set for one fetch path. The
// baseline and enhanced clients are interchangeable from the orchestrator's
// point of view; they differ only in headers, timeout and retry behavior.
type Client struct {
	httpClient *http.Client
	headers    map[string]string
}

// NewBaselineClient builds the plain path: short timeout, minimal headers,
// no retries. Local community boards answer this fine.
func NewBaselineClient(timeout time.Duration, userAgent string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		headers: map[string]string{
			"User-Agent": userAgent,
		},
	}
}

// NewEnhancedClient builds the browser-like path used for international
// platforms that reject obvious bots: full browser header set, longer
// timeout, bounded transport-level retries.
func NewEnhancedClient(timeout time.Duration, maxRetries int) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &retryTransport{
				inner:      http.DefaultTransport,
				maxRetries: maxRetries,
				baseDelay:  500 * time.Millisecond,
			},
		},
		headers: map[string]string{
			"User-Agent":                "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
			"Accept":                    "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
			"Accept-Language":           "en-US,en;q=0.9,zh-CN;q=0.8,zh;q=0.7",
			"Cache-Control":             "no-cache",
			"Upgrade-Insecure-Requests": "1",
			"Referer":                   "https://www.google.com/",
		},
	}
}

// Get performs a GET and returns the body. Any non-2xx status is an error;
// adapters absorb it into an empty result.
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	for key, value := range c.headers {
		req.Header.Set(key, value)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return data, nil
}

// retryTransport retries failed GETs a bounded number of times with linear
// backoff. Retries never cross the adapter boundary; a request that still
// fails after the last attempt surfaces as a single error.
type retryTransport struct {
	inner      http.RoundTripper
	maxRetries int
	baseDelay  time.Duration
}

func (t *retryTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	var resp *http.Response
	var err error

	for attempt := 0; attempt <= t.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-req.Context().Done():
				return nil, req.Context().Err()
			case <-time.After(t.baseDelay * time.Duration(attempt)):
			}
		}

		resp, err = t.inner.RoundTrip(req)
		if err != nil {
			continue
		}
		if resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests {
			resp.Body.Close()
			continue
		}
		return resp, nil
	}

	if err != nil {
		return nil, err
	}
	return nil, fmt.Errorf("giving up after %d attempts: %d", t.maxRetries+1, resp.StatusCode)
}
