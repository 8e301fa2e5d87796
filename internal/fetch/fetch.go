// Package fetch is a small HTTP helper shared by the upstream clients
// (Apple documentation, swift.org evolution feed, GitHub raw files). It
// applies a consistent User-Agent, per-request timeout, retry policy, and
// error mapping.
package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/appledeepdocs/appledocsmcp/internal/errors"
)

// Client issues outbound HTTP GETs with retries for transient failures.
type Client struct {
	httpClient *http.Client
	userAgent  string
	retry      errors.RetryConfig
}

// Option customizes a Client.
type Option func(*Client)

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// WithUserAgent sets the User-Agent header sent on every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// WithRetry sets the retry policy for transient network failures.
func WithRetry(cfg errors.RetryConfig) Option {
	return func(c *Client) { c.retry = cfg }
}

// NewClient creates a Client with a 15s timeout and the default retry
// policy.
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		userAgent:  "appledocsmcp/1.0",
		retry:      errors.DefaultRetryConfig(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetText fetches url and returns the response body as a string. Transport
// errors are retried; non-200 statuses are not.
func (c *Client) GetText(ctx context.Context, url string) (string, error) {
	body, err := errors.RetryWithResult(ctx, c.retry, func() ([]byte, error) {
		return c.get(ctx, url, "text/plain, */*")
	})
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// GetJSON fetches url and decodes the JSON response body into v.
func (c *Client) GetJSON(ctx context.Context, url string, v any) error {
	body, err := errors.RetryWithResult(ctx, c.retry, func() ([]byte, error) {
		return c.get(ctx, url, "application/json")
	})
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, v); err != nil {
		return errors.New(errors.ErrCodeUpstreamStatus,
			fmt.Sprintf("invalid JSON from %s", url), err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, url, accept string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.New(errors.ErrCodeInvalidURL,
			fmt.Sprintf("invalid request URL %s", url), err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", accept)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, errors.NetworkError(errors.ErrCodeNetworkUnavailable,
			fmt.Sprintf("failed to reach %s", url), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.New(errors.ErrCodeUpstreamStatus,
			fmt.Sprintf("%s returned HTTP %d", url, resp.StatusCode), nil).
			WithDetail("status", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.NetworkError(errors.ErrCodeNetworkUnavailable,
			fmt.Sprintf("failed to read response from %s", url), err)
	}
	return body, nil
}
