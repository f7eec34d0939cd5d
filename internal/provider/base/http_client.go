package base

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"
)

// HTTPClient provides common HTTP functionality for upstream sources
type HTTPClient struct {
	client        *http.Client
	baseURL       string
	name          string // source name for logging
	maxRetries    int
	retryInterval time.Duration
}

// NewHTTPClient creates a new HTTP client with default settings
func NewHTTPClient(name string, timeout time.Duration) *HTTPClient {
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &HTTPClient{
		client: &http.Client{
			Timeout: timeout,
		},
		name:          name,
		retryInterval: 200 * time.Millisecond,
	}
}

// SetBaseURL sets the base URL for all requests
func (c *HTTPClient) SetBaseURL(baseURL string) {
	c.baseURL = baseURL
}

// SetRetry configures how often transient failures are retried.
func (c *HTTPClient) SetRetry(maxRetries int, initialInterval time.Duration) {
	if maxRetries < 0 {
		maxRetries = 0
	}
	c.maxRetries = maxRetries
	if initialInterval > 0 {
		c.retryInterval = initialInterval
	}
}

// StatusError is returned when retryable status codes persist after all retries.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.StatusCode)
}

// Get makes a GET request. Transport errors, 429 and 5xx responses are
// retried with exponential backoff; any other response is returned as is.
func (c *HTTPClient) Get(ctx context.Context, endpoint string, headers map[string]string) (*HTTPResponse, error) {
	url := c.baseURL + endpoint

	var out *HTTPResponse
	attempt := 0
	op := func() error {
		attempt++
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("failed to create request: %w", err))
		}

		req.Header.Set("Accept", "application/json")
		req.Header.Set("User-Agent", fmt.Sprintf("Pokedex/%s", c.name))
		for key, value := range headers {
			req.Header.Set(key, value)
		}

		log.Debug().
			Str("source", c.name).
			Str("method", http.MethodGet).
			Str("url", url).
			Int("attempt", attempt).
			Msg("making HTTP request")

		resp, err := c.client.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return backoff.Permanent(fmt.Errorf("HTTP request failed: %w", err))
			}
			return fmt.Errorf("HTTP request failed: %w", err)
		}

		httpResp, err := c.handleResponse(resp)
		if err != nil {
			return err
		}
		if retryable(httpResp.StatusCode) {
			return &StatusError{StatusCode: httpResp.StatusCode, Body: truncate(httpResp.String(), 256)}
		}
		out = httpResp
		return nil
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = c.retryInterval
	policy.MaxElapsedTime = 0

	err := backoff.RetryNotify(op,
		backoff.WithContext(backoff.WithMaxRetries(policy, uint64(c.maxRetries)), ctx),
		func(err error, wait time.Duration) {
			log.Warn().
				Str("source", c.name).
				Str("url", url).
				Dur("retry_in", wait).
				Err(err).
				Msg("HTTP request failed, retrying")
		})
	if err != nil {
		log.Error().
			Str("source", c.name).
			Str("url", url).
			Int("attempts", attempt).
			Err(err).
			Msg("HTTP request failed")
		return nil, err
	}
	return out, nil
}

// handleResponse processes the HTTP response
func (c *HTTPClient) handleResponse(resp *http.Response) (*HTTPResponse, error) {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	httpResp := &HTTPResponse{
		StatusCode: resp.StatusCode,
		Headers:    resp.Header,
		Body:       body,
	}

	log.Debug().
		Str("source", c.name).
		Int("status_code", resp.StatusCode).
		Int("body_length", len(body)).
		Msg("received HTTP response")

	return httpResp, nil
}

func retryable(status int) bool {
	return status == http.StatusTooManyRequests || status >= http.StatusInternalServerError
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

// AsStatusError extracts a StatusError from err.
func AsStatusError(err error) (*StatusError, bool) {
	var se *StatusError
	ok := errors.As(err, &se)
	return se, ok
}

// HTTPResponse represents an HTTP response
type HTTPResponse struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// IsSuccess checks if the response indicates success (2xx status code)
func (r *HTTPResponse) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// DecodeJSON unmarshals the response body into the provided struct
func (r *HTTPResponse) DecodeJSON(v interface{}) error {
	return json.Unmarshal(r.Body, v)
}

// String returns the response body as a string
func (r *HTTPResponse) String() string {
	return string(r.Body)
}
