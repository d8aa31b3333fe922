// Package foodoscope is the shared HTTP transport for the Foodoscope
// RecipeDB and FlavorDB APIs.
package foodoscope

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Transport errors. Callers translate them into domain errors.
var (
	ErrNotFound    = errors.New("foodoscope: not found")
	ErrThrottled   = errors.New("foodoscope: rate limited by upstream")
	ErrUnavailable = errors.New("foodoscope: request failed")
)

const (
	defaultTimeout     = 10 * time.Second
	defaultMaxAttempts = 3
	maxBodyBytes       = 2 << 20
	maxErrorBodyBytes  = 512
	userAgent          = "RecipeLens/1.0"
)

// Config configures a Foodoscope API client
type Config struct {
	APIKey  string
	BaseURL string
	// Timeout bounds a single HTTP attempt
	Timeout time.Duration
	// RequestsPerSecond and Burst shape outgoing traffic; zero disables limiting
	RequestsPerSecond float64
	Burst             int
	// MaxAttempts includes the first try
	MaxAttempts int
}

// Client performs authenticated, rate limited GET requests with retries
type Client struct {
	httpClient  *http.Client
	apiKey      string
	baseURL     string
	rateLimiter *rate.Limiter
	maxAttempts int
	backoff     func(attempt int) time.Duration
	logger      *zap.Logger
}

// NewClient creates a new Foodoscope API client
func NewClient(config Config, logger *zap.Logger) *Client {
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	attempts := config.MaxAttempts
	if attempts <= 0 {
		attempts = defaultMaxAttempts
	}

	limiter := rate.NewLimiter(rate.Inf, 0)
	if config.RequestsPerSecond > 0 {
		burst := config.Burst
		if burst <= 0 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(config.RequestsPerSecond), burst)
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		httpClient:  &http.Client{Timeout: timeout},
		apiKey:      config.APIKey,
		baseURL:     strings.TrimRight(config.BaseURL, "/"),
		rateLimiter: limiter,
		maxAttempts: attempts,
		backoff:     exponentialBackoff,
		logger:      logger,
	}
}

// GetJSON fetches path with the given query and decodes the JSON body into out.
// Transport errors, 429 and 5xx responses are retried with exponential
// backoff; 404 returns ErrNotFound and other 4xx fail immediately.
func (c *Client) GetJSON(ctx context.Context, path string, query url.Values, out interface{}) error {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var lastErr error
	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		if attempt > 1 {
			if err := sleepCtx(ctx, c.backoff(attempt-1)); err != nil {
				return err
			}
		}

		if err := c.rateLimiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limiter error: %w", err)
		}

		body, status, err := c.do(ctx, reqURL)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			c.logger.Debug("request error",
				zap.String("path", path),
				zap.Int("attempt", attempt),
				zap.Error(err))
			lastErr = fmt.Errorf("%w: %v", ErrUnavailable, err)
			continue
		}

		switch {
		case status == http.StatusOK:
			if err := json.Unmarshal(body, out); err != nil {
				return fmt.Errorf("failed to decode response: %w", err)
			}
			return nil
		case status == http.StatusNotFound:
			return ErrNotFound
		case status == http.StatusTooManyRequests:
			lastErr = fmt.Errorf("%w: status %d", ErrThrottled, status)
		case status >= 500:
			lastErr = fmt.Errorf("%w: status %d", ErrUnavailable, status)
		default:
			return fmt.Errorf("%w: status %d, body: %s", ErrUnavailable, status, truncate(body, maxErrorBodyBytes))
		}

		c.logger.Debug("retryable response",
			zap.String("path", path),
			zap.Int("attempt", attempt),
			zap.Int("status", status))
	}

	c.logger.Warn("all retries failed", zap.String("path", path), zap.Error(lastErr))
	return lastErr
}

// do executes one GET request and returns the bounded body
func (c *Client) do(ctx context.Context, reqURL string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	body, err := readLimitedBody(resp.Body, maxBodyBytes)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("failed to read response: %w", err)
	}
	return body, resp.StatusCode, nil
}

// exponentialBackoff returns the wait before retry number attempt (1-based)
func exponentialBackoff(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	return time.Duration(1<<(attempt-1)) * 500 * time.Millisecond
}

// readLimitedBody reads at most limit bytes from r
func readLimitedBody(r io.Reader, limit int64) ([]byte, error) {
	return io.ReadAll(io.LimitReader(r, limit))
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func truncate(body []byte, n int) string {
	if len(body) > n {
		return string(body[:n])
	}
	return string(body)
}
