package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"

	"github.com/Kamar-Folarin/github-signals/internal/config"
)

// Fetcher performs a GET against the GitHub REST API and decodes the JSON body into out
type Fetcher interface {
	Get(ctx context.Context, path string, query url.Values, out interface{}) error
}

// Observer receives per-request telemetry from the client
type Observer interface {
	ObserveUpstream(endpoint string, status int, elapsed time.Duration)
	ObserveRateLimit(remaining int)
}

// RateLimitInfo holds information about GitHub API rate limits
type RateLimitInfo struct {
	Limit     int
	Remaining int
	ResetTime time.Time
	// Set from Retry-After on secondary limits
	SecondaryLimitReset time.Time
}

// Client represents a client for interacting with the GitHub API
type Client struct {
	client   *http.Client
	baseURL  string
	logger   *logrus.Logger
	observer Observer

	mu            sync.Mutex
	rateLimitInfo RateLimitInfo

	maxRetries     int
	initialBackoff time.Duration
	maxBackoff     time.Duration
}

// ClientOption allows configuring the GitHub client
type ClientOption func(*Client)

// WithRetryConfig configures retry behavior for transport failures and 5xx responses
func WithRetryConfig(maxRetries int, initialBackoff, maxBackoff time.Duration) ClientOption {
	return func(c *Client) {
		c.maxRetries = maxRetries
		c.initialBackoff = initialBackoff
		c.maxBackoff = maxBackoff
	}
}

// WithObserver attaches a telemetry observer
func WithObserver(observer Observer) ClientOption {
	return func(c *Client) {
		c.observer = observer
	}
}

// NewClient creates a new GitHub client from the given configuration and options.
// Without a token requests are sent unauthenticated.
func NewClient(cfg *config.GitHubConfig, logger *logrus.Logger, opts ...ClientOption) *Client {
	httpClient := &http.Client{}
	if cfg.Token != "" {
		ts := oauth2.StaticTokenSource(
			&oauth2.Token{AccessToken: cfg.Token},
		)
		httpClient = oauth2.NewClient(context.Background(), ts)
	}
	httpClient.Timeout = cfg.Timeout

	client := &Client{
		client:         httpClient,
		baseURL:        strings.TrimRight(cfg.APIBaseURL, "/"),
		logger:         logger,
		maxRetries:     cfg.RateLimit.MaxRetries,
		initialBackoff: cfg.RateLimit.InitialBackoff,
		maxBackoff:     cfg.RateLimit.MaxBackoff,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// RateLimit returns the last observed rate limit state
func (c *Client) RateLimit() RateLimitInfo {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rateLimitInfo
}

// updateRateLimitInfo updates the rate limit information from response headers
func (c *Client) updateRateLimitInfo(resp *http.Response) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if limit := resp.Header.Get("X-RateLimit-Limit"); limit != "" {
		c.rateLimitInfo.Limit, _ = strconv.Atoi(limit)
	}
	if remaining := resp.Header.Get("X-RateLimit-Remaining"); remaining != "" {
		c.rateLimitInfo.Remaining, _ = strconv.Atoi(remaining)
		if c.observer != nil {
			c.observer.ObserveRateLimit(c.rateLimitInfo.Remaining)
		}
	}
	if reset := resp.Header.Get("X-RateLimit-Reset"); reset != "" {
		if resetTime, err := strconv.ParseInt(reset, 10, 64); err == nil {
			c.rateLimitInfo.ResetTime = time.Unix(resetTime, 0)
		}
	}

	if retryAfter := resp.Header.Get("Retry-After"); retryAfter != "" {
		if retrySeconds, err := strconv.ParseInt(retryAfter, 10, 64); err == nil {
			c.rateLimitInfo.SecondaryLimitReset = time.Now().Add(time.Duration(retrySeconds) * time.Second)
		}
	}
}

// Get fetches path with the given query and decodes the response into out
func (c *Client) Get(ctx context.Context, path string, query url.Values, out interface{}) error {
	if path == "" || !strings.HasPrefix(path, "/") {
		return NewValidationError("path", "must start with /")
	}

	rawURL := c.baseURL + path
	if len(query) > 0 {
		rawURL += "?" + query.Encode()
	}

	return c.doRequestWithBackoff(ctx, path, rawURL, out)
}

// doRequestWithBackoff performs a GET with exponential backoff on transport failures and 5xx.
// Client errors are returned immediately since retrying cannot change them.
func (c *Client) doRequestWithBackoff(ctx context.Context, path, rawURL string, out interface{}) error {
	var lastErr error
	backoff := c.initialBackoff
	logger := c.logger.WithField("path", path)

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			if err := sleepContext(ctx, backoff); err != nil {
				return NewGitHubError(0, "request cancelled", err)
			}
			backoff = time.Duration(math.Min(float64(backoff*2), float64(c.maxBackoff)))
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
		if err != nil {
			return NewGitHubError(0, "failed to create request", err)
		}
		req.Header.Set("Accept", "application/vnd.github+json")
		req.Header.Set("X-GitHub-Api-Version", "2022-11-28")

		start := time.Now()
		resp, err := c.client.Do(req)
		if err != nil {
			c.observe(path, 0, start)
			lastErr = NewGitHubError(0, "request failed", err)
			if ctx.Err() != nil {
				return lastErr
			}
			logger.Warnf("Request attempt %d failed: %v", attempt+1, err)
			continue
		}

		c.updateRateLimitInfo(resp)

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		c.observe(path, resp.StatusCode, start)
		if err != nil {
			lastErr = NewGitHubError(resp.StatusCode, "failed to read response body", err)
			continue
		}

		if resp.StatusCode >= http.StatusInternalServerError {
			lastErr = NewGitHubError(resp.StatusCode, string(body), nil)
			logger.WithField("status", resp.StatusCode).Warnf("Request attempt %d returned server error", attempt+1)
			continue
		}

		if err := c.classify(path, resp, body); err != nil {
			logger.WithField("status", resp.StatusCode).Debugf("Request rejected: %v", err)
			return err
		}

		if out != nil && len(body) > 0 {
			if err := json.Unmarshal(body, out); err != nil {
				return NewGitHubError(resp.StatusCode, "failed to decode response", err)
			}
		}

		return nil
	}

	return fmt.Errorf("max retries exceeded: %w", lastErr)
}

// classify maps a non-5xx response status to a typed error, or nil on success
func (c *Client) classify(path string, resp *http.Response, body []byte) error {
	switch {
	case resp.StatusCode < http.StatusBadRequest:
		return nil
	case resp.StatusCode == http.StatusNotFound:
		return NewNotFoundError(path)
	case resp.StatusCode == http.StatusUnauthorized:
		return NewUnauthorizedError(resp.StatusCode, string(body))
	case resp.StatusCode == http.StatusTooManyRequests:
		return NewRateLimitError(resp.StatusCode, c.RateLimit())
	case resp.StatusCode == http.StatusForbidden:
		if resp.Header.Get("X-RateLimit-Remaining") == "0" || resp.Header.Get("Retry-After") != "" {
			return NewRateLimitError(resp.StatusCode, c.RateLimit())
		}
		return NewUnauthorizedError(resp.StatusCode, string(body))
	default:
		return NewGitHubError(resp.StatusCode, string(body), nil)
	}
}

func (c *Client) observe(path string, status int, start time.Time) {
	if c.observer == nil {
		return
	}
	c.observer.ObserveUpstream(EndpointClass(path), status, time.Since(start))
}

// EndpointClass reduces a request path to a low-cardinality label,
// e.g. "/repos/o/n/contents/.github" -> "repos.contents".
func EndpointClass(path string) string {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	switch {
	case len(parts) == 0 || parts[0] == "":
		return "root"
	case parts[0] == "users" && len(parts) >= 3:
		return "users." + parts[2]
	case parts[0] == "repos" && len(parts) >= 4:
		return "repos." + parts[3]
	default:
		return parts[0]
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
