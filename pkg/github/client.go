// Package github is the GitHub REST API client used by the census. It
// carries authentication and API-version headers on every request,
// classifies failures, records Prometheus metrics, observes rate limit
// quota headers, and optionally revalidates responses through a
// Redis-backed ETag cache.
package github

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/mkondo/gh-census/pkg/cache"
	"github.com/mkondo/gh-census/pkg/logging"
	"github.com/mkondo/gh-census/pkg/ratelimit"
)

// Prometheus metrics for API client operations.
var (
	ghRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gh_requests_total",
		Help: "Total GitHub API requests by endpoint and status",
	}, []string{"endpoint", "status"})

	ghRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "gh_request_duration_seconds",
		Help:    "GitHub API request duration in seconds by endpoint",
		Buckets: []float64{0.1, 0.5, 1, 2, 5, 10},
	}, []string{"endpoint"})

	ghErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gh_errors_total",
		Help: "Total GitHub API errors by class",
	}, []string{"class"})
)

// Accept and version headers required on every request.
// https://docs.github.com/en/rest/overview/media-types
const (
	acceptHeader  = "application/vnd.github.v3+json"
	apiVersion    = "2022-11-28"
	defaultAgent  = "gh-census/1.0"
	clientTimeout = 30 * time.Second
)

// Client is the GitHub API client.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	token       string
	userAgent   string
	cache       *cache.Manager
	rateLimiter *ratelimit.Tracker
	logger      zerolog.Logger
}

// Config holds the client configuration.
type Config struct {
	// BaseURL is the API root, normally https://api.github.com.
	BaseURL string

	// Token is the personal access token. Required.
	Token string

	// UserAgent identifies the tool (GitHub requires a User-Agent).
	UserAgent string

	// Redis enables the ETag response cache when non-nil.
	Redis *redis.Client

	// Timeout for each request (default 30s).
	Timeout time.Duration
}

// New creates a new GitHub client.
func New(cfg Config) (*Client, error) {
	if cfg.Token == "" {
		return nil, fmt.Errorf("token is required")
	}
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultAgent
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = clientTimeout
	}

	logger := logging.NewLogger("github-client")

	var cacheManager *cache.Manager
	if cfg.Redis != nil {
		cacheManager = cache.NewManager(cfg.Redis)
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:     cfg.BaseURL,
		token:       cfg.Token,
		userAgent:   cfg.UserAgent,
		cache:       cacheManager,
		rateLimiter: ratelimit.NewTracker(logger),
		logger:      logger,
	}, nil
}

// RateLimitState returns the last quota snapshot observed on a response.
func (c *Client) RateLimitState() ratelimit.State {
	return c.rateLimiter.State()
}

// get performs a GET against path with the given query parameters. It
// returns the response for any HTTP status; only transport failures
// produce an error. The caller owns the response body.
func (c *Client) get(ctx context.Context, path string, query url.Values) (*http.Response, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	return c.do(req)
}

// do executes a request with auth headers, cache revalidation, quota
// observation, and metrics. One attempt per request: a failed call is
// the caller's signal to stop, not to retry.
func (c *Client) do(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	endpoint := req.URL.Path

	startTime := time.Now()
	defer func() {
		ghRequestDuration.WithLabelValues(endpoint).Observe(time.Since(startTime).Seconds())
	}()

	// Check cache for a revalidatable entry
	var cachedEntry *cache.Entry
	var cacheKey cache.Key
	if c.cache != nil {
		cacheKey = cache.Key{
			Path:  endpoint,
			Query: req.URL.Query(),
		}

		var err error
		cachedEntry, err = c.cache.Get(ctx, cacheKey)
		if err != nil && err != cache.ErrCacheMiss {
			c.logger.Warn().Err(err).Str("endpoint", endpoint).Msg("Cache get error")
		}

		if cache.ShouldRevalidate(cachedEntry) {
			cache.AddConditionalHeaders(req, cachedEntry)
			cache.ConditionalSent.Inc()
			c.logger.Debug().
				Str("endpoint", endpoint).
				Str("etag", cachedEntry.ETag).
				Msg("Making conditional request")
		}
	}

	req.Header.Set("Authorization", "token "+c.token)
	req.Header.Set("Accept", acceptHeader)
	req.Header.Set("X-GitHub-Api-Version", apiVersion)
	req.Header.Set("User-Agent", c.userAgent)

	c.logger.Debug().
		Str("endpoint", endpoint).
		Str("method", req.Method).
		Msg("Executing GitHub request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		errClass := classify(nil, err)
		ghErrorsTotal.WithLabelValues(string(errClass)).Inc()
		ghRequestsTotal.WithLabelValues(endpoint, "network_error").Inc()
		c.logger.Error().Err(err).Str("endpoint", endpoint).Msg("HTTP request failed")
		return nil, &APIError{
			ErrorClass: errClass,
			Endpoint:   endpoint,
			Err:        err,
		}
	}

	// Quota headers arrive on every response, success or not
	c.rateLimiter.UpdateFromHeaders(resp.Header)

	ghRequestsTotal.WithLabelValues(endpoint, fmt.Sprintf("%d", resp.StatusCode)).Inc()

	if errClass := classify(resp, nil); errClass != "" {
		ghErrorsTotal.WithLabelValues(string(errClass)).Inc()
	}

	// 304 Not Modified: serve the cached body
	if resp.StatusCode == http.StatusNotModified && cachedEntry != nil {
		c.logger.Debug().Str("endpoint", endpoint).Msg("304 Not Modified - using cache")
		cache.NotModified.Inc()

		if expiresStr := resp.Header.Get("Expires"); expiresStr != "" {
			if newExpires, err := http.ParseTime(expiresStr); err == nil {
				if err := c.cache.UpdateTTL(ctx, cacheKey, newExpires); err != nil {
					c.logger.Warn().Err(err).Msg("Failed to update cache TTL")
				}
			}
		}

		resp.Body.Close()
		return cache.EntryToResponse(cachedEntry), nil
	}

	// Update cache on success
	if c.cache != nil && resp.StatusCode == http.StatusOK {
		entry, err := cache.ResponseToEntry(resp)
		if err != nil {
			c.logger.Warn().Err(err).Msg("Failed to create cache entry")
		} else if entry.TTL() > 0 {
			if err := c.cache.Set(ctx, cacheKey, entry); err != nil {
				c.logger.Warn().Err(err).Msg("Failed to cache response")
			} else {
				c.logger.Debug().
					Str("endpoint", endpoint).
					Dur("ttl", entry.TTL()).
					Msg("Cached response")
			}
		}
	}

	return resp, nil
}

// SetHTTPClient sets a custom HTTP client (for testing).
func (c *Client) SetHTTPClient(client *http.Client) {
	c.httpClient = client
}
