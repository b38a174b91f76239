// Package insight provides a client for the upstream analysis engine
package insight

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"

	"github.com/tickerlens/tickerlens/internal/common"
	"github.com/tickerlens/tickerlens/internal/models"
)

const (
	DefaultBaseURL   = "http://localhost:5000"
	DefaultTimeout   = 120 * time.Second // full agent pipeline runs can be slow
	DefaultRateLimit = 5                 // requests per second
)

// Client calls the analysis engine's /analyze endpoint.
type Client struct {
	http    *resty.Client
	logger  *common.Logger
	limiter *rate.Limiter
}

// ClientOption configures the client
type ClientOption func(*Client)

// WithBaseURL sets the base URL
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.http.SetBaseURL(baseURL)
	}
}

// WithLogger sets the logger
func WithLogger(logger *common.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithRateLimit sets the rate limit
func WithRateLimit(requestsPerSecond int) ClientOption {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond)
	}
}

// WithTimeout sets the HTTP timeout
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.http.SetTimeout(timeout)
	}
}

// NewClient creates a new analysis engine client
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		http:    resty.New().SetBaseURL(DefaultBaseURL).SetTimeout(DefaultTimeout),
		limiter: rate.NewLimiter(rate.Limit(DefaultRateLimit), DefaultRateLimit),
		logger:  common.NewSilentLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// APIError represents a transport-level failure against the engine: the
// request could not complete, or the body was not the expected JSON envelope.
// A declared application failure (success=false) is NOT an APIError; it comes
// back as a normal AnalysisResponse.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("insight API error: %s (status: %d)", e.Message, e.StatusCode)
}

// Analyze submits a ticker for analysis and returns the engine's envelope.
// Every submission issues exactly one request; concurrent submissions are
// neither deduplicated nor cancelled.
func (c *Client) Analyze(ctx context.Context, req *models.AnalyzeRequest) (*models.AnalysisResponse, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	start := time.Now()
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/analyze")
	if err != nil {
		return nil, fmt.Errorf("analyze request: %w", err)
	}

	// The engine wraps application failures in the same envelope with a non-2xx
	// status, so the body is decoded regardless of the status code. Only a body
	// that is not the envelope at all counts as a transport failure.
	var out models.AnalysisResponse
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return nil, &APIError{
			StatusCode: resp.StatusCode(),
			Message:    "response is not valid JSON",
		}
	}

	c.logger.Debug().
		Str("ticker", req.Ticker).
		Int("status", resp.StatusCode()).
		Bool("success", out.Success).
		Dur("elapsed", time.Since(start)).
		Msg("Analyze request completed")

	return &out, nil
}
