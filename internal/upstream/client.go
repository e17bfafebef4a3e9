package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	appErrors "github.com/noah-isme/interview-console/pkg/errors"
)

// Observer receives the timing of each completed platform API call.
type Observer func(endpoint string, duration time.Duration)

// Client talks to the platform API that owns all business logic. Every call
// is plain request/response; the console never retries.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
	observe    Observer
}

// Option configures the client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithTimeout sets the request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithLogger attaches a logger for request diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithObserver attaches a per-call timing observer.
func WithObserver(observe Observer) Option {
	return func(c *Client) {
		c.observe = observe
	}
}

// NewClient creates a platform API client.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: zap.NewNop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// listEnvelope is the shape of every paginated platform API listing.
type listEnvelope struct {
	Items      json.RawMessage `json:"items"`
	Pagination json.RawMessage `json:"pagination"`
}

func (c *Client) get(ctx context.Context, path string, query url.Values, token string, out interface{}, fallback string) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "build upstream request")
	}
	return c.do(req, token, out, fallback)
}

func (c *Client) postJSON(ctx context.Context, path, token string, in, out interface{}, fallback string) error {
	body, err := json.Marshal(in)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "encode upstream payload")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "build upstream request")
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, token, out, fallback)
}

func (c *Client) postMultipart(ctx context.Context, path, token, contentType string, body io.Reader, out interface{}, fallback string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, body)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "build upstream request")
	}
	req.Header.Set("Content-Type", contentType)
	return c.do(req, token, out, fallback)
}

func (c *Client) do(req *http.Request, token string, out interface{}, fallback string) error {
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("upstream request failed",
			zap.String("method", req.Method),
			zap.String("path", req.URL.Path),
			zap.Error(err))
		return appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, fallback)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, fallback)
	}

	latency := time.Since(start)
	if c.observe != nil {
		c.observe(req.URL.Path, latency)
	}
	c.logger.Debug("upstream request",
		zap.String("method", req.Method),
		zap.String("path", req.URL.Path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("latency", latency))

	if resp.StatusCode >= http.StatusBadRequest {
		message := appErrors.DetailMessage(body, fallback)
		status := resp.StatusCode
		if status >= http.StatusInternalServerError {
			status = appErrors.ErrUpstream.Status
		}
		return appErrors.New(appErrors.ErrUpstream.Code, status, message)
	}

	if out == nil || len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status,
			fmt.Sprintf("%s: malformed upstream response", fallback))
	}
	return nil
}
