package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/nao1215/osintnexus/internal/catalog"
	applog "github.com/nao1215/osintnexus/internal/log"
)

// maxResponseSize caps how much of a response body is read.
const maxResponseSize = 4 << 20

// Client talks to one backend.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	headers    map[string]string
	userAgent  string
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets a per-request timeout. Zero means no timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithTransport replaces the HTTP transport, e.g. with a SOCKS5 one.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) {
		c.httpClient.Transport = rt
	}
}

// WithHeaders adds headers to every request.
func WithHeaders(headers map[string]string) Option {
	return func(c *Client) {
		for k, v := range headers {
			c.headers[k] = v
		}
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a client for the backend at baseURL.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBaseURL, baseURL)
	}

	c := &Client{
		baseURL:    u,
		httpClient: &http.Client{Transport: http.DefaultTransport.(*http.Transport).Clone()},
		headers:    make(map[string]string),
		logger:     applog.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the backend URL without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// Close releases idle connections.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

// Health calls GET /api/health.
func (c *Client) Health(ctx context.Context) (Health, error) {
	var h Health
	err := c.do(ctx, http.MethodGet, "/api/health", nil, &h)
	return h, err
}

// Overview calls GET /api/dashboard/overview.
func (c *Client) Overview(ctx context.Context) (Overview, error) {
	var o Overview
	err := c.do(ctx, http.MethodGet, "/api/dashboard/overview", nil, &o)
	return o, err
}

// Modules calls GET /api/modules.
func (c *Client) Modules(ctx context.Context) ([]catalog.Module, error) {
	var l ModuleList
	if err := c.do(ctx, http.MethodGet, "/api/modules", nil, &l); err != nil {
		return nil, err
	}
	return l.Modules, nil
}

// Investigations calls GET /api/investigations.
func (c *Client) Investigations(ctx context.Context) ([]Investigation, error) {
	var l InvestigationList
	if err := c.do(ctx, http.MethodGet, "/api/investigations", nil, &l); err != nil {
		return nil, err
	}
	return l.Investigations, nil
}

// Notifications calls GET /api/notifications.
func (c *Client) Notifications(ctx context.Context) ([]Notification, error) {
	var l NotificationList
	if err := c.do(ctx, http.MethodGet, "/api/notifications", nil, &l); err != nil {
		return nil, err
	}
	return l.Notifications, nil
}

// Profile calls GET /api/profile.
func (c *Client) Profile(ctx context.Context) (Profile, error) {
	var p Profile
	err := c.do(ctx, http.MethodGet, "/api/profile", nil, &p)
	return p, err
}

// Execute runs tool of moduleID against target. The target is sent as is.
// A response without a results object fails with ErrMissingResults.
func (c *Client) Execute(ctx context.Context, moduleID, tool, target string) (ExecuteResponse, error) {
	var resp ExecuteResponse
	path := "/api/modules/" + url.PathEscape(moduleID) + "/execute"
	if err := c.do(ctx, http.MethodPost, path, ExecuteRequest{Tool: tool, Target: target}, &resp); err != nil {
		return ExecuteResponse{}, err
	}
	if resp.Results == nil {
		return ExecuteResponse{}, ErrMissingResults
	}
	return resp, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	endpoint := c.baseURL.JoinPath(path).String()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	c.logger.Debug("backend request",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return fmt.Errorf("%s %s: failed to read response: %w", method, path, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: %s %s returned %d", ErrUnexpectedStatus, method, path, resp.StatusCode)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%s %s: failed to decode response: %w", method, path, err)
	}
	return nil
}
