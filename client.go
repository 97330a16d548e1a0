// Package hetznerdns is a client for the Hetzner DNS API. It covers zone
// listing and the full record lifecycle (list, get, create, update, delete),
// mapping HTTP status codes onto a small set of sentinel errors.
//
// Every operation is a single authenticated round trip. The client holds no
// background resources, performs no retries and sets no timeouts of its own;
// cancellation and deadlines belong to the caller's context.
package hetznerdns

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
)

// DefaultBaseURL is the fixed API root of the Hetzner DNS service.
const DefaultBaseURL = "https://dns.hetzner.com/api/v1"

const authHeader = "Auth-API-Token"

// Client talks to the Hetzner DNS API. It is immutable after construction
// and safe for concurrent use.
type Client struct {
	authToken  string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

type Option func(*Client)

// WithBaseURL overrides the API root, mainly for test servers.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithHTTPClient overrides the underlying transport.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithLogger sets a diagnostic sink. The client never logs the token.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New builds a Client for the given API token. No network I/O happens here
// and construction cannot fail. The token is kept in memory only.
func New(authToken string, opts ...Option) *Client {
	c := &Client{
		authToken:  authToken,
		baseURL:    DefaultBaseURL,
		httpClient: http.DefaultClient,
		logger:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// request performs one authenticated round trip and returns the raw response
// body together with the status code. Errors returned here are pre-response
// failures; callers wrap them as transport errors.
func (c *Client) request(ctx context.Context, method, endpoint string, query url.Values, payload any) ([]byte, int, error) {
	target := c.baseURL + endpoint
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, 0, fmt.Errorf("encoding request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, 0, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set(authHeader, c.authToken)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.Debug("sending request", "method", method, "endpoint", endpoint)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("reading response body: %w", err)
	}

	c.logger.Debug("received response", "method", method, "endpoint", endpoint, "status", resp.StatusCode)

	return data, resp.StatusCode, nil
}
