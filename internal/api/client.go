// Package api is the single request path to the Biogleam backend.
//
// Cross-cutting concerns live here so call sites stay thin: every request
// carries the stored bearer token when one exists, every response body is
// normalized from snake_case to camelCase before decoding, and a 401 from
// any endpoint other than login discards the token and fires the
// configured OnUnauthorized hook. The resource wrappers (leads, projects,
// blog posts, clients, reviews, users, stats, uploads) contain no business
// logic beyond optional-field elision.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"

	"github.com/biogleam/biogleam/internal/auth"
)

// DefaultBaseURL is used when no backend URL is configured.
const DefaultBaseURL = "http://localhost:4000/api/v1"

const loginPath = "/auth/login"

// Client talks to the Biogleam REST backend.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	tokens         auth.TokenStore
	cache          *listCache
	log            zerolog.Logger
	onUnauthorized func()
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client. Its transport is still
// wrapped with the standard middleware chain.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.httpClient = httpClient }
}

// WithLogger enables request logging.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) { c.log = log }
}

// WithOnUnauthorized registers the hook fired after a 401 from any
// non-login endpoint has discarded the stored token. The web surface
// redirects to the login page here; the CLI prints a login hint.
func WithOnUnauthorized(fn func()) Option {
	return func(c *Client) { c.onUnauthorized = fn }
}

// New creates an API client for the backend at baseURL.
func New(baseURL string, tokens auth.TokenStore, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		tokens:  tokens,
		cache:   newListCache(),
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	c.httpClient.Transport = chain(c.httpClient.Transport,
		requestLogging(c.log),
		bearerAuth(c.tokens),
	)

	return c
}

// BaseURL returns the backend base URL the client was built with.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// do executes one request and decodes the normalized response into out.
// Pass a nil out to discard the response body.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(req, out)
}

// send runs an already-built request through the transport, applies the
// global 401 policy, and decodes the normalized body.
//
// The request ID is stamped here, before the transport runs, so the same
// value goes over the wire and into any *Error built from the response.
func (c *Client) send(req *http.Request, out any) error {
	if req.Header.Get(requestIDHeader) == "" {
		req.Header.Set(requestIDHeader, ulid.Make().String())
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized && !isLoginRequest(req) {
		// The session is no longer valid anywhere but the login form,
		// where a 401 is credential feedback and must pass through.
		c.handleUnauthorized()
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return newError(resp.StatusCode, req.Header.Get(requestIDHeader), data)
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	normalized, err := camelizeJSON(data)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(normalized, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func isLoginRequest(req *http.Request) bool {
	return strings.HasSuffix(req.URL.Path, loginPath)
}

func (c *Client) handleUnauthorized() {
	if err := c.tokens.Delete(); err != nil {
		c.log.Warn().Err(err).Msg("Failed to discard token after 401")
	}
	if c.onUnauthorized != nil {
		c.onUnauthorized()
	}
}
