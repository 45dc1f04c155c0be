// Package api implements the authenticated Canvas LMS REST client: URL
// construction, transport, Link-header pagination, and error classification.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/openlms/canvas-mcp/internal/canvas/common"
)

const apiVersionPath = "/api/v1"

// Client is an HTTP client for the Canvas LMS API. A Client binds to exactly
// one (base URL, token) pair for its lifetime and is safe for sequential use
// within one tool invocation; invocations never share a Client.
type Client struct {
	baseURL        string // normalized to end with /api/v1
	token          string
	httpClient     *http.Client
	logger         *common.Logger
	defaultPerPage int
	debug          bool
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the per-request timeout. Default is 30s.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// WithLogger sets the logger used for debug tracing.
func WithLogger(logger *common.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// WithDefaultPerPage sets the per_page value injected on paginated requests
// that don't specify one. Default is 100.
func WithDefaultPerPage(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.defaultPerPage = n
		}
	}
}

// WithDebug enables request/response debug logging.
func WithDebug(enabled bool) Option {
	return func(c *Client) { c.debug = enabled }
}

// NewClient creates a Canvas API client for the given base URL and access
// token. The base URL is normalized to include the /api/v1 path segment
// exactly once: appended if absent, reused if already present.
func NewClient(apiURL, token string, opts ...Option) *Client {
	base := strings.TrimRight(apiURL, "/")
	if !strings.HasSuffix(base, apiVersionPath) {
		base += apiVersionPath
	}

	c := &Client{
		baseURL:        base,
		token:          token,
		httpClient:     &http.Client{Timeout: 30 * time.Second},
		logger:         common.NewSilentLogger(),
		defaultPerPage: 100,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the normalized base URL, ending with /api/v1.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// buildURL composes the full request URL from an endpoint and query
// parameters. The endpoint is normalized to a single leading slash and
// concatenated onto the base URL; list-valued parameters encode as repeated
// key=value fragments in slice order.
func (c *Client) buildURL(endpoint string, params url.Values) string {
	if !strings.HasPrefix(endpoint, "/") {
		endpoint = "/" + endpoint
	}
	u := c.baseURL + endpoint
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	return u
}

func (c *Client) headers() http.Header {
	h := make(http.Header)
	h.Set("Authorization", "Bearer "+c.token)
	h.Set("Content-Type", "application/json")
	h.Set("Accept", "application/json")
	return h
}

// do executes one HTTP call against a fully-built URL and returns the raw
// body. Failed statuses resolve to a classified *Error; pre-response
// failures resolve to a transport *Error.
func (c *Client) do(ctx context.Context, method, fullURL, endpoint string, body io.Reader) ([]byte, error) {
	if c.debug {
		c.logger.Debug().
			Str("method", method).
			Str("url", fullURL).
			Msg("Canvas API request")
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return nil, transportError(err, endpoint)
	}
	for key, vals := range c.headers() {
		for _, v := range vals {
			req.Header.Set(key, v)
		}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(start)

	if err != nil {
		c.logger.Error().Err(err).Str("endpoint", endpoint).Dur("duration", duration).Msg("Canvas API request failed")
		return nil, transportError(err, endpoint)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, transportError(fmt.Errorf("failed to read response: %w", err), endpoint)
	}

	if c.debug {
		c.logger.Debug().
			Int("status_code", resp.StatusCode).
			Dur("duration", duration).
			Int("bytes", len(respBody)).
			Msg("Canvas API response")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, classifyResponse(resp, respBody, endpoint)
	}

	return respBody, nil
}

// doFollow is like do but also returns the Link header for pagination.
func (c *Client) doFollow(ctx context.Context, fullURL, endpoint string) ([]byte, string, error) {
	if c.debug {
		c.logger.Debug().
			Str("method", http.MethodGet).
			Str("url", fullURL).
			Msg("Canvas API request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, "", transportError(err, endpoint)
	}
	for key, vals := range c.headers() {
		for _, v := range vals {
			req.Header.Set(key, v)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Str("endpoint", endpoint).Msg("Canvas API request failed")
		return nil, "", transportError(err, endpoint)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", transportError(fmt.Errorf("failed to read response: %w", err), endpoint)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, "", classifyResponse(resp, respBody, endpoint)
	}

	return respBody, resp.Header.Get("Link"), nil
}

// Get performs a single GET request and returns the raw JSON body, which may
// be an object or an array depending on the endpoint.
func (c *Client) Get(ctx context.Context, endpoint string, params url.Values) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, c.buildURL(endpoint, params), endpoint, nil)
}

// GetPaginated performs a GET request and follows Canvas Link-header
// continuation links until exhausted, returning all items in server order.
// If per_page is not in params, the client default is injected. A non-array
// first response is returned as a single item without paginating.
//
// Any page failure propagates its classified error immediately; accumulated
// items from earlier pages are discarded, so callers see either the complete
// list or an error, never a truncated list.
func (c *Client) GetPaginated(ctx context.Context, endpoint string, params url.Values) ([]json.RawMessage, error) {
	if params == nil {
		params = url.Values{}
	}
	if params.Get("per_page") == "" {
		params.Set("per_page", strconv.Itoa(c.defaultPerPage))
	}

	body, linkHeader, err := c.doFollow(ctx, c.buildURL(endpoint, params), endpoint)
	if err != nil {
		return nil, err
	}

	var items []json.RawMessage
	if err := json.Unmarshal(body, &items); err != nil {
		// Not a list: return the payload as-is, no pagination.
		return []json.RawMessage{json.RawMessage(body)}, nil
	}

	nextURL := nextPageURL(linkHeader)
	for nextURL != "" {
		if c.debug {
			c.logger.Debug().Str("url", nextURL).Msg("Canvas API pagination")
		}

		pageBody, pageLink, err := c.doFollow(ctx, nextURL, endpoint)
		if err != nil {
			return nil, err
		}

		var page []json.RawMessage
		if err := json.Unmarshal(pageBody, &page); err != nil {
			return nil, &Error{
				Kind:     KindGeneric,
				Message:  fmt.Sprintf("expected array page, got: %v", err),
				Endpoint: endpoint,
			}
		}
		items = append(items, page...)
		nextURL = nextPageURL(pageLink)
	}

	return items, nil
}

// Post performs a POST request with an optional JSON body.
func (c *Client) Post(ctx context.Context, endpoint string, jsonData any, params url.Values) (json.RawMessage, error) {
	body, err := encodeBody(jsonData, endpoint)
	if err != nil {
		return nil, err
	}
	return c.do(ctx, http.MethodPost, c.buildURL(endpoint, params), endpoint, body)
}

// Put performs a PUT request with an optional JSON body.
func (c *Client) Put(ctx context.Context, endpoint string, jsonData any, params url.Values) (json.RawMessage, error) {
	body, err := encodeBody(jsonData, endpoint)
	if err != nil {
		return nil, err
	}
	return c.do(ctx, http.MethodPut, c.buildURL(endpoint, params), endpoint, body)
}

// Delete performs a DELETE request. An empty response body decodes to an
// empty JSON object rather than failing.
func (c *Client) Delete(ctx context.Context, endpoint string, params url.Values) (json.RawMessage, error) {
	body, err := c.do(ctx, http.MethodDelete, c.buildURL(endpoint, params), endpoint, nil)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return json.RawMessage(`{}`), nil
	}
	return body, nil
}

func encodeBody(jsonData any, endpoint string) (io.Reader, error) {
	if jsonData == nil {
		return nil, nil
	}
	data, err := json.Marshal(jsonData)
	if err != nil {
		return nil, &Error{
			Kind:     KindGeneric,
			Message:  fmt.Sprintf("failed to marshal request body: %v", err),
			Endpoint: endpoint,
		}
	}
	return bytes.NewReader(data), nil
}

// nextPageURL extracts the continuation URL from a Canvas Link header:
//
//	Link: <https://canvas.example.com/api/v1/courses?page=2>; rel="next"
//
// Matching is a permissive substring check on each comma-separated entry, not
// strict RFC 5988 parsing; Canvas emits well-formed headers and the permissive
// form tolerates the variants seen in the wild. Returns "" when no entry
// carries rel="next".
func nextPageURL(linkHeader string) string {
	if linkHeader == "" {
		return ""
	}

	for _, link := range strings.Split(linkHeader, ",") {
		if !strings.Contains(link, `rel="next"`) {
			continue
		}
		urlPart := strings.TrimSpace(strings.SplitN(link, ";", 2)[0])
		return strings.Trim(urlPart, "<>")
	}

	return ""
}
