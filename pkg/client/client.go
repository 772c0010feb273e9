package client

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/usestring/wpjson-seven/pkg/contenttype"
	"github.com/usestring/wpjson-seven/pkg/wpschema"
)

// DefaultUserAgent is sent with discovery requests. Some hosts reject
// requests without a browser-like agent.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 6.3; WOW64; Trident/7.0; rv:11.0) like Gecko"

// DefaultTimeout bounds a whole discovery request.
const DefaultTimeout = 30 * time.Second

var wpJSONSegment = regexp.MustCompile(`(?i)/wp-json`)

// Client fetches discovery documents from WordPress sites.
type Client struct {
	httpClient *http.Client
	userAgent  string
	timeout    time.Duration
	insecure   bool
}

// Option is a functional option for configuring the Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client. WithTimeout and WithInsecureTLS
// have no effect when it is used.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTimeout sets the request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithInsecureTLS disables TLS certificate verification, for sites using
// self-signed certificates.
func WithInsecureTLS(insecure bool) Option {
	return func(c *Client) {
		c.insecure = insecure
	}
}

// WithUserAgent overrides DefaultUserAgent.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// New creates a new discovery client.
func New(opts ...Option) *Client {
	c := &Client{
		userAgent: DefaultUserAgent,
		timeout:   DefaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.httpClient == nil {
		transport := http.DefaultTransport.(*http.Transport).Clone()
		if c.insecure {
			transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
		}
		c.httpClient = &http.Client{
			Timeout:   c.timeout,
			Transport: transport,
		}
	}
	return c
}

// DiscoveryURL returns the URL of the discovery index for site. "wp-json/"
// is appended unless the URL already contains a wp-json segment.
func DiscoveryURL(site string) string {
	if wpJSONSegment.MatchString(site) {
		return site
	}
	return strings.TrimSuffix(site, "/") + "/wp-json/"
}

// FetchDocument downloads and decodes the discovery document of site.
// Every failure is returned as a *RetrievalError.
func (c *Client) FetchDocument(ctx context.Context, site string) (*wpschema.Document, error) {
	u := DiscoveryURL(site)

	body, contentType, err := c.get(ctx, u)
	if err != nil {
		return nil, &RetrievalError{Source: u, Err: err}
	}
	if wpschema.IsEmptyPayload(body) {
		return nil, &RetrievalError{Source: u, Err: ErrNoData}
	}

	doc, err := wpschema.Parse(body)
	if err != nil {
		// Hosts without the REST API often answer with their HTML front page.
		if !contenttype.IsJSON(contentType) {
			err = fmt.Errorf("%w (got %s): %v", ErrNotJSON, contentType, err)
		}
		return nil, &RetrievalError{Source: u, Err: err}
	}
	return doc, nil
}

// get performs a GET request and returns the response body and its
// Content-Type.
func (c *Client) get(ctx context.Context, u string) ([]byte, string, error) {
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.Debug("HTTP request failed",
			slog.String("method", "GET"),
			slog.String("url", u),
			slog.String("error", err.Error()),
			slog.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
		return nil, "", fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		apiErr := c.parseError(resp)
		slog.Debug("HTTP request returned error",
			slog.String("method", "GET"),
			slog.String("url", u),
			slog.Int("status", resp.StatusCode),
			slog.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
		return nil, "", apiErr
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("reading response: %w", err)
	}

	slog.Debug("HTTP request completed",
		slog.String("method", "GET"),
		slog.String("url", u),
		slog.Int("status", resp.StatusCode),
		slog.Int("bytes", len(body)),
		slog.Int64("duration_ms", time.Since(start).Milliseconds()),
	)

	return body, resp.Header.Get("Content-Type"), nil
}

// parseError extracts an APIError from an error response.
func (c *Client) parseError(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)
	var errResp errorResponse
	if json.Unmarshal(body, &errResp) == nil && errResp.Message != "" {
		return &APIError{StatusCode: resp.StatusCode, Code: errResp.Code, Message: errResp.Message}
	}
	return &APIError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(body))}
}
