package transport

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// APIError is defined in transport to avoid circular imports with the
// parent client package. It mirrors banxa.APIError.
type APIError struct {
	StatusCode int
	Method     string
	Path       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("banxa: %s %s returned %d: %s", e.Method, e.Path, e.StatusCode, e.Message)
}

// HTTPClient issues signed requests against the Banxa REST API.
//
// There is deliberately no retry layer here: each request carries a
// freshness nonce in its signature, so replaying a request verbatim is
// rejected by the provider. Callers that want retries must re-sign.
type HTTPClient struct {
	client  *http.Client
	baseURL string
}

// Option is a functional option for configuring HTTPClient.
type Option func(*HTTPClient)

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) {
		c.client.Timeout = d
	}
}

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) {
		c.client = hc
	}
}

// NewHTTPClient creates a new HTTPClient with the given base URL.
// Default timeout is 10s.
func NewHTTPClient(baseURL string, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get performs an HTTP GET request. The path must already carry any
// encoded query string, since the same string was covered by the
// request signature in headers.
func (c *HTTPClient) Get(ctx context.Context, path string, headers http.Header) (*http.Response, error) {
	req, err := c.newRequest(ctx, http.MethodGet, path, headers, nil)
	if err != nil {
		return nil, err
	}
	return c.client.Do(req)
}

// Post performs an HTTP POST request. The body bytes are sent exactly
// as given; the caller signs the same bytes.
func (c *HTTPClient) Post(ctx context.Context, path string, headers http.Header, body []byte) (*http.Response, error) {
	req, err := c.newRequest(ctx, http.MethodPost, path, headers, body)
	if err != nil {
		return nil, err
	}
	return c.client.Do(req)
}

// newRequest builds an *http.Request with the full URL, raw body, and headers.
func (c *HTTPClient) newRequest(ctx context.Context, method, path string, headers http.Header, body []byte) (*http.Request, error) {
	url := c.baseURL + "/" + strings.TrimLeft(path, "/")

	var bodyReader io.Reader
	if body != nil {
		bodyReader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("banxa: creating request: %w", err)
	}

	for key, vals := range headers {
		for _, val := range vals {
			req.Header.Add(key, val)
		}
	}
	return req, nil
}

// ParseResponse reads the response body and checks for API errors.
// On success (2xx), it returns the raw body bytes.
// On error, it returns an *APIError with the status code, method, path,
// and message extracted from the response body.
func ParseResponse(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("banxa: reading response body: %w", err)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return body, nil
	}

	msg := strings.TrimSpace(string(body))
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}

	return nil, &APIError{
		StatusCode: resp.StatusCode,
		Method:     resp.Request.Method,
		Path:       resp.Request.URL.Path,
		Message:    msg,
	}
}
