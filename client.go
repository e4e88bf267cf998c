// Package banxa is a typed Go client for the Banxa fiat/crypto on-ramp
// REST API. Every outbound request is signed with the merchant's shared
// secret using HMAC-SHA256; inbound webhook handling lives in the
// webhook subpackage.
package banxa

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/longmengua/banxa-payment-intergration/internal/signing"
	"github.com/longmengua/banxa-payment-intergration/internal/transport"
)

// Credentials holds the merchant API key and shared secret issued by
// Banxa. Both are required for every call; a zero value fails at the
// provider with an auth rejection rather than locally.
type Credentials struct {
	APIKey string
	Secret string
}

// CredentialsFromEnv reads BANXA_API_KEY and BANXA_API_SECRET. Unset
// variables yield empty strings, matching the behavior of deployments
// configured entirely through the environment.
func CredentialsFromEnv() Credentials {
	return Credentials{
		APIKey: os.Getenv("BANXA_API_KEY"),
		Secret: os.Getenv("BANXA_API_SECRET"),
	}
}

// DomainFromEnv reads BANXA_DOMAIN, the per-merchant base URL
// (e.g. "https://yourcompany.banxa.com").
func DomainFromEnv() string {
	return os.Getenv("BANXA_DOMAIN")
}

// BanxaClient is a client for the Banxa REST API. It is stateless apart
// from immutable configuration and safe for concurrent use: each call
// mints its own nonce and signature.
type BanxaClient struct {
	http  *transport.HTTPClient
	creds signing.Credentials
	log   *slog.Logger
}

type clientConfig struct {
	domain  string
	creds   Credentials
	logger  *slog.Logger
	topts   []transport.Option
}

// ClientOption configures a BanxaClient.
type ClientOption func(*clientConfig)

// WithDomain sets the per-merchant Banxa base URL.
func WithDomain(domain string) ClientOption {
	return func(c *clientConfig) {
		c.domain = domain
	}
}

// WithCredentials sets the API key and shared secret used for signing.
func WithCredentials(creds Credentials) ClientOption {
	return func(c *clientConfig) {
		c.creds = creds
	}
}

// WithTimeout sets the HTTP timeout for API calls. Default is 10s.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *clientConfig) {
		c.topts = append(c.topts, transport.WithTimeout(d))
	}
}

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *clientConfig) {
		c.topts = append(c.topts, transport.WithHTTPClient(hc))
	}
}

// WithLogger sets the structured logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) ClientOption {
	return func(c *clientConfig) {
		c.logger = l
	}
}

// NewBanxaClient creates a client from explicit configuration.
//
//	client := banxa.NewBanxaClient(
//		banxa.WithDomain("https://yourcompany.banxa.com"),
//		banxa.WithCredentials(banxa.CredentialsFromEnv()),
//	)
func NewBanxaClient(opts ...ClientOption) *BanxaClient {
	cfg := clientConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &BanxaClient{
		http:  transport.NewHTTPClient(cfg.domain, cfg.topts...),
		creds: signing.Credentials{APIKey: cfg.creds.APIKey, Secret: cfg.creds.Secret},
		log:   cfg.logger,
	}
}

// getJSON signs and executes a GET request and returns the raw response
// body. The path must already include any encoded query string, since
// the signature covers the exact path sent on the wire.
func (c *BanxaClient) getJSON(ctx context.Context, path string) ([]byte, error) {
	nonce := signing.Nonce()
	headers := signing.BuildHeaders(c.creds, http.MethodGet, path, nonce, "")

	resp, err := c.http.Get(ctx, path, headers)
	if err != nil {
		c.log.ErrorContext(ctx, "banxa request failed", "method", "GET", "path", path, "error", err)
		return nil, err
	}
	return c.parseResponse(ctx, resp)
}

// postJSON marshals the payload once, signs those exact bytes, and
// executes a POST request. Signing and sending the same byte sequence
// is what keeps the provider-side signature check happy.
func (c *BanxaClient) postJSON(ctx context.Context, path string, payload any) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, &ValidationError{Field: "body", Message: err.Error()}
	}

	nonce := signing.Nonce()
	headers := signing.BuildHeaders(c.creds, http.MethodPost, path, nonce, string(body))

	resp, err := c.http.Post(ctx, path, headers, body)
	if err != nil {
		c.log.ErrorContext(ctx, "banxa request failed", "method", "POST", "path", path, "error", err)
		return nil, err
	}
	return c.parseResponse(ctx, resp)
}

// parseResponse surfaces non-2xx responses as *APIError and logs them.
func (c *BanxaClient) parseResponse(ctx context.Context, resp *http.Response) ([]byte, error) {
	raw, err := transport.ParseResponse(resp)
	if err != nil {
		var terr *transport.APIError
		if errors.As(err, &terr) {
			apiErr := &APIError{
				StatusCode: terr.StatusCode,
				Method:     terr.Method,
				Path:       terr.Path,
				Message:    terr.Message,
			}
			c.log.ErrorContext(ctx, "banxa api error",
				"method", apiErr.Method, "path", apiErr.Path,
				"status", apiErr.StatusCode, "message", apiErr.Message)
			return nil, apiErr
		}
		c.log.ErrorContext(ctx, "banxa response unreadable", "error", err)
		return nil, err
	}
	return raw, nil
}
