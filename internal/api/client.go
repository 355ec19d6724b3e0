package api

import (
	"bytes"
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Version is the SDK version reported in the User-Agent header.
const Version = "1.0.0"

const (
	// DefaultBaseURL is the production API endpoint.
	DefaultBaseURL = "https://api.passwallet.io/v1"

	userAgent    = "passwallet-go/" + Version
	acceptHeader = "application/json, */*; q=0.01"
)

// Config configures the API client.
type Config struct {
	// BaseURL is the API endpoint. Defaults to DefaultBaseURL.
	BaseURL string
	// AppKey is the application key used as the Basic-auth username.
	AppKey string
	// HTTPClient overrides the default transport. When set, CACertFile
	// and Timeout are ignored.
	HTTPClient *http.Client
	// Timeout bounds each request. Zero means no timeout.
	Timeout time.Duration
	// CACertFile points to a PEM bundle of trust anchors. When empty or
	// unreadable the system roots are used.
	CACertFile string
	// Logger receives warn/debug output. Defaults to a no-op logger.
	Logger zerolog.Logger
}

// Client is the HTTP API client. It is safe for concurrent use.
type Client struct {
	baseURL    string
	appKey     string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a new API client.
func NewClient(cfg Config) (*Client, error) {
	if cfg.AppKey == "" {
		return nil, ErrMissingAppKey
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   cfg.Timeout,
			Transport: newTransport(cfg.CACertFile, cfg.Logger),
		}
	}
	// The API never redirects on its own behalf; a Location response is
	// surfaced to the caller instead of being followed.
	httpClient.CheckRedirect = func(req *http.Request, via []*http.Request) error {
		return http.ErrUseLastResponse
	}

	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		appKey:     cfg.AppKey,
		httpClient: httpClient,
		logger:     cfg.Logger,
	}, nil
}

// newTransport builds a transport with certificate and hostname
// verification enabled. caCertFile, when readable, replaces the system
// trust anchors.
func newTransport(caCertFile string, logger zerolog.Logger) *http.Transport {
	transport, ok := http.DefaultTransport.(*http.Transport)
	if ok {
		transport = transport.Clone()
	} else {
		transport = &http.Transport{}
	}

	if caCertFile == "" {
		return transport
	}

	pem, err := os.ReadFile(caCertFile)
	if err != nil {
		logger.Warn().Str("file", caCertFile).Err(err).
			Msg("cannot read CA bundle, using system roots")
		return transport
	}

	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(pem) {
		logger.Warn().Str("file", caCertFile).
			Msg("no certificates in CA bundle, using system roots")
		return transport
	}

	transport.TLSClientConfig = &tls.Config{RootCAs: pool}
	return transport
}

// BaseURL returns the configured API endpoint.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do executes a JSON request and decodes a JSON response into result.
// A nil body on POST/PUT is sent as an empty JSON object. A nil result
// discards the response body.
func (c *Client) Do(ctx context.Context, method, path string, body any, result any) error {
	var bodyReader io.Reader
	contentType := ""
	if method == http.MethodPost || method == http.MethodPut {
		data := []byte("{}")
		if body != nil {
			var err error
			data, err = json.Marshal(body)
			if err != nil {
				return fmt.Errorf("marshal request body: %w", err)
			}
		}
		bodyReader = bytes.NewReader(data)
		contentType = "application/json"
	}

	resp, err := c.execute(ctx, method, path, bodyReader, contentType)
	if err != nil {
		return err
	}

	if result != nil {
		if err := json.Unmarshal(resp.body, result); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// DoRaw executes a request and returns the raw response body, for
// endpoints that serve binary content such as the signed pass archive.
func (c *Client) DoRaw(ctx context.Context, method, path string) ([]byte, error) {
	resp, err := c.execute(ctx, method, path, nil, "")
	if err != nil {
		return nil, err
	}
	return resp.body, nil
}

// DoMultipart executes a POST with a pre-encoded multipart body and
// decodes a JSON response into result.
func (c *Client) DoMultipart(ctx context.Context, path string, form *Form, result any) error {
	resp, err := c.execute(ctx, http.MethodPost, path, form.Reader(), form.ContentType())
	if err != nil {
		return err
	}

	if result != nil {
		if err := json.Unmarshal(resp.body, result); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// response captures what classification needs from an HTTP exchange.
type response struct {
	statusCode  int
	contentType string
	body        []byte
}

// execute is the single request path: it sets authentication and
// headers, runs the call and classifies the outcome.
func (c *Client) execute(ctx context.Context, method, path string, body io.Reader, contentType string) (*response, error) {
	url := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", acceptHeader)
	req.Header.Set("User-Agent", userAgent)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.SetBasicAuth(c.appKey, "")

	c.logger.Debug().Str("method", method).Str("url", url).Msg("api request")

	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{Err: err, URL: url}
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, &NetworkError{Err: err, URL: url}
	}

	resp := &response{
		statusCode:  httpResp.StatusCode,
		contentType: httpResp.Header.Get("Content-Type"),
		body:        respBody,
	}

	c.logger.Debug().Str("method", method).Str("url", url).
		Int("status", resp.statusCode).Str("content_type", resp.contentType).
		Int("bytes", len(resp.body)).Msg("api response")

	if err := classify(resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// classify maps a completed exchange to the error taxonomy. 2xx
// responses pass through unchanged.
func classify(resp *response) error {
	switch {
	case resp.statusCode == http.StatusUnprocessableEntity:
		return parseValidationError(resp.body)
	case resp.statusCode == http.StatusUnauthorized:
		// The body is ignored: the server does not always send an
		// envelope on auth failures.
		return &APIError{
			StatusCode: http.StatusUnauthorized,
			Message:    unauthorizedMessage,
		}
	case resp.statusCode < 200 || resp.statusCode >= 300:
		return &APIError{
			StatusCode: resp.statusCode,
			Message:    envelopeMessage(resp.body),
		}
	}
	return nil
}

// parseValidationError decodes the 422 envelope. A body that does not
// parse still yields a ValidationError so the status is not lost.
func parseValidationError(body []byte) error {
	var envelope errorEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return &ValidationError{Message: strings.TrimSpace(string(body))}
	}
	return &ValidationError{
		Message: envelope.Message,
		Errors:  envelope.Errors,
	}
}

// envelopeMessage extracts the message field from a JSON error
// envelope, falling back to the raw body text.
func envelopeMessage(body []byte) string {
	var envelope errorEnvelope
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Message != "" {
		return envelope.Message
	}
	return strings.TrimSpace(string(body))
}
