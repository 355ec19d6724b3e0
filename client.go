package passwallet

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/passwallet/client-go/internal/api"
)

// Client is the PassWallet client. It is immutable after construction
// and safe for concurrent use.
type Client struct {
	apiClient *api.Client
}

// New creates a new PassWallet client with the given app key.
func New(appKey string, opts ...Option) (*Client, error) {
	if appKey == "" {
		return nil, ErrMissingAppKey
	}

	cfg := &clientConfig{
		baseURL: api.DefaultBaseURL,
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	logger := cfg.buildLogger()

	apiClient, err := api.NewClient(api.Config{
		BaseURL:    cfg.baseURL,
		AppKey:     appKey,
		HTTPClient: cfg.httpClient,
		Timeout:    cfg.timeout,
		CACertFile: cfg.caCertFile,
		Logger:     logger,
	})
	if err != nil {
		return nil, wrapError(err)
	}

	return &Client{apiClient: apiClient}, nil
}

// BaseURL returns the configured API endpoint.
func (c *Client) BaseURL() string {
	return c.apiClient.BaseURL()
}

// CreatePassFromTemplate creates a pass from the template with the
// given numeric id. When images are supplied the request is sent as a
// multipart body; invalid image entries are skipped with a warning.
func (c *Client) CreatePassFromTemplate(ctx context.Context, templateID int64, values Values, images Images) (*Pass, error) {
	pass, err := c.apiClient.CreatePass(ctx, templateID, values, images)
	if err != nil {
		return nil, wrapError(err)
	}
	return newPass(pass), nil
}

// CreatePassFromTemplateWithName creates a pass from the template with
// the given name.
func (c *Client) CreatePassFromTemplateWithName(ctx context.Context, templateName string, values Values, images Images) (*Pass, error) {
	pass, err := c.apiClient.CreatePassByName(ctx, templateName, values, images)
	if err != nil {
		return nil, wrapError(err)
	}
	return newPass(pass), nil
}

// DownloadPass fetches the signed .pkpass archive for a pass.
func (c *Client) DownloadPass(ctx context.Context, pass *Pass) ([]byte, error) {
	if pass == nil {
		return nil, ErrNilPass
	}
	data, err := c.apiClient.DownloadPass(ctx, pass.PassTypeIdentifier, pass.SerialNumber)
	if err != nil {
		return nil, wrapError(err)
	}
	return data, nil
}

// PassURL returns the public URL of a pass. When the pass already
// carries a URL it is returned directly without a network call.
func (c *Client) PassURL(ctx context.Context, pass *Pass) (string, error) {
	if pass == nil {
		return "", ErrNilPass
	}
	if pass.URL != "" {
		return pass.URL, nil
	}
	url, err := c.apiClient.GetPassURL(ctx, pass.PassTypeIdentifier, pass.SerialNumber)
	if err != nil {
		return "", wrapError(err)
	}
	return url, nil
}

// EmailPass asks the server to mail the pass to the given address.
func (c *Client) EmailPass(ctx context.Context, pass *Pass, email string) error {
	if pass == nil {
		return ErrNilPass
	}
	return wrapError(c.apiClient.EmailPass(ctx, pass.PassTypeIdentifier, pass.SerialNumber, email))
}

// newPass converts the wire representation to the public value object.
func newPass(p *api.Pass) *Pass {
	return &Pass{
		PassTypeIdentifier: p.PassTypeIdentifier,
		SerialNumber:       p.SerialNumber,
		URL:                p.URL,
	}
}
