package passwallet

import (
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// clientConfig holds configuration for the client.
type clientConfig struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	caCertFile string
	logger     zerolog.Logger
	debug      bool
}

// Option configures the client.
type Option func(*clientConfig)

// WithBaseURL overrides the API endpoint, for testing or staging
// environments.
func WithBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client. Timeout and CA bundle
// options are ignored when one is supplied.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithTimeout bounds each request. By default requests block until the
// server responds or the context is cancelled.
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithCACertFile sets a PEM bundle of trust anchors for TLS
// verification. When unset or unreadable the system roots are used.
func WithCACertFile(path string) Option {
	return func(c *clientConfig) {
		c.caCertFile = path
	}
}

// WithLogger sets the logger for warnings and debug output. The
// default logger discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *clientConfig) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging at debug level. If no
// logger was supplied, one writing to stderr is installed.
func WithDebug() Option {
	return func(c *clientConfig) {
		c.debug = true
	}
}

// buildLogger resolves the effective logger from the config.
func (c *clientConfig) buildLogger() zerolog.Logger {
	logger := c.logger
	if c.debug {
		if logger.GetLevel() == zerolog.Disabled {
			logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
				With().Timestamp().Logger()
		}
		return logger.Level(zerolog.DebugLevel)
	}
	return logger
}
