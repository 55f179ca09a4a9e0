// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package client

import (
	"log/slog"
	"strings"

	"github.com/theDahunsiDavid/Polly-API/transport"
)

// Client calls the polling service REST API. It holds no mutable state, so
// a single Client is safe for use from multiple goroutines.
type Client struct {
	baseURL string
	tr      transport.Transport
	log     *slog.Logger
}

type Option func(*Client)

// WithTransport substitutes the Transport used for every call. Configure
// timeouts and metrics on the transport itself.
func WithTransport(tr transport.Transport) Option {
	return func(c *Client) {
		c.tr = tr
	}
}

// WithLogger overrides the default slog logger.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// New creates a Client for the service at baseURL. Trailing slashes are
// dropped so endpoint paths can be appended verbatim.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.tr == nil {
		c.tr = transport.NewHTTPClient()
	}
	return c
}

// logWarnings reports non-fatal validation findings on a decoded response.
func (c *Client) logWarnings(operation string, warnings []string) {
	for _, w := range warnings {
		c.log.Warn("response validation issue", "operation", operation, "warning", w)
	}
}
