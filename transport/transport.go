// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/theDahunsiDavid/Polly-API/auth"
)

// DefaultTimeout bounds every request end to end. A request that exceeds it
// surfaces as a Timeout error.
const DefaultTimeout = 30 * time.Second

// Kind classifies a network-level failure.
type Kind string

const (
	Timeout          Kind = "timeout"
	ConnectionFailed Kind = "connection_failed"
	Other            Kind = "other"
)

// Error is a network-level failure: the exchange never completed, so no
// status code or body is available. Completed exchanges are always returned
// as a Response, whatever their status code.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Request describes one API call for a Transport to execute.
type Request struct {
	Operation string // short name used in logs and metric labels
	Method    string
	URL       string
	Query     url.Values
	Body      interface{} // JSON-encoded when non-nil
	Header    http.Header
}

// Response is the raw outcome of a completed exchange.
type Response struct {
	StatusCode int
	Body       []byte
	Header     http.Header
}

// Transport executes API requests. Implementations return *Error for
// network-level failures and a Response for every completed exchange,
// regardless of status code.
type Transport interface {
	Do(req Request) (*Response, error)
}

// HTTPClient is the production Transport. It sets the standard headers,
// tags each request with an X-Request-ID, logs every exchange, and feeds
// Metrics when configured.
type HTTPClient struct {
	client  *http.Client
	log     *slog.Logger
	metrics *Metrics
	timeout time.Duration
}

type Option func(*HTTPClient)

// WithTimeout overrides DefaultTimeout.
func WithTimeout(d time.Duration) Option {
	return func(t *HTTPClient) {
		t.timeout = d
	}
}

// WithLogger overrides the default slog logger.
func WithLogger(log *slog.Logger) Option {
	return func(t *HTTPClient) {
		t.log = log
	}
}

// WithMetrics attaches Prometheus instrumentation.
func WithMetrics(m *Metrics) Option {
	return func(t *HTTPClient) {
		t.metrics = m
	}
}

// WithHTTPClient substitutes the underlying *http.Client entirely. The
// client's own Timeout wins over WithTimeout when set.
func WithHTTPClient(hc *http.Client) Option {
	return func(t *HTTPClient) {
		t.client = hc
	}
}

func NewHTTPClient(opts ...Option) *HTTPClient {
	t := &HTTPClient{
		log:     slog.Default(),
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.client == nil {
		t.client = &http.Client{Timeout: t.timeout}
	} else if t.client.Timeout > 0 {
		t.timeout = t.client.Timeout
	}
	return t
}

// Do executes one exchange against the service.
func (t *HTTPClient) Do(req Request) (*Response, error) {
	requestID := uuid.NewString()

	target := req.URL
	if len(req.Query) > 0 {
		target += "?" + req.Query.Encode()
	}

	var body io.Reader
	if req.Body != nil {
		encoded, err := json.Marshal(req.Body)
		if err != nil {
			return nil, &Error{Kind: Other, Message: "failed to encode request body", Err: err}
		}
		body = bytes.NewReader(encoded)
	}

	httpReq, err := http.NewRequest(req.Method, target, body)
	if err != nil {
		return nil, &Error{Kind: Other, Message: "failed to build request", Err: err}
	}
	for key, values := range req.Header {
		for _, value := range values {
			httpReq.Header.Add(key, value)
		}
	}
	httpReq.Header.Set("Accept", "application/json")
	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	httpReq.Header.Set("X-Request-ID", requestID)

	t.log.Debug("sending request",
		"request_id", requestID,
		"operation", req.Operation,
		"method", req.Method,
		"url", target,
		"headers", redactHeaders(httpReq.Header),
	)

	start := time.Now()
	httpResp, err := t.client.Do(httpReq)
	duration := time.Since(start)
	if err != nil {
		terr := t.classify(err, req.URL)
		if t.metrics != nil {
			t.metrics.observeFailure(req.Operation, terr.Kind)
		}
		t.log.Error("request failed",
			"request_id", requestID,
			"operation", req.Operation,
			"kind", string(terr.Kind),
			"error", err,
		)
		return nil, terr
	}
	defer httpResp.Body.Close()

	raw, err := io.ReadAll(httpResp.Body)
	if err != nil {
		terr := &Error{Kind: Other, Message: "failed to read response body", Err: err}
		if t.metrics != nil {
			t.metrics.observeFailure(req.Operation, terr.Kind)
		}
		return nil, terr
	}

	if t.metrics != nil {
		t.metrics.observeRequest(req.Operation, httpResp.StatusCode, duration)
	}
	t.log.Info("request completed",
		"request_id", requestID,
		"operation", req.Operation,
		"method", req.Method,
		"status", httpResp.StatusCode,
		"duration_ms", duration.Milliseconds(),
	)

	return &Response{
		StatusCode: httpResp.StatusCode,
		Body:       raw,
		Header:     httpResp.Header,
	}, nil
}

// classify maps an *http.Client error onto the transport error taxonomy.
// Timeouts are checked first: a dial that times out counts as a timeout,
// not a connection failure.
func (t *HTTPClient) classify(err error, rawURL string) *Error {
	var netErr net.Error
	if (errors.As(err, &netErr) && netErr.Timeout()) || errors.Is(err, context.DeadlineExceeded) {
		return &Error{
			Kind:    Timeout,
			Message: fmt.Sprintf("request timed out after %d seconds", int(t.timeout.Seconds())),
			Err:     err,
		}
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return &Error{
			Kind:    ConnectionFailed,
			Message: fmt.Sprintf("failed to connect to the API at %s", rawURL),
			Err:     err,
		}
	}
	return &Error{Kind: Other, Message: "request failed", Err: err}
}

// redactHeaders renders headers for debug logs with credentials masked.
func redactHeaders(h http.Header) map[string]string {
	out := make(map[string]string, len(h))
	for key := range h {
		value := h.Get(key)
		if http.CanonicalHeaderKey(key) == "Authorization" {
			value = auth.RedactAuthorization(value)
		}
		out[key] = value
	}
	return out
}
