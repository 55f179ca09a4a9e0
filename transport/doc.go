// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package transport executes HTTP exchanges against the polling service.

It draws a hard line between two outcomes:

  - A completed exchange is always a Response, whatever the status code.
    Interpreting 4xx and 5xx bodies belongs to the caller.
  - A failure to complete the exchange at all is an *Error, classified by
    Kind: Timeout, ConnectionFailed, or Other.

# Requests

Callers describe a call declaratively and HTTPClient does the rest:

	resp, err := tr.Do(transport.Request{
		Operation: "list_polls",
		Method:    http.MethodGet,
		URL:       "http://localhost:8000/polls",
		Query:     url.Values{"skip": {"0"}, "limit": {"10"}},
	})

Every request carries Accept: application/json, a generated X-Request-ID,
and, when a body is present, Content-Type: application/json. The default
end-to-end timeout is 30 seconds.

# Logging

Each exchange logs a completion line with the request ID, operation, status,
and duration. Debug logging includes outgoing headers with the Authorization
credential redacted.

# Metrics

WithMetrics attaches Prometheus collectors: a request counter labeled by
operation and status code, a latency histogram by operation, and a failure
counter by operation and kind. Serve them with promhttp wherever the process
exposes an HTTP listener.
*/
package transport
