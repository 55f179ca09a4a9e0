// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/theDahunsiDavid/Polly-API/transport"
)

// Result is the detailed outcome of one API call against a live server:
// either decoded success data or a business Failure, never both. Warnings
// carry non-fatal validation findings and only ever accompany success.
type Result[T any] struct {
	Data       T
	StatusCode int
	Failure    *Failure
	Warnings   []string
}

// OK reports whether the call succeeded.
func (r Result[T]) OK() bool { return r.Failure == nil }

// Failure is a well-formed negative outcome reported by the service, such
// as a 404 for a missing poll. It is data, not an error: the exchange
// itself worked.
type Failure struct {
	Message    string
	StatusCode int
}

// maxErrorTextLen caps how much of an unparseable error body is quoted back.
const maxErrorTextLen = 200

// decode interprets a completed exchange. A 200 must carry a body that
// unmarshals into T or the whole call is malformed; any other status
// becomes a Failure with a message resolved by failureMessage.
func decode[T any](op string, resp *transport.Response, defaults map[int]string) (Result[T], error) {
	if resp.StatusCode == http.StatusOK {
		body := bytes.TrimSpace(resp.Body)
		if len(body) == 0 || bytes.Equal(body, []byte("null")) {
			return Result[T]{}, fmt.Errorf("%s: %w: empty body", op, ErrMalformedResponse)
		}
		var data T
		if err := json.Unmarshal(body, &data); err != nil {
			return Result[T]{}, fmt.Errorf("%s: %w: %v", op, ErrMalformedResponse, err)
		}
		return Result[T]{Data: data, StatusCode: resp.StatusCode}, nil
	}

	return Result[T]{
		StatusCode: resp.StatusCode,
		Failure: &Failure{
			Message:    failureMessage(resp, defaults),
			StatusCode: resp.StatusCode,
		},
	}, nil
}

// failureMessage resolves the human-readable message for a non-200 body.
// Precedence: a string "detail" field wins, then the operation's per-status
// default, then a generic status line. A body that is not JSON at all is
// quoted back, truncated to maxErrorTextLen.
func failureMessage(resp *transport.Response, defaults map[int]string) string {
	var decoded interface{}
	if err := json.Unmarshal(resp.Body, &decoded); err == nil {
		if obj, ok := decoded.(map[string]interface{}); ok {
			if detail, ok := obj["detail"].(string); ok {
				return detail
			}
		}
		return statusMessage(resp.StatusCode, defaults)
	}

	if text := strings.TrimSpace(string(resp.Body)); text != "" {
		if len(text) > maxErrorTextLen {
			text = text[:maxErrorTextLen]
		}
		return text
	}
	return statusMessage(resp.StatusCode, defaults)
}

func statusMessage(code int, defaults map[int]string) string {
	if msg, ok := defaults[code]; ok {
		return msg
	}
	return fmt.Sprintf("unexpected HTTP status %d", code)
}

// failFast collapses a detailed result into the fail-fast shape shared by
// every convenience variant: data on success, *OperationError on a business
// failure, and transport or decode errors passed through untouched.
func failFast[T any](op string, res Result[T], err error) (T, error) {
	var zero T
	if err != nil {
		return zero, err
	}
	if res.Failure != nil {
		msg := res.Failure.Message
		if msg == "" {
			msg = "Unknown error"
		}
		return zero, &OperationError{Op: op, Message: msg, StatusCode: res.StatusCode}
	}
	return res.Data, nil
}
