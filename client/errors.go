// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package client

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument marks input rejected before any network activity.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrMalformedResponse marks a 200 whose body could not be decoded into
	// the operation's expected shape.
	ErrMalformedResponse = errors.New("malformed response")

	// ErrNotImplemented marks operations the service has no endpoint for.
	ErrNotImplemented = errors.New("not implemented")
)

// Display names used by the fail-fast variants when composing error text.
const (
	opPollFetch     = "Poll fetch"
	opPollRetrieval = "Poll retrieval"
	opResults       = "Poll results retrieval"
	opRegistration  = "Registration"
	opVoteCasting   = "Vote casting"
	opPollCreation  = "Poll creation"
	opPollDeletion  = "Poll deletion"
)

// OperationError is how the fail-fast variants report a business failure
// from the service. Message carries the service's own wording whenever the
// error body supplied one.
type OperationError struct {
	Op         string
	Message    string
	StatusCode int
}

func (e *OperationError) Error() string {
	return e.Op + " failed: " + e.Message
}

func invalidArg(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, msg)
}
