// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package client is a typed Go client for the Polly polling service API.

# Creating a Client

A Client needs only the service's base URL:

	api := client.New("http://localhost:8000")

Timeouts, logging, and metrics are configured on the transport:

	api := client.New(baseURL, client.WithTransport(
		transport.NewHTTPClient(transport.WithTimeout(10*time.Second)),
	))

# Detailed and Fail-Fast Variants

Every operation comes in two shapes. The detailed variant returns a
Result[T]: success data, or a Failure describing what the service rejected,
plus any validation warnings. The fail-fast variant collapses that into a
plain (T, error) where a business failure becomes an *OperationError:

	res, err := api.ListPolls(0, 10)     // Result[[]models.Poll]
	polls, err := api.Polls(0, 10)       // []models.Poll, *OperationError on failure

Fail-fast error text is always "<operation> failed: <message>", with the
service's own detail message preserved when it sent one.

# Errors

Three sentinel errors classify what went wrong before or during decoding:

  - ErrInvalidArgument: input rejected locally, no request was sent
  - ErrMalformedResponse: a 200 whose body did not match the expected shape
  - ErrNotImplemented: the service has no endpoint for the operation

Network-level failures surface as *transport.Error with a Kind of Timeout,
ConnectionFailed, or Other. HTTP error statuses are never Go errors on the
detailed path; they are Failure values.

# Operations

	ListPolls / Polls          GET  /polls?skip=&limit=
	GetPoll / Poll             GET  /polls/{id}
	GetResults / Results       GET  /polls/{id}/results
	RegisterUser / Register    POST /register
	CastVote / Vote            POST /polls/{id}/vote     (bearer token)
	CreatePoll / NewPoll       POST /polls               (bearer token)
	DeletePoll / RemovePoll    DELETE /polls/{id}        (bearer token)

# Pagination

FetchAllPolls drains the listing page by page:

	polls, err := api.FetchAllPolls(50)

Paging stops on an empty or short page and is all-or-nothing: a failed page
aborts with an error naming the offset, never partial data.

SearchPolls filters one fetched page by a case-insensitive substring match
on the question; the service itself has no search endpoint.

# Analysis

ComputeWinner and ComputeStatistics derive winners and percentage shares
from fetched results without further requests; Winner and Stats bundle the
fetch and the computation.
*/
package client
