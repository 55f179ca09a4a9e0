// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides polly, a command line client for the Polly polling
service API.

Polly talks to a REST service that manages polls, options, and votes. The
CLI is a thin demonstration layer; all real behavior lives in the client
package, which applications embed directly.

# Usage

	polly [flags] <command> [arguments]

	polly list                      # first page of polls
	polly all                       # every poll, fetched page by page
	polly search "favorite"         # filter polls by question
	polly results 3                 # tallied results for poll 3
	polly winner 3                  # winning option for poll 3
	polly stats 3                   # totals and percentage shares
	polly watch 3 10                # reprint stats every 10s until Ctrl-C
	polly register alice s3cret     # create an account
	polly vote 3 7                  # cast a vote (needs -token)
	polly create "Tea or coffee?" tea coffee
	polly delete 3

# Configuration

Flags fall back to environment variables, optionally loaded from a .env
file:

  - POLLY_BASE_URL (-u): API base URL (default: http://localhost:8000)
  - POLLY_ACCESS_TOKEN (-token): Bearer token for authenticated commands
  - POLLY_TIMEOUT (-timeout): Request timeout in seconds (default: 30)
  - POLLY_BATCH_SIZE (-batch): Page size for the all command (default: 50)
  - POLLY_METRICS_ADDR (-metrics): Serve Prometheus metrics on this address

The client never acquires tokens itself; log in out of band and pass the
token in.

# Architecture

The module is organized as focused packages with dependency injection:

  - client: typed operations, dual detailed/fail-fast API, pagination,
    response validation, result analysis
  - transport: HTTP execution, timeout and error classification, logging,
    Prometheus metrics
  - auth: bearer header assembly and log redaction
  - models: wire types matching the service's JSON schema
  - cliparse: flag/env configuration parsing
  - testutil: fake-API helpers for tests

See package documentation for each component.
*/
package main
