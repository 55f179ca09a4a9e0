// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration
for the polly CLI.

# Configuration

ParseFlags returns a Config plus the remaining positional arguments (the
subcommand and its operands):

	cfg, args, err := cliparse.ParseFlags(os.Args[1:])

A .env file in the working directory is loaded first via godotenv, so local
setups can keep the token out of shell history.

# Config Fields

  - BaseURL: API base URL (default: http://localhost:8000)
  - AccessToken: Bearer token for authenticated commands (optional)
  - Timeout: Per-request timeout (default: 30s)
  - BatchSize: Page size for fetch-all pagination (default: 50, range 1-100)
  - MetricsAddr: Optional address to serve Prometheus metrics on
  - Verbose: Enable debug logging

# CLI Flags

	-u        API base URL
	-token    Bearer access token (prefer env)
	-timeout  Request timeout in seconds
	-batch    Page size for fetch-all pagination
	-metrics  Address to serve Prometheus metrics on
	-v        Enable debug logging

# Environment Variables

Flags fall back to environment variables:

	POLLY_BASE_URL     → -u
	POLLY_ACCESS_TOKEN → -token
	POLLY_TIMEOUT      → -timeout
	POLLY_BATCH_SIZE   → -batch
	POLLY_METRICS_ADDR → -metrics

CLI flags take precedence over environment variables, which take precedence
over .env entries.

# Validation

ParseFlags returns an error when the timeout is not a positive number of
seconds or the batch size falls outside 1-100.
*/
package cliparse
