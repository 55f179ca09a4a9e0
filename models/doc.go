// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the wire types exchanged with the polling service.

All JSON field names follow the service's schema (snake_case). Timestamps
stay strings on purpose: the service emits ISO-8601 in several shapes and a
bad timestamp is reported as a validation warning, never a decode failure.

# Request Types

Types encoded into outgoing JSON bodies:

  - RegisterRequest: username, password
  - VoteRequest: option_id
  - CreatePollRequest: question, options ([]string)

# Domain Types

Types decoded from successful responses:

  - Poll: id, question, created_at, owner_id, options
  - Option: id, text, poll_id
  - Vote: id, user_id, option_id, created_at
  - User: id, username
  - APIError: the {"detail": ...} envelope on non-2xx responses

# Results Types

The tallied view of a poll and values derived from it:

  - PollResults: poll_id, question, results
  - OptionResult: option_id, text, vote_count
  - OptionPercentage: OptionResult plus a percentage share
  - Statistics: totals, per-option percentages sorted by votes, and the
    winner (nil when no votes have been cast)
*/
package models
