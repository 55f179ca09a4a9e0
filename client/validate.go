// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package client

import (
	"encoding/json"
	"fmt"
	"time"
)

// Structural checks on successful response bodies. These never fail a call
// and never touch the decoded data: findings surface as warnings on the
// Result, so running a validator twice on the same body yields the same
// warnings.

var (
	pollKeys    = []string{"id", "question", "created_at", "owner_id", "options"}
	optionKeys  = []string{"id", "text", "poll_id"}
	resultsKeys = []string{"poll_id", "question", "results"}
	resultKeys  = []string{"option_id", "text", "vote_count"}
	voteKeys    = []string{"id", "user_id", "option_id", "created_at"}
	userKeys    = []string{"id", "username"}
)

func validatePollList(raw []byte) []string {
	var polls []map[string]interface{}
	if err := json.Unmarshal(raw, &polls); err != nil {
		return nil
	}
	var warnings []string
	for i, poll := range polls {
		warnings = append(warnings, checkPoll(poll, pollRef(poll, i))...)
	}
	return warnings
}

func validatePoll(raw []byte) []string {
	var poll map[string]interface{}
	if err := json.Unmarshal(raw, &poll); err != nil {
		return nil
	}
	return checkPoll(poll, pollRef(poll, 0))
}

func checkPoll(poll map[string]interface{}, ref string) []string {
	var warnings []string
	if missing := missingKeys(poll, pollKeys); len(missing) > 0 {
		warnings = append(warnings, fmt.Sprintf("poll %s missing fields %v", ref, missing))
	}
	if ts, ok := poll["created_at"].(string); ok && !validTimestamp(ts) {
		warnings = append(warnings, fmt.Sprintf("poll %s has invalid created_at %q", ref, ts))
	}
	if options, ok := poll["options"].([]interface{}); ok {
		for j, raw := range options {
			option, ok := raw.(map[string]interface{})
			if !ok {
				continue
			}
			if missing := missingKeys(option, optionKeys); len(missing) > 0 {
				warnings = append(warnings, fmt.Sprintf("poll %s option %d missing fields %v", ref, j, missing))
			}
		}
	}
	return warnings
}

// validateResults checks the tallied-results payload against the requested
// poll. The returned total is the sum of all reported vote counts, used for
// logging only.
func validateResults(raw []byte, wantPollID int) ([]string, int) {
	var payload map[string]interface{}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, 0
	}

	var warnings []string
	if missing := missingKeys(payload, resultsKeys); len(missing) > 0 {
		warnings = append(warnings, fmt.Sprintf("results payload missing fields %v", missing))
	}
	if id, ok := payload["poll_id"].(float64); ok && int(id) != wantPollID {
		warnings = append(warnings, fmt.Sprintf("response poll_id %d does not match requested %d", int(id), wantPollID))
	}

	totalVotes := 0
	if items, ok := payload["results"].([]interface{}); ok {
		for i, raw := range items {
			entry, ok := raw.(map[string]interface{})
			if !ok {
				continue
			}
			if missing := missingKeys(entry, resultKeys); len(missing) > 0 {
				warnings = append(warnings, fmt.Sprintf("result %d missing fields %v", i, missing))
			}
			if count, ok := entry["vote_count"].(float64); ok {
				if count < 0 {
					warnings = append(warnings, fmt.Sprintf("result %d has negative vote_count %d", i, int(count)))
				}
				totalVotes += int(count)
			}
		}
	}
	return warnings, totalVotes
}

func validateVote(raw []byte, wantOptionID int) []string {
	var payload map[string]interface{}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil
	}

	var warnings []string
	if missing := missingKeys(payload, voteKeys); len(missing) > 0 {
		warnings = append(warnings, fmt.Sprintf("vote payload missing fields %v", missing))
	}
	if id, ok := payload["option_id"].(float64); ok && int(id) != wantOptionID {
		warnings = append(warnings, fmt.Sprintf("response option_id %d does not match requested %d", int(id), wantOptionID))
	}
	return warnings
}

func validateUser(raw []byte) []string {
	var payload map[string]interface{}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil
	}

	var warnings []string
	if missing := missingKeys(payload, userKeys); len(missing) > 0 {
		warnings = append(warnings, fmt.Sprintf("registration payload missing fields %v", missing))
	}
	return warnings
}

// missingKeys walks wanted in order so warning text is deterministic.
func missingKeys(m map[string]interface{}, wanted []string) []string {
	var missing []string
	for _, key := range wanted {
		if _, ok := m[key]; !ok {
			missing = append(missing, key)
		}
	}
	return missing
}

// pollRef names a poll in warnings by its id, or by list position when the
// id itself is absent.
func pollRef(poll map[string]interface{}, index int) string {
	if id, ok := poll["id"]; ok {
		return fmt.Sprintf("%v", id)
	}
	return fmt.Sprintf("#%d", index)
}

// validTimestamp accepts the shapes the service has been seen emitting:
// RFC 3339 with a zone, a bare datetime, and a bare date. A trailing Z
// parses as UTC via the RFC 3339 layout.
func validTimestamp(s string) bool {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}
