// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package client

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/theDahunsiDavid/Polly-API/models"
	"github.com/theDahunsiDavid/Polly-API/transport"
)

var getPollDefaults = map[int]string{
	http.StatusNotFound: "Poll not found",
}

// ListPolls fetches one page of polls. skip is the offset into the full
// set and limit the page size. Limits over 100 are allowed but flagged,
// since the service may clamp or slow down on oversized pages.
func (c *Client) ListPolls(skip, limit int) (Result[[]models.Poll], error) {
	if skip < 0 {
		return Result[[]models.Poll]{}, invalidArg("skip must be a non-negative integer")
	}
	if limit <= 0 {
		return Result[[]models.Poll]{}, invalidArg("limit must be a positive integer")
	}

	var warnings []string
	if limit > 100 {
		warnings = append(warnings, fmt.Sprintf("limit %d may impact performance", limit))
		c.log.Warn("large poll page requested", "limit", limit)
	}

	resp, err := c.tr.Do(transport.Request{
		Operation: "list_polls",
		Method:    http.MethodGet,
		URL:       c.pollsURL(),
		Query: url.Values{
			"skip":  {strconv.Itoa(skip)},
			"limit": {strconv.Itoa(limit)},
		},
	})
	if err != nil {
		return Result[[]models.Poll]{}, err
	}

	res, err := decode[[]models.Poll]("list polls", resp, nil)
	if err != nil {
		return Result[[]models.Poll]{}, err
	}
	if res.OK() {
		res.Warnings = append(warnings, validatePollList(resp.Body)...)
		c.logWarnings("list_polls", res.Warnings)
		c.log.Info("fetched polls", "count", len(res.Data), "skip", skip, "limit", limit)
	}
	return res, nil
}

// Polls is the fail-fast variant of ListPolls.
func (c *Client) Polls(skip, limit int) ([]models.Poll, error) {
	res, err := c.ListPolls(skip, limit)
	return failFast(opPollFetch, res, err)
}

// GetPoll fetches a single poll by id.
func (c *Client) GetPoll(pollID int) (Result[models.Poll], error) {
	if pollID <= 0 {
		return Result[models.Poll]{}, invalidArg("poll id must be a positive integer")
	}

	resp, err := c.tr.Do(transport.Request{
		Operation: "get_poll",
		Method:    http.MethodGet,
		URL:       c.pollURL(pollID),
	})
	if err != nil {
		return Result[models.Poll]{}, err
	}

	res, err := decode[models.Poll]("get poll", resp, getPollDefaults)
	if err != nil {
		return Result[models.Poll]{}, err
	}
	if res.OK() {
		res.Warnings = validatePoll(resp.Body)
		c.logWarnings("get_poll", res.Warnings)
	}
	return res, nil
}

// Poll is the fail-fast variant of GetPoll.
func (c *Client) Poll(pollID int) (models.Poll, error) {
	res, err := c.GetPoll(pollID)
	return failFast(opPollRetrieval, res, err)
}

// FetchAllPolls drains every page of the poll listing sequentially,
// advancing skip by batchSize each round. Paging stops on an empty page or
// on the first page shorter than batchSize; the endpoint reports no total
// count, so a full final page costs one extra empty fetch.
//
// The aggregation is atomic. Any page failing fails the whole call, naming
// the offset that broke, and no partial data is returned.
func (c *Client) FetchAllPolls(batchSize int) ([]models.Poll, error) {
	if batchSize < 1 || batchSize > 100 {
		return nil, invalidArg("batch size must be between 1 and 100")
	}

	var all []models.Poll
	skip := 0
	for {
		res, err := c.ListPolls(skip, batchSize)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch polls at skip=%d: %w", skip, err)
		}
		if res.Failure != nil {
			return nil, fmt.Errorf("failed to fetch polls at skip=%d: %s", skip, res.Failure.Message)
		}

		page := res.Data
		if len(page) == 0 {
			break
		}
		all = append(all, page...)
		if len(page) < batchSize {
			break
		}
		skip += batchSize
		c.log.Debug("page complete", "fetched", len(all), "next_skip", skip)
	}

	c.log.Info("fetched all polls", "total", len(all))
	return all, nil
}

// SearchPolls fetches one page of polls and keeps those whose question
// contains keyword, compared case-insensitively. Matching happens client
// side; the service has no search endpoint.
func (c *Client) SearchPolls(keyword string, skip, limit int) ([]models.Poll, error) {
	if keyword == "" {
		return nil, invalidArg("question keyword must be a non-empty string")
	}

	polls, err := c.Polls(skip, limit)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(keyword)
	var matches []models.Poll
	for _, poll := range polls {
		if strings.Contains(strings.ToLower(poll.Question), needle) {
			matches = append(matches, poll)
		}
	}
	c.log.Info("search complete", "keyword", keyword, "matches", len(matches), "scanned", len(polls))
	return matches, nil
}
