// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package client

import (
	"net/http"

	"github.com/theDahunsiDavid/Polly-API/models"
	"github.com/theDahunsiDavid/Polly-API/transport"
)

var resultsDefaults = map[int]string{
	http.StatusNotFound: "Poll not found",
}

// GetResults fetches the tallied results for a poll.
func (c *Client) GetResults(pollID int) (Result[models.PollResults], error) {
	if pollID <= 0 {
		return Result[models.PollResults]{}, invalidArg("poll id must be a positive integer")
	}

	resp, err := c.tr.Do(transport.Request{
		Operation: "get_results",
		Method:    http.MethodGet,
		URL:       c.resultsURL(pollID),
	})
	if err != nil {
		return Result[models.PollResults]{}, err
	}

	res, err := decode[models.PollResults]("get results", resp, resultsDefaults)
	if err != nil {
		return Result[models.PollResults]{}, err
	}
	if res.OK() {
		warnings, totalVotes := validateResults(resp.Body, pollID)
		res.Warnings = warnings
		c.logWarnings("get_results", warnings)
		c.log.Info("fetched results",
			"poll_id", pollID,
			"options", len(res.Data.Results),
			"total_votes", totalVotes,
		)
	}
	return res, nil
}

// Results is the fail-fast variant of GetResults.
func (c *Client) Results(pollID int) (models.PollResults, error) {
	res, err := c.GetResults(pollID)
	return failFast(opResults, res, err)
}

// Winner fetches a poll's results and returns its winning option, or nil
// when no votes have been cast yet.
func (c *Client) Winner(pollID int) (*models.OptionResult, error) {
	results, err := c.Results(pollID)
	if err != nil {
		return nil, err
	}
	return ComputeWinner(results.Results), nil
}

// Stats fetches a poll's results and derives the full statistics view.
func (c *Client) Stats(pollID int) (models.Statistics, error) {
	results, err := c.Results(pollID)
	if err != nil {
		return models.Statistics{}, err
	}
	return ComputeStatistics(pollID, results), nil
}
