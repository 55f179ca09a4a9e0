// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package client

import (
	"fmt"
	"net/http"

	"github.com/theDahunsiDavid/Polly-API/auth"
	"github.com/theDahunsiDavid/Polly-API/models"
	"github.com/theDahunsiDavid/Polly-API/transport"
)

const msgUnauthorized = "Unauthorized: Invalid or expired access token"

var voteDefaults = map[int]string{
	http.StatusUnauthorized: msgUnauthorized,
	http.StatusNotFound:     "Poll or option not found",
}

// CastVote records a vote for one option of a poll on behalf of the token's
// user. The token is validated for presence only; whether it is still good
// is the service's call, surfaced as a 401 Failure.
func (c *Client) CastVote(pollID, optionID int, accessToken string) (Result[models.Vote], error) {
	if pollID <= 0 {
		return Result[models.Vote]{}, invalidArg("poll id must be a positive integer")
	}
	if optionID <= 0 {
		return Result[models.Vote]{}, invalidArg("option id must be a positive integer")
	}
	if accessToken == "" {
		return Result[models.Vote]{}, invalidArg("access token must be a non-empty string")
	}

	resp, err := c.tr.Do(transport.Request{
		Operation: "cast_vote",
		Method:    http.MethodPost,
		URL:       c.voteURL(pollID),
		Body:      models.VoteRequest{OptionID: optionID},
		Header:    auth.BearerHeader(accessToken),
	})
	if err != nil {
		return Result[models.Vote]{}, err
	}

	res, err := decode[models.Vote]("cast vote", resp, voteDefaults)
	if err != nil {
		return Result[models.Vote]{}, err
	}
	if res.OK() {
		res.Warnings = validateVote(resp.Body, optionID)
		c.logWarnings("cast_vote", res.Warnings)
		c.log.Info("vote cast", "poll_id", pollID, "option_id", optionID, "vote_id", res.Data.ID)
	}
	return res, nil
}

// Vote is the fail-fast variant of CastVote.
func (c *Client) Vote(pollID, optionID int, accessToken string) (models.Vote, error) {
	res, err := c.CastVote(pollID, optionID, accessToken)
	return failFast(opVoteCasting, res, err)
}

// UserVote would report which option the authenticated user chose on a
// poll. The service exposes no endpoint for that lookup, so this always
// returns ErrNotImplemented rather than pretending with a guess.
func (c *Client) UserVote(pollID int) (*models.Vote, error) {
	return nil, fmt.Errorf("user vote lookup for poll %d: %w", pollID, ErrNotImplemented)
}
