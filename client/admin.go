// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package client

import (
	"net/http"
	"strings"

	"github.com/theDahunsiDavid/Polly-API/auth"
	"github.com/theDahunsiDavid/Polly-API/models"
	"github.com/theDahunsiDavid/Polly-API/transport"
)

var createPollDefaults = map[int]string{
	http.StatusBadRequest:   "At least two options are required for a poll",
	http.StatusUnauthorized: msgUnauthorized,
}

var deletePollDefaults = map[int]string{
	http.StatusUnauthorized: msgUnauthorized,
	http.StatusNotFound:     "Poll not found or not authorized",
}

// CreatePoll creates a poll owned by the token's user. The service insists
// on at least two options; that is checked here as well to save the round
// trip.
func (c *Client) CreatePoll(question string, options []string, accessToken string) (Result[models.Poll], error) {
	if strings.TrimSpace(question) == "" {
		return Result[models.Poll]{}, invalidArg("question must be a non-empty string")
	}
	if len(options) < 2 {
		return Result[models.Poll]{}, invalidArg("at least two options are required")
	}
	for _, option := range options {
		if strings.TrimSpace(option) == "" {
			return Result[models.Poll]{}, invalidArg("option text must be a non-empty string")
		}
	}
	if accessToken == "" {
		return Result[models.Poll]{}, invalidArg("access token must be a non-empty string")
	}

	resp, err := c.tr.Do(transport.Request{
		Operation: "create_poll",
		Method:    http.MethodPost,
		URL:       c.pollsURL(),
		Body:      models.CreatePollRequest{Question: question, Options: options},
		Header:    auth.BearerHeader(accessToken),
	})
	if err != nil {
		return Result[models.Poll]{}, err
	}

	res, err := decode[models.Poll]("create poll", resp, createPollDefaults)
	if err != nil {
		return Result[models.Poll]{}, err
	}
	if res.OK() {
		res.Warnings = validatePoll(resp.Body)
		c.logWarnings("create_poll", res.Warnings)
		c.log.Info("poll created", "poll_id", res.Data.ID, "options", len(res.Data.Options))
	}
	return res, nil
}

// NewPoll is the fail-fast variant of CreatePoll.
func (c *Client) NewPoll(question string, options []string, accessToken string) (models.Poll, error) {
	res, err := c.CreatePoll(question, options, accessToken)
	return failFast(opPollCreation, res, err)
}

// DeletePoll removes a poll owned by the token's user. Success carries no
// body: the service answers 204, and a plain 200 is accepted too.
func (c *Client) DeletePoll(pollID int, accessToken string) (Result[struct{}], error) {
	if pollID <= 0 {
		return Result[struct{}]{}, invalidArg("poll id must be a positive integer")
	}
	if accessToken == "" {
		return Result[struct{}]{}, invalidArg("access token must be a non-empty string")
	}

	resp, err := c.tr.Do(transport.Request{
		Operation: "delete_poll",
		Method:    http.MethodDelete,
		URL:       c.pollURL(pollID),
		Header:    auth.BearerHeader(accessToken),
	})
	if err != nil {
		return Result[struct{}]{}, err
	}

	if resp.StatusCode == http.StatusNoContent || resp.StatusCode == http.StatusOK {
		c.log.Info("poll deleted", "poll_id", pollID)
		return Result[struct{}]{StatusCode: resp.StatusCode}, nil
	}
	return Result[struct{}]{
		StatusCode: resp.StatusCode,
		Failure: &Failure{
			Message:    failureMessage(resp, deletePollDefaults),
			StatusCode: resp.StatusCode,
		},
	}, nil
}

// RemovePoll is the fail-fast variant of DeletePoll.
func (c *Client) RemovePoll(pollID int, accessToken string) error {
	res, err := c.DeletePoll(pollID, accessToken)
	_, err = failFast(opPollDeletion, res, err)
	return err
}
