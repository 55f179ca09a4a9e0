// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package client

import "strconv"

// Endpoint table for the polling service:
//
//	POST   /register                 register a user
//	GET    /polls                    list polls (skip, limit)
//	POST   /polls                    create a poll (auth)
//	GET    /polls/{id}               fetch one poll
//	DELETE /polls/{id}               delete a poll (auth)
//	POST   /polls/{id}/vote          cast a vote (auth)
//	GET    /polls/{id}/results       fetch tallied results

func (c *Client) registerURL() string {
	return c.baseURL + "/register"
}

func (c *Client) pollsURL() string {
	return c.baseURL + "/polls"
}

func (c *Client) pollURL(pollID int) string {
	return c.baseURL + "/polls/" + strconv.Itoa(pollID)
}

func (c *Client) voteURL(pollID int) string {
	return c.pollURL(pollID) + "/vote"
}

func (c *Client) resultsURL(pollID int) string {
	return c.pollURL(pollID) + "/results"
}
