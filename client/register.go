// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package client

import (
	"net/http"

	"github.com/theDahunsiDavid/Polly-API/models"
	"github.com/theDahunsiDavid/Polly-API/transport"
)

var registerDefaults = map[int]string{
	http.StatusBadRequest: "Username already registered",
}

// RegisterUser creates a new account. The password travels only in the
// request body and is never logged.
func (c *Client) RegisterUser(username, password string) (Result[models.User], error) {
	if username == "" {
		return Result[models.User]{}, invalidArg("username must be a non-empty string")
	}
	if password == "" {
		return Result[models.User]{}, invalidArg("password must be a non-empty string")
	}

	resp, err := c.tr.Do(transport.Request{
		Operation: "register_user",
		Method:    http.MethodPost,
		URL:       c.registerURL(),
		Body:      models.RegisterRequest{Username: username, Password: password},
	})
	if err != nil {
		return Result[models.User]{}, err
	}

	res, err := decode[models.User]("register user", resp, registerDefaults)
	if err != nil {
		return Result[models.User]{}, err
	}
	if res.OK() {
		res.Warnings = validateUser(resp.Body)
		c.logWarnings("register_user", res.Warnings)
		c.log.Info("user registered", "username", username, "user_id", res.Data.ID)
	}
	return res, nil
}

// Register is the fail-fast variant of RegisterUser.
func (c *Client) Register(username, password string) (models.User, error) {
	res, err := c.RegisterUser(username, password)
	return failFast(opRegistration, res, err)
}
