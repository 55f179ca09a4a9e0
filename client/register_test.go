// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package client

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/theDahunsiDavid/Polly-API/models"
	"github.com/theDahunsiDavid/Polly-API/testutil"
)

func TestRegisterUser(t *testing.T) {
	rec := &testutil.Recorder{}
	srv := testutil.Server(t, map[string]http.HandlerFunc{
		"POST /register": rec.Wrap(testutil.JSONHandler(http.StatusOK, `{"id": 42, "username": "alice"}`)),
	})
	api := testClient(t, srv.URL)

	res, err := api.RegisterUser("alice", "s3cret")
	if err != nil {
		t.Fatalf("RegisterUser returned error: %v", err)
	}
	if !res.OK() {
		t.Fatalf("Expected success, got %+v", res.Failure)
	}
	if res.Data.ID != 42 || res.Data.Username != "alice" {
		t.Errorf("User decoded wrong: %+v", res.Data)
	}

	reqs := rec.Requests()
	if len(reqs) != 1 {
		t.Fatalf("Expected 1 request, got %d", len(reqs))
	}
	if got := reqs[0].Header.Get("Content-Type"); got != "application/json" {
		t.Errorf("Expected Content-Type application/json, got %q", got)
	}

	var sent models.RegisterRequest
	testutil.DecodeBody(t, reqs[0].Body, &sent)
	if sent.Username != "alice" || sent.Password != "s3cret" {
		t.Errorf("Request body wrong: %+v", sent)
	}
}

func TestRegisterUserDuplicate(t *testing.T) {
	srv := testutil.Server(t, map[string]http.HandlerFunc{
		"POST /register": testutil.JSONHandler(http.StatusBadRequest, `{}`),
	})
	api := testClient(t, srv.URL)

	res, err := api.RegisterUser("alice", "s3cret")
	if err != nil {
		t.Fatalf("RegisterUser returned error: %v", err)
	}
	if res.OK() {
		t.Fatal("Expected a failure result")
	}
	if res.Failure.Message != "Username already registered" {
		t.Errorf("Expected duplicate-username default, got %q", res.Failure.Message)
	}
}

func TestRegisterUserDetailWins(t *testing.T) {
	srv := testutil.Server(t, map[string]http.HandlerFunc{
		"POST /register": testutil.DetailHandler(http.StatusBadRequest, "Password does not meet requirements"),
	})
	api := testClient(t, srv.URL)

	res, err := api.RegisterUser("alice", "x")
	if err != nil {
		t.Fatalf("RegisterUser returned error: %v", err)
	}
	if res.OK() || res.Failure.Message != "Password does not meet requirements" {
		t.Errorf("Expected the service's detail verbatim, got %+v", res.Failure)
	}
}

func TestRegisterUserRejectsBlankInput(t *testing.T) {
	rec := &testutil.Recorder{}
	srv := testutil.Server(t, map[string]http.HandlerFunc{
		"POST /register": rec.Wrap(testutil.JSONHandler(http.StatusOK, `{}`)),
	})
	api := testClient(t, srv.URL)

	if _, err := api.RegisterUser("", "s3cret"); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Expected ErrInvalidArgument for empty username, got %v", err)
	}
	if _, err := api.RegisterUser("alice", ""); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Expected ErrInvalidArgument for empty password, got %v", err)
	}
	if rec.Count() != 0 {
		t.Errorf("Expected 0 requests for invalid input, got %d", rec.Count())
	}
}

func TestRegisterFailFast(t *testing.T) {
	srv := testutil.Server(t, map[string]http.HandlerFunc{
		"POST /register": testutil.JSONHandler(http.StatusBadRequest, `{}`),
	})
	api := testClient(t, srv.URL)

	_, err := api.Register("alice", "s3cret")
	var opErr *OperationError
	if !errors.As(err, &opErr) {
		t.Fatalf("Expected *OperationError, got %T", err)
	}
	if opErr.Error() != "Registration failed: Username already registered" {
		t.Errorf("Expected 'Registration failed: Username already registered', got %q", opErr.Error())
	}
}

func TestRegisterUserWarnsOnOddPayload(t *testing.T) {
	srv := testutil.Server(t, map[string]http.HandlerFunc{
		"POST /register": testutil.JSONHandler(http.StatusOK, `{"id": 42}`),
	})
	api := testClient(t, srv.URL)

	res, err := api.RegisterUser("alice", "s3cret")
	if err != nil {
		t.Fatalf("RegisterUser returned error: %v", err)
	}
	if len(res.Warnings) != 1 || !strings.Contains(res.Warnings[0], "username") {
		t.Errorf("Expected a missing-username warning, got %v", res.Warnings)
	}
}
