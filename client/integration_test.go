// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"testing"

	"github.com/theDahunsiDavid/Polly-API/models"
	"github.com/theDahunsiDavid/Polly-API/testutil"
)

// The fake service accepts this one token. Issuing real ones is the
// service's business, not this layer's.
const fakeToken = "integration-token"

const seedCreatedAt = "2024-03-01T10:00:00Z"

// fakePollService is a minimal in-memory stand-in for the real API,
// good enough to drive every operation end to end.
type fakePollService struct {
	mu         sync.Mutex
	users      map[string]models.User
	polls      map[int]*models.Poll
	order      []int
	counts     map[int]int
	nextUserID int
	nextPollID int
	nextOptID  int
	nextVoteID int
}

func newFakePollService() *fakePollService {
	return &fakePollService{
		users:  make(map[string]models.User),
		polls:  make(map[int]*models.Poll),
		counts: make(map[int]int),
	}
}

func (s *fakePollService) routes() map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		"POST /register":          s.register,
		"POST /polls":             s.createPoll,
		"GET /polls":              s.listPolls,
		"GET /polls/{id}":         s.getPoll,
		"DELETE /polls/{id}":      s.deletePoll,
		"POST /polls/{id}/vote":   s.vote,
		"GET /polls/{id}/results": s.results,
	}
}

func (s *fakePollService) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func (s *fakePollService) authorized(w http.ResponseWriter, r *http.Request) bool {
	if r.Header.Get("Authorization") != "Bearer "+fakeToken {
		s.writeJSON(w, http.StatusUnauthorized, map[string]string{})
		return false
	}
	return true
}

func (s *fakePollService) register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	json.NewDecoder(r.Body).Decode(&req)

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, taken := s.users[req.Username]; taken {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{})
		return
	}
	s.nextUserID++
	user := models.User{ID: s.nextUserID, Username: req.Username}
	s.users[req.Username] = user
	s.writeJSON(w, http.StatusOK, user)
}

func (s *fakePollService) createPoll(w http.ResponseWriter, r *http.Request) {
	if !s.authorized(w, r) {
		return
	}
	var req models.CreatePollRequest
	json.NewDecoder(r.Body).Decode(&req)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextPollID++
	poll := &models.Poll{
		ID:        s.nextPollID,
		Question:  req.Question,
		CreatedAt: seedCreatedAt,
		OwnerID:   1,
	}
	for _, text := range req.Options {
		s.nextOptID++
		poll.Options = append(poll.Options, models.Option{
			ID:     s.nextOptID,
			Text:   text,
			PollID: poll.ID,
		})
	}
	s.polls[poll.ID] = poll
	s.order = append(s.order, poll.ID)
	s.writeJSON(w, http.StatusOK, poll)
}

func (s *fakePollService) listPolls(w http.ResponseWriter, r *http.Request) {
	skip, _ := strconv.Atoi(r.URL.Query().Get("skip"))
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		limit = 10
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	page := make([]models.Poll, 0, limit)
	for i := skip; i < len(s.order) && len(page) < limit; i++ {
		page = append(page, *s.polls[s.order[i]])
	}
	s.writeJSON(w, http.StatusOK, page)
}

func (s *fakePollService) getPoll(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(r.PathValue("id"))

	s.mu.Lock()
	defer s.mu.Unlock()
	poll, ok := s.polls[id]
	if !ok {
		s.writeJSON(w, http.StatusNotFound, map[string]string{})
		return
	}
	s.writeJSON(w, http.StatusOK, poll)
}

func (s *fakePollService) deletePoll(w http.ResponseWriter, r *http.Request) {
	if !s.authorized(w, r) {
		return
	}
	id, _ := strconv.Atoi(r.PathValue("id"))

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.polls[id]; !ok {
		s.writeJSON(w, http.StatusNotFound, map[string]string{})
		return
	}
	delete(s.polls, id)
	for i, pid := range s.order {
		if pid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *fakePollService) vote(w http.ResponseWriter, r *http.Request) {
	if !s.authorized(w, r) {
		return
	}
	id, _ := strconv.Atoi(r.PathValue("id"))
	var req models.VoteRequest
	json.NewDecoder(r.Body).Decode(&req)

	s.mu.Lock()
	defer s.mu.Unlock()
	poll, ok := s.polls[id]
	if !ok {
		s.writeJSON(w, http.StatusNotFound, map[string]string{})
		return
	}
	found := false
	for _, opt := range poll.Options {
		if opt.ID == req.OptionID {
			found = true
			break
		}
	}
	if !found {
		s.writeJSON(w, http.StatusNotFound, map[string]string{})
		return
	}
	s.counts[req.OptionID]++
	s.nextVoteID++
	s.writeJSON(w, http.StatusOK, models.Vote{
		ID:        s.nextVoteID,
		UserID:    1,
		OptionID:  req.OptionID,
		CreatedAt: seedCreatedAt,
	})
}

func (s *fakePollService) results(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(r.PathValue("id"))

	s.mu.Lock()
	defer s.mu.Unlock()
	poll, ok := s.polls[id]
	if !ok {
		s.writeJSON(w, http.StatusNotFound, map[string]string{})
		return
	}
	res := models.PollResults{
		PollID:   poll.ID,
		Question: poll.Question,
		Results:  make([]models.OptionResult, 0, len(poll.Options)),
	}
	for _, opt := range poll.Options {
		res.Results = append(res.Results, models.OptionResult{
			OptionID:  opt.ID,
			Text:      opt.Text,
			VoteCount: s.counts[opt.ID],
		})
	}
	s.writeJSON(w, http.StatusOK, res)
}

// seed creates n polls directly, bypassing the HTTP surface.
func (s *fakePollService) seed(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := 0; i < n; i++ {
		s.nextPollID++
		s.nextOptID += 2
		poll := &models.Poll{
			ID:        s.nextPollID,
			Question:  fmt.Sprintf("Question #%d", s.nextPollID),
			CreatedAt: seedCreatedAt,
			OwnerID:   1,
			Options: []models.Option{
				{ID: s.nextOptID - 1, Text: "Yes", PollID: s.nextPollID},
				{ID: s.nextOptID, Text: "No", PollID: s.nextPollID},
			},
		}
		s.polls[poll.ID] = poll
		s.order = append(s.order, poll.ID)
	}
}

// TestFullClientWorkflow drives the complete lifecycle against a
// stateful fake service:
// 1. Register a user
// 2. Create a poll
// 3. Fetch it back by id
// 4. Page through all polls
// 5. Search by keyword
// 6. Cast votes
// 7. Read the results
// 8. Compute winner and statistics
// 9. Delete the poll
// 10. Verify it is gone
func TestFullClientWorkflow(t *testing.T) {
	svc := newFakePollService()
	srv := testutil.Server(t, svc.routes())
	api := testClient(t, srv.URL)

	// Step 1: Register a user
	res, err := api.RegisterUser("integration-tester", "hunter2")
	if err != nil || !res.OK() {
		t.Fatalf("Step 1 - Registration failed: %v %+v", err, res.Failure)
	}
	if res.Data.Username != "integration-tester" {
		t.Fatalf("Step 1 - Wrong username echoed: %q", res.Data.Username)
	}
	t.Logf("Step 1 - Registered user %d", res.Data.ID)

	// Step 2: Create a poll
	poll, err := api.NewPoll("What should we eat for lunch?", []string{"Pizza", "Sushi", "Tacos"}, fakeToken)
	if err != nil {
		t.Fatalf("Step 2 - Create poll failed: %v", err)
	}
	if len(poll.Options) != 3 {
		t.Fatalf("Step 2 - Expected 3 options, got %d", len(poll.Options))
	}
	t.Logf("Step 2 - Created poll %d with %d options", poll.ID, len(poll.Options))

	// Step 3: Fetch it back by id
	fetched, err := api.Poll(poll.ID)
	if err != nil {
		t.Fatalf("Step 3 - Get poll failed: %v", err)
	}
	if fetched.Question != poll.Question {
		t.Fatalf("Step 3 - Question mismatch: %q vs %q", fetched.Question, poll.Question)
	}
	t.Logf("Step 3 - Fetched poll %d", fetched.ID)

	// Step 4: Page through all polls
	all, err := api.FetchAllPolls(10)
	if err != nil {
		t.Fatalf("Step 4 - Fetch all failed: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("Step 4 - Expected 1 poll, got %d", len(all))
	}
	t.Logf("Step 4 - Paged through %d polls", len(all))

	// Step 5: Search by keyword, case-insensitively
	hits, err := api.SearchPolls("LUNCH", 0, 100)
	if err != nil {
		t.Fatalf("Step 5 - Search failed: %v", err)
	}
	if len(hits) != 1 || hits[0].ID != poll.ID {
		t.Fatalf("Step 5 - Expected the lunch poll, got %+v", hits)
	}
	t.Logf("Step 5 - Search found %d matching polls", len(hits))

	// Step 6: Cast votes. Pizza twice, Sushi once.
	pizza := poll.Options[0].ID
	sushi := poll.Options[1].ID
	for _, optionID := range []int{pizza, pizza, sushi} {
		if _, err := api.Vote(poll.ID, optionID, fakeToken); err != nil {
			t.Fatalf("Step 6 - Vote for option %d failed: %v", optionID, err)
		}
	}
	t.Logf("Step 6 - Cast 3 votes")

	// Step 7: Read the results
	results, err := api.Results(poll.ID)
	if err != nil {
		t.Fatalf("Step 7 - Results failed: %v", err)
	}
	if results.Results[0].VoteCount != 2 || results.Results[1].VoteCount != 1 || results.Results[2].VoteCount != 0 {
		t.Fatalf("Step 7 - Wrong counts: %+v", results.Results)
	}
	t.Logf("Step 7 - Results: %d/%d/%d", results.Results[0].VoteCount, results.Results[1].VoteCount, results.Results[2].VoteCount)

	// Step 8: Winner and statistics
	winner, err := api.Winner(poll.ID)
	if err != nil {
		t.Fatalf("Step 8 - Winner failed: %v", err)
	}
	if winner == nil || winner.Text != "Pizza" {
		t.Fatalf("Step 8 - Expected Pizza to win, got %+v", winner)
	}
	stats, err := api.Stats(poll.ID)
	if err != nil {
		t.Fatalf("Step 8 - Stats failed: %v", err)
	}
	if stats.TotalVotes != 3 {
		t.Fatalf("Step 8 - Expected 3 total votes, got %d", stats.TotalVotes)
	}
	if stats.Winner == nil || stats.Winner.Percentage != 66.7 {
		t.Fatalf("Step 8 - Expected winner at 66.7%%, got %+v", stats.Winner)
	}
	t.Logf("Step 8 - Winner %q with %.1f%%", stats.Winner.Text, stats.Winner.Percentage)

	// Step 9: Delete the poll
	if err := api.RemovePoll(poll.ID, fakeToken); err != nil {
		t.Fatalf("Step 9 - Delete failed: %v", err)
	}
	t.Logf("Step 9 - Deleted poll %d", poll.ID)

	// Step 10: The poll is gone
	gone, err := api.GetResults(poll.ID)
	if err != nil {
		t.Fatalf("Step 10 - Results call errored: %v", err)
	}
	if gone.OK() || gone.Failure.Message != "Poll not found" {
		t.Fatalf("Step 10 - Expected 'Poll not found', got %+v", gone.Failure)
	}
	t.Logf("Step 10 - Poll is gone")
}

func TestFetchAllPollsManyPages(t *testing.T) {
	svc := newFakePollService()
	svc.seed(25)
	srv := testutil.Server(t, svc.routes())
	api := testClient(t, srv.URL)

	all, err := api.FetchAllPolls(10)
	if err != nil {
		t.Fatalf("FetchAllPolls failed: %v", err)
	}
	if len(all) != 25 {
		t.Fatalf("Expected 25 polls, got %d", len(all))
	}
	// Service order is preserved across page boundaries.
	for i, p := range all {
		if p.ID != i+1 {
			t.Errorf("Expected poll %d at index %d, got %d", i+1, i, p.ID)
		}
	}

	hits, err := api.SearchPolls("Question #7", 0, 100)
	if err != nil {
		t.Fatalf("SearchPolls failed: %v", err)
	}
	if len(hits) != 1 || hits[0].ID != 7 {
		t.Errorf("Expected exactly poll 7, got %+v", hits)
	}
}

func TestDuplicateRegistrationAgainstStatefulService(t *testing.T) {
	svc := newFakePollService()
	srv := testutil.Server(t, svc.routes())
	api := testClient(t, srv.URL)

	if _, err := api.Register("alice", "pw"); err != nil {
		t.Fatalf("First registration failed: %v", err)
	}
	_, err := api.Register("alice", "pw")
	var opErr *OperationError
	if !errors.As(err, &opErr) {
		t.Fatalf("Expected *OperationError for duplicate, got %T", err)
	}
	if opErr.Message != "Username already registered" {
		t.Errorf("Expected duplicate-username message, got %q", opErr.Message)
	}
}
