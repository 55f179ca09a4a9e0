package models

// Request types

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type VoteRequest struct {
	OptionID int `json:"option_id"`
}

type CreatePollRequest struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

// Domain types

type Poll struct {
	ID       int    `json:"id"`
	Question string `json:"question"`
	// Kept as a string: the service emits ISO-8601 with or without a zone
	// designator, and an unparseable value must not fail the whole decode.
	CreatedAt string   `json:"created_at"`
	OwnerID   int      `json:"owner_id"`
	Options   []Option `json:"options"`
}

type Option struct {
	ID     int    `json:"id"`
	Text   string `json:"text"`
	PollID int    `json:"poll_id"`
}

type Vote struct {
	ID        int    `json:"id"`
	UserID    int    `json:"user_id"`
	OptionID  int    `json:"option_id"`
	CreatedAt string `json:"created_at"`
}

type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
}

// APIError is the service's error envelope on non-2xx responses.
type APIError struct {
	Detail string `json:"detail"`
}

// Results types

type PollResults struct {
	PollID   int            `json:"poll_id"`
	Question string         `json:"question"`
	Results  []OptionResult `json:"results"`
}

// OptionResult is the tallied view of an option: same choice as Option but
// annotated with its vote count instead of its parent poll.
type OptionResult struct {
	OptionID  int    `json:"option_id"`
	Text      string `json:"text"`
	VoteCount int    `json:"vote_count"`
}

type OptionPercentage struct {
	OptionResult
	Percentage float64 `json:"percentage"`
}

type Statistics struct {
	PollID       int                `json:"poll_id"`
	Question     string             `json:"question"`
	TotalVotes   int                `json:"total_votes"`
	OptionsCount int                `json:"options_count"`
	Winner       *OptionPercentage  `json:"winner"` // nil when no votes have been cast
	Options      []OptionPercentage `json:"options_with_percentages"`
}
