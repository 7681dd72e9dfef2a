package call

import "time"

const (
	UrgencyHigh   = "high"
	UrgencyMedium = "medium"
	UrgencyLow    = "low"
)

const (
	StatusUnread = "unread"
	StatusRead   = "read"
)

// Call is a single triaged phone interaction in its domain shape.
type Call struct {
	ID                  int        `json:"id"`
	Name                string     `json:"name"`
	Phone               string     `json:"phone"`
	Urgency             string     `json:"urgency"`
	Time                time.Time  `json:"time"`
	Duration            string     `json:"duration"`
	Summary             string     `json:"summary"`
	Status              string     `json:"status"`
	Symptoms            []string   `json:"symptoms"`
	CallbackRequested   bool       `json:"callbackRequested"`
	CallbackCompleted   bool       `json:"callbackCompleted"`
	CallbackCompletedAt *time.Time `json:"callbackCompletedAt"`
	Notes               *string    `json:"notes"`
	CreatedAt           time.Time  `json:"createdAt"`
	UpdatedAt           time.Time  `json:"updatedAt"`
}

// CallRaw is the wire shape of a call record. Field names must match the
// remote store exactly.
type CallRaw struct {
	ID                  int        `json:"id"`
	Name                string     `json:"name"`
	Phone               string     `json:"phone"`
	Urgency             string     `json:"urgency"`
	Time                time.Time  `json:"time"`
	Duration            string     `json:"duration"`
	Summary             string     `json:"summary"`
	Status              string     `json:"status"`
	Symptoms            []string   `json:"symptoms"`
	CallbackRequested   bool       `json:"callback_requested"`
	CallbackCompleted   bool       `json:"callback_completed"`
	CallbackCompletedAt *time.Time `json:"callback_completed_at"`
	Notes               *string    `json:"notes"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

// CallsResponseRaw is the wire shape of the call list endpoint.
type CallsResponseRaw struct {
	Calls []CallRaw `json:"calls"`
	Total int       `json:"total"`
	Skip  int       `json:"skip"`
	Limit int       `json:"limit"`
}

// CallsResult is one page of calls plus the filtered-but-unpaginated count.
type CallsResult struct {
	Calls []Call
	Total int
}
