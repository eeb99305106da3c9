package events

import "time"

// EmailRequested is published whenever a state change wants a transactional
// mail. Delivery is best-effort: the publishing request never waits on it and
// never learns its outcome.
type EmailRequested struct {
	To         string    `json:"to"`
	Subject    string    `json:"subject"`
	HTMLBody   string    `json:"html_body"`
	OccurredAt time.Time `json:"occurred_at"`
}
