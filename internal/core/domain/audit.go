package domain

import "time"

// AuthEventKind enumerates the auditable authentication outcomes.
type AuthEventKind string

const (
	EventRegistered     AuthEventKind = "registered"
	EventLoginSucceeded AuthEventKind = "login_succeeded"
	EventLoginFailed    AuthEventKind = "login_failed"
	EventLogout         AuthEventKind = "logout"
)

// AuthEvent is a single audit-trail entry. Subject is the (normalized)
// email the event concerns; UserID is empty when the subject has no account.
type AuthEvent struct {
	Kind      AuthEventKind `json:"kind"`
	Subject   string        `json:"subject"`
	UserID    string        `json:"user_id,omitempty"`
	Timestamp time.Time     `json:"timestamp"`
}
