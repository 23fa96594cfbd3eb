package domain

import "time"

// Claims is the full payload of an issued bearer token: identity id, email
// and role, nothing else. Tokens carry no expiry claim: a session lives
// until the client discards it or the signing secret rotates.
type Claims struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// SessionDescriptor is the provider-issued session blob cached next to the
// user profile. ExpiresAt is a unix timestamp; zero means no expiry known.
type SessionDescriptor struct {
	AccessToken string `json:"access_token"`
	ExpiresAt   int64  `json:"expires_at"`
}

// ExpiresWithin reports whether the descriptor expires before now+buffer.
// A zero ExpiresAt never expires.
func (d *SessionDescriptor) ExpiresWithin(now time.Time, buffer time.Duration) bool {
	if d.ExpiresAt == 0 {
		return false
	}
	return time.Unix(d.ExpiresAt, 0).Before(now.Add(buffer))
}

// CachedSession is the last-known authenticated state for a subject: the
// user projection, the bearer token, and an optional session descriptor.
type CachedSession struct {
	User    User               `json:"user"`
	Token   string             `json:"token"`
	Session *SessionDescriptor `json:"session,omitempty"`
}

// Session event types propagated to cache observers.
const (
	SessionEventLogin  = "login"
	SessionEventLogout = "logout"
)

// SessionEvent announces a login or logout to in-process subscribers and,
// through the Redis channel, to other instances. Delivery is best-effort
// at-least-once with no ordering guarantee.
type SessionEvent struct {
	ID    string    `json:"id"`
	Type  string    `json:"type"`
	Email string    `json:"email"`
	At    time.Time `json:"at"`
}
