package models

import "time"

// Session is an opaque bearer credential with a fixed expiry.
type Session struct {
	ID        int64
	UserID    int64
	Token     string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Valid reports whether the session has not yet expired at now.
func (s *Session) Valid(now time.Time) bool {
	return s != nil && s.ExpiresAt.After(now)
}
