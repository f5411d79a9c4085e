package domain

import (
	"strings"

	"github.com/google/uuid"
)

// SessionID identifies a visitor; it is also the store key of its read history
type SessionID string

// SessionToken is the session value a client sent with the request, if any
type SessionToken struct {
	Value   string
	Present bool
}

// NoSessionToken is the token of a request that carried no session cookie
var NoSessionToken = SessionToken{}

// NewSessionToken wraps a cookie value. Blank values count as absent.
func NewSessionToken(value string) SessionToken {
	value = strings.TrimSpace(value)
	if value == "" {
		return NoSessionToken
	}
	return SessionToken{Value: value, Present: true}
}

// SessionID returns the token as a session id when it is a well-formed UUID
func (t SessionToken) SessionID() (SessionID, bool) {
	if !t.Present {
		return "", false
	}
	if _, err := uuid.Parse(t.Value); err != nil {
		return "", false
	}
	return SessionID(t.Value), true
}

// NewSessionID generates a random (v4) session id
func NewSessionID() SessionID {
	return SessionID(uuid.NewString())
}
