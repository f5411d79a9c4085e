package domain

import (
	"testing"

	"github.com/google/uuid"
)

// TestNewSessionTokenTreatsBlankAsAbsent tests that an empty cookie value is no token at all
func TestNewSessionTokenTreatsBlankAsAbsent(t *testing.T) {
	for _, value := range []string{"", "   ", "\t"} {
		token := NewSessionToken(value)
		if token.Present {
			t.Errorf("expected %q to be absent, got present token", value)
		}
	}
}

// TestSessionTokenSessionID tests that only well-formed UUID tokens are accepted
func TestSessionTokenSessionID(t *testing.T) {
	valid := uuid.NewString()

	tests := []struct {
		name  string
		token SessionToken
		want  SessionID
		ok    bool
	}{
		{name: "absent", token: NoSessionToken, ok: false},
		{name: "well formed", token: NewSessionToken(valid), want: SessionID(valid), ok: true},
		{name: "garbage", token: NewSessionToken("not-a-session"), ok: false},
		{name: "book key", token: NewSessionToken("book1"), ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.token.SessionID()
			if ok != tt.ok {
				t.Fatalf("expected ok=%v, got %v", tt.ok, ok)
			}
			if got != tt.want {
				t.Errorf("expected session %q, got %q", tt.want, got)
			}
		})
	}
}

// TestNewSessionIDIsUnique tests that generated sessions parse as UUIDs and differ
func TestNewSessionIDIsUnique(t *testing.T) {
	first := NewSessionID()
	second := NewSessionID()

	if first == second {
		t.Error("expected two generated sessions to differ")
	}
	if _, err := uuid.Parse(string(first)); err != nil {
		t.Errorf("expected generated session to be a UUID, got %q", first)
	}
}
