package application

import (
	"context"
	"fmt"

	"bookshelf/internal/domain"
	"bookshelf/internal/ports/output"

	"github.com/sirupsen/logrus"
)

// SessionTracker struct - Application service tracking what each visitor has read.
// A history is a list in the store keyed by the session id, holding book keys
// in read order.
type SessionTracker struct {
	store output.DocumentStore
}

// NewSessionTracker func - Creates new session tracker
func NewSessionTracker(store output.DocumentStore) *SessionTracker {
	return &SessionTracker{store: store}
}

// ResolveSession returns the session carried by the request, or a new one
// when the token is absent or not a well-formed session id.
// The caller sends the returned id back to the client.
func (t *SessionTracker) ResolveSession(token domain.SessionToken) domain.SessionID {
	if id, ok := token.SessionID(); ok {
		return id
	}
	if token.Present {
		logrus.Debugf("Discarding malformed session token: %q", token.Value)
	}
	return domain.NewSessionID()
}

// RecordRead adds a book to the session history unless it is already there
func (t *SessionTracker) RecordRead(ctx context.Context, session domain.SessionID, book domain.BookID) error {
	appended, err := t.store.AppendUnique(ctx, string(session), domain.BookKey(book))
	if err != nil {
		return fmt.Errorf("record read: %w", err)
	}
	if appended {
		logrus.Debugf("Recorded read: session=%s, book=%d", session, book)
	}
	return nil
}

// GetHistory returns the books read by a session, oldest first.
// Unknown sessions have an empty history.
func (t *SessionTracker) GetHistory(ctx context.Context, session domain.SessionID) ([]domain.BookID, error) {
	entries, err := t.store.Range(ctx, string(session))
	if err != nil {
		return nil, fmt.Errorf("read history: %w", err)
	}
	history := make([]domain.BookID, 0, len(entries))
	seen := make(map[domain.BookID]struct{}, len(entries))
	for _, entry := range entries {
		id, ok := domain.ParseBookKey(entry)
		if !ok {
			continue
		}
		// histories written by older deployments may hold duplicates
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		history = append(history, id)
	}
	return history, nil
}
