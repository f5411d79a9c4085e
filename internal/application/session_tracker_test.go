package application

import (
	"context"
	"sync"
	"testing"

	"bookshelf/internal/adapters/output/memory"
	"bookshelf/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveSessionKeepsWellFormedToken(t *testing.T) {
	tracker := NewSessionTracker(memory.NewMemoryDocumentStore())

	got := tracker.ResolveSession(domain.NewSessionToken(string(testSession)))
	assert.Equal(t, testSession, got)
}

func TestResolveSessionGeneratesForAbsentOrMalformedToken(t *testing.T) {
	tracker := NewSessionTracker(memory.NewMemoryDocumentStore())

	for _, token := range []domain.SessionToken{domain.NoSessionToken, domain.NewSessionToken("garbage")} {
		got := tracker.ResolveSession(token)
		assert.NotEmpty(t, got)
		_, ok := domain.NewSessionToken(string(got)).SessionID()
		assert.True(t, ok, "generated session %q should be well formed", got)
	}
	assert.NotEqual(t, tracker.ResolveSession(domain.NoSessionToken), tracker.ResolveSession(domain.NoSessionToken))
}

func TestRecordReadThenGetHistory(t *testing.T) {
	tracker := NewSessionTracker(memory.NewMemoryDocumentStore())
	ctx := context.Background()

	require.NoError(t, tracker.RecordRead(ctx, testSession, 3))
	require.NoError(t, tracker.RecordRead(ctx, testSession, 1))

	history, err := tracker.GetHistory(ctx, testSession)
	require.NoError(t, err)
	assert.Equal(t, []domain.BookID{3, 1}, history)
}

func TestRecordReadIsIdempotent(t *testing.T) {
	tracker := NewSessionTracker(memory.NewMemoryDocumentStore())
	ctx := context.Background()

	require.NoError(t, tracker.RecordRead(ctx, testSession, 2))
	require.NoError(t, tracker.RecordRead(ctx, testSession, 2))

	history, err := tracker.GetHistory(ctx, testSession)
	require.NoError(t, err)
	assert.Equal(t, []domain.BookID{2}, history)
}

func TestRecordReadConcurrentSameBook(t *testing.T) {
	tracker := NewSessionTracker(memory.NewMemoryDocumentStore())
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 25; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, tracker.RecordRead(ctx, testSession, 5))
		}()
	}
	wg.Wait()

	history, err := tracker.GetHistory(ctx, testSession)
	require.NoError(t, err)
	assert.Equal(t, []domain.BookID{5}, history)
}

func TestGetHistoryUnknownSessionIsEmpty(t *testing.T) {
	tracker := NewSessionTracker(memory.NewMemoryDocumentStore())

	history, err := tracker.GetHistory(context.Background(), domain.NewSessionID())
	require.NoError(t, err)
	assert.NotNil(t, history)
	assert.Empty(t, history)
}

// rawListStore serves a fixed history list, as written by a deployment
// without duplicate suppression
type rawListStore struct {
	*memory.MemoryDocumentStore
	entries []string
}

func (r rawListStore) Range(context.Context, string) ([]string, error) {
	return r.entries, nil
}

func TestGetHistorySkipsForeignAndDuplicateEntries(t *testing.T) {
	store := rawListStore{
		MemoryDocumentStore: memory.NewMemoryDocumentStore(),
		entries:             []string{"book1", "garbage", "book1", "book2", "book2", "book1"},
	}
	tracker := NewSessionTracker(store)

	history, err := tracker.GetHistory(context.Background(), testSession)
	require.NoError(t, err)
	assert.Equal(t, []domain.BookID{1, 2}, history)
}

func TestSessionTrackerPropagatesStoreUnavailable(t *testing.T) {
	ctx := context.Background()

	err := NewSessionTracker(newFailingStore("append")).RecordRead(ctx, testSession, 1)
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)

	_, err = NewSessionTracker(newFailingStore("range")).GetHistory(ctx, testSession)
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}
