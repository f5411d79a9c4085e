package application

import (
	"context"
	"testing"

	"bookshelf/internal/adapters/output/memory"
	"bookshelf/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRecommender(store *memory.MemoryDocumentStore) (*RecommendationService, *SessionTracker) {
	tracker := NewSessionTracker(store)
	return NewRecommendationService(NewCatalog(store), tracker), tracker
}

func TestRecommendFirstVisit(t *testing.T) {
	store := memory.NewMemoryDocumentStore()
	seedBooks(t, store, dune, foundation, leftHand)
	recommender, tracker := newRecommender(store)
	ctx := context.Background()

	got, err := recommender.Recommend(ctx, testSession, 1)
	require.NoError(t, err)
	assert.Equal(t, []domain.BookID{2, 3}, linkIDs(got.Suggestions))
	assert.Empty(t, got.Rereads)
	assert.Equal(t, domain.BookLink{ID: 2, Title: "Foundation", Link: "/books/2"}, got.Suggestions[0])

	history, err := tracker.GetHistory(ctx, testSession)
	require.NoError(t, err)
	assert.Equal(t, []domain.BookID{1}, history)
}

func TestRecommendEverythingRead(t *testing.T) {
	store := memory.NewMemoryDocumentStore()
	seedBooks(t, store, dune, foundation)
	recommender, tracker := newRecommender(store)
	ctx := context.Background()
	require.NoError(t, tracker.RecordRead(ctx, testSession, 1))
	require.NoError(t, tracker.RecordRead(ctx, testSession, 2))

	got, err := recommender.Recommend(ctx, testSession, 2)
	require.NoError(t, err)
	assert.Empty(t, got.Suggestions)
	assert.Equal(t, []domain.BookID{1}, linkIDs(got.Rereads))
}

func TestRecommendPartitionsCatalog(t *testing.T) {
	store := memory.NewMemoryDocumentStore()
	books := []testBook{dune, foundation, leftHand,
		{id: 4, title: "Hyperion", author: "Dan Simmons", description: "Pilgrims."},
		{id: 5, title: "Solaris", author: "Stanislaw Lem", description: "An ocean."},
	}
	seedBooks(t, store, books...)
	recommender, tracker := newRecommender(store)
	ctx := context.Background()
	require.NoError(t, tracker.RecordRead(ctx, testSession, 4))
	require.NoError(t, tracker.RecordRead(ctx, testSession, 2))

	got, err := recommender.Recommend(ctx, testSession, 3)
	require.NoError(t, err)

	listed := map[domain.BookID]int{}
	for _, id := range append(linkIDs(got.Suggestions), linkIDs(got.Rereads)...) {
		listed[id]++
	}
	assert.NotContains(t, listed, domain.BookID(3))
	for _, b := range books {
		if b.id == 3 {
			continue
		}
		assert.Equal(t, 1, listed[b.id], "book %d should be listed exactly once", b.id)
	}
	assert.Equal(t, []domain.BookID{1, 5}, linkIDs(got.Suggestions))
	assert.Equal(t, []domain.BookID{2, 4}, linkIDs(got.Rereads))
}

func TestRecommendSkipsMalformedBooks(t *testing.T) {
	store := memory.NewMemoryDocumentStore()
	seedBooks(t, store, dune, foundation)
	require.NoError(t, store.Set(context.Background(), "book3", "<html><body><h2>No paragraphs</h2></body></html>"))
	recommender, _ := newRecommender(store)

	got, err := recommender.Recommend(context.Background(), testSession, 1)
	require.NoError(t, err)
	assert.Equal(t, []domain.BookID{2}, linkIDs(got.Suggestions))
	assert.Empty(t, got.Rereads)
}

func TestRecommendToleratesBooksRemovedAfterReading(t *testing.T) {
	store := memory.NewMemoryDocumentStore()
	seedBooks(t, store, dune, foundation, leftHand)
	recommender, tracker := newRecommender(store)
	ctx := context.Background()
	require.NoError(t, tracker.RecordRead(ctx, testSession, 3))
	store.Delete(domain.BookKey(3))

	got, err := recommender.Recommend(ctx, testSession, 1)
	require.NoError(t, err)
	assert.Equal(t, []domain.BookID{2}, linkIDs(got.Suggestions))
	assert.Empty(t, got.Rereads)
}

func TestRecommendListsAreNeverNil(t *testing.T) {
	store := memory.NewMemoryDocumentStore()
	seedBooks(t, store, dune)
	recommender, _ := newRecommender(store)

	got, err := recommender.Recommend(context.Background(), testSession, 1)
	require.NoError(t, err)
	assert.NotNil(t, got.Suggestions)
	assert.NotNil(t, got.Rereads)
}

func TestRecommendAbortsOnStoreUnavailable(t *testing.T) {
	for _, op := range []string{"append", "range", "keys", "get"} {
		t.Run(op, func(t *testing.T) {
			store := newFailingStore(op)
			require.NoError(t, store.MemoryDocumentStore.Set(context.Background(), "book1", bookDocument(dune)))
			require.NoError(t, store.MemoryDocumentStore.Set(context.Background(), "book2", bookDocument(foundation)))
			tracker := NewSessionTracker(store)
			recommender := NewRecommendationService(NewCatalog(store), tracker)

			_, err := recommender.Recommend(context.Background(), testSession, 1)
			assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
		})
	}
}
