package application

import (
	"context"
	"fmt"
	"testing"

	"bookshelf/internal/adapters/output/memory"
	"bookshelf/internal/domain"

	"github.com/stretchr/testify/require"
)

const testSession = domain.SessionID("6f1c0f0e-5e43-4a8e-9d57-2a5d0d4d1f3a")

type testBook struct {
	id          domain.BookID
	title       string
	author      string
	description string
}

func bookDocument(b testBook) string {
	return fmt.Sprintf("<html><body><h2>%s</h2><p>%s</p><p>%s</p></body></html>", b.title, b.author, b.description)
}

func seedBooks(t *testing.T, store *memory.MemoryDocumentStore, books ...testBook) {
	t.Helper()
	for _, b := range books {
		require.NoError(t, store.Set(context.Background(), domain.BookKey(b.id), bookDocument(b)))
	}
}

var (
	dune       = testBook{id: 1, title: "Dune", author: "Frank Herbert", description: "Spice on Arrakis."}
	foundation = testBook{id: 2, title: "Foundation", author: "Isaac Asimov", description: "Psychohistory and the fall of the Galactic Empire."}
	leftHand   = testBook{id: 3, title: "The Left Hand of Darkness", author: "Ursula K. Le Guin", description: "An envoy on the planet Winter."}
)

// failingStore wraps the memory store and fails the operations listed in failOn
type failingStore struct {
	*memory.MemoryDocumentStore
	failOn map[string]bool
}

func newFailingStore(ops ...string) *failingStore {
	failOn := make(map[string]bool, len(ops))
	for _, op := range ops {
		failOn[op] = true
	}
	return &failingStore{MemoryDocumentStore: memory.NewMemoryDocumentStore(), failOn: failOn}
}

func (f *failingStore) err(op string) error {
	return fmt.Errorf("%w: %s refused", domain.ErrStoreUnavailable, op)
}

func (f *failingStore) Get(ctx context.Context, key string) (string, error) {
	if f.failOn["get"] {
		return "", f.err("get")
	}
	return f.MemoryDocumentStore.Get(ctx, key)
}

func (f *failingStore) Keys(ctx context.Context, prefix string) ([]string, error) {
	if f.failOn["keys"] {
		return nil, f.err("keys")
	}
	return f.MemoryDocumentStore.Keys(ctx, prefix)
}

func (f *failingStore) AppendUnique(ctx context.Context, key, value string) (bool, error) {
	if f.failOn["append"] {
		return false, f.err("append")
	}
	return f.MemoryDocumentStore.AppendUnique(ctx, key, value)
}

func (f *failingStore) Range(ctx context.Context, key string) ([]string, error) {
	if f.failOn["range"] {
		return nil, f.err("range")
	}
	return f.MemoryDocumentStore.Range(ctx, key)
}

func linkIDs(links []domain.BookLink) []domain.BookID {
	ids := make([]domain.BookID, 0, len(links))
	for _, link := range links {
		ids = append(ids, link.ID)
	}
	return ids
}

func bookIDs(books []domain.Book) []domain.BookID {
	ids := make([]domain.BookID, 0, len(books))
	for _, book := range books {
		ids = append(ids, book.ID)
	}
	return ids
}
