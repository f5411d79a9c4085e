package application

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"bookshelf/internal/domain"
	"bookshelf/internal/ports/output"
)

// Catalog reads book documents straight from the store. It holds no
// snapshot: every call sees the books currently present.
type Catalog struct {
	store output.DocumentStore
}

// NewCatalog func - Creates a catalog view over the document store
func NewCatalog(store output.DocumentStore) *Catalog {
	return &Catalog{store: store}
}

// IDs returns the ids of every book in the store in ascending order
func (c *Catalog) IDs(ctx context.Context) ([]domain.BookID, error) {
	keys, err := c.store.Keys(ctx, domain.BookKeyPrefix)
	if err != nil {
		return nil, fmt.Errorf("list catalog: %w", err)
	}
	ids := make([]domain.BookID, 0, len(keys))
	for _, key := range keys {
		if id, ok := domain.ParseBookKey(key); ok {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

// Exists reports whether a book is in the catalog
func (c *Catalog) Exists(ctx context.Context, id domain.BookID) (bool, error) {
	return c.store.Exists(ctx, domain.BookKey(id))
}

// Raw returns the stored document of a book
func (c *Catalog) Raw(ctx context.Context, id domain.BookID) (string, error) {
	return c.store.Get(ctx, domain.BookKey(id))
}

// Book fetches and parses one book. A vanished book yields domain.ErrNotFound
// and an unparseable one domain.ErrMalformedDocument.
func (c *Catalog) Book(ctx context.Context, id domain.BookID) (domain.Book, error) {
	raw, err := c.Raw(ctx, id)
	if err != nil {
		return domain.Book{}, err
	}
	doc, err := domain.ParseBookDocument(raw)
	if err != nil {
		return domain.Book{}, fmt.Errorf("book %d: %w", id, err)
	}
	return domain.Book{ID: id, Metadata: doc.Metadata}, nil
}

// skippable reports whether a per-book failure should drop the entry
// rather than abort the whole pass
func skippable(err error) bool {
	return errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrMalformedDocument)
}
