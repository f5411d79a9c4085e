package application

import (
	"context"

	"bookshelf/internal/domain"

	"github.com/sirupsen/logrus"
)

// SearchService struct - Application service filtering the catalog by metadata.
// Every search fetches and parses each book once, a linear scan that only
// suits the small catalogs this site serves.
type SearchService struct {
	catalog *Catalog
}

// NewSearchService func - Creates new search service
func NewSearchService(catalog *Catalog) *SearchService {
	return &SearchService{catalog: catalog}
}

// Search returns the books matching every supplied criterion, ordered by id.
// Empty criteria match the whole parseable catalog.
func (s *SearchService) Search(ctx context.Context, criteria domain.SearchCriteria) ([]domain.Book, error) {
	ids, err := s.catalog.IDs(ctx)
	if err != nil {
		return nil, err
	}

	found := make([]domain.Book, 0)
	for _, id := range ids {
		book, err := s.catalog.Book(ctx, id)
		if err != nil {
			if skippable(err) {
				logrus.Debugf("Skipping book %d in search: %v", id, err)
				continue
			}
			return nil, err
		}
		if criteria.Matches(book.Metadata) {
			found = append(found, book)
		}
	}
	return found, nil
}
