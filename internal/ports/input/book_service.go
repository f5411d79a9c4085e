package input

import (
	"context"

	"bookshelf/internal/domain"
)

// BookService interface - Input port (use case)
// Defines what the book site can do for a visitor
type BookService interface {
	// GetBook resolves the visitor session, records the read and returns the
	// book with its recommendations. Returns domain.ErrNotFound for unknown books.
	GetBook(ctx context.Context, token domain.SessionToken, id domain.BookID) (*domain.BookView, error)
	// Recommend resolves the visitor session and returns recommendations
	// for the book being viewed.
	Recommend(ctx context.Context, token domain.SessionToken, id domain.BookID) (domain.SessionID, *domain.Recommendation, error)
	// ListBooks returns every parseable book in the catalog
	ListBooks(ctx context.Context) ([]domain.Book, error)
}

// SearchService interface - Input port (use case)
type SearchService interface {
	// Search returns the catalog books matching every supplied criterion
	Search(ctx context.Context, criteria domain.SearchCriteria) ([]domain.Book, error)
}

// HealthChecker interface - Input port
type HealthChecker interface {
	Ping(ctx context.Context) error
}
