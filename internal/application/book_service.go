package application

import (
	"context"
	"fmt"

	"bookshelf/internal/domain"
	"bookshelf/internal/ports/output"

	"github.com/sirupsen/logrus"
)

// BookService struct - Application service behind the book pages
type BookService struct {
	store       output.DocumentStore
	catalog     *Catalog
	tracker     *SessionTracker
	recommender *RecommendationService
}

// NewBookService func - Creates new book service
func NewBookService(store output.DocumentStore, catalog *Catalog, tracker *SessionTracker, recommender *RecommendationService) *BookService {
	return &BookService{
		store:       store,
		catalog:     catalog,
		tracker:     tracker,
		recommender: recommender,
	}
}

// GetBook func - Use case: show a book and what to read next.
// Only books present in the catalog are recorded in the session history.
func (s *BookService) GetBook(ctx context.Context, token domain.SessionToken, id domain.BookID) (*domain.BookView, error) {
	session := s.tracker.ResolveSession(token)

	if err := s.ensureExists(ctx, id); err != nil {
		return nil, err
	}
	raw, err := s.catalog.Raw(ctx, id)
	if err != nil {
		return nil, err
	}

	recommendation, err := s.recommender.Recommend(ctx, session, id)
	if err != nil {
		return nil, err
	}

	view := &domain.BookView{
		SessionID:      session,
		Book:           domain.Book{ID: id},
		Recommendation: *recommendation,
	}
	doc, err := domain.ParseBookDocument(raw)
	if err != nil {
		logrus.Warnf("Book %d does not parse, rendering raw body: %v", id, err)
		view.Book.Metadata.Title = fmt.Sprintf("Book %d", id)
		view.Body = domain.ExtractBody(raw)
		return view, nil
	}
	view.Book.Metadata = doc.Metadata
	view.Body = doc.Body
	return view, nil
}

// Recommend func - Use case: recommendations alone, for API clients
func (s *BookService) Recommend(ctx context.Context, token domain.SessionToken, id domain.BookID) (domain.SessionID, *domain.Recommendation, error) {
	session := s.tracker.ResolveSession(token)
	if err := s.ensureExists(ctx, id); err != nil {
		return session, nil, err
	}
	recommendation, err := s.recommender.Recommend(ctx, session, id)
	if err != nil {
		return session, nil, err
	}
	return session, recommendation, nil
}

// ListBooks func - Use case: every parseable book, ordered by id
func (s *BookService) ListBooks(ctx context.Context) ([]domain.Book, error) {
	ids, err := s.catalog.IDs(ctx)
	if err != nil {
		return nil, err
	}
	books := make([]domain.Book, 0, len(ids))
	for _, id := range ids {
		book, err := s.catalog.Book(ctx, id)
		if err != nil {
			if skippable(err) {
				continue
			}
			return nil, err
		}
		books = append(books, book)
	}
	return books, nil
}

// Ping func - checks the document store
func (s *BookService) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}

func (s *BookService) ensureExists(ctx context.Context, id domain.BookID) error {
	exists, err := s.catalog.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("book %d: %w", id, domain.ErrNotFound)
	}
	return nil
}
