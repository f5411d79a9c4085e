package application

import (
	"context"

	"bookshelf/internal/domain"

	"github.com/sirupsen/logrus"
)

// RecommendationService struct - Application service partitioning the catalog
// into unread suggestions and books the visitor can read again
type RecommendationService struct {
	catalog *Catalog
	tracker *SessionTracker
}

// NewRecommendationService func - Creates new recommendation service
func NewRecommendationService(catalog *Catalog, tracker *SessionTracker) *RecommendationService {
	return &RecommendationService{
		catalog: catalog,
		tracker: tracker,
	}
}

// Recommend records current as read, then walks the catalog in ascending id
// order. Books outside the history become suggestions, books inside it
// rereads; current itself is never listed. A book that vanished or does not
// parse is skipped, store failures abort.
func (s *RecommendationService) Recommend(ctx context.Context, session domain.SessionID, current domain.BookID) (*domain.Recommendation, error) {
	if err := s.tracker.RecordRead(ctx, session, current); err != nil {
		return nil, err
	}

	history, err := s.tracker.GetHistory(ctx, session)
	if err != nil {
		return nil, err
	}
	read := make(map[domain.BookID]struct{}, len(history))
	for _, id := range history {
		read[id] = struct{}{}
	}

	ids, err := s.catalog.IDs(ctx)
	if err != nil {
		return nil, err
	}

	result := domain.NewRecommendation()
	for _, id := range ids {
		if id == current {
			continue
		}
		book, err := s.catalog.Book(ctx, id)
		if err != nil {
			if skippable(err) {
				logrus.Debugf("Skipping book %d in recommendations: %v", id, err)
				continue
			}
			return nil, err
		}
		link := domain.NewBookLink(book)
		if _, ok := read[id]; ok {
			result.Rereads = append(result.Rereads, link)
		} else {
			result.Suggestions = append(result.Suggestions, link)
		}
	}
	return &result, nil
}
