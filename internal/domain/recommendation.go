package domain

// BookLink struct - a renderable reference to a book
type BookLink struct {
	ID    BookID `json:"id"`
	Title string `json:"title"`
	Link  string `json:"link"`
}

// NewBookLink builds the link entry of a parsed book
func NewBookLink(book Book) BookLink {
	return BookLink{
		ID:    book.ID,
		Title: book.Metadata.Title,
		Link:  book.ID.Link(),
	}
}

// Recommendation struct - unread suggestions and books to revisit
type Recommendation struct {
	Suggestions []BookLink `json:"suggestions"`
	Rereads     []BookLink `json:"rereads"`
}

// NewRecommendation returns a recommendation with empty, non-nil lists
func NewRecommendation() Recommendation {
	return Recommendation{
		Suggestions: make([]BookLink, 0),
		Rereads:     make([]BookLink, 0),
	}
}
