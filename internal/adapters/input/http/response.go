package http

import (
	"net/http"

	"bookshelf/internal/domain"
)

var (
	// Success response
	Success = Status{Code: http.StatusOK, Message: []string{"Success"}}
	// BadRequest response
	BadRequest = Status{Code: http.StatusBadRequest, Message: []string{"Sorry, Not responding because of incorrect syntax"}}
	// NotFound response
	NotFound = Status{Code: http.StatusNotFound, Message: []string{"Not Found"}}
	// InternalServerError response
	InternalServerError = Status{Code: http.StatusInternalServerError, Message: []string{"Internal Server Error"}}
	// ServiceUnavailable response
	ServiceUnavailable = Status{Code: http.StatusServiceUnavailable, Message: []string{"Sorry, the book store is unavailable. Please try again"}}
)

// ResponseBody struct - Generic HTTP response wrapper
type ResponseBody struct {
	Status Status      `json:"status,omitempty"`
	Data   interface{} `json:"data,omitempty"`
}

// Status struct
type Status struct {
	Code    int      `json:"code,omitempty"`
	Message []string `json:"message,omitempty"`
}

type (
	// BookResponse struct - HTTP response DTO for a search hit
	BookResponse struct {
		ID          domain.BookID `json:"id"`
		Title       string        `json:"title"`
		Author      string        `json:"author"`
		Description string        `json:"description"`
		Link        string        `json:"link"`
	}

	// SearchResponse struct - HTTP response DTO for a search
	SearchResponse struct {
		Books []BookResponse `json:"books"`
		Total int            `json:"total"`
	}

	// RecommendationResponse struct - HTTP response DTO for recommendations
	RecommendationResponse struct {
		BookID      domain.BookID     `json:"book_id"`
		Suggestions []domain.BookLink `json:"suggestions"`
		Rereads     []domain.BookLink `json:"rereads"`
	}
)

func newBookResponse(book domain.Book) BookResponse {
	return BookResponse{
		ID:          book.ID,
		Title:       book.Metadata.Title,
		Author:      book.Metadata.Author,
		Description: book.Metadata.Description,
		Link:        book.ID.Link(),
	}
}
