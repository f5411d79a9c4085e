package http

import "bookshelf/internal/domain"

// SearchRequest struct - HTTP query DTO for book search
type SearchRequest struct {
	Author      *string `json:"author" validate:"omitempty,max=200" form:"author" query:"author"`
	Title       *string `json:"title" validate:"omitempty,max=200" form:"title" query:"title"`
	Description *string `json:"description" validate:"omitempty,max=200" form:"description" query:"description"`
}

// Criteria converts the query to domain criteria; blank parameters are dropped
func (r SearchRequest) Criteria() domain.SearchCriteria {
	return domain.NewSearchCriteria(deref(r.Author), deref(r.Title), deref(r.Description))
}

func deref(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
