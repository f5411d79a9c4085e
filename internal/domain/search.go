package domain

import "strings"

// SearchCriteria struct - optional case-insensitive substring filters
type SearchCriteria struct {
	Author      *string
	Title       *string
	Description *string
}

// NewSearchCriteria builds criteria from raw query values; blank values are treated as absent
func NewSearchCriteria(author, title, description string) SearchCriteria {
	return SearchCriteria{
		Author:      optional(author),
		Title:       optional(title),
		Description: optional(description),
	}
}

func optional(value string) *string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	return &value
}

// IsEmpty reports whether no criterion was supplied
func (c SearchCriteria) IsEmpty() bool {
	return c.Author == nil && c.Title == nil && c.Description == nil
}

// Matches reports whether every supplied criterion is a case-insensitive
// substring of the corresponding metadata field
func (c SearchCriteria) Matches(metadata BookMetadata) bool {
	return contains(metadata.Title, c.Title) &&
		contains(metadata.Author, c.Author) &&
		contains(metadata.Description, c.Description)
}

func contains(field string, criterion *string) bool {
	if criterion == nil {
		return true
	}
	return strings.Contains(strings.ToLower(field), strings.ToLower(*criterion))
}
