package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// BookKeyPrefix namespaces book documents in the store
const BookKeyPrefix = "book"

// BookID identifies a book; always positive
type BookID int

// BookKey returns the store key of a book, e.g. "book3"
func BookKey(id BookID) string {
	return BookKeyPrefix + strconv.Itoa(int(id))
}

// ParseBookKey extracts the book id from a store key.
// Keys that are not "book" followed by a positive integer are rejected.
func ParseBookKey(key string) (BookID, bool) {
	if !strings.HasPrefix(key, BookKeyPrefix) {
		return 0, false
	}
	return ParseBookID(strings.TrimPrefix(key, BookKeyPrefix))
}

// ParseBookID parses a positive decimal book id in canonical form (no sign, no leading zeros)
func ParseBookID(raw string) (BookID, bool) {
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 || strconv.Itoa(n) != raw {
		return 0, false
	}
	return BookID(n), true
}

// Link returns the public path of the book page
func (id BookID) Link() string {
	return fmt.Sprintf("/books/%d", id)
}

// BookMetadata struct - fields extracted from a stored book document
type BookMetadata struct {
	Title       string
	Author      string
	Description string
}

// Book struct - a catalog entry with its parsed metadata
type Book struct {
	ID       BookID
	Metadata BookMetadata
}

// BookView struct - everything the book page needs
type BookView struct {
	SessionID      SessionID
	Book           Book
	Body           string
	Recommendation Recommendation
}
