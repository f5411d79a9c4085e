package domain

import "errors"

// Book store error types
var (
	// ErrStoreUnavailable indicates the document store is unreachable or timed out
	ErrStoreUnavailable = errors.New("document store unavailable")
	// ErrNotFound indicates the requested key or book does not exist
	ErrNotFound = errors.New("not found")
	// ErrMalformedDocument indicates a stored book lacks its heading or paragraphs
	ErrMalformedDocument = errors.New("malformed book document")
	// ErrInvalidRequest indicates an invalid request was made
	ErrInvalidRequest = errors.New("invalid request")
)
