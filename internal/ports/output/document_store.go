package output

import "context"

// DocumentStore interface - Output port
// Defines what the application needs from the key-value backend holding
// book documents and per-session read histories. Implementations must be
// safe for concurrent use and bound every round-trip by their configured
// timeout, failing with domain.ErrStoreUnavailable instead of hanging.
type DocumentStore interface {
	// Exists reports whether a key is present.
	Exists(ctx context.Context, key string) (bool, error)

	// Get returns the value stored at key, or domain.ErrNotFound.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value at key, overwriting any previous value.
	Set(ctx context.Context, key, value string) error

	// Keys lists every key starting with prefix, in no particular order.
	Keys(ctx context.Context, prefix string) ([]string, error)

	// AppendUnique appends value to the list at key unless the list already
	// contains it. The check and the append happen atomically, so concurrent
	// calls with the same value produce a single entry.
	// Returns true when the value was appended.
	AppendUnique(ctx context.Context, key, value string) (bool, error)

	// Range returns the whole list at key in insertion order.
	// A missing list yields an empty slice.
	Range(ctx context.Context, key string) ([]string, error)

	// Ping checks that the backend is reachable.
	Ping(ctx context.Context) error
}
