package out

import "context"

// KVStore is the persistent string store that survives restarts, the
// terminal counterpart of browser localStorage.
type KVStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	// SetMany writes all entries or none.
	SetMany(ctx context.Context, entries map[string]string) error
	// Delete removes keys; missing keys are not an error.
	Delete(ctx context.Context, keys ...string) error
}

// EntryNavigator moves the host to the unauthenticated entry point after a
// sign-out.
type EntryNavigator interface {
	ToEntry(ctx context.Context) error
}
