// Package storage is the agent's rendition of extension local storage: a
// narrow key-value surface shared by the background worker and the popup.
package storage

import "context"

// persisted keys. auth keys are owned by the worker's session, settings are
// seeded once at install time.
const (
	KeyAuthToken      = "auth_token"
	KeyUserData       = "user_data"
	KeyLoginTimestamp = "login_timestamp"
	KeySettings       = "settings"
)

// Store is the narrow interface session state is backed by. Implementations
// must be safe for concurrent use, multiple contexts read and write it
// without coordination.
type Store interface {
	// Get returns the stored value and whether the key was present.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string) error
	Remove(ctx context.Context, keys ...string) error
	// Clear drops every key, not just the auth ones.
	Clear(ctx context.Context) error
}
