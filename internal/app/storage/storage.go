/*
Package storage provides the durable key-value store used to mirror the client session across restarts.

This file defines the Store port consumed by the session store, plus the two key names the
client persists. The session layer treats storage as a mirror of its in-memory state, never
as a second source of truth.
*/
package storage

const (
	// TokenKey is the storage key holding the opaque bearer credential.
	TokenKey = "token"

	// UserKey is the storage key holding the JSON-serialized user record.
	UserKey = "user"
)

// Store is the durable key-value port. Implementations must tolerate
// concurrent writers from other processes (last write wins, no locking).
type Store interface {
	// Read returns the value for key and whether it was present.
	Read(key string) (string, bool)

	// Write persists the value for key, replacing any previous value.
	Write(key, value string) error

	// Delete removes the value for key. Deleting an absent key is not an error.
	Delete(key string) error
}
