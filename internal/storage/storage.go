// Package storage is the server-side stand-in for the browser's per-origin
// local storage: a flat set of keys, each holding one raw JSON value.
package storage

// KV holds one raw JSON value per key. Implementations must tolerate keys
// that were never written; a missing key is not an error.
type KV interface {
	// Get returns the raw value stored under key and whether it was present.
	Get(key string) ([]byte, bool, error)
	// Set replaces the value stored under key.
	Set(key string, value []byte) error
	// Delete removes the key. Deleting an absent key is a no-op.
	Delete(key string) error
}
