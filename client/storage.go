// Package client holds the client-state utilities: the legacy storage
// migration, the one-time session notice flag and the virtual keyboard
// viewport guard. All of them work against injected abstractions so the
// backing browser state can be faked in tests.
package client

import "errors"

var ErrKeyNotFound = errors.New("client: key not found")

// Storage is a flat string key-value store, the shape of browser
// local/session storage.
type Storage interface {
	// Get returns ErrKeyNotFound when the key is absent.
	Get(key string) (string, error)

	Set(key string, value string) error

	// Delete of an absent key is a no-op.
	Delete(key string) error
}
