// Package store holds the client-side state containers: the shopping cart
// and the auth session. Both persist across runs through an injected
// Persistence adapter, mirroring how the web storefront keeps the same state
// in browser local storage.
package store

import "errors"

// ErrNotFound is returned when no value has been saved under a name.
var ErrNotFound = errors.New("store: value not found")

// Persistence is the adapter a state container saves through. Values are
// opaque serialized blobs keyed by name.
type Persistence interface {
	Load(name string) ([]byte, error)
	Save(name string, data []byte) error
	Delete(name string) error
}
