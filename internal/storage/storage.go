package storage

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by Get when no document exists under the key.
var ErrKeyNotFound = errors.New("storage: key not found")

// UpdateFunc transforms the current value of a key. old is nil when the key
// does not exist yet. Returning nil deletes the key. Returning an error aborts
// the update and leaves the stored value untouched.
type UpdateFunc func(old []byte) ([]byte, error)

// Store persists opaque JSON documents under string keys. One key holds one
// collection (the registered account list, a user's order history) or one
// record (the current session). Update must apply the read-modify-write as a
// single atomic step per key, so concurrent writers cannot lose updates.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Update(ctx context.Context, key string, fn UpdateFunc) error
	Close() error
}
