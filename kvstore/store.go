package kvstore

import (
	"context"
	"errors"
)

// ErrNotFound is returned by [Store.Get] when no value exists for a key.
// Callers must treat it as "absent", never as a storage fault.
var ErrNotFound = errors.New("key not found")

// Store is the external persistence collaborator. Writes are assumed
// all-or-nothing from the caller's perspective; implementations must not
// leave a key holding a partially written value.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
