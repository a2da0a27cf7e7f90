// Package kv defines the scoped key-value persistence used for per-session
// storefront state. Persistence here is best-effort: callers treat a read
// failure as an empty value and a write failure as non-fatal.
package kv

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a key has no value.
var ErrNotFound = errors.New("kv: key not found")

// Store is the minimal key-value contract. Values are opaque bytes; TTL of
// zero means no expiry.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
