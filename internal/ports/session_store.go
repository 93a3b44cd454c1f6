package ports

import "context"

// SessionStore is named-slot key/value storage scoped to one terminal session.
// Get returns domain.ErrSessionKeyNotFound (wrapped) for a missing key.
type SessionStore interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}
