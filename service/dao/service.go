package dao

import (
	"context"
)

// Service abstracts persistence for a keyed entity type so that the audit
// trail can later move from memory to a durable backend without changing
// callers.
type Service[K comparable, T any] interface {
	Save(ctx context.Context, t *T) error

	Load(ctx context.Context, id K) (*T, error)

	Delete(ctx context.Context, id K) error

	List(ctx context.Context) ([]*T, error)
}
