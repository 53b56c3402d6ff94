package ports

import "context"

// KVStore is a durable string-keyed store. Get returns domain.ErrKeyNotFound
// for missing keys.
type KVStore interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}

// StateStore persists JSON-encodable values and never surfaces backend
// failures; each call reports only whether it succeeded.
type StateStore interface {
	Load(ctx context.Context, key string, dst any) bool
	Save(ctx context.Context, key string, value any) bool
	Remove(ctx context.Context, key string) bool
}
