package repository

import "context"

// KVStore is a flat string-keyed store, the persistence surface behind
// category state. A missing key is reported through ok, not an error.
type KVStore interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	Set(ctx context.Context, key, value string) error

	Delete(ctx context.Context, key string) error
}
