// Package kv provides the durable client-side key-value storage backing the
// session store. One key holds one opaque serialized record.
package kv

import "context"

type Repository interface {
	// Get returns the stored value, or (nil, nil) when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
