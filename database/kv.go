// Package database provides the key-value store the service persists into.
// The store is injected into repositories; nothing in the process reaches it
// through a global.
package database

import (
	"context"
	"errors"

	"voyago/config"
)

// ErrKeyNotFound is returned by Get when the key is absent.
var ErrKeyNotFound = errors.New("key not found")

// Store is the key-value contract every backend implements. Values are
// opaque JSON documents; prefix scans back the secondary indexes.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	// GetByPrefix returns the values of every key starting with prefix.
	GetByPrefix(ctx context.Context, prefix string) ([][]byte, error)
	// KeysByPrefix returns the matching keys themselves, for index scans.
	KeysByPrefix(ctx context.Context, prefix string) ([]string, error)
	Close(ctx context.Context) error
}

// NewStore builds the store backend selected by configuration.
func NewStore(ctx context.Context) (Store, error) {
	switch config.AppConfig.KVBackend {
	case "mongo":
		return NewMongoStore(ctx)
	default:
		return NewRedisStore(ctx)
	}
}
