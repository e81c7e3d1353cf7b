package storage

import (
	"context"
	"errors"
)

// ErrNotFound - ключ отсутствует в хранилище
var ErrNotFound = errors.New("storage: key not found")

// Store определяет контракт персистентного key-value хранилища.
// Set записывает значение целиком одной операцией.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}
