package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/shenikar/field_sync/internal/models"
	"github.com/shenikar/field_sync/internal/storage"
)

// CacheRepository хранит списки E под ключами в формате {updatedAt, data}.
// Refresh - запись из сети с защитой от регресса в пустой список,
// Put и Update - локальные записи без защиты.
type CacheRepository[E any] struct {
	store storage.Store
	mu    sync.Mutex
	now   func() time.Time
}

func NewCacheRepository[E any](store storage.Store) *CacheRepository[E] {
	return &CacheRepository[E]{store: store, now: time.Now}
}

// Get возвращает запись кеша. ok=false, если ключ отсутствует или не читается.
func (r *CacheRepository[E]) Get(ctx context.Context, key string) (entry models.CacheEntry[[]E], ok bool, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.read(ctx, key)
}

// List возвращает данные по ключу или пустой список
func (r *CacheRepository[E]) List(ctx context.Context, key string) ([]E, error) {
	entry, ok, err := r.Get(ctx, key)
	if err != nil || !ok {
		return []E{}, err
	}
	return entry.Data, nil
}

// Refresh записывает свежие данные из сети. Пустой список не перезаписывает непустой,
// неизменившиеся данные не записываются. Возвращает true, если значение записано.
func (r *CacheRepository[E]) Refresh(ctx context.Context, key string, data []E) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if data == nil {
		data = []E{}
	}
	prev, ok, err := r.read(ctx, key)
	if err != nil {
		return false, err
	}
	if ok && len(data) == 0 && len(prev.Data) > 0 {
		return false, nil
	}
	if ok && sameJSON(prev.Data, data) {
		return false, nil
	}
	return true, r.write(ctx, key, data)
}

// Put безусловно записывает данные
func (r *CacheRepository[E]) Put(ctx context.Context, key string, data []E) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.write(ctx, key, data)
}

// Update атомарно применяет fn к списку по ключу. Возвращает true, если значение записано.
func (r *CacheRepository[E]) Update(ctx context.Context, key string, fn func(data []E) ([]E, bool)) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	prev, _, err := r.read(ctx, key)
	if err != nil {
		return false, err
	}
	next, changed := fn(prev.Data)
	if !changed {
		return false, nil
	}
	return true, r.write(ctx, key, next)
}

func (r *CacheRepository[E]) read(ctx context.Context, key string) (models.CacheEntry[[]E], bool, error) {
	var entry models.CacheEntry[[]E]
	raw, err := r.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return entry, false, nil
		}
		return entry, false, fmt.Errorf("repository: could not read cache %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, &entry); err != nil {
		return models.CacheEntry[[]E]{}, false, nil
	}
	return entry, true, nil
}

func (r *CacheRepository[E]) write(ctx context.Context, key string, data []E) error {
	if data == nil {
		data = []E{}
	}
	raw, err := json.Marshal(models.CacheEntry[[]E]{UpdatedAt: r.now().UTC(), Data: data})
	if err != nil {
		return fmt.Errorf("repository: could not marshal cache %s: %w", key, err)
	}
	if err := r.store.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("repository: could not write cache %s: %w", key, err)
	}
	return nil
}

func sameJSON(a, b any) bool {
	ra, err := json.Marshal(a)
	if err != nil {
		return false
	}
	rb, err := json.Marshal(b)
	if err != nil {
		return false
	}
	return bytes.Equal(ra, rb)
}
