package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/shenikar/field_sync/internal/models"
	"github.com/shenikar/field_sync/internal/storage"
)

const (
	// QueueKey - ключ персистентной очереди
	QueueKey = "offline_queue_v1"
	// corruptQueueKey - сюда копируется нечитаемое значение очереди перед перезаписью
	corruptQueueKey = QueueKey + ".corrupt"
)

// QueueRepository хранит всю очередь одним значением.
// Чтение-изменение-запись выполняется под мьютексом.
type QueueRepository struct {
	store storage.Store
	mu    sync.Mutex
}

func NewQueueRepository(store storage.Store) *QueueRepository {
	return &QueueRepository{store: store}
}

// List возвращает копию очереди в порядке FIFO
func (r *QueueRepository) List(ctx context.Context) ([]models.QueuedAction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.read(ctx)
}

// Get возвращает операцию по id
func (r *QueueRepository) Get(ctx context.Context, id string) (*models.QueuedAction, error) {
	queue, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range queue {
		if queue[i].ID == id {
			return &queue[i], nil
		}
	}
	return nil, models.ErrActionNotFound
}

// Mutate атомарно применяет fn к очереди. Если fn вернула changed=false, запись не выполняется.
// Возвращает очередь после изменения.
func (r *QueueRepository) Mutate(ctx context.Context, fn func(queue []models.QueuedAction) ([]models.QueuedAction, bool, error)) ([]models.QueuedAction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	queue, err := r.read(ctx)
	if err != nil {
		return nil, err
	}

	next, changed, err := fn(queue)
	if err != nil {
		return nil, err
	}
	if !changed {
		return queue, nil
	}

	if err := r.write(ctx, next); err != nil {
		return nil, err
	}
	return next, nil
}

func (r *QueueRepository) read(ctx context.Context) ([]models.QueuedAction, error) {
	raw, err := r.store.Get(ctx, QueueKey)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return []models.QueuedAction{}, nil
		}
		return nil, fmt.Errorf("repository: could not read queue: %w", err)
	}

	var queue []models.QueuedAction
	if err := json.Unmarshal(raw, &queue); err != nil {
		// нечитаемая очередь не должна блокировать новые записи
		if err := r.store.Set(ctx, corruptQueueKey, raw); err != nil {
			return nil, fmt.Errorf("repository: could not back up corrupt queue: %w", err)
		}
		return []models.QueuedAction{}, nil
	}
	if queue == nil {
		queue = []models.QueuedAction{}
	}
	return queue, nil
}

func (r *QueueRepository) write(ctx context.Context, queue []models.QueuedAction) error {
	if queue == nil {
		queue = []models.QueuedAction{}
	}
	raw, err := json.Marshal(queue)
	if err != nil {
		return fmt.Errorf("repository: could not marshal queue: %w", err)
	}
	if err := r.store.Set(ctx, QueueKey, raw); err != nil {
		return fmt.Errorf("repository: could not write queue: %w", err)
	}
	return nil
}
