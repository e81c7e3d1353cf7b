package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/field_sync/internal/models"
	"github.com/sirupsen/logrus"
)

type queueService struct {
	queue    ActionQueue
	cache    OccurrenceCache
	notifier Notifier
	names    NameResolver
	trigger  DrainTrigger
	validate *validator.Validate
	logger   *logrus.Logger
	now      func() time.Time

	tempMu     sync.Mutex
	lastTempID int64
}

func NewQueueService(queue ActionQueue, cache OccurrenceCache, notifier Notifier, names NameResolver, trigger DrainTrigger, logger *logrus.Logger) QueueService {
	return &queueService{
		queue:    queue,
		cache:    cache,
		notifier: notifier,
		names:    names,
		trigger:  trigger,
		validate: newValidator(),
		logger:   logger,
		now:      time.Now,
	}
}

// Enqueue проверяет и записывает операцию в конец очереди.
// Для create синтезирует временный отрицательный id и кладет временную запись в кеши.
func (s *queueService) Enqueue(ctx context.Context, kind models.ActionKind, payload models.Occurrence) (string, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "queue",
		"method":  "Enqueue",
		"type":    kind,
	})

	if err := validatePayload(s.validate, kind, payload); err != nil {
		log.WithError(err).Warn("Rejected action with invalid payload")
		return "", err
	}

	now := s.now()
	action := models.QueuedAction{
		ID:        fmt.Sprintf("offline_%d_%s", now.UnixMilli(), uuid.NewString()[:8]),
		Kind:      kind,
		Payload:   payload.Clone(),
		CreatedAt: now.UTC(),
		Summary:   buildSummary(ctx, s.names, kind, payload),
	}

	queue, err := s.queue.Mutate(ctx, func(q []models.QueuedAction) ([]models.QueuedAction, bool, error) {
		if kind == models.ActionCreate {
			action.Payload.ID = s.nextTempID(now, q)
		}
		return append(q, action), true, nil
	})
	if err != nil {
		log.WithError(err).Error("Failed to write action to queue")
		return "", fmt.Errorf("service: could not enqueue action: %w", err)
	}

	if kind == models.ActionCreate {
		tmp := models.NewTemporary(action.Payload, action.Payload.ID, now)
		if err := s.cache.InsertTemporary(ctx, tmp); err != nil {
			log.WithError(err).Error("Failed to write temporary occurrence to cache, rolling back")
			s.rollbackEnqueue(ctx, action, log)
			return "", fmt.Errorf("service: could not write temporary occurrence: %w", err)
		}
	}

	log.WithFields(logrus.Fields{"action_id": action.ID, "target_id": action.TargetID()}).Info("Action enqueued")
	s.notifier.PublishQueue(queue)
	s.trigger.TriggerDrain()
	return action.ID, nil
}

// rollbackEnqueue убирает только что добавленную операцию и ее частично записанную временную запись
func (s *queueService) rollbackEnqueue(ctx context.Context, action models.QueuedAction, log *logrus.Entry) {
	_, err := s.queue.Mutate(ctx, func(q []models.QueuedAction) ([]models.QueuedAction, bool, error) {
		for i := range q {
			if q[i].ID == action.ID {
				return append(q[:i:i], q[i+1:]...), true, nil
			}
		}
		return q, false, nil
	})
	if err != nil {
		log.WithError(err).Error("Failed to roll back enqueued action")
	}
	if err := s.cache.RemoveTemporary(ctx, action.Payload.ID, action.Payload.OwnerID()); err != nil {
		log.WithError(err).Warn("Failed to clean up temporary occurrence")
	}
}

// List возвращает очередь в порядке FIFO
func (s *queueService) List(ctx context.Context) ([]models.QueuedAction, error) {
	queue, err := s.queue.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not list queue: %w", err)
	}
	return queue, nil
}

func (s *queueService) Get(ctx context.Context, id string) (*models.QueuedAction, error) {
	action, err := s.queue.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get action %s: %w", id, err)
	}
	return action, nil
}

// Len возвращает число операций в очереди
func (s *queueService) Len(ctx context.Context) (int, error) {
	queue, err := s.List(ctx)
	if err != nil {
		return 0, err
	}
	return len(queue), nil
}

// Remove удаляет операцию. Для create удаляет и временную запись из кешей.
func (s *queueService) Remove(ctx context.Context, id string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "queue",
		"method":    "Remove",
		"action_id": id,
	})

	var removed models.QueuedAction
	queue, err := s.queue.Mutate(ctx, func(q []models.QueuedAction) ([]models.QueuedAction, bool, error) {
		out := make([]models.QueuedAction, 0, len(q))
		found := false
		for _, a := range q {
			if a.ID == id {
				removed = a
				found = true
				continue
			}
			out = append(out, a)
		}
		if !found {
			return nil, false, models.ErrActionNotFound
		}
		return out, true, nil
	})
	if err != nil {
		log.WithError(err).Warn("Failed to remove action")
		return fmt.Errorf("service: could not remove action %s: %w", id, err)
	}

	if removed.Kind == models.ActionCreate && removed.Payload.IsTemporary() {
		if err := s.cache.RemoveTemporary(ctx, removed.Payload.ID, removed.Payload.OwnerID()); err != nil {
			log.WithError(err).Warn("Failed to remove temporary occurrence from cache")
		}
	}

	log.Info("Action removed")
	s.notifier.PublishQueue(queue)
	s.trigger.TriggerDrain()
	return nil
}

// Update заменяет полезную нагрузку операции, сбрасывает retries и пересчитывает описание.
// Id целевой записи сохраняется, если в новой нагрузке он не задан.
func (s *queueService) Update(ctx context.Context, id string, payload models.Occurrence) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "queue",
		"method":    "Update",
		"action_id": id,
	})

	var (
		updated   models.QueuedAction
		prevOwner int64
	)
	queue, err := s.queue.Mutate(ctx, func(q []models.QueuedAction) ([]models.QueuedAction, bool, error) {
		for i := range q {
			if q[i].ID != id {
				continue
			}
			prevOwner = q[i].Payload.OwnerID()
			next := payload.Clone()
			if next.ID == 0 || q[i].Kind == models.ActionCreate {
				next.ID = q[i].Payload.ID
			}
			if err := validatePayload(s.validate, q[i].Kind, next); err != nil {
				return nil, false, err
			}
			q[i].Payload = next
			q[i].Retries = 0
			q[i].Summary = buildSummary(ctx, s.names, q[i].Kind, next)
			updated = q[i]
			return q, true, nil
		}
		return nil, false, models.ErrActionNotFound
	})
	if err != nil {
		log.WithError(err).Warn("Failed to update action")
		return fmt.Errorf("service: could not update action %s: %w", id, err)
	}

	if updated.Kind == models.ActionCreate && updated.Payload.IsTemporary() {
		tmp := models.NewTemporary(updated.Payload, updated.Payload.ID, updated.CreatedAt)
		if err := s.refreshTemporary(ctx, tmp, prevOwner); err != nil {
			log.WithError(err).Warn("Failed to refresh temporary occurrence in cache")
		}
	}

	log.Info("Action updated")
	s.notifier.PublishQueue(queue)
	s.trigger.TriggerDrain()
	return nil
}

// refreshTemporary обновляет временную запись в кешах. При смене владельца запись
// переносится из кеша прежнего владельца в кеш нового.
func (s *queueService) refreshTemporary(ctx context.Context, tmp models.Occurrence, prevOwner int64) error {
	if tmp.OwnerID() == prevOwner {
		return s.cache.Reconcile(ctx, tmp.ID, tmp.Number, prevOwner, tmp)
	}
	if err := s.cache.RemoveTemporary(ctx, tmp.ID, prevOwner); err != nil {
		return err
	}
	return s.cache.InsertTemporary(ctx, tmp)
}

// SubscribeQueue подписывает на изменения очереди, первым значением приходит текущая очередь
func (s *queueService) SubscribeQueue(ctx context.Context) (<-chan []models.QueuedAction, func(), error) {
	queue, err := s.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	ch, unsubscribe := s.notifier.SubscribeQueue(queue)
	return ch, unsubscribe, nil
}

// SubscribeProcessing подписывает на признак фоновой синхронизации
func (s *queueService) SubscribeProcessing() (<-chan bool, func()) {
	return s.notifier.SubscribeProcessing()
}

// Occurrences возвращает кеш ocorrências пользователя или общий кеш при userID == 0
func (s *queueService) Occurrences(ctx context.Context, userID int64) ([]models.Occurrence, error) {
	list, err := s.cache.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service: could not list cached occurrences: %w", err)
	}
	return list, nil
}

// nextTempID возвращает -now в миллисекундах, строго убывающий и не занятый в очереди
func (s *queueService) nextTempID(now time.Time, queue []models.QueuedAction) int64 {
	s.tempMu.Lock()
	defer s.tempMu.Unlock()

	id := -now.UnixMilli()
	if s.lastTempID != 0 && id >= s.lastTempID {
		id = s.lastTempID - 1
	}
	for taken(queue, id) {
		id--
	}
	s.lastTempID = id
	return id
}

func taken(queue []models.QueuedAction, id int64) bool {
	for _, a := range queue {
		if a.Payload.ID == id {
			return true
		}
	}
	return false
}
