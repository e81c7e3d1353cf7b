package engine

import (
	"context"
	"errors"
	"reflect"

	"github.com/shenikar/field_sync/internal/models"
	"github.com/sirupsen/logrus"
)

// complete удаляет отправленную операцию. Если create получил серверный id,
// операции update, ссылавшиеся на временный id, переписываются на него в той же записи очереди.
func (e *Engine) complete(ctx context.Context, action models.QueuedAction, tempID, serverID int64, log *logrus.Entry) {
	var rewritten int
	queue, err := e.queue.Mutate(ctx, func(q []models.QueuedAction) ([]models.QueuedAction, bool, error) {
		out := make([]models.QueuedAction, 0, len(q))
		for _, a := range q {
			if a.ID == action.ID {
				continue
			}
			if tempID < 0 && a.Kind == models.ActionUpdate && a.Payload.ID == tempID {
				a.Payload.ID = serverID
				rewritten++
			}
			out = append(out, a)
		}
		return out, true, nil
	})
	if err != nil {
		// Запись уже создана на сервере: следующий проход отправит ее повторно
		log.WithError(err).Error("Failed to remove synced action from queue")
		return
	}

	log.WithField("rewritten_updates", rewritten).Info("Action synced")
	e.notifier.PublishQueue(queue)
	e.publish(ctx, models.SyncEvent{
		Type:     models.EventActionSynced,
		ActionID: action.ID,
		Kind:     action.Kind,
		TempID:   tempID,
		ServerID: serverID,
		Retries:  action.Retries,
	}, log)
}

// recordFailure увеличивает retries операции. Прогресс обогащения сохраняется,
// только если нагрузку не изменили во время попытки.
func (e *Engine) recordFailure(ctx context.Context, action models.QueuedAction, progress models.Occurrence, syncErr *models.SyncError) {
	log := e.logger.WithFields(logrus.Fields{
		"component": "engine",
		"action_id": action.ID,
		"type":      action.Kind,
		"code":      models.ErrorCode(syncErr),
	})

	retries := action.Retries
	queue, err := e.queue.Mutate(ctx, func(q []models.QueuedAction) ([]models.QueuedAction, bool, error) {
		for i := range q {
			if q[i].ID != action.ID {
				continue
			}
			q[i].Retries++
			retries = q[i].Retries
			if reflect.DeepEqual(q[i].Payload, action.Payload) {
				q[i].Payload = progress
			}
			return q, true, nil
		}
		return q, false, nil
	})
	if err != nil {
		log.WithError(err).Error("Failed to record failed attempt")
		return
	}

	entry := log.WithError(syncErr).WithField("retries", retries)
	if errors.Is(syncErr, models.ErrServerRejection) {
		entry.Error("Server rejected action, keeping it for review")
	} else {
		entry.Warn("Action not synced, will retry")
	}

	e.notifier.PublishQueue(queue)
	e.publish(ctx, models.SyncEvent{
		Type:     models.EventActionFailed,
		ActionID: action.ID,
		Kind:     action.Kind,
		TempID:   action.Payload.ID,
		Retries:  retries,
		Code:     models.ErrorCode(syncErr),
		Error:    syncErr.Error(),
	}, log)
}

func (e *Engine) publish(ctx context.Context, event models.SyncEvent, log *logrus.Entry) {
	if e.events == nil {
		return
	}
	event.Timestamp = e.now().UTC()
	if err := e.events.Publish(ctx, event); err != nil {
		log.WithError(err).Warn("Failed to publish sync event")
	}
}
