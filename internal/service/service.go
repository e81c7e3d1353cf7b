package service

import (
	"context"
	"encoding/json"

	"github.com/shenikar/field_sync/internal/models"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

// ActionQueue определяет контракт персистентной очереди операций
type ActionQueue interface {
	List(ctx context.Context) ([]models.QueuedAction, error)
	Get(ctx context.Context, id string) (*models.QueuedAction, error)
	Mutate(ctx context.Context, fn func(queue []models.QueuedAction) ([]models.QueuedAction, bool, error)) ([]models.QueuedAction, error)
}

// OccurrenceCache определяет контракт локальных кешей ocorrências
type OccurrenceCache interface {
	List(ctx context.Context, userID int64) ([]models.Occurrence, error)
	InsertTemporary(ctx context.Context, tmp models.Occurrence) error
	RemoveTemporary(ctx context.Context, tempID, userID int64) error
	Reconcile(ctx context.Context, tempID int64, number string, userID int64, server models.Occurrence) error
	ReplaceFromServer(ctx context.Context, userID int64, fresh []models.Occurrence) (bool, error)
}

// Notifier рассылает состояние очереди и признак синхронизации
type Notifier interface {
	PublishQueue(queue []models.QueuedAction)
	SubscribeQueue(seed []models.QueuedAction) (<-chan []models.QueuedAction, func())
	SubscribeProcessing() (<-chan bool, func())
	Processing() bool
}

// NameResolver возвращает названия справочных сущностей по id.
// Пустая строка - название неизвестно.
type NameResolver interface {
	CategoryName(ctx context.Context, id int64) string
	GroupName(ctx context.Context, id int64) string
	SubgroupName(ctx context.Context, id int64) string
}

// DrainTrigger запрашивает фоновую синхронизацию без ожидания
type DrainTrigger interface {
	TriggerDrain()
}

// QueueService определяет контракт очереди для интерфейса пользователя
type QueueService interface {
	Enqueue(ctx context.Context, kind models.ActionKind, payload models.Occurrence) (string, error)
	List(ctx context.Context) ([]models.QueuedAction, error)
	Get(ctx context.Context, id string) (*models.QueuedAction, error)
	Len(ctx context.Context) (int, error)
	Remove(ctx context.Context, id string) error
	Update(ctx context.Context, id string, payload models.Occurrence) error
	SubscribeQueue(ctx context.Context) (<-chan []models.QueuedAction, func(), error)
	SubscribeProcessing() (<-chan bool, func())
	Occurrences(ctx context.Context, userID int64) ([]models.Occurrence, error)
}

// SyncController определяет контракт управления синхронизацией
type SyncController interface {
	SendItem(ctx context.Context, id string) error
	Drain(ctx context.Context) (models.DrainReport, error)
	TriggerDrain()
	Status(ctx context.Context) models.SyncStatus
}

// CatalogService обновляет справочные кеши и отдает их содержимое
type CatalogService interface {
	Refresh(ctx context.Context, userID int64) (models.RefreshReport, error)
	Items(ctx context.Context, entity string) ([]json.RawMessage, error)
}
