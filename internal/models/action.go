package models

import (
	"time"
)

// ActionKind - тип отложенной операции записи
type ActionKind string

const (
	ActionCreate ActionKind = "create"
	ActionUpdate ActionKind = "update"
)

// Valid проверяет, что тип операции поддерживается очередью
func (k ActionKind) Valid() bool {
	return k == ActionCreate || k == ActionUpdate
}

// QueuedAction - запись в персистентной очереди офлайн-операций.
// Изменяемы только Payload (явное редактирование) и Retries.
type QueuedAction struct {
	ID        string     `json:"id"`
	Kind      ActionKind `json:"type"`
	Payload   Occurrence `json:"payload"`
	CreatedAt time.Time  `json:"createdAt"`
	Retries   int        `json:"retries"`
	Summary   string     `json:"summary"`
}

// TargetID возвращает id записи, к которой относится операция
func (a *QueuedAction) TargetID() int64 {
	return a.Payload.ID
}

// CacheEntry - значение кеша с отметкой времени последней записи
type CacheEntry[T any] struct {
	UpdatedAt time.Time `json:"updatedAt"`
	Data      T         `json:"data"`
}
