package v1

import (
	"encoding/json"
	"time"

	"github.com/shenikar/field_sync/internal/models"
)

// EnqueueRequest DTO для постановки операции в очередь
// @Description DTO для постановки операции в очередь
type EnqueueRequest struct {
	Type    string            `json:"type" validate:"required,oneof=create update"`
	Payload models.Occurrence `json:"payload"`
}

// EnqueueResponse DTO с id поставленной операции
// @Description DTO с id поставленной операции
type EnqueueResponse struct {
	ID string `json:"id"`
}

// UpdateActionRequest DTO для замены полезной нагрузки операции
// @Description DTO для замены полезной нагрузки операции
type UpdateActionRequest struct {
	Payload models.Occurrence `json:"payload"`
}

// ActionResponse DTO операции очереди
// @Description DTO операции очереди
type ActionResponse struct {
	ID        string            `json:"id"`
	Type      string            `json:"type"`
	TargetID  int64             `json:"targetId"`
	Summary   string            `json:"summary"`
	Retries   int               `json:"retries"`
	CreatedAt time.Time         `json:"createdAt"`
	Payload   models.Occurrence `json:"payload"`
}

// QueueResponse DTO состояния очереди
// @Description DTO состояния очереди
type QueueResponse struct {
	Items      []ActionResponse `json:"items"`
	Total      int              `json:"total"`
	Processing bool             `json:"processing"`
}

// StreamEvent - сообщение потока /queue/ws
// @Description Сообщение потока очереди
type StreamEvent struct {
	Type       string           `json:"type"`
	Queue      []ActionResponse `json:"queue,omitempty"`
	Processing *bool            `json:"processing,omitempty"`
}

// Типы сообщений потока
const (
	StreamQueue      = "queue"
	StreamProcessing = "processing"
)

// CatalogResponse DTO справочника
// @Description DTO справочника
type CatalogResponse struct {
	Entity string            `json:"entity"`
	Items  []json.RawMessage `json:"items" swaggertype:"array,object"`
}

// ErrorResponse DTO ошибки
// @Description DTO ошибки
type ErrorResponse struct {
	Error  string   `json:"error"`
	Code   string   `json:"code,omitempty"`
	Fields []string `json:"fields,omitempty"`
}
