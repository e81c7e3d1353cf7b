package models

import "time"

// DrainReport - итог одного прохода синхронизации
type DrainReport struct {
	// Started=false: проход не запускался (уже идет, нет сети или очередь пуста)
	Started   bool   `json:"started"`
	Reason    string `json:"reason,omitempty"`
	Synced    int    `json:"synced"`
	FailedID  string `json:"failedId,omitempty"`
	Error     string `json:"error,omitempty"`
	Code      string `json:"code,omitempty"`
	Remaining int    `json:"remaining"`
}

// Причины, по которым проход не запускался
const (
	DrainSkippedBusy    = "already_running"
	DrainSkippedOffline = "offline"
	DrainSkippedEmpty   = "queue_empty"
)

// SyncStatus - состояние синхронизации для интерфейса
type SyncStatus struct {
	Online     bool       `json:"online"`
	Processing bool       `json:"processing"`
	Pending    int        `json:"pending"`
	LastDrain  *time.Time `json:"lastDrain,omitempty"`
	LastError  string     `json:"lastError,omitempty"`
}

// RefreshReport - итог обновления справочных кешей
type RefreshReport struct {
	Skipped bool     `json:"skipped"`
	Updated []string `json:"updated"`
	Failed  []string `json:"failed,omitempty"`
}

// Типы событий синхронизации
const (
	EventActionSynced = "action.synced"
	EventActionFailed = "action.failed"
)

// SyncEvent - исход попытки отправки операции для внешних получателей
type SyncEvent struct {
	Type      string     `json:"type"`
	ActionID  string     `json:"action_id"`
	Kind      ActionKind `json:"action_type"`
	TempID    int64      `json:"temp_id,omitempty"`
	ServerID  int64      `json:"server_id,omitempty"`
	Retries   int        `json:"retries"`
	Code      string     `json:"code,omitempty"`
	Error     string     `json:"error,omitempty"`
	Timestamp time.Time  `json:"timestamp"`
}
