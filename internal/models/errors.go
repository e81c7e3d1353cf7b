package models

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrValidation         = errors.New("validation failed")
	ErrMissingCoordinates = errors.New("missing coordinates")
	ErrAttachmentUpload   = errors.New("attachment upload failed")
	ErrTransientNetwork   = errors.New("transient network failure")
	ErrServerRejection    = errors.New("server rejected request")
	ErrActionNotFound     = errors.New("queued action not found")
	ErrUnknownEntity      = errors.New("unknown catalog entity")
)

// ValidationError - операция отклонена до постановки в очередь
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: missing %s", strings.Join(e.Fields, ", "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// SyncError - неудачная попытка отправки операции.
// Kind - одна из ошибок таксономии (ErrMissingCoordinates, ErrAttachmentUpload,
// ErrTransientNetwork, ErrServerRejection).
type SyncError struct {
	ActionID string
	Kind     error
	Err      error
}

func (e *SyncError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("sync action %s: %v", e.ActionID, e.Kind)
	}
	return fmt.Sprintf("sync action %s: %v: %v", e.ActionID, e.Kind, e.Err)
}

func (e *SyncError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// NewSyncError классифицирует err. Ошибки вне таксономии считаются сетевыми.
func NewSyncError(actionID string, err error) *SyncError {
	var se *SyncError
	if errors.As(err, &se) {
		return se
	}
	for _, kind := range []error{ErrMissingCoordinates, ErrAttachmentUpload, ErrServerRejection, ErrTransientNetwork} {
		if errors.Is(err, kind) {
			if err == kind {
				return &SyncError{ActionID: actionID, Kind: kind}
			}
			return &SyncError{ActionID: actionID, Kind: kind, Err: err}
		}
	}
	return &SyncError{ActionID: actionID, Kind: ErrTransientNetwork, Err: err}
}

// ErrorCode возвращает машиночитаемый код ошибки для клиента
func ErrorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrValidation):
		return "VALIDATION"
	case errors.Is(err, ErrActionNotFound), errors.Is(err, ErrUnknownEntity):
		return "NOT_FOUND"
	case errors.Is(err, ErrMissingCoordinates):
		return "MISSING_COORDS"
	case errors.Is(err, ErrAttachmentUpload):
		return "ATTACHMENT_UPLOAD"
	case errors.Is(err, ErrServerRejection):
		return "SERVER_REJECTION"
	default:
		return "TRANSIENT_NETWORK"
	}
}
