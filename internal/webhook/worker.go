package webhook

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shenikar/field_sync/internal/config"
	"github.com/shenikar/field_sync/internal/models"
	"github.com/sirupsen/logrus"
)

const (
	signatureHeader = "X-Webhook-Signature"
	popWait         = 5 * time.Second
)

// Worker доставляет события из Outbox на WEBHOOK_URL
type Worker struct {
	outbox     Outbox
	logger     *logrus.Logger
	cfg        *config.Config
	httpClient *http.Client
	sleep      func(ctx context.Context, d time.Duration) error
}

func NewWorker(outbox Outbox, logger *logrus.Logger, cfg *config.Config) *Worker {
	return &Worker{
		outbox: outbox,
		logger: logger,
		cfg:    cfg,
		httpClient: &http.Client{
			Timeout: cfg.WebhookTimeout,
		},
		sleep: sleepCtx,
	}
}

// Run читает события до отмены ctx
func (w *Worker) Run(ctx context.Context) {
	w.logger.Info("Starting webhook worker...")
	for {
		if ctx.Err() != nil {
			w.logger.Info("Stopping webhook worker.")
			return
		}

		payload, err := w.outbox.Pop(ctx, popWait)
		switch {
		case errors.Is(err, ErrOutboxEmpty):
			continue
		case err != nil:
			if ctx.Err() != nil {
				continue
			}
			w.logger.WithError(err).Error("Failed to pop sync event")
			_ = w.sleep(ctx, w.cfg.WebhookTimeout)
			continue
		}

		var event models.SyncEvent
		if err := json.Unmarshal(payload, &event); err != nil {
			w.logger.WithError(err).Error("Failed to unmarshal sync event")
			continue
		}
		_ = w.Deliver(ctx, event, payload)
	}
}

// Deliver отправляет событие с экспоненциальной задержкой между попытками
func (w *Worker) Deliver(ctx context.Context, event models.SyncEvent, payload []byte) error {
	log := w.logger.WithFields(logrus.Fields{
		"component": "webhook",
		"event":     event.Type,
		"action_id": event.ActionID,
	})

	if w.cfg.WebhookURL == "" {
		log.Warn("Webhook URL is not configured. Skipping webhook delivery.")
		return nil
	}

	attempts := max(w.cfg.WebhookMaxRetries, 1)
	delay := w.cfg.WebhookBaseDelay
	var lastErr error
	for i := range attempts {
		if i > 0 {
			if err := w.sleep(ctx, delay); err != nil {
				return err
			}
			delay *= 2
		}

		lastErr = w.post(ctx, payload)
		if lastErr == nil {
			log.Info("Webhook delivered successfully.")
			return nil
		}
		log.WithError(lastErr).Warnf("Webhook delivery failed. Retries left: %d", attempts-1-i)
	}

	log.WithError(lastErr).Errorf("Failed to deliver webhook after %d attempts.", attempts)
	return fmt.Errorf("webhook: delivery failed: %w", lastErr)
}

func (w *Worker) post(ctx context.Context, payload []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.cfg.WebhookURL, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if w.cfg.WebhookSecret != "" {
		req.Header.Set(signatureHeader, Sign(payload, w.cfg.WebhookSecret))
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return nil
}

// Sign возвращает HMAC-SHA256 подпись тела в hex
func Sign(payload []byte, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write(payload)
	return hex.EncodeToString(h.Sum(nil))
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
