package webhook_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shenikar/field_sync/internal/config"
	"github.com/shenikar/field_sync/internal/models"
	"github.com/shenikar/field_sync/internal/webhook"
	"github.com/shenikar/field_sync/internal/webhook/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return logger
}

func testConfig(url string) *config.Config {
	return &config.Config{
		WebhookURL:        url,
		WebhookSecret:     "s3cret",
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  time.Millisecond,
	}
}

func TestPublisher_Publish(t *testing.T) {
	// Подготовка
	ctrl := gomock.NewController(t)
	outbox := mocks.NewMockOutbox(ctrl)
	publisher := webhook.NewPublisher(outbox)
	event := models.SyncEvent{Type: models.EventActionSynced, ActionID: "offline_1_ab", Kind: models.ActionCreate, TempID: -1, ServerID: 42}

	// Ожидания
	outbox.EXPECT().Push(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, payload []byte) error {
		var got map[string]any
		require.NoError(t, json.Unmarshal(payload, &got))
		assert.Equal(t, "action.synced", got["type"])
		assert.Equal(t, "offline_1_ab", got["action_id"])
		assert.Equal(t, "create", got["action_type"])
		assert.Equal(t, float64(42), got["server_id"])
		return nil
	})

	// Действие и проверки
	require.NoError(t, publisher.Publish(context.Background(), event))
}

func TestWorker_DeliverSignsPayload(t *testing.T) {
	// Подготовка
	payload := []byte(`{"type":"action.failed","action_id":"offline_2_cd"}`)
	var received []byte
	var signature string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		received, _ = io.ReadAll(r.Body)
		signature = r.Header.Get("X-Webhook-Signature")
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	worker := webhook.NewWorker(nil, testLogger(), testConfig(server.URL))

	// Действие
	err := worker.Deliver(context.Background(), models.SyncEvent{Type: models.EventActionFailed}, payload)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, payload, received)
	assert.Equal(t, webhook.Sign(payload, "s3cret"), signature)
	assert.Len(t, signature, 64)
}

func TestWorker_DeliverRetries(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	worker := webhook.NewWorker(nil, testLogger(), testConfig(server.URL))

	require.NoError(t, worker.Deliver(context.Background(), models.SyncEvent{}, []byte(`{}`)))
	assert.Equal(t, int32(3), calls.Load())
}

func TestWorker_DeliverGivesUp(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	worker := webhook.NewWorker(nil, testLogger(), testConfig(server.URL))

	err := worker.Deliver(context.Background(), models.SyncEvent{}, []byte(`{}`))

	require.Error(t, err)
	assert.Equal(t, int32(3), calls.Load())
}

func TestWorker_DeliverWithoutURL(t *testing.T) {
	worker := webhook.NewWorker(nil, testLogger(), testConfig(""))

	assert.NoError(t, worker.Deliver(context.Background(), models.SyncEvent{}, []byte(`{}`)))
}

func TestWorker_RunDrainsOutbox(t *testing.T) {
	// Подготовка
	ctrl := gomock.NewController(t)
	outbox := mocks.NewMockOutbox(ctrl)

	delivered := make(chan string, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var event models.SyncEvent
		_ = json.NewDecoder(r.Body).Decode(&event)
		delivered <- event.ActionID
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Ожидания
	gomock.InOrder(
		outbox.EXPECT().Pop(gomock.Any(), gomock.Any()).Return(nil, webhook.ErrOutboxEmpty),
		outbox.EXPECT().Pop(gomock.Any(), gomock.Any()).Return([]byte(`not json`), nil),
		outbox.EXPECT().Pop(gomock.Any(), gomock.Any()).Return([]byte(`{"type":"action.synced","action_id":"offline_3_ef"}`), nil),
		outbox.EXPECT().Pop(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, _ time.Duration) ([]byte, error) {
			cancel()
			return nil, errors.New("context canceled")
		}),
	)

	worker := webhook.NewWorker(outbox, testLogger(), testConfig(server.URL))

	// Действие
	done := make(chan struct{})
	go func() {
		worker.Run(ctx)
		close(done)
	}()

	// Проверки
	select {
	case id := <-delivered:
		assert.Equal(t, "offline_3_ef", id)
	case <-time.After(2 * time.Second):
		t.Fatal("event was not delivered")
	}
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not stop")
	}
}
