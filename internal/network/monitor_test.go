package network_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shenikar/field_sync/internal/network"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func silentLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return logger
}

func TestProbeMonitor_StateChanges(t *testing.T) {
	var down atomic.Bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if down.Load() {
			// Обрываем соединение без ответа
			hj, ok := w.(http.Hijacker)
			require.True(t, ok)
			conn, _, err := hj.Hijack()
			require.NoError(t, err)
			conn.Close()
			return
		}
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	monitor := network.NewProbeMonitor(server.URL, time.Hour, time.Second, silentLogger())
	events, unsubscribe := monitor.Subscribe()
	defer unsubscribe()
	ctx := context.Background()

	// Любой HTTP ответ, даже 503, означает наличие сети
	assert.True(t, monitor.IsConnected(ctx))
	assert.True(t, <-events)

	// Повторное то же состояние не рассылается
	assert.True(t, monitor.IsConnected(ctx))
	select {
	case v := <-events:
		t.Fatalf("unexpected event %v", v)
	default:
	}

	down.Store(true)
	assert.False(t, monitor.IsConnected(ctx))
	assert.False(t, <-events)

	down.Store(false)
	assert.True(t, monitor.IsConnected(ctx))
	assert.True(t, <-events)
}

func TestProbeMonitor_RunStopsOnCancel(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer server.Close()

	monitor := network.NewProbeMonitor(server.URL, 10*time.Millisecond, time.Second, silentLogger())
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		monitor.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool { return calls.Load() >= 3 }, time.Second, 5*time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("monitor did not stop")
	}
}

func TestStatic(t *testing.T) {
	monitor := network.NewStatic(false)
	events, unsubscribe := monitor.Subscribe()

	assert.False(t, monitor.IsConnected(context.Background()))
	monitor.Set(true)
	assert.True(t, monitor.IsConnected(context.Background()))
	assert.True(t, <-events)

	unsubscribe()
	monitor.Set(false)
	select {
	case <-events:
		t.Fatal("event after unsubscribe")
	default:
	}
}
