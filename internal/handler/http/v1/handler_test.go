package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/gin-gonic/gin"
	"github.com/shenikar/field_sync/internal/config"
	"github.com/shenikar/field_sync/internal/models"
	"github.com/shenikar/field_sync/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testKey = "test-api-key"

var authHeader = map[string]string{"X-API-Key": testKey}

type testHandler struct {
	queue   *mocks.MockQueueService
	sync    *mocks.MockSyncController
	catalog *mocks.MockCatalogService
	router  *gin.Engine
}

// newTestHandler создает Handler с мокированными сервисами
func newTestHandler(t *testing.T) *testHandler {
	ctrl := gomock.NewController(t)
	th := &testHandler{
		queue:   mocks.NewMockQueueService(ctrl),
		sync:    mocks.NewMockSyncController(ctrl),
		catalog: mocks.NewMockCatalogService(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		APIKeys:    []string{testKey},
		SyncUserID: 7,
	}

	handler := NewHandler(th.queue, th.sync, th.catalog, logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	th.router = gin.New()
	api := th.router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return th
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func TestEnqueue_Success(t *testing.T) {
	th := newTestHandler(t)
	body := `{"type":"create","payload":{"descricao":"Incêndio","localizacao":{"municipio":"Recife","bairro":"Boa Vista","logradouro":"Rua da Aurora","numero":"100"}}}`

	th.queue.EXPECT().
		Enqueue(gomock.Any(), models.ActionCreate, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ models.ActionKind, p models.Occurrence) (string, error) {
			assert.Equal(t, "Incêndio", p.Description)
			require.NotNil(t, p.Location)
			assert.Equal(t, "Rua da Aurora", p.Location.Street)
			return "offline_1_abcdef12", nil
		}).Times(1)

	w := makeRequest(th.router, "POST", "/api/v1/queue", strings.NewReader(body), authHeader)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "offline_1_abcdef12", decode[EnqueueResponse](t, w).ID)
}

func TestEnqueue_InvalidJSON(t *testing.T) {
	th := newTestHandler(t)

	th.queue.EXPECT().Enqueue(gomock.Any(), gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(th.router, "POST", "/api/v1/queue", strings.NewReader(`{"type":`), authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestEnqueue_UnknownType(t *testing.T) {
	th := newTestHandler(t)

	th.queue.EXPECT().Enqueue(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(th.router, "POST", "/api/v1/queue", strings.NewReader(`{"type":"delete","payload":{}}`), authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "'Type' failed on the 'oneof' tag")
}

func TestEnqueue_ValidationError(t *testing.T) {
	th := newTestHandler(t)

	th.queue.EXPECT().Enqueue(gomock.Any(), models.ActionCreate, gomock.Any()).
		Return("", &models.ValidationError{Fields: []string{"bairro", "numero"}})

	w := makeRequest(th.router, "POST", "/api/v1/queue", strings.NewReader(`{"type":"create","payload":{}}`), authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decode[ErrorResponse](t, w)
	assert.Equal(t, "VALIDATION", resp.Code)
	assert.Equal(t, []string{"bairro", "numero"}, resp.Fields)
}

func TestListQueue_Success(t *testing.T) {
	th := newTestHandler(t)
	queue := []models.QueuedAction{
		{ID: "offline_1_a", Kind: models.ActionCreate, Payload: models.Occurrence{ID: -1}, Summary: "Rua da Aurora, 100"},
		{ID: "offline_2_b", Kind: models.ActionUpdate, Payload: models.Occurrence{ID: 42}, Retries: 2},
	}

	th.queue.EXPECT().List(gomock.Any()).Return(queue, nil)
	th.sync.EXPECT().Status(gomock.Any()).Return(models.SyncStatus{Processing: true})

	w := makeRequest(th.router, "GET", "/api/v1/queue", nil, authHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode[QueueResponse](t, w)
	assert.Equal(t, 2, resp.Total)
	assert.True(t, resp.Processing)
	require.Len(t, resp.Items, 2)
	assert.Equal(t, int64(-1), resp.Items[0].TargetID)
	assert.Equal(t, "update", resp.Items[1].Type)
	assert.Equal(t, 2, resp.Items[1].Retries)
}

func TestListQueue_ServiceError(t *testing.T) {
	th := newTestHandler(t)

	th.queue.EXPECT().List(gomock.Any()).Return(nil, errors.New("disk full"))

	w := makeRequest(th.router, "GET", "/api/v1/queue", nil, authHeader)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestGetAction(t *testing.T) {
	th := newTestHandler(t)

	th.queue.EXPECT().Get(gomock.Any(), "offline_1_a").Return(&models.QueuedAction{ID: "offline_1_a", Kind: models.ActionCreate}, nil)
	th.queue.EXPECT().Get(gomock.Any(), "missing").Return(nil, fmt.Errorf("service: %w", models.ErrActionNotFound))

	w := makeRequest(th.router, "GET", "/api/v1/queue/offline_1_a", nil, authHeader)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "offline_1_a", decode[ActionResponse](t, w).ID)

	w = makeRequest(th.router, "GET", "/api/v1/queue/missing", nil, authHeader)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NOT_FOUND", decode[ErrorResponse](t, w).Code)
}

func TestUpdateAction(t *testing.T) {
	th := newTestHandler(t)

	th.queue.EXPECT().
		Update(gomock.Any(), "offline_1_a", models.Occurrence{ID: 42, Status: "concluida"}).
		Return(nil)

	w := makeRequest(th.router, "PUT", "/api/v1/queue/offline_1_a", strings.NewReader(`{"payload":{"id":42,"statusAtendimento":"concluida"}}`), authHeader)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateAction_NotFound(t *testing.T) {
	th := newTestHandler(t)

	th.queue.EXPECT().Update(gomock.Any(), "nope", gomock.Any()).
		Return(fmt.Errorf("service: could not update action nope: %w", models.ErrActionNotFound))

	w := makeRequest(th.router, "PUT", "/api/v1/queue/nope", strings.NewReader(`{"payload":{}}`), authHeader)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRemoveAction(t *testing.T) {
	th := newTestHandler(t)

	th.queue.EXPECT().Remove(gomock.Any(), "offline_1_a").Return(nil)

	w := makeRequest(th.router, "DELETE", "/api/v1/queue/offline_1_a", nil, authHeader)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestSendAction(t *testing.T) {
	testCases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{name: "Успех", err: nil, status: http.StatusNoContent},
		{name: "Нет координат", err: models.NewSyncError("offline_1_a", models.ErrMissingCoordinates), status: http.StatusBadGateway, code: "MISSING_COORDS"},
		{name: "Отказ сервера", err: models.NewSyncError("offline_1_a", fmt.Errorf("status 422: %w", models.ErrServerRejection)), status: http.StatusBadGateway, code: "SERVER_REJECTION"},
		{name: "Нет операции", err: models.ErrActionNotFound, status: http.StatusNotFound, code: "NOT_FOUND"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			th := newTestHandler(t)
			th.sync.EXPECT().SendItem(gomock.Any(), "offline_1_a").Return(tc.err)

			w := makeRequest(th.router, "POST", "/api/v1/queue/offline_1_a/send", nil, authHeader)

			assert.Equal(t, tc.status, w.Code)
			if tc.code != "" {
				assert.Equal(t, tc.code, decode[ErrorResponse](t, w).Code)
			}
		})
	}
}

func TestDrain(t *testing.T) {
	th := newTestHandler(t)

	th.sync.EXPECT().Drain(gomock.Any()).Return(models.DrainReport{Started: true, Synced: 2, FailedID: "offline_3_c", Code: "TRANSIENT_NETWORK", Remaining: 1}, nil)

	w := makeRequest(th.router, "POST", "/api/v1/sync/drain", nil, authHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	report := decode[models.DrainReport](t, w)
	assert.Equal(t, 2, report.Synced)
	assert.Equal(t, "offline_3_c", report.FailedID)
}

func TestSyncStatus(t *testing.T) {
	th := newTestHandler(t)

	th.sync.EXPECT().Status(gomock.Any()).Return(models.SyncStatus{Online: true, Pending: 3})

	w := makeRequest(th.router, "GET", "/api/v1/sync/status", nil, authHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"online":true,"processing":false,"pending":3}`, w.Body.String())
}

func TestListOccurrences(t *testing.T) {
	th := newTestHandler(t)

	th.queue.EXPECT().Occurrences(gomock.Any(), int64(5)).Return([]models.Occurrence{{ID: -1, Number: "OCR_LOCAL_1"}, {ID: 9}}, nil)
	th.queue.EXPECT().Occurrences(gomock.Any(), int64(0)).Return([]models.Occurrence{}, nil)

	w := makeRequest(th.router, "GET", "/api/v1/occurrences?userId=5", nil, authHeader)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]models.Occurrence](t, w), 2)

	w = makeRequest(th.router, "GET", "/api/v1/occurrences", nil, authHeader)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = makeRequest(th.router, "GET", "/api/v1/occurrences?userId=abc", nil, authHeader)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCatalog(t *testing.T) {
	th := newTestHandler(t)

	th.catalog.EXPECT().Refresh(gomock.Any(), int64(7)).Return(models.RefreshReport{Updated: []string{"users"}}, nil)
	th.catalog.EXPECT().Items(gomock.Any(), "vehicles").Return([]json.RawMessage{json.RawMessage(`{"id":1}`)}, nil)
	th.catalog.EXPECT().Items(gomock.Any(), "planets").Return(nil, models.ErrUnknownEntity)

	w := makeRequest(th.router, "POST", "/api/v1/catalog/refresh", nil, authHeader)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"users"}, decode[models.RefreshReport](t, w).Updated)

	w = makeRequest(th.router, "GET", "/api/v1/catalog/vehicles", nil, authHeader)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"entity":"vehicles","items":[{"id":1}]}`, w.Body.String())

	w = makeRequest(th.router, "GET", "/api/v1/catalog/planets", nil, authHeader)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRoutesRequireAPIKey(t *testing.T) {
	th := newTestHandler(t)

	w := makeRequest(th.router, "GET", "/api/v1/queue", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHealthCheck_Success(t *testing.T) {
	th := newTestHandler(t)

	th.sync.EXPECT().Status(gomock.Any()).Return(models.SyncStatus{Online: true, Pending: 1})

	w := makeRequest(th.router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestStreamQueue(t *testing.T) {
	// Подготовка
	th := newTestHandler(t)
	queueCh := make(chan []models.QueuedAction, 1)
	processingCh := make(chan bool, 1)
	queueCh <- []models.QueuedAction{{ID: "offline_1_a", Kind: models.ActionCreate}}

	unsubscribed := make(chan struct{})
	th.queue.EXPECT().SubscribeQueue(gomock.Any()).
		Return((<-chan []models.QueuedAction)(queueCh), func() { close(unsubscribed) }, nil)
	th.queue.EXPECT().SubscribeProcessing().
		Return((<-chan bool)(processingCh), func() {})

	server := httptest.NewServer(th.router)
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	// Действие
	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/api/v1/queue/ws?api_key=" + testKey
	conn, _, err := websocket.Dial(ctx, wsURL, nil)
	require.NoError(t, err)

	// Проверки
	var first StreamEvent
	require.NoError(t, wsjson.Read(ctx, conn, &first))
	assert.Equal(t, StreamQueue, first.Type)
	require.Len(t, first.Queue, 1)
	assert.Equal(t, "offline_1_a", first.Queue[0].ID)

	processingCh <- true
	var second StreamEvent
	require.NoError(t, wsjson.Read(ctx, conn, &second))
	assert.Equal(t, StreamProcessing, second.Type)
	require.NotNil(t, second.Processing)
	assert.True(t, *second.Processing)

	_ = conn.Close(websocket.StatusNormalClosure, "")
	select {
	case <-unsubscribed:
	case <-ctx.Done():
		t.Fatal("stream did not unsubscribe after client closed")
	}
}

func TestAPIKeyAuthMiddleware(t *testing.T) {
	testCases := []struct {
		name    string
		url     string
		headers map[string]string
		status  int
		body    string
	}{
		{name: "Заголовок X-API-Key", url: "/test", headers: map[string]string{"X-API-Key": "valid-key"}, status: http.StatusOK},
		{name: "Bearer токен", url: "/test", headers: map[string]string{"Authorization": "Bearer valid-key"}, status: http.StatusOK},
		{name: "Параметр запроса", url: "/test?api_key=valid-key", headers: nil, status: http.StatusOK},
		{name: "Нет ключа", url: "/test", headers: nil, status: http.StatusUnauthorized, body: "API key required"},
		{name: "Неверный ключ", url: "/test", headers: map[string]string{"X-API-Key": "invalid-key"}, status: http.StatusUnauthorized, body: "Invalid API key"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			router := gin.New()
			logger := logrus.New()
			logger.SetOutput(&bytes.Buffer{})

			cfg := &config.Config{
				APIKeys: []string{"valid-key"},
			}

			router.Use(APIKeyAuthMiddleware(cfg, logger))
			router.GET("/test", func(c *gin.Context) {
				c.Status(http.StatusOK)
			})

			w := makeRequest(router, "GET", tc.url, nil, tc.headers)
			assert.Equal(t, tc.status, w.Code)
			if tc.body != "" {
				assert.Contains(t, w.Body.String(), tc.body)
			}
		})
	}
}
