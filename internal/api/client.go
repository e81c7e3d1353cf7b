package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/shenikar/field_sync/internal/models"
)

// Пути справочников удаленного API
const (
	PathUsers      = "/users"
	PathVehicles   = "/viaturas"
	PathCategories = "/naturezasocorrencias"
	PathGroups     = "/gruposocorrencias"
	PathSubgroups  = "/subgruposocorrencias"
	PathUnits      = "/unidadesoperacionais"
	PathInjuries   = "/lesoes"
)

const victimTimeout = 15 * time.Second

// StatusError - ответ сервера со статусом вне 2xx
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("api: %s %s responded %d: %s", e.Method, e.Path, e.StatusCode, e.Body)
}

// Unwrap относит 4xx к отказу сервера, кроме 408 и 429, остальное - к сетевым сбоям
func (e *StatusError) Unwrap() error {
	if e.StatusCode >= 400 && e.StatusCode < 500 &&
		e.StatusCode != http.StatusRequestTimeout && e.StatusCode != http.StatusTooManyRequests {
		return models.ErrServerRejection
	}
	return models.ErrTransientNetwork
}

// Client - клиент удаленного API ocorrências
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func NewClient(baseURL, token string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// CreateOccurrence создает запись и возвращает ответ сервера. Id берется из id или ocorrenciaId.
func (c *Client) CreateOccurrence(ctx context.Context, o models.Occurrence) (models.Occurrence, error) {
	body := o.Clone()
	if body.TriggerMode == "" {
		body.TriggerMode = models.DefaultTriggerMode
	}

	raw, err := c.do(ctx, http.MethodPost, "/ocorrencias", body)
	if err != nil {
		return models.Occurrence{}, err
	}

	id, err := responseID(raw, "id", "ocorrenciaId")
	if err != nil {
		return models.Occurrence{}, err
	}
	if id <= 0 {
		return models.Occurrence{}, fmt.Errorf("api: create response has no id: %w", models.ErrServerRejection)
	}

	var created models.Occurrence
	if err := decodeOccurrenceInto(raw, &created); err != nil {
		created = models.Occurrence{}
	}
	created.ID = id
	return created, nil
}

// UpdateOccurrence отправляет патч записи id
func (c *Client) UpdateOccurrence(ctx context.Context, id int64, o models.Occurrence) error {
	_, err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/ocorrencias/%d", id), o)
	return err
}

// CreateVictim создает vítima и возвращает ее id
func (c *Client) CreateVictim(ctx context.Context, v models.Victim) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, victimTimeout)
	defer cancel()

	raw, err := c.do(ctx, http.MethodPost, "/vitimas/", v.Normalized())
	if err != nil {
		return 0, err
	}
	return responseID(raw, "id")
}

// AddTeamMember добавляет пользователя в equipe записи
func (c *Client) AddTeamMember(ctx context.Context, occurrenceID, userID int64) error {
	payload := map[string]int64{"ocorrenciaId": occurrenceID, "userId": userID}
	_, err := c.do(ctx, http.MethodPost, "/ocorrencia-user", payload)
	return err
}

// List загружает справочник по пути path. Элементы возвращаются без разбора.
func (c *Client) List(ctx context.Context, path string) ([]json.RawMessage, error) {
	raw, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	return decodeList(raw)
}

// UserOccurrences возвращает записи пользователя: созданные им и те, где он в equipe
func (c *Client) UserOccurrences(ctx context.Context, userID int64) ([]models.Occurrence, error) {
	raw, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/ocorrencias/usuario/%d", userID), nil)
	if err != nil {
		return nil, err
	}
	items, err := decodeList(raw)
	if err != nil {
		return nil, err
	}

	result := make([]models.Occurrence, 0, len(items))
	seen := make(map[int64]bool, len(items))
	add := func(item json.RawMessage) {
		var o models.Occurrence
		if err := decodeOccurrenceInto(item, &o); err != nil || o.ID == 0 || seen[o.ID] {
			return
		}
		seen[o.ID] = true
		result = append(result, o)
	}
	for _, item := range items {
		add(item)
	}

	// Записи equipe догружаются по одной. Ошибки здесь не влияют на основной список.
	for _, id := range c.memberOccurrenceIDs(ctx, userID) {
		if seen[id] {
			continue
		}
		item, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/ocorrencias/%d", id), nil)
		if err != nil {
			continue
		}
		add(item)
	}
	return result, nil
}

func (c *Client) memberOccurrenceIDs(ctx context.Context, userID int64) []int64 {
	raw, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/ocorrencia-user/user/%d/ocorrencias", userID), nil)
	if err != nil {
		return nil
	}
	items, err := decodeList(raw)
	if err != nil {
		return nil
	}

	var ids []int64
	for _, item := range items {
		var m struct {
			OccurrenceID    json.Number     `json:"ocorrenciaId"`
			OccurrenceIDAlt json.Number     `json:"ocorrencia_id"`
			Occurrence      json.RawMessage `json:"ocorrencia"`
		}
		if err := json.Unmarshal(item, &m); err != nil {
			continue
		}
		for _, n := range []json.Number{m.OccurrenceID, m.OccurrenceIDAlt} {
			if v, err := n.Int64(); err == nil && v > 0 {
				ids = append(ids, v)
			}
		}
		if len(m.Occurrence) > 0 {
			if v, err := responseID(m.Occurrence, "id"); err == nil && v > 0 {
				ids = append(ids, v)
			}
		}
	}
	return ids
}

// Health проверяет доступность API
func (c *Client) Health(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodGet, "/system/health", nil)
	return err
}

func (c *Client) do(ctx context.Context, method, path string, payload any) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("api: could not marshal request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("api: could not create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("api: %s %s: %w: %w", method, path, models.ErrTransientNetwork, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
	if err != nil {
		return nil, fmt.Errorf("api: %s %s: could not read response: %w: %w", method, path, models.ErrTransientNetwork, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(raw)),
		}
	}
	return raw, nil
}

// responseID ищет числовой id среди ключей keys. Значение может быть строкой.
func responseID(raw []byte, keys ...string) (int64, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return 0, nil
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return 0, fmt.Errorf("api: unexpected response %q: %w", truncate(raw), models.ErrServerRejection)
	}
	for _, k := range keys {
		v, ok := fields[k]
		if !ok {
			continue
		}
		var n json.Number
		if err := json.Unmarshal(bytes.Trim(v, `"`), &n); err == nil {
			if id, err := n.Int64(); err == nil {
				return id, nil
			}
		}
	}
	return 0, nil
}

func decodeList(raw []byte) ([]json.RawMessage, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return []json.RawMessage{}, nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(trimmed, &items); err == nil {
		return items, nil
	}
	var wrapped struct {
		Data []json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(trimmed, &wrapped); err != nil || wrapped.Data == nil {
		return nil, fmt.Errorf("api: expected list response: %w", models.ErrServerRejection)
	}
	return wrapped.Data, nil
}

// decodeOccurrenceInto накладывает ответ сервера на dst. Поля equipe и vitimas
// в ответах бывают объектами, такие ответы разбираются без них.
func decodeOccurrenceInto(raw []byte, dst *models.Occurrence) error {
	snapshot := dst.Clone()
	err := json.Unmarshal(raw, dst)
	if err == nil {
		return nil
	}
	var typeErr *json.UnmarshalTypeError
	if !errors.As(err, &typeErr) {
		return err
	}

	var fields map[string]json.RawMessage
	if jerr := json.Unmarshal(raw, &fields); jerr != nil {
		return err
	}
	delete(fields, "equipe")
	delete(fields, "vitimas")
	cleaned, jerr := json.Marshal(fields)
	if jerr != nil {
		return err
	}
	*dst = snapshot
	return json.Unmarshal(cleaned, dst)
}

func truncate(raw []byte) string {
	const limit = 200
	if len(raw) > limit {
		return string(raw[:limit])
	}
	return string(raw)
}
