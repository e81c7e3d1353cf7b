package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/shenikar/field_sync/internal/models"
)

// Ключи координат, которые встречаются в ответах разных провайдеров
var (
	latKeys = []string{"lat", "latitude", "latitud", "y"}
	lonKeys = []string{"lon", "longitude", "longitud", "x"}
)

// Client обращается к геокодеру бэкенда
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

// Address - адрес, найденный по координатам
type Address struct {
	Municipality string `json:"municipio"`
	Neighborhood string `json:"bairro"`
	Street       string `json:"logradouro"`
	Number       string `json:"numero"`
	DisplayName  string `json:"displayName,omitempty"`
}

// Geocode ищет координаты по адресу. Пустой результат не является ошибкой.
func (c *Client) Geocode(ctx context.Context, address string) ([]models.Coordinates, error) {
	endpoint := c.baseURL + "/api/geocode?q=" + url.QueryEscape(address)

	raw, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	items, err := resultItems(raw)
	if err != nil {
		return nil, err
	}

	coords := make([]models.Coordinates, 0, len(items))
	for _, item := range items {
		lat, okLat := pick(item, latKeys)
		lon, okLon := pick(item, lonKeys)
		if !okLat || !okLon {
			continue
		}
		coords = append(coords, models.Coordinates{Latitude: lat, Longitude: lon})
	}
	return coords, nil
}

// ReverseGeocode возвращает адрес по координатам
func (c *Client) ReverseGeocode(ctx context.Context, lat, lon float64) (*Address, error) {
	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))

	raw, err := c.get(ctx, c.baseURL+"/api/reverse-geocode?"+q.Encode())
	if err != nil {
		return nil, err
	}

	var body struct {
		Address
		Road        string          `json:"road"`
		City        string          `json:"city"`
		Suburb      string          `json:"suburb"`
		HouseNumber string          `json:"house_number"`
		Nested      json.RawMessage `json:"address"`
		Display     string          `json:"display_name"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, fmt.Errorf("geocode: invalid reverse response: %w", err)
	}
	// Ответ в формате Nominatim: поля адреса вложены в address
	if len(body.Nested) > 0 && body.Nested[0] == '{' {
		var nested struct {
			Road        string `json:"road"`
			City        string `json:"city"`
			Town        string `json:"town"`
			Suburb      string `json:"suburb"`
			HouseNumber string `json:"house_number"`
		}
		if err := json.Unmarshal(body.Nested, &nested); err == nil {
			body.Road = firstNonEmpty(body.Road, nested.Road)
			body.City = firstNonEmpty(body.City, nested.City, nested.Town)
			body.Suburb = firstNonEmpty(body.Suburb, nested.Suburb)
			body.HouseNumber = firstNonEmpty(body.HouseNumber, nested.HouseNumber)
		}
	}

	return &Address{
		Municipality: firstNonEmpty(body.Municipality, body.City),
		Neighborhood: firstNonEmpty(body.Neighborhood, body.Suburb),
		Street:       firstNonEmpty(body.Street, body.Road),
		Number:       firstNonEmpty(body.Number, body.HouseNumber),
		DisplayName:  firstNonEmpty(body.DisplayName, body.Display),
	}, nil
}

func (c *Client) get(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("geocode: could not create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocode: request failed: %w: %w", models.ErrTransientNetwork, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("geocode: could not read response: %w: %w", models.ErrTransientNetwork, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("geocode: %w: status %d", models.ErrTransientNetwork, resp.StatusCode)
	}
	return raw, nil
}

// resultItems принимает массив или объект с полем results
func resultItems(raw []byte) ([]map[string]json.RawMessage, error) {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return nil, nil
	}

	var items []map[string]json.RawMessage
	if strings.HasPrefix(trimmed, "[") {
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, fmt.Errorf("geocode: invalid response: %w", err)
		}
		return items, nil
	}

	var wrapped struct {
		Results []map[string]json.RawMessage `json:"results"`
	}
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return nil, fmt.Errorf("geocode: invalid response: %w", err)
	}
	return wrapped.Results, nil
}

func pick(item map[string]json.RawMessage, keys []string) (float64, bool) {
	for _, k := range keys {
		if raw, ok := item[k]; ok {
			if v, ok := models.ParseCoordinate(raw); ok {
				return v, true
			}
		}
	}
	return 0, false
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
