package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Location - адрес ocorrência. Текстовые поля всегда строки (возможно пустые),
// координаты необязательны.
type Location struct {
	Municipality string   `json:"municipio" validate:"notblank"`
	Neighborhood string   `json:"bairro" validate:"notblank"`
	Street       string   `json:"logradouro" validate:"notblank"`
	Number       string   `json:"numero" validate:"notblank"`
	Reference    string   `json:"pontoReferencia"`
	Latitude     *float64 `json:"-"`
	Longitude    *float64 `json:"-"`
}

// Coordinates - пара координат
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// HasCoordinates сообщает, заданы ли обе координаты
func (l *Location) HasCoordinates() bool {
	return l.Latitude != nil && l.Longitude != nil
}

// HasAddress сообщает, заполнены ли все четыре поля адреса
func (l *Location) HasAddress() bool {
	return strings.TrimSpace(l.Municipality) != "" &&
		strings.TrimSpace(l.Neighborhood) != "" &&
		strings.TrimSpace(l.Street) != "" &&
		strings.TrimSpace(l.Number) != ""
}

// SetCoordinates устанавливает обе координаты
func (l *Location) SetCoordinates(c Coordinates) {
	lat, lon := c.Latitude, c.Longitude
	l.Latitude = &lat
	l.Longitude = &lon
}

// Address возвращает адрес в виде "logradouro, numero, bairro, municipio" без пустых частей
func (l *Location) Address() string {
	parts := make([]string, 0, 4)
	for _, p := range []string{l.Street, l.Number, l.Neighborhood, l.Municipality} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

// Clone возвращает копию адреса
func (l Location) Clone() Location {
	c := l
	if l.Latitude != nil {
		v := *l.Latitude
		c.Latitude = &v
	}
	if l.Longitude != nil {
		v := *l.Longitude
		c.Longitude = &v
	}
	return c
}

type locationJSON struct {
	Municipality json.RawMessage `json:"municipio"`
	Neighborhood json.RawMessage `json:"bairro"`
	Street       json.RawMessage `json:"logradouro"`
	Number       json.RawMessage `json:"numero"`
	Reference    json.RawMessage `json:"pontoReferencia"`
	Latitude     json.RawMessage `json:"latitude"`
	Longitude    json.RawMessage `json:"longitude"`
}

// UnmarshalJSON принимает null и числа в текстовых полях,
// координаты как числа или строки. Пустые и нечисловые координаты отбрасываются.
func (l *Location) UnmarshalJSON(data []byte) error {
	var raw locationJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("models: invalid localizacao: %w", err)
	}

	var err error
	fields := []struct {
		src json.RawMessage
		dst *string
	}{
		{raw.Municipality, &l.Municipality},
		{raw.Neighborhood, &l.Neighborhood},
		{raw.Street, &l.Street},
		{raw.Number, &l.Number},
		{raw.Reference, &l.Reference},
	}
	for _, f := range fields {
		if *f.dst, err = flexString(f.src); err != nil {
			return fmt.Errorf("models: invalid localizacao: %w", err)
		}
	}

	l.Latitude = flexFloat(raw.Latitude)
	l.Longitude = flexFloat(raw.Longitude)
	return nil
}

// MarshalJSON пишет координаты строками, как их принимает удаленный API
func (l Location) MarshalJSON() ([]byte, error) {
	out := struct {
		Municipality string `json:"municipio"`
		Neighborhood string `json:"bairro"`
		Street       string `json:"logradouro"`
		Number       string `json:"numero"`
		Reference    string `json:"pontoReferencia,omitempty"`
		Latitude     string `json:"latitude,omitempty"`
		Longitude    string `json:"longitude,omitempty"`
	}{
		Municipality: l.Municipality,
		Neighborhood: l.Neighborhood,
		Street:       l.Street,
		Number:       l.Number,
		Reference:    l.Reference,
	}
	if l.Latitude != nil {
		out.Latitude = strconv.FormatFloat(*l.Latitude, 'f', -1, 64)
	}
	if l.Longitude != nil {
		out.Longitude = strconv.FormatFloat(*l.Longitude, 'f', -1, 64)
	}
	return json.Marshal(out)
}

func flexString(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", nil
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", err
		}
		return s, nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return "", err
	}
	return n.String(), nil
}

func flexFloat(raw json.RawMessage) *float64 {
	s, err := flexString(raw)
	if err != nil {
		return nil
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// ParseCoordinate разбирает координату из произвольного JSON значения
func ParseCoordinate(raw json.RawMessage) (float64, bool) {
	v := flexFloat(raw)
	if v == nil {
		return 0, false
	}
	return *v, true
}
