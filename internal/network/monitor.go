package network

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Monitor сообщает о доступности сети и рассылает смену состояния
type Monitor interface {
	IsConnected(ctx context.Context) bool
	Subscribe() (<-chan bool, func())
}

// ProbeMonitor определяет доступность сети запросом к probeURL
type ProbeMonitor struct {
	probeURL   string
	interval   time.Duration
	httpClient *http.Client
	logger     *logrus.Logger

	mu        sync.Mutex
	known     bool
	connected bool
	subs      map[int]chan bool
	nextID    int
}

func NewProbeMonitor(probeURL string, interval, timeout time.Duration, logger *logrus.Logger) *ProbeMonitor {
	return &ProbeMonitor{
		probeURL:   probeURL,
		interval:   interval,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
		subs:       make(map[int]chan bool),
	}
}

// IsConnected выполняет проверку немедленно. Любой HTTP ответ означает, что сеть есть.
func (m *ProbeMonitor) IsConnected(ctx context.Context) bool {
	connected := m.probe(ctx)
	m.record(connected)
	return connected
}

// Subscribe возвращает канал смены состояния. Буфер 1: хранится последнее значение.
func (m *ProbeMonitor) Subscribe() (<-chan bool, func()) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextID
	m.nextID++
	ch := make(chan bool, 1)
	m.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			m.mu.Lock()
			delete(m.subs, id)
			m.mu.Unlock()
		})
	}
}

// Run периодически проверяет сеть до отмены ctx
func (m *ProbeMonitor) Run(ctx context.Context) {
	m.logger.WithField("probe_url", m.probeURL).Info("Starting network monitor...")
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.IsConnected(ctx)
	for {
		select {
		case <-ctx.Done():
			m.logger.Info("Stopping network monitor.")
			return
		case <-ticker.C:
			m.IsConnected(ctx)
		}
	}
}

func (m *ProbeMonitor) probe(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, m.probeURL, nil)
	if err != nil {
		m.logger.WithError(err).Error("Failed to create network probe request")
		return false
	}
	resp, err := m.httpClient.Do(req)
	if err != nil {
		m.logger.WithError(err).Debug("Network probe failed")
		return false
	}
	resp.Body.Close()
	return true
}

func (m *ProbeMonitor) record(connected bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.known && m.connected == connected {
		return
	}
	m.known = true
	m.connected = connected
	m.logger.WithField("connected", connected).Info("Network state changed")

	for _, ch := range m.subs {
		offer(ch, connected)
	}
}

// Static - монитор с состоянием, заданным вручную. Используется CLI и тестами.
type Static struct {
	mu        sync.Mutex
	connected bool
	subs      []chan bool
}

func NewStatic(connected bool) *Static {
	return &Static{connected: connected}
}

func (s *Static) IsConnected(context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.connected
}

func (s *Static) Subscribe() (<-chan bool, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ch := make(chan bool, 1)
	s.subs = append(s.subs, ch)
	return ch, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, c := range s.subs {
			if c == ch {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// Set меняет состояние и уведомляет подписчиков при изменении
func (s *Static) Set(connected bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.connected == connected {
		return
	}
	s.connected = connected
	for _, ch := range s.subs {
		offer(ch, connected)
	}
}

// offer кладет значение в канал с буфером 1, вытесняя непрочитанное
func offer(ch chan bool, v bool) {
	select {
	case <-ch:
	default:
	}
	select {
	case ch <- v:
	default:
	}
}
