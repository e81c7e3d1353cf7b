package notify

import (
	"sync"

	"github.com/shenikar/field_sync/internal/models"
)

// Bus рассылает состояние очереди и признак синхронизации подписчикам.
// Каждый подписчик получает текущее состояние сразу после подписки,
// затем каждое изменение. Канал подписчика хранит только последнее значение:
// медленный подписчик пропускает промежуточные состояния, но не блокирует публикацию.
type Bus struct {
	mu         sync.Mutex
	nextID     int
	queueSubs  map[int]chan []models.QueuedAction
	procSubs   map[int]chan bool
	queue      []models.QueuedAction
	hasQueue   bool
	processing bool
	closed     bool
}

func NewBus() *Bus {
	return &Bus{
		queueSubs: make(map[int]chan []models.QueuedAction),
		procSubs:  make(map[int]chan bool),
	}
}

// PublishQueue рассылает новое состояние очереди. Подписчики не должны изменять срез.
func (b *Bus) PublishQueue(queue []models.QueuedAction) {
	snapshot := append([]models.QueuedAction{}, queue...)

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.queue = snapshot
	b.hasQueue = true
	for _, ch := range b.queueSubs {
		offer(ch, snapshot)
	}
}

// SetProcessing рассылает признак синхронизации, если он изменился
func (b *Bus) SetProcessing(processing bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed || b.processing == processing {
		return
	}
	b.processing = processing
	for _, ch := range b.procSubs {
		offer(ch, processing)
	}
}

// Processing возвращает последний опубликованный признак синхронизации
func (b *Bus) Processing() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.processing
}

// SubscribeQueue подписывает на изменения очереди. Первым значением приходит последнее
// опубликованное состояние, а если публикаций еще не было - seed.
func (b *Bus) SubscribeQueue(seed []models.QueuedAction) (<-chan []models.QueuedAction, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan []models.QueuedAction, 1)
	if b.closed {
		close(ch)
		return ch, func() {}
	}

	if b.hasQueue {
		ch <- b.queue
	} else {
		ch <- append([]models.QueuedAction{}, seed...)
	}

	id := b.nextID
	b.nextID++
	b.queueSubs[id] = ch

	return ch, b.unsubscribe(func() {
		if sub, ok := b.queueSubs[id]; ok {
			delete(b.queueSubs, id)
			close(sub)
		}
	})
}

// SubscribeProcessing подписывает на признак синхронизации. Первым значением приходит текущее.
func (b *Bus) SubscribeProcessing() (<-chan bool, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan bool, 1)
	if b.closed {
		close(ch)
		return ch, func() {}
	}
	ch <- b.processing

	id := b.nextID
	b.nextID++
	b.procSubs[id] = ch

	return ch, b.unsubscribe(func() {
		if sub, ok := b.procSubs[id]; ok {
			delete(b.procSubs, id)
			close(sub)
		}
	})
}

// Close закрывает все каналы подписчиков
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true
	for id, ch := range b.queueSubs {
		delete(b.queueSubs, id)
		close(ch)
	}
	for id, ch := range b.procSubs {
		delete(b.procSubs, id)
		close(ch)
	}
}

func (b *Bus) unsubscribe(remove func()) func() {
	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			remove()
		})
	}
}

// offer кладет значение в канал емкостью 1, вытесняя непрочитанное
func offer[T any](ch chan T, v T) {
	select {
	case ch <- v:
		return
	default:
	}
	select {
	case <-ch:
	default:
	}
	select {
	case ch <- v:
	default:
	}
}
