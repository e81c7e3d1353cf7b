package webhook

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/field_sync/internal/models"
)

//go:generate mockgen -source=publisher.go -destination=mocks/mock_webhook.go -package=mocks

const outboxKey = "field_sync:sync_events"

// ErrOutboxEmpty - за время ожидания событий не появилось
var ErrOutboxEmpty = errors.New("outbox is empty")

// Outbox - очередь событий между движком синхронизации и доставщиком
type Outbox interface {
	Push(ctx context.Context, payload []byte) error
	Pop(ctx context.Context, wait time.Duration) ([]byte, error)
}

// RedisOutbox - очередь событий в списке Redis: LPUSH на запись, BRPOP на чтение
type RedisOutbox struct {
	redisClient *redis.Client
}

func NewRedisOutbox(client *redis.Client) *RedisOutbox {
	return &RedisOutbox{redisClient: client}
}

func (o *RedisOutbox) Push(ctx context.Context, payload []byte) error {
	if err := o.redisClient.LPush(ctx, outboxKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to push sync event to Redis: %w", err)
	}
	return nil
}

// Pop блокируется до wait. Без событий возвращает ErrOutboxEmpty.
func (o *RedisOutbox) Pop(ctx context.Context, wait time.Duration) ([]byte, error) {
	result, err := o.redisClient.BRPop(ctx, wait, outboxKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrOutboxEmpty
		}
		return nil, fmt.Errorf("failed to pop sync event from Redis: %w", err)
	}
	// result[0] - ключ, result[1] - значение
	return []byte(result[1]), nil
}

// Publisher кладет события синхронизации в Outbox
type Publisher struct {
	outbox Outbox
}

func NewPublisher(outbox Outbox) *Publisher {
	return &Publisher{outbox: outbox}
}

func (p *Publisher) Publish(ctx context.Context, event models.SyncEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal sync event: %w", err)
	}
	return p.outbox.Push(ctx, payload)
}
