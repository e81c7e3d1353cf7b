package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "field_sync:"

// RedisStore - хранилище поверх Redis. Значения без TTL.
type RedisStore struct {
	redisClient *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{redisClient: client}
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := s.redisClient.Get(ctx, redisKeyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get key %q from Redis: %w", key, err)
	}
	return value, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	if err := s.redisClient.Set(ctx, redisKeyPrefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set key %q in Redis: %w", key, err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if err := s.redisClient.Del(ctx, redisKeyPrefix+key).Err(); err != nil {
		return fmt.Errorf("failed to delete key %q from Redis: %w", key, err)
	}
	return nil
}

// Close не закрывает клиент: он общий с публикатором событий
func (s *RedisStore) Close() error {
	return nil
}
