package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss значение отсутствует в кэше
var ErrCacheMiss = errors.New("cache miss")

// Cache кэш справочных данных поверх Redis.
// Nil-получатель безопасен: все методы возвращают ErrCacheMiss,
// сервисы работают напрямую с БД, если кэш выключен в конфигурации.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// New создает кэш поверх Redis-клиента
func New(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

// GetJSON читает значение по ключу и десериализует его в value
func (c *Cache) GetJSON(ctx context.Context, key string, value any) error {
	if c == nil || c.client == nil {
		return ErrCacheMiss
	}

	raw, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return ErrCacheMiss
	}
	if err != nil {
		return fmt.Errorf("failed to get cache value: %w", err)
	}

	if err := json.Unmarshal(raw, value); err != nil {
		return fmt.Errorf("failed to unmarshal cache value: %w", err)
	}

	return nil
}

// SetJSON сериализует value и сохраняет его по ключу с настроенным TTL
func (c *Cache) SetJSON(ctx context.Context, key string, value any) error {
	if c == nil || c.client == nil {
		return nil
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache value: %w", err)
	}

	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set cache value: %w", err)
	}

	return nil
}

// Invalidate удаляет значение по ключу
func (c *Cache) Invalidate(ctx context.Context, key string) error {
	if c == nil || c.client == nil {
		return nil
	}

	if err := c.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete cache value: %w", err)
	}

	return nil
}
