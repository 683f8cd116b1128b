package redisrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/fsdevblog/village-connect/internal/domain"
	"github.com/redis/go-redis/v9"
)

// Cache JSON-кеш поверх redis с единым TTL.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

// Get читает значение по ключу в dst. Если ключа нет, возвращает domain.ErrRecordNotFound.
func (c *Cache) Get(ctx context.Context, key string, dst any) error {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return fmt.Errorf("[redis/cache get %s] %w", key, domain.ErrRecordNotFound)
		}
		return fmt.Errorf("[redis/cache get %s] %w", key, err)
	}
	if err = json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("[redis/cache decode %s] %w", key, err)
	}
	return nil
}

func (c *Cache) Set(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("[redis/cache encode %s] %w", key, err)
	}
	if err = c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("[redis/cache set %s] %w", key, err)
	}
	return nil
}

// DeleteByPrefix удаляет все ключи, начинающиеся с prefix.
func (c *Cache) DeleteByPrefix(ctx context.Context, prefix string) error {
	iter := c.client.Scan(ctx, 0, prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("[redis/cache delete %s] %w", iter.Val(), err)
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("[redis/cache scan %s] %w", prefix, err)
	}
	return nil
}

func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err() //nolint:wrapcheck
}
