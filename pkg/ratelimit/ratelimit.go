// Package ratelimit ограничение частоты запросов по ключу (обычно IP)
//
// Счетчики хранятся во внешнем хранилище (Redis, fixed-window),
// поэтому лимиты переживают рестарт процесса и работают на нескольких инстансах
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Limiter интерфейс ограничителя частоты запросов
type Limiter interface {
	// Allow возвращает true, если запрос с данным ключом укладывается в лимит
	Allow(ctx context.Context, key string) (bool, error)
}

// RedisLimiter fixed-window счетчики в Redis
type RedisLimiter struct {
	client *redis.Client
	limit  int64
	window time.Duration
	prefix string
}

// NewRedisLimiter создает лимитер: не более limit запросов на ключ за window
func NewRedisLimiter(client *redis.Client, limit int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		limit:  int64(limit),
		window: window,
		prefix: "ratelimit",
	}
}

// Allow инкрементирует счетчик окна и сравнивает с лимитом
// Окно определяется по текущему времени, счетчик истекает вместе с окном
func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	windowStart := time.Now().Unix() / int64(l.window.Seconds())
	redisKey := fmt.Sprintf("%s:%s:%d", l.prefix, key, windowStart)

	pipe := l.client.TxPipeline()
	incr := pipe.Incr(ctx, redisKey)
	pipe.Expire(ctx, redisKey, l.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("ratelimit: redis pipeline: %w", err)
	}

	return incr.Val() <= l.limit, nil
}

// NoopLimiter лимитер-заглушка, пропускает все запросы
// Используется, когда rate limiting выключен в конфигурации
type NoopLimiter struct{}

// Allow всегда возвращает true
func (NoopLimiter) Allow(_ context.Context, _ string) (bool, error) {
	return true, nil
}
