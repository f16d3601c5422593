// Package tokenstore хранилище refresh-токенов в Redis
package tokenstore

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	// ErrTokenNotFound возвращается, когда refresh-токен не найден или истек
	ErrTokenNotFound = errors.New("tokenstore: refresh token not found")
)

const keyPrefix = "refresh:"

// Store хранит refresh-токены с TTL
// Токен живет ровно один цикл обновления: Get с одновременным удалением
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStore создает новое хранилище refresh-токенов
func NewStore(client *redis.Client, ttl time.Duration) *Store {
	return &Store{
		client: client,
		ttl:    ttl,
	}
}

// Save сохраняет refresh-токен для пользователя
func (s *Store) Save(ctx context.Context, token string, userID int64) error {
	key := keyPrefix + token
	if err := s.client.Set(ctx, key, userID, s.ttl).Err(); err != nil {
		return fmt.Errorf("tokenstore: save token: %w", err)
	}
	return nil
}

// Pop извлекает и удаляет refresh-токен, возвращая ID пользователя
// Удаление атомарно с чтением, поэтому токен одноразовый
func (s *Store) Pop(ctx context.Context, token string) (int64, error) {
	key := keyPrefix + token

	val, err := s.client.GetDel(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, ErrTokenNotFound
		}
		return 0, fmt.Errorf("tokenstore: pop token: %w", err)
	}

	userID, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("tokenstore: malformed token value: %w", err)
	}
	return userID, nil
}

// Delete удаляет refresh-токен (logout)
func (s *Store) Delete(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, keyPrefix+token).Err(); err != nil {
		return fmt.Errorf("tokenstore: delete token: %w", err)
	}
	return nil
}
