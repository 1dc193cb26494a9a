package sessions

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrSessionNotFound signals an unknown or expired token. Callers must treat
// it as "anonymous", never as a fatal condition.
var ErrSessionNotFound = errors.New("session not found")

// Store is the key-value contract backing sessions: opaque token -> record,
// with expiry handled by the store itself.
type Store interface {
	Put(ctx context.Context, token, record string, ttl time.Duration) error
	Get(ctx context.Context, token string) (string, error)
	Delete(ctx context.Context, token string) error
}

const sessionKeyPrefix = "session:"

// RedisStore implements Store on Redis. Expiry rides on the key TTL.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Put(ctx context.Context, token, record string, ttl time.Duration) error {
	return s.client.Set(ctx, sessionKeyPrefix+token, record, ttl).Err()
}

func (s *RedisStore) Get(ctx context.Context, token string) (string, error) {
	record, err := s.client.Get(ctx, sessionKeyPrefix+token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrSessionNotFound
		}
		return "", err
	}
	return record, nil
}

func (s *RedisStore) Delete(ctx context.Context, token string) error {
	return s.client.Del(ctx, sessionKeyPrefix+token).Err()
}
