package antiforgery

import (
	"context"
	"fmt"
	"time"

	radix "github.com/mediocregopher/radix/v3"
)

const keyPrefix = "antiforgery:"

// RedisStore shares tokens between instances. Expiry is left to Redis and a
// token is consumed by whichever DEL removes it first.
type RedisStore struct {
	redis radix.Client
	ttl   time.Duration
}

func NewRedisStore(redis radix.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{redis: redis, ttl: ttlOrDefault(ttl)}
}

// Dial opens a small connection pool to addr.
func Dial(addr string, size int) (radix.Client, error) {
	if size <= 0 {
		size = 10
	}
	pool, err := radix.NewPool("tcp", addr, size)
	if err != nil {
		return nil, fmt.Errorf("connect redis %s: %w", addr, err)
	}
	return pool, nil
}

func (s *RedisStore) Issue(_ context.Context) (string, error) {
	token, err := newToken()
	if err != nil {
		return "", err
	}

	seconds := int64(s.ttl / time.Second)
	if seconds < 1 {
		seconds = 1
	}
	if err = s.redis.Do(radix.FlatCmd(nil, "SET", keyPrefix+token, 1, "EX", seconds)); err != nil {
		return "", fmt.Errorf("store anti-forgery token: %w", err)
	}
	return token, nil
}

func (s *RedisStore) ValidateAndConsume(_ context.Context, token string) (bool, error) {
	if !wellFormed(token) {
		return false, nil
	}

	var deleted int
	if err := s.redis.Do(radix.Cmd(&deleted, "DEL", keyPrefix+token)); err != nil {
		return false, fmt.Errorf("consume anti-forgery token: %w", err)
	}
	return deleted == 1, nil
}

// Purge is a no-op: Redis expires keys on its own.
func (s *RedisStore) Purge(_ context.Context) (int, error) {
	return 0, nil
}
