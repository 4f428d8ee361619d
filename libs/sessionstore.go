package libs

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// SessionStore holds per-browser-session key/value state.
type SessionStore interface {
	Get(ctx context.Context, sessionID, key string) (string, bool, error)
	Set(ctx context.Context, sessionID, key, value string) error
	Clear(ctx context.Context, sessionID string) error
}

type RedisSessionStore struct {
	client      *redis.Client
	idleTimeout time.Duration
}

func NewRedisSessionStore(client *redis.Client, idleTimeout time.Duration) *RedisSessionStore {
	return &RedisSessionStore{client: client, idleTimeout: idleTimeout}
}

func sessionKey(sessionID string) string {
	return "session:" + sessionID
}

// Get reads one value and slides the idle expiry in the same round trip.
func (s *RedisSessionStore) Get(ctx context.Context, sessionID, key string) (string, bool, error) {
	pipe := s.client.TxPipeline()
	get := pipe.HGet(ctx, sessionKey(sessionID), key)
	var expire *redis.BoolCmd
	if s.idleTimeout > 0 {
		expire = pipe.Expire(ctx, sessionKey(sessionID), s.idleTimeout)
	}
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return "", false, errors.Wrap(err, "session get")
	}

	if expire != nil {
		if err := expire.Err(); err != nil {
			return "", false, errors.Wrap(err, "session touch")
		}
	}

	value, err := get.Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Wrap(err, "session get")
	}
	return value, true, nil
}

func (s *RedisSessionStore) Set(ctx context.Context, sessionID, key, value string) error {
	pipe := s.client.TxPipeline()
	pipe.HSet(ctx, sessionKey(sessionID), key, value)
	if s.idleTimeout > 0 {
		pipe.Expire(ctx, sessionKey(sessionID), s.idleTimeout)
	}
	_, err := pipe.Exec(ctx)
	return errors.Wrap(err, "session set")
}

func (s *RedisSessionStore) Clear(ctx context.Context, sessionID string) error {
	return errors.Wrap(s.client.Del(ctx, sessionKey(sessionID)).Err(), "session clear")
}
