package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"spice-garden/models"
)

// RedisStore keeps session ledgers as JSON values under "session:<id>" with
// a TTL, so abandoned sessions expire on the Redis side.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func sessionKey(sessionID string) string {
	return "session:" + sessionID
}

func (s *RedisStore) Load(ctx context.Context, sessionID string) ([]models.OrderLine, error) {
	val, err := s.client.Get(ctx, sessionKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var lines []models.OrderLine
	if err := json.Unmarshal(val, &lines); err != nil {
		return nil, fmt.Errorf("unmarshal session orders: %w", err)
	}
	return lines, nil
}

func (s *RedisStore) Save(ctx context.Context, sessionID string, lines []models.OrderLine) error {
	linesJSON, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("marshal session orders: %w", err)
	}
	return s.client.Set(ctx, sessionKey(sessionID), linesJSON, s.ttl).Err()
}

func (s *RedisStore) Delete(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, sessionKey(sessionID)).Err()
}
