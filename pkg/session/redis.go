package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"excursion-booking/internal/entity"
)

const redisKeyPrefix = "session:"

// RedisStore keeps sessions in redis so they survive restarts and can be
// shared between instances.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client: client,
		ttl:    normalizeTTL(ttl),
	}
}

func (s *RedisStore) Create(ctx context.Context, principal *entity.Principal) (string, error) {
	data, err := json.Marshal(principal)
	if err != nil {
		return "", fmt.Errorf("failed to encode principal: %w", err)
	}

	token := uuid.NewString()
	if err := s.client.Set(ctx, redisKeyPrefix+token, data, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("failed to store session: %w", err)
	}
	return token, nil
}

func (s *RedisStore) Get(ctx context.Context, token string) (*entity.Principal, error) {
	data, err := s.client.Get(ctx, redisKeyPrefix+token).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	var principal entity.Principal
	if err := json.Unmarshal(data, &principal); err != nil {
		return nil, fmt.Errorf("failed to decode principal: %w", err)
	}
	return &principal, nil
}

func (s *RedisStore) Delete(ctx context.Context, token string) error {
	return s.client.Del(ctx, redisKeyPrefix+token).Err()
}
