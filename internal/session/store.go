// Package session persists each user's pipeline board view state.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"crm/internal/pipeline"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

// Store loads and saves pipeline.State per user.
type Store interface {
	Load(ctx context.Context, userID uuid.UUID) (pipeline.State, error)
	Save(ctx context.Context, userID uuid.UUID, state pipeline.State) error
}

type RedisStore struct {
	redis *redis.Client
	ttl   time.Duration
}

var _ Store = (*RedisStore)(nil)

// NewRedisStore keeps board states for ttl after their last save; zero keeps them forever.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{redis: client, ttl: ttl}
}

// Load returns the saved state, or pipeline.DefaultState when none exists or
// the saved one cannot be decoded.
func (s *RedisStore) Load(ctx context.Context, userID uuid.UUID) (pipeline.State, error) {
	data, err := s.redis.Get(ctx, key(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return pipeline.DefaultState(), nil
	}
	if err != nil {
		return pipeline.State{}, fmt.Errorf("load board state: %w", err)
	}
	var state pipeline.State
	if err := json.Unmarshal(data, &state); err != nil {
		log.WithError(err).WithField("user_id", userID).Warn("discarding undecodable board state")
		return pipeline.DefaultState(), nil
	}
	return state, nil
}

func (s *RedisStore) Save(ctx context.Context, userID uuid.UUID, state pipeline.State) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode board state: %w", err)
	}
	if err := s.redis.Set(ctx, key(userID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("save board state: %w", err)
	}
	return nil
}

func key(userID uuid.UUID) string {
	return "board:" + userID.String()
}
