package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"salon-scheduler/internal/domain/conversation"
	"salon-scheduler/internal/infra"

	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "session:"

// RedisSessionRepository keeps conversation slot state in redis with a
// sliding TTL, so abandoned sessions expire on their own.
type RedisSessionRepository struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisSessionRepository(rdb *redis.Client, ttl time.Duration) *RedisSessionRepository {
	return &RedisSessionRepository{rdb: rdb, ttl: ttl}
}

func (r *RedisSessionRepository) Get(ctx context.Context, sessionID string) (conversation.State, bool, error) {
	raw, err := r.rdb.Get(ctx, sessionKeyPrefix+sessionID).Bytes()
	if errors.Is(err, redis.Nil) {
		return conversation.State{}, false, nil
	}
	if err != nil {
		return conversation.State{}, false, infra.WrapRepoErr(infra.KindDBFailure, "failed to read session state", err)
	}

	var st conversation.State
	if err := json.Unmarshal(raw, &st); err != nil {
		return conversation.State{}, false, infra.WrapRepoErr(infra.KindDBFailure, "malformed session state", err)
	}
	return st, true, nil
}

func (r *RedisSessionRepository) Save(ctx context.Context, sessionID string, st conversation.State) error {
	raw, err := json.Marshal(st)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to encode session state", err)
	}
	if err := r.rdb.Set(ctx, sessionKeyPrefix+sessionID, raw, r.ttl).Err(); err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to save session state", err)
	}
	return nil
}
