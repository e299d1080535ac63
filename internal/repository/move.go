package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
)

var ErrMoveNotFound = errors.New("move not found")

// MoveRepository caches engine answers. A position always yields the same move, so entries never go stale.
type MoveRepository interface {
	Save(ctx context.Context, key string, result *entity.MoveResult) error
	GetByKey(ctx context.Context, key string) (*entity.MoveResult, error)
	Ping(ctx context.Context) error
}

type dbMove struct {
	client *redis.Client
	ttl    time.Duration
}

func NewMoveRepository(client *redis.Client, ttl time.Duration) MoveRepository {
	return &dbMove{
		client: client,
		ttl:    ttl,
	}
}

func (that *dbMove) Save(ctx context.Context, key string, result *entity.MoveResult) error {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("could not marshal move: %w", err)
	}

	if err = that.client.Set(ctx, key, resultJSON, that.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set move: %w", err)
	}

	return nil
}

func (that *dbMove) GetByKey(ctx context.Context, key string) (*entity.MoveResult, error) {
	response, err := that.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrMoveNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get move by key: %w", err)
	}

	var result entity.MoveResult
	if err = json.Unmarshal([]byte(response), &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal move: %w", err)
	}

	return &result, nil
}

func (that *dbMove) Ping(ctx context.Context) error {
	if err := that.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to ping redis: %w", err)
	}

	return nil
}
