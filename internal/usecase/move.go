package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
	"github.com/rocketscienceinc/tictactoe-ai/internal/repository"
)

const (
	CacheEnabled  = "enabled"
	CacheDisabled = "disabled"
	CacheDown     = "down"
)

var errCacheMiss = errors.New("cache miss")

type MoveUseCase interface {
	GetAIMove(ctx context.Context, req *entity.MoveRequest) (*entity.MoveResult, error)
	Health(ctx context.Context) *entity.Health
}

type engineDep interface {
	Move(ctx context.Context, req *entity.MoveRequest) (*entity.MoveResult, error)
	Available() bool
}

type moveRepoDep interface {
	Save(ctx context.Context, key string, result *entity.MoveResult) error
	GetByKey(ctx context.Context, key string) (*entity.MoveResult, error)
	Ping(ctx context.Context) error
}

type moveUseCase struct {
	logger *slog.Logger

	engine   engineDep
	moveRepo moveRepoDep
}

// NewMoveUseCase builds the use case. moveRepo may be nil, in which case every request reaches the engine.
func NewMoveUseCase(logger *slog.Logger, engine engineDep, moveRepo moveRepoDep) MoveUseCase {
	return &moveUseCase{
		logger:   logger.With("component", "move"),
		engine:   engine,
		moveRepo: moveRepo,
	}
}

func (that *moveUseCase) GetAIMove(ctx context.Context, req *entity.MoveRequest) (*entity.MoveResult, error) {
	log := that.logger.With("method", "GetAIMove")

	key, cacheable := that.cacheKey(req)
	if cacheable {
		result, err := that.fromCache(ctx, key)
		if err == nil {
			log.Debug("move served from cache", "key", key, "move", result.Move)
			return result, nil
		}

		if !errors.Is(err, errCacheMiss) {
			log.Warn("failed to read move from cache", "key", key, "error", err)
		}
	}

	result, err := that.engine.Move(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to get move from engine: %w", err)
	}

	if cacheable {
		if err = that.moveRepo.Save(ctx, key, result); err != nil {
			log.Warn("failed to save move to cache", "key", key, "error", err)
		}
	}

	return result, nil
}

func (that *moveUseCase) Health(ctx context.Context) *entity.Health {
	health := &entity.Health{
		Status:         entity.StatusHealthy,
		EngineCompiled: that.engine.Available(),
		Cache:          CacheDisabled,
	}

	if that.moveRepo != nil {
		health.Cache = CacheEnabled
		if err := that.moveRepo.Ping(ctx); err != nil {
			that.logger.Warn("cache is not reachable", "error", err)
			health.Cache = CacheDown
		}
	}

	return health
}

// cacheKey only keys well-formed requests, so a malformed one can never be answered from the cache.
func (that *moveUseCase) cacheKey(req *entity.MoveRequest) (string, bool) {
	if that.moveRepo == nil {
		return "", false
	}

	if _, err := entity.ParseBoard(req.Board, req.AISymbol, req.HumanSymbol); err != nil {
		return "", false
	}

	return req.CacheKey(), true
}

func (that *moveUseCase) fromCache(ctx context.Context, key string) (*entity.MoveResult, error) {
	result, err := that.moveRepo.GetByKey(ctx, key)
	if err == nil {
		return result, nil
	}

	if errors.Is(err, repository.ErrMoveNotFound) {
		return nil, errCacheMiss
	}

	return nil, err
}
