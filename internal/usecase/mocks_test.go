package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
)

type mockEngine struct {
	mock.Mock
}

func (that *mockEngine) Move(ctx context.Context, req *entity.MoveRequest) (*entity.MoveResult, error) {
	args := that.Called(ctx, req)

	result, _ := args.Get(0).(*entity.MoveResult)

	return result, args.Error(1)
}

func (that *mockEngine) Available() bool {
	return that.Called().Bool(0)
}

type mockMoveRepo struct {
	mock.Mock
}

func (that *mockMoveRepo) Save(ctx context.Context, key string, result *entity.MoveResult) error {
	return that.Called(ctx, key, result).Error(0)
}

func (that *mockMoveRepo) GetByKey(ctx context.Context, key string) (*entity.MoveResult, error) {
	args := that.Called(ctx, key)

	result, _ := args.Get(0).(*entity.MoveResult)

	return result, args.Error(1)
}

func (that *mockMoveRepo) Ping(ctx context.Context) error {
	return that.Called(ctx).Error(0)
}
