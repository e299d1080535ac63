// Package engine runs the move engine as a child process, one process per request.
package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/rocketscienceinc/tictactoe-ai/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
	"github.com/rocketscienceinc/tictactoe-ai/transport/stdio"
)

type Client interface {
	Move(ctx context.Context, req *entity.MoveRequest) (*entity.MoveResult, error)
	Available() bool
}

type processClient struct {
	logger *slog.Logger

	path    string
	args    []string
	env     []string
	timeout time.Duration
}

// Option adjusts how the engine process is started.
type Option func(*processClient)

// WithArgs passes extra command line arguments to the engine.
func WithArgs(args ...string) Option {
	return func(that *processClient) {
		that.args = args
	}
}

// WithEnv appends variables to the environment inherited by the engine.
func WithEnv(env ...string) Option {
	return func(that *processClient) {
		that.env = env
	}
}

func NewClient(logger *slog.Logger, path string, timeout time.Duration, opts ...Option) Client {
	client := &processClient{
		logger:  logger.With("component", "engine"),
		path:    path,
		timeout: timeout,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

func (that *processClient) Move(ctx context.Context, req *entity.MoveRequest) (*entity.MoveResult, error) {
	log := that.logger.With("method", "Move")

	input, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, that.timeout)
	defer cancel()

	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, that.path, that.args...)
	cmd.Stdin = bytes.NewReader(input)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if len(that.env) > 0 {
		cmd.Env = append(os.Environ(), that.env...)
	}

	started := time.Now()
	err = cmd.Run()

	log.Debug("engine finished", "elapsed", time.Since(started), "error", err)

	if err != nil {
		return nil, that.processError(ctx, err, stderr.String())
	}

	var result entity.MoveResult
	if err = json.Unmarshal(stdout.Bytes(), &result); err != nil {
		return nil, fmt.Errorf("%w: invalid engine output: %v", apperror.ErrEngineFailed, err)
	}

	return &result, nil
}

// Available reports whether the engine binary exists and is executable.
func (that *processClient) Available() bool {
	info, err := os.Stat(that.path)
	if err != nil {
		return false
	}

	return info.Mode().IsRegular() && info.Mode().Perm()&0o111 != 0
}

func (that *processClient) processError(ctx context.Context, err error, stderr string) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return apperror.ErrEngineTimeout
	}

	if errors.Is(err, exec.ErrNotFound) || errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %s", apperror.ErrEngineUnavailable, that.path)
	}

	detail := strings.TrimSpace(stderr)

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return fmt.Errorf("%w: %v", apperror.ErrEngineFailed, err)
	}

	switch exitErr.ExitCode() {
	case stdio.ExitMalformedInput:
		return fmt.Errorf("%w: %s", apperror.ErrMalformedInput, detail)
	case stdio.ExitInvalidState:
		return fmt.Errorf("%w: %s", apperror.ErrInvalidState, detail)
	default:
		return fmt.Errorf("%w: exit code %d: %s", apperror.ErrEngineFailed, exitErr.ExitCode(), detail)
	}
}
