// Package stdio speaks the engine protocol: one JSON request in, one JSON line out.
package stdio

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/rocketscienceinc/tictactoe-ai/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
)

const (
	ExitFailure        = 1
	ExitMalformedInput = 2
	ExitInvalidState   = 3
)

type bot interface {
	MakeTurn(req *entity.MoveRequest) (*entity.MoveResult, error)
}

// Serve reads a single request from r, asks the bot for a move and writes the result to w.
func Serve(r io.Reader, w io.Writer, bot bot) error {
	req, err := ReadRequest(r)
	if err != nil {
		return err
	}

	result, err := bot.MakeTurn(req)
	if err != nil {
		return fmt.Errorf("failed to make turn: %w", err)
	}

	if err = json.NewEncoder(w).Encode(result); err != nil {
		return fmt.Errorf("failed to write response: %w", err)
	}

	return nil
}

// ReadRequest decodes exactly one JSON object. Anything after it is rejected.
func ReadRequest(r io.Reader) (*entity.MoveRequest, error) {
	decoder := json.NewDecoder(r)

	var req entity.MoveRequest
	if err := decoder.Decode(&req); err != nil {
		return nil, fmt.Errorf("%w: failed to decode request: %v", apperror.ErrMalformedInput, err)
	}

	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: unexpected data after request", apperror.ErrMalformedInput)
	}

	return &req, nil
}

// ExitCode maps an error returned by Serve to the process exit status.
func ExitCode(err error) int {
	switch {
	case errors.Is(err, apperror.ErrMalformedInput):
		return ExitMalformedInput
	case errors.Is(err, apperror.ErrInvalidState):
		return ExitInvalidState
	default:
		return ExitFailure
	}
}
