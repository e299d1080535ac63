package apperror

import "errors"

var (
	ErrInvalidIndex   = errors.New("cell index is out of range")
	ErrIllegalMove    = errors.New("cell is already occupied")
	ErrInvalidState   = errors.New("board has no move to compute")
	ErrMalformedInput = errors.New("malformed input")

	ErrEngineTimeout     = errors.New("engine timeout")
	ErrEngineFailed      = errors.New("engine failed")
	ErrEngineUnavailable = errors.New("engine binary not found")
)
