package websocket

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-ai/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
)

func (that *Server) handleMoveGet(ctx context.Context, msg *Message, conn *websocket.Conn) error {
	log := that.logger.With("method", "handleMoveGet")

	var req entity.MoveRequest
	if err := json.Unmarshal(msg.Payload, &req); err != nil {
		log.Warn("failed to unmarshal payload", "error", err)
		return that.sendErrorResponse(conn, "invalid payload")
	}

	result, err := that.uMove.GetAIMove(ctx, &req)
	if err != nil {
		log.Error("failed to get ai move", "error", err)
		return that.sendErrorResponse(conn, errorText(err))
	}

	return that.sendMessage(conn, msg.Action, result)
}

func errorText(err error) string {
	switch {
	case errors.Is(err, apperror.ErrEngineTimeout):
		return "engine timeout"
	case errors.Is(err, apperror.ErrMalformedInput), errors.Is(err, apperror.ErrInvalidState):
		return err.Error()
	default:
		return "engine error"
	}
}
