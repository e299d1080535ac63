package websocket

import (
	"encoding/json"
	"fmt"

	"github.com/gorilla/websocket"
)

const (
	actionMoveGet = "move:get"
	actionError   = "error"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type ErrorPayload struct {
	Error string `json:"error"`
}

func (that *Server) sendMessage(conn *websocket.Conn, action string, payload any) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	if err = conn.WriteJSON(Message{Action: action, Payload: payloadJSON}); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

func (that *Server) sendErrorResponse(conn *websocket.Conn, errMsg string) error {
	return that.sendMessage(conn, actionError, ErrorPayload{Error: errMsg})
}
