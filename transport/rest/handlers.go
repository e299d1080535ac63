package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/rocketscienceinc/tictactoe-ai/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
)

type MoveHandler interface {
	GetAIMove(w http.ResponseWriter, r *http.Request)
	Health(w http.ResponseWriter, r *http.Request)
	Ping(w http.ResponseWriter, _ *http.Request)
}

type errorResponse struct {
	Detail string `json:"detail"`
}

type moveHandler struct {
	logger *slog.Logger
	uMove  moveUseCase
}

func NewMoveHandler(logger *slog.Logger, uMove moveUseCase) MoveHandler {
	return &moveHandler{
		logger: logger,
		uMove:  uMove,
	}
}

func (that *moveHandler) GetAIMove(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "GetAIMove")

	var req entity.MoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Detail: "invalid payload"})
		return
	}

	result, err := that.uMove.GetAIMove(r.Context(), &req)
	if err != nil {
		log.Error("failed to get ai move", "error", err)
		writeJSON(w, statusFromError(err), errorResponse{Detail: detailFromError(err)})
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (that *moveHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, that.uMove.Health(r.Context()))
}

func (that *moveHandler) Ping(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		that.logger.Error("failed to write pong", "error", err)
	}
}

func statusFromError(err error) int {
	switch {
	case errors.Is(err, apperror.ErrMalformedInput), errors.Is(err, apperror.ErrInvalidState):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func detailFromError(err error) string {
	switch {
	case errors.Is(err, apperror.ErrEngineTimeout):
		return "Engine timeout"
	case errors.Is(err, apperror.ErrEngineUnavailable):
		return "Engine is not available"
	default:
		return "Engine error: " + err.Error()
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
