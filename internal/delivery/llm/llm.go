package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"llm_advisor/internal/domain/game"
	"llm_advisor/internal/httpresponse"
	"llm_advisor/internal/utils"
)

type MoveAdvisor interface {
	GetMove(ctx context.Context, board []int, boardWidth, boardRange int, moveHistory []string, color int) *game.MoveSuggestion
}

type LlmHandler struct {
	log     *zap.SugaredLogger
	advisor MoveAdvisor
}

func NewLlmHandler(log *zap.SugaredLogger, advisor MoveAdvisor) *LlmHandler {
	return &LlmHandler{log: log, advisor: advisor}
}

// HandleSuggestMove godoc
// @Summary Ход от LLM
// @Description Передаёт позицию модели и возвращает предложенный ход. 502 означает, что модель не ответила и запрос можно повторить.
// @Tags llm
// @Accept json
// @Produce json
// @Param request body game.MoveRequest true "Позиция и история ходов"
// @Success 200 {object} game.MoveSuggestion
// @Failure 400 {object} httpresponse.ErrorResponse
// @Failure 502 {object} httpresponse.ErrorResponse
// @Router /llmMove [post]
func (h *LlmHandler) HandleSuggestMove(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.log.Error("HandleSuggestMove: only POST method is allowed")
		httpresponse.WriteError(w, http.StatusMethodNotAllowed, "Only POST method is allowed")
		return
	}

	var req game.MoveRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			h.log.Warnf("HandleSuggestMove: request body exceeds %d bytes", maxErr.Limit)
			httpresponse.WriteError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request body exceeds %d bytes", maxErr.Limit))
			return
		}
		h.log.Error("HandleSuggestMove: JSON decode error: ", err)
		httpresponse.WriteError(w, http.StatusBadRequest, httpresponse.MALFORMEDJSON_errorDesc+": "+err.Error())
		return
	}

	if err := validateMoveRequest(req); err != nil {
		h.log.Warnf("HandleSuggestMove: invalid request: %v", err)
		httpresponse.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	suggestion := h.advisor.GetMove(r.Context(), req.Board, req.BoardWidth, req.BoardRange, req.MoveHistory, req.Color)
	if suggestion == nil {
		httpresponse.WriteError(w, http.StatusBadGateway, "no move suggestion, try again")
		return
	}

	httpresponse.WriteResponseWithStatus(w, http.StatusOK, suggestion)
}

func (h *LlmHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	httpresponse.WriteResponseWithStatus(w, http.StatusOK, "ok")
}

func validateMoveRequest(req game.MoveRequest) error {
	if !game.IsSupportedWidth(req.BoardWidth) {
		return fmt.Errorf("unsupported board width %d", req.BoardWidth)
	}
	if req.BoardRange != req.BoardWidth+2 {
		return fmt.Errorf("board range must be %d, got %d", req.BoardWidth+2, req.BoardRange)
	}
	if len(req.Board) != req.BoardRange*req.BoardRange {
		return fmt.Errorf("board must have %d cells, got %d", req.BoardRange*req.BoardRange, len(req.Board))
	}
	if req.Color != game.ColorBlack && req.Color != game.ColorWhite {
		return fmt.Errorf("color must be %d or %d, got %d", game.ColorBlack, game.ColorWhite, req.Color)
	}
	return nil
}
