package game

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"llm_advisor/internal/domain/game"
	errs "llm_advisor/internal/errors"
)

type LlmStore interface {
	SendRequestToLlm(ctx context.Context, systemPrompt, userPrompt string) (game.Completion, error)
	Deployment() string
}

type GameUseCase struct {
	llm LlmStore
	log *zap.SugaredLogger
}

func NewGameUseCase(llm LlmStore, log *zap.SugaredLogger) *GameUseCase {
	return &GameUseCase{llm: llm, log: log}
}

// GetMove asks the model for the next move of color. It never returns an
// error: every failure is logged and reported as a nil suggestion, and the
// caller may simply call again.
func (g *GameUseCase) GetMove(ctx context.Context, board []int, boardWidth, boardRange int, moveHistory []string, color int) *game.MoveSuggestion {
	suggestion, err := g.suggestMove(ctx, board, boardWidth, boardRange, moveHistory, color)
	if err != nil {
		if errors.Is(err, errs.ErrContentFilter) {
			// на терминах го фильтр срабатывает часто, повторный запрос обычно проходит
			g.log.Warnw("content filter triggered, move can be requested again",
				"deployment", g.llm.Deployment(), "error", err)
		} else {
			g.log.Errorw("failed to get move from llm",
				"deployment", g.llm.Deployment(), "error", err)
		}
		return nil
	}
	return suggestion
}

func (g *GameUseCase) suggestMove(ctx context.Context, board []int, boardWidth, boardRange int, moveHistory []string, color int) (*game.MoveSuggestion, error) {
	if boardRange < 1 || len(board) < boardRange*boardRange {
		return nil, fmt.Errorf("%w: %d cells for range %d", errs.ErrInvalidBoard, len(board), boardRange)
	}

	boardText := FormatBoardAsText(board, boardWidth, boardRange)
	userPrompt := UserPrompt(boardText, boardWidth, moveHistory, color)

	g.log.Infof("Querying %s for move suggestion...", g.llm.Deployment())

	completion, err := g.llm.SendRequestToLlm(ctx, SystemPrompt(), userPrompt)
	if err != nil {
		return nil, err
	}

	suggestion, err := ParseMoveContent(completion.Content)
	if err != nil {
		g.log.Debugw("unparsable llm content", "request_id", completion.RequestID, "content", completion.Content)
		return nil, err
	}
	if completion.Tokens != nil {
		suggestion.Tokens = completion.Tokens
	}
	g.log.Debugf("%s using JSON mode", g.llm.Deployment())

	g.logSuggestion(completion.RequestID, suggestion)

	return &suggestion, nil
}

func (g *GameUseCase) logSuggestion(requestID string, suggestion game.MoveSuggestion) {
	g.log.Infow(fmt.Sprintf("%s suggested move: %s (type: %s)", g.llm.Deployment(), suggestion.Move, suggestion.MoveType),
		"request_id", requestID, "tokens", suggestion.Tokens)
	if suggestion.Thinking != "" {
		g.log.Infof("=== THINKING PROCESS ===\n%s\n========================", suggestion.Thinking)
	}
	g.log.Infof("Reasoning: %s", suggestion.Reasoning)
}
