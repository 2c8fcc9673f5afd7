package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"llm_advisor/internal/adapters"
	"llm_advisor/internal/domain/game"
	errs "llm_advisor/internal/errors"
)

const (
	contentFilterCode      = "content_filter"
	contentFilterInnerCode = "ResponsibleAIPolicyViolation"
)

type LlmRepo struct {
	adapter *adapters.LlmAdapter
	log     *zap.SugaredLogger
}

func NewLlmRepository(adapter *adapters.LlmAdapter, log *zap.SugaredLogger) *LlmRepo {
	return &LlmRepo{adapter: adapter, log: log}
}

func (l *LlmRepo) Deployment() string {
	return l.adapter.Deployment
}

// SendRequestToLlm делает один запрос chat completion в режиме JSON.
// Ошибки классифицируются здесь: ErrContentFilter, ErrLlmTransport или ErrLlmEmptyResponse.
func (l *LlmRepo) SendRequestToLlm(ctx context.Context, systemPrompt, userPrompt string) (game.Completion, error) {
	requestID := uuid.New().String()

	req := openai.ChatCompletionRequest{
		Model: l.adapter.Deployment,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
		// для этой модели Azure не поддерживает json_schema, только json_object
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	}

	l.log.Debugw("sending chat completion", "request_id", requestID, "deployment", l.adapter.Deployment)

	resp, err := l.adapter.Client.CreateChatCompletion(ctx, req)
	if err != nil {
		return game.Completion{RequestID: requestID}, classifyLlmError(err)
	}

	if len(resp.Choices) == 0 {
		return game.Completion{RequestID: requestID}, errs.ErrLlmEmptyResponse
	}

	choice := resp.Choices[0]
	if choice.FinishReason == openai.FinishReasonContentFilter {
		return game.Completion{RequestID: requestID}, fmt.Errorf("%w: finish reason %s", errs.ErrContentFilter, choice.FinishReason)
	}

	return game.Completion{
		RequestID:    requestID,
		Content:      choice.Message.Content,
		FinishReason: string(choice.FinishReason),
		Tokens:       usageToTokens(resp.Usage),
	}, nil
}

func classifyLlmError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) && isContentFilter(apiErr) {
		return fmt.Errorf("%w: %w", errs.ErrContentFilter, err)
	}
	return fmt.Errorf("%w: %w", errs.ErrLlmTransport, err)
}

func isContentFilter(apiErr *openai.APIError) bool {
	if code, ok := apiErr.Code.(string); ok && code == contentFilterCode {
		return true
	}
	return apiErr.InnerError != nil && apiErr.InnerError.Code == contentFilterInnerCode
}

func usageToTokens(usage openai.Usage) map[string]int {
	tokens := map[string]int{
		"prompt_tokens":     usage.PromptTokens,
		"completion_tokens": usage.CompletionTokens,
		"total_tokens":      usage.TotalTokens,
	}
	if usage.CompletionTokensDetails != nil && usage.CompletionTokensDetails.ReasoningTokens > 0 {
		tokens["reasoning_tokens"] = usage.CompletionTokensDetails.ReasoningTokens
	}
	return tokens
}
