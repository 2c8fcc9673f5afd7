package game

import (
	"encoding/json"
	"fmt"
	"strings"

	"llm_advisor/internal/domain/game"
	errs "llm_advisor/internal/errors"
)

const (
	labeledFence = "```json"
	bareFence    = "```"
	thinkOpen    = "<think>"
	thinkClose   = "</think>"
)

// movePayload: ответ модели. Все поля необязательные, значения по умолчанию
// подставляет ParseMovePayload.
type movePayload struct {
	MoveType  *string `json:"move_type"`
	Move      *string `json:"move"`
	Reasoning *string `json:"reasoning"`
	Thinking  *string `json:"thinking"`
}

// extractThinkTrace cuts a <think>...</think> block out of the content.
// Some deployments drop the opening tag, then everything before </think> is the trace.
func extractThinkTrace(content string) (rest string, trace string) {
	closeIdx := strings.Index(content, thinkClose)
	if closeIdx == -1 {
		return content, ""
	}
	before, after := content[:closeIdx], content[closeIdx+len(thinkClose):]
	if openIdx := strings.Index(before, thinkOpen); openIdx != -1 {
		return before[:openIdx] + after, strings.TrimSpace(before[openIdx+len(thinkOpen):])
	}
	return after, strings.TrimSpace(before)
}

// stripCodeFence accepts one ```json fence or a single pair of bare fences.
// Any other fence layout is rejected.
func stripCodeFence(content string) (string, error) {
	if strings.Contains(content, labeledFence) {
		if strings.Count(content, labeledFence) != 1 {
			return "", fmt.Errorf("%w: more than one labeled code fence", errs.ErrMalformedPayload)
		}
		_, after, _ := strings.Cut(content, labeledFence)
		inner, _, _ := strings.Cut(after, bareFence)
		return strings.TrimSpace(inner), nil
	}

	if strings.Contains(content, bareFence) {
		parts := strings.Split(content, bareFence)
		if len(parts) != 3 {
			return "", fmt.Errorf("%w: unexpected code fence layout", errs.ErrMalformedPayload)
		}
		return strings.TrimSpace(parts[1]), nil
	}

	return content, nil
}

func trimPreamble(content string) string {
	if strings.HasPrefix(content, "{") {
		return content
	}
	if start := strings.Index(content, "{"); start != -1 {
		return content[start:]
	}
	return content
}

// RepairPayload strips fences and preamble text and returns the JSON object
// text together with any think trace found in the content.
func RepairPayload(content string) (payload string, trace string, err error) {
	content, trace = extractThinkTrace(strings.TrimSpace(content))

	content, err = stripCodeFence(strings.TrimSpace(content))
	if err != nil {
		return "", trace, err
	}

	content = trimPreamble(content)
	if !strings.HasPrefix(content, "{") {
		return "", trace, fmt.Errorf("%w: no json object found", errs.ErrMalformedPayload)
	}

	return content, trace, nil
}

// ParseMovePayload decodes a repaired payload and applies the field defaults.
func ParseMovePayload(payload string) (game.MoveSuggestion, error) {
	var data movePayload
	if err := json.Unmarshal([]byte(payload), &data); err != nil {
		return game.MoveSuggestion{}, fmt.Errorf("%w: %w", errs.ErrMalformedPayload, err)
	}

	suggestion := game.MoveSuggestion{
		MoveType: game.MoveTypeCoordinate,
		Tokens:   map[string]int{},
	}
	if data.MoveType != nil {
		suggestion.MoveType = *data.MoveType
	}
	if data.Move != nil {
		suggestion.Move = strings.ToUpper(strings.TrimSpace(*data.Move))
	}
	if data.Reasoning != nil {
		suggestion.Reasoning = *data.Reasoning
	}
	if data.Thinking != nil {
		suggestion.Thinking = *data.Thinking
	}

	return suggestion, nil
}

// ParseMoveContent runs RepairPayload and ParseMovePayload on raw model output.
// An empty "thinking" field is filled from the think trace.
func ParseMoveContent(content string) (game.MoveSuggestion, error) {
	payload, trace, err := RepairPayload(content)
	if err != nil {
		return game.MoveSuggestion{}, err
	}

	suggestion, err := ParseMovePayload(payload)
	if err != nil {
		return game.MoveSuggestion{}, err
	}

	if suggestion.Thinking == "" {
		suggestion.Thinking = trace
	}

	return suggestion, nil
}
