package errors

import "errors"

var (
	ErrContentFilter    = errors.New("llm request rejected by content filter")
	ErrLlmTransport     = errors.New("llm request failed")
	ErrLlmEmptyResponse = errors.New("llm returned no choices")
	ErrMalformedPayload = errors.New("llm payload is not a valid json object")
	ErrInvalidBoard     = errors.New("invalid board")
	ErrConfigMissing    = errors.New("required configuration value is missing")
)
