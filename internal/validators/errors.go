package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyPrompt        = errors.New("prompt is required")
	ErrEmptyModel         = errors.New("model is required")
	ErrInvalidTopP        = errors.New("top_p must be between 0 and 1")
	ErrInvalidTemperature = errors.New("temperature must be between 0 and 2")
	ErrInvalidMaxTokens   = errors.New("max_tokens must not be negative")
	ErrBlankStopToken     = errors.New("stop tokens must not be blank")
)
