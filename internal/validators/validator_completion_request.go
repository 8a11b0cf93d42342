package validators

import (
	"context"
	"strings"

	"github.com/AI-Engineer-Skool/your-ai-lab/models"
)

const (
	FieldPrompt      = "prompt"
	FieldModel       = "model"
	FieldTopP        = "top_p"
	FieldTemperature = "temperature"
	FieldMaxTokens   = "max_tokens"
	FieldStop        = "stop"
)

// allSamplingFields is the default field set applied when the caller does not
// scope the validation.
var allSamplingFields = []string{
	FieldPrompt,
	FieldModel,
	FieldTopP,
	FieldTemperature,
	FieldMaxTokens,
	FieldStop,
}

type CompletionRequestValidator struct {
}

func NewCompletionRequestValidator() Validator {
	return &CompletionRequestValidator{}
}

func (v *CompletionRequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CompletionRequest:
		return v.validateCompletionRequest(ctx, value, fields...)
	case *models.CompletionRequest:
		return v.validateCompletionRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *CompletionRequestValidator) validateCompletionRequest(_ context.Context, req models.CompletionRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = allSamplingFields
	}

	for _, f := range fields {
		switch f {
		case FieldPrompt:
			if strings.TrimSpace(req.Prompt) == "" {
				return ErrEmptyPrompt
			}
		case FieldModel:
			if req.Model == "" {
				return ErrEmptyModel
			}
		case FieldTopP:
			if req.TopP < 0 || req.TopP > 1 {
				return ErrInvalidTopP
			}
		case FieldTemperature:
			if req.Temperature < 0 || req.Temperature > 2 {
				return ErrInvalidTemperature
			}
		case FieldMaxTokens:
			if req.MaxTokens < 0 {
				return ErrInvalidMaxTokens
			}
		case FieldStop:
			for _, stop := range req.Stop {
				if strings.TrimSpace(stop) == "" {
					return ErrBlankStopToken
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
