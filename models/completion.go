package models

// CompletionRequest is the request body for POST /completions.
//
// The parameter defaults mirror what the lab's LocalAI setup expects for the
// Phi instruct models: low top_p and temperature, the template stop tokens,
// and a 1024-token cap.
type CompletionRequest struct {
	// Prompt is the fully formatted template string, not raw chat messages.
	Prompt string `json:"prompt"`

	Model  string `json:"model"`
	Stream bool   `json:"stream"`

	TopP             float64  `json:"top_p"`
	Temperature      float64  `json:"temperature"`
	Stop             []string `json:"stop,omitempty"`
	MaxTokens        int      `json:"max_tokens"`
	PresencePenalty  float64  `json:"presence_penalty"`
	FrequencyPenalty float64  `json:"frequency_penalty"`
}

// CompletionChoice is one generated alternative inside a completion response
// or stream chunk. Completion endpoints put the generated text in Text.
type CompletionChoice struct {
	Text         string `json:"text"`
	Index        int    `json:"index"`
	FinishReason string `json:"finish_reason,omitempty"`
}

// CompletionUsage reports token accounting for a finished completion.
type CompletionUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// CompletionChunk is a single parsed body of a completion response. For
// streaming requests every SSE "data:" line decodes into one chunk; for
// non-streaming requests the whole body is one chunk.
type CompletionChunk struct {
	ID      string             `json:"id,omitempty"`
	Object  string             `json:"object,omitempty"`
	Created int64              `json:"created,omitempty"`
	Model   string             `json:"model,omitempty"`
	Choices []CompletionChoice `json:"choices"`
	Usage   *CompletionUsage   `json:"usage,omitempty"`
}

// Text returns the generated text of the first choice, or the empty string if
// the chunk carries no choices.
func (c CompletionChunk) Text() string {
	if len(c.Choices) == 0 {
		return ""
	}
	return c.Choices[0].Text
}
