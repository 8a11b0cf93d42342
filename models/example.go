package models

import "time"

// Example is a single recorded prompt run: the composed prompt that was sent
// to the model together with the fully aggregated response and run metrics.
// Examples form the local library that the TUI browses and the one-shot mode
// appends to.
type Example struct {
	// ExampleID is the client-generated identifier (UUIDv7).
	ExampleID string `json:"example_id"`

	// Title is the user-supplied label for the run (-t flag).
	Title string `json:"title"`

	// Model is the model name the completion was requested from.
	Model string `json:"model"`

	// Prompt is the composed user prompt body, before template formatting.
	Prompt string `json:"prompt"`

	// Response is the aggregated completion text.
	Response string `json:"response"`

	// Fingerprint is the keyed hash of model+prompt, used to spot reruns of
	// the same example.
	Fingerprint string `json:"fingerprint"`

	// TokenCount is the number of streamed chunks received for the run.
	TokenCount int `json:"token_count"`

	// Elapsed is the wall-clock duration of the completion stream.
	Elapsed time.Duration `json:"elapsed"`

	CreatedAt time.Time `json:"created_at"`

	// Deleted marks the example as removed from the library without
	// physically dropping the row.
	Deleted bool `json:"deleted"`
}

// ExampleFilter narrows ListExamples results. Zero-value fields are ignored,
// so the empty filter returns the whole library.
type ExampleFilter struct {
	// Models restricts results to runs of the listed model names.
	Models []string `json:"models,omitempty"`

	// TitleLike is a case-insensitive substring match on the title.
	TitleLike string `json:"title_like,omitempty"`

	// Limit caps the number of returned rows; zero means no cap.
	Limit uint64 `json:"limit,omitempty"`
}
