package models

import "time"

// StreamToken is one token of streamed completion output together with the
// time elapsed since the stream started. The elapsed value of the last token
// is the total stream duration.
type StreamToken struct {
	Content string        `json:"content"`
	Elapsed time.Duration `json:"elapsed"`
}

// StreamResult summarises a finished completion stream.
type StreamResult struct {
	// Response is the concatenation of every received token.
	Response string `json:"response"`

	// TokenCount is the number of non-empty tokens received.
	TokenCount int `json:"token_count"`

	// Elapsed is the total stream duration.
	Elapsed time.Duration `json:"elapsed"`
}
