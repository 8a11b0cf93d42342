// SPDX-License-Identifier: Apache-2.0

// Package prompt composes user input into the raw prompt string expected by
// the Phi instruct models served from the lab's LocalAI setup.
//
// The completion endpoint takes a single pre-formatted prompt rather than a
// chat message list, so the chat-template formatting that a bigger serving
// stack would do server-side happens here.
package prompt

import (
	"strings"

	"github.com/AI-Engineer-Skool/your-ai-lab/models"
)

// Phi chat template markers. The end marker doubles as a stop token so the
// model does not run past its own turn.
const (
	SystemMarker    = "<|system|>"
	UserMarker      = "<|user|>"
	AssistantMarker = "<|assistant|>"
	EndMarker       = "<|end|>"
	EndOfTextMarker = "<|endoftext|>"
)

// Default example used in one-shot mode when no prompt flags are given, so a
// bare invocation still demonstrates the full round trip.
const (
	DefaultTitle   = "AI Explanation"
	DefaultContent = "Explain what AI is in two sentences."
)

// StopTokens returns the stop sequences sent with every completion request.
func StopTokens() []string {
	return []string{EndOfTextMarker, EndMarker}
}

// Compose joins content fragments into the prompt body with single spaces.
// Empty fragments are dropped; surrounding whitespace on each fragment is
// preserved only internally, never at the seams.
func Compose(fragments []string) string {
	parts := make([]string, 0, len(fragments))
	for _, f := range fragments {
		if f == "" {
			continue
		}
		parts = append(parts, f)
	}
	return strings.Join(parts, " ")
}

// BuildMessages assembles the chat turn list for a run: an optional system
// message followed by the user prompt body.
func BuildMessages(systemPrompt, body string) []models.Message {
	messages := make([]models.Message, 0, 2)
	if systemPrompt != "" {
		messages = append(messages, models.Message{Role: models.RoleSystem, Content: systemPrompt})
	}
	messages = append(messages, models.Message{Role: models.RoleUser, Content: body})
	return messages
}

// FormatMessages renders chat messages into the Phi template:
//
//	<|system|>...<|end|><|user|>...<|end|><|assistant|>
//
// The system message is optional. Only the last user message is rendered;
// the trailing assistant marker cues the model to answer.
func FormatMessages(messages []models.Message) string {
	var b strings.Builder

	for _, msg := range messages {
		if msg.Role == models.RoleSystem {
			b.WriteString(SystemMarker)
			b.WriteString(msg.Content)
			b.WriteString(EndMarker)
			break
		}
	}

	var lastUser *models.Message
	for i := range messages {
		if messages[i].Role == models.RoleUser {
			lastUser = &messages[i]
		}
	}
	if lastUser != nil {
		b.WriteString(UserMarker)
		b.WriteString(lastUser.Content)
		b.WriteString(EndMarker)
		b.WriteString(AssistantMarker)
	}

	return b.String()
}
