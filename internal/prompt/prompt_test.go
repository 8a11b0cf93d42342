package prompt

import (
	"testing"

	"github.com/AI-Engineer-Skool/your-ai-lab/models"
	"github.com/stretchr/testify/assert"
)

// ── Compose ──────────────────────────────────────────────────────────────────

func TestCompose_JoinsWithSingleSpaces(t *testing.T) {
	body := Compose([]string{
		"This is an example of a data mart in SQL.",
		"It has two tables: fact and dimension.",
	})

	assert.Equal(t, "This is an example of a data mart in SQL. It has two tables: fact and dimension.", body)
}

func TestCompose_DropsEmptyFragments(t *testing.T) {
	assert.Equal(t, "one two", Compose([]string{"one", "", "two"}))
}

func TestCompose_Empty(t *testing.T) {
	assert.Empty(t, Compose(nil))
}

// ── BuildMessages ────────────────────────────────────────────────────────────

func TestBuildMessages_WithSystem(t *testing.T) {
	msgs := BuildMessages("You are terse.", "What is AI?")

	assert.Equal(t, []models.Message{
		{Role: models.RoleSystem, Content: "You are terse."},
		{Role: models.RoleUser, Content: "What is AI?"},
	}, msgs)
}

func TestBuildMessages_WithoutSystem(t *testing.T) {
	msgs := BuildMessages("", "What is AI?")

	assert.Equal(t, []models.Message{
		{Role: models.RoleUser, Content: "What is AI?"},
	}, msgs)
}

// ── FormatMessages ───────────────────────────────────────────────────────────

func TestFormatMessages_SystemAndUser(t *testing.T) {
	got := FormatMessages([]models.Message{
		{Role: models.RoleSystem, Content: "You are terse."},
		{Role: models.RoleUser, Content: "What is AI?"},
	})

	assert.Equal(t, "<|system|>You are terse.<|end|><|user|>What is AI?<|end|><|assistant|>", got)
}

func TestFormatMessages_UserOnly(t *testing.T) {
	got := FormatMessages([]models.Message{
		{Role: models.RoleUser, Content: "What is AI?"},
	})

	assert.Equal(t, "<|user|>What is AI?<|end|><|assistant|>", got)
}

func TestFormatMessages_OnlyLastUserMessageRendered(t *testing.T) {
	got := FormatMessages([]models.Message{
		{Role: models.RoleUser, Content: "first question"},
		{Role: models.RoleAssistant, Content: "first answer"},
		{Role: models.RoleUser, Content: "second question"},
	})

	assert.Equal(t, "<|user|>second question<|end|><|assistant|>", got)
}

func TestFormatMessages_NoUserMessage(t *testing.T) {
	got := FormatMessages([]models.Message{
		{Role: models.RoleSystem, Content: "system only"},
	})

	assert.Equal(t, "<|system|>system only<|end|>", got)
}

func TestStopTokens(t *testing.T) {
	assert.Equal(t, []string{"<|endoftext|>", "<|end|>"}, StopTokens())
}
