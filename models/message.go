package models

// Chat roles understood by the prompt formatter.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single chat turn sent to the model. The role decides where the
// content lands in the formatted prompt template.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
