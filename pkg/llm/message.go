// Package llm provides internal representations of chat completion API
// requests and responses in the OpenAI-compatible wire format spoken by
// the Poe endpoint.
package llm

// Message represents a single message in a conversation.
type Message struct {
	Role    string `json:"role"`    // "user" or "assistant"
	Content string `json:"content"` // The message content
}

// Roles recognized by the completion endpoint.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)
