package llm

// ChatRequest represents a chat completion request.
type ChatRequest struct {
	Model    string    `json:"model"`    // Bot name (e.g., "Assistant", "GPT-5")
	Messages []Message `json:"messages"` // Conversation history, oldest first
	Stream   bool      `json:"stream"`   // Always false; the client waits for the full reply
}
