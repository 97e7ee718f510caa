package llm

import "strings"

// ChatResponse represents a chat completion response. Fields the endpoint
// returns beyond the choices array are ignored.
type ChatResponse struct {
	Choices []Choice `json:"choices"` // Candidate completions, usually exactly one
}

// Choice is a single candidate completion.
type Choice struct {
	Message Message `json:"message"` // The assistant's message
}

// Reply concatenates the content of all choices in array order into the
// assistant's reply text.
func (r *ChatResponse) Reply() string {
	var b strings.Builder
	for _, c := range r.Choices {
		b.WriteString(c.Message.Content)
	}
	return b.String()
}
