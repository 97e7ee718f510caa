package llm

// Transcript is an ordered conversation history, oldest turn first.
// The builders return a fresh slice and never mutate the receiver, so a
// caller can hold on to an older transcript across exchanges.
type Transcript []Message

// WithUser returns a copy of the transcript with a user turn appended.
func (t Transcript) WithUser(content string) Transcript {
	return t.with(Message{Role: RoleUser, Content: content})
}

// WithAssistant returns a copy of the transcript with an assistant turn appended.
func (t Transcript) WithAssistant(content string) Transcript {
	return t.with(Message{Role: RoleAssistant, Content: content})
}

func (t Transcript) with(m Message) Transcript {
	out := make(Transcript, len(t), len(t)+1)
	copy(out, t)
	return append(out, m)
}
