package chat

// Config is the interaction loop configuration.
type Config struct {
	// Model is the bot the conversation is held with.
	Model string

	// APIKey authenticates requests to the completion endpoint.
	APIKey string

	// Resume seeds the transcript from the previous session without
	// asking. Without it, interactive runs ask once at startup.
	Resume bool

	// Interactive is true when stdin is a terminal. Piped input runs a
	// single exchange with no prompts, no styling, and no progress
	// indicator.
	Interactive bool
}
