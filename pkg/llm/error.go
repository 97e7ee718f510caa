package llm

// ErrorBody is the error payload the endpoint returns on non-200 responses.
type ErrorBody struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}
