// Package poe is a minimal client for the Poe chat completion endpoint.
package poe

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/edi-cli/edi/pkg/llm"
)

const (
	// DefaultBaseURL is the production Poe API host.
	DefaultBaseURL = "https://api.poe.com"

	completionsPath = "/v1/chat/completions"
)

// Client issues chat completion requests. One request maps to exactly
// one HTTP POST; the client never retries on its own.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// New creates a Client for the given base URL. An empty baseURL selects
// the production endpoint.
func New(baseURL string, logger *zap.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		// No client-side timeout: the caller blocks until the transport
		// resolves, and large models can take minutes.
		httpClient: &http.Client{},
		logger:     logger,
	}
}

// Send issues one completion request for the given transcript and returns
// the assistant's reply text. The transcript must be non-empty and end
// with a user turn. A well-formed response with no choices yields
// ErrNoContent.
func (c *Client) Send(ctx context.Context, apiKey, model string, transcript llm.Transcript) (string, error) {
	body, err := json.Marshal(llm.ChatRequest{
		Model:    model,
		Messages: transcript,
		Stream:   false,
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+completionsPath, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Content-Type", "application/json")

	c.logger.Debug("sending completion request",
		zap.String("model", model),
		zap.Int("message_count", len(transcript)),
		zap.Int("body_size", len(body)),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &TransportError{Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &TransportError{Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		return "", &HTTPError{StatusCode: resp.StatusCode, Reason: reason(resp.StatusCode, respBody)}
	}

	var parsed llm.ChatResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", &DecodeError{Err: err}
	}

	if len(parsed.Choices) == 0 {
		return "", ErrNoContent
	}

	reply := parsed.Reply()
	c.logger.Debug("received completion",
		zap.Int("choices", len(parsed.Choices)),
		zap.Int("reply_length", len(reply)),
	)

	return reply, nil
}

// reason extracts a human-readable failure description from a non-200
// response, preferring the endpoint's error body over the status text.
func reason(status int, body []byte) string {
	var eb llm.ErrorBody
	if err := json.Unmarshal(body, &eb); err == nil && eb.Error.Message != "" {
		return eb.Error.Message
	}

	return http.StatusText(status)
}
