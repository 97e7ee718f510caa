// Package session persists the conversation transcript between runs.
package session

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/edi-cli/edi/pkg/llm"
)

// Store persists and recalls the most recent conversation transcript.
// Save replaces the previous record wholesale; the tool never appends.
// Load is best-effort: a missing or unreadable record is treated as "no
// prior session" and comes back as an empty transcript, never an error
// the caller has to handle.
type Store interface {
	// Save overwrites the session record with the full transcript.
	Save(ctx context.Context, transcript llm.Transcript) error

	// Load returns the most recently saved transcript, or an empty one.
	Load(ctx context.Context) (llm.Transcript, error)

	// Close releases any resources held by the store.
	Close() error
}

// DefaultPath returns the default location of the session record.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}

	return filepath.Join(home, ".config", "edi", "session.json"), nil
}
