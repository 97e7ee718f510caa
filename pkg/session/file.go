package session

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/edi-cli/edi/pkg/llm"
)

// FileStore keeps the session record as a JSON array of role/content
// objects in a single file. Writes overwrite the whole file; concurrent
// program runs against the same file are not coordinated (last writer
// wins), which is fine for a single-user tool.
type FileStore struct {
	path string
}

// NewFileStore creates a FileStore for the given path. The file does not
// need to exist yet.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Save overwrites the session record with the full transcript.
func (s *FileStore) Save(ctx context.Context, transcript llm.Transcript) error {
	if transcript == nil {
		transcript = llm.Transcript{}
	}

	data, err := json.Marshal(transcript)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create session directory: %w", err)
	}

	// The transcript may contain sensitive conversation content
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}

	return nil
}

// Load returns the saved transcript. A missing or undecodable record is
// treated as "no prior session".
func (s *FileStore) Load(ctx context.Context) (llm.Transcript, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return llm.Transcript{}, nil
	}

	var transcript llm.Transcript
	if err := json.Unmarshal(data, &transcript); err != nil {
		return llm.Transcript{}, nil
	}

	if transcript == nil {
		transcript = llm.Transcript{}
	}

	return transcript, nil
}

// Close is a no-op for file-backed stores.
func (s *FileStore) Close() error {
	return nil
}
