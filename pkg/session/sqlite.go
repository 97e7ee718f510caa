package session

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/edi-cli/edi/pkg/llm"
)

// SQLiteStore keeps the session record in a SQLite database. Unlike the
// flat file it retains superseded sessions as history; Load only ever
// sees the live one.
type SQLiteStore struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS sessions (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
	live       INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS turns (
	session_id INTEGER NOT NULL REFERENCES sessions(id) ON DELETE CASCADE,
	position   INTEGER NOT NULL,
	role       TEXT NOT NULL,
	content    TEXT NOT NULL,
	PRIMARY KEY (session_id, position)
);

CREATE INDEX IF NOT EXISTS idx_sessions_live ON sessions(live);
`

// NewSQLiteStore opens (and if needed initializes) a SQLite session
// database at path. Use ":memory:" for an in-memory database.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// A single connection keeps ":memory:" databases coherent and is
	// plenty for a single-user tool.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Save retires the live session and inserts the full transcript as the
// new one, all in a single transaction.
func (s *SQLiteStore) Save(ctx context.Context, transcript llm.Transcript) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `UPDATE sessions SET live = 0 WHERE live = 1`); err != nil {
		return fmt.Errorf("retire previous session: %w", err)
	}

	res, err := tx.ExecContext(ctx, `INSERT INTO sessions (live) VALUES (1)`)
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("resolve session id: %w", err)
	}

	for i, msg := range transcript {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO turns (session_id, position, role, content) VALUES (?, ?, ?, ?)`,
			id, i, msg.Role, msg.Content,
		); err != nil {
			return fmt.Errorf("insert turn %d: %w", i, err)
		}
	}

	return tx.Commit()
}

// Load returns the live session's transcript in conversation order. Any
// read failure degrades to an empty transcript.
func (s *SQLiteStore) Load(ctx context.Context) (llm.Transcript, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT t.role, t.content
		FROM turns t
		JOIN sessions s ON s.id = t.session_id
		WHERE s.live = 1
		ORDER BY t.position`)
	if err != nil {
		return llm.Transcript{}, nil
	}
	defer rows.Close()

	transcript := llm.Transcript{}
	for rows.Next() {
		var msg llm.Message
		if err := rows.Scan(&msg.Role, &msg.Content); err != nil {
			return llm.Transcript{}, nil
		}
		transcript = append(transcript, msg)
	}

	if err := rows.Err(); err != nil {
		return llm.Transcript{}, nil
	}

	return transcript, nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
