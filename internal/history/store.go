// Package history persists conversations, document queries, and feedback
// to SQLite for later review.
package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/nutmegai/nutmeg/internal/models"
)

// Store records chat and registry activity in SQLite.
type Store struct {
	db *sql.DB
}

// New opens or creates the history database at dbPath and initializes the
// schema. Parent directories are created if they do not exist.
func New(dbPath string) (*Store, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable WAL: %w", err)
	}

	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &Store{db: db}, nil
}

func initSchema(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS chat_sessions (
		id TEXT PRIMARY KEY,
		language TEXT NOT NULL DEFAULT 'en',
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS chat_messages (
		id TEXT PRIMARY KEY,
		session_id TEXT NOT NULL,
		role TEXT NOT NULL,
		content TEXT NOT NULL,
		confidence REAL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (session_id) REFERENCES chat_sessions(id) ON DELETE CASCADE
	);

	CREATE INDEX IF NOT EXISTS idx_messages_session_id ON chat_messages(session_id);

	CREATE TABLE IF NOT EXISTS document_queries (
		id TEXT PRIMARY KEY,
		document_type TEXT NOT NULL,
		query TEXT,
		language TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_queries_document_type ON document_queries(document_type);

	CREATE TABLE IF NOT EXISTS user_feedback (
		id TEXT PRIMARY KEY,
		session_id TEXT,
		rating INTEGER NOT NULL,
		feedback TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS legal_documents (
		document_type TEXT PRIMARY KEY,
		record TEXT NOT NULL,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS creole_translations (
		id TEXT PRIMARY KEY,
		english_text TEXT NOT NULL,
		creole_text TEXT NOT NULL,
		usage_count INTEGER NOT NULL DEFAULT 1,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		UNIQUE(english_text, creole_text)
	);
	`
	_, err := db.Exec(schema)
	return err
}

// EnsureSession creates the session row if it does not exist and refreshes
// its updated_at timestamp.
func (s *Store) EnsureSession(ctx context.Context, sessionID, language string) error {
	now := time.Now()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO chat_sessions (id, language, created_at, updated_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET updated_at = excluded.updated_at`,
		sessionID, language, now, now,
	)
	return err
}

// AppendMessage records one message in a session. confidence is stored only
// for assistant messages; pass 0 for user messages.
func (s *Store) AppendMessage(ctx context.Context, sessionID, role, content string, confidence float64) error {
	var conf interface{}
	if role == string(models.RoleAssistant) {
		conf = confidence
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO chat_messages (id, session_id, role, content, confidence, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		uuid.New().String(), sessionID, role, content, conf, time.Now(),
	)
	return err
}

// RecordDocumentQuery logs a knowledge-base lookup.
func (s *Store) RecordDocumentQuery(ctx context.Context, documentType, query, language string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO document_queries (id, document_type, query, language, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		uuid.New().String(), documentType, query, language, time.Now(),
	)
	return err
}

// SaveFeedback stores a user rating with optional free-form comments.
func (s *Store) SaveFeedback(ctx context.Context, sessionID string, rating int, feedback string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO user_feedback (id, session_id, rating, feedback, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		uuid.New().String(), sessionID, rating, feedback, time.Now(),
	)
	return err
}

// ListLegalDocuments returns registry records stored in the database, keyed
// by document type. Rows with invalid types or payloads are skipped.
func (s *Store) ListLegalDocuments(ctx context.Context) (map[models.DocumentType]*models.DocumentRecord, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT document_type, record FROM legal_documents`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[models.DocumentType]*models.DocumentRecord)
	for rows.Next() {
		var typ, recordJSON string
		if err := rows.Scan(&typ, &recordJSON); err != nil {
			return nil, err
		}
		docType, ok := models.ParseDocumentType(typ)
		if !ok {
			continue
		}
		var rec models.DocumentRecord
		if err := json.Unmarshal([]byte(recordJSON), &rec); err != nil {
			continue
		}
		out[docType] = &rec
	}
	return out, rows.Err()
}

// UpsertLegalDocument stores or replaces a registry record.
func (s *Store) UpsertLegalDocument(ctx context.Context, docType models.DocumentType, rec *models.DocumentRecord) error {
	recordJSON, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO legal_documents (document_type, record, updated_at)
		 VALUES (?, ?, ?)
		 ON CONFLICT(document_type) DO UPDATE SET
			record = excluded.record,
			updated_at = excluded.updated_at`,
		string(docType), string(recordJSON), time.Now(),
	)
	return err
}

// BumpTranslationUsage records one use of a translation pair, incrementing
// its counter if the pair has been seen before.
func (s *Store) BumpTranslationUsage(ctx context.Context, english, creole string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO creole_translations (id, english_text, creole_text, usage_count, created_at)
		 VALUES (?, ?, ?, 1, ?)
		 ON CONFLICT(english_text, creole_text) DO UPDATE SET
			usage_count = usage_count + 1`,
		uuid.New().String(), english, creole, time.Now(),
	)
	return err
}

// CountSessions returns the total number of recorded sessions.
func (s *Store) CountSessions(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM chat_sessions`).Scan(&count)
	return count, err
}

// CountMessages returns the total number of recorded messages.
func (s *Store) CountMessages(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM chat_messages`).Scan(&count)
	return count, err
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}
