// Package draft persists builder autosave snapshots in a local SQLite
// database, so an interrupted editing session can be resumed without
// the program ever reaching the server.
package draft

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/claude/repforge/internal/models"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Store holds builder drafts keyed by program id.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the SQLite draft database at dir/drafts.db.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating draft dir %s: %w", dir, err)
	}

	dbPath := filepath.Join(dir, "drafts.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening draft db: %w", err)
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS drafts (
		program_id TEXT PRIMARY KEY,
		title      TEXT NOT NULL,
		payload    TEXT NOT NULL,
		saved_at   TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating drafts table: %w", err)
	}

	return &Store{db: db}, nil
}

// Save upserts a draft snapshot. Drafts skip save validation; an
// incomplete program is exactly what a draft is for.
func (s *Store) Save(p models.Program) error {
	id := p.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	payload, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encoding draft: %w", err)
	}
	_, err = s.db.Exec(
		`INSERT OR REPLACE INTO drafts (program_id, title, payload, saved_at) VALUES (?, ?, ?, CURRENT_TIMESTAMP)`,
		id.String(), p.Title, string(payload),
	)
	if err != nil {
		return fmt.Errorf("saving draft: %w", err)
	}
	return nil
}

// Load retrieves a draft by program id. Returns false when no draft
// exists.
func (s *Store) Load(id uuid.UUID) (models.Program, bool, error) {
	var payload string
	err := s.db.QueryRow(
		`SELECT payload FROM drafts WHERE program_id = ?`, id.String(),
	).Scan(&payload)
	if err == sql.ErrNoRows {
		return models.Program{}, false, nil
	}
	if err != nil {
		return models.Program{}, false, fmt.Errorf("loading draft: %w", err)
	}

	var p models.Program
	if err := json.Unmarshal([]byte(payload), &p); err != nil {
		return models.Program{}, false, fmt.Errorf("decoding draft: %w", err)
	}
	return p, true, nil
}

// Entry is a draft listing row.
type Entry struct {
	ProgramID uuid.UUID
	Title     string
	SavedAt   time.Time
}

// List returns all drafts, most recently saved first.
func (s *Store) List() ([]Entry, error) {
	rows, err := s.db.Query(
		`SELECT program_id, title, saved_at FROM drafts ORDER BY saved_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("listing drafts: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var idStr string
		if err := rows.Scan(&idStr, &e.Title, &e.SavedAt); err != nil {
			return nil, fmt.Errorf("scanning draft: %w", err)
		}
		if e.ProgramID, err = uuid.Parse(idStr); err != nil {
			return nil, fmt.Errorf("parsing draft id: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Delete removes a draft, typically after a successful server save.
func (s *Store) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM drafts WHERE program_id = ?`, id.String())
	return err
}

// Close closes the draft database.
func (s *Store) Close() error {
	return s.db.Close()
}
