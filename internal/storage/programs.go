package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/claude/repforge/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CreateProgram persists a new program and returns it with ids
// assigned. The full program tree is stored as a jsonb document; the
// title and week count are duplicated into columns for listing.
func (db *DB) CreateProgram(ctx context.Context, userID int, p models.Program) (models.Program, error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	for i := range p.Sessions {
		if p.Sessions[i].ID == uuid.Nil {
			p.Sessions[i].ID = uuid.New()
		}
	}

	payload, err := json.Marshal(p)
	if err != nil {
		return models.Program{}, fmt.Errorf("encoding program: %w", err)
	}

	_, err = db.Pool.Exec(ctx,
		`INSERT INTO programs (id, user_id, title, total_weeks, payload, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, now(), now())`,
		p.ID, userID, p.Title, p.TotalWeeks, payload)
	if err != nil {
		return models.Program{}, fmt.Errorf("inserting program: %w", err)
	}
	return p, nil
}

// GetProgram retrieves one program by id for the given user.
func (db *DB) GetProgram(ctx context.Context, id uuid.UUID, userID int) (models.Program, error) {
	var payload []byte
	err := db.Pool.QueryRow(ctx,
		`SELECT payload FROM programs WHERE id = $1 AND user_id = $2`,
		id, userID).Scan(&payload)
	if err == pgx.ErrNoRows {
		return models.Program{}, fmt.Errorf("program %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return models.Program{}, fmt.Errorf("querying program: %w", err)
	}

	var p models.Program
	if err := json.Unmarshal(payload, &p); err != nil {
		return models.Program{}, fmt.Errorf("decoding program: %w", err)
	}
	return p, nil
}

// UpdateProgram replaces a stored program. The path id wins over any
// id inside the payload.
func (db *DB) UpdateProgram(ctx context.Context, id uuid.UUID, userID int, p models.Program) (models.Program, error) {
	p.ID = id
	for i := range p.Sessions {
		if p.Sessions[i].ID == uuid.Nil {
			p.Sessions[i].ID = uuid.New()
		}
	}

	payload, err := json.Marshal(p)
	if err != nil {
		return models.Program{}, fmt.Errorf("encoding program: %w", err)
	}

	tag, err := db.Pool.Exec(ctx,
		`UPDATE programs SET title = $3, total_weeks = $4, payload = $5, updated_at = now()
		 WHERE id = $1 AND user_id = $2`,
		id, userID, p.Title, p.TotalWeeks, payload)
	if err != nil {
		return models.Program{}, fmt.Errorf("updating program: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.Program{}, fmt.Errorf("program %s: %w", id, ErrNotFound)
	}
	return p, nil
}

// DeleteProgram removes a program.
func (db *DB) DeleteProgram(ctx context.Context, id uuid.UUID, userID int) error {
	tag, err := db.Pool.Exec(ctx,
		`DELETE FROM programs WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("deleting program: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("program %s: %w", id, ErrNotFound)
	}
	return nil
}

// ProgramSummary is the listing view of a stored program.
type ProgramSummary struct {
	ID         uuid.UUID `json:"id"`
	Title      string    `json:"title"`
	TotalWeeks int       `json:"totalWeeks"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Programs lists the user's programs, most recently updated first.
func (db *DB) Programs(ctx context.Context, userID int) ([]ProgramSummary, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT id, title, total_weeks, updated_at
		 FROM programs
		 WHERE user_id = $1
		 ORDER BY updated_at DESC`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("querying programs: %w", err)
	}
	defer rows.Close()

	var result []ProgramSummary
	for rows.Next() {
		var s ProgramSummary
		if err := rows.Scan(&s.ID, &s.Title, &s.TotalWeeks, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning program: %w", err)
		}
		result = append(result, s)
	}
	return result, rows.Err()
}
