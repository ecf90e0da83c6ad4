package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/claude/repforge/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Exercise retrieves one catalog entry by id.
func (db *DB) Exercise(ctx context.Context, id uuid.UUID) (models.Exercise, error) {
	row := db.Pool.QueryRow(ctx,
		`SELECT id, name, description, category, primary_muscle, secondary_muscles, equipment, instructions
		 FROM exercises
		 WHERE id = $1`,
		id)

	var ex models.Exercise
	err := row.Scan(&ex.ID, &ex.Name, &ex.Description, &ex.Category,
		&ex.PrimaryMuscle, &ex.SecondaryMuscles, &ex.Equipment, &ex.Instructions)
	if err == pgx.ErrNoRows {
		return models.Exercise{}, fmt.Errorf("exercise %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return models.Exercise{}, fmt.Errorf("querying exercise: %w", err)
	}
	return ex, nil
}

// Exercises retrieves the full catalog ordered by name.
func (db *DB) Exercises(ctx context.Context) ([]models.Exercise, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT id, name, description, category, primary_muscle, secondary_muscles, equipment, instructions
		 FROM exercises
		 ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("querying exercises: %w", err)
	}
	defer rows.Close()

	var result []models.Exercise
	for rows.Next() {
		var ex models.Exercise
		if err := rows.Scan(&ex.ID, &ex.Name, &ex.Description, &ex.Category,
			&ex.PrimaryMuscle, &ex.SecondaryMuscles, &ex.Equipment, &ex.Instructions); err != nil {
			return nil, fmt.Errorf("scanning exercise: %w", err)
		}
		result = append(result, ex)
	}
	return result, rows.Err()
}

// SeedExercises batch-inserts catalog entries, skipping duplicates.
// Returns count inserted.
func (db *DB) SeedExercises(ctx context.Context, exercises []models.Exercise) (int64, error) {
	if len(exercises) == 0 {
		return 0, nil
	}

	query := `INSERT INTO exercises (id, name, description, category, primary_muscle, secondary_muscles, equipment, instructions) VALUES `
	args := make([]any, 0, len(exercises)*8)
	valueStrings := make([]string, 0, len(exercises))

	for i, ex := range exercises {
		base := i * 8
		valueStrings = append(valueStrings, fmt.Sprintf(
			"($%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d)",
			base+1, base+2, base+3, base+4, base+5, base+6, base+7, base+8,
		))
		if ex.ID == uuid.Nil {
			ex.ID = uuid.New()
		}
		args = append(args, ex.ID, ex.Name, ex.Description, ex.Category,
			ex.PrimaryMuscle, ex.SecondaryMuscles, ex.Equipment, ex.Instructions)
	}

	query += strings.Join(valueStrings, ",") + " ON CONFLICT (name) DO NOTHING"

	tag, err := db.Pool.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("seeding exercises: %w", err)
	}
	return tag.RowsAffected(), nil
}
