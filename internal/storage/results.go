package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/claude/repforge/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// StartSession opens an in-flight result for the session and returns
// its id. The result stays mutable until FinishResult.
func (db *DB) StartSession(ctx context.Context, userID int, session models.Session, start time.Time) (uuid.UUID, error) {
	id := uuid.New()
	var sessionID *uuid.UUID
	if session.ID != uuid.Nil {
		sessionID = &session.ID
	}
	_, err := db.Pool.Exec(ctx,
		`INSERT INTO workout_results (id, user_id, session_id, session_title, date, start_time, finished)
		 VALUES ($1, $2, $3, $4, $5, $5, false)`,
		id, userID, sessionID, session.Title, start)
	if err != nil {
		return uuid.Nil, fmt.Errorf("inserting result: %w", err)
	}
	return id, nil
}

// UpdateResult applies a partial update to an in-flight result. Nil
// fields are left untouched; a non-nil SetResults slice replaces the
// stored sets wholesale. Updating a finished result fails with
// ErrResultFinished.
func (db *DB) UpdateResult(ctx context.Context, id uuid.UUID, update models.ResultUpdate) error {
	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := lockOpenResult(ctx, tx, id); err != nil {
		return err
	}

	_, err = tx.Exec(ctx,
		`UPDATE workout_results SET
		   notes                    = COALESCE($2, notes),
		   workout_quality          = COALESCE($3, workout_quality),
		   workout_enjoyment        = COALESCE($4, workout_enjoyment),
		   total_rounds             = COALESCE($5, total_rounds),
		   wod_result               = COALESCE($6, wod_result),
		   emom_minutes_completed   = COALESCE($7, emom_minutes_completed),
		   emom_failed_minutes      = COALESCE($8, emom_failed_minutes),
		   tabata_rounds_completed  = COALESCE($9, tabata_rounds_completed),
		   circuit_rounds_completed = COALESCE($10, circuit_rounds_completed)
		 WHERE id = $1`,
		id, update.Notes, update.WorkoutQuality, update.WorkoutEnjoyment,
		update.TotalRounds, update.WODResult,
		update.EMOMMinutesCompleted, update.EMOMFailedMinutes,
		update.TabataRoundsCompleted, update.CircuitRoundsCompleted)
	if err != nil {
		return fmt.Errorf("updating result: %w", err)
	}

	if update.SetResults != nil {
		if _, err := tx.Exec(ctx, `DELETE FROM result_sets WHERE result_id = $1`, id); err != nil {
			return fmt.Errorf("clearing result sets: %w", err)
		}
		if err := insertResultSets(ctx, tx, id, update.SetResults); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// FinishResult finalizes an in-flight result: it stamps the end time,
// computes duration, rep, volume, and RPE totals from the stored sets,
// and marks the row finished. Finishing twice fails with
// ErrResultFinished.
func (db *DB) FinishResult(ctx context.Context, id uuid.UUID, end time.Time) error {
	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := lockOpenResult(ctx, tx, id); err != nil {
		return err
	}

	_, err = tx.Exec(ctx,
		`UPDATE workout_results r SET
		   end_time           = $2,
		   total_duration_sec = EXTRACT(EPOCH FROM $2::timestamptz - r.start_time)::int,
		   total_reps         = agg.reps,
		   total_volume_load  = agg.volume,
		   avg_rpe            = agg.rpe,
		   finished           = true
		 FROM (
		   SELECT COALESCE(SUM(performed_reps), 0)::int                            AS reps,
		          COALESCE(SUM(weight * performed_reps), 0)::double precision      AS volume,
		          AVG(rpe)::double precision                                       AS rpe
		   FROM result_sets WHERE result_id = $1
		 ) agg
		 WHERE r.id = $1`,
		id, end)
	if err != nil {
		return fmt.Errorf("finishing result: %w", err)
	}

	return tx.Commit(ctx)
}

// lockOpenResult row-locks the result and verifies it is still
// mutable.
func lockOpenResult(ctx context.Context, tx pgx.Tx, id uuid.UUID) error {
	var finished bool
	err := tx.QueryRow(ctx,
		`SELECT finished FROM workout_results WHERE id = $1 FOR UPDATE`, id).Scan(&finished)
	if err == pgx.ErrNoRows {
		return fmt.Errorf("result %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("querying result: %w", err)
	}
	if finished {
		return fmt.Errorf("result %s: %w", id, ErrResultFinished)
	}
	return nil
}

func insertResultSets(ctx context.Context, tx pgx.Tx, resultID uuid.UUID, sets []models.SetResult) error {
	if len(sets) == 0 {
		return nil
	}
	query, args := buildSetInsert(resultID, sets)
	if _, err := tx.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("inserting result sets: %w", err)
	}
	return nil
}

// buildSetInsert builds the batch INSERT for a result's sets. The
// slice index is stored as log_order so reads can reproduce the order
// the sets were logged in; block labels alone cannot ("Block 10"
// sorts before "Block 2").
func buildSetInsert(resultID uuid.UUID, sets []models.SetResult) (string, []any) {
	query := `INSERT INTO result_sets (result_id, log_order, block_label, block_item_order, set_number, exercise_name, target_reps, performed_reps, weight, weight_unit, rpe, rest_taken_sec) VALUES `
	args := make([]any, 0, len(sets)*12)
	valueStrings := make([]string, 0, len(sets))

	for i, s := range sets {
		base := i * 12
		valueStrings = append(valueStrings, fmt.Sprintf(
			"($%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d)",
			base+1, base+2, base+3, base+4, base+5, base+6, base+7, base+8, base+9, base+10, base+11, base+12,
		))
		args = append(args, resultID, i, s.BlockLabel, s.BlockItemOrder, s.SetNumber,
			s.ExerciseName, s.TargetReps, s.PerformedReps, s.Weight, s.WeightUnit,
			s.RPE, s.RestTakenSeconds)
	}

	return query + strings.Join(valueStrings, ","), args
}

// Result retrieves one result with its sets.
func (db *DB) Result(ctx context.Context, id uuid.UUID, userID int) (models.WorkoutResult, error) {
	row := db.Pool.QueryRow(ctx,
		resultColumns+` FROM workout_results WHERE id = $1 AND user_id = $2`,
		id, userID)

	r, err := scanResult(row)
	if err == pgx.ErrNoRows {
		return models.WorkoutResult{}, fmt.Errorf("result %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return models.WorkoutResult{}, fmt.Errorf("querying result: %w", err)
	}

	sets, err := db.resultSets(ctx, []uuid.UUID{id})
	if err != nil {
		return models.WorkoutResult{}, err
	}
	r.SetResults = sets[id]
	return r, nil
}

// ResultsByUser retrieves the user's full result history, newest
// first, with sets attached.
func (db *DB) ResultsByUser(ctx context.Context, userID int) ([]models.WorkoutResult, error) {
	rows, err := db.Pool.Query(ctx,
		resultColumns+` FROM workout_results WHERE user_id = $1 ORDER BY start_time DESC`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("querying results: %w", err)
	}
	defer rows.Close()

	var results []models.WorkoutResult
	var ids []uuid.UUID
	for rows.Next() {
		r, err := scanResult(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning result: %w", err)
		}
		results = append(results, r)
		ids = append(ids, r.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	sets, err := db.resultSets(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range results {
		results[i].SetResults = sets[results[i].ID]
	}
	return results, nil
}

const resultColumns = `SELECT id, user_id, session_id, session_title, date, start_time, end_time,
	total_duration_sec, total_reps, total_volume_load, avg_rpe,
	total_rounds, wod_result, emom_minutes_completed, emom_failed_minutes,
	tabata_rounds_completed, circuit_rounds_completed,
	workout_quality, workout_enjoyment, notes, finished`

func scanResult(row pgx.Row) (models.WorkoutResult, error) {
	var r models.WorkoutResult
	var sessionID *uuid.UUID
	var wodResult, notes *string
	err := row.Scan(&r.ID, &r.UserID, &sessionID, &r.SessionTitle, &r.Date, &r.StartTime, &r.EndTime,
		&r.TotalDurationSeconds, &r.TotalReps, &r.TotalVolumeLoad, &r.AverageRPE,
		&r.TotalRounds, &wodResult, &r.EMOMMinutesCompleted, &r.EMOMFailedMinutes,
		&r.TabataRoundsCompleted, &r.CircuitRoundsCompleted,
		&r.WorkoutQuality, &r.WorkoutEnjoyment, &notes, &r.Finished)
	if err != nil {
		return models.WorkoutResult{}, err
	}
	if sessionID != nil {
		r.SessionID = *sessionID
	}
	if wodResult != nil {
		r.WODResult = *wodResult
	}
	if notes != nil {
		r.Notes = *notes
	}
	return r, nil
}

// resultSets loads the sets for the given results keyed by result id,
// in logged order.
func (db *DB) resultSets(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID][]models.SetResult, error) {
	out := make(map[uuid.UUID][]models.SetResult)
	if len(ids) == 0 {
		return out, nil
	}

	rows, err := db.Pool.Query(ctx,
		`SELECT result_id, block_label, block_item_order, set_number, exercise_name,
		        target_reps, performed_reps, weight, weight_unit, rpe, rest_taken_sec
		 FROM result_sets
		 WHERE result_id = ANY($1)
		 ORDER BY result_id, log_order`,
		ids)
	if err != nil {
		return nil, fmt.Errorf("querying result sets: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var resultID uuid.UUID
		var s models.SetResult
		if err := rows.Scan(&resultID, &s.BlockLabel, &s.BlockItemOrder, &s.SetNumber,
			&s.ExerciseName, &s.TargetReps, &s.PerformedReps, &s.Weight, &s.WeightUnit,
			&s.RPE, &s.RestTakenSeconds); err != nil {
			return nil, fmt.Errorf("scanning result set: %w", err)
		}
		out[resultID] = append(out[resultID], s)
	}
	return out, rows.Err()
}
