package mcp

import (
	"context"
	"time"

	"github.com/claude/repforge/internal/models"
	"github.com/claude/repforge/internal/stats"
	"github.com/claude/repforge/internal/workout"
	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
)

// defaultTimeRange returns start/end defaulting to the last 30 days.
func defaultTimeRange(startStr, endStr string) (time.Time, time.Time, error) {
	var start, end time.Time
	var err error

	if endStr != "" {
		end, err = parseFlexTime(endStr)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	} else {
		end = time.Now()
	}

	if startStr != "" {
		start, err = parseFlexTime(startStr)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	} else {
		start = end.AddDate(0, 0, -30)
	}

	return start, end, nil
}

func parseFlexTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err == nil {
		return t, nil
	}
	t, err = time.Parse("2006-01-02", s)
	if err == nil {
		return t, nil
	}
	return time.Time{}, err
}

// filterByRange keeps results dated within [start, end).
func filterByRange(results []models.WorkoutResult, start, end time.Time) []models.WorkoutResult {
	var out []models.WorkoutResult
	for _, r := range results {
		if !r.Date.Before(start) && r.Date.Before(end) {
			out = append(out, r)
		}
	}
	return out
}

// --- Tool definitions ---

var toolGetPrograms = mcp.NewTool("get_programs",
	mcp.WithDescription("List the user's workout programs with titles and durations."),
)

var toolGetProgram = mcp.NewTool("get_program",
	mcp.WithDescription("Retrieve one workout program's full structure: sessions, exercise blocks, and prescriptions."),
	mcp.WithString("id", mcp.Required(), mcp.Description("Program id (UUID)")),
)

var toolGetExercises = mcp.NewTool("get_exercises",
	mcp.WithDescription("List the exercise catalog with muscle groups and equipment."),
)

var toolGetResults = mcp.NewTool("get_results",
	mcp.WithDescription("Query workout results with logged sets, rounds, and session scores."),
	mcp.WithString("start", mcp.Description("Start date (ISO 8601 or YYYY-MM-DD). Defaults to 30 days ago.")),
	mcp.WithString("end", mcp.Description("End date (ISO 8601 or YYYY-MM-DD). Defaults to now.")),
)

var toolGetTrainingStats = mcp.NewTool("get_training_stats",
	mcp.WithDescription("Aggregated training statistics: total volume, reps, duration, average quality, streaks, weekday distribution, and workout type breakdown."),
	mcp.WithString("start", mcp.Description("Start date. Defaults to 30 days ago.")),
	mcp.WithString("end", mcp.Description("End date. Defaults to now.")),
)

var toolGetPersonalRecords = mcp.NewTool("get_personal_records",
	mcp.WithDescription("Top 5 heaviest lifts across the whole training history, one per exercise."),
)

var toolGetWorkoutTypes = mcp.NewTool("get_workout_types",
	mcp.WithDescription("List all workout methodologies with exercise-count constraints and required configuration (rounds, AMRAP duration, intervals)."),
)

// --- Tool handlers ---

func (h *handlers) getPrograms(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	uid := UserIDFromContext(ctx)

	programs, err := h.ds.Programs(ctx, uid)
	if err != nil {
		h.log.Error("mcp get_programs", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(programs)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getProgram(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	idStr, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError("id parameter is required"), nil
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return mcp.NewToolResultError("invalid program id"), nil
	}

	uid := UserIDFromContext(ctx)
	p, err := h.ds.GetProgram(ctx, id, uid)
	if err != nil {
		h.log.Error("mcp get_program", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(p)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getExercises(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	exercises, err := h.ds.Exercises(ctx)
	if err != nil {
		h.log.Error("mcp get_exercises", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(exercises)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getResults(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start, end, err := defaultTimeRange(req.GetString("start", ""), req.GetString("end", ""))
	if err != nil {
		return mcp.NewToolResultError("invalid date format: " + err.Error()), nil
	}

	uid := UserIDFromContext(ctx)
	results, err := h.ds.ResultsByUser(ctx, uid)
	if err != nil {
		h.log.Error("mcp get_results", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	out, err := mcp.NewToolResultJSON(filterByRange(results, start, end))
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return out, nil
}

func (h *handlers) getTrainingStats(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start, end, err := defaultTimeRange(req.GetString("start", ""), req.GetString("end", ""))
	if err != nil {
		return mcp.NewToolResultError("invalid date format: " + err.Error()), nil
	}

	uid := UserIDFromContext(ctx)
	results, err := h.ds.ResultsByUser(ctx, uid)
	if err != nil {
		h.log.Error("mcp get_training_stats", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	// Streaks always run over the full history; a window would cut
	// streaks at its edge and report nonsense.
	window := filterByRange(results, start, end)
	now := time.Now()
	out, err := mcp.NewToolResultJSON(map[string]any{
		"totalWorkouts":    len(window),
		"totalVolume":      stats.TotalVolume(window),
		"totalReps":        stats.TotalReps(window),
		"totalDurationSec": int(stats.TotalDuration(window).Seconds()),
		"averageQuality":   stats.AverageQuality(window),
		"currentStreak":    stats.CurrentStreak(results, now),
		"longestStreak":    stats.LongestStreak(results),
		"thisWeek":         stats.ThisWeek(results, now),
		"byWeekday":        stats.ByWeekday(window),
		"byWorkoutType":    stats.ByWorkoutType(window),
	})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return out, nil
}

func (h *handlers) getPersonalRecords(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	uid := UserIDFromContext(ctx)
	results, err := h.ds.ResultsByUser(ctx, uid)
	if err != nil {
		h.log.Error("mcp get_personal_records", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	out, err := mcp.NewToolResultJSON(stats.PersonalRecords(results))
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return out, nil
}

func (h *handlers) getWorkoutTypes(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	out, err := mcp.NewToolResultJSON(workoutTypeCatalog())
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return out, nil
}

// workoutTypeCatalog builds the full methodology listing served by
// both the tool and the resource.
func workoutTypeCatalog() []map[string]any {
	catalog := make([]map[string]any, 0, len(workout.All()))
	for _, t := range workout.All() {
		c := workout.ConstraintsFor(t)
		info := workout.InfoFor(t)
		catalog = append(catalog, map[string]any{
			"type":        t,
			"category":    t.Category(),
			"displayName": info.DisplayName,
			"constraints": c,
		})
	}
	return catalog
}
