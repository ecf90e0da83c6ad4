package mcp

import (
	"context"
	"encoding/json"
	"time"

	"github.com/claude/repforge/internal/stats"
	"github.com/mark3labs/mcp-go/mcp"
)

func (h *handlers) workoutTypesResource(_ context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(workoutTypeCatalog())
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

func (h *handlers) recentResults(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	uid := UserIDFromContext(ctx)
	end := time.Now()
	start := end.AddDate(0, 0, -14)

	results, err := h.ds.ResultsByUser(ctx, uid)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(filterByRange(results, start, end))
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

func (h *handlers) trainingStats(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	uid := UserIDFromContext(ctx)

	results, err := h.ds.ResultsByUser(ctx, uid)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	summary := map[string]any{
		"totalWorkouts":    len(results),
		"totalVolume":      stats.TotalVolume(results),
		"totalReps":        stats.TotalReps(results),
		"totalDurationSec": int(stats.TotalDuration(results).Seconds()),
		"averageQuality":   stats.AverageQuality(results),
		"currentStreak":    stats.CurrentStreak(results, now),
		"longestStreak":    stats.LongestStreak(results),
		"thisWeek":         stats.ThisWeek(results, now),
		"personalRecords":  stats.PersonalRecords(results),
		"byWeekday":        stats.ByWeekday(results),
		"byWorkoutType":    stats.ByWorkoutType(results),
	}

	data, err := json.Marshal(summary)
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
