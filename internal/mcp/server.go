package mcp

import (
	"context"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

type contextKey int

const userIDKey contextKey = iota

// UserIDFromContext extracts the user ID injected by the transport layer.
func UserIDFromContext(ctx context.Context) int {
	if id, ok := ctx.Value(userIDKey).(int); ok {
		return id
	}
	return 1
}

// WithUserID returns a context with the given user ID.
func WithUserID(ctx context.Context, userID int) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// New creates an MCP server with all tools and resources registered.
func New(ds DataSource, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("RepForge", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("RepForge training data server. Query workout programs, session results, training statistics, and the workout methodology catalog. All data is scoped to the authenticated user."),
	)

	h := &handlers{ds: ds, log: log}

	// Tools
	s.AddTools(
		server.ServerTool{Tool: toolGetPrograms, Handler: h.getPrograms},
		server.ServerTool{Tool: toolGetProgram, Handler: h.getProgram},
		server.ServerTool{Tool: toolGetExercises, Handler: h.getExercises},
		server.ServerTool{Tool: toolGetResults, Handler: h.getResults},
		server.ServerTool{Tool: toolGetTrainingStats, Handler: h.getTrainingStats},
		server.ServerTool{Tool: toolGetPersonalRecords, Handler: h.getPersonalRecords},
		server.ServerTool{Tool: toolGetWorkoutTypes, Handler: h.getWorkoutTypes},
	)

	// Resources
	s.AddResources(
		server.ServerResource{Resource: resWorkoutTypes, Handler: h.workoutTypesResource},
		server.ServerResource{Resource: resRecentResults, Handler: h.recentResults},
		server.ServerResource{Resource: resTrainingStats, Handler: h.trainingStats},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	ds  DataSource
	log *slog.Logger
}

// --- Resource definitions ---

var resWorkoutTypes = mcp.NewResource(
	"repforge://workout_types",
	"Workout Type Catalog",
	mcp.WithResourceDescription("All workout methodologies with their exercise-count constraints, required configuration, and display metadata"),
	mcp.WithMIMEType("application/json"),
)

var resRecentResults = mcp.NewResource(
	"repforge://recent_results",
	"Recent Results",
	mcp.WithResourceDescription("Workout results from the last 14 days"),
	mcp.WithMIMEType("application/json"),
)

var resTrainingStats = mcp.NewResource(
	"repforge://training_stats",
	"Training Statistics",
	mcp.WithResourceDescription("Aggregated training statistics: totals, streaks, personal records, and weekday distribution"),
	mcp.WithMIMEType("application/json"),
)
