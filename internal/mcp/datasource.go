package mcp

import (
	"context"

	"github.com/claude/repforge/internal/models"
	"github.com/claude/repforge/internal/storage"
	"github.com/google/uuid"
)

// DataSource abstracts the data layer for MCP tools. Both *storage.DB
// (local) and HTTPClient (remote via REST API) satisfy this interface.
type DataSource interface {
	Programs(ctx context.Context, userID int) ([]storage.ProgramSummary, error)
	GetProgram(ctx context.Context, id uuid.UUID, userID int) (models.Program, error)
	Exercises(ctx context.Context) ([]models.Exercise, error)
	ResultsByUser(ctx context.Context, userID int) ([]models.WorkoutResult, error)
}

// Compile-time check: *storage.DB satisfies DataSource.
var _ DataSource = (*storage.DB)(nil)
