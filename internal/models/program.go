// Package models defines the program and result entity graph shared by
// the builder, execution engine, storage layer, and API.
package models

import (
	"github.com/claude/repforge/internal/workout"
	"github.com/google/uuid"
)

// WeightUnit is the unit a prescription or logged set is expressed in.
type WeightUnit string

const (
	Kilograms WeightUnit = "KG"
	Pounds    WeightUnit = "LB"
)

// Exercise is a catalog entry. The catalog owns these; programs only
// reference them by id.
type Exercise struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Description      string    `json:"description,omitempty"`
	Category         string    `json:"category,omitempty"`
	PrimaryMuscle    string    `json:"primaryMuscle,omitempty"`
	SecondaryMuscles []string  `json:"secondaryMuscles,omitempty"`
	Equipment        string    `json:"equipment,omitempty"`
	Instructions     string    `json:"instructions,omitempty"`
}

// Prescription is the planned execution of one exercise within a block
// item. All fields are optional; a prescription with no rep-defining
// field is legal but flagged by the builder's warnings.
type Prescription struct {
	Sets          *int       `json:"sets,omitempty"`
	MinReps       *int       `json:"minReps,omitempty"`
	MaxReps       *int       `json:"maxReps,omitempty"`
	TargetReps    *int       `json:"targetReps,omitempty"`
	Weight        *float64   `json:"weight,omitempty"`
	WeightUnit    WeightUnit `json:"weightUnit,omitempty"`
	Tempo         string     `json:"tempo,omitempty"`
	RestSeconds   *int       `json:"restSeconds,omitempty"`
	RPE           *int       `json:"rpe,omitempty"`
	RIR           *int       `json:"rir,omitempty"`
	Percentage1RM *float64   `json:"percentage1RM,omitempty"`
	Notes         string     `json:"notes,omitempty"`
}

// BlockItem is one exercise slot within a block. Items are exclusively
// owned by their containing block. ExerciseName is denormalized so a
// session plan renders without a catalog round trip.
type BlockItem struct {
	OrderIndex   int          `json:"orderIndex"`
	ExerciseID   uuid.UUID    `json:"exerciseId"`
	ExerciseName string       `json:"exerciseName,omitempty"`
	Prescription Prescription `json:"prescription"`
}

// ExerciseBlock is a structural unit implementing one workout-type
// methodology over an ordered set of items.
type ExerciseBlock struct {
	Label                   string        `json:"label"`
	OrderIndex              int           `json:"orderIndex"`
	BlockType               string        `json:"blockType,omitempty"`
	WorkoutType             workout.Type  `json:"workoutType"`
	RestBetweenItemsSeconds *int          `json:"restBetweenItemsSeconds,omitempty"`
	RestAfterBlockSeconds   *int          `json:"restAfterBlockSeconds,omitempty"`
	TotalRounds             *int          `json:"totalRounds,omitempty"`
	AMRAPDurationSeconds    *int          `json:"amrapDurationSeconds,omitempty"`
	IntervalSeconds         *int          `json:"intervalSeconds,omitempty"`
	WorkPhaseSeconds        *int          `json:"workPhaseSeconds,omitempty"`
	RestPhaseSeconds        *int          `json:"restPhaseSeconds,omitempty"`
	BlockInstructions       string        `json:"blockInstructions,omitempty"`
	Notes                   string        `json:"notes,omitempty"`
	Items                   []BlockItem   `json:"items"`
}

// Session is one workout day within a program.
type Session struct {
	ID         uuid.UUID       `json:"id,omitempty"`
	Title      string          `json:"title"`
	OrderIndex int             `json:"orderIndex"`
	Blocks     []ExerciseBlock `json:"blocks"`
}

// Program is the root aggregate: an ordered set of sessions repeated
// over a number of weeks. Created and edited only through the builder.
type Program struct {
	ID         uuid.UUID `json:"id,omitempty"`
	Title      string    `json:"title"`
	TotalWeeks int       `json:"totalWeeks"`
	Sessions   []Session `json:"sessions"`
}
