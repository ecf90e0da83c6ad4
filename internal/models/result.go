package models

import (
	"time"

	"github.com/google/uuid"
)

// SetResult is one performed set as captured during a live session.
// Results are append-only once the session finishes.
type SetResult struct {
	BlockLabel       string     `json:"blockLabel"`
	BlockItemOrder   int        `json:"blockItemOrder"`
	SetNumber        int        `json:"setNumber"`
	ExerciseName     string     `json:"exerciseName"`
	TargetReps       *int       `json:"targetReps,omitempty"`
	PerformedReps    *int       `json:"performedReps,omitempty"`
	Weight           *float64   `json:"weight,omitempty"`
	WeightUnit       WeightUnit `json:"weightUnit,omitempty"`
	RPE              *int       `json:"rpe,omitempty"`
	RestTakenSeconds *int       `json:"restTakenSec,omitempty"`
}

// VolumeLoad is weight × performed reps for this set, or 0 when either
// is absent.
func (s SetResult) VolumeLoad() float64 {
	if s.Weight == nil || s.PerformedReps == nil {
		return 0
	}
	return *s.Weight * float64(*s.PerformedReps)
}

// WorkoutResult is the outcome of one executed session. Exactly one
// result exists per run; its identity is fixed once persisted.
type WorkoutResult struct {
	ID                     uuid.UUID   `json:"id"`
	UserID                 int         `json:"userId"`
	SessionID              uuid.UUID   `json:"sessionId,omitempty"`
	SessionTitle           string      `json:"sessionTitle"`
	Date                   time.Time   `json:"date"`
	StartTime              time.Time   `json:"startTime"`
	EndTime                *time.Time  `json:"endTime,omitempty"`
	TotalDurationSeconds   *int        `json:"totalDurationSeconds,omitempty"`
	TotalReps              *int        `json:"totalReps,omitempty"`
	TotalVolumeLoad        *float64    `json:"totalVolumeLoad,omitempty"`
	AverageRPE             *float64    `json:"averageRpe,omitempty"`
	TotalRounds            *int        `json:"totalRounds,omitempty"`
	WODResult              string      `json:"wodResult,omitempty"`
	EMOMMinutesCompleted   *int        `json:"emomMinutesCompleted,omitempty"`
	EMOMFailedMinutes      *int        `json:"emomFailedMinutes,omitempty"`
	TabataRoundsCompleted  *int        `json:"tabataRoundsCompleted,omitempty"`
	CircuitRoundsCompleted *int        `json:"circuitRoundsCompleted,omitempty"`
	WorkoutQuality         *int        `json:"workoutQuality,omitempty"`
	WorkoutEnjoyment       *int        `json:"workoutEnjoyment,omitempty"`
	Notes                  string      `json:"notes,omitempty"`
	SetResults             []SetResult `json:"setResults"`
	Finished               bool        `json:"finished"`
}

// ResultUpdate is the partial payload applied to an in-flight result
// before it is finished. Nil fields are left untouched.
type ResultUpdate struct {
	Notes                  *string     `json:"notes,omitempty"`
	SetResults             []SetResult `json:"setResults,omitempty"`
	WorkoutQuality         *int        `json:"workoutQuality,omitempty"`
	WorkoutEnjoyment       *int        `json:"workoutEnjoyment,omitempty"`
	TotalRounds            *int        `json:"totalRounds,omitempty"`
	WODResult              *string     `json:"wodResult,omitempty"`
	EMOMMinutesCompleted   *int        `json:"emomMinutesCompleted,omitempty"`
	EMOMFailedMinutes      *int        `json:"emomFailedMinutes,omitempty"`
	TabataRoundsCompleted  *int        `json:"tabataRoundsCompleted,omitempty"`
	CircuitRoundsCompleted *int        `json:"circuitRoundsCompleted,omitempty"`
}
