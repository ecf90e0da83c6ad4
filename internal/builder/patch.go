package builder

import "github.com/claude/repforge/internal/models"

// PrescriptionPatch is a partial prescription update. Nil fields are
// left untouched; non-nil fields overwrite.
type PrescriptionPatch struct {
	Sets          *int                `json:"sets,omitempty"`
	MinReps       *int                `json:"minReps,omitempty"`
	MaxReps       *int                `json:"maxReps,omitempty"`
	TargetReps    *int                `json:"targetReps,omitempty"`
	Weight        *float64            `json:"weight,omitempty"`
	WeightUnit    *models.WeightUnit  `json:"weightUnit,omitempty"`
	Tempo         *string             `json:"tempo,omitempty"`
	RestSeconds   *int                `json:"restSeconds,omitempty"`
	RPE           *int                `json:"rpe,omitempty"`
	RIR           *int                `json:"rir,omitempty"`
	Percentage1RM *float64            `json:"percentage1RM,omitempty"`
	Notes         *string             `json:"notes,omitempty"`
}

func (p PrescriptionPatch) apply(dst *models.Prescription) {
	if p.Sets != nil {
		dst.Sets = p.Sets
	}
	if p.MinReps != nil {
		dst.MinReps = p.MinReps
	}
	if p.MaxReps != nil {
		dst.MaxReps = p.MaxReps
	}
	if p.TargetReps != nil {
		dst.TargetReps = p.TargetReps
	}
	if p.Weight != nil {
		dst.Weight = p.Weight
	}
	if p.WeightUnit != nil {
		dst.WeightUnit = *p.WeightUnit
	}
	if p.Tempo != nil {
		dst.Tempo = *p.Tempo
	}
	if p.RestSeconds != nil {
		dst.RestSeconds = p.RestSeconds
	}
	if p.RPE != nil {
		dst.RPE = p.RPE
	}
	if p.RIR != nil {
		dst.RIR = p.RIR
	}
	if p.Percentage1RM != nil {
		dst.Percentage1RM = p.Percentage1RM
	}
	if p.Notes != nil {
		dst.Notes = *p.Notes
	}
}

// BlockConfigPatch is a partial block configuration update.
type BlockConfigPatch struct {
	Label                   *string `json:"label,omitempty"`
	RestBetweenItemsSeconds *int    `json:"restBetweenItemsSeconds,omitempty"`
	RestAfterBlockSeconds   *int    `json:"restAfterBlockSeconds,omitempty"`
	TotalRounds             *int    `json:"totalRounds,omitempty"`
	AMRAPDurationSeconds    *int    `json:"amrapDurationSeconds,omitempty"`
	IntervalSeconds         *int    `json:"intervalSeconds,omitempty"`
	WorkPhaseSeconds        *int    `json:"workPhaseSeconds,omitempty"`
	RestPhaseSeconds        *int    `json:"restPhaseSeconds,omitempty"`
	BlockInstructions       *string `json:"blockInstructions,omitempty"`
	Notes                   *string `json:"notes,omitempty"`
}

func (p BlockConfigPatch) apply(dst *models.ExerciseBlock) {
	if p.Label != nil {
		dst.Label = *p.Label
	}
	if p.RestBetweenItemsSeconds != nil {
		dst.RestBetweenItemsSeconds = p.RestBetweenItemsSeconds
	}
	if p.RestAfterBlockSeconds != nil {
		dst.RestAfterBlockSeconds = p.RestAfterBlockSeconds
	}
	if p.TotalRounds != nil {
		dst.TotalRounds = p.TotalRounds
	}
	if p.AMRAPDurationSeconds != nil {
		dst.AMRAPDurationSeconds = p.AMRAPDurationSeconds
	}
	if p.IntervalSeconds != nil {
		dst.IntervalSeconds = p.IntervalSeconds
	}
	if p.WorkPhaseSeconds != nil {
		dst.WorkPhaseSeconds = p.WorkPhaseSeconds
	}
	if p.RestPhaseSeconds != nil {
		dst.RestPhaseSeconds = p.RestPhaseSeconds
	}
	if p.BlockInstructions != nil {
		dst.BlockInstructions = *p.BlockInstructions
	}
	if p.Notes != nil {
		dst.Notes = *p.Notes
	}
}
