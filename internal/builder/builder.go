// Package builder constructs and mutates workout programs in memory,
// enforcing workout-type constraints at the add-exercise boundary and
// full structural validation at build time.
package builder

import (
	"context"
	"fmt"

	"github.com/claude/repforge/internal/models"
	"github.com/claude/repforge/internal/workout"
	"github.com/google/uuid"
)

// Default timings applied to new blocks and prescriptions.
const (
	defaultRestBetweenItems = 60
	defaultRestAfterBlock   = 120
	defaultSets             = 3
	defaultTargetReps       = 10
	defaultRestSeconds      = 60
	defaultTotalWeeks       = 4
)

// ExerciseResolver looks up catalog entries when loading a program
// whose items reference exercises by id only.
type ExerciseResolver interface {
	Exercise(ctx context.Context, id uuid.UUID) (models.Exercise, error)
}

type sessionDraft struct {
	id     uuid.UUID
	title  string
	blocks []models.ExerciseBlock
}

// Builder is the in-progress editing state for one program. It keeps a
// working copy of the current session's blocks; SwitchSession and
// Build flush the working copy back so edits are never lost.
type Builder struct {
	programID  uuid.UUID
	title      string
	totalWeeks int
	sessions   []sessionDraft
	current    int
	blocks     []models.ExerciseBlock
}

// New returns a builder holding an empty program with one session.
func New() *Builder {
	return &Builder{
		totalWeeks: defaultTotalWeeks,
		sessions:   []sessionDraft{{title: "Session 1"}},
	}
}

// Load returns a builder editing an existing program. Items missing a
// denormalized exercise name are resolved through the catalog; a
// resolver failure surfaces so the caller can back out rather than
// silently dropping the reference.
func Load(ctx context.Context, p models.Program, resolver ExerciseResolver) (*Builder, error) {
	b := &Builder{
		programID:  p.ID,
		title:      p.Title,
		totalWeeks: p.TotalWeeks,
	}
	for _, s := range p.Sessions {
		draft := sessionDraft{id: s.ID, title: s.Title}
		for _, blk := range s.Blocks {
			blk := cloneBlock(blk)
			for i := range blk.Items {
				item := &blk.Items[i]
				if item.ExerciseName == "" && resolver != nil {
					ex, err := resolver.Exercise(ctx, item.ExerciseID)
					if err != nil {
						return nil, fmt.Errorf("resolving exercise %s: %w", item.ExerciseID, err)
					}
					item.ExerciseName = ex.Name
				}
			}
			draft.blocks = append(draft.blocks, blk)
		}
		b.sessions = append(b.sessions, draft)
	}
	if len(b.sessions) == 0 {
		b.sessions = []sessionDraft{{title: "Session 1"}}
	}
	b.blocks = cloneBlocks(b.sessions[0].blocks)
	return b, nil
}

// SetTitle sets the program title.
func (b *Builder) SetTitle(title string) { b.title = title }

// Title returns the program title.
func (b *Builder) Title() string { return b.title }

// SetTotalWeeks sets the program duration. Range is checked at build
// time, not here.
func (b *Builder) SetTotalWeeks(weeks int) { b.totalWeeks = weeks }

// TotalWeeks returns the program duration in weeks.
func (b *Builder) TotalWeeks() int { return b.totalWeeks }

// SessionCount returns the number of sessions.
func (b *Builder) SessionCount() int { return len(b.sessions) }

// CurrentSession returns the index of the session being edited.
func (b *Builder) CurrentSession() int { return b.current }

// AddSession flushes the working blocks, appends a new empty session,
// and makes it current. Returns the new session's index.
func (b *Builder) AddSession() int {
	b.flush()
	b.sessions = append(b.sessions, sessionDraft{
		title: fmt.Sprintf("Session %d", len(b.sessions)+1),
	})
	b.current = len(b.sessions) - 1
	b.blocks = nil
	return b.current
}

// SwitchSession flushes the working blocks into the current session
// and switches editing to session index. No edit is lost regardless of
// call order.
func (b *Builder) SwitchSession(index int) error {
	if index < 0 || index >= len(b.sessions) {
		return fmt.Errorf("session index %d out of range", index)
	}
	b.flush()
	b.current = index
	b.blocks = cloneBlocks(b.sessions[index].blocks)
	return nil
}

// DeleteSession removes a session. Deleting the last remaining session
// fails with ErrLastSession and leaves the program untouched.
func (b *Builder) DeleteSession(index int) error {
	if index < 0 || index >= len(b.sessions) {
		return fmt.Errorf("session index %d out of range", index)
	}
	if len(b.sessions) <= 1 {
		return ErrLastSession
	}
	b.flush()
	b.sessions = append(b.sessions[:index], b.sessions[index+1:]...)
	if b.current >= len(b.sessions) {
		b.current = len(b.sessions) - 1
	}
	b.blocks = cloneBlocks(b.sessions[b.current].blocks)
	return nil
}

// RenameSession sets a session's title.
func (b *Builder) RenameSession(index int, title string) error {
	if index < 0 || index >= len(b.sessions) {
		return fmt.Errorf("session index %d out of range", index)
	}
	b.sessions[index].title = title
	return nil
}

// SessionTitle returns a session's title.
func (b *Builder) SessionTitle(index int) (string, error) {
	if index < 0 || index >= len(b.sessions) {
		return "", fmt.Errorf("session index %d out of range", index)
	}
	return b.sessions[index].title, nil
}

// AddBlock appends a block of the given workout type to the current
// session with no items and default rest timings. Returns its index.
func (b *Builder) AddBlock(t workout.Type) int {
	rest := defaultRestBetweenItems
	after := defaultRestAfterBlock
	b.blocks = append(b.blocks, models.ExerciseBlock{
		Label:                   fmt.Sprintf("Block %d", len(b.blocks)+1),
		OrderIndex:              len(b.blocks),
		BlockType:               string(workout.StraightSets),
		WorkoutType:             t,
		RestBetweenItemsSeconds: &rest,
		RestAfterBlockSeconds:   &after,
	})
	return len(b.blocks) - 1
}

// BlockCount returns the number of blocks in the working session.
func (b *Builder) BlockCount() int { return len(b.blocks) }

// Block returns a copy of the block at index.
func (b *Builder) Block(index int) (models.ExerciseBlock, error) {
	if index < 0 || index >= len(b.blocks) {
		return models.ExerciseBlock{}, fmt.Errorf("block index %d out of range", index)
	}
	return cloneBlock(b.blocks[index]), nil
}

// AddExercise appends an item for the exercise to the block, with the
// default prescription. This is the single hard enforcement point for
// workout-type exercise limits: when the block is already at its
// maximum the call fails with a ConstraintError and the block is left
// unchanged. Minimum counts are advisory only (see BlockWarnings).
func (b *Builder) AddExercise(blockIndex int, ex models.Exercise) error {
	if blockIndex < 0 || blockIndex >= len(b.blocks) {
		return fmt.Errorf("block index %d out of range", blockIndex)
	}
	block := &b.blocks[blockIndex]
	c := workout.ConstraintsFor(block.WorkoutType)
	if !c.Allows(len(block.Items)) {
		return &ConstraintError{WorkoutType: block.WorkoutType, Min: c.MinExercises, Max: c.MaxExercises, Label: c.ExerciseLabel}
	}

	sets := defaultSets
	reps := defaultTargetReps
	rest := defaultRestSeconds
	block.Items = append(block.Items, models.BlockItem{
		OrderIndex:   len(block.Items),
		ExerciseID:   ex.ID,
		ExerciseName: ex.Name,
		Prescription: models.Prescription{
			Sets:        &sets,
			TargetReps:  &reps,
			RestSeconds: &rest,
			WeightUnit:  models.Kilograms,
		},
	})
	return nil
}

// UpdatePrescription merges non-nil patch fields into an item's
// prescription. No validation beyond index checks.
func (b *Builder) UpdatePrescription(blockIndex, itemIndex int, patch PrescriptionPatch) error {
	if blockIndex < 0 || blockIndex >= len(b.blocks) {
		return fmt.Errorf("block index %d out of range", blockIndex)
	}
	items := b.blocks[blockIndex].Items
	if itemIndex < 0 || itemIndex >= len(items) {
		return fmt.Errorf("item index %d out of range", itemIndex)
	}
	patch.apply(&items[itemIndex].Prescription)
	return nil
}

// UpdateBlockConfig merges non-nil patch fields into a block's
// structural configuration.
func (b *Builder) UpdateBlockConfig(blockIndex int, patch BlockConfigPatch) error {
	if blockIndex < 0 || blockIndex >= len(b.blocks) {
		return fmt.Errorf("block index %d out of range", blockIndex)
	}
	patch.apply(&b.blocks[blockIndex])
	return nil
}

// RemoveBlock removes the block at index unconditionally. Confirmation
// is a caller concern.
func (b *Builder) RemoveBlock(index int) error {
	if index < 0 || index >= len(b.blocks) {
		return fmt.Errorf("block index %d out of range", index)
	}
	b.blocks = append(b.blocks[:index], b.blocks[index+1:]...)
	for i := range b.blocks {
		b.blocks[i].OrderIndex = i
	}
	return nil
}

// RemoveExercise removes one item from a block unconditionally.
func (b *Builder) RemoveExercise(blockIndex, itemIndex int) error {
	if blockIndex < 0 || blockIndex >= len(b.blocks) {
		return fmt.Errorf("block index %d out of range", blockIndex)
	}
	block := &b.blocks[blockIndex]
	if itemIndex < 0 || itemIndex >= len(block.Items) {
		return fmt.Errorf("item index %d out of range", itemIndex)
	}
	block.Items = append(block.Items[:itemIndex], block.Items[itemIndex+1:]...)
	for i := range block.Items {
		block.Items[i].OrderIndex = i
	}
	return nil
}

// BlockWarning is an advisory problem with a block that does not stop
// editing but would make the block structurally incomplete.
type BlockWarning struct {
	BlockIndex int
	Message    string
}

// Warnings reports advisory problems across the working session:
// blocks below their minimum exercise count and blocks missing a
// required rounds/duration/interval configuration.
func (b *Builder) Warnings() []BlockWarning {
	var warnings []BlockWarning
	add := func(i int, format string, args ...any) {
		warnings = append(warnings, BlockWarning{BlockIndex: i, Message: fmt.Sprintf(format, args...)})
	}
	for i, block := range b.blocks {
		c := workout.ConstraintsFor(block.WorkoutType)
		if len(block.Items) < c.MinExercises {
			add(i, "needs at least %d %s(s), has %d", c.MinExercises, c.ExerciseLabel, len(block.Items))
		}
		if c.RequiresRounds && (block.TotalRounds == nil || *block.TotalRounds <= 0) {
			add(i, "total rounds not set")
		}
		if c.RequiresAMRAPDuration && (block.AMRAPDurationSeconds == nil || *block.AMRAPDurationSeconds <= 0) {
			add(i, "AMRAP duration not set")
		}
		if c.RequiresIntervals && (block.WorkPhaseSeconds == nil && block.IntervalSeconds == nil) {
			add(i, "work/rest intervals not set")
		}
	}
	return warnings
}

// Build flushes pending edits, validates the whole program, and
// returns it in wire form. On validation failure it returns the full
// list of problems and the in-memory state is left intact, so the
// caller can fix and retry; there is no partial output.
func (b *Builder) Build() (models.Program, error) {
	b.flush()

	var errs ValidationErrors
	if b.title == "" {
		errs = append(errs, ValidationError{Field: "title", Message: "title must not be empty"})
	}
	if b.totalWeeks < 1 || b.totalWeeks > 52 {
		errs = append(errs, ValidationError{Field: "totalWeeks", Message: "total weeks must be between 1 and 52"})
	}
	hasBlock := false
	for _, s := range b.sessions {
		if len(s.blocks) > 0 {
			hasBlock = true
			break
		}
	}
	if !hasBlock {
		errs = append(errs, ValidationError{Field: "sessions", Message: "at least one session must contain a block"})
	}
	if len(errs) > 0 {
		return models.Program{}, errs
	}

	p := models.Program{
		ID:         b.programID,
		Title:      b.title,
		TotalWeeks: b.totalWeeks,
	}
	for i, s := range b.sessions {
		session := models.Session{
			ID:         s.id,
			Title:      s.title,
			OrderIndex: i,
			Blocks:     cloneBlocks(s.blocks),
		}
		for j := range session.Blocks {
			session.Blocks[j].OrderIndex = j
		}
		p.Sessions = append(p.Sessions, session)
	}
	return p, nil
}

// flush writes the working block copy back into the current session.
func (b *Builder) flush() {
	b.sessions[b.current].blocks = cloneBlocks(b.blocks)
}

func cloneBlocks(blocks []models.ExerciseBlock) []models.ExerciseBlock {
	if blocks == nil {
		return nil
	}
	out := make([]models.ExerciseBlock, len(blocks))
	for i, blk := range blocks {
		out[i] = cloneBlock(blk)
	}
	return out
}

func cloneBlock(blk models.ExerciseBlock) models.ExerciseBlock {
	items := make([]models.BlockItem, len(blk.Items))
	copy(items, blk.Items)
	blk.Items = items
	return blk
}
