// Package execution drives a live workout session from start to
// finish: it tracks position within the session, accumulates set
// results and counters in memory, and persists through a
// ResultService collaborator only at the start and finish boundaries.
package execution

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/claude/repforge/internal/models"
	"github.com/google/uuid"
)

// State is the lifecycle phase of a session run.
type State int

const (
	NotStarted State = iota
	Running
	Finished
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not started"
	case Running:
		return "running"
	case Finished:
		return "finished"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// ErrNotRunning is returned by mutating calls outside the Running
// state, including a second Finish after a successful one.
var ErrNotRunning = errors.New("session is not running")

// ResultService persists session outcomes. The engine calls it once at
// Start and twice at Finish (update then finish); everything in
// between is in-memory only.
type ResultService interface {
	StartSession(ctx context.Context, userID int, session models.Session, start time.Time) (uuid.UUID, error)
	UpdateResult(ctx context.Context, id uuid.UUID, update models.ResultUpdate) error
	FinishResult(ctx context.Context, id uuid.UUID, end time.Time) error
}

type itemKey struct {
	block int
	item  int
}

// Engine executes one session. Not safe for concurrent use; a run is
// driven by a single caller.
type Engine struct {
	service ResultService
	clock   func() time.Time

	state     State
	session   models.Session
	resultID  uuid.UUID
	startTime time.Time

	currentBlock int
	sets         []models.SetResult
	setCounters  map[itemKey]int

	totalRounds      int
	circuitRounds    int
	emomCompleted    int
	emomFailed       int
	tabataRounds     int
	wodResult        string
	workoutQuality   *int
	workoutEnjoyment *int
	notes            string
}

// New returns an engine in the NotStarted state. The clock is injected
// so elapsed time and timestamps are testable; pass time.Now in
// production.
func New(service ResultService, clock func() time.Time) *Engine {
	if clock == nil {
		clock = time.Now
	}
	return &Engine{
		service:     service,
		clock:       clock,
		setCounters: make(map[itemKey]int),
	}
}

// State returns the current lifecycle phase.
func (e *Engine) State() State { return e.state }

// ResultID returns the persisted result's id, valid after Start.
func (e *Engine) ResultID() uuid.UUID { return e.resultID }

// Start opens a persisted in-flight result for the session and moves
// the engine to Running. Starting twice is an error.
func (e *Engine) Start(ctx context.Context, userID int, session models.Session) error {
	if e.state != NotStarted {
		return fmt.Errorf("start: session already %s", e.state)
	}
	start := e.clock()
	id, err := e.service.StartSession(ctx, userID, session, start)
	if err != nil {
		return fmt.Errorf("starting session: %w", err)
	}
	e.session = session
	e.resultID = id
	e.startTime = start
	e.state = Running
	return nil
}

// CurrentBlock returns the index of the block in focus.
func (e *Engine) CurrentBlock() int { return e.currentBlock }

// AdvanceBlock moves focus to the next block, clamping at the last.
// There is no wrap-around.
func (e *Engine) AdvanceBlock() error {
	if e.state != Running {
		return ErrNotRunning
	}
	if e.currentBlock < len(e.session.Blocks)-1 {
		e.currentBlock++
	}
	return nil
}

// RetreatBlock moves focus to the previous block, clamping at the
// first.
func (e *Engine) RetreatBlock() error {
	if e.state != Running {
		return ErrNotRunning
	}
	if e.currentBlock > 0 {
		e.currentBlock--
	}
	return nil
}

// LogSet records one performed set for the item at itemIndex in the
// current block. Set numbers are assigned per item, starting at 1, in
// logging order. The append itself cannot fail; only a bad index does.
func (e *Engine) LogSet(itemIndex int, performedReps *int, weight *float64, rpe *int, restTaken *int) error {
	if e.state != Running {
		return ErrNotRunning
	}
	if e.currentBlock >= len(e.session.Blocks) {
		return fmt.Errorf("block index %d out of range", e.currentBlock)
	}
	block := e.session.Blocks[e.currentBlock]
	if itemIndex < 0 || itemIndex >= len(block.Items) {
		return fmt.Errorf("item index %d out of range", itemIndex)
	}
	item := block.Items[itemIndex]

	key := itemKey{block: e.currentBlock, item: itemIndex}
	e.setCounters[key]++

	unit := item.Prescription.WeightUnit
	if unit == "" {
		unit = models.Kilograms
	}
	e.sets = append(e.sets, models.SetResult{
		BlockLabel:       block.Label,
		BlockItemOrder:   item.OrderIndex,
		SetNumber:        e.setCounters[key],
		ExerciseName:     item.ExerciseName,
		TargetReps:       item.Prescription.TargetReps,
		PerformedReps:    performedReps,
		Weight:           weight,
		WeightUnit:       unit,
		RPE:              rpe,
		RestTakenSeconds: restTaken,
	})
	return nil
}

// Sets returns a copy of the sets logged so far.
func (e *Engine) Sets() []models.SetResult {
	out := make([]models.SetResult, len(e.sets))
	copy(out, e.sets)
	return out
}

// AdjustRounds changes the overall round counter by delta, clamping at
// zero. Used for FOR_TIME style blocks.
func (e *Engine) AdjustRounds(delta int) error {
	return e.adjustCounter(&e.totalRounds, delta)
}

// AdjustCircuitRounds changes the completed-circuit counter by delta,
// clamping at zero.
func (e *Engine) AdjustCircuitRounds(delta int) error {
	return e.adjustCounter(&e.circuitRounds, delta)
}

// AdjustEMOMMinutes changes the completed and failed minute counters,
// each clamping at zero independently.
func (e *Engine) AdjustEMOMMinutes(completedDelta, failedDelta int) error {
	if e.state != Running {
		return ErrNotRunning
	}
	e.emomCompleted = clampZero(e.emomCompleted + completedDelta)
	e.emomFailed = clampZero(e.emomFailed + failedDelta)
	return nil
}

// AdjustTabataRounds changes the completed Tabata round counter by
// delta, clamping at zero.
func (e *Engine) AdjustTabataRounds(delta int) error {
	return e.adjustCounter(&e.tabataRounds, delta)
}

func (e *Engine) adjustCounter(counter *int, delta int) error {
	if e.state != Running {
		return ErrNotRunning
	}
	*counter = clampZero(*counter + delta)
	return nil
}

func clampZero(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

// Counters returns the current counter values: total rounds, circuit
// rounds, EMOM completed and failed minutes, and Tabata rounds.
func (e *Engine) Counters() (rounds, circuit, emomCompleted, emomFailed, tabata int) {
	return e.totalRounds, e.circuitRounds, e.emomCompleted, e.emomFailed, e.tabataRounds
}

// SetWODResult records a free-form score such as a FOR_TIME finishing
// time or an AMRAP total.
func (e *Engine) SetWODResult(result string) error {
	if e.state != Running {
		return ErrNotRunning
	}
	e.wodResult = result
	return nil
}

// RateQuality records a 1 to 10 workout quality rating.
func (e *Engine) RateQuality(rating int) error {
	return e.rate(&e.workoutQuality, rating)
}

// RateEnjoyment records a 1 to 10 workout enjoyment rating.
func (e *Engine) RateEnjoyment(rating int) error {
	return e.rate(&e.workoutEnjoyment, rating)
}

func (e *Engine) rate(dst **int, rating int) error {
	if e.state != Running {
		return ErrNotRunning
	}
	if rating < 1 || rating > 10 {
		return fmt.Errorf("rating %d out of range 1-10", rating)
	}
	r := rating
	*dst = &r
	return nil
}

// SetNotes records free-form session notes.
func (e *Engine) SetNotes(notes string) error {
	if e.state != Running {
		return ErrNotRunning
	}
	e.notes = notes
	return nil
}

// Elapsed returns time since Start according to the injected clock.
func (e *Engine) Elapsed() time.Duration {
	if e.state == NotStarted {
		return 0
	}
	return e.clock().Sub(e.startTime)
}

// Finish pushes the accumulated state to the collaborator and closes
// the result. It first applies a full update, then marks the result
// finished with the end timestamp. If either call fails the engine
// stays Running so the caller can retry; after success the engine is
// Finished and further calls, including a second Finish, fail without
// touching the collaborator again.
func (e *Engine) Finish(ctx context.Context) error {
	if e.state != Running {
		return fmt.Errorf("finish: %w", ErrNotRunning)
	}

	update := models.ResultUpdate{
		SetResults: e.Sets(),
	}
	if e.notes != "" {
		update.Notes = &e.notes
	}
	if e.wodResult != "" {
		update.WODResult = &e.wodResult
	}
	update.WorkoutQuality = e.workoutQuality
	update.WorkoutEnjoyment = e.workoutEnjoyment
	if e.totalRounds > 0 {
		update.TotalRounds = intPtr(e.totalRounds)
	}
	if e.circuitRounds > 0 {
		update.CircuitRoundsCompleted = intPtr(e.circuitRounds)
	}
	if e.emomCompleted > 0 || e.emomFailed > 0 {
		update.EMOMMinutesCompleted = intPtr(e.emomCompleted)
		update.EMOMFailedMinutes = intPtr(e.emomFailed)
	}
	if e.tabataRounds > 0 {
		update.TabataRoundsCompleted = intPtr(e.tabataRounds)
	}

	if err := e.service.UpdateResult(ctx, e.resultID, update); err != nil {
		return fmt.Errorf("updating result: %w", err)
	}
	if err := e.service.FinishResult(ctx, e.resultID, e.clock()); err != nil {
		return fmt.Errorf("finishing result: %w", err)
	}
	e.state = Finished
	return nil
}

func intPtr(n int) *int { return &n }
