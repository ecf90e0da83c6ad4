package execution

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/claude/repforge/internal/models"
	"github.com/claude/repforge/internal/workout"
	"github.com/google/uuid"
)

type fakeService struct {
	startCalls  int
	updateCalls int
	finishCalls int

	startErr  error
	updateErr error
	finishErr error

	lastUpdate models.ResultUpdate
	lastEnd    time.Time
	id         uuid.UUID
}

func (f *fakeService) StartSession(_ context.Context, _ int, _ models.Session, _ time.Time) (uuid.UUID, error) {
	f.startCalls++
	if f.startErr != nil {
		return uuid.Nil, f.startErr
	}
	if f.id == uuid.Nil {
		f.id = uuid.New()
	}
	return f.id, nil
}

func (f *fakeService) UpdateResult(_ context.Context, _ uuid.UUID, update models.ResultUpdate) error {
	f.updateCalls++
	if f.updateErr != nil {
		return f.updateErr
	}
	f.lastUpdate = update
	return nil
}

func (f *fakeService) FinishResult(_ context.Context, _ uuid.UUID, end time.Time) error {
	f.finishCalls++
	if f.finishErr != nil {
		return f.finishErr
	}
	f.lastEnd = end
	return nil
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func sampleSession() models.Session {
	targetReps := 10
	return models.Session{
		ID:    uuid.New(),
		Title: "Push Day",
		Blocks: []models.ExerciseBlock{
			{
				Label:       "Block 1",
				WorkoutType: workout.StraightSets,
				Items: []models.BlockItem{
					{OrderIndex: 0, ExerciseName: "Bench Press", Prescription: models.Prescription{TargetReps: &targetReps, WeightUnit: models.Kilograms}},
					{OrderIndex: 1, ExerciseName: "Overhead Press", Prescription: models.Prescription{TargetReps: &targetReps, WeightUnit: models.Kilograms}},
				},
			},
			{
				Label:       "Block 2",
				WorkoutType: workout.AMRAP,
				Items: []models.BlockItem{
					{OrderIndex: 0, ExerciseName: "Burpee"},
				},
			},
		},
	}
}

func startedEngine(t *testing.T, svc *fakeService) *Engine {
	t.Helper()
	e := New(svc, fixedClock(time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC)))
	if err := e.Start(context.Background(), 1, sampleSession()); err != nil {
		t.Fatalf("start: %v", err)
	}
	return e
}

func TestStartTransitionsToRunning(t *testing.T) {
	svc := &fakeService{}
	e := startedEngine(t, svc)
	if e.State() != Running {
		t.Errorf("state = %s, want running", e.State())
	}
	if svc.startCalls != 1 {
		t.Errorf("start calls = %d, want 1", svc.startCalls)
	}
	if e.ResultID() != svc.id {
		t.Errorf("result id = %s, want %s", e.ResultID(), svc.id)
	}
}

func TestStartTwiceFails(t *testing.T) {
	svc := &fakeService{}
	e := startedEngine(t, svc)
	if err := e.Start(context.Background(), 1, sampleSession()); err == nil {
		t.Fatal("second start should fail")
	}
	if svc.startCalls != 1 {
		t.Errorf("start calls = %d, want 1", svc.startCalls)
	}
}

func TestStartFailureStaysNotStarted(t *testing.T) {
	svc := &fakeService{startErr: errors.New("db down")}
	e := New(svc, nil)
	if err := e.Start(context.Background(), 1, sampleSession()); err == nil {
		t.Fatal("start should surface service failure")
	}
	if e.State() != NotStarted {
		t.Errorf("state = %s, want not started", e.State())
	}
}

func TestMutationsBeforeStartFail(t *testing.T) {
	e := New(&fakeService{}, nil)
	if err := e.LogSet(0, nil, nil, nil, nil); !errors.Is(err, ErrNotRunning) {
		t.Errorf("LogSet err = %v, want ErrNotRunning", err)
	}
	if err := e.AdjustRounds(1); !errors.Is(err, ErrNotRunning) {
		t.Errorf("AdjustRounds err = %v, want ErrNotRunning", err)
	}
	if err := e.AdvanceBlock(); !errors.Is(err, ErrNotRunning) {
		t.Errorf("AdvanceBlock err = %v, want ErrNotRunning", err)
	}
}

func TestLogSetNumbersPerItem(t *testing.T) {
	e := startedEngine(t, &fakeService{})

	reps := 10
	weight := 100.0
	for i := 0; i < 3; i++ {
		if err := e.LogSet(0, &reps, &weight, nil, nil); err != nil {
			t.Fatalf("log set %d: %v", i+1, err)
		}
	}
	if err := e.LogSet(1, &reps, nil, nil, nil); err != nil {
		t.Fatal(err)
	}

	sets := e.Sets()
	if len(sets) != 4 {
		t.Fatalf("set count = %d, want 4", len(sets))
	}
	for i, want := range []int{1, 2, 3} {
		if sets[i].SetNumber != want {
			t.Errorf("set %d number = %d, want %d", i, sets[i].SetNumber, want)
		}
	}
	// The other item starts its own numbering at 1.
	if sets[3].SetNumber != 1 || sets[3].ExerciseName != "Overhead Press" {
		t.Errorf("set 3 = #%d %s, want #1 Overhead Press", sets[3].SetNumber, sets[3].ExerciseName)
	}
	if sets[0].TargetReps == nil || *sets[0].TargetReps != 10 {
		t.Errorf("target reps not carried from prescription")
	}
}

func TestLogSetBadIndex(t *testing.T) {
	e := startedEngine(t, &fakeService{})
	if err := e.LogSet(5, nil, nil, nil, nil); err == nil {
		t.Fatal("expected out of range error")
	}
	if len(e.Sets()) != 0 {
		t.Errorf("set count = %d, want 0", len(e.Sets()))
	}
}

func TestBlockNavigationClamps(t *testing.T) {
	e := startedEngine(t, &fakeService{})

	if err := e.RetreatBlock(); err != nil {
		t.Fatal(err)
	}
	if e.CurrentBlock() != 0 {
		t.Errorf("retreat at first block moved to %d", e.CurrentBlock())
	}

	e.AdvanceBlock()
	e.AdvanceBlock()
	e.AdvanceBlock()
	if e.CurrentBlock() != 1 {
		t.Errorf("advance past last block moved to %d, want 1", e.CurrentBlock())
	}
}

func TestCountersClampAtZero(t *testing.T) {
	e := startedEngine(t, &fakeService{})

	e.AdjustRounds(3)
	e.AdjustRounds(-5)
	e.AdjustCircuitRounds(2)
	e.AdjustTabataRounds(-1)
	e.AdjustEMOMMinutes(4, 1)
	e.AdjustEMOMMinutes(-10, 1)

	rounds, circuit, emomDone, emomFailed, tabata := e.Counters()
	if rounds != 0 {
		t.Errorf("rounds = %d, want 0", rounds)
	}
	if circuit != 2 {
		t.Errorf("circuit = %d, want 2", circuit)
	}
	if emomDone != 0 || emomFailed != 2 {
		t.Errorf("emom = %d/%d, want 0/2", emomDone, emomFailed)
	}
	if tabata != 0 {
		t.Errorf("tabata = %d, want 0", tabata)
	}
}

func TestRatingRange(t *testing.T) {
	e := startedEngine(t, &fakeService{})
	if err := e.RateQuality(0); err == nil {
		t.Error("quality 0 should be rejected")
	}
	if err := e.RateQuality(11); err == nil {
		t.Error("quality 11 should be rejected")
	}
	if err := e.RateQuality(8); err != nil {
		t.Errorf("quality 8: %v", err)
	}
	if err := e.RateQuality(10); err != nil {
		t.Errorf("quality 10: %v", err)
	}
	if err := e.RateEnjoyment(10); err != nil {
		t.Errorf("enjoyment 10: %v", err)
	}
}

func TestElapsedUsesInjectedClock(t *testing.T) {
	now := time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC)
	e := New(&fakeService{}, func() time.Time { return now })
	if err := e.Start(context.Background(), 1, sampleSession()); err != nil {
		t.Fatal(err)
	}
	now = now.Add(45 * time.Minute)
	if got := e.Elapsed(); got != 45*time.Minute {
		t.Errorf("elapsed = %s, want 45m", got)
	}
}

func TestFinishPushesAccumulatedState(t *testing.T) {
	svc := &fakeService{}
	start := time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC)
	now := start
	e := New(svc, func() time.Time { return now })
	if err := e.Start(context.Background(), 1, sampleSession()); err != nil {
		t.Fatal(err)
	}

	reps := 8
	weight := 60.0
	e.LogSet(0, &reps, &weight, nil, nil)
	e.AdjustRounds(5)
	e.SetWODResult("5 rounds + 12 reps")
	e.RateQuality(4)
	e.SetNotes("felt strong")

	now = start.Add(time.Hour)
	if err := e.Finish(context.Background()); err != nil {
		t.Fatalf("finish: %v", err)
	}

	if e.State() != Finished {
		t.Errorf("state = %s, want finished", e.State())
	}
	if svc.updateCalls != 1 || svc.finishCalls != 1 {
		t.Errorf("collaborator calls = %d update / %d finish, want 1/1", svc.updateCalls, svc.finishCalls)
	}
	if !svc.lastEnd.Equal(start.Add(time.Hour)) {
		t.Errorf("end time = %s, want %s", svc.lastEnd, start.Add(time.Hour))
	}
	u := svc.lastUpdate
	if len(u.SetResults) != 1 {
		t.Errorf("update sets = %d, want 1", len(u.SetResults))
	}
	if u.TotalRounds == nil || *u.TotalRounds != 5 {
		t.Errorf("update rounds = %v, want 5", u.TotalRounds)
	}
	if u.WODResult == nil || *u.WODResult != "5 rounds + 12 reps" {
		t.Errorf("update wod = %v", u.WODResult)
	}
	if u.WorkoutQuality == nil || *u.WorkoutQuality != 4 {
		t.Errorf("update quality = %v, want 4", u.WorkoutQuality)
	}
	if u.Notes == nil || *u.Notes != "felt strong" {
		t.Errorf("update notes = %v", u.Notes)
	}
}

func TestFinishUpdateFailureStaysRunning(t *testing.T) {
	svc := &fakeService{updateErr: errors.New("network")}
	e := startedEngine(t, svc)

	if err := e.Finish(context.Background()); err == nil {
		t.Fatal("finish should surface update failure")
	}
	if e.State() != Running {
		t.Errorf("state = %s, want running", e.State())
	}
	if svc.finishCalls != 0 {
		t.Errorf("finish calls = %d, want 0 after failed update", svc.finishCalls)
	}

	// Retryable: clearing the fault lets Finish succeed.
	svc.updateErr = nil
	if err := e.Finish(context.Background()); err != nil {
		t.Fatalf("retry finish: %v", err)
	}
	if e.State() != Finished {
		t.Errorf("state = %s, want finished", e.State())
	}
}

func TestFinishCloseFailureStaysRunning(t *testing.T) {
	svc := &fakeService{finishErr: errors.New("network")}
	e := startedEngine(t, svc)

	if err := e.Finish(context.Background()); err == nil {
		t.Fatal("finish should surface close failure")
	}
	if e.State() != Running {
		t.Errorf("state = %s, want running", e.State())
	}
}

func TestSecondFinishFailsWithoutCollaboratorCalls(t *testing.T) {
	svc := &fakeService{}
	e := startedEngine(t, svc)
	if err := e.Finish(context.Background()); err != nil {
		t.Fatal(err)
	}

	err := e.Finish(context.Background())
	if !errors.Is(err, ErrNotRunning) {
		t.Fatalf("second finish err = %v, want ErrNotRunning", err)
	}
	if svc.updateCalls != 1 || svc.finishCalls != 1 {
		t.Errorf("collaborator calls = %d/%d, want 1/1", svc.updateCalls, svc.finishCalls)
	}
}
