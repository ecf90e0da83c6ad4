package builder

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"github.com/claude/repforge/internal/models"
	"github.com/claude/repforge/internal/workout"
	"github.com/google/uuid"
)

func exercise(name string) models.Exercise {
	return models.Exercise{ID: uuid.New(), Name: name}
}

func TestNewStartsWithOneSession(t *testing.T) {
	b := New()
	if b.SessionCount() != 1 {
		t.Fatalf("session count = %d, want 1", b.SessionCount())
	}
	title, err := b.SessionTitle(0)
	if err != nil {
		t.Fatal(err)
	}
	if title != "Session 1" {
		t.Errorf("title = %q, want %q", title, "Session 1")
	}
}

func TestAddExerciseRejectsBeyondMax(t *testing.T) {
	b := New()
	idx := b.AddBlock(workout.Supersets)

	if err := b.AddExercise(idx, exercise("Bench Press")); err != nil {
		t.Fatalf("first add: %v", err)
	}
	if err := b.AddExercise(idx, exercise("Bent Row")); err != nil {
		t.Fatalf("second add: %v", err)
	}

	err := b.AddExercise(idx, exercise("Curl"))
	var ce *ConstraintError
	if !errors.As(err, &ce) {
		t.Fatalf("third add err = %v, want ConstraintError", err)
	}
	if ce.Max != 2 {
		t.Errorf("constraint max = %d, want 2", ce.Max)
	}
	if got, want := ce.Error(), "Supersets requires exactly 2 exercises"; got != want {
		t.Errorf("error = %q, want %q", got, want)
	}

	block, _ := b.Block(idx)
	if len(block.Items) != 2 {
		t.Errorf("item count after rejection = %d, want 2", len(block.Items))
	}
}

// TestAddExerciseRangedConstraintMessage covers types where min and max
// differ; hitting the cap is an upper bound, not an exact count.
func TestAddExerciseRangedConstraintMessage(t *testing.T) {
	b := New()
	idx := b.AddBlock(workout.MechanicalDropSet)
	for i := 0; i < 3; i++ {
		if err := b.AddExercise(idx, exercise("Press Variation")); err != nil {
			t.Fatalf("add %d: %v", i+1, err)
		}
	}

	err := b.AddExercise(idx, exercise("One Too Many"))
	var ce *ConstraintError
	if !errors.As(err, &ce) {
		t.Fatalf("fourth add err = %v, want ConstraintError", err)
	}
	if got, want := ce.Error(), "Mechanical Drop Set allows at most 3 variations"; got != want {
		t.Errorf("error = %q, want %q", got, want)
	}
}

func TestAddExerciseUnboundedNeverRejects(t *testing.T) {
	b := New()
	idx := b.AddBlock(workout.GiantSets)
	for i := 0; i < 12; i++ {
		if err := b.AddExercise(idx, exercise("Movement")); err != nil {
			t.Fatalf("add %d: %v", i+1, err)
		}
	}
	block, _ := b.Block(idx)
	if len(block.Items) != 12 {
		t.Errorf("item count = %d, want 12", len(block.Items))
	}
}

func TestAddExerciseDefaultPrescription(t *testing.T) {
	b := New()
	idx := b.AddBlock(workout.StraightSets)
	if err := b.AddExercise(idx, exercise("Squat")); err != nil {
		t.Fatal(err)
	}
	block, _ := b.Block(idx)
	p := block.Items[0].Prescription
	if p.Sets == nil || *p.Sets != 3 {
		t.Errorf("sets = %v, want 3", p.Sets)
	}
	if p.TargetReps == nil || *p.TargetReps != 10 {
		t.Errorf("targetReps = %v, want 10", p.TargetReps)
	}
	if p.RestSeconds == nil || *p.RestSeconds != 60 {
		t.Errorf("restSeconds = %v, want 60", p.RestSeconds)
	}
	if p.WeightUnit != models.Kilograms {
		t.Errorf("weightUnit = %q, want KG", p.WeightUnit)
	}
}

func TestDeleteLastSessionFails(t *testing.T) {
	b := New()
	b.AddBlock(workout.StraightSets)

	if err := b.DeleteSession(0); !errors.Is(err, ErrLastSession) {
		t.Fatalf("err = %v, want ErrLastSession", err)
	}
	if b.SessionCount() != 1 {
		t.Errorf("session count = %d, want 1", b.SessionCount())
	}
	if b.BlockCount() != 1 {
		t.Errorf("block count = %d, want 1 (session must be untouched)", b.BlockCount())
	}
}

func TestDeleteSessionReclampsCurrent(t *testing.T) {
	b := New()
	b.AddSession()
	b.AddSession()
	if b.CurrentSession() != 2 {
		t.Fatalf("current = %d, want 2", b.CurrentSession())
	}
	if err := b.DeleteSession(2); err != nil {
		t.Fatal(err)
	}
	if b.CurrentSession() != 1 {
		t.Errorf("current after delete = %d, want 1", b.CurrentSession())
	}
	if b.SessionCount() != 2 {
		t.Errorf("session count = %d, want 2", b.SessionCount())
	}
}

func TestSwitchSessionPreservesEdits(t *testing.T) {
	b := New()
	idx := b.AddBlock(workout.Circuit)
	b.AddExercise(idx, exercise("Burpee"))

	b.AddSession()
	if b.BlockCount() != 0 {
		t.Fatalf("new session block count = %d, want 0", b.BlockCount())
	}
	b.AddBlock(workout.Tabata)

	if err := b.SwitchSession(0); err != nil {
		t.Fatal(err)
	}
	block, err := b.Block(0)
	if err != nil {
		t.Fatal(err)
	}
	if block.WorkoutType != workout.Circuit || len(block.Items) != 1 {
		t.Errorf("session 0 block = %s with %d items, want CIRCUIT with 1", block.WorkoutType, len(block.Items))
	}

	if err := b.SwitchSession(1); err != nil {
		t.Fatal(err)
	}
	block, _ = b.Block(0)
	if block.WorkoutType != workout.Tabata {
		t.Errorf("session 1 block = %s, want TABATA", block.WorkoutType)
	}
}

func TestUpdatePrescriptionMerges(t *testing.T) {
	b := New()
	idx := b.AddBlock(workout.StraightSets)
	b.AddExercise(idx, exercise("Deadlift"))

	weight := 140.0
	rpe := 8
	if err := b.UpdatePrescription(idx, 0, PrescriptionPatch{Weight: &weight, RPE: &rpe}); err != nil {
		t.Fatal(err)
	}

	block, _ := b.Block(idx)
	p := block.Items[0].Prescription
	if p.Weight == nil || *p.Weight != 140.0 {
		t.Errorf("weight = %v, want 140", p.Weight)
	}
	if p.RPE == nil || *p.RPE != 8 {
		t.Errorf("rpe = %v, want 8", p.RPE)
	}
	// Untouched fields keep their defaults.
	if p.Sets == nil || *p.Sets != 3 {
		t.Errorf("sets = %v, want 3", p.Sets)
	}
}

func TestUpdateBlockConfig(t *testing.T) {
	b := New()
	idx := b.AddBlock(workout.AMRAP)
	dur := 720
	label := "Metcon"
	if err := b.UpdateBlockConfig(idx, BlockConfigPatch{Label: &label, AMRAPDurationSeconds: &dur}); err != nil {
		t.Fatal(err)
	}
	block, _ := b.Block(idx)
	if block.Label != "Metcon" {
		t.Errorf("label = %q, want Metcon", block.Label)
	}
	if block.AMRAPDurationSeconds == nil || *block.AMRAPDurationSeconds != 720 {
		t.Errorf("amrap duration = %v, want 720", block.AMRAPDurationSeconds)
	}
}

func TestRemoveBlockRenumbers(t *testing.T) {
	b := New()
	b.AddBlock(workout.StraightSets)
	b.AddBlock(workout.Supersets)
	b.AddBlock(workout.Circuit)

	if err := b.RemoveBlock(1); err != nil {
		t.Fatal(err)
	}
	if b.BlockCount() != 2 {
		t.Fatalf("block count = %d, want 2", b.BlockCount())
	}
	second, _ := b.Block(1)
	if second.WorkoutType != workout.Circuit || second.OrderIndex != 1 {
		t.Errorf("block 1 = %s order %d, want CIRCUIT order 1", second.WorkoutType, second.OrderIndex)
	}
}

func TestRemoveExerciseRenumbers(t *testing.T) {
	b := New()
	idx := b.AddBlock(workout.Circuit)
	b.AddExercise(idx, exercise("Row"))
	b.AddExercise(idx, exercise("Bike"))
	b.AddExercise(idx, exercise("Ski"))

	if err := b.RemoveExercise(idx, 0); err != nil {
		t.Fatal(err)
	}
	block, _ := b.Block(idx)
	if len(block.Items) != 2 {
		t.Fatalf("item count = %d, want 2", len(block.Items))
	}
	if block.Items[0].ExerciseName != "Bike" || block.Items[0].OrderIndex != 0 {
		t.Errorf("item 0 = %q order %d, want Bike order 0", block.Items[0].ExerciseName, block.Items[0].OrderIndex)
	}
}

func TestWarningsAdvisoryMinimum(t *testing.T) {
	b := New()
	idx := b.AddBlock(workout.Trisets)
	b.AddExercise(idx, exercise("Fly"))

	warnings := b.Warnings()
	if len(warnings) == 0 {
		t.Fatal("expected a minimum-count warning")
	}

	// Advisory only: the program still builds.
	b.SetTitle("Push Day")
	b.AddExercise(idx, exercise("Press"))
	b.AddExercise(idx, exercise("Dip"))
	if _, err := b.Build(); err != nil {
		t.Errorf("build with satisfied triset: %v", err)
	}
}

func TestWarningsRequiredConfig(t *testing.T) {
	b := New()
	b.AddBlock(workout.AMRAP)
	b.AddBlock(workout.Circuit)

	var messages []string
	for _, w := range b.Warnings() {
		messages = append(messages, w.Message)
	}
	if len(messages) < 2 {
		t.Fatalf("warnings = %v, want AMRAP duration and rounds warnings", messages)
	}
}

func TestBuildValidation(t *testing.T) {
	b := New()
	b.SetTotalWeeks(60)

	_, err := b.Build()
	var verrs ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("err = %v, want ValidationErrors", err)
	}

	fields := map[string]bool{}
	for _, v := range verrs {
		fields[v.Field] = true
	}
	for _, f := range []string{"title", "totalWeeks", "sessions"} {
		if !fields[f] {
			t.Errorf("missing validation error for %s (got %v)", f, verrs)
		}
	}
}

func TestBuildNeverPartial(t *testing.T) {
	b := New()
	idx := b.AddBlock(workout.StraightSets)
	b.AddExercise(idx, exercise("Squat"))

	if _, err := b.Build(); err == nil {
		t.Fatal("build without title should fail")
	}

	// State intact after failure: fixing the problem makes it build.
	b.SetTitle("Leg Day")
	p, err := b.Build()
	if err != nil {
		t.Fatalf("build after fix: %v", err)
	}
	if len(p.Sessions) != 1 || len(p.Sessions[0].Blocks) != 1 {
		t.Errorf("program shape = %d sessions, want 1 with 1 block", len(p.Sessions))
	}
}

func buildSampleProgram(t *testing.T) models.Program {
	t.Helper()
	b := New()
	b.SetTitle("12-Week Strength Builder")
	b.SetTotalWeeks(12)

	idx := b.AddBlock(workout.Supersets)
	b.AddExercise(idx, exercise("Bench Press"))
	b.AddExercise(idx, exercise("Bent Row"))
	weight := 80.0
	tempo := "3-1-1-0"
	rir := 2
	b.UpdatePrescription(idx, 0, PrescriptionPatch{Weight: &weight, Tempo: &tempo, RIR: &rir})

	b.AddSession()
	b.RenameSession(1, "Conditioning")
	idx = b.AddBlock(workout.AMRAP)
	b.AddExercise(idx, exercise("Burpee"))
	dur := 900
	instructions := "Scale to 10 cal row if needed"
	b.UpdateBlockConfig(idx, BlockConfigPatch{AMRAPDurationSeconds: &dur, BlockInstructions: &instructions})

	p, err := b.Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	return p
}

func TestWireRoundTrip(t *testing.T) {
	p := buildSampleProgram(t)

	data, err := json.Marshal(p)
	if err != nil {
		t.Fatal(err)
	}
	var decoded models.Program
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(p, decoded) {
		t.Errorf("wire round trip mismatch:\n got %+v\nwant %+v", decoded, p)
	}
}

func TestLoadRoundTrip(t *testing.T) {
	p := buildSampleProgram(t)

	b, err := Load(context.Background(), p, nil)
	if err != nil {
		t.Fatal(err)
	}
	rebuilt, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(p, rebuilt) {
		t.Errorf("load/build round trip mismatch:\n got %+v\nwant %+v", rebuilt, p)
	}
}

type fakeResolver map[uuid.UUID]models.Exercise

func (r fakeResolver) Exercise(_ context.Context, id uuid.UUID) (models.Exercise, error) {
	ex, ok := r[id]
	if !ok {
		return models.Exercise{}, errors.New("exercise not found")
	}
	return ex, nil
}

func TestLoadResolvesMissingNames(t *testing.T) {
	ex := exercise("Overhead Press")
	p := buildSampleProgram(t)
	p.Sessions[0].Blocks[0].Items[0].ExerciseID = ex.ID
	p.Sessions[0].Blocks[0].Items[0].ExerciseName = ""

	b, err := Load(context.Background(), p, fakeResolver{ex.ID: ex})
	if err != nil {
		t.Fatal(err)
	}
	block, _ := b.Block(0)
	if block.Items[0].ExerciseName != "Overhead Press" {
		t.Errorf("resolved name = %q, want Overhead Press", block.Items[0].ExerciseName)
	}
}

func TestLoadSurfacesResolverFailure(t *testing.T) {
	p := buildSampleProgram(t)
	p.Sessions[0].Blocks[0].Items[0].ExerciseName = ""

	if _, err := Load(context.Background(), p, fakeResolver{}); err == nil {
		t.Fatal("expected resolver failure to surface")
	}
}
