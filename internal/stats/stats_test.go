package stats

import (
	"testing"
	"time"

	"github.com/claude/repforge/internal/models"
)

func fptr(f float64) *float64 { return &f }
func iptr(n int) *int         { return &n }

func resultOn(date time.Time) models.WorkoutResult {
	return models.WorkoutResult{Date: date, Finished: true}
}

func TestTotals(t *testing.T) {
	results := []models.WorkoutResult{
		{TotalVolumeLoad: fptr(1140), TotalReps: iptr(13), TotalDurationSeconds: iptr(3600)},
		{TotalVolumeLoad: fptr(860), TotalReps: iptr(40), TotalDurationSeconds: iptr(1800)},
		{}, // never finalized, contributes nothing
	}
	if got := TotalVolume(results); got != 2000 {
		t.Errorf("TotalVolume = %v, want 2000", got)
	}
	if got := TotalReps(results); got != 53 {
		t.Errorf("TotalReps = %d, want 53", got)
	}
	if got := TotalDuration(results); got != 90*time.Minute {
		t.Errorf("TotalDuration = %s, want 1h30m", got)
	}
}

func TestVolumeFromSets(t *testing.T) {
	sets := []models.SetResult{
		{Weight: fptr(100), PerformedReps: iptr(5)},
		{Weight: fptr(80), PerformedReps: iptr(8)},
	}
	var total float64
	for _, s := range sets {
		total += s.VolumeLoad()
	}
	if total != 1140 {
		t.Errorf("volume = %v, want 1140", total)
	}
}

func TestAverageQuality(t *testing.T) {
	results := []models.WorkoutResult{
		{WorkoutQuality: iptr(4)},
		{WorkoutQuality: iptr(5)},
		{}, // unrated
	}
	if got := AverageQuality(results); got != 4.5 {
		t.Errorf("AverageQuality = %v, want 4.5", got)
	}
	if got := AverageQuality(nil); got != 0 {
		t.Errorf("AverageQuality(nil) = %v, want 0", got)
	}
}

func TestStreaksWithGap(t *testing.T) {
	now := time.Date(2026, 3, 14, 19, 30, 0, 0, time.UTC)
	results := []models.WorkoutResult{
		resultOn(now),
		resultOn(now.AddDate(0, 0, -1)),
		resultOn(now.AddDate(0, 0, -3)),
	}
	if got := CurrentStreak(results, now); got != 2 {
		t.Errorf("CurrentStreak = %d, want 2", got)
	}
	if got := LongestStreak(results); got != 2 {
		t.Errorf("LongestStreak = %d, want 2", got)
	}
}

func TestCurrentStreakStartsYesterday(t *testing.T) {
	now := time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC)
	results := []models.WorkoutResult{
		resultOn(now.AddDate(0, 0, -1)),
		resultOn(now.AddDate(0, 0, -2)),
	}
	if got := CurrentStreak(results, now); got != 2 {
		t.Errorf("CurrentStreak = %d, want 2 (rest day today keeps the streak)", got)
	}
}

func TestCurrentStreakBrokenByGap(t *testing.T) {
	now := time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC)
	results := []models.WorkoutResult{
		resultOn(now.AddDate(0, 0, -2)),
		resultOn(now.AddDate(0, 0, -3)),
	}
	if got := CurrentStreak(results, now); got != 0 {
		t.Errorf("CurrentStreak = %d, want 0", got)
	}
}

func TestStreakIgnoresDuplicateDays(t *testing.T) {
	now := time.Date(2026, 3, 14, 20, 0, 0, 0, time.UTC)
	results := []models.WorkoutResult{
		resultOn(now),
		resultOn(now.Add(-2 * time.Hour)), // second session same day
		resultOn(now.AddDate(0, 0, -1)),
	}
	if got := CurrentStreak(results, now); got != 2 {
		t.Errorf("CurrentStreak = %d, want 2", got)
	}
	if got := LongestStreak(results); got != 2 {
		t.Errorf("LongestStreak = %d, want 2", got)
	}
}

func TestLongestStreakEmpty(t *testing.T) {
	if got := LongestStreak(nil); got != 0 {
		t.Errorf("LongestStreak(nil) = %d, want 0", got)
	}
}

func TestPersonalRecordsKeepsHeaviest(t *testing.T) {
	day1 := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)
	results := []models.WorkoutResult{
		{Date: day1, SetResults: []models.SetResult{
			{ExerciseName: "Bench Press", Weight: fptr(80), PerformedReps: iptr(8), WeightUnit: models.Kilograms},
		}},
		{Date: day2, SetResults: []models.SetResult{
			{ExerciseName: "Bench Press", Weight: fptr(100), PerformedReps: iptr(5), WeightUnit: models.Kilograms},
		}},
	}
	records := PersonalRecords(results)
	if len(records) != 1 {
		t.Fatalf("record count = %d, want 1", len(records))
	}
	pr := records[0]
	if pr.Weight != 100 {
		t.Errorf("Bench Press PR = %v, want 100", pr.Weight)
	}
	if pr.Reps == nil || *pr.Reps != 5 {
		t.Errorf("PR reps = %v, want 5", pr.Reps)
	}
	if !pr.Date.Equal(day2) {
		t.Errorf("PR date = %s, want %s", pr.Date, day2)
	}
}

func TestPersonalRecordsTopFiveFirstSeenTieBreak(t *testing.T) {
	date := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	names := []string{"Deadlift", "Squat", "Bench Press", "Row", "Press", "Curl"}
	weights := []float64{180, 140, 100, 100, 60, 30}
	var sets []models.SetResult
	for i, name := range names {
		sets = append(sets, models.SetResult{ExerciseName: name, Weight: fptr(weights[i])})
	}
	records := PersonalRecords([]models.WorkoutResult{{Date: date, SetResults: sets}})
	if len(records) != 5 {
		t.Fatalf("record count = %d, want 5", len(records))
	}
	// Bench Press was seen before Row at the same weight, so it ranks
	// ahead; Curl falls off the top 5.
	wantOrder := []string{"Deadlift", "Squat", "Bench Press", "Row", "Press"}
	for i, want := range wantOrder {
		if records[i].ExerciseName != want {
			t.Errorf("record %d = %s, want %s", i, records[i].ExerciseName, want)
		}
	}
}

func TestByWeekday(t *testing.T) {
	sunday := time.Date(2026, 3, 8, 10, 0, 0, 0, time.UTC)
	results := []models.WorkoutResult{
		resultOn(sunday),
		resultOn(sunday.AddDate(0, 0, 1)), // Monday
		resultOn(sunday.AddDate(0, 0, 8)), // next Monday
	}
	buckets := ByWeekday(results)
	if buckets[0] != 1 {
		t.Errorf("Sunday = %d, want 1", buckets[0])
	}
	if buckets[1] != 2 {
		t.Errorf("Monday = %d, want 2", buckets[1])
	}
}

func TestByWorkoutType(t *testing.T) {
	results := []models.WorkoutResult{
		{EMOMMinutesCompleted: iptr(12)},
		{TabataRoundsCompleted: iptr(8)},
		{CircuitRoundsCompleted: iptr(4)},
		{WODResult: "21:34"},
		{TotalRounds: iptr(5)},
		{},
	}
	counts := ByWorkoutType(results)
	want := map[string]int{"EMOM": 1, "TABATA": 1, "CIRCUIT": 1, "METCON": 2, "STRENGTH": 1}
	for class, n := range want {
		if counts[class] != n {
			t.Errorf("%s = %d, want %d", class, counts[class], n)
		}
	}
}

func TestThisWeek(t *testing.T) {
	// Wednesday 2026-03-11; the week runs Sunday 03-08 through Saturday 03-14.
	now := time.Date(2026, 3, 11, 12, 0, 0, 0, time.UTC)
	results := []models.WorkoutResult{
		resultOn(time.Date(2026, 3, 8, 7, 0, 0, 0, time.UTC)),  // Sunday, in
		resultOn(time.Date(2026, 3, 10, 7, 0, 0, 0, time.UTC)), // Tuesday, in
		resultOn(time.Date(2026, 3, 7, 7, 0, 0, 0, time.UTC)),  // Saturday before, out
		resultOn(time.Date(2026, 3, 15, 7, 0, 0, 0, time.UTC)), // next Sunday, out
	}
	if got := ThisWeek(results, now); got != 2 {
		t.Errorf("ThisWeek = %d, want 2", got)
	}
}
