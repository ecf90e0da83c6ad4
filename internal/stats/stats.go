// Package stats aggregates historical workout results into training
// metrics. All functions are pure: no mutation of their inputs, no
// I/O, no clock access beyond the explicit now parameter.
package stats

import (
	"sort"
	"time"

	"github.com/claude/repforge/internal/models"
)

// TotalVolume sums total volume load across results, skipping results
// that never had it computed.
func TotalVolume(results []models.WorkoutResult) float64 {
	var total float64
	for _, r := range results {
		if r.TotalVolumeLoad != nil {
			total += *r.TotalVolumeLoad
		}
	}
	return total
}

// TotalReps sums total reps across results.
func TotalReps(results []models.WorkoutResult) int {
	var total int
	for _, r := range results {
		if r.TotalReps != nil {
			total += *r.TotalReps
		}
	}
	return total
}

// TotalDuration sums total workout time across results.
func TotalDuration(results []models.WorkoutResult) time.Duration {
	var total int
	for _, r := range results {
		if r.TotalDurationSeconds != nil {
			total += *r.TotalDurationSeconds
		}
	}
	return time.Duration(total) * time.Second
}

// AverageQuality is the mean workout quality over results that carry a
// rating, or 0 when none do.
func AverageQuality(results []models.WorkoutResult) float64 {
	var sum, n int
	for _, r := range results {
		if r.WorkoutQuality != nil {
			sum += *r.WorkoutQuality
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

// day truncates to calendar day, dropping the time of day and keeping
// the timestamp's own location. Streaks are day-granular and
// timezone-naive.
func day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// distinctDaysDesc returns the unique workout days, newest first.
func distinctDaysDesc(results []models.WorkoutResult) []time.Time {
	seen := make(map[time.Time]bool, len(results))
	var days []time.Time
	for _, r := range results {
		d := day(r.Date)
		if !seen[d] {
			seen[d] = true
			days = append(days, d)
		}
	}
	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })
	return days
}

func daysBetween(later, earlier time.Time) int {
	return int(later.Sub(earlier).Hours() / 24)
}

// CurrentStreak counts consecutive training days ending today or
// yesterday. Starting from now's day, it walks the distinct workout
// days backward; each day within one day of the cursor extends the
// streak and moves the cursor onto it, and the first larger gap stops
// the count.
func CurrentStreak(results []models.WorkoutResult, now time.Time) int {
	cursor := day(now)
	streak := 0
	for _, d := range distinctDaysDesc(results) {
		if daysBetween(cursor, d) > 1 {
			break
		}
		streak++
		cursor = d
	}
	return streak
}

// LongestStreak is the longest run of consecutive training days
// anywhere in the history.
func LongestStreak(results []models.WorkoutResult) int {
	days := distinctDaysDesc(results)
	if len(days) == 0 {
		return 0
	}
	longest, run := 1, 1
	for i := 1; i < len(days); i++ {
		if daysBetween(days[i-1], days[i]) == 1 {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}

// PersonalRecord is the heaviest set ever logged for one exercise.
type PersonalRecord struct {
	ExerciseName string            `json:"exerciseName"`
	Weight       float64           `json:"weight"`
	WeightUnit   models.WeightUnit `json:"weightUnit,omitempty"`
	Reps         *int              `json:"reps,omitempty"`
	Date         time.Time         `json:"date"`
}

// PersonalRecords returns the top 5 heaviest lifts, one per exercise.
// For each exercise the single heaviest-weight set wins, ties broken
// by whichever was seen first; the final list is ordered by weight
// descending with the same first-seen tie break.
func PersonalRecords(results []models.WorkoutResult) []PersonalRecord {
	best := make(map[string]PersonalRecord)
	var order []string
	for _, r := range results {
		for _, s := range r.SetResults {
			if s.Weight == nil || s.ExerciseName == "" {
				continue
			}
			cur, ok := best[s.ExerciseName]
			if !ok {
				order = append(order, s.ExerciseName)
			}
			if !ok || *s.Weight > cur.Weight {
				best[s.ExerciseName] = PersonalRecord{
					ExerciseName: s.ExerciseName,
					Weight:       *s.Weight,
					WeightUnit:   s.WeightUnit,
					Reps:         s.PerformedReps,
					Date:         r.Date,
				}
			}
		}
	}

	records := make([]PersonalRecord, 0, len(order))
	for _, name := range order {
		records = append(records, best[name])
	}
	sort.SliceStable(records, func(i, j int) bool { return records[i].Weight > records[j].Weight })
	if len(records) > 5 {
		records = records[:5]
	}
	return records
}

// ByWeekday buckets workout counts by weekday, index 0 being Sunday.
func ByWeekday(results []models.WorkoutResult) [7]int {
	var buckets [7]int
	for _, r := range results {
		buckets[int(r.Date.Weekday())]++
	}
	return buckets
}

// ByWorkoutType classifies each result by its type-specific counters
// and returns counts per class. EMOM minute counters mark an EMOM
// session, Tabata and circuit round counters their formats, a WOD
// score or total rounds a metcon, everything else plain strength work.
func ByWorkoutType(results []models.WorkoutResult) map[string]int {
	counts := make(map[string]int)
	for _, r := range results {
		counts[classify(r)]++
	}
	return counts
}

func classify(r models.WorkoutResult) string {
	switch {
	case positive(r.EMOMMinutesCompleted) || positive(r.EMOMFailedMinutes):
		return "EMOM"
	case positive(r.TabataRoundsCompleted):
		return "TABATA"
	case positive(r.CircuitRoundsCompleted):
		return "CIRCUIT"
	case r.WODResult != "" || positive(r.TotalRounds):
		return "METCON"
	}
	return "STRENGTH"
}

func positive(n *int) bool { return n != nil && *n > 0 }

// ThisWeek counts results dated within the calendar week containing
// now, weeks starting on Sunday.
func ThisWeek(results []models.WorkoutResult, now time.Time) int {
	start := day(now).AddDate(0, 0, -int(now.Weekday()))
	end := start.AddDate(0, 0, 7)
	count := 0
	for _, r := range results {
		d := day(r.Date)
		if !d.Before(start) && d.Before(end) {
			count++
		}
	}
	return count
}
