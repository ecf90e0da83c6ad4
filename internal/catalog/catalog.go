// Package catalog holds the built-in exercise library used to seed a
// fresh database.
package catalog

import "github.com/claude/repforge/internal/models"

// Default returns the built-in exercise catalog. IDs are assigned at
// insert time; seeding is idempotent on the exercise name.
func Default() []models.Exercise {
	return []models.Exercise{
		{Name: "Back Squat", Category: "Lower Body", PrimaryMuscle: "Quadriceps", SecondaryMuscles: []string{"Glutes", "Hamstrings", "Core"}, Equipment: "Barbell"},
		{Name: "Front Squat", Category: "Lower Body", PrimaryMuscle: "Quadriceps", SecondaryMuscles: []string{"Glutes", "Core"}, Equipment: "Barbell"},
		{Name: "Deadlift", Category: "Lower Body", PrimaryMuscle: "Hamstrings", SecondaryMuscles: []string{"Glutes", "Lower Back", "Traps"}, Equipment: "Barbell"},
		{Name: "Romanian Deadlift", Category: "Lower Body", PrimaryMuscle: "Hamstrings", SecondaryMuscles: []string{"Glutes", "Lower Back"}, Equipment: "Barbell"},
		{Name: "Bulgarian Split Squat", Category: "Lower Body", PrimaryMuscle: "Quadriceps", SecondaryMuscles: []string{"Glutes"}, Equipment: "Dumbbell"},
		{Name: "Leg Press", Category: "Lower Body", PrimaryMuscle: "Quadriceps", SecondaryMuscles: []string{"Glutes"}, Equipment: "Machine"},
		{Name: "Walking Lunge", Category: "Lower Body", PrimaryMuscle: "Quadriceps", SecondaryMuscles: []string{"Glutes", "Hamstrings"}, Equipment: "Bodyweight"},
		{Name: "Hip Thrust", Category: "Lower Body", PrimaryMuscle: "Glutes", SecondaryMuscles: []string{"Hamstrings"}, Equipment: "Barbell"},
		{Name: "Calf Raise", Category: "Lower Body", PrimaryMuscle: "Calves", Equipment: "Machine"},

		{Name: "Bench Press", Category: "Upper Body Push", PrimaryMuscle: "Chest", SecondaryMuscles: []string{"Triceps", "Front Delts"}, Equipment: "Barbell"},
		{Name: "Incline Dumbbell Press", Category: "Upper Body Push", PrimaryMuscle: "Upper Chest", SecondaryMuscles: []string{"Triceps", "Front Delts"}, Equipment: "Dumbbell"},
		{Name: "Overhead Press", Category: "Upper Body Push", PrimaryMuscle: "Shoulders", SecondaryMuscles: []string{"Triceps", "Core"}, Equipment: "Barbell"},
		{Name: "Dip", Category: "Upper Body Push", PrimaryMuscle: "Triceps", SecondaryMuscles: []string{"Chest", "Front Delts"}, Equipment: "Bodyweight"},
		{Name: "Lateral Raise", Category: "Upper Body Push", PrimaryMuscle: "Side Delts", Equipment: "Dumbbell"},
		{Name: "Push-Up", Category: "Upper Body Push", PrimaryMuscle: "Chest", SecondaryMuscles: []string{"Triceps", "Core"}, Equipment: "Bodyweight"},

		{Name: "Pull-Up", Category: "Upper Body Pull", PrimaryMuscle: "Lats", SecondaryMuscles: []string{"Biceps", "Mid Back"}, Equipment: "Bodyweight"},
		{Name: "Bent Row", Category: "Upper Body Pull", PrimaryMuscle: "Mid Back", SecondaryMuscles: []string{"Lats", "Biceps"}, Equipment: "Barbell"},
		{Name: "Lat Pulldown", Category: "Upper Body Pull", PrimaryMuscle: "Lats", SecondaryMuscles: []string{"Biceps"}, Equipment: "Machine"},
		{Name: "Seated Cable Row", Category: "Upper Body Pull", PrimaryMuscle: "Mid Back", SecondaryMuscles: []string{"Lats", "Biceps"}, Equipment: "Cable"},
		{Name: "Face Pull", Category: "Upper Body Pull", PrimaryMuscle: "Rear Delts", SecondaryMuscles: []string{"Traps"}, Equipment: "Cable"},
		{Name: "Barbell Curl", Category: "Upper Body Pull", PrimaryMuscle: "Biceps", Equipment: "Barbell"},

		{Name: "Clean and Jerk", Category: "Olympic", PrimaryMuscle: "Full Body", Equipment: "Barbell"},
		{Name: "Snatch", Category: "Olympic", PrimaryMuscle: "Full Body", Equipment: "Barbell"},
		{Name: "Power Clean", Category: "Olympic", PrimaryMuscle: "Full Body", SecondaryMuscles: []string{"Traps", "Glutes"}, Equipment: "Barbell"},
		{Name: "Kettlebell Swing", Category: "Conditioning", PrimaryMuscle: "Glutes", SecondaryMuscles: []string{"Hamstrings", "Core"}, Equipment: "Kettlebell"},
		{Name: "Thruster", Category: "Conditioning", PrimaryMuscle: "Full Body", Equipment: "Barbell"},
		{Name: "Wall Ball", Category: "Conditioning", PrimaryMuscle: "Full Body", Equipment: "Medicine Ball"},
		{Name: "Burpee", Category: "Conditioning", PrimaryMuscle: "Full Body", Equipment: "Bodyweight"},
		{Name: "Box Jump", Category: "Conditioning", PrimaryMuscle: "Quadriceps", SecondaryMuscles: []string{"Glutes", "Calves"}, Equipment: "Box"},
		{Name: "Rowing Erg", Category: "Cardio", PrimaryMuscle: "Full Body", Equipment: "Machine"},
		{Name: "Assault Bike", Category: "Cardio", PrimaryMuscle: "Full Body", Equipment: "Machine"},
		{Name: "Ski Erg", Category: "Cardio", PrimaryMuscle: "Full Body", Equipment: "Machine"},
		{Name: "Plank", Category: "Core", PrimaryMuscle: "Core", Equipment: "Bodyweight"},
		{Name: "Hanging Leg Raise", Category: "Core", PrimaryMuscle: "Core", SecondaryMuscles: []string{"Hip Flexors"}, Equipment: "Bodyweight"},
	}
}
