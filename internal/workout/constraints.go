package workout

// Constraints describes the structural rules a block must satisfy for
// a given workout type. MaxExercises == 0 means unbounded.
type Constraints struct {
	MinExercises          int      `json:"minExercises"`
	MaxExercises          int      `json:"maxExercises,omitempty"`
	ExerciseLabel         string   `json:"exerciseLabel"`
	RequiresRounds        bool     `json:"requiresRounds,omitempty"`
	RequiresAMRAPDuration bool     `json:"requiresAmrapDuration,omitempty"`
	RequiresIntervals     bool     `json:"requiresIntervals,omitempty"`
	Description           string   `json:"description"`
	Guidance              []string `json:"guidance"`
}

// Unbounded reports whether the type accepts any number of exercises.
func (c Constraints) Unbounded() bool { return c.MaxExercises == 0 }

// Allows reports whether a block with n exercises may take one more.
func (c Constraints) Allows(n int) bool {
	return c.Unbounded() || n < c.MaxExercises
}

// Satisfied reports whether an exercise count lies within [min, max].
func (c Constraints) Satisfied(n int) bool {
	if n < c.MinExercises {
		return false
	}
	return c.Unbounded() || n <= c.MaxExercises
}

// ConstraintsFor returns the constraint record for a workout type.
// Unknown types fall back to the straight-sets rules; the function is
// total and never fails.
func ConstraintsFor(t Type) Constraints {
	if c, ok := constraintTable[t]; ok {
		return c
	}
	return constraintTable[StraightSets]
}

var constraintTable = map[Type]Constraints{
	StraightSets: {
		MinExercises:  1,
		ExerciseLabel: "exercise",
		Description:   "Complete all sets of one exercise before moving to the next",
		Guidance:      []string{"Add exercises", "Set reps and weight for each exercise", "Configure rest between exercises"},
	},
	Supersets: {
		MinExercises:  2,
		MaxExercises:  2,
		ExerciseLabel: "exercise",
		Description:   "Alternate between 2 exercises with minimal rest",
		Guidance:      []string{"Must have exactly 2 exercises", "Perform back-to-back with minimal rest", "Rest after completing both"},
	},
	Trisets: {
		MinExercises:  3,
		MaxExercises:  3,
		ExerciseLabel: "exercise",
		Description:   "Rotate through 3 exercises consecutively",
		Guidance:      []string{"Must have exactly 3 exercises", "Perform all 3 back-to-back", "Rest after completing the tri-set"},
	},
	GiantSets: {
		MinExercises:  4,
		ExerciseLabel: "exercise",
		Description:   "Perform 4+ exercises consecutively with minimal rest",
		Guidance:      []string{"Minimum 4 exercises required", "Complete all exercises before resting", "Great for muscle endurance"},
	},
	Circuit: {
		MinExercises:   3,
		ExerciseLabel:  "station",
		RequiresRounds: true,
		Description:    "Move through stations for multiple rounds",
		Guidance:       []string{"Add 3+ exercises as stations", "Set total rounds in block config", "Configure rest between stations and after rounds"},
	},
	CircuitReps: {
		MinExercises:   3,
		ExerciseLabel:  "station",
		RequiresRounds: true,
		Description:    "Rep-based circuit training",
		Guidance:       []string{"Add 3+ exercises", "Set rep targets for each exercise", "Complete specified rounds"},
	},
	CircuitTime: {
		MinExercises:      3,
		ExerciseLabel:     "station",
		RequiresRounds:    true,
		RequiresIntervals: true,
		Description:       "Timed circuit with work/rest intervals",
		Guidance:          []string{"Add 3+ exercises", "Set work intervals in block config", "Set rest intervals between stations"},
	},
	AMRAP: {
		MinExercises:          1,
		ExerciseLabel:         "exercise",
		RequiresAMRAPDuration: true,
		Description:           "As Many Rounds As Possible in set time",
		Guidance:              []string{"Set AMRAP duration in block config", "Add exercises with rep targets", "Complete as many rounds as possible"},
	},
	EMOM: {
		MinExercises:   1,
		MaxExercises:   1,
		ExerciseLabel:  "exercise",
		RequiresRounds: true,
		Description:    "Every Minute On the Minute - single exercise",
		Guidance:       []string{"One exercise per block", "Set total minutes in rounds", "Complete reps at start of each minute"},
	},
	EMOM2: {
		MinExercises:   2,
		MaxExercises:   2,
		ExerciseLabel:  "exercise",
		RequiresRounds: true,
		Description:    "EMOM alternating between 2 exercises",
		Guidance:       []string{"Exactly 2 exercises", "Set total minutes in rounds", "Alternate exercises each minute"},
	},
	EMOM3: {
		MinExercises:   3,
		MaxExercises:   3,
		ExerciseLabel:  "exercise",
		RequiresRounds: true,
		Description:    "EMOM rotating through 3 exercises",
		Guidance:       []string{"Exactly 3 exercises", "Set total minutes in rounds", "Rotate through exercises each minute"},
	},
	ForTime: {
		MinExercises:   1,
		ExerciseLabel:  "exercise",
		RequiresRounds: true,
		Description:    "Complete prescribed work as fast as possible",
		Guidance:       []string{"Set total rounds if applicable", "Complete all work as quickly as possible", "Time the entire workout"},
	},
	Tabata: {
		MinExercises:      1,
		ExerciseLabel:     "exercise",
		RequiresIntervals: true,
		Description:       "20s work, 10s rest for 8 rounds (4 min)",
		Guidance:          []string{"Typically 20s work / 10s rest", "Standard is 8 rounds (4 minutes)", "Set work/rest phases in config"},
	},
	Pyramid: {
		MinExercises:  1,
		ExerciseLabel: "exercise",
		Description:   "Increase then decrease reps/weight each set",
		Guidance:      []string{"Start light/high reps", "Increase weight/decrease reps", "Reverse back down the pyramid"},
	},
	ReversePyramid: {
		MinExercises:  1,
		ExerciseLabel: "exercise",
		Description:   "Start heavy, decrease weight/increase reps",
		Guidance:      []string{"Start with heaviest set", "Decrease weight each set", "Can increase reps as weight decreases"},
	},
	DropSets: {
		MinExercises:  1,
		ExerciseLabel: "exercise",
		Description:   "Reduce weight immediately after reaching failure",
		Guidance:      []string{"Perform set to failure", "Immediately drop weight 20-25%", "Continue to failure again"},
	},
	RestPause: {
		MinExercises:  1,
		ExerciseLabel: "exercise",
		Description:   "Short rest periods within a set",
		Guidance:      []string{"Perform reps to near failure", "Rest 10-15 seconds", "Continue for additional reps"},
	},
	ClusterSets: {
		MinExercises:  1,
		ExerciseLabel: "exercise",
		Description:   "Short rests between small rep clusters",
		Guidance:      []string{"Break set into small clusters (2-3 reps)", "Rest 10-20s between clusters", "Maintain heavy weight"},
	},
	WOD: {
		MinExercises:  1,
		ExerciseLabel: "exercise",
		Description:   "CrossFit Workout of the Day",
		Guidance:      []string{"Can combine multiple workout types", "Follow specific WOD programming", "Track time or rounds"},
	},
	HIIT: {
		MinExercises:      1,
		ExerciseLabel:     "exercise",
		RequiresIntervals: true,
		Description:       "High Intensity Interval Training",
		Guidance:          []string{"Set work and rest intervals", "Maximum effort during work phase", "Active recovery during rest"},
	},
	IntervalTraining: {
		MinExercises:      1,
		ExerciseLabel:     "exercise",
		RequiresIntervals: true,
		Description:       "Structured work/rest intervals",
		Guidance:          []string{"Configure work/rest intervals", "Set total rounds", "Maintain consistent effort"},
	},
	SteadyState: {
		MinExercises:  1,
		MaxExercises:  1,
		ExerciseLabel: "exercise",
		Description:   "Maintain consistent pace/intensity",
		Guidance:      []string{"Single exercise (usually cardio)", "Set duration or distance", "Keep steady, sustainable pace"},
	},
	LISS: {
		MinExercises:  1,
		MaxExercises:  1,
		ExerciseLabel: "exercise",
		Description:   "Low Intensity Steady State cardio",
		Guidance:      []string{"Single cardio exercise", "Low intensity (60-70% max HR)", "Extended duration (30-60 min)"},
	},
	TempoRuns: {
		MinExercises:  1,
		MaxExercises:  1,
		ExerciseLabel: "exercise",
		Description:   "Running at comfortably hard pace",
		Guidance:      []string{"Running exercise only", "Pace: 80-90% of max effort", "Duration: 20-40 minutes"},
	},
	Fartlek: {
		MinExercises:  1,
		MaxExercises:  1,
		ExerciseLabel: "exercise",
		Description:   "Speed play - varied pace training",
		Guidance:      []string{"Running exercise", "Alternate fast and slow periods", "Unstructured speed changes"},
	},
	DeathBy: {
		MinExercises:  1,
		MaxExercises:  1,
		ExerciseLabel: "exercise",
		Description:   "Add 1 rep each minute until failure",
		Guidance:      []string{"One exercise only", "Minute 1: 1 rep, Minute 2: 2 reps, etc.", "Continue until you can't finish in the minute"},
	},
	WaveLoading: {
		MinExercises:  1,
		ExerciseLabel: "exercise",
		Description:   "Wavelike pattern of weight/reps",
		Guidance:      []string{"Strength exercise", "Example: 5-3-2, 5-3-2 reps", "Increase weight each wave"},
	},
	ComplexTraining: {
		MinExercises:  2,
		MaxExercises:  2,
		ExerciseLabel: "exercise",
		Description:   "Heavy strength + explosive power movement",
		Guidance:      []string{"Exactly 2 exercises", "First: Heavy strength (e.g., squat)", "Second: Explosive power (e.g., jump squat)"},
	},
	ContrastTraining: {
		MinExercises:  2,
		MaxExercises:  2,
		ExerciseLabel: "exercise",
		Description:   "Alternate heavy and light loads",
		Guidance:      []string{"Exactly 2 exercises", "Same movement pattern", "Alternate heavy and light sets"},
	},
	MechanicalDropSet: {
		MinExercises:  1,
		MaxExercises:  3,
		ExerciseLabel: "variation",
		Description:   "Change exercise angle to continue set",
		Guidance:      []string{"1-3 exercise variations", "Same muscle group, different angles", "Move to easier variation when fatigued"},
	},
	PreExhaustion: {
		MinExercises:  2,
		MaxExercises:  2,
		ExerciseLabel: "exercise",
		Description:   "Isolation then compound movement",
		Guidance:      []string{"Exactly 2 exercises", "First: Isolation exercise", "Second: Compound movement"},
	},
	PostExhaustion: {
		MinExercises:  2,
		MaxExercises:  2,
		ExerciseLabel: "exercise",
		Description:   "Compound then isolation movement",
		Guidance:      []string{"Exactly 2 exercises", "First: Compound movement", "Second: Isolation exercise"},
	},
	LadderSets: {
		MinExercises:  1,
		ExerciseLabel: "exercise",
		Description:   "Progressively increase or decrease reps",
		Guidance:      []string{"Ascending: 1,2,3,4... reps", "Or descending: 10,9,8,7... reps", "Rest between sets"},
	},
	LadderClimb: {
		MinExercises:  2,
		ExerciseLabel: "exercise",
		Description:   "Multiple exercises with changing rep scheme",
		Guidance:      []string{"2+ exercises", "Coordinated rep changes", "Example: Ex1 increases, Ex2 decreases"},
	},
	DensityTraining: {
		MinExercises:          1,
		ExerciseLabel:         "exercise",
		RequiresAMRAPDuration: true,
		Description:           "Maximum volume in set timeframe",
		Guidance:              []string{"Set time limit", "Complete as much work as possible", "Focus on total volume"},
	},
	VolumeTraining: {
		MinExercises:  1,
		ExerciseLabel: "exercise",
		Description:   "High total volume for muscle growth",
		Guidance:      []string{"Multiple sets (8-12+)", "Moderate weight", "Focus on total volume"},
	},
	MaxEffort: {
		MinExercises:  1,
		ExerciseLabel: "exercise",
		Description:   "Maximum weight for low reps (1-3)",
		Guidance:      []string{"Heavy compound movements", "1-3 reps per set", "Long rest periods (3-5 min)"},
	},
	DynamicEffort: {
		MinExercises:  1,
		ExerciseLabel: "exercise",
		Description:   "Explosive speed work with submaximal load",
		Guidance:      []string{"50-60% of 1RM", "Maximum bar speed", "Multiple sets of 2-3 reps"},
	},
	ActiveRecovery: {
		MinExercises:  1,
		ExerciseLabel: "activity",
		Description:   "Light movement to aid recovery",
		Guidance:      []string{"Low intensity movement", "Improve blood flow", "Reduce muscle soreness"},
	},
	MobilitySession: {
		MinExercises:  1,
		ExerciseLabel: "movement",
		Description:   "Flexibility and mobility work",
		Guidance:      []string{"Stretching and mobility drills", "Hold positions 30-60s", "Focus on range of motion"},
	},
	Custom: {
		MinExercises:  1,
		ExerciseLabel: "exercise",
		Description:   "Custom workout type",
		Guidance:      []string{"Design your own workout structure", "Add exercises as needed", "Configure rest periods"},
	},
}
