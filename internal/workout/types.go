// Package workout defines the closed set of workout methodologies and
// the structural constraints each one places on a block of exercises.
package workout

// Type identifies a training methodology. The set is closed; unknown
// values are treated as StraightSets wherever a Type is looked up.
type Type string

const (
	// Traditional strength
	StraightSets Type = "STRAIGHT_SETS"
	Supersets    Type = "SUPERSETS"
	Trisets      Type = "TRISETS"
	GiantSets    Type = "GIANT_SETS"
	DropSets     Type = "DROP_SETS"
	RestPause    Type = "REST_PAUSE"
	ClusterSets  Type = "CLUSTER_SETS"

	// Circuit training
	Circuit     Type = "CIRCUIT"
	CircuitReps Type = "CIRCUIT_REPS"
	CircuitTime Type = "CIRCUIT_TIME"

	// CrossFit / functional
	WOD     Type = "WOD"
	AMRAP   Type = "AMRAP"
	ForTime Type = "FOR_TIME"
	EMOM    Type = "EMOM"
	EMOM2   Type = "EMOM_2"
	EMOM3   Type = "EMOM_3"
	Tabata  Type = "TABATA"

	// High-intensity intervals
	HIIT             Type = "HIIT"
	IntervalTraining Type = "INTERVAL_TRAINING"
	Fartlek          Type = "FARTLEK"

	// Powerlifting / strength
	Pyramid        Type = "PYRAMID"
	ReversePyramid Type = "REVERSE_PYRAMID"
	WaveLoading    Type = "WAVE_LOADING"
	MaxEffort      Type = "MAX_EFFORT"
	DynamicEffort  Type = "DYNAMIC_EFFORT"

	// Bodybuilding
	MechanicalDropSet Type = "MECHANICAL_DROP_SET"
	PreExhaustion     Type = "PRE_EXHAUSTION"
	PostExhaustion    Type = "POST_EXHAUSTION"

	// Endurance / cardio
	SteadyState Type = "STEADY_STATE"
	LISS        Type = "LISS"
	TempoRuns   Type = "TEMPO_RUNS"

	// Olympic lifting / power
	ComplexTraining  Type = "COMPLEX_TRAINING"
	ContrastTraining Type = "CONTRAST_TRAINING"

	// Specialized protocols
	DensityTraining Type = "DENSITY_TRAINING"
	VolumeTraining  Type = "VOLUME_TRAINING"
	LadderSets      Type = "LADDER_SETS"

	// Time-based challenges
	DeathBy     Type = "DEATH_BY"
	LadderClimb Type = "LADDER_CLIMB"

	// Recovery
	ActiveRecovery  Type = "ACTIVE_RECOVERY"
	MobilitySession Type = "MOBILITY_SESSION"

	Custom Type = "CUSTOM"
)

// All returns every known workout type in declaration order.
func All() []Type {
	return []Type{
		StraightSets, Supersets, Trisets, GiantSets, DropSets, RestPause, ClusterSets,
		Circuit, CircuitReps, CircuitTime,
		WOD, AMRAP, ForTime, EMOM, EMOM2, EMOM3, Tabata,
		HIIT, IntervalTraining, Fartlek,
		Pyramid, ReversePyramid, WaveLoading, MaxEffort, DynamicEffort,
		MechanicalDropSet, PreExhaustion, PostExhaustion,
		SteadyState, LISS, TempoRuns,
		ComplexTraining, ContrastTraining,
		DensityTraining, VolumeTraining, LadderSets,
		DeathBy, LadderClimb,
		ActiveRecovery, MobilitySession,
		Custom,
	}
}

// Known reports whether t is a member of the closed type set.
func Known(t Type) bool {
	_, ok := constraintTable[t]
	return ok
}

// Category groups related types for selection UIs.
type Category struct {
	Name  string
	Types []Type
}

// Categories returns the display grouping of all types.
func Categories() []Category {
	return []Category{
		{"Strength", []Type{StraightSets, Pyramid, ReversePyramid, WaveLoading, MaxEffort, DynamicEffort}},
		{"Supersets", []Type{Supersets, Trisets, GiantSets}},
		{"Circuits", []Type{Circuit, CircuitReps, CircuitTime}},
		{"CrossFit", []Type{WOD, AMRAP, ForTime, EMOM, EMOM2, EMOM3, DeathBy}},
		{"HIIT", []Type{HIIT, Tabata, IntervalTraining}},
		{"Bodybuilding", []Type{DropSets, RestPause, ClusterSets, MechanicalDropSet, PreExhaustion, PostExhaustion}},
		{"Endurance", []Type{SteadyState, LISS, TempoRuns, Fartlek}},
		{"Advanced", []Type{ComplexTraining, ContrastTraining, DensityTraining, VolumeTraining, LadderSets, LadderClimb}},
		{"Recovery", []Type{ActiveRecovery, MobilitySession}},
	}
}

// Category returns the name of the display group containing t, or
// "Other" for types outside every group (currently only Custom).
func (t Type) Category() string {
	for _, c := range Categories() {
		for _, member := range c.Types {
			if member == t {
				return c.Name
			}
		}
	}
	return "Other"
}

// IsTimeBased reports whether the type is driven by a clock rather
// than a fixed set count.
func (t Type) IsTimeBased() bool {
	switch t {
	case Tabata, EMOM, EMOM2, EMOM3, ForTime, AMRAP, CircuitTime, HIIT, IntervalTraining, DeathBy:
		return true
	}
	return false
}

// IsSuperset reports whether the type chains multiple exercises
// back-to-back within one round.
func (t Type) IsSuperset() bool {
	switch t {
	case Supersets, Trisets, GiantSets, Circuit, CircuitReps, CircuitTime:
		return true
	}
	return false
}

// IsDropSet reports whether the type modifies load or rest mid-set.
func (t Type) IsDropSet() bool {
	switch t {
	case DropSets, MechanicalDropSet, RestPause, ClusterSets:
		return true
	}
	return false
}

// IsRoundBased reports whether a live session tracks completed rounds
// for this type.
func (t Type) IsRoundBased() bool {
	switch t {
	case AMRAP, Circuit, CircuitReps, CircuitTime:
		return true
	}
	return false
}

// IsCircuit reports whether this is one of the circuit variants, which
// track rounds on their own counter.
func (t Type) IsCircuit() bool {
	switch t {
	case Circuit, CircuitReps, CircuitTime:
		return true
	}
	return false
}

// IsEMOM reports whether the type tracks completed/failed minutes.
func (t Type) IsEMOM() bool {
	switch t {
	case EMOM, EMOM2, EMOM3:
		return true
	}
	return false
}
