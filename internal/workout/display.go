package workout

// Info is presentation metadata for a workout type. It never affects
// validation; clients use it for labels, icons, and accent colors.
type Info struct {
	DisplayName string `json:"displayName"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
}

// InfoFor returns display metadata for a workout type. Unknown types
// fall back to the straight-sets entry.
func InfoFor(t Type) Info {
	if info, ok := infoTable[t]; ok {
		return info
	}
	return infoTable[StraightSets]
}

var infoTable = map[Type]Info{
	StraightSets:      {"Straight Sets", "Traditional sets with rest between", "fitness-center", "#007AFF"},
	Supersets:         {"Supersets", "Two exercises performed back-to-back without rest", "swap-vert", "#FF9500"},
	Trisets:           {"Trisets", "Three exercises performed consecutively", "change-history", "#FF9500"},
	GiantSets:         {"Giant Sets", "Four or more exercises performed consecutively", "view-agenda", "#FF9500"},
	DropSets:          {"Drop Sets", "Reduce weight and continue without rest", "trending-down", "#AF52DE"},
	RestPause:         {"Rest-Pause", "Brief rest periods within a set", "pause-circle-outline", "#AF52DE"},
	ClusterSets:       {"Cluster Sets", "Mini-rest periods within sets", "grain", "#AF52DE"},
	Circuit:           {"Circuit Training", "Stations of exercises with timed intervals", "repeat", "#34C759"},
	CircuitReps:       {"Circuit (Rep-Based)", "Circuit based on repetitions", "repeat-one", "#34C759"},
	CircuitTime:       {"Circuit (Time-Based)", "Circuit based on time intervals", "timer", "#34C759"},
	WOD:               {"Workout of the Day", "CrossFit-style workout", "whatshot", "#FF3B30"},
	AMRAP:             {"AMRAP", "As Many Rounds/Reps As Possible", "all-inclusive", "#FF3B30"},
	ForTime:           {"For Time", "Complete workout as fast as possible", "timer", "#FF3B30"},
	EMOM:              {"EMOM", "Every Minute on the Minute", "schedule", "#FF3B30"},
	EMOM2:             {"E2MOM", "Every 2 Minutes on the Minute", "schedule", "#FF3B30"},
	EMOM3:             {"E3MOM", "Every 3 Minutes on the Minute", "schedule", "#FF3B30"},
	Tabata:            {"Tabata", "20 seconds work, 10 seconds rest", "flash-on", "#FF2D55"},
	HIIT:              {"HIIT", "High-Intensity Interval Training", "bolt", "#FF2D55"},
	IntervalTraining:  {"Interval Training", "Work/rest intervals", "av-timer", "#FF2D55"},
	Fartlek:           {"Fartlek", "Speed play with varying intensities", "directions-run", "#5AC8FA"},
	Pyramid:           {"Pyramid Sets", "Increasing then decreasing weight/reps", "signal-cellular-alt", "#007AFF"},
	ReversePyramid:    {"Reverse Pyramid", "Decreasing weight, increasing reps", "south-west", "#007AFF"},
	WaveLoading:       {"Wave Loading", "Undulating loads within session", "waves", "#007AFF"},
	MaxEffort:         {"Max Effort", "Working up to 1-3RM", "military-tech", "#1C1C1E"},
	DynamicEffort:     {"Dynamic Effort", "Speed/explosive work", "speed", "#1C1C1E"},
	MechanicalDropSet: {"Mechanical Drop Set", "Change exercise angle/leverage", "build", "#AF52DE"},
	PreExhaustion:     {"Pre-Exhaustion", "Isolation then compound", "filter-1", "#AF52DE"},
	PostExhaustion:    {"Post-Exhaustion", "Compound then isolation", "filter-2", "#AF52DE"},
	SteadyState:       {"Steady State", "Consistent pace/intensity", "straighten", "#5AC8FA"},
	LISS:              {"LISS", "Low-Intensity Steady State", "directions-walk", "#5AC8FA"},
	TempoRuns:         {"Tempo Runs", "Comfortably hard pace", "directions-run", "#5AC8FA"},
	ComplexTraining:   {"Complex Training", "Heavy lift + explosive movement", "layers", "#FFCC00"},
	ContrastTraining:  {"Contrast Training", "Heavy + light + explosive", "compare-arrows", "#FFCC00"},
	DensityTraining:   {"Density Training", "More work in same time", "compress", "#FFCC00"},
	VolumeTraining:    {"Volume Training", "High volume accumulation", "stacked-bar-chart", "#FFCC00"},
	LadderSets:        {"Ladder Sets", "Ascending/descending rep schemes", "stairs", "#FFCC00"},
	DeathBy:           {"Death By", "Add one rep each minute until failure", "local-fire-department", "#FF3B30"},
	LadderClimb:       {"Ladder Climb", "1, 2, 3, 4... reps", "trending-up", "#FFCC00"},
	ActiveRecovery:    {"Active Recovery", "Low-intensity movement", "self-improvement", "#8E8E93"},
	MobilitySession:   {"Mobility Session", "Stretching and mobility work", "accessibility-new", "#8E8E93"},
	Custom:            {"Custom", "User-defined workout structure", "tune", "#8E8E93"},
}
