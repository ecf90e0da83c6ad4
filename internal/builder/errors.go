package builder

import (
	"errors"
	"fmt"
	"strings"

	"github.com/claude/repforge/internal/workout"
)

// ErrLastSession is returned when deleting the only remaining session;
// a program always retains at least one.
var ErrLastSession = errors.New("program must have at least one session")

// ConstraintError reports that adding an exercise would exceed the
// workout type's limit. The block is left unchanged.
type ConstraintError struct {
	WorkoutType workout.Type
	Min         int
	Max         int
	Label       string
}

func (e *ConstraintError) Error() string {
	info := workout.InfoFor(e.WorkoutType)
	plural := ""
	if e.Max != 1 {
		plural = "s"
	}
	// "exactly" only fits fixed-count types; ranged ones like a
	// mechanical drop set hit the cap, not an exact count.
	if e.Min == e.Max {
		return fmt.Sprintf("%s requires exactly %d %s%s", info.DisplayName, e.Max, e.Label, plural)
	}
	return fmt.Sprintf("%s allows at most %d %s%s", info.DisplayName, e.Max, e.Label, plural)
}

// ValidationError is a single save-time structural problem.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidationErrors is the full set of problems found at save time.
// A save either applies completely or reports all of these; there is
// no partial save.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, v := range e {
		msgs[i] = v.Error()
	}
	return "invalid program: " + strings.Join(msgs, "; ")
}
