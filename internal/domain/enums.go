package domain

// Mode is the top-level operating mode of the sign. Exactly one is active
// at a time; Idle is the default and the safe state after any reset.
type Mode string

const (
	ModeIdle    Mode = "idle"
	ModeStory   Mode = "story"
	ModePreview Mode = "preview"
)

// Cue is a named display state of the sign. Cues form an ordered
// progression within a story run; at most one is active at a time.
type Cue string

const (
	CueNone        Cue = "none"
	CueFourMinutes Cue = "four_minutes"
	CueTwoMinutes  Cue = "two_minutes"
	CueTimeUp      Cue = "time_up"
	CueTimeUpSlow  Cue = "time_up_slow"
	CueTimeUpFast  Cue = "time_up_fast"
)

// ValidCues is the canonical set of accepted cue strings.
var ValidCues = map[string]bool{
	"none": true, "four_minutes": true, "two_minutes": true,
	"time_up": true, "time_up_slow": true, "time_up_fast": true,
}

// Progression ranks cues by how far into a story run they occur.
// The rank only ever moves forward within a single run.
func (c Cue) Progression() int {
	switch c {
	case CueFourMinutes:
		return 1
	case CueTwoMinutes:
		return 2
	case CueTimeUp:
		return 3
	case CueTimeUpSlow:
		return 4
	case CueTimeUpFast:
		return 5
	default:
		return 0
	}
}

// Label returns the operator-facing name of a cue.
func (c Cue) Label() string {
	switch c {
	case CueFourMinutes:
		return "4 minutes"
	case CueTwoMinutes:
		return "2 minutes"
	case CueTimeUp:
		return "time's up"
	case CueTimeUpSlow:
		return "time's up (slow blink)"
	case CueTimeUpFast:
		return "time's up (fast blink)"
	default:
		return "clear"
	}
}

// RunKind distinguishes logged sessions: live story runs vs. operator
// rehearsals stepped through in preview mode.
type RunKind string

const (
	RunStory   RunKind = "story"
	RunPreview RunKind = "preview"
)
