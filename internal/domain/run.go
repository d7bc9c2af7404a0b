package domain

import "time"

// Run is one logged sign session: a live story run from switch-on to
// switch-off, or a completed preview walk. Seconds and PeakCue are only
// meaningful for story runs.
type Run struct {
	ID        string
	Kind      RunKind
	StartedAt time.Time
	EndedAt   time.Time
	Seconds   int
	PeakCue   Cue
	CreatedAt time.Time
}

// Elapsed returns the story clock reading at the moment the switch was
// released.
func (r *Run) Elapsed() time.Duration {
	return time.Duration(r.Seconds) * time.Second
}
