// Package sign implements the stage-timer sign: a dual-mode state
// machine that tracks elapsed story time, fires timed cue indicators,
// and lets an operator rehearse the same cue sequence by hand.
package sign

import "time"

// Timings collects the sign's compiled-in intervals and cue marks.
// Production always uses DefaultTimings; the struct exists so tests can
// compress time.
type Timings struct {
	// CycleTime paces the control loop and the preview stage loop.
	CycleTime time.Duration

	// TickPeriod is the story clock granularity. One tick advances
	// elapsed time by one displayed second.
	TickPeriod time.Duration

	// DisplayWindowSec is how many seconds into its minute a
	// time-remaining cue stays lit before it is cleared.
	DisplayWindowSec int

	// SlowBlinkStartSec is the second within the time-up minute at
	// which the steady indicator switches to slow blinking.
	SlowBlinkStartSec int

	// PreviewDwell is the minimum time a preview stage holds before the
	// advance button is sampled again, and the length of the trailing
	// cool-down.
	PreviewDwell time.Duration

	SlowBlinkPeriod time.Duration
	FastBlinkPeriod time.Duration

	// Cue marks, in elapsed minutes.
	FourMinuteCueAt int
	TwoMinuteCueAt  int
	TimeUpAt        int
	FastBlinkAt     int
}

// DefaultTimings returns the sign's production intervals: a ten-minute
// story with warnings at four and two minutes remaining.
func DefaultTimings() Timings {
	return Timings{
		CycleTime:         5 * time.Millisecond,
		TickPeriod:        time.Second,
		DisplayWindowSec:  20,
		SlowBlinkStartSec: 30,
		PreviewDwell:      3 * time.Second,
		SlowBlinkPeriod:   500 * time.Millisecond,
		FastBlinkPeriod:   200 * time.Millisecond,
		FourMinuteCueAt:   6,
		TwoMinuteCueAt:    8,
		TimeUpAt:          10,
		FastBlinkAt:       11,
	}
}
