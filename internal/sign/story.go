package sign

import (
	"time"

	"github.com/storyhour/storysign/internal/domain"
)

// StoryTimer is the free-running elapsed-time counter for a live story
// run, and the evaluator that turns elapsed time into cues.
//
// Ticking is drift-free: each elapsed second advances the next-tick
// reference by exactly one TickPeriod instead of resampling the clock,
// so a ten-minute run drifts by at most one control cycle. While the
// sign is not in story mode the controller resets the timer every
// cycle, which keeps the reference pinned to "now" and prevents a
// backlog of ticks from accumulating across a pause.
type StoryTimer struct {
	timings Timings

	minutes int
	seconds int
	next    time.Time

	cue  domain.Cue
	rank int
	peak domain.Cue
}

func NewStoryTimer(timings Timings) *StoryTimer {
	t := &StoryTimer{timings: timings}
	t.Reset(time.Time{})
	return t
}

// Reset zeroes elapsed time, clears the cue progression for a fresh
// run, and pins the tick reference one period past now.
func (t *StoryTimer) Reset(now time.Time) {
	t.minutes = 0
	t.seconds = 0
	t.next = now.Add(t.timings.TickPeriod)
	t.cue = domain.CueNone
	t.rank = 0
	t.peak = domain.CueNone
}

// Tick advances elapsed time for every full period that has passed
// since the last tick and re-evaluates the cue after each second.
func (t *StoryTimer) Tick(now time.Time) {
	for !now.Before(t.next) {
		t.next = t.next.Add(t.timings.TickPeriod)
		t.seconds++
		if t.seconds == 60 {
			t.seconds = 0
			t.minutes++
		}
		t.evaluate()
	}
}

// evaluate applies the cue threshold table. Elapsed values outside every
// window leave the previous cue in place; it holds until the next
// threshold supersedes it.
func (t *StoryTimer) evaluate() {
	cfg := t.timings
	switch {
	case t.minutes >= cfg.FastBlinkAt:
		t.setCue(domain.CueTimeUpFast)
	case t.minutes == cfg.TimeUpAt && t.seconds >= cfg.SlowBlinkStartSec:
		t.setCue(domain.CueTimeUpSlow)
	case t.minutes == cfg.TimeUpAt:
		t.setCue(domain.CueTimeUp)
	case t.minutes == cfg.TwoMinuteCueAt && t.seconds < cfg.DisplayWindowSec:
		t.setCue(domain.CueTwoMinutes)
	case t.minutes == cfg.TwoMinuteCueAt:
		t.setCue(domain.CueNone)
	case t.minutes == cfg.FourMinuteCueAt && t.seconds < cfg.DisplayWindowSec:
		t.setCue(domain.CueFourMinutes)
	case t.minutes == cfg.FourMinuteCueAt:
		t.setCue(domain.CueNone)
	}
}

// setCue applies one-way progression for the time-up family: once the
// run has reached steady time-up, the cue never moves backward, and in
// particular fast blink persists until the run ends.
func (t *StoryTimer) setCue(c domain.Cue) {
	if t.rank >= domain.CueTimeUp.Progression() && c.Progression() < t.rank {
		return
	}
	t.cue = c
	if c.Progression() > t.rank {
		t.rank = c.Progression()
		t.peak = c
	}
}

// Minutes returns elapsed whole minutes.
func (t *StoryTimer) Minutes() int { return t.minutes }

// Seconds returns elapsed seconds within the current minute.
func (t *StoryTimer) Seconds() int { return t.seconds }

// ElapsedSeconds returns total elapsed seconds.
func (t *StoryTimer) ElapsedSeconds() int { return t.minutes*60 + t.seconds }

// Cue returns the currently active cue.
func (t *StoryTimer) Cue() domain.Cue { return t.cue }

// Peak returns the furthest cue reached in this run.
func (t *StoryTimer) Peak() domain.Cue { return t.peak }

// DisplayValue packs elapsed time for the numeric readout: MM.SS as
// minutes*100 + seconds with two decimal places.
func (t *StoryTimer) DisplayValue() int { return t.minutes*100 + t.seconds }
