package sign

import "time"

// Oscillator is the shared blink primitive. It toggles its phase every
// period, advancing the reference timestamp by exact period increments
// rather than resampling the clock, so long blinking runs accumulate no
// drift. Both the story timer and the preview stepper drive their
// blinking cues through one Oscillator.
type Oscillator struct {
	phase      bool
	lastToggle time.Time
	period     time.Duration
}

// Activate starts blinking at the given period, phase on. Re-activating
// with the period already in effect is a no-op so steady-state calls
// each cycle do not reset the phase.
func (o *Oscillator) Activate(period time.Duration, now time.Time) {
	if o.period == period {
		return
	}
	o.period = period
	o.phase = true
	o.lastToggle = now
}

// Deactivate stops blinking and discards the accumulated toggle
// reference, so a later activation starts fresh.
func (o *Oscillator) Deactivate() {
	o.period = 0
	o.phase = false
	o.lastToggle = time.Time{}
}

// Active reports whether a blink period is in effect.
func (o *Oscillator) Active() bool { return o.period > 0 }

// Advance catches the oscillator up to now and returns the current
// phase. With no active period the phase is always on, which lets
// callers pass the result to the output mapper unconditionally.
func (o *Oscillator) Advance(now time.Time) bool {
	if o.period <= 0 {
		return true
	}
	for now.Sub(o.lastToggle) >= o.period {
		o.lastToggle = o.lastToggle.Add(o.period)
		o.phase = !o.phase
	}
	return o.phase
}
