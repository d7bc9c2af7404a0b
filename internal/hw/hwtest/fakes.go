// Package hwtest provides deterministic fakes for the hw interfaces.
// The clock only moves when the code under test sleeps or the test
// advances it, so timing assertions are exact.
package hwtest

import (
	"time"

	"github.com/storyhour/storysign/internal/hw"
)

// Clock is a manual test clock. Sleep advances it by the requested
// duration, so blocking loops written against hw.Clock run instantly.
type Clock struct {
	now time.Time
}

// NewClock creates a clock starting at a fixed, arbitrary instant.
func NewClock() *Clock {
	return &Clock{now: time.Date(2025, 3, 1, 19, 30, 0, 0, time.UTC)}
}

func (c *Clock) Now() time.Time        { return c.now }
func (c *Clock) Sleep(d time.Duration) { c.now = c.now.Add(d) }

// Advance moves the clock forward without a sleep.
func (c *Clock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// Since reports how far the clock has moved past the given instant.
func (c *Clock) Since(t time.Time) time.Duration { return c.now.Sub(t) }

// Switch is a latching input line.
type Switch struct {
	Asserted bool
}

func (s *Switch) Read() bool { return s.Asserted }

// Button is an input line scripted against the test clock: it reads
// asserted whenever the clock falls inside one of its press windows.
type Button struct {
	Clock   *Clock
	presses []window
}

type window struct {
	from, until time.Time
}

func NewButton(clock *Clock) *Button {
	return &Button{Clock: clock}
}

// PressBetween schedules an assertion window relative to the clock's
// position when the test set it up.
func (b *Button) PressBetween(from, until time.Duration) {
	base := b.Clock.Now()
	b.presses = append(b.presses, window{base.Add(from), base.Add(until)})
}

// PressAt schedules a short press starting at the given offset.
func (b *Button) PressAt(at time.Duration) {
	b.PressBetween(at, at+50*time.Millisecond)
}

func (b *Button) Read() bool {
	now := b.Clock.Now()
	for _, w := range b.presses {
		if !now.Before(w.from) && now.Before(w.until) {
			return true
		}
	}
	return false
}

// Line is an output line that records every level change with the test
// clock's timestamp.
type Line struct {
	Clock *Clock
	On    bool

	Changes []Change
}

// Change is one recorded output transition.
type Change struct {
	At time.Time
	On bool
}

func NewLine(clock *Clock) *Line {
	return &Line{Clock: clock}
}

func (l *Line) Set(on bool) {
	if on == l.On {
		return
	}
	l.On = on
	l.Changes = append(l.Changes, Change{At: l.Clock.Now(), On: on})
}

// Display records the last packed value written and counts refreshes.
type Display struct {
	Value         int
	DecimalPlaces int
	Refreshes     int
}

func (d *Display) SetValue(value, decimalPlaces int) {
	d.Value = value
	d.DecimalPlaces = decimalPlaces
}

func (d *Display) Refresh() { d.Refreshes++ }

var _ hw.Clock = (*Clock)(nil)
var _ hw.InputLine = (*Switch)(nil)
var _ hw.InputLine = (*Button)(nil)
var _ hw.OutputLine = (*Line)(nil)
var _ hw.NumericDisplay = (*Display)(nil)
