package sign

import (
	"github.com/storyhour/storysign/internal/domain"
	"github.com/storyhour/storysign/internal/hw"
)

// Panel maps a logical cue plus blink phase onto the four indicator
// lines. Apply is idempotent: every call re-asserts the complete line
// set for the given cue, so a glitched line is corrected on the next
// cycle rather than lingering until an edge-triggered clear.
type Panel struct {
	fourMin hw.OutputLine
	twoMin  hw.OutputLine
	timeUp  hw.OutputLine
	power   hw.OutputLine
}

func NewPanel(fourMin, twoMin, timeUp, power hw.OutputLine) *Panel {
	return &Panel{fourMin: fourMin, twoMin: twoMin, timeUp: timeUp, power: power}
}

// Apply drives the lines for cue. Steady cues assert their line
// unconditionally; blinking cues assert only while phase is on. The
// shared power line follows the OR of the three cue lines: it gates the
// display lighting whenever anything at all is lit.
func (p *Panel) Apply(cue domain.Cue, phase bool) {
	fourMin := cue == domain.CueFourMinutes
	twoMin := cue == domain.CueTwoMinutes

	timeUp := false
	switch cue {
	case domain.CueTimeUp:
		timeUp = true
	case domain.CueTimeUpSlow, domain.CueTimeUpFast:
		timeUp = phase
	}

	p.fourMin.Set(fourMin)
	p.twoMin.Set(twoMin)
	p.timeUp.Set(timeUp)
	p.power.Set(fourMin || twoMin || timeUp)
}

// Clear deasserts every indicator line.
func (p *Panel) Clear() {
	p.Apply(domain.CueNone, false)
}
