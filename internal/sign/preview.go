package sign

import (
	"time"

	"github.com/storyhour/storysign/internal/domain"
	"github.com/storyhour/storysign/internal/hw"
)

// previewCues is the rehearsal sequence, one cue per stage.
var previewCues = [...]domain.Cue{
	domain.CueFourMinutes,
	domain.CueTwoMinutes,
	domain.CueTimeUp,
	domain.CueTimeUpSlow,
	domain.CueTimeUpFast,
}

// PreviewStepper walks the cue sequence under operator control. Run is
// deliberately blocking: rehearsal monopolizes the sign until the walk
// and its cool-down complete, and there is no way to cancel it early.
// The controller only ever invokes it outside story mode, so a live run
// can never be interrupted by it.
type PreviewStepper struct {
	clock   hw.Clock
	button  hw.InputLine
	panel   *Panel
	display hw.NumericDisplay
	blink   *Oscillator
	timings Timings
}

func NewPreviewStepper(clock hw.Clock, button hw.InputLine, panel *Panel, display hw.NumericDisplay, blink *Oscillator, timings Timings) *PreviewStepper {
	return &PreviewStepper{
		clock:   clock,
		button:  button,
		panel:   panel,
		display: display,
		blink:   blink,
		timings: timings,
	}
}

// Run walks all five stages, clears the panel, and holds for one final
// dwell so an operator still pressing the button cannot instantly
// re-enter a rehearsal.
func (p *PreviewStepper) Run() {
	// Stale blink timing from a previous story run must not leak into
	// the rehearsal.
	p.blink.Deactivate()

	for stage, cue := range previewCues {
		p.runStage(cue, stage == len(previewCues)-1)
	}

	p.blink.Deactivate()
	p.panel.Clear()
	p.hold(p.timings.PreviewDwell)
}

// runStage lights one stage's cue and waits for the operator. Each
// stage starts with a dwell during which the button is not sampled at
// all: that is the debounce gate keeping one physical press from
// skipping several stages. After the dwell, an asserted reading
// advances immediately. The last stage exits on its dwell alone.
func (p *PreviewStepper) runStage(cue domain.Cue, last bool) {
	switch cue {
	case domain.CueTimeUpSlow:
		p.blink.Activate(p.timings.SlowBlinkPeriod, p.clock.Now())
	case domain.CueTimeUpFast:
		p.blink.Activate(p.timings.FastBlinkPeriod, p.clock.Now())
	}

	gate := p.clock.Now().Add(p.timings.PreviewDwell)
	for {
		now := p.clock.Now()
		p.panel.Apply(cue, p.blink.Advance(now))
		p.display.Refresh()

		if !now.Before(gate) {
			if last || p.button.Read() {
				return
			}
		}
		p.clock.Sleep(p.timings.CycleTime)
	}
}

// hold busy-waits for d while keeping the numeric display refreshed.
func (p *PreviewStepper) hold(d time.Duration) {
	until := p.clock.Now().Add(d)
	for p.clock.Now().Before(until) {
		p.display.Refresh()
		p.clock.Sleep(p.timings.CycleTime)
	}
}
