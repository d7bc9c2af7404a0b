package sign

import (
	"context"
	"time"

	"github.com/storyhour/storysign/internal/domain"
	"github.com/storyhour/storysign/internal/hw"
)

// Inputs are the two physical input lines of the sign.
type Inputs struct {
	ModeSwitch    hw.InputLine
	AdvanceButton hw.InputLine
}

// RunRecorder receives completed sessions for logging. Recording is
// best-effort from the controller's point of view: implementations must
// not block the control loop or surface errors into it.
type RunRecorder interface {
	RecordStory(started, ended time.Time, seconds int, peak domain.Cue)
	RecordPreview(started, ended time.Time)
}

// Controller is the top-level mode arbiter. Each cycle it samples the
// two input lines, routes control to the story timer or the preview
// stepper, and mirrors elapsed time onto the numeric display. It runs
// on a single goroutine; the preview stepper is the only place where a
// cycle blocks.
type Controller struct {
	clock    hw.Clock
	inputs   Inputs
	panel    *Panel
	display  hw.NumericDisplay
	timings  Timings
	recorder RunRecorder

	story   *StoryTimer
	blink   *Oscillator
	preview *PreviewStepper

	mode         domain.Mode
	storyStarted time.Time
}

// NewController wires the sign's components. recorder may be nil.
func NewController(clock hw.Clock, inputs Inputs, panel *Panel, display hw.NumericDisplay, timings Timings, recorder RunRecorder) *Controller {
	blink := &Oscillator{}
	return &Controller{
		clock:    clock,
		inputs:   inputs,
		panel:    panel,
		display:  display,
		timings:  timings,
		recorder: recorder,
		story:    NewStoryTimer(timings),
		blink:    blink,
		preview:  NewPreviewStepper(clock, inputs.AdvanceButton, panel, display, blink, timings),
		mode:     domain.ModeIdle,
	}
}

// Mode returns the current operating mode.
func (c *Controller) Mode() domain.Mode { return c.mode }

// Cue returns the cue currently driving the panel. Outside story mode
// the panel is either cleared or owned by the preview stepper.
func (c *Controller) Cue() domain.Cue {
	if c.mode == domain.ModeStory {
		return c.story.Cue()
	}
	return domain.CueNone
}

// Run executes control cycles until ctx is done. A preview in progress
// always completes; cancellation is only observed between cycles.
func (c *Controller) Run(ctx context.Context) {
	for ctx.Err() == nil {
		c.Step()
		c.clock.Sleep(c.timings.CycleTime)
	}
}

// Step executes one control cycle.
func (c *Controller) Step() {
	now := c.clock.Now()

	if c.inputs.ModeSwitch.Read() {
		if c.mode != domain.ModeStory {
			c.enterStory(now)
		}
		c.story.Tick(c.clock.Now())
		c.drive(c.story.Cue())
	} else {
		if c.mode == domain.ModeStory {
			c.exitStory(now)
		}
		c.mode = domain.ModeIdle
		// Idle resets unconditionally every cycle, not just on the
		// transition edge. The story clock is never paused, only reset.
		c.story.Reset(now)
		c.blink.Deactivate()
		c.panel.Clear()
	}

	// Story mode masks the button entirely: no rehearsal mid-story.
	if c.mode != domain.ModeStory && c.inputs.AdvanceButton.Read() {
		c.runPreview()
	}

	c.display.SetValue(c.story.DisplayValue(), 2)
	c.display.Refresh()
}

// enterStory starts a fresh run: elapsed time zeroed and every
// indicator line cleared before counting begins.
func (c *Controller) enterStory(now time.Time) {
	c.mode = domain.ModeStory
	c.storyStarted = now
	c.story.Reset(now)
	c.blink.Deactivate()
	c.panel.Clear()
}

func (c *Controller) exitStory(now time.Time) {
	if c.recorder != nil {
		c.recorder.RecordStory(c.storyStarted, now, c.story.ElapsedSeconds(), c.story.Peak())
	}
}

// drive translates the active cue into blink activity and line state.
func (c *Controller) drive(cue domain.Cue) {
	now := c.clock.Now()
	switch cue {
	case domain.CueTimeUpSlow:
		c.blink.Activate(c.timings.SlowBlinkPeriod, now)
	case domain.CueTimeUpFast:
		c.blink.Activate(c.timings.FastBlinkPeriod, now)
	default:
		c.blink.Deactivate()
	}
	c.panel.Apply(cue, c.blink.Advance(now))
}

func (c *Controller) runPreview() {
	started := c.clock.Now()
	c.mode = domain.ModePreview
	c.preview.Run()
	c.mode = domain.ModeIdle
	if c.recorder != nil {
		c.recorder.RecordPreview(started, c.clock.Now())
	}
}
