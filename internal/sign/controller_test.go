package sign

import (
	"testing"
	"time"

	"github.com/storyhour/storysign/internal/domain"
	"github.com/storyhour/storysign/internal/hw/hwtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorderSpy struct {
	storySeconds []int
	storyPeaks   []domain.Cue
	previews     int
}

func (r *recorderSpy) RecordStory(started, ended time.Time, seconds int, peak domain.Cue) {
	r.storySeconds = append(r.storySeconds, seconds)
	r.storyPeaks = append(r.storyPeaks, peak)
}

func (r *recorderSpy) RecordPreview(started, ended time.Time) {
	r.previews++
}

type controllerFixture struct {
	clock    *hwtest.Clock
	modeSw   *hwtest.Switch
	button   *hwtest.Button
	fourMin  *hwtest.Line
	twoMin   *hwtest.Line
	timeUp   *hwtest.Line
	power    *hwtest.Line
	display  *hwtest.Display
	recorder *recorderSpy
	ctrl     *Controller
	start    time.Time
}

func newControllerFixture() *controllerFixture {
	clock := hwtest.NewClock()
	f := &controllerFixture{
		clock:    clock,
		modeSw:   &hwtest.Switch{},
		button:   hwtest.NewButton(clock),
		fourMin:  hwtest.NewLine(clock),
		twoMin:   hwtest.NewLine(clock),
		timeUp:   hwtest.NewLine(clock),
		power:    hwtest.NewLine(clock),
		display:  &hwtest.Display{},
		recorder: &recorderSpy{},
		start:    clock.Now(),
	}
	panel := NewPanel(f.fourMin, f.twoMin, f.timeUp, f.power)
	f.ctrl = NewController(clock, Inputs{ModeSwitch: f.modeSw, AdvanceButton: f.button},
		panel, f.display, DefaultTimings(), f.recorder)
	return f
}

func (f *controllerFixture) lamps() [4]bool {
	return [4]bool{f.fourMin.On, f.twoMin.On, f.timeUp.On, f.power.On}
}

// stepFor runs control cycles at 100ms spacing for the given span.
func (f *controllerFixture) stepFor(span time.Duration) {
	cycles := int(span / (100 * time.Millisecond))
	for i := 0; i < cycles; i++ {
		f.ctrl.Step()
		f.clock.Advance(100 * time.Millisecond)
	}
}

func TestController_IdleHoldsEverythingDark(t *testing.T) {
	f := newControllerFixture()

	f.stepFor(5 * time.Second)

	assert.Equal(t, domain.ModeIdle, f.ctrl.Mode())
	assert.Equal(t, [4]bool{false, false, false, false}, f.lamps())
	assert.Equal(t, 0, f.display.Value)
	assert.Equal(t, 2, f.display.DecimalPlaces)
	assert.Equal(t, 50, f.display.Refreshes, "display refreshed once per cycle")
}

func TestController_FullStoryScenario(t *testing.T) {
	f := newControllerFixture()
	f.modeSw.Asserted = true

	type check struct {
		lamps [4]bool
		note  string
	}
	// Keyed by deciseconds of elapsed story time; checked right after
	// the control cycle at that instant.
	checks := map[int]check{
		3599: {[4]bool{false, false, false, false}, "dark just before 6:00"},
		3600: {[4]bool{true, false, false, true}, "four-min lit at 6:00"},
		3799: {[4]bool{true, false, false, true}, "four-min lit through 6:19"},
		3800: {[4]bool{false, false, false, false}, "four-min cleared at 6:20"},
		4500: {[4]bool{false, false, false, false}, "dark between the windows"},
		4800: {[4]bool{false, true, false, true}, "two-min lit at 8:00"},
		4999: {[4]bool{false, true, false, true}, "two-min lit through 8:19"},
		5000: {[4]bool{false, false, false, false}, "two-min cleared at 8:20"},
		6000: {[4]bool{false, false, true, true}, "time-up steady at 10:00"},
		6299: {[4]bool{false, false, true, true}, "time-up steady through 10:29"},
		6306: {[4]bool{false, false, false, false}, "slow blink off phase at 10:30.6"},
		6311: {[4]bool{false, false, true, true}, "slow blink on phase at 10:31.1"},
		6602: {[4]bool{false, false, false, false}, "fast blink off phase at 11:00.2"},
		6604: {[4]bool{false, false, true, true}, "fast blink on phase at 11:00.4"},
		9000: {[4]bool{false, false, true, true}, "fast blink still running at 15:00"},
		9002: {[4]bool{false, false, false, false}, "fast blink still toggling at 15:00.2"},
	}

	for ds := 0; ds <= 9002; ds++ {
		f.ctrl.Step()
		if c, ok := checks[ds]; ok {
			assert.Equal(t, c.lamps, f.lamps(), c.note)
		}
		f.clock.Advance(100 * time.Millisecond)
	}

	assert.Equal(t, domain.ModeStory, f.ctrl.Mode())
	assert.Equal(t, 1500, f.display.Value, "readout packs 15:00 as 1500")

	// Releasing the switch resets on the very next cycle.
	f.modeSw.Asserted = false
	f.ctrl.Step()
	assert.Equal(t, domain.ModeIdle, f.ctrl.Mode())
	assert.Equal(t, [4]bool{false, false, false, false}, f.lamps())
	assert.Equal(t, 0, f.display.Value)

	require.Len(t, f.recorder.storySeconds, 1)
	assert.Equal(t, 900, f.recorder.storySeconds[0], "elapsed captured at release")
	assert.Equal(t, domain.CueTimeUpFast, f.recorder.storyPeaks[0])
}

func TestController_DisplayMirrorsElapsedEveryCycle(t *testing.T) {
	f := newControllerFixture()
	f.modeSw.Asserted = true

	f.stepFor(6*time.Minute + 6*time.Second)

	assert.Equal(t, 605, f.display.Value, "6:05 packs to 605")
	assert.Equal(t, 2, f.display.DecimalPlaces)
	assert.Positive(t, f.display.Refreshes)
}

func TestController_ButtonMaskedDuringStory(t *testing.T) {
	f := newControllerFixture()
	f.modeSw.Asserted = true
	f.button.PressBetween(2*time.Second, 2500*time.Millisecond)

	f.stepFor(10 * time.Second)

	assert.Equal(t, domain.ModeStory, f.ctrl.Mode(), "button presses are ignored while the story runs")
	assert.Zero(t, f.recorder.previews)
}

func TestController_PreviewFromIdle(t *testing.T) {
	f := newControllerFixture()

	// Entry press, then one press per stage after each dwell.
	f.button.PressAt(0)
	f.button.PressAt(4 * time.Second)
	f.button.PressAt(7500 * time.Millisecond)
	f.button.PressAt(11 * time.Second)
	f.button.PressAt(15 * time.Second)

	f.ctrl.Step() // blocks until the rehearsal completes

	assert.Equal(t, domain.ModeIdle, f.ctrl.Mode())
	assert.Equal(t, 1, f.recorder.previews)
	assert.Equal(t, 21*time.Second, f.clock.Since(f.start),
		"rehearsal monopolizes control through stages and cool-down")
	assert.Equal(t, [4]bool{false, false, false, false}, f.lamps())
}

func TestController_CoolDownBlocksImmediateRestart(t *testing.T) {
	f := newControllerFixture()

	f.button.PressAt(0)
	f.button.PressAt(4 * time.Second)
	f.button.PressAt(7500 * time.Millisecond)
	f.button.PressAt(11 * time.Second)
	f.button.PressAt(15 * time.Second)
	// Operator keeps pressing after the walk finishes; the press ends
	// inside the cool-down window.
	f.button.PressBetween(18200*time.Millisecond, 19*time.Second)

	f.ctrl.Step()
	previewsAfterFirst := f.recorder.previews

	f.clock.Advance(100 * time.Millisecond)
	f.ctrl.Step()

	assert.Equal(t, 1, previewsAfterFirst)
	assert.Equal(t, 1, f.recorder.previews, "press absorbed by the cool-down does not restart preview")
	assert.Equal(t, domain.ModeIdle, f.ctrl.Mode())
}

func TestController_StoryEntryClearsBeforeCounting(t *testing.T) {
	f := newControllerFixture()

	f.stepFor(time.Second)
	f.modeSw.Asserted = true
	f.ctrl.Step()

	assert.Equal(t, domain.ModeStory, f.ctrl.Mode())
	assert.Equal(t, [4]bool{false, false, false, false}, f.lamps())
	assert.Equal(t, 0, f.display.Value, "elapsed forced to zero on entry")
}
