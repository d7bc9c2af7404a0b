package hw

import "time"

// SystemClock is the real monotonic clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time        { return time.Now() }
func (SystemClock) Sleep(d time.Duration) { time.Sleep(d) }

// ScaledClock runs time at a fixed multiple of real time. It backs the
// panel's --speed flag so cue timings can be checked without sitting
// through a full story run.
type ScaledClock struct {
	start time.Time
	speed int
}

// NewScaledClock creates a clock running speed times faster than real time.
func NewScaledClock(speed int) *ScaledClock {
	if speed < 1 {
		speed = 1
	}
	return &ScaledClock{start: time.Now(), speed: speed}
}

func (c *ScaledClock) Now() time.Time {
	return c.start.Add(time.Since(c.start) * time.Duration(c.speed))
}

func (c *ScaledClock) Sleep(d time.Duration) {
	time.Sleep(d / time.Duration(c.speed))
}
