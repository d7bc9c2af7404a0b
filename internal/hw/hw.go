// Package hw defines the hardware access interfaces the sign controller
// runs against. The physical board (or a simulator) supplies concrete
// implementations; the control logic never touches raw I/O or the wall
// clock directly.
package hw

import "time"

// InputLine is a debounceable digital input. Read reports the logical
// asserted state; polarity inversion (active-low buttons) is the
// implementation's concern.
type InputLine interface {
	Read() bool
}

// OutputLine is a digital output driving one indicator line.
type OutputLine interface {
	Set(on bool)
}

// NumericDisplay is the multiplexed numeric readout collaborator.
// Refresh must be called every control cycle to keep the display lit
// without visible flicker.
type NumericDisplay interface {
	SetValue(value, decimalPlaces int)
	Refresh()
}

// Clock supplies time to the control loop. Injected so tests and the
// accelerated demo can drive the loop without real waiting.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}
