// Package sim is a software stand-in for the physical sign board. It
// implements the hw interfaces with mutex-guarded line state so the
// control loop (one goroutine) and the operator TUI (another) can share
// it the way firmware and physical hardware would share real pins.
package sim

import (
	"sync"
	"time"

	"github.com/storyhour/storysign/internal/hw"
)

// Board holds the simulated input and output lines of the sign.
type Board struct {
	mu sync.Mutex

	modeSwitch    bool
	buttonUntil   time.Time
	buttonLatched bool

	fourMin bool
	twoMin  bool
	timeUp  bool
	power   bool

	displayValue   int
	displayDecimal int
	refreshes      uint64
}

func NewBoard() *Board {
	return &Board{}
}

// SetModeSwitch latches the mode switch position.
func (b *Board) SetModeSwitch(on bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.modeSwitch = on
}

// ToggleModeSwitch flips the switch and returns the new position.
func (b *Board) ToggleModeSwitch() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.modeSwitch = !b.modeSwitch
	return b.modeSwitch
}

// PressAdvance models a momentary button press: the line reads asserted
// until the hold duration expires.
func (b *Board) PressAdvance(hold time.Duration) {
	b.mu.Lock()
	defer b.mu.Unlock()
	until := time.Now().Add(hold)
	if until.After(b.buttonUntil) {
		b.buttonUntil = until
	}
}

// HoldAdvance latches the button down (or releases it) as if the
// operator kept a finger on it.
func (b *Board) HoldAdvance(down bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.buttonLatched = down
}

// Snapshot is a consistent copy of the board's externally visible state.
type Snapshot struct {
	ModeSwitch bool
	ButtonDown bool

	FourMin bool
	TwoMin  bool
	TimeUp  bool
	Power   bool

	DisplayValue   int
	DisplayDecimal int
	Refreshes      uint64
}

// Snapshot returns the current line and display state for rendering.
func (b *Board) Snapshot() Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()
	return Snapshot{
		ModeSwitch:     b.modeSwitch,
		ButtonDown:     b.buttonLatched || time.Now().Before(b.buttonUntil),
		FourMin:        b.fourMin,
		TwoMin:         b.twoMin,
		TimeUp:         b.timeUp,
		Power:          b.power,
		DisplayValue:   b.displayValue,
		DisplayDecimal: b.displayDecimal,
		Refreshes:      b.refreshes,
	}
}

// ── hw interface adapters ────────────────────────────────────────────────────

// ModeSwitch returns the mode-switch input line.
func (b *Board) ModeSwitch() hw.InputLine { return switchLine{b} }

// AdvanceButton returns the advance-button input line.
func (b *Board) AdvanceButton() hw.InputLine { return buttonLine{b} }

// FourMinLine returns the "4 minutes" indicator output.
func (b *Board) FourMinLine() hw.OutputLine { return outputLine{b, &b.fourMin} }

// TwoMinLine returns the "2 minutes" indicator output.
func (b *Board) TwoMinLine() hw.OutputLine { return outputLine{b, &b.twoMin} }

// TimeUpLine returns the "time's up" indicator output.
func (b *Board) TimeUpLine() hw.OutputLine { return outputLine{b, &b.timeUp} }

// PowerLine returns the shared lighting-power output.
func (b *Board) PowerLine() hw.OutputLine { return outputLine{b, &b.power} }

// Display returns the numeric display collaborator.
func (b *Board) Display() hw.NumericDisplay { return display{b} }

type switchLine struct{ b *Board }

func (l switchLine) Read() bool {
	l.b.mu.Lock()
	defer l.b.mu.Unlock()
	return l.b.modeSwitch
}

type buttonLine struct{ b *Board }

func (l buttonLine) Read() bool {
	l.b.mu.Lock()
	defer l.b.mu.Unlock()
	return l.b.buttonLatched || time.Now().Before(l.b.buttonUntil)
}

type outputLine struct {
	b    *Board
	line *bool
}

func (l outputLine) Set(on bool) {
	l.b.mu.Lock()
	defer l.b.mu.Unlock()
	*l.line = on
}

type display struct{ b *Board }

func (d display) SetValue(value, decimalPlaces int) {
	d.b.mu.Lock()
	defer d.b.mu.Unlock()
	d.b.displayValue = value
	d.b.displayDecimal = decimalPlaces
}

func (d display) Refresh() {
	d.b.mu.Lock()
	defer d.b.mu.Unlock()
	d.b.refreshes++
}
