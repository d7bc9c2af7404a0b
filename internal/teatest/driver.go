// Package teatest provides a synchronous test driver for bubbletea models.
//
// It replaces tea.Program in tests by calling Update() directly and
// synchronously draining returned Cmds, so model behavior can be tested
// without goroutines. Cmds that block on timers (frame ticks, cursor
// blinks) are executed with a short timeout and skipped when they do
// not return promptly.
package teatest

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxDrainDepth bounds command draining to prevent infinite loops.
const maxDrainDepth = 100

// cmdTimeout separates instant Cmds (message factories, queries) from
// timer-backed ones, which block for tens of milliseconds or more.
const cmdTimeout = 10 * time.Millisecond

// Driver is a synchronous test harness for any tea.Model.
type Driver struct {
	T     *testing.T
	Model tea.Model

	// Quitting is set when tea.QuitMsg is seen during drain. The real
	// runtime intercepts it before the model, so the driver detects it
	// explicitly.
	Quitting bool
}

// New creates a Driver and sends an initial window size.
func New(t *testing.T, model tea.Model, width, height int) *Driver {
	t.Helper()
	d := &Driver{T: t, Model: model}
	updated, _ := d.Model.Update(tea.WindowSizeMsg{Width: width, Height: height})
	d.Model = updated
	return d
}

// Send dispatches a message through Update and drains resulting Cmds.
func (d *Driver) Send(msg tea.Msg) {
	d.T.Helper()
	if d.Quitting {
		return
	}
	updated, cmd := d.Model.Update(msg)
	d.Model = updated
	d.drainCmd(cmd, 0)
}

// Type sends each rune of s as a key press.
func (d *Driver) Type(s string) {
	d.T.Helper()
	for _, r := range s {
		d.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// View returns the model's current rendering.
func (d *Driver) View() string {
	return d.Model.View()
}

// ViewContains reports whether the rendering includes substr.
func (d *Driver) ViewContains(substr string) bool {
	return strings.Contains(d.View(), substr)
}

func (d *Driver) drainCmd(cmd tea.Cmd, depth int) {
	d.T.Helper()
	if cmd == nil || depth > maxDrainDepth {
		return
	}

	msg := runWithTimeout(cmd)
	if msg == nil {
		return
	}

	switch m := msg.(type) {
	case tea.QuitMsg:
		d.Quitting = true
	case tea.BatchMsg:
		for _, c := range m {
			d.drainCmd(c, depth+1)
		}
	default:
		updated, next := d.Model.Update(msg)
		d.Model = updated
		d.drainCmd(next, depth+1)
	}
}

// runWithTimeout executes a Cmd, abandoning it if it blocks on a timer.
func runWithTimeout(cmd tea.Cmd) tea.Msg {
	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()
	select {
	case msg := <-done:
		return msg
	case <-time.After(cmdTimeout):
		return nil
	}
}
