package cli

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/storyhour/storysign/internal/cli/formatter"
	"github.com/storyhour/storysign/internal/hw/sim"
)

// ── key bindings ─────────────────────────────────────────────────────────────

type panelKeyMap struct {
	Switch key.Binding
	Button key.Binding
	Quit   key.Binding
}

func newPanelKeyMap() panelKeyMap {
	return panelKeyMap{
		Switch: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "toggle story switch"),
		),
		Button: key.NewBinding(
			key.WithKeys(" ", "b"),
			key.WithHelp("space", "press advance button"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k panelKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Switch, k.Button, k.Quit}
}

func (k panelKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Switch, k.Button, k.Quit}}
}

// ── messages ─────────────────────────────────────────────────────────────────

// frameMsg paces the render loop; board state is re-sampled each frame.
type frameMsg time.Time

func frameTick() tea.Cmd {
	return tea.Tick(50*time.Millisecond, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// buttonHold is how long one keypress holds the advance line asserted,
// in the controller's time. Long enough for the control loop to sample
// it at least once, well under a preview dwell so one press cannot walk
// several stages.
const buttonHold = 250 * time.Millisecond

// ── model ────────────────────────────────────────────────────────────────────

// panelModel renders the simulated sign and translates keys into board
// input lines. It never talks to the controller directly: like a real
// operator it only moves the switch, presses the button, and watches
// the lamps.
type panelModel struct {
	board *sim.Board

	// hold is buttonHold converted to wall time. When the controller
	// runs on a scaled clock the wall hold shrinks by the same factor,
	// so a keypress still spans a fixed slice of controller time.
	hold time.Duration

	keys     panelKeyMap
	help     help.Model
	width    int
	quitting bool
}

func newPanelModel(board *sim.Board, speed int) panelModel {
	if speed < 1 {
		speed = 1
	}
	return panelModel{
		board: board,
		hold:  buttonHold / time.Duration(speed),
		keys:  newPanelKeyMap(),
		help:  help.New(),
	}
}

func (m panelModel) Init() tea.Cmd {
	return frameTick()
}

func (m panelModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case frameMsg:
		if m.quitting {
			return m, nil
		}
		return m, frameTick()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Switch):
			m.board.ToggleModeSwitch()
			return m, nil
		case key.Matches(msg, m.keys.Button):
			m.board.PressAdvance(m.hold)
			return m, nil
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

// ── rendering ────────────────────────────────────────────────────────────────

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252"))

	readoutStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 2).
			Bold(true).
			Foreground(lipgloss.Color("203"))

	lampOffStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	fourMinStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	twoMinStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true)
	timeUpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	powerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)

	inputStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

func lamp(label string, on bool, style lipgloss.Style) string {
	if on {
		return style.Render("● " + label)
	}
	return lampOffStyle.Render("○ " + label)
}

func (m panelModel) View() string {
	if m.quitting {
		return ""
	}

	snap := m.board.Snapshot()

	readout := readoutStyle.Render(formatter.PackedClock(snap.DisplayValue))

	lamps := lipgloss.JoinHorizontal(lipgloss.Top,
		lamp("4 MIN", snap.FourMin, fourMinStyle), "   ",
		lamp("2 MIN", snap.TwoMin, twoMinStyle), "   ",
		lamp("TIME'S UP", snap.TimeUp, timeUpStyle), "   ",
		lamp("PWR", snap.Power, powerStyle),
	)

	switchLabel := "IDLE"
	if snap.ModeSwitch {
		switchLabel = "STORY"
	}
	buttonLabel := "released"
	if snap.ButtonDown {
		buttonLabel = "PRESSED"
	}
	inputs := inputStyle.Render("switch: " + switchLabel + "   button: " + buttonLabel)

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("storysign panel"),
		"",
		readout,
		"",
		lamps,
		"",
		inputs,
		"",
		m.help.View(m.keys),
	) + "\n"
}
