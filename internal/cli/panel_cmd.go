package cli

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/storyhour/storysign/internal/hw"
	"github.com/storyhour/storysign/internal/hw/sim"
	"github.com/storyhour/storysign/internal/service"
	"github.com/storyhour/storysign/internal/sign"
)

func newPanelCmd(app *App) *cobra.Command {
	var speed int
	cmd := &cobra.Command{
		Use:   "panel",
		Short: "Run the sign against a simulated operator panel",
		Long: `Runs the sign control loop against a simulated board and opens a TUI
showing the indicator lamps and the numeric readout. The "s" key is the
mode switch, space is the advance button.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPanelAt(app, speed)
		},
	}
	cmd.Flags().IntVar(&speed, "speed", 1, "clock multiplier for checking cue timings quickly")
	return cmd
}

func runPanel(app *App) error {
	return runPanelAt(app, 1)
}

func runPanelAt(app *App, speed int) error {
	board := sim.NewBoard()
	panel := sign.NewPanel(board.FourMinLine(), board.TwoMinLine(), board.TimeUpLine(), board.PowerLine())

	var recorder sign.RunRecorder
	var rec *service.Recorder
	if app.Runs != nil {
		rec = service.NewRecorder(app.Runs)
		recorder = rec
	}

	var clock hw.Clock = hw.SystemClock{}
	if speed > 1 {
		clock = hw.NewScaledClock(speed)
	}

	ctrl := sign.NewController(
		clock,
		sign.Inputs{ModeSwitch: board.ModeSwitch(), AdvanceButton: board.AdvanceButton()},
		panel,
		board.Display(),
		sign.DefaultTimings(),
		recorder,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan struct{})
	go func() {
		defer close(done)
		ctrl.Run(ctx)
	}()

	program := tea.NewProgram(newPanelModel(board, speed), tea.WithAltScreen())
	_, runErr := program.Run()

	// The loop must be stopped before the caller closes the database it
	// records through. A rehearsal in progress finishes first.
	cancel()
	<-done

	if runErr != nil {
		return fmt.Errorf("running panel: %w", runErr)
	}
	if rec != nil && rec.Dropped() > 0 {
		fmt.Fprintf(os.Stderr, "warning: %d sessions were not logged\n", rec.Dropped())
	}
	return nil
}
