package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/storyhour/storysign/internal/cli/formatter"
	"github.com/storyhour/storysign/internal/domain"
	"github.com/storyhour/storysign/internal/hw/sim"
	"github.com/storyhour/storysign/internal/sign"
)

// storyLength is a pflag.Value keeping the demo length inside sane
// bounds for a stage timer.
type storyLength time.Duration

func (l *storyLength) String() string { return time.Duration(*l).String() }

func (l *storyLength) Type() string { return "duration" }

func (l *storyLength) Set(s string) error {
	d, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	if d < time.Minute || d > time.Hour {
		return fmt.Errorf("length must be between 1m and 1h, got %s", d)
	}
	*l = storyLength(d)
	return nil
}

var _ pflag.Value = (*storyLength)(nil)

func newDemoCmd() *cobra.Command {
	length := storyLength(12 * time.Minute)
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Print the cue timeline of a simulated story run",
		Long: `Holds the mode switch asserted against a virtual clock and prints each
cue transition the sign would fire during a story of the given length.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd, time.Duration(length))
		},
	}
	cmd.Flags().Var(&length, "length", `simulated story length (e.g. "12m")`)
	return cmd
}

// demoClock is a virtual clock stepped by the demo loop.
type demoClock struct {
	now time.Time
}

func (c *demoClock) Now() time.Time        { return c.now }
func (c *demoClock) Sleep(d time.Duration) { c.now = c.now.Add(d) }

func runDemo(cmd *cobra.Command, length time.Duration) error {
	out := cmd.OutOrStdout()

	clock := &demoClock{now: time.Now()}
	board := sim.NewBoard()
	board.SetModeSwitch(true)

	panel := sign.NewPanel(board.FourMinLine(), board.TwoMinLine(), board.TimeUpLine(), board.PowerLine())
	ctrl := sign.NewController(
		clock,
		sign.Inputs{ModeSwitch: board.ModeSwitch(), AdvanceButton: board.AdvanceButton()},
		panel,
		board.Display(),
		sign.DefaultTimings(),
		nil,
	)

	fmt.Fprintln(out, "t=00:00  story begins")

	last := domain.CueNone
	for elapsed := time.Duration(0); elapsed <= length; elapsed += time.Second {
		ctrl.Step()
		if cue := ctrl.Cue(); cue != last {
			fmt.Fprintln(out, formatter.TimelineEvent(elapsed, cue))
			last = cue
		}
		clock.now = clock.now.Add(time.Second)
	}

	board.SetModeSwitch(false)
	ctrl.Step()
	fmt.Fprintln(out, "switch released: clock and indicators reset")
	return nil
}
