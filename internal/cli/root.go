package cli

import (
	"github.com/spf13/cobra"
	"github.com/storyhour/storysign/internal/service"
)

// App holds the service interfaces and environment probes used by CLI
// commands.
type App struct {
	Runs service.RunService

	// IsInteractive reports whether stdin is a terminal; the bare root
	// command only opens the panel TUI when it is.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "storysign" command and registers
// all subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "storysign",
		Short: "Stage-timer sign controller with a simulated operator panel",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return runPanel(app)
			}
			return cmd.Help()
		},
	}

	root.AddCommand(
		newPanelCmd(app),
		newDemoCmd(),
		newRunsCmd(app),
	)

	return root
}
