package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"github.com/storyhour/storysign/internal/cli/formatter"
)

func newRunsCmd(app *App) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "Show logged sign sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			return listRuns(cmd, app, limit)
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum sessions to show")

	cmd.AddCommand(newRunsClearCmd(app))
	return cmd
}

func listRuns(cmd *cobra.Command, app *App, limit int) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	runs, err := app.Runs.ListRecent(ctx, limit)
	if err != nil {
		return fmt.Errorf("loading runs: %w", err)
	}
	if len(runs) == 0 {
		fmt.Fprintln(out, "No sessions logged yet.")
		return nil
	}

	for _, run := range runs {
		fmt.Fprintln(out, formatter.RunRow(run))
	}

	counts, err := app.Runs.Counts(ctx)
	if err != nil {
		return fmt.Errorf("counting runs: %w", err)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, formatter.RunSummary(counts))
	return nil
}

func newRunsClearCmd(app *App) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete the entire session history",
		RunE: func(cmd *cobra.Command, args []string) error {
			return clearRuns(cmd, app, yes)
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "skip the confirmation prompt")
	return cmd
}

func clearRuns(cmd *cobra.Command, app *App, yes bool) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	if !yes {
		var confirmed bool
		form := huh.NewForm(huh.NewGroup(
			huh.NewConfirm().
				Title("Delete all logged sessions?").
				Description("Story runs and rehearsals will be removed permanently.").
				Value(&confirmed),
		))
		if err := form.Run(); err != nil {
			return fmt.Errorf("confirming: %w", err)
		}
		if !confirmed {
			fmt.Fprintln(out, "Aborted.")
			return nil
		}
	}

	n, err := app.Runs.Clear(ctx)
	if err != nil {
		return fmt.Errorf("clearing runs: %w", err)
	}
	fmt.Fprintf(out, "Deleted %d sessions.\n", n)
	return nil
}
