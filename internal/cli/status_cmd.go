package cli

import (
	"fmt"

	"github.com/alexanderramin/tally/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "status",
		Aliases: []string{"dashboard"},
		Short:   "Show every project with its progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDashboard(cmd, app)
		},
	}
}

// runDashboard prints the overview, followed by the open project when the
// view is not home.
func runDashboard(cmd *cobra.Command, app *App) error {
	ctx := cmd.Context()
	ov, err := app.Status.Overview(ctx)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprint(out, formatter.FormatOverview(ov, app.now()))

	v, err := app.Views.Current(ctx)
	if err != nil || v.IsHome() {
		return err
	}
	p, err := app.Projects.Get(ctx, v.ProjectID)
	if err != nil {
		return nothingToShow(cmd, err)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, formatter.FormatProjectTree(p))
	if title, ok := p.Title(v.At); ok {
		fmt.Fprintf(out, "%s %s\n", formatter.Dim("viewing"), formatter.Bold(title))
	}
	return nil
}
