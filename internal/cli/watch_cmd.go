package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/tally/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newWatchCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Keep the dashboard on screen, redrawing when the data changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Watch == nil || app.Reload == nil {
				return errors.New("watch is not supported by this storage backend")
			}
			ctx := cmd.Context()
			changes, err := app.Watch(ctx)
			if err != nil {
				return err
			}

			if err := runDashboard(cmd, app); err != nil {
				return err
			}
			for {
				select {
				case <-ctx.Done():
					return nil
				case _, ok := <-changes:
					if !ok {
						return nil
					}
					if err := app.Reload(ctx); err != nil {
						fmt.Fprintf(cmd.ErrOrStderr(), "%s %v\n", formatter.StyleRed.Render("reload failed:"), err)
						continue
					}
					if app.interactive() {
						fmt.Fprint(cmd.OutOrStdout(), "\033[H\033[2J")
					} else {
						fmt.Fprintln(cmd.OutOrStdout())
					}
					if err := runDashboard(cmd, app); err != nil {
						return err
					}
				}
			}
		},
	}
}
