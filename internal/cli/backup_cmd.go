package cli

import (
	"fmt"
	"os"

	"github.com/alexanderramin/tally/internal/cli/formatter"
	"github.com/alexanderramin/tally/internal/store"
	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	var out, format string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a backup of every project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if out == "-" {
				return app.Backup.Export(ctx, cmd.OutOrStdout(), format)
			}

			path := out
			if path == "" {
				path = store.ExportFileName(app.now())
				if format == store.FormatYAML {
					path = path[:len(path)-len(".json")] + ".yaml"
				}
			}
			f, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("creating %s: %w", path, err)
			}
			if err := app.Backup.Export(ctx, f, format); err != nil {
				f.Close()
				os.Remove(path)
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("writing %s: %w", path, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Destination file, or - for stdout (defaults to tally-YYYY-MM-DD.json)")
	cmd.Flags().StringVarP(&format, "format", "f", store.FormatJSON, "Output format (json|yaml)")
	return cmd
}

func newImportCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Replace all data with a JSON backup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("%w: %v", store.ErrImport, err)
			}
			defer f.Close()

			in, err := app.Backup.Preview(ctx, f)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(in.Issues) > 0 {
				fmt.Fprintln(out, formatter.StyleYellowBold.Render(fmt.Sprintf("%d issue(s) found:", len(in.Issues))))
				for _, issue := range in.Issues {
					fmt.Fprintf(out, "  - %v\n", issue)
				}
			}

			ok, err := confirmAction(app,
				fmt.Sprintf("Replace all data with %d project(s) from %s?", len(in.State.Projects), args[0]),
				"Your current projects will be lost.", yes)
			if err != nil {
				return err
			}
			if !ok {
				return cancelled(cmd)
			}
			if err := app.Backup.Apply(ctx, in); err != nil {
				return err
			}
			fmt.Fprintf(out, "Imported %d project(s)\n", len(in.State.Projects))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}
