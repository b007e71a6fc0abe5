package cli

import (
	"fmt"

	"github.com/alexanderramin/tally/internal/cli/formatter"
	"github.com/alexanderramin/tally/internal/domain"
	"github.com/spf13/cobra"
)

func newUseCmd(app *App) *cobra.Command {
	var at string

	cmd := &cobra.Command{
		Use:   "use [PROJECT]",
		Short: "Open a project, optionally at one of its nodes",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			input := firstArg(args)
			if input == "" {
				if !app.interactive() {
					return fmt.Errorf("project is required")
				}
				form := wizardSelectProject(ctx, app, &input)
				if form == nil {
					fmt.Fprintln(cmd.OutOrStdout(), "No projects found.")
					return nil
				}
				if err := form.Run(); err != nil {
					return err
				}
			}

			projectID, err := resolveProjectID(ctx, app, input)
			if err != nil {
				return err
			}
			ref := domain.ProjectRef()
			if at != "" {
				if ref, err = resolveRef(ctx, app, projectID, at); err != nil {
					return err
				}
			}
			v, err := app.Views.Use(ctx, projectID, ref)
			if err != nil {
				return err
			}

			p, err := app.Projects.Get(ctx, v.ProjectID)
			if err != nil {
				return err
			}
			title, _ := p.Title(v.At)
			fmt.Fprintf(cmd.OutOrStdout(), "Now viewing %s\n", formatter.Bold(title))
			return nil
		},
	}

	cmd.Flags().StringVarP(&at, "at", "a", "", "Node: phase:ID, week:ID or day:ID")
	return cmd
}

func newViewCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "Show the node you are viewing with its checklist and materials",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			v, err := app.Views.Current(ctx)
			if err != nil {
				return err
			}
			if v.IsHome() {
				return runDashboard(cmd, app)
			}

			t := target{projectID: v.ProjectID, at: v.At}
			p, err := app.Projects.Get(ctx, t.projectID)
			if err != nil {
				return nothingToShow(cmd, err)
			}
			items, err := app.Items.List(ctx, t.projectID, t.at)
			if err != nil {
				return nothingToShow(cmd, err)
			}
			m, err := app.Materials.List(ctx, t.projectID, t.at)
			if err != nil {
				return nothingToShow(cmd, err)
			}

			out := cmd.OutOrStdout()
			title := nodeTitle(ctx, app, t)
			if t.at.Kind == domain.NodeProject {
				fmt.Fprintln(out, formatter.FormatProjectTree(p))
				fmt.Fprintln(out)
			}
			fmt.Fprint(out, formatter.FormatItems(title, items))
			fmt.Fprintln(out)
			fmt.Fprint(out, formatter.FormatMaterials(title, m))
			return nil
		},
	}
}

func newHomeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "home",
		Short: "Close the open project and go back to the dashboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Views.Home(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Back home.")
			return nil
		},
	}
}

func newThemeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:       "theme [dark|light]",
		Short:     "Show or set the color theme",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{domain.ThemeDark, domain.ThemeLight},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if len(args) == 0 {
				s, err := app.Settings.Get(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Theme: %s\n", s.Theme)
				return nil
			}
			if err := app.Settings.SetTheme(ctx, args[0]); err != nil {
				return err
			}
			s, err := app.Settings.Get(ctx)
			if err != nil {
				return err
			}
			formatter.ApplyTheme(s.Theme)
			fmt.Fprintf(cmd.OutOrStdout(), "Theme set to %s\n", s.Theme)
			return nil
		},
	}
}
