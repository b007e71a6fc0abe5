package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/tally/internal/cli/formatter"
	"github.com/alexanderramin/tally/internal/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newProjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
	}

	cmd.AddCommand(
		newProjectAddCmd(app),
		newProjectListCmd(app),
		newProjectShowCmd(app),
		newProjectRenameCmd(app),
		newProjectDescribeCmd(app),
		newProjectStructureCmd(app),
		newProjectRemoveCmd(app),
		newProjectStatsCmd(app),
	)

	return cmd
}

func newProjectAddCmd(app *App) *cobra.Command {
	var tmpl, description string

	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Create a new project",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Projects.Create(cmd.Context(), strings.Join(args, " "), domain.Template(tmpl), description)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created project %s %s (%s)\n",
				formatter.Bold(p.Name), formatter.TruncID(p.ID), p.Shape())
			return nil
		},
	}

	cmd.Flags().StringVarP(&tmpl, "template", "t", string(domain.TemplateSimple), "Starting structure (simple|phased|weekly|daily|full)")
	cmd.Flags().StringVarP(&description, "description", "d", "", "Project description")

	return cmd
}

func newProjectListCmd(app *App) *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			projects, err := app.Projects.List(cmd.Context(), search)
			if err != nil {
				return err
			}
			if len(projects) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No projects found.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatProjectList(projects))
			return nil
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "Only projects whose name contains this text")

	return cmd
}

func newProjectShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show [PROJECT]",
		Short: "Show a project tree with progress",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			projectID, err := resolveProjectForFlag(ctx, app, firstArg(args))
			if err != nil {
				return nothingToShow(cmd, err)
			}
			p, err := app.Projects.Get(ctx, projectID)
			if err != nil {
				return nothingToShow(cmd, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatProjectTree(p))
			return nil
		},
	}
}

func newProjectRenameCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rename PROJECT NAME",
		Short: "Rename a project",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			name := strings.Join(args[1:], " ")
			if err := app.Projects.Rename(ctx, projectID, name); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Renamed project to %s\n", formatter.Bold(strings.TrimSpace(name)))
			return nil
		},
	}
}

func newProjectDescribeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "describe PROJECT TEXT",
		Short: "Set a project description",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Projects.Describe(ctx, projectID, strings.Join(args[1:], " ")); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Updated description.")
			return nil
		},
	}
}

func newProjectStructureCmd(app *App) *cobra.Command {
	var s domain.Structure

	cmd := &cobra.Command{
		Use:   "structure PROJECT",
		Short: "Set which levels a project uses",
		Long: `Turn the structure flags of a project on or off, e.g. --weeks or --days=false.
Flags that are not given keep their current value. A project that already has
phases, weeks or days keeps them.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			p, err := app.Projects.Get(ctx, projectID)
			if err != nil {
				return err
			}

			next := p.Structure
			cmd.Flags().Visit(func(f *pflag.Flag) {
				switch f.Name {
				case "phases":
					next.HasPhases = s.HasPhases
				case "weeks":
					next.HasWeeks = s.HasWeeks
				case "days":
					next.HasDays = s.HasDays
				case "materials":
					next.HasMaterials = s.HasMaterials
				}
			})
			if err := app.Projects.SetStructure(ctx, projectID, next); err != nil {
				return err
			}
			if p, err = app.Projects.Get(ctx, projectID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Structure updated; %s uses %s\n", p.Name, formatter.ShapeBadge(p.Shape()))
			return nil
		},
	}

	cmd.Flags().BoolVar(&s.HasPhases, "phases", false, "Use phases")
	cmd.Flags().BoolVar(&s.HasWeeks, "weeks", false, "Use weeks")
	cmd.Flags().BoolVar(&s.HasDays, "days", false, "Use days")
	cmd.Flags().BoolVar(&s.HasMaterials, "materials", false, "Attach materials")

	return cmd
}

func newProjectRemoveCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "rm PROJECT",
		Aliases: []string{"remove"},
		Short:   "Delete a project and everything in it",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			p, err := app.Projects.Get(ctx, projectID)
			if err != nil {
				return err
			}
			ok, err := confirmAction(app, fmt.Sprintf("Delete project %q?", p.Name), "This cannot be undone.", yes)
			if err != nil {
				return err
			}
			if !ok {
				return cancelled(cmd)
			}
			if err := app.Projects.Delete(ctx, projectID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted project %s\n", p.Name)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

func newProjectStatsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats [PROJECT]",
		Short: "Show item counts and per-phase progress",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			projectID, err := resolveProjectForFlag(ctx, app, firstArg(args))
			if err != nil {
				return nothingToShow(cmd, err)
			}
			stats, err := app.Status.ProjectStats(ctx, projectID)
			if err != nil {
				return nothingToShow(cmd, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatStats(stats))
			return nil
		},
	}
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
