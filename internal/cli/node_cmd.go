package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/tally/internal/cli/formatter"
	"github.com/alexanderramin/tally/internal/domain"
	"github.com/spf13/cobra"
)

func newPhaseCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "phase",
		Short: "Manage the phases of a project",
	}

	var project string
	cmd.PersistentFlags().StringVarP(&project, "project", "p", "", "Project (defaults to the current view)")

	add := &cobra.Command{
		Use:   "add TITLE",
		Short: "Add a phase",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			projectID, err := resolveProjectForFlag(ctx, app, project)
			if err != nil {
				return err
			}
			ph, err := app.Nodes.AddPhase(ctx, projectID, strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added phase %s %s\n", formatter.Bold(ph.Title), formatter.TruncID(ph.ID))
			return nil
		},
	}

	cmd.AddCommand(add, newNodeRenameCmd(app, domain.NodePhase, &project), newNodeRemoveCmd(app, domain.NodePhase, &project))
	return cmd
}

func newWeekCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "week",
		Short: "Manage the weeks of a project",
	}

	var project, phase string
	cmd.PersistentFlags().StringVarP(&project, "project", "p", "", "Project (defaults to the current view)")

	add := &cobra.Command{
		Use:   "add TITLE",
		Short: "Add a week to a phase, or to a weekly project",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			projectID, err := resolveProjectForFlag(ctx, app, project)
			if err != nil {
				return err
			}
			phaseID := ""
			if phase != "" {
				if phaseID, err = resolveNodeID(ctx, app, projectID, domain.NodePhase, phase); err != nil {
					return err
				}
			}
			w, err := app.Nodes.AddWeek(ctx, projectID, phaseID, strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added week %s %s\n", formatter.Bold(w.Title), formatter.TruncID(w.ID))
			return nil
		},
	}
	add.Flags().StringVar(&phase, "phase", "", "Phase to add the week to")

	cmd.AddCommand(add, newNodeRenameCmd(app, domain.NodeWeek, &project), newNodeRemoveCmd(app, domain.NodeWeek, &project))
	return cmd
}

func newDayCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "day",
		Short: "Manage the days of a project",
	}

	var project, week, date string
	cmd.PersistentFlags().StringVarP(&project, "project", "p", "", "Project (defaults to the current view)")

	add := &cobra.Command{
		Use:   "add TITLE",
		Short: "Add a day to a week, or to a daily project",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			projectID, err := resolveProjectForFlag(ctx, app, project)
			if err != nil {
				return err
			}
			weekID := ""
			if week != "" {
				if weekID, err = resolveNodeID(ctx, app, projectID, domain.NodeWeek, week); err != nil {
					return err
				}
			}
			d, err := app.Nodes.AddDay(ctx, projectID, weekID, strings.Join(args, " "), date)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added day %s %s\n", formatter.Bold(d.Title), formatter.TruncID(d.ID))
			return nil
		},
	}
	add.Flags().StringVar(&week, "week", "", "Week to add the day to")
	add.Flags().StringVar(&date, "date", "", "Calendar date (YYYY-MM-DD)")

	setDate := &cobra.Command{
		Use:   "date DAY [YYYY-MM-DD]",
		Short: "Set or clear the date of a day",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			projectID, err := resolveProjectForFlag(ctx, app, project)
			if err != nil {
				return err
			}
			dayID, err := resolveNodeID(ctx, app, projectID, domain.NodeDay, args[0])
			if err != nil {
				return err
			}
			newDate := ""
			if len(args) == 2 {
				newDate = args[1]
			}
			if err := app.Nodes.SetDate(ctx, projectID, dayID, newDate); err != nil {
				return err
			}
			if newDate == "" {
				fmt.Fprintln(cmd.OutOrStdout(), "Cleared the date.")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Scheduled on %s\n", newDate)
			return nil
		},
	}

	cmd.AddCommand(add, setDate, newNodeRenameCmd(app, domain.NodeDay, &project), newNodeRemoveCmd(app, domain.NodeDay, &project))
	return cmd
}

func newNodeRenameCmd(app *App, kind domain.NodeKind, project *string) *cobra.Command {
	return &cobra.Command{
		Use:   "rename ID TITLE",
		Short: fmt.Sprintf("Rename a %s", kind),
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			projectID, err := resolveProjectForFlag(ctx, app, *project)
			if err != nil {
				return err
			}
			id, err := resolveNodeID(ctx, app, projectID, kind, args[0])
			if err != nil {
				return err
			}
			title := strings.Join(args[1:], " ")
			if err := app.Nodes.Rename(ctx, projectID, domain.NodeRef{Kind: kind, ID: id}, title); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Renamed %s to %s\n", kind, formatter.Bold(strings.TrimSpace(title)))
			return nil
		},
	}
}

func newNodeRemoveCmd(app *App, kind domain.NodeKind, project *string) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "rm ID",
		Aliases: []string{"remove"},
		Short:   fmt.Sprintf("Delete a %s and everything under it", kind),
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			projectID, err := resolveProjectForFlag(ctx, app, *project)
			if err != nil {
				return err
			}
			id, err := resolveNodeID(ctx, app, projectID, kind, args[0])
			if err != nil {
				return err
			}
			ref := domain.NodeRef{Kind: kind, ID: id}
			p, err := app.Projects.Get(ctx, projectID)
			if err != nil {
				return err
			}
			title, _ := p.Title(ref)
			ok, err := confirmAction(app, fmt.Sprintf("Delete %s %q?", kind, title), "Its items and materials go with it.", yes)
			if err != nil {
				return err
			}
			if !ok {
				return cancelled(cmd)
			}
			if err := app.Nodes.Remove(ctx, projectID, ref); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s %s\n", kind, title)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}
