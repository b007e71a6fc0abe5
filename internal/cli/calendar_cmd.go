package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/tally/internal/cli/formatter"
	"github.com/alexanderramin/tally/internal/domain"
	"github.com/spf13/cobra"
)

func newCalendarCmd(app *App) *cobra.Command {
	var project string

	cmd := &cobra.Command{
		Use:     "calendar",
		Aliases: []string{"cal"},
		Short:   "Show dated days across projects",
	}
	cmd.PersistentFlags().StringVarP(&project, "project", "p", "", "Only this project (defaults to every project)")

	var monthFlag string
	month := &cobra.Command{
		Use:   "month",
		Short: "Show a month grid",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			projectID, err := optionalProject(ctx, app, project)
			if err != nil {
				return err
			}
			t := app.now()
			if monthFlag != "" {
				if t, err = time.Parse("2006-01", monthFlag); err != nil {
					return fmt.Errorf("invalid month %q (expected YYYY-MM)", monthFlag)
				}
			}
			grid, err := app.Calendar.Month(ctx, projectID, t.Year(), t.Month())
			if err != nil {
				return nothingToShow(cmd, err)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatMonth(t.Year(), t.Month(), grid))
			return nil
		},
	}
	month.Flags().StringVarP(&monthFlag, "month", "m", "", "Month to show (YYYY-MM, defaults to this month)")

	on := &cobra.Command{
		Use:   "on [YYYY-MM-DD]",
		Short: "List the days scheduled on a date (defaults to today)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			projectID, err := optionalProject(ctx, app, project)
			if err != nil {
				return err
			}
			date := app.now().Format(domain.DateLayout)
			if len(args) == 1 {
				date = args[0]
			}
			entries, err := app.Calendar.On(ctx, projectID, date)
			if err != nil {
				return nothingToShow(cmd, err)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatEntries(calendarRows(ctx, app, entries)))
			return nil
		},
	}

	list := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List every dated day in date order",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			projectID, err := optionalProject(ctx, app, project)
			if err != nil {
				return err
			}
			entries, err := app.Calendar.Entries(ctx, projectID)
			if err != nil {
				return nothingToShow(cmd, err)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatEntries(calendarRows(ctx, app, entries)))
			return nil
		},
	}

	cmd.AddCommand(month, on, list)
	return cmd
}

// optionalProject resolves a project filter; empty means every project.
func optionalProject(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", nil
	}
	return resolveProjectID(ctx, app, input)
}

// calendarRows attaches project names and node titles to entries.
func calendarRows(ctx context.Context, app *App, entries []domain.CalendarEntry) []formatter.CalendarRow {
	projects := make(map[string]*domain.Project)
	rows := make([]formatter.CalendarRow, 0, len(entries))
	for _, e := range entries {
		p, ok := projects[e.ProjectID]
		if !ok {
			var err error
			if p, err = app.Projects.Get(ctx, e.ProjectID); err != nil {
				continue
			}
			projects[e.ProjectID] = p
		}

		var path []string
		if e.PhaseID != "" {
			if t, ok := p.Title(domain.PhaseRef(e.PhaseID)); ok {
				path = append(path, t)
			}
		}
		if e.WeekID != "" {
			if t, ok := p.Title(domain.WeekRef(e.WeekID)); ok {
				path = append(path, t)
			}
		}
		if t, ok := p.Title(e.Ref()); ok {
			path = append(path, t)
		}
		rows = append(rows, formatter.CalendarRow{Entry: e, Project: p.Name, Path: strings.Join(path, " / ")})
	}
	return rows
}
