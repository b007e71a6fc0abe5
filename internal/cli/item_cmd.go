package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/tally/internal/cli/formatter"
	"github.com/alexanderramin/tally/internal/domain"
	"github.com/spf13/cobra"
)

// target is the project and node a checklist or materials command acts on.
type target struct {
	projectID string
	at        domain.NodeRef
}

func resolveTarget(ctx context.Context, app *App, project, at string) (target, error) {
	projectID, err := resolveProjectForFlag(ctx, app, project)
	if err != nil {
		return target{}, err
	}
	ref, err := resolveRef(ctx, app, projectID, at)
	if err != nil {
		return target{}, err
	}
	return target{projectID: projectID, at: ref}, nil
}

func newItemCmd(app *App) *cobra.Command {
	var project, at string

	cmd := &cobra.Command{
		Use:     "item",
		Aliases: []string{"task", "goal"},
		Short:   "Manage the checklist of a project, phase, week or day",
	}
	cmd.PersistentFlags().StringVarP(&project, "project", "p", "", "Project (defaults to the current view)")
	cmd.PersistentFlags().StringVarP(&at, "at", "a", "", "Node: project, phase:ID, week:ID or day:ID (defaults to the current view)")

	list := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Show the checklist",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			t, err := resolveTarget(ctx, app, project, at)
			if err != nil {
				return nothingToShow(cmd, err)
			}
			items, err := app.Items.List(ctx, t.projectID, t.at)
			if err != nil {
				return nothingToShow(cmd, err)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatItems(nodeTitle(ctx, app, t), items))
			return nil
		},
	}

	add := &cobra.Command{
		Use:   "add TEXT",
		Short: "Add an item",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			t, err := resolveTarget(ctx, app, project, at)
			if err != nil {
				return err
			}
			index, err := app.Items.Add(ctx, t.projectID, t.at, strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added item #%d\n", index+1)
			return nil
		},
	}

	toggle := &cobra.Command{
		Use:     "toggle N",
		Aliases: []string{"done"},
		Short:   "Check or uncheck an item",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			t, err := resolveTarget(ctx, app, project, at)
			if err != nil {
				return err
			}
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			done, err := app.Items.Toggle(ctx, t.projectID, t.at, index)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s #%d\n", formatter.Checkbox(done), index+1)
			return nil
		},
	}

	edit := &cobra.Command{
		Use:   "edit N TEXT",
		Short: "Change the text of an item",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			t, err := resolveTarget(ctx, app, project, at)
			if err != nil {
				return err
			}
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			if err := app.Items.Edit(ctx, t.projectID, t.at, index, strings.Join(args[1:], " ")); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated item #%d\n", index+1)
			return nil
		},
	}

	remove := &cobra.Command{
		Use:     "rm N",
		Aliases: []string{"remove"},
		Short:   "Delete an item",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			t, err := resolveTarget(ctx, app, project, at)
			if err != nil {
				return err
			}
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			if err := app.Items.Remove(ctx, t.projectID, t.at, index); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted item #%d\n", index+1)
			return nil
		},
	}

	cmd.AddCommand(list, add, toggle, edit, remove)
	return cmd
}

// nodeTitle labels a target for headings, falling back to its reference.
func nodeTitle(ctx context.Context, app *App, t target) string {
	p, err := app.Projects.Get(ctx, t.projectID)
	if err != nil {
		return t.at.String()
	}
	title, ok := p.Title(t.at)
	if !ok {
		return t.at.String()
	}
	if t.at.Kind == domain.NodeProject {
		return title
	}
	return p.Name + " / " + title
}
