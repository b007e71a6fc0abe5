package cli

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/alexanderramin/tally/internal/cli/formatter"
	"github.com/alexanderramin/tally/internal/domain"
	"github.com/alexanderramin/tally/internal/service"
	"github.com/spf13/cobra"
)

func newMaterialCmd(app *App) *cobra.Command {
	var project, at string

	cmd := &cobra.Command{
		Use:     "material",
		Aliases: []string{"mat"},
		Short:   "Manage notes, videos, files and links",
	}
	cmd.PersistentFlags().StringVarP(&project, "project", "p", "", "Project (defaults to the current view)")
	cmd.PersistentFlags().StringVarP(&at, "at", "a", "", "Node: project, phase:ID, week:ID or day:ID (defaults to the current view)")

	list := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Show the materials of a node",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			t, err := resolveTarget(ctx, app, project, at)
			if err != nil {
				return nothingToShow(cmd, err)
			}
			m, err := app.Materials.List(ctx, t.projectID, t.at)
			if err != nil {
				return nothingToShow(cmd, err)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatMaterials(nodeTitle(ctx, app, t), m))
			return nil
		},
	}

	note := &cobra.Command{
		Use:   "note TEXT",
		Short: "Add a note",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			t, err := resolveTarget(ctx, app, project, at)
			if err != nil {
				return err
			}
			if err := app.Materials.AddNote(ctx, t.projectID, t.at, strings.Join(args, " ")); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Added note.")
			return nil
		},
	}

	video := &cobra.Command{
		Use:   "video URL",
		Short: "Add a YouTube video",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			t, err := resolveTarget(ctx, app, project, at)
			if err != nil {
				return err
			}
			v, err := app.Materials.AddVideo(ctx, t.projectID, t.at, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added video %s\n", v.ID)
			return nil
		},
	}

	link := &cobra.Command{
		Use:   "link URL [TITLE]",
		Short: "Add a link",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			t, err := resolveTarget(ctx, app, project, at)
			if err != nil {
				return err
			}
			l, err := app.Materials.AddLink(ctx, t.projectID, t.at, args[0], strings.Join(args[1:], " "))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added link %s\n", l.Title)
			return nil
		},
	}

	cmd.AddCommand(list, note, video, link,
		newMaterialFileCmd(app, &project, &at),
		newMaterialSaveCmd(app, &project, &at),
		newMaterialRemoveCmd(app, &project, &at),
	)
	return cmd
}

// fileSources turns paths into attachments read lazily from disk.
func fileSources(paths []string) []service.FileSource {
	out := make([]service.FileSource, 0, len(paths))
	for _, path := range paths {
		out = append(out, service.FileSource{
			Name: filepath.Base(path),
			Type: mime.TypeByExtension(filepath.Ext(path)),
			Read: func() ([]byte, error) { return os.ReadFile(path) },
		})
	}
	return out
}

func newMaterialFileCmd(app *App, project, at *string) *cobra.Command {
	return &cobra.Command{
		Use:   "file PATH...",
		Short: "Attach files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			t, err := resolveTarget(ctx, app, *project, *at)
			if err != nil {
				return err
			}

			stop := func() {}
			if app.interactive() {
				stop = formatter.StartSpinner(cmd.ErrOrStderr(), fmt.Sprintf("Attaching %d file(s)...", len(args)))
			}
			res, err := app.Materials.AttachFiles(ctx, t.projectID, t.at, fileSources(args))
			stop()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, name := range res.Attached {
				fmt.Fprintf(out, "Attached %s\n", name)
			}
			for _, name := range res.Skipped {
				fmt.Fprintf(out, "Skipped %s %s\n", name, formatter.Dim("(its node was removed)"))
			}
			failed := make([]string, 0, len(res.Failed))
			for name := range res.Failed {
				failed = append(failed, name)
			}
			sort.Strings(failed)
			for _, name := range failed {
				fmt.Fprintf(out, "%s %s: %v\n", formatter.StyleRed.Render("Failed"), name, res.Failed[name])
			}
			if len(failed) > 0 {
				return fmt.Errorf("%d of %d files could not be attached", len(failed), len(args))
			}
			return nil
		},
	}
}

func newMaterialSaveCmd(app *App, project, at *string) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "save N",
		Short: "Write an attached file back to disk",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			t, err := resolveTarget(ctx, app, *project, *at)
			if err != nil {
				return err
			}
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			f, content, err := app.Materials.OpenFile(ctx, t.projectID, t.at, index)
			if err != nil {
				return err
			}
			path := domain.CoalesceStr(out, f.Name)
			if err := os.WriteFile(path, content, 0o644); err != nil {
				return fmt.Errorf("saving %s: %w", f.Name, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %s (%s)\n", path, formatter.FileSize(int64(len(content))))
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Destination path (defaults to the file name)")
	return cmd
}

func newMaterialRemoveCmd(app *App, project, at *string) *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:     "rm N",
		Aliases: []string{"remove"},
		Short:   "Delete a material",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			t, err := resolveTarget(ctx, app, *project, *at)
			if err != nil {
				return err
			}
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			if err := app.Materials.Remove(ctx, t.projectID, t.at, domain.MaterialKind(kind), index); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s #%d\n", strings.TrimSuffix(kind, "s"), index+1)
			return nil
		},
	}

	cmd.Flags().StringVarP(&kind, "kind", "k", string(domain.MaterialNotes), "List to delete from (notes|videos|files|links)")
	return cmd
}
