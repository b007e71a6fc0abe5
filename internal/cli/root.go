package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/tally/internal/cli/formatter"
	"github.com/alexanderramin/tally/internal/domain"
	"github.com/alexanderramin/tally/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Projects  service.ProjectService
	Nodes     service.NodeService
	Items     service.ItemService
	Materials service.MaterialsService
	Calendar  service.CalendarService
	Status    service.StatusService
	Views     service.ViewService
	Settings  service.SettingsService
	Backup    service.BackupService

	// IsInteractive reports whether prompts can be shown. Nil means never.
	IsInteractive func() bool
	// Now defaults to time.Now.
	Now func() time.Time
	// Watch, when set, streams a signal each time the stored data changes
	// on disk, and Reload re-reads it.
	Watch  func(ctx context.Context) (<-chan struct{}, error)
	Reload func(ctx context.Context) error
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

// NewRootCmd creates the top-level "tally" command and registers all
// subcommands against the provided App. Without a subcommand it prints the
// dashboard.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "tally",
		Short:         "Track projects through phases, weeks and days",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.Settings.Get(cmd.Context())
			if err != nil {
				return err
			}
			formatter.ApplyTheme(s.Theme)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDashboard(cmd, app)
		},
	}

	root.AddCommand(
		newProjectCmd(app),
		newPhaseCmd(app),
		newWeekCmd(app),
		newDayCmd(app),
		newItemCmd(app),
		newMaterialCmd(app),
		newCalendarCmd(app),
		newStatusCmd(app),
		newUseCmd(app),
		newViewCmd(app),
		newHomeCmd(app),
		newThemeCmd(app),
		newExportCmd(app),
		newImportCmd(app),
		newWatchCmd(app),
	)

	return root
}

// nothingToShow turns a lookup miss into a friendly message for read-only
// commands. Other errors pass through.
func nothingToShow(cmd *cobra.Command, err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Nothing to show."))
		return nil
	}
	return err
}
