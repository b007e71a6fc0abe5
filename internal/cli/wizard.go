package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/tally/internal/cli/formatter"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// tallyHuhTheme returns a huh theme using the formatter palette.
func tallyHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// confirmAction asks before a destructive change. --yes skips the prompt; a
// non-interactive session without --yes is refused.
func confirmAction(app *App, title, description string, yes bool) (bool, error) {
	if yes {
		return true, nil
	}
	if !app.interactive() {
		return false, fmt.Errorf("%s: confirmation required (re-run with --yes)", title)
	}

	var ok bool
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Description(description).
				Affirmative("Yes").
				Negative("No").
				Value(&ok),
		),
	).WithTheme(tallyHuhTheme()).WithShowHelp(false).Run()
	if err != nil {
		return false, err
	}
	return ok, nil
}

// wizardSelectProject lets the user pick a project from the dashboard list.
func wizardSelectProject(ctx context.Context, app *App, result *string) *huh.Form {
	projects, err := app.Projects.List(ctx, "")
	if err != nil || len(projects) == 0 {
		return nil
	}

	options := make([]huh.Option[string], 0, len(projects))
	for _, p := range projects {
		options = append(options, huh.NewOption(fmt.Sprintf("%s (%d%%)", p.Name, p.Progress), p.ID))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which project?").
				Options(options...).
				Value(result),
		),
	).WithTheme(tallyHuhTheme()).WithShowHelp(false)
}

func cancelled(cmd *cobra.Command) error {
	fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
	return nil
}
