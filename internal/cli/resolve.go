package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/tally/internal/domain"
)

// resolveProjectID resolves a project reference, trying in order an exact
// id, a unique id prefix, and a case-insensitive exact name.
func resolveProjectID(ctx context.Context, app *App, input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", fmt.Errorf("project is required")
	}

	projects, err := app.Projects.List(ctx, "")
	if err != nil {
		return "", err
	}

	// 1. Exact id
	for _, p := range projects {
		if p.ID == input {
			return p.ID, nil
		}
	}

	// 2. Id prefix
	var matches []string
	for _, p := range projects {
		if strings.HasPrefix(p.ID, input) {
			matches = append(matches, p.ID)
		}
	}
	if len(matches) > 1 {
		return "", fmt.Errorf("project ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
	if len(matches) == 1 {
		return matches[0], nil
	}

	// 3. Name
	for _, p := range projects {
		if strings.EqualFold(p.Name, input) {
			matches = append(matches, p.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("project not found: %q: %w", input, domain.ErrNotFound)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("project name %q is ambiguous (%d matches)", input, len(matches))
	}
}

// resolveProjectForFlag resolves a --project flag value, falling back to the
// project of the current view.
func resolveProjectForFlag(ctx context.Context, app *App, input string) (string, error) {
	if input != "" {
		return resolveProjectID(ctx, app, input)
	}
	v, err := app.Views.Current(ctx)
	if err != nil {
		return "", err
	}
	if v.IsHome() {
		return "", fmt.Errorf("no project selected (use --project or 'tally use PROJECT')")
	}
	return v.ProjectID, nil
}

// resolveAt parses an --at selector. Without one, the current view's node is
// used when the view is on the same project, otherwise the project itself.
func resolveAt(ctx context.Context, app *App, projectID, input string) (domain.NodeRef, error) {
	if input != "" {
		return domain.ParseNodeRef(input)
	}
	v, err := app.Views.Current(ctx)
	if err != nil {
		return domain.NodeRef{}, err
	}
	if v.ProjectID == projectID && !v.At.IsZero() {
		return v.At, nil
	}
	return domain.ProjectRef(), nil
}

// parseIndex converts a 1-based position from the command line to an index.
func parseIndex(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid position %q (expected a number from 1)", s)
	}
	return n - 1, nil
}

// resolveNodeID resolves a phase, week or day by exact id or unique id
// prefix within one project.
func resolveNodeID(ctx context.Context, app *App, projectID string, kind domain.NodeKind, input string) (string, error) {
	p, err := app.Projects.Get(ctx, projectID)
	if err != nil {
		return "", err
	}

	var ids []string
	switch kind {
	case domain.NodePhase:
		for _, ph := range p.Phases() {
			ids = append(ids, ph.ID)
		}
	case domain.NodeWeek:
		for _, ph := range p.Phases() {
			for _, w := range ph.Weeks {
				ids = append(ids, w.ID)
			}
		}
		for _, w := range p.Weeks() {
			ids = append(ids, w.ID)
		}
	case domain.NodeDay:
		for _, e := range allDays(p) {
			ids = append(ids, e.ID)
		}
	}

	var matches []string
	for _, id := range ids {
		if id == input {
			return id, nil
		}
		if strings.HasPrefix(id, input) {
			matches = append(matches, id)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%s %q: %w", kind, input, domain.ErrNotFound)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%s ID prefix %q is ambiguous (%d matches)", kind, input, len(matches))
	}
}

// resolveRef parses a selector and expands id prefixes of its node.
func resolveRef(ctx context.Context, app *App, projectID, input string) (domain.NodeRef, error) {
	ref, err := resolveAt(ctx, app, projectID, input)
	if err != nil || ref.Kind == domain.NodeProject || input == "" {
		return ref, err
	}
	id, err := resolveNodeID(ctx, app, projectID, ref.Kind, ref.ID)
	if err != nil {
		return domain.NodeRef{}, err
	}
	return domain.NodeRef{Kind: ref.Kind, ID: id}, nil
}

func allDays(p *domain.Project) []*domain.Day {
	var days []*domain.Day
	for _, ph := range p.Phases() {
		for _, w := range ph.Weeks {
			days = append(days, w.Days...)
		}
	}
	for _, w := range p.Weeks() {
		days = append(days, w.Days...)
	}
	return append(days, p.Days()...)
}
