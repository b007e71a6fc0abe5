package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/tally/internal/domain"
	"github.com/alexanderramin/tally/internal/store"
	"github.com/google/uuid"
)

func newID() string {
	return uuid.New().String()
}

// findProject returns the live project with the given id.
func findProject(state *domain.AppState, id string) (*domain.Project, error) {
	p, ok := state.FindProject(id)
	if !ok {
		return nil, fmt.Errorf("project %q: %w", id, domain.ErrNotFound)
	}
	return p, nil
}

// updateProject runs fn on the live project inside a store update.
func updateProject(ctx context.Context, st *store.Store, id string, fn func(p *domain.Project) error) error {
	return st.Update(ctx, func(state *domain.AppState) error {
		p, err := findProject(state, id)
		if err != nil {
			return err
		}
		return fn(p)
	})
}

// readProject runs fn on the live project under the store's read lock.
func readProject(st *store.Store, id string, fn func(p *domain.Project) error) error {
	return st.Read(func(state *domain.AppState) error {
		p, err := findProject(state, id)
		if err != nil {
			return err
		}
		return fn(p)
	})
}

func findItems(p *domain.Project, at domain.NodeRef) (*[]domain.Item, error) {
	items, ok := domain.ResolveItems(p, at)
	if !ok {
		return nil, fmt.Errorf("%s: %w", at, domain.ErrNotFound)
	}
	return items, nil
}

func findMaterials(p *domain.Project, at domain.NodeRef) (*domain.Materials, error) {
	m, ok := domain.ResolveMaterials(p, at)
	if !ok {
		return nil, fmt.Errorf("%s: %w", at, domain.ErrNotFound)
	}
	return m, nil
}

func checkIndex(n, index int) error {
	if index < 0 || index >= n {
		return fmt.Errorf("item %d of %d: %w", index+1, n, domain.ErrIndexOutOfRange)
	}
	return nil
}

func summarize(p *domain.Project) ProjectSummary {
	c := domain.ProjectCounts(p)
	return ProjectSummary{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Shape:       p.Shape(),
		Counts:      c,
		Progress:    c.Percent(),
	}
}

func cleanText(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("text must not be empty")
	}
	return s, nil
}

// finishUseCase reports a finished use case to the observer. It is meant to
// be deferred with a pointer to the named error result.
func finishUseCase(ctx context.Context, obs UseCaseObserver, name string, startedAt time.Time, fields map[string]any, err *error) {
	var e error
	if err != nil {
		e = *err
	}
	obs.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		StartedAt: startedAt,
		Duration:  time.Since(startedAt),
		Success:   e == nil,
		Err:       e,
		Fields:    fields,
	})
}
