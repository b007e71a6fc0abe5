package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/tally/internal/domain"
	"github.com/alexanderramin/tally/internal/schema"
	"github.com/alexanderramin/tally/internal/store"
)

type projectService struct {
	store    *store.Store
	observer UseCaseObserver
}

func NewProjectService(st *store.Store, observers ...UseCaseObserver) ProjectService {
	return &projectService{store: st, observer: useCaseObserverOrNoop(observers)}
}

func (s *projectService) Create(ctx context.Context, name string, tmpl domain.Template, description string) (p *domain.Project, err error) {
	fields := map[string]any{"template": string(tmpl)}
	defer finishUseCase(ctx, s.observer, "create-project", time.Now().UTC(), fields, &err)

	p, err = domain.NewProject(name, tmpl)
	if err != nil {
		return nil, fmt.Errorf("creating project: %w", err)
	}
	p.ID = newID()
	p.Description = strings.TrimSpace(description)
	fields["project_id"] = p.ID

	err = s.store.Update(ctx, func(state *domain.AppState) error {
		state.Projects = append(state.Projects, p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return schema.CloneProject(p), nil
}

func (s *projectService) Get(ctx context.Context, id string) (*domain.Project, error) {
	var out *domain.Project
	err := readProject(s.store, id, func(p *domain.Project) error {
		out = schema.CloneProject(p)
		return nil
	})
	return out, err
}

func (s *projectService) List(ctx context.Context, query string) ([]ProjectSummary, error) {
	var out []ProjectSummary
	err := s.store.Read(func(state *domain.AppState) error {
		for _, p := range state.SearchProjects(query) {
			out = append(out, summarize(p))
		}
		return nil
	})
	return out, err
}

func (s *projectService) Rename(ctx context.Context, id, name string) (err error) {
	defer finishUseCase(ctx, s.observer, "rename-project", time.Now().UTC(), map[string]any{"project_id": id}, &err)
	return updateProject(ctx, s.store, id, func(p *domain.Project) error {
		return p.Rename(domain.ProjectRef(), name)
	})
}

func (s *projectService) Describe(ctx context.Context, id, description string) error {
	return updateProject(ctx, s.store, id, func(p *domain.Project) error {
		p.Description = strings.TrimSpace(description)
		return nil
	})
}

func (s *projectService) SetStructure(ctx context.Context, id string, st domain.Structure) (err error) {
	fields := map[string]any{"project_id": id}
	defer finishUseCase(ctx, s.observer, "set-structure", time.Now().UTC(), fields, &err)
	return updateProject(ctx, s.store, id, func(p *domain.Project) error {
		p.SetStructure(st)
		fields["shape"] = string(p.Shape())
		return nil
	})
}

func (s *projectService) Delete(ctx context.Context, id string) (err error) {
	defer finishUseCase(ctx, s.observer, "delete-project", time.Now().UTC(), map[string]any{"project_id": id}, &err)
	err = s.store.Update(ctx, func(state *domain.AppState) error {
		if !state.RemoveProject(id) {
			return fmt.Errorf("project %q: %w", id, domain.ErrNotFound)
		}
		return nil
	})
	if err != nil {
		return err
	}

	// A view pointing at the deleted project falls back to home.
	v, err := s.store.LoadView(ctx)
	if err != nil {
		return err
	}
	if v.ProjectID == id {
		return s.store.SaveView(ctx, domain.View{})
	}
	return nil
}
