package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/tally/internal/domain"
	"github.com/alexanderramin/tally/internal/store"
)

type viewService struct {
	store *store.Store
}

func NewViewService(st *store.Store) ViewService {
	return &viewService{store: st}
}

// Current returns the stored view. A view whose project or node is gone
// resolves to the nearest level that still exists.
func (s *viewService) Current(ctx context.Context) (domain.View, error) {
	v, err := s.store.LoadView(ctx)
	if err != nil || v.IsHome() {
		return v, err
	}
	err = s.store.Read(func(state *domain.AppState) error {
		p, ok := state.FindProject(v.ProjectID)
		if !ok {
			v = domain.View{}
			return nil
		}
		if _, ok := p.Title(v.At); !ok {
			v.At = domain.ProjectRef()
		}
		return nil
	})
	return v, err
}

func (s *viewService) Use(ctx context.Context, projectID string, at domain.NodeRef) (domain.View, error) {
	if at.IsZero() {
		at = domain.ProjectRef()
	}
	err := readProject(s.store, projectID, func(p *domain.Project) error {
		if _, ok := p.Title(at); !ok {
			return fmt.Errorf("%s: %w", at, domain.ErrNotFound)
		}
		return nil
	})
	if err != nil {
		return domain.View{}, err
	}
	v := domain.View{ProjectID: projectID, At: at}
	if err := s.store.SaveView(ctx, v); err != nil {
		return domain.View{}, err
	}
	return v, nil
}

func (s *viewService) Home(ctx context.Context) error {
	return s.store.SaveView(ctx, domain.View{})
}
