package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/tally/internal/domain"
	"github.com/alexanderramin/tally/internal/store"
)

type nodeService struct {
	store    *store.Store
	observer UseCaseObserver
}

func NewNodeService(st *store.Store, observers ...UseCaseObserver) NodeService {
	return &nodeService{store: st, observer: useCaseObserverOrNoop(observers)}
}

func (s *nodeService) AddPhase(ctx context.Context, projectID, title string) (_ *domain.Phase, err error) {
	fields := map[string]any{"project_id": projectID}
	defer finishUseCase(ctx, s.observer, "add-phase", time.Now().UTC(), fields, &err)

	var added domain.Phase
	err = updateProject(ctx, s.store, projectID, func(p *domain.Project) error {
		ph, err := domain.NewPhase(title, p.Structure.HasWeeks)
		if err != nil {
			return err
		}
		ph.ID = newID()
		if err := p.AddPhase(ph); err != nil {
			return err
		}
		added = *ph
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("adding phase: %w", err)
	}
	fields["phase_id"] = added.ID
	return &added, nil
}

func (s *nodeService) AddWeek(ctx context.Context, projectID, phaseID, title string) (_ *domain.Week, err error) {
	fields := map[string]any{"project_id": projectID, "phase_id": phaseID}
	defer finishUseCase(ctx, s.observer, "add-week", time.Now().UTC(), fields, &err)

	var added domain.Week
	err = updateProject(ctx, s.store, projectID, func(p *domain.Project) error {
		w, err := domain.NewWeek(title, p.Structure.HasDays)
		if err != nil {
			return err
		}
		w.ID = newID()
		if err := p.AddWeek(phaseID, w); err != nil {
			return err
		}
		added = *w
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("adding week: %w", err)
	}
	fields["week_id"] = added.ID
	return &added, nil
}

func (s *nodeService) AddDay(ctx context.Context, projectID, weekID, title, date string) (_ *domain.Day, err error) {
	fields := map[string]any{"project_id": projectID, "week_id": weekID}
	defer finishUseCase(ctx, s.observer, "add-day", time.Now().UTC(), fields, &err)

	if err = domain.ValidateDate(date); err != nil {
		return nil, fmt.Errorf("adding day: %w", err)
	}
	var added domain.Day
	err = updateProject(ctx, s.store, projectID, func(p *domain.Project) error {
		d, err := domain.NewDay(title)
		if err != nil {
			return err
		}
		d.ID = newID()
		d.Date = date
		if err := p.AddDay(weekID, d); err != nil {
			return err
		}
		added = *d
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("adding day: %w", err)
	}
	fields["day_id"] = added.ID
	return &added, nil
}

func (s *nodeService) Rename(ctx context.Context, projectID string, ref domain.NodeRef, title string) error {
	return updateProject(ctx, s.store, projectID, func(p *domain.Project) error {
		return p.Rename(ref, title)
	})
}

func (s *nodeService) SetDate(ctx context.Context, projectID, dayID, date string) error {
	if err := domain.ValidateDate(date); err != nil {
		return err
	}
	return updateProject(ctx, s.store, projectID, func(p *domain.Project) error {
		d, ok := domain.FindDay(p, dayID)
		if !ok {
			return fmt.Errorf("day %q: %w", dayID, domain.ErrNotFound)
		}
		d.Date = date
		return nil
	})
}

func (s *nodeService) Remove(ctx context.Context, projectID string, ref domain.NodeRef) (err error) {
	defer finishUseCase(ctx, s.observer, "remove-node", time.Now().UTC(), map[string]any{"project_id": projectID, "node": ref.String()}, &err)

	err = updateProject(ctx, s.store, projectID, func(p *domain.Project) error {
		if ref.Kind == domain.NodeProject || ref.IsZero() {
			return fmt.Errorf("%w: remove the project itself with project rm", domain.ErrInvalidRef)
		}
		if !p.Remove(ref) {
			return fmt.Errorf("%s: %w", ref, domain.ErrNotFound)
		}
		return nil
	})
	if err != nil {
		return err
	}

	// A view inside the removed subtree falls back to the project level.
	v, err := s.store.LoadView(ctx)
	if err != nil {
		return err
	}
	if v.ProjectID != projectID || v.At.Kind == domain.NodeProject || v.At.IsZero() {
		return nil
	}
	return readProject(s.store, projectID, func(p *domain.Project) error {
		if _, ok := p.Title(v.At); ok {
			return nil
		}
		return s.store.SaveView(ctx, domain.View{ProjectID: projectID, At: domain.ProjectRef()})
	})
}
