package service

import (
	"context"
	"slices"

	"github.com/alexanderramin/tally/internal/domain"
	"github.com/alexanderramin/tally/internal/store"
)

type itemService struct {
	store    *store.Store
	observer UseCaseObserver
}

func NewItemService(st *store.Store, observers ...UseCaseObserver) ItemService {
	return &itemService{store: st, observer: useCaseObserverOrNoop(observers)}
}

func (s *itemService) List(ctx context.Context, projectID string, at domain.NodeRef) ([]domain.Item, error) {
	var out []domain.Item
	err := readProject(s.store, projectID, func(p *domain.Project) error {
		items, err := findItems(p, at)
		if err != nil {
			return err
		}
		out = slices.Clone(*items)
		return nil
	})
	return out, err
}

func (s *itemService) Add(ctx context.Context, projectID string, at domain.NodeRef, text string) (int, error) {
	text, err := cleanText(text)
	if err != nil {
		return 0, err
	}
	var index int
	err = s.edit(ctx, projectID, at, func(items *[]domain.Item) error {
		*items = append(*items, domain.Item{Text: text})
		index = len(*items) - 1
		return nil
	})
	return index, err
}

// Toggle flips the completion of one item and returns its new state.
func (s *itemService) Toggle(ctx context.Context, projectID string, at domain.NodeRef, index int) (bool, error) {
	var done bool
	err := s.edit(ctx, projectID, at, func(items *[]domain.Item) error {
		if err := checkIndex(len(*items), index); err != nil {
			return err
		}
		it := &(*items)[index]
		it.Completed = !it.Completed
		done = it.Completed
		return nil
	})
	return done, err
}

func (s *itemService) Edit(ctx context.Context, projectID string, at domain.NodeRef, index int, text string) error {
	text, err := cleanText(text)
	if err != nil {
		return err
	}
	return s.edit(ctx, projectID, at, func(items *[]domain.Item) error {
		if err := checkIndex(len(*items), index); err != nil {
			return err
		}
		(*items)[index].Text = text
		return nil
	})
}

func (s *itemService) Remove(ctx context.Context, projectID string, at domain.NodeRef, index int) error {
	return s.edit(ctx, projectID, at, func(items *[]domain.Item) error {
		if err := checkIndex(len(*items), index); err != nil {
			return err
		}
		*items = slices.Delete(*items, index, index+1)
		return nil
	})
}

func (s *itemService) edit(ctx context.Context, projectID string, at domain.NodeRef, fn func(items *[]domain.Item) error) error {
	return updateProject(ctx, s.store, projectID, func(p *domain.Project) error {
		items, err := findItems(p, at)
		if err != nil {
			return err
		}
		return fn(items)
	})
}
