package service

import (
	"context"
	"sort"
	"time"

	"github.com/alexanderramin/tally/internal/domain"
	"github.com/alexanderramin/tally/internal/store"
)

type calendarService struct {
	store *store.Store
}

func NewCalendarService(st *store.Store) CalendarService {
	return &calendarService{store: st}
}

func (s *calendarService) Entries(ctx context.Context, projectID string) ([]domain.CalendarEntry, error) {
	var out []domain.CalendarEntry
	err := s.store.Read(func(state *domain.AppState) error {
		if projectID == "" {
			for _, p := range state.Projects {
				out = append(out, domain.WorkDays(p)...)
			}
		} else {
			p, err := findProject(state, projectID)
			if err != nil {
				return err
			}
			out = domain.WorkDays(p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func (s *calendarService) On(ctx context.Context, projectID, date string) ([]domain.CalendarEntry, error) {
	if err := domain.ValidateDate(date); err != nil {
		return nil, err
	}
	entries, err := s.Entries(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return domain.EntriesOn(entries, date), nil
}

func (s *calendarService) Month(ctx context.Context, projectID string, year int, month time.Month) ([][7]domain.CalendarCell, error) {
	entries, err := s.Entries(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return domain.MonthGrid(year, month, entries), nil
}
